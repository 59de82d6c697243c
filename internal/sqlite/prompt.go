package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/promptdeck/promptdeck/internal/domain/prompt"
	"github.com/promptdeck/promptdeck/internal/repository"
)

// PromptRepository implements prompt.Repository for SQLite.
// Listing orders by rowid, so updates keep a prompt's position.
type PromptRepository struct {
	db *DB
}

var _ prompt.Repository = (*PromptRepository)(nil)

// NewPromptRepository creates a new PromptRepository
func NewPromptRepository(db *DB) *PromptRepository {
	return &PromptRepository{db: db}
}

const promptColumns = `id, title, content, category_id, tags, description, created_at, updated_at, usage_count`

// Create inserts a new prompt
func (r *PromptRepository) Create(ctx context.Context, p *prompt.Prompt) error {
	query := `
		INSERT INTO prompts (` + promptColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Content,
		p.CategoryID,
		tags,
		p.Description,
		p.CreatedAt,
		p.UpdatedAt,
		p.UsageCount,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create prompt: %w", err)
	}

	return nil
}

// Get retrieves a prompt by ID
func (r *PromptRepository) Get(ctx context.Context, id string) (*prompt.Prompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts WHERE id = ?`

	p, err := scanPrompt(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}

	return p, nil
}

// Update replaces an existing prompt in place. The rowid is unchanged, so
// the prompt keeps its position in List.
func (r *PromptRepository) Update(ctx context.Context, p *prompt.Prompt) error {
	query := `
		UPDATE prompts
		SET title = ?, content = ?, category_id = ?, tags = ?, description = ?,
		    created_at = ?, updated_at = ?, usage_count = ?
		WHERE id = ?
	`

	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query,
		p.Title,
		p.Content,
		p.CategoryID,
		tags,
		p.Description,
		p.CreatedAt,
		p.UpdatedAt,
		p.UsageCount,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update prompt: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a prompt
func (r *PromptRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM prompts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// List returns all prompts in insertion order
func (r *PromptRepository) List(ctx context.Context) ([]prompt.Prompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts ORDER BY rowid`

	return r.listQuery(ctx, query)
}

// ListByCategory returns prompts in a category, '' selecting uncategorized
func (r *PromptRepository) ListByCategory(ctx context.Context, categoryID string) ([]prompt.Prompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts WHERE category_id = ? ORDER BY rowid`

	return r.listQuery(ctx, query, categoryID)
}

// IncrementUsage bumps the usage counter and refreshes updated_at
func (r *PromptRepository) IncrementUsage(ctx context.Context, id string) error {
	query := `
		UPDATE prompts
		SET usage_count = usage_count + 1, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteAll empties the prompts table
func (r *PromptRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM prompts`); err != nil {
		return fmt.Errorf("failed to clear prompts: %w", err)
	}
	return nil
}

func (r *PromptRepository) listQuery(ctx context.Context, query string, args ...any) ([]prompt.Prompt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	defer rows.Close()

	var prompts []prompt.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prompt: %w", err)
		}
		prompts = append(prompts, *p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prompt rows: %w", err)
	}

	return prompts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrompt(row rowScanner) (*prompt.Prompt, error) {
	var p prompt.Prompt
	var tags string
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.CategoryID,
		&tags,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.UsageCount,
	)
	if err != nil {
		return nil, err
	}

	p.Tags, err = decodeTags(tags)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func encodeTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(data), nil
}

func decodeTags(data string) ([]string, error) {
	if data == "" || data == "[]" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(data), &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return tags, nil
}

package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/promptdeck/promptdeck/internal/repository"
)

// Service handles prompt business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new prompt service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// SaveRequest describes a prompt save. An empty ID creates a new prompt; an
// ID matching an existing prompt replaces it in place.
type SaveRequest struct {
	ID          string
	Title       string
	Content     string
	CategoryID  string
	Tags        []string
	Description string
	// UsageCount seeds the counter on create (import path); nil keeps the
	// existing value on update and zero on create.
	UsageCount *int
}

// Save creates or replaces a prompt. A replace preserves createdAt and the
// prompt's position in List; it always refreshes updatedAt.
func (s *Service) Save(ctx context.Context, req SaveRequest) (*Prompt, error) {
	if err := ValidateSaveInput(req); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &Prompt{
		ID:          req.ID,
		Title:       strings.TrimSpace(req.Title),
		Content:     strings.TrimSpace(req.Content),
		CategoryID:  strings.TrimSpace(req.CategoryID),
		Tags:        NormalizeTags(req.Tags),
		Description: strings.TrimSpace(req.Description),
		UpdatedAt:   now,
	}

	if req.ID != "" {
		existing, err := s.repo.Get(ctx, req.ID)
		if err == nil {
			p.CreatedAt = existing.CreatedAt
			p.UsageCount = existing.UsageCount
			if req.UsageCount != nil {
				p.UsageCount = *req.UsageCount
			}
			if err := s.repo.Update(ctx, p); err != nil {
				return nil, fmt.Errorf("updating prompt: %w", err)
			}
			return p, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("getting prompt: %w", err)
		}
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = now
	if req.UsageCount != nil {
		p.UsageCount = *req.UsageCount
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating prompt: %w", err)
	}
	return p, nil
}

// Get fetches a prompt by ID.
func (s *Service) Get(ctx context.Context, id string) (*Prompt, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, fmt.Errorf("getting prompt: %w", err)
	}
	return p, nil
}

// List returns all prompts in insertion order.
func (s *Service) List(ctx context.Context) ([]Prompt, error) {
	return s.repo.List(ctx)
}

// ListByCategory returns the prompts in a category, in insertion order.
// An empty categoryID selects uncategorized prompts.
func (s *Service) ListByCategory(ctx context.Context, categoryID string) ([]Prompt, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

// Delete removes a prompt. Deleting an unknown ID is ErrPromptNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPromptNotFound
		}
		return fmt.Errorf("deleting prompt: %w", err)
	}
	return nil
}

// IncrementUsage bumps the usage counter and refreshes updatedAt. Callers
// performing a user action treat a failure here as non-fatal.
func (s *Service) IncrementUsage(ctx context.Context, id string) error {
	if err := s.repo.IncrementUsage(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPromptNotFound
		}
		return fmt.Errorf("incrementing usage: %w", err)
	}
	return nil
}

// DeleteAll empties the prompt collection. Irreversible.
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing prompts: %w", err)
	}
	return nil
}

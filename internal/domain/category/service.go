package category

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

// Service handles category operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new category service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// SaveRequest describes a category save. An empty ID creates a new category;
// an ID matching an existing category replaces its display fields.
type SaveRequest struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
	// SortOrder is kept on update and defaults to the current category count
	// on create when nil.
	SortOrder *int
}

// Save creates or replaces a category. A replace keeps createdAt, and keeps
// sortOrder unless the request sets one.
func (s *Service) Save(ctx context.Context, req SaveRequest) (*Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	c := &Category{
		ID:          req.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Icon:        strings.TrimSpace(req.Icon),
		Color:       strings.TrimSpace(req.Color),
	}

	if req.ID != "" {
		existing, err := s.repo.Get(ctx, req.ID)
		if err == nil {
			c.CreatedAt = existing.CreatedAt
			c.SortOrder = existing.SortOrder
			if req.SortOrder != nil {
				c.SortOrder = *req.SortOrder
			}
			if err := s.repo.Update(ctx, c); err != nil {
				return nil, fmt.Errorf("updating category: %w", err)
			}
			return c, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("getting category: %w", err)
		}
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	if req.SortOrder != nil {
		c.SortOrder = *req.SortOrder
	} else {
		existing, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing categories: %w", err)
		}
		c.SortOrder = len(existing)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return c, nil
}

// Get fetches a category by ID.
func (s *Service) Get(ctx context.Context, id string) (*Category, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return c, nil
}

// List returns all categories ordered by sortOrder, ties broken by
// insertion order.
func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

// Delete removes a category and detaches its prompts. The prompts survive
// with their category reference cleared. Deleting an unknown ID is
// ErrCategoryNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

// DeleteAll empties the category collection. Irreversible.
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing categories: %w", err)
	}
	return nil
}

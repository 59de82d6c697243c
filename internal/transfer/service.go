package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
	"github.com/promptdeck/promptdeck/internal/repository"
)

// Service serializes the full data set to portable envelopes and merges
// envelopes back into the repositories.
type Service struct {
	prompts    prompt.Repository
	categories category.Repository
	logger     *slog.Logger
	exportedBy string
	platform   string
}

// NewService creates a new import/export service. exportedBy and platform
// are stamped into export metadata.
func NewService(
	prompts prompt.Repository,
	categories category.Repository,
	logger *slog.Logger,
	exportedBy, platform string,
) *Service {
	return &Service{
		prompts:    prompts,
		categories: categories,
		logger:     logger,
		exportedBy: exportedBy,
		platform:   platform,
	}
}

// ImportResult summarizes a merge.
type ImportResult struct {
	PromptsAdded      int
	PromptsReplaced   int
	CategoriesAdded   int
	CategoriesSkipped int
	// Dropped counts records rejected during decoding. Only set by the
	// file-level import path.
	Dropped  int
	Warnings []string
}

// ExportAll snapshots the current data set. Metadata counts are computed
// from the live data, never carried over from a previous envelope.
func (s *Service) ExportAll(ctx context.Context) (*Envelope, error) {
	prompts, err := s.prompts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	return &Envelope{
		Version:    CurrentVersion,
		ExportedAt: time.Now(),
		Prompts:    prompts,
		Categories: categories,
		Metadata: Metadata{
			TotalCount:    len(prompts),
			CategoryCount: len(categories),
			ExportedBy:    s.exportedBy,
			Platform:      s.platform,
		},
	}, nil
}

// Import merges a decoded envelope into the repositories.
//
// Categories merge with local-wins semantics: an incoming category whose ID
// already exists is discarded. Prompts merge the other way: an incoming
// prompt replaces the local one with the same ID. The asymmetry matches the
// established export format consumers.
func (s *Service) Import(ctx context.Context, env *Envelope) (*ImportResult, error) {
	result := &ImportResult{}

	if env.Version != "" && !versionSupported(env.Version) {
		warning := fmt.Sprintf("unrecognized export version %q, importing best-effort", env.Version)
		result.Warnings = append(result.Warnings, warning)
		s.logger.Warn("importing envelope with unrecognized version", "version", env.Version)
	}

	for i := range env.Categories {
		c := env.Categories[i]
		_, err := s.categories.Get(ctx, c.ID)
		if err == nil {
			result.CategoriesSkipped++
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("getting category: %w", err)
		}
		if err := s.categories.Create(ctx, &c); err != nil {
			return nil, fmt.Errorf("creating category: %w", err)
		}
		result.CategoriesAdded++
	}

	for i := range env.Prompts {
		p := env.Prompts[i]
		err := s.prompts.Update(ctx, &p)
		if err == nil {
			result.PromptsReplaced++
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("updating prompt: %w", err)
		}
		if err := s.prompts.Create(ctx, &p); err != nil {
			return nil, fmt.Errorf("creating prompt: %w", err)
		}
		result.PromptsAdded++
	}

	s.logger.Info("import complete",
		"prompts_added", result.PromptsAdded,
		"prompts_replaced", result.PromptsReplaced,
		"categories_added", result.CategoriesAdded,
		"categories_skipped", result.CategoriesSkipped,
	)
	return result, nil
}

// ExportFile writes the current data set to path, creating parent
// directories as needed.
func (s *Service) ExportFile(ctx context.Context, path string) (*Envelope, error) {
	env, err := s.ExportAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := Encode(env)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing export file: %w", err)
	}

	s.logger.Info("exported data set", "path", path,
		"prompts", len(env.Prompts), "categories", len(env.Categories))
	return env, nil
}

// ImportFile reads an envelope from path and merges it. Records dropped
// during decoding are reported in the result, not as errors.
func (s *Service) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	env, dropped, err := Decode(data)
	if err != nil {
		return nil, err
	}

	result, err := s.Import(ctx, env)
	if err != nil {
		return nil, err
	}
	result.Dropped = dropped
	if dropped > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d invalid records were skipped", dropped))
	}
	return result, nil
}

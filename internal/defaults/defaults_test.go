package defaults_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/promptdeck/promptdeck/internal/defaults"
	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
	"github.com/promptdeck/promptdeck/internal/sqlite"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T) (*prompt.Service, *category.Service) {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return prompt.NewService(sqlite.NewPromptRepository(db), logger),
		category.NewService(sqlite.NewCategoryRepository(db), logger)
}

func TestEnsureSeeded_PopulatesEmptyLibrary(t *testing.T) {
	ctx := context.Background()
	prompts, categories := newServices(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, defaults.EnsureSeeded(ctx, prompts, categories, logger))

	gotCategories, err := categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, gotCategories, len(defaults.Categories()))

	gotPrompts, err := prompts.List(ctx)
	require.NoError(t, err)
	require.Len(t, gotPrompts, len(defaults.Prompts()))

	// Every seeded prompt points at a seeded category.
	ids := make(map[string]bool)
	for _, c := range gotCategories {
		ids[c.ID] = true
	}
	for _, p := range gotPrompts {
		require.True(t, ids[p.CategoryID], "prompt %s has unknown category %s", p.ID, p.CategoryID)
	}
}

func TestEnsureSeeded_LeavesExistingDataAlone(t *testing.T) {
	ctx := context.Background()
	prompts, categories := newServices(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mine, err := prompts.Save(ctx, prompt.SaveRequest{Title: "Mine", Content: "body"})
	require.NoError(t, err)

	require.NoError(t, defaults.EnsureSeeded(ctx, prompts, categories, logger))

	got, err := prompts.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, mine.ID, got[0].ID)
}

func TestEnsureSeeded_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	prompts, categories := newServices(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, defaults.EnsureSeeded(ctx, prompts, categories, logger))
	require.NoError(t, defaults.EnsureSeeded(ctx, prompts, categories, logger))

	got, err := prompts.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(defaults.Prompts()))
}

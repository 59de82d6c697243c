package prompt_test

import (
	"context"
	"testing"
	"time"

	"github.com/promptdeck/promptdeck/internal/domain/prompt"
	"github.com/promptdeck/promptdeck/internal/repository"
	"github.com/promptdeck/promptdeck/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPromptService_SaveValidation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PromptRepository{}
	svc := prompt.NewService(repo, nil)

	_, err := svc.Save(ctx, prompt.SaveRequest{Title: "", Content: "body"})
	require.ErrorIs(t, err, prompt.ErrInvalidInput)

	_, err = svc.Save(ctx, prompt.SaveRequest{Title: "   ", Content: "body"})
	require.ErrorIs(t, err, prompt.ErrInvalidInput)

	_, err = svc.Save(ctx, prompt.SaveRequest{Title: "t", Content: ""})
	require.ErrorIs(t, err, prompt.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create")
	repo.AssertNotCalled(t, "Update")
}

func TestPromptService_SaveCreatesWithID(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PromptRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := prompt.NewService(repo, nil)
	p, err := svc.Save(ctx, prompt.SaveRequest{
		Title:   "  Code Review  ",
		Content: "Review this",
		Tags:    []string{"review", " review ", "", "go"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, "Code Review", p.Title)
	require.Equal(t, []string{"review", "go"}, p.Tags)
	require.Zero(t, p.UsageCount)
	require.False(t, p.CreatedAt.IsZero())
	require.False(t, p.UpdatedAt.IsZero())
}

func TestPromptService_SaveReplacePreservesCreatedAtAndUsage(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	existing := &prompt.Prompt{
		ID:         "p1",
		Title:      "Old",
		Content:    "old body",
		CreatedAt:  created,
		UpdatedAt:  created,
		UsageCount: 7,
	}

	repo := &mocks.PromptRepository{}
	repo.On("Get", ctx, "p1").Return(existing, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := prompt.NewService(repo, nil)
	p, err := svc.Save(ctx, prompt.SaveRequest{ID: "p1", Title: "New", Content: "new body"})
	require.NoError(t, err)
	require.Equal(t, created, p.CreatedAt)
	require.Equal(t, 7, p.UsageCount)
	require.True(t, p.UpdatedAt.After(created))
	repo.AssertNotCalled(t, "Create")
}

func TestPromptService_SaveUnknownIDCreates(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PromptRepository{}
	repo.On("Get", ctx, "imported").Return((*prompt.Prompt)(nil), repository.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	usage := 3
	svc := prompt.NewService(repo, nil)
	p, err := svc.Save(ctx, prompt.SaveRequest{
		ID:         "imported",
		Title:      "Imported",
		Content:    "body",
		UsageCount: &usage,
	})
	require.NoError(t, err)
	require.Equal(t, "imported", p.ID)
	require.Equal(t, 3, p.UsageCount)
}

func TestPromptService_GetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PromptRepository{}
	repo.On("Get", ctx, "missing").Return((*prompt.Prompt)(nil), repository.ErrNotFound)

	svc := prompt.NewService(repo, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, prompt.ErrPromptNotFound)
}

func TestPromptService_DeleteNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PromptRepository{}
	repo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)

	svc := prompt.NewService(repo, nil)
	err := svc.Delete(ctx, "missing")
	require.ErrorIs(t, err, prompt.ErrPromptNotFound)
}

func TestPromptService_IncrementUsageNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PromptRepository{}
	repo.On("IncrementUsage", ctx, "missing").Return(repository.ErrNotFound)

	svc := prompt.NewService(repo, nil)
	err := svc.IncrementUsage(ctx, "missing")
	require.ErrorIs(t, err, prompt.ErrPromptNotFound)
}

func TestNormalizeTags(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, prompt.NormalizeTags([]string{" a ", "b", "a", ""}))
	require.Empty(t, prompt.NormalizeTags(nil))
}

package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
	"github.com/promptdeck/promptdeck/internal/repository/mocks"
	"github.com/promptdeck/promptdeck/internal/search"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, prompts []prompt.Prompt, categories []category.Category) *search.Engine {
	t.Helper()
	promptRepo := &mocks.PromptRepository{}
	promptRepo.On("List", context.Background()).Return(prompts, nil)
	categoryRepo := &mocks.CategoryRepository{}
	categoryRepo.On("List", context.Background()).Return(categories, nil)
	return search.NewEngine(promptRepo, categoryRepo, nil)
}

func titles(prompts []prompt.Prompt) []string {
	out := make([]string, len(prompts))
	for i := range prompts {
		out[i] = prompts[i].Title
	}
	return out
}

func TestSearch_CaseInsensitiveTitleMatch(t *testing.T) {
	engine := newEngine(t, []prompt.Prompt{
		{ID: "p1", Title: "Code Review"},
		{ID: "p2", Title: "Translation"},
	}, nil)

	results, err := engine.Search(context.Background(), "code", search.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"Code Review"}, titles(results))
}

func TestSearch_CategoryMatchPullsInItsPrompts(t *testing.T) {
	engine := newEngine(t, []prompt.Prompt{
		{ID: "p1", Title: "Alpha", CategoryID: "c1"},
		{ID: "p2", Title: "Beta", CategoryID: "c2"},
		{ID: "p3", Title: "Gamma"},
	}, []category.Category{
		{ID: "c1", Name: "Debugging", Description: ""},
		{ID: "c2", Name: "Writing"},
	})

	results, err := engine.Search(context.Background(), "debug", search.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"Alpha"}, titles(results))
}

func TestSearch_FieldAndCategoryMatchYieldsSingleResult(t *testing.T) {
	// A prompt matching on its own fields and through its category must
	// appear once.
	engine := newEngine(t, []prompt.Prompt{
		{ID: "p1", Title: "Debug helper", CategoryID: "c1"},
	}, []category.Category{
		{ID: "c1", Name: "Debugging"},
	})

	results, err := engine.Search(context.Background(), "debug", search.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestSearch_DisabledFieldsAreNotMatched(t *testing.T) {
	prompts := []prompt.Prompt{
		{ID: "p1", Title: "Alpha", Tags: []string{"review"}},
		{ID: "p2", Title: "Beta", Content: "please review this"},
		{ID: "p3", Title: "Gamma", Description: "a review template"},
	}

	opts := search.DefaultOptions()
	opts.IncludeTags = false
	opts.IncludeContent = false
	opts.IncludeDescription = false

	engine := newEngine(t, prompts, nil)
	results, err := engine.Search(context.Background(), "review", opts)
	require.NoError(t, err)
	require.Empty(t, results)

	opts.IncludeContent = true
	engine = newEngine(t, prompts, nil)
	results, err = engine.Search(context.Background(), "review", opts)
	require.NoError(t, err)
	require.Equal(t, []string{"Beta"}, titles(results))
}

func TestSearch_BlankQueryReturnsAllWithFilters(t *testing.T) {
	prompts := []prompt.Prompt{
		{ID: "p1", Title: "Alpha", CategoryID: "c1"},
		{ID: "p2", Title: "Beta", CategoryID: "c2"},
		{ID: "p3", Title: "Gamma", CategoryID: "c1"},
	}

	engine := newEngine(t, prompts, nil)
	results, err := engine.Search(context.Background(), "   ", search.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 3)

	opts := search.DefaultOptions()
	opts.CategoryID = "c1"
	engine = newEngine(t, prompts, nil)
	results, err = engine.Search(context.Background(), "", opts)
	require.NoError(t, err)
	require.Equal(t, []string{"Alpha", "Gamma"}, titles(results))
}

func TestSearch_TagFilterSharesAtLeastOne(t *testing.T) {
	prompts := []prompt.Prompt{
		{ID: "p1", Title: "Alpha", Tags: []string{"go", "review"}},
		{ID: "p2", Title: "Beta", Tags: []string{"python"}},
		{ID: "p3", Title: "Gamma"},
	}

	opts := search.DefaultOptions()
	opts.Tags = []string{"review", "rust"}

	engine := newEngine(t, prompts, nil)
	results, err := engine.Search(context.Background(), "", opts)
	require.NoError(t, err)
	require.Equal(t, []string{"Alpha"}, titles(results))

	// Exact comparison: a filter tag that is a substring of a prompt tag
	// does not count.
	opts.Tags = []string{"rev"}
	engine = newEngine(t, prompts, nil)
	results, err = engine.Search(context.Background(), "", opts)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestSearch_SortByUsageCountDescending(t *testing.T) {
	prompts := []prompt.Prompt{
		{ID: "p1", Title: "One", UsageCount: 1},
		{ID: "p2", Title: "Five", UsageCount: 5},
		{ID: "p3", Title: "Three", UsageCount: 3},
	}

	opts := search.DefaultOptions()
	opts.SortBy = search.SortByUsageCount
	opts.SortDirection = search.SortDesc

	engine := newEngine(t, prompts, nil)
	results, err := engine.Search(context.Background(), "", opts)
	require.NoError(t, err)
	require.Equal(t, []string{"Five", "Three", "One"}, titles(results))
}

func TestSearch_SortByTitleIgnoresCase(t *testing.T) {
	prompts := []prompt.Prompt{
		{ID: "p1", Title: "banana"},
		{ID: "p2", Title: "Apple"},
		{ID: "p3", Title: "cherry"},
	}

	engine := newEngine(t, prompts, nil)
	results, err := engine.Search(context.Background(), "", search.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"Apple", "banana", "cherry"}, titles(results))
}

func TestSearch_SortByCreatedAt(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prompts := []prompt.Prompt{
		{ID: "p1", Title: "Newest", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "p2", Title: "Oldest", CreatedAt: base},
		{ID: "p3", Title: "Middle", CreatedAt: base.Add(time.Hour)},
	}

	opts := search.DefaultOptions()
	opts.SortBy = search.SortByCreatedAt

	engine := newEngine(t, prompts, nil)
	results, err := engine.Search(context.Background(), "", opts)
	require.NoError(t, err)
	require.Equal(t, []string{"Oldest", "Middle", "Newest"}, titles(results))
}

// Package search filters and sorts the prompt library.
//
// Matching is case-insensitive substring containment. A prompt qualifies
// when any enabled field contains the term, or when its category's name or
// description does; the result is a set union with no duplicates.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
)

// Engine runs searches over the repositories.
type Engine struct {
	prompts    prompt.Repository
	categories category.Repository
	logger     *slog.Logger
}

// NewEngine creates a new search engine.
func NewEngine(prompts prompt.Repository, categories category.Repository, logger *slog.Logger) *Engine {
	return &Engine{prompts: prompts, categories: categories, logger: logger}
}

// Search returns the prompts matching query under opts. A blank query
// matches every prompt; filters and sort still apply.
func (e *Engine) Search(ctx context.Context, query string, opts Options) ([]prompt.Prompt, error) {
	prompts, err := e.prompts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(query))

	var matched []prompt.Prompt
	if term == "" {
		matched = prompts
	} else {
		matchedCategories, err := e.matchCategories(ctx, term)
		if err != nil {
			return nil, err
		}
		// A single ordered pass keeps natural order and makes the union
		// duplicate-free: each prompt is considered exactly once.
		for _, p := range prompts {
			if matchesFields(&p, term, opts) || matchedCategories[p.CategoryID] {
				matched = append(matched, p)
			}
		}
	}

	matched = applyFilters(matched, opts)
	sortPrompts(matched, opts)
	return matched, nil
}

// matchCategories returns the IDs of categories whose name or description
// contains the term.
func (e *Engine) matchCategories(ctx context.Context, term string) (map[string]bool, error) {
	categories, err := e.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	matched := make(map[string]bool)
	for _, c := range categories {
		if containsFold(c.Name, term) || containsFold(c.Description, term) {
			matched[c.ID] = true
		}
	}
	return matched, nil
}

func matchesFields(p *prompt.Prompt, term string, opts Options) bool {
	if containsFold(p.Title, term) {
		return true
	}
	if opts.IncludeContent && containsFold(p.Content, term) {
		return true
	}
	if opts.IncludeDescription && containsFold(p.Description, term) {
		return true
	}
	if opts.IncludeTags {
		for _, tag := range p.Tags {
			if containsFold(tag, term) {
				return true
			}
		}
	}
	return false
}

func applyFilters(prompts []prompt.Prompt, opts Options) []prompt.Prompt {
	if opts.CategoryID == "" && len(opts.Tags) == 0 {
		return prompts
	}

	filtered := make([]prompt.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if opts.CategoryID != "" && p.CategoryID != opts.CategoryID {
			continue
		}
		if len(opts.Tags) > 0 && !sharesTag(&p, opts.Tags) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func sharesTag(p *prompt.Prompt, tags []string) bool {
	for _, tag := range tags {
		if p.HasTag(tag) {
			return true
		}
	}
	return false
}

func sortPrompts(prompts []prompt.Prompt, opts Options) {
	desc := opts.SortDirection == SortDesc

	var less func(a, b *prompt.Prompt) bool
	switch opts.SortBy {
	case SortByCreatedAt:
		less = func(a, b *prompt.Prompt) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortByUpdatedAt:
		less = func(a, b *prompt.Prompt) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case SortByUsageCount:
		less = func(a, b *prompt.Prompt) bool { return a.UsageCount < b.UsageCount }
	default:
		less = func(a, b *prompt.Prompt) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	}

	sort.SliceStable(prompts, func(i, j int) bool {
		if desc {
			return less(&prompts[j], &prompts[i])
		}
		return less(&prompts[i], &prompts[j])
	})
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

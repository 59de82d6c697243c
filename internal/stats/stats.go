// Package stats computes library-wide usage statistics.
package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
)

// CategoryStats summarizes one category's share of the library.
type CategoryStats struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	PromptCount  int    `json:"prompt_count"`
	UsageCount   int    `json:"usage_count"`
}

// Stats is a snapshot of library totals.
type Stats struct {
	TotalPrompts    int             `json:"total_prompts"`
	TotalCategories int             `json:"total_categories"`
	TotalUsage      int             `json:"total_usage"`
	TopCategories   []CategoryStats `json:"top_categories,omitempty"`
	MostUsed        []prompt.Prompt `json:"most_used,omitempty"`
}

const (
	topCategoryLimit = 5
	mostUsedLimit    = 10
)

// Service computes stats from the repositories.
type Service struct {
	prompts    prompt.Repository
	categories category.Repository
}

// NewService creates a stats service.
func NewService(prompts prompt.Repository, categories category.Repository) *Service {
	return &Service{prompts: prompts, categories: categories}
}

// Collect computes a snapshot. Top categories rank by prompt count, most
// used prompts by usage count then recency; unused prompts are left out.
func (s *Service) Collect(ctx context.Context) (*Stats, error) {
	prompts, err := s.prompts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	out := &Stats{
		TotalPrompts:    len(prompts),
		TotalCategories: len(categories),
	}
	for i := range prompts {
		out.TotalUsage += prompts[i].UsageCount
	}

	for _, c := range categories {
		cs := CategoryStats{CategoryID: c.ID, CategoryName: c.Name}
		for i := range prompts {
			if prompts[i].CategoryID == c.ID {
				cs.PromptCount++
				cs.UsageCount += prompts[i].UsageCount
			}
		}
		out.TopCategories = append(out.TopCategories, cs)
	}
	sort.SliceStable(out.TopCategories, func(i, j int) bool {
		return out.TopCategories[i].PromptCount > out.TopCategories[j].PromptCount
	})
	if len(out.TopCategories) > topCategoryLimit {
		out.TopCategories = out.TopCategories[:topCategoryLimit]
	}

	used := make([]prompt.Prompt, 0, len(prompts))
	for i := range prompts {
		if prompts[i].UsageCount > 0 {
			used = append(used, prompts[i])
		}
	}
	sort.SliceStable(used, func(i, j int) bool {
		if used[i].UsageCount != used[j].UsageCount {
			return used[i].UsageCount > used[j].UsageCount
		}
		return used[i].UpdatedAt.After(used[j].UpdatedAt)
	})
	if len(used) > mostUsedLimit {
		used = used[:mostUsedLimit]
	}
	out.MostUsed = used

	return out, nil
}

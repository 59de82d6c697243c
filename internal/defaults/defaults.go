// Package defaults seeds a fresh library with starter categories and
// prompts on first run.
package defaults

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
)

func intptr(v int) *int { return &v }

// Categories returns the built-in category set.
func Categories() []category.SaveRequest {
	return []category.SaveRequest{
		{ID: "cat_general", Name: "General", Description: "General-purpose prompt templates", Icon: "general", Color: "#4CAF50", SortOrder: intptr(0)},
		{ID: "cat_programming", Name: "Programming", Description: "Programming prompt templates", Icon: "code", Color: "#2196F3", SortOrder: intptr(1)},
		{ID: "cat_writing", Name: "Writing", Description: "Writing prompt templates", Icon: "edit", Color: "#FF9800", SortOrder: intptr(2)},
		{ID: "cat_code_review", Name: "Code Review", Description: "Code review prompt templates", Icon: "inspection", Color: "#9C27B0", SortOrder: intptr(3)},
		{ID: "cat_debugging", Name: "Debugging", Description: "Debugging prompt templates", Icon: "bug", Color: "#F44336", SortOrder: intptr(4)},
		{ID: "cat_documentation", Name: "Documentation", Description: "Documentation prompt templates", Icon: "documentation", Color: "#607D8B", SortOrder: intptr(5)},
	}
}

// Prompts returns the built-in starter prompts. Placeholder tokens like
// {code} are left for the user to fill in after pasting.
func Prompts() []prompt.SaveRequest {
	return []prompt.SaveRequest{
		{
			ID:         "prompt_code_review",
			Title:      "Code Review",
			CategoryID: "cat_code_review",
			Tags:       []string{"review", "quality"},
			Description: "Thorough review of a pasted snippet covering quality, " +
				"performance, security, and maintainability.",
			Content: `Please review the following code thoroughly, covering:

1. Code quality: style, naming, readability
2. Performance: potential bottlenecks and optimization opportunities
3. Security: vulnerabilities and risky patterns
4. Best practices: alignment with idioms of the language
5. Maintainability: structure and extensibility
6. Error handling: edge cases and failure paths

Code:
` + "```\n{code}\n```",
		},
		{
			ID:          "prompt_code_optimization",
			Title:       "Code Optimization",
			CategoryID:  "cat_programming",
			Tags:        []string{"performance"},
			Description: "Ask for concrete optimization suggestions with rationale.",
			Content: `Optimize the following code. For each suggested change explain what it
improves (time, memory, allocations, clarity) and any trade-offs.

Code:
` + "```\n{code}\n```",
		},
		{
			ID:          "prompt_problem_analysis",
			Title:       "Problem Analysis",
			CategoryID:  "cat_general",
			Tags:        []string{"analysis"},
			Description: "Structured root-cause analysis for an arbitrary problem statement.",
			Content: `Analyze the following problem step by step:

1. Restate the problem in your own words
2. List the known facts and unknowns
3. Identify likely root causes, ranked by probability
4. Propose next diagnostic steps for each cause

Problem:
{problem}`,
		},
		{
			ID:          "prompt_bug_hunt",
			Title:       "Find the Bug",
			CategoryID:  "cat_debugging",
			Tags:        []string{"debugging"},
			Description: "Locate the defect behind an observed failure.",
			Content: `The following code misbehaves. Expected: {expected}. Actual: {actual}.
Find the defect, explain why it produces the observed behavior, and show a
minimal fix.

Code:
` + "```\n{code}\n```",
		},
		{
			ID:          "prompt_translation",
			Title:       "Translation",
			CategoryID:  "cat_writing",
			Tags:        []string{"writing", "translation"},
			Description: "Faithful translation keeping tone and terminology.",
			Content: `Translate the following text into {language}. Preserve tone, register,
and domain terminology; keep formatting intact.

Text:
{text}`,
		},
		{
			ID:          "prompt_tech_doc",
			Title:       "Technical Documentation",
			CategoryID:  "cat_documentation",
			Tags:        []string{"writing", "docs"},
			Description: "Draft reference documentation for an API or module.",
			Content: `Write reference documentation for the following code. Include a short
overview, usage examples, parameter descriptions, and notable edge cases.

Code:
` + "```\n{code}\n```",
		},
	}
}

// EnsureSeeded populates the library with the built-in data when both
// collections are empty. It is a no-op otherwise.
func EnsureSeeded(ctx context.Context, prompts *prompt.Service, categories *category.Service, logger *slog.Logger) error {
	existingPrompts, err := prompts.List(ctx)
	if err != nil {
		return fmt.Errorf("listing prompts: %w", err)
	}
	existingCategories, err := categories.List(ctx)
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}
	if len(existingPrompts) > 0 || len(existingCategories) > 0 {
		return nil
	}

	return Seed(ctx, prompts, categories, logger)
}

// Seed writes the built-in categories and prompts unconditionally.
func Seed(ctx context.Context, prompts *prompt.Service, categories *category.Service, logger *slog.Logger) error {
	for _, req := range Categories() {
		if _, err := categories.Save(ctx, req); err != nil {
			return fmt.Errorf("seeding category %q: %w", req.Name, err)
		}
	}
	for _, req := range Prompts() {
		if _, err := prompts.Save(ctx, req); err != nil {
			return fmt.Errorf("seeding prompt %q: %w", req.Title, err)
		}
	}

	logger.Info("seeded default data",
		"categories", len(Categories()), "prompts", len(Prompts()))
	return nil
}

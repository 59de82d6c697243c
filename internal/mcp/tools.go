package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
	"github.com/promptdeck/promptdeck/internal/search"
	"github.com/promptdeck/promptdeck/internal/stats"
)

// PromptInfo is the wire representation of a prompt.
type PromptInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	CategoryID  string   `json:"category_id,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	UsageCount  int      `json:"usage_count"`
}

// CategoryInfo is the wire representation of a category.
type CategoryInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	SortOrder   int    `json:"sort_order"`
	CreatedAt   string `json:"created_at"`
}

type toolset struct {
	svcs   Services
	logger *slog.Logger
}

// registerTools registers all tool handlers with the MCP server.
func registerTools(server *sdkmcp.Server, svcs Services, logger *slog.Logger) {
	t := &toolset{svcs: svcs, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_prompts",
		Description: "List prompts, optionally restricted to one category",
	}, t.handleListPrompts)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_prompt",
		Description: "Get a prompt by ID without recording a usage",
	}, t.handleGetPrompt)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "use_prompt",
		Description: "Fetch a prompt's content for use in the conversation and record the usage",
	}, t.handleUsePrompt)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_prompts",
		Description: "Search prompts by text query with field toggles, filters, and sorting",
	}, t.handleSearchPrompts)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_prompt",
		Description: "Create a new prompt",
	}, t.handleCreatePrompt)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_prompt",
		Description: "Replace an existing prompt's fields",
	}, t.handleUpdatePrompt)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_prompt",
		Description: "Delete a prompt by ID",
	}, t.handleDeletePrompt)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_categories",
		Description: "List categories in display order",
	}, t.handleListCategories)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_category",
		Description: "Create a new category",
	}, t.handleCreateCategory)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_category",
		Description: "Replace an existing category's display fields",
	}, t.handleUpdateCategory)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_category",
		Description: "Delete a category; its prompts survive as uncategorized",
	}, t.handleDeleteCategory)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_stats",
		Description: "Get library totals, top categories, and most used prompts",
	}, t.handleGetStats)
}

type ListPromptsInput struct {
	CategoryID string `json:"category_id,omitempty" jsonschema:"only prompts in this category; omit for all prompts"`
}

type ListPromptsOutput struct {
	Prompts []PromptInfo `json:"prompts"`
	Count   int          `json:"count"`
}

func (t *toolset) handleListPrompts(ctx context.Context, _ *sdkmcp.CallToolRequest, input ListPromptsInput) (*sdkmcp.CallToolResult, ListPromptsOutput, error) {
	var (
		prompts []prompt.Prompt
		err     error
	)
	if input.CategoryID != "" {
		prompts, err = t.svcs.Prompts.ListByCategory(ctx, input.CategoryID)
	} else {
		prompts, err = t.svcs.Prompts.List(ctx)
	}
	if err != nil {
		return nil, ListPromptsOutput{}, err
	}
	return nil, ListPromptsOutput{Prompts: promptInfos(prompts), Count: len(prompts)}, nil
}

type GetPromptInput struct {
	ID string `json:"id" jsonschema:"the prompt ID"`
}

func (t *toolset) handleGetPrompt(ctx context.Context, _ *sdkmcp.CallToolRequest, input GetPromptInput) (*sdkmcp.CallToolResult, PromptInfo, error) {
	p, err := t.svcs.Prompts.Get(ctx, input.ID)
	if err != nil {
		return nil, PromptInfo{}, err
	}
	return nil, promptInfo(p), nil
}

type UsePromptOutput struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	UsageCount int    `json:"usage_count"`
}

func (t *toolset) handleUsePrompt(ctx context.Context, _ *sdkmcp.CallToolRequest, input GetPromptInput) (*sdkmcp.CallToolResult, UsePromptOutput, error) {
	p, err := t.svcs.Prompts.Get(ctx, input.ID)
	if err != nil {
		return nil, UsePromptOutput{}, err
	}

	// The content is delivered either way; a failed counter bump must not
	// fail the tool call.
	count := p.UsageCount
	if err := t.svcs.Prompts.IncrementUsage(ctx, p.ID); err != nil {
		t.logger.Warn("failed to record prompt usage", "id", p.ID, "error", err)
	} else {
		count++
	}

	return nil, UsePromptOutput{Title: p.Title, Content: p.Content, UsageCount: count}, nil
}

type SearchPromptsInput struct {
	Query              string   `json:"query" jsonschema:"search term; blank matches every prompt"`
	CategoryID         string   `json:"category_id,omitempty" jsonschema:"restrict results to this category"`
	Tags               []string `json:"tags,omitempty" jsonschema:"keep prompts sharing at least one of these tags"`
	IncludeContent     *bool    `json:"include_content,omitempty" jsonschema:"match against content (default true)"`
	IncludeDescription *bool    `json:"include_description,omitempty" jsonschema:"match against description (default true)"`
	IncludeTags        *bool    `json:"include_tags,omitempty" jsonschema:"match against tags (default true)"`
	SortBy             string   `json:"sort_by,omitempty" jsonschema:"one of title, createdAt, updatedAt, usageCount (default title)"`
	SortDirection      string   `json:"sort_direction,omitempty" jsonschema:"ASC or DESC (default ASC)"`
}

func (t *toolset) handleSearchPrompts(ctx context.Context, _ *sdkmcp.CallToolRequest, input SearchPromptsInput) (*sdkmcp.CallToolResult, ListPromptsOutput, error) {
	opts := search.DefaultOptions()
	opts.CategoryID = input.CategoryID
	opts.Tags = input.Tags
	if input.IncludeContent != nil {
		opts.IncludeContent = *input.IncludeContent
	}
	if input.IncludeDescription != nil {
		opts.IncludeDescription = *input.IncludeDescription
	}
	if input.IncludeTags != nil {
		opts.IncludeTags = *input.IncludeTags
	}
	if input.SortBy != "" {
		opts.SortBy = search.SortBy(input.SortBy)
	}
	if input.SortDirection != "" {
		opts.SortDirection = search.SortDirection(input.SortDirection)
	}

	results, err := t.svcs.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, ListPromptsOutput{}, err
	}
	return nil, ListPromptsOutput{Prompts: promptInfos(results), Count: len(results)}, nil
}

type CreatePromptInput struct {
	Title       string   `json:"title" jsonschema:"display title, required"`
	Content     string   `json:"content" jsonschema:"template body, required; placeholders like {code} stay literal"`
	CategoryID  string   `json:"category_id,omitempty" jsonschema:"category to file the prompt under"`
	Tags        []string `json:"tags,omitempty" jsonschema:"free-text tags"`
	Description string   `json:"description,omitempty" jsonschema:"optional description"`
}

func (t *toolset) handleCreatePrompt(ctx context.Context, _ *sdkmcp.CallToolRequest, input CreatePromptInput) (*sdkmcp.CallToolResult, PromptInfo, error) {
	p, err := t.svcs.Prompts.Save(ctx, prompt.SaveRequest{
		Title:       input.Title,
		Content:     input.Content,
		CategoryID:  input.CategoryID,
		Tags:        input.Tags,
		Description: input.Description,
	})
	if err != nil {
		return nil, PromptInfo{}, err
	}
	return nil, promptInfo(p), nil
}

type UpdatePromptInput struct {
	ID          string   `json:"id" jsonschema:"ID of the prompt to replace"`
	Title       string   `json:"title" jsonschema:"display title, required"`
	Content     string   `json:"content" jsonschema:"template body, required"`
	CategoryID  string   `json:"category_id,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (t *toolset) handleUpdatePrompt(ctx context.Context, _ *sdkmcp.CallToolRequest, input UpdatePromptInput) (*sdkmcp.CallToolResult, PromptInfo, error) {
	if _, err := t.svcs.Prompts.Get(ctx, input.ID); err != nil {
		return nil, PromptInfo{}, err
	}
	p, err := t.svcs.Prompts.Save(ctx, prompt.SaveRequest{
		ID:          input.ID,
		Title:       input.Title,
		Content:     input.Content,
		CategoryID:  input.CategoryID,
		Tags:        input.Tags,
		Description: input.Description,
	})
	if err != nil {
		return nil, PromptInfo{}, err
	}
	return nil, promptInfo(p), nil
}

type DeleteOutput struct {
	Deleted bool `json:"deleted"`
}

func (t *toolset) handleDeletePrompt(ctx context.Context, _ *sdkmcp.CallToolRequest, input GetPromptInput) (*sdkmcp.CallToolResult, DeleteOutput, error) {
	if err := t.svcs.Prompts.Delete(ctx, input.ID); err != nil {
		return nil, DeleteOutput{}, err
	}
	return nil, DeleteOutput{Deleted: true}, nil
}

type ListCategoriesOutput struct {
	Categories []CategoryInfo `json:"categories"`
	Count      int            `json:"count"`
}

func (t *toolset) handleListCategories(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, ListCategoriesOutput, error) {
	categories, err := t.svcs.Categories.List(ctx)
	if err != nil {
		return nil, ListCategoriesOutput{}, err
	}
	out := ListCategoriesOutput{Count: len(categories)}
	for i := range categories {
		out.Categories = append(out.Categories, categoryInfo(&categories[i]))
	}
	return nil, out, nil
}

type CreateCategoryInput struct {
	Name        string `json:"name" jsonschema:"display name, required"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	SortOrder   *int   `json:"sort_order,omitempty" jsonschema:"display position; defaults to the end"`
}

func (t *toolset) handleCreateCategory(ctx context.Context, _ *sdkmcp.CallToolRequest, input CreateCategoryInput) (*sdkmcp.CallToolResult, CategoryInfo, error) {
	c, err := t.svcs.Categories.Save(ctx, category.SaveRequest{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		SortOrder:   input.SortOrder,
	})
	if err != nil {
		return nil, CategoryInfo{}, err
	}
	return nil, categoryInfo(c), nil
}

type UpdateCategoryInput struct {
	ID          string `json:"id" jsonschema:"ID of the category to replace"`
	Name        string `json:"name" jsonschema:"display name, required"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	SortOrder   *int   `json:"sort_order,omitempty"`
}

func (t *toolset) handleUpdateCategory(ctx context.Context, _ *sdkmcp.CallToolRequest, input UpdateCategoryInput) (*sdkmcp.CallToolResult, CategoryInfo, error) {
	if _, err := t.svcs.Categories.Get(ctx, input.ID); err != nil {
		return nil, CategoryInfo{}, err
	}
	c, err := t.svcs.Categories.Save(ctx, category.SaveRequest{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		SortOrder:   input.SortOrder,
	})
	if err != nil {
		return nil, CategoryInfo{}, err
	}
	return nil, categoryInfo(c), nil
}

type DeleteCategoryInput struct {
	ID string `json:"id" jsonschema:"the category ID"`
}

func (t *toolset) handleDeleteCategory(ctx context.Context, _ *sdkmcp.CallToolRequest, input DeleteCategoryInput) (*sdkmcp.CallToolResult, DeleteOutput, error) {
	if err := t.svcs.Categories.Delete(ctx, input.ID); err != nil {
		return nil, DeleteOutput{}, err
	}
	return nil, DeleteOutput{Deleted: true}, nil
}

func (t *toolset) handleGetStats(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, stats.Stats, error) {
	s, err := t.svcs.Stats.Collect(ctx)
	if err != nil {
		return nil, stats.Stats{}, err
	}
	return nil, *s, nil
}

func promptInfo(p *prompt.Prompt) PromptInfo {
	return PromptInfo{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		CategoryID:  p.CategoryID,
		Tags:        p.Tags,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(timeLayout),
		UpdatedAt:   p.UpdatedAt.Format(timeLayout),
		UsageCount:  p.UsageCount,
	}
}

func promptInfos(prompts []prompt.Prompt) []PromptInfo {
	out := make([]PromptInfo, 0, len(prompts))
	for i := range prompts {
		out = append(out, promptInfo(&prompts[i]))
	}
	return out
}

func categoryInfo(c *category.Category) CategoryInfo {
	return CategoryInfo{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt.Format(timeLayout),
	}
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
	"github.com/promptdeck/promptdeck/internal/search"
	"github.com/promptdeck/promptdeck/internal/sqlite"
	"github.com/promptdeck/promptdeck/internal/stats"
	"github.com/promptdeck/promptdeck/internal/transfer"
	"github.com/stretchr/testify/require"
)

// newTestSession wires a full server over an in-memory database and returns
// a connected SDK client session.
func newTestSession(t *testing.T) (*sdkmcp.ClientSession, *prompt.Service, *category.Service) {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	promptRepo := sqlite.NewPromptRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)

	promptSvc := prompt.NewService(promptRepo, logger)
	categorySvc := category.NewService(categoryRepo, logger)

	server := NewServer(Config{
		Services: Services{
			Prompts:    promptSvc,
			Categories: categorySvc,
			Search:     search.NewEngine(promptRepo, categoryRepo, logger),
			Transfer:   transfer.NewService(promptRepo, categoryRepo, logger, "test", "test"),
			Stats:      stats.NewService(promptRepo, categoryRepo),
		},
		Logger: logger,
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session, promptSvc, categorySvc
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "tools/call %s failed", name)
	return result
}

func TestServer_ListsAllTools(t *testing.T) {
	session, _, _ := newTestSession(t)

	tools, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"list_prompts", "get_prompt", "use_prompt", "search_prompts",
		"create_prompt", "update_prompt", "delete_prompt",
		"list_categories", "create_category", "update_category", "delete_category",
		"get_stats",
	} {
		require.True(t, names[want], "missing tool %s", want)
	}
}

func TestServer_CreateAndUsePrompt(t *testing.T) {
	session, promptSvc, _ := newTestSession(t)
	ctx := context.Background()

	result := callTool(t, session, "create_prompt", map[string]any{
		"title":   "Code Review",
		"content": "Review this: {code}",
		"tags":    []string{"review"},
	})
	require.False(t, result.IsError, "create_prompt returned error: %v", result)

	prompts, err := promptSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	id := prompts[0].ID

	result = callTool(t, session, "use_prompt", map[string]any{"id": id})
	require.False(t, result.IsError, "use_prompt returned error: %v", result)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected text content")
	var used struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		UsageCount int    `json:"usage_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &used))
	require.Equal(t, "Code Review", used.Title)
	require.Equal(t, "Review this: {code}", used.Content)
	require.Equal(t, 1, used.UsageCount)

	// The usage landed in the store, not only in the reply.
	p, err := promptSvc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 1, p.UsageCount)
}

func TestServer_GetPromptDoesNotCountUsage(t *testing.T) {
	session, promptSvc, _ := newTestSession(t)
	ctx := context.Background()

	p, err := promptSvc.Save(ctx, prompt.SaveRequest{Title: "T", Content: "C"})
	require.NoError(t, err)

	result := callTool(t, session, "get_prompt", map[string]any{"id": p.ID})
	require.False(t, result.IsError)

	p, err = promptSvc.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Zero(t, p.UsageCount)
}

func TestServer_UnknownPromptIsToolError(t *testing.T) {
	session, _, _ := newTestSession(t)

	result := callTool(t, session, "get_prompt", map[string]any{"id": "nope"})
	require.True(t, result.IsError, "expected tool error for unknown prompt")
}

func TestServer_SearchPrompts(t *testing.T) {
	session, promptSvc, categorySvc := newTestSession(t)
	ctx := context.Background()

	c, err := categorySvc.Save(ctx, category.SaveRequest{Name: "Debugging"})
	require.NoError(t, err)
	_, err = promptSvc.Save(ctx, prompt.SaveRequest{Title: "Stack trace reader", Content: "x", CategoryID: c.ID})
	require.NoError(t, err)
	_, err = promptSvc.Save(ctx, prompt.SaveRequest{Title: "Translation", Content: "y"})
	require.NoError(t, err)

	result := callTool(t, session, "search_prompts", map[string]any{"query": "debug"})
	require.False(t, result.IsError)

	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	var out struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	require.Equal(t, 1, out.Count)
}

func TestServer_DeleteCategoryKeepsPrompts(t *testing.T) {
	session, promptSvc, categorySvc := newTestSession(t)
	ctx := context.Background()

	c, err := categorySvc.Save(ctx, category.SaveRequest{Name: "Doomed"})
	require.NoError(t, err)
	p, err := promptSvc.Save(ctx, prompt.SaveRequest{Title: "Survivor", Content: "x", CategoryID: c.ID})
	require.NoError(t, err)

	result := callTool(t, session, "delete_category", map[string]any{"id": c.ID})
	require.False(t, result.IsError)

	got, err := promptSvc.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, got.CategoryID)
}

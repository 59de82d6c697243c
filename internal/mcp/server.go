// Package mcp exposes the prompt library to AI chat clients over the Model
// Context Protocol, so a connected assistant can pull prompts directly
// instead of relying on clipboard round trips.
package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
	"github.com/promptdeck/promptdeck/internal/search"
	"github.com/promptdeck/promptdeck/internal/stats"
	"github.com/promptdeck/promptdeck/internal/transfer"
)

const serverVersion = "0.1.0"

const serverInstructions = `Promptdeck manages a library of reusable prompt templates organized into
categories. Use search_prompts to find a template, use_prompt to fetch its
content for insertion into the conversation (this records the usage), and the
create/update/delete tools to maintain the library. Template placeholders
like {code} are conventions for the caller to fill in, never expanded here.`

// Services contains all domain services needed by MCP.
type Services struct {
	Prompts    *prompt.Service
	Categories *category.Service
	Search     *search.Engine
	Transfer   *transfer.Service
	Stats      *stats.Service
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "promptdeck",
		Version: serverVersion,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services, cfg.Logger)

	return server
}

package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/defaults"
	"github.com/promptdeck/promptdeck/internal/mcp"
)

var serveTransport string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Serve exposes the prompt library over the Model Context Protocol.
The stdio transport speaks JSON-RPC on stdin/stdout for clients that
launch the server themselves; the http transport listens on the
configured address and also serves a /health endpoint.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "transport mode: stdio or http (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	mode := cfg.Transport.Mode
	if serveTransport != "" {
		mode = serveTransport
	}

	// A connected client should never see an empty library.
	if err := defaults.EnsureSeeded(cmd.Context(), promptSvc, categorySvc, logger); err != nil {
		return err
	}

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Prompts:    promptSvc,
			Categories: categorySvc,
			Search:     searchEngine,
			Transfer:   transferSvc,
			Stats:      statsSvc,
		},
		Logger: logger,
	})

	switch mode {
	case "stdio":
		return runStdio(server)
	case "http":
		return runHTTP(server)
	default:
		return fmt.Errorf("unknown transport mode %q", mode)
	}
}

func runStdio(server *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or the context is canceled.
	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

func runHTTP(server *sdkmcp.Server) error {
	handler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := http.NewServeMux()
	router.Handle("/mcp", handler)
	router.Handle("/mcp/", handler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

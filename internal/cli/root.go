// Package cli implements the promptdeck command tree.
package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/actions"
	"github.com/promptdeck/promptdeck/internal/clipboard"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/dispatch"
	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
	"github.com/promptdeck/promptdeck/internal/search"
	"github.com/promptdeck/promptdeck/internal/sqlite"
	"github.com/promptdeck/promptdeck/internal/stats"
	"github.com/promptdeck/promptdeck/internal/transfer"
)

var (
	cfg    config.Config
	logger *slog.Logger
	db     *sqlite.DB

	promptSvc    *prompt.Service
	categorySvc  *category.Service
	searchEngine *search.Engine
	transferSvc  *transfer.Service
	actionSvc    *actions.Service
	statsSvc     *stats.Service

	assumeYes bool
)

var rootCmd = &cobra.Command{
	Use:   "promptdeck",
	Short: "Manage a library of reusable prompt templates",
	Long: `Promptdeck stores, categorizes, and searches reusable prompt templates,
and gets them into your clipboard or AI chat with one command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompts")
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	teardown()
	return err
}

func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Logs go to stderr: stdout carries command output, and in stdio serve
	// mode it carries JSON-RPC.
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return fmt.Errorf("preparing database path: %w", err)
	}

	db, err = sqlite.New(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	promptRepo := sqlite.NewPromptRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)

	promptSvc = prompt.NewService(promptRepo, logger)
	categorySvc = category.NewService(categoryRepo, logger)
	searchEngine = search.NewEngine(promptRepo, categoryRepo, logger)
	transferSvc = transfer.NewService(promptRepo, categoryRepo, logger, "promptdeck", runtime.GOOS)
	statsSvc = stats.NewService(promptRepo, categoryRepo)

	clip := clipboard.NewSystem()
	var integrations []dispatch.Integration
	if len(cfg.Dispatch.Command) > 0 {
		integrations = append(integrations, dispatch.NewCommandIntegration(cfg.Dispatch.Command))
	}
	dispatcher := dispatch.NewDispatcher(integrations, clip, logger)
	actionSvc = actions.NewService(promptSvc, clip, dispatcher, logger)

	return nil
}

func teardown() {
	if db != nil {
		db.Close()
		db = nil
	}
}

// confirm asks for explicit confirmation before a destructive operation.
func confirm(cmd *cobra.Command, message string) bool {
	if assumeYes {
		return true
	}
	cmd.Printf("%s [y/N]: ", message)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

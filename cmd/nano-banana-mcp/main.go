package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nachoal/nano-banana-mcp/config"
	"github.com/nachoal/nano-banana-mcp/imagegen"
	"github.com/nachoal/nano-banana-mcp/llm/openrouter"
	"github.com/nachoal/nano-banana-mcp/server"
)

var (
	// Flags
	verbose bool

	// Root command
	rootCmd = &cobra.Command{
		Use:   "nano-banana-mcp",
		Short: "MCP server for image generation via OpenRouter",
		Long: "nano-banana-mcp exposes image generation and editing tools over the " +
			"Model Context Protocol, backed by OpenRouter chat completions.",
		Version:      "1.0.0",
		SilenceUsage: true,
		RunE:         runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Bind flags to viper
	viper.BindPFlags(rootCmd.PersistentFlags())
}

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := openrouter.NewClient(
		openrouter.WithAPIKey(cfg.APIKey),
		openrouter.WithBaseURL(cfg.BaseURL),
		openrouter.WithModel(cfg.Model),
		openrouter.WithTimeout(cfg.Timeout),
		openrouter.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create OpenRouter client: %w", err)
	}

	executor := imagegen.NewExecutor(client, cfg.Model, logger)
	srv := server.New(executor, logger)

	// An interrupt shuts the stdio transport down in an orderly way.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}

// newLogger writes JSON lines to stderr; stdout carries the MCP
// protocol and must stay clean.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

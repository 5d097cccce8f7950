// Package main provides the CLI entrypoint for the fortune service.
// It wires subcommands (serve, categories, random), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"fortune/internal/config"
	"fortune/internal/fortune"
	"fortune/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getFortuner indexes the fortune directory and returns the service built on
// it. The index is essential: without it the process exits.
func getFortuner(ctx context.Context, cfg *config.Config) fortune.Fortuner {
	categories, err := fortune.LoadCategories(cfg.Fortune.Directory)
	if err != nil {
		logger.Fatal(ctx, "could not load fortune categories",
			zap.String("directory", cfg.Fortune.Directory), zap.Error(err))
	}

	program := fortune.NewProgram(fortune.ProgramOptions{
		Path:    cfg.Fortune.Program,
		Timeout: cfg.Fortune.Timeout,
	})
	logger.Info(ctx, "fortune database indexed",
		zap.String("directory", cfg.Fortune.Directory),
		zap.Int("categories", categories.Len()),
		zap.Stringer("program", program))

	return fortune.New(categories, program)
}

// main sets up the root Cobra command, loads configuration and logging before
// any subcommand runs, and executes the CLI.
func main() {
	var configPath string
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:           "fortune",
		Short:         "Serves fortunes from the local fortune database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}
			*cfg = *loaded

			logger.Setup(cfg.Environment)

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Config File Path (environment only when empty)")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		categoriesCommand(cfg),
		randomCommand(cfg),
	)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
		_, _ = fmt.Fprintln(os.Stderr, err)
	}
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

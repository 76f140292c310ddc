// Package main provides the CLI entrypoint for the uptime monitor.
// It wires subcommands (serve, migrate, sweep, probe), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"uptime/internal/config"
	"uptime/pkg/logger"
)

// setup loads the configuration file into cfg and initializes the logger from it.
func setup(configPath string, cfg *config.Config) error {
	log.Println("loading config ...")
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}
	*cfg = *loaded

	err = logger.Setup(logger.Options{
		Environment: cfg.Environment,
		File:        cfg.Log.File,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
		Compress:    cfg.Log.Compress,
	})
	if err != nil {
		return fmt.Errorf("could not setup logger: %w", err)
	}

	return nil
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	var (
		configPath string
		cfg        config.Config
	)

	rootCmd := &cobra.Command{
		Use:           "uptime",
		Short:         "Periodically checks registered domains and records their liveness",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(configPath, &cfg)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml",
		"Config File Path, empty reads the environment only")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(&cfg),
		migrateCommand(&cfg),
		sweepCommand(&cfg),
		probeCommand(&cfg),
	)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
	}
	logger.Sync(ctx)
	if err != nil {
		log.Println(err)
		os.Exit(1) //nolint: gocritic
	}
}

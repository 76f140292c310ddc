package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"uptime/internal/config"
	"uptime/pkg/logger"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			strg, closeStrg, err := getStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStrg()

			if down {
				res, err := strg.MigrateDown(ctx)
				if err != nil {
					return err //nolint: wrapcheck
				}
				if res != nil {
					logger.Info(ctx, "rolled back migration",
						zap.Int64("version", res.Source.Version),
						zap.Duration("duration", res.Duration))
				}

				return nil
			}

			results, err := strg.Migrate(ctx)
			if err != nil {
				return err //nolint: wrapcheck
			}
			for _, res := range results {
				logger.Info(ctx, "applied migration",
					zap.Int64("version", res.Source.Version),
					zap.String("path", res.Source.Path),
					zap.Duration("duration", res.Duration))
			}
			logger.Info(ctx, "database is up to date", zap.Int("applied", len(results)))

			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "Roll back the most recent migration instead")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uptime/internal/config"
)

// sweepCommand probes every registered domain once, stores the outcomes and
// prints the counts. The scheduler logs the details.
func sweepCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Runs a single sweep over all registered domains and exits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			strg, closeStrg, err := getStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStrg()

			sched, err := newScheduler(cfg, strg)
			if err != nil {
				return err
			}

			report, err := sched.Sweep(ctx)
			if err != nil {
				return fmt.Errorf("could not sweep: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "domains=%d\trecorded=%d\tunreachable=%d\tskipped=%d\tfailed=%d\n",
				report.Domains, report.Recorded, report.Unreachable, report.Skipped, report.Failed)
			if err != nil {
				return fmt.Errorf("could not print report: %w", err)
			}

			return nil
		},
	}

	return cmd
}

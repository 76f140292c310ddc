package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"uptime/internal/config"
	"uptime/internal/probe"
	"uptime/pkg/domain"
	"uptime/pkg/logger"
)

// probeCommand examines a single URL without storing the result.
func probeCommand(cfg *config.Config) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Probes a single URL once and prints the outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			prober := probe.New(&http.Client{}, probe.NewOptions(cfg))
			exam, err := prober.Probe(ctx, domain.Domain{Name: url})
			if err != nil {
				logger.Warn(ctx, "probe failed", zap.String("url", url), zap.Error(err))
			}
			if exam == nil {
				return fmt.Errorf("could not probe %q: %w", url, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\tstatus=%d\tresponse_time=%s\tat=%s\n",
				probe.TargetURL(url), exam.StatusCode, exam.ResponseTime, exam.ExaminationTime.Format(time.RFC3339))
			if err != nil {
				return fmt.Errorf("could not print result: %w", err)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "URL to probe, https:// is assumed when no scheme is given")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

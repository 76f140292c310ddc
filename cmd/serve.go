package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"uptime/internal/api"
	"uptime/internal/api/handler/v1handler"
	"uptime/internal/config"
	"uptime/internal/monitor"
	"uptime/internal/probe"
	"uptime/internal/scheduler"
	"uptime/pkg/logger"
	"uptime/pkg/metrics"
	"uptime/pkg/storage"
)

// shutdownStep stops one component. Each step runs under its own timeout.
type shutdownStep struct {
	name string
	stop func(ctx context.Context) error
}

func shutdown(ctx context.Context, timeout time.Duration, steps ...shutdownStep) {
	for _, step := range steps {
		stepCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		logger.Info(ctx, "stopping "+step.name+"...")
		if err := step.stop(stepCtx); err != nil {
			logger.Warn(ctx, "could not stop "+step.name+" in time", zap.Error(err))
		}
		cancel()
	}
}

func setupServer(ctx context.Context, cfg *config.Config, strg storage.Storage) func(ctx context.Context) error {
	server := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Monitor: monitor.New(strg)},
	}, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) error {
		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("could not stop webserver: %w", err)
		}

		return nil
	}
}

func newScheduler(cfg *config.Config, strg storage.Storage) (*scheduler.Scheduler, error) {
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, fmt.Errorf("could not create meter provider: %w", err)
	}

	opts := scheduler.NewOptions(cfg)
	opts.MeterProvider = mp

	s, err := scheduler.New(strg, probe.New(&http.Client{}, probe.NewOptions(cfg)), opts)
	if err != nil {
		return nil, fmt.Errorf("could not create scheduler: %w", err)
	}

	return s, nil
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and the sweep scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg, err := getStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStrg()

			sched, err := newScheduler(cfg, strg)
			if err != nil {
				return err
			}
			// the scheduler outlives ctx so that Stop can drain the running sweep
			if err := sched.Start(context.WithoutCancel(ctx)); err != nil {
				return fmt.Errorf("could not start scheduler: %w", err)
			}

			stopWebserver := setupServer(ctx, cfg, strg)

			// wait for interrupt
			<-ctx.Done()
			logger.Info(ctx, "shutting down...")
			shutdown(ctx, cfg.GracefulShutdownTimeout,
				shutdownStep{name: "webserver", stop: stopWebserver},
				shutdownStep{name: "scheduler", stop: func(ctx context.Context) error {
					if err := sched.Stop(ctx); err != nil {
						// storage closes next, so the remaining probes are not recorded
						return fmt.Errorf("dropping in-flight probes: %w", err)
					}

					return nil
				}},
			)

			return nil
		},
	}

	return cmd
}

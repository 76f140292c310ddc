// Package scheduler periodically probes every registered domain and records
// the outcome. A sweep fans out one task per domain and the next sweep is
// scheduled only after all of them finished, so sweeps never overlap.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"uptime/internal/config"
	"uptime/internal/probe"
	"uptime/pkg/domain"
	"uptime/pkg/logger"
	"uptime/pkg/storage"
)

const defaultInterval = 5 * time.Minute

var (
	// ErrAlreadyStarted is returned by Start when the scheduler was started before.
	ErrAlreadyStarted = errors.New("scheduler already started")
	// ErrNotStarted is returned by Stop when the scheduler was never started.
	ErrNotStarted = errors.New("scheduler not started")
)

// Options configure the sweep loop.
type Options struct {
	// Interval is the pause between the end of one sweep and the start of the
	// next one. Defaults to 5 minutes.
	Interval time.Duration
	// MaxConcurrentProbes caps the number of probes in flight within a sweep.
	// Zero or less probes every domain at once.
	MaxConcurrentProbes int
	// MeterProvider creates the scheduler instruments. Defaults to the global
	// provider.
	MeterProvider metric.MeterProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Interval:            cfg.Scheduler.Interval,
		MaxConcurrentProbes: cfg.Scheduler.MaxConcurrentProbes,
	}
}

// SweepReport summarizes a single sweep.
type SweepReport struct {
	// Domains is the number of domains in the sweep snapshot.
	Domains int
	// Recorded counts stored examinations, including unreachable ones.
	Recorded int
	// Unreachable counts stored examinations with domain.StatusUnreachable.
	Unreachable int
	// Skipped counts probes that were intentionally not stored.
	Skipped int
	// Failed counts tasks that could not store their examination or panicked.
	Failed int
	// Duration is the wall time of the sweep.
	Duration time.Duration
}

func (r *SweepReport) add(o outcome) {
	switch o {
	case outcomeRecorded:
		r.Recorded++
	case outcomeUnreachable:
		r.Recorded++
		r.Unreachable++
	case outcomeSkipped:
		r.Skipped++
	case outcomeFailed:
		r.Failed++
	}
}

// Scheduler runs sweeps on a fixed cadence. A Scheduler can be started once.
type Scheduler struct {
	storage storage.Storage
	prober  probe.Prober
	options Options
	instr   *instruments

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Scheduler that lists domains from and writes examinations to
// storage, probing with prober.
func New(storage storage.Storage, prober probe.Prober, options Options) (*Scheduler, error) {
	if options.Interval <= 0 {
		options.Interval = defaultInterval
	}
	if options.MeterProvider == nil {
		options.MeterProvider = otel.GetMeterProvider()
	}

	instr, err := newInstruments(options.MeterProvider)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		storage: storage,
		prober:  prober,
		options: options,
		instr:   instr,
	}, nil
}

// Start launches the sweep loop in the background. The first sweep begins
// immediately. The loop ends when Stop is called or ctx is canceled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)

	return nil
}

// Stop cancels the loop and waits for the running sweep, if any, to drain.
// Probes interrupted by the cancellation are not recorded. Waiting is bounded
// by ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if done == nil {
		return ErrNotStarted
	}

	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("could not wait for scheduler to stop: %w", ctx.Err())
	}
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	logger.Info(ctx, "scheduler started",
		zap.Duration("interval", s.options.Interval),
		zap.Int("maxConcurrentProbes", s.options.MaxConcurrentProbes))

	for {
		if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "sweep failed", zap.Error(err))
		}

		// armed only after the sweep drained
		timer := time.NewTimer(s.options.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info(ctx, "scheduler stopped")

			return
		case <-timer.C:
		}
	}
}

// Sweep probes every registered domain once and stores the outcomes. It
// returns after every probe task finished. A failure of one task never affects
// the others; only failing to list domains fails the sweep.
func (s *Scheduler) Sweep(ctx context.Context) (SweepReport, error) {
	started := time.Now()

	domains, err := s.storage.Domains(ctx)
	if err != nil {
		s.instr.sweepDone(ctx, time.Since(started), false)

		return SweepReport{}, fmt.Errorf("could not list domains: %w", err)
	}

	report := SweepReport{Domains: len(domains)}
	if len(domains) == 0 {
		logger.Debug(ctx, "no domains registered, nothing to sweep")
		report.Duration = time.Since(started)
		s.instr.sweepDone(ctx, report.Duration, true)

		return report, nil
	}

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	if s.options.MaxConcurrentProbes > 0 {
		g.SetLimit(s.options.MaxConcurrentProbes)
	}
	for _, d := range domains {
		g.Go(func() error {
			o := s.examine(ctx, d)
			s.instr.examinationDone(ctx, o)

			mu.Lock()
			report.add(o)
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	report.Duration = time.Since(started)
	s.instr.sweepDone(ctx, report.Duration, true)

	logger.Info(ctx, "sweep finished",
		zap.Int("domains", report.Domains),
		zap.Int("recorded", report.Recorded),
		zap.Int("unreachable", report.Unreachable),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration))

	return report, nil
}

type outcome int

const (
	outcomeRecorded outcome = iota
	outcomeUnreachable
	outcomeSkipped
	outcomeFailed
)

func (o outcome) String() string {
	switch o {
	case outcomeRecorded:
		return "recorded"
	case outcomeUnreachable:
		return "unreachable"
	case outcomeSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// examine probes d and stores the examination in its own transaction.
func (s *Scheduler) examine(ctx context.Context, d domain.Domain) (result outcome) {
	ctx = logger.WithFields(ctx, zap.Int64("domainId", int64(d.ID)), zap.String("domain", d.Name))

	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "probe task panicked", zap.Any("panic", r), zap.Stack("stack"))
			result = outcomeFailed
		}
	}()

	exam, err := s.prober.Probe(ctx, d)
	if ctx.Err() != nil {
		logger.Debug(ctx, "probe interrupted by shutdown, not recorded", zap.Error(err))

		return outcomeSkipped
	}
	if exam == nil {
		logger.Warn(ctx, "probe produced no examination", zap.Error(err))

		return outcomeSkipped
	}
	if err != nil {
		logger.Warn(ctx, "domain unreachable", zap.Error(err))
	}

	exam.DomainID = d.ID
	s.instr.probeDone(ctx, *exam)

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := tx.StoreExamination(ctx, *exam)

		return err
	}); err != nil {
		if errors.Is(err, domain.ErrExaminationCreate) {
			logger.Warn(ctx, "examination rejected", zap.Error(err))

			return outcomeSkipped
		}

		logger.Error(ctx, "could not store examination", zap.Error(err))

		return outcomeFailed
	}

	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "examination recorded",
			zap.Int("statusCode", exam.StatusCode),
			zap.Duration("responseTime", exam.ResponseTime))
	}

	if !exam.Reachable() {
		return outcomeUnreachable
	}

	return outcomeRecorded
}

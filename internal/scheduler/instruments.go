package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"uptime/pkg/domain"
)

const meterName = "uptime/internal/scheduler"

type instruments struct {
	sweeps        metric.Int64Counter
	sweepDuration metric.Float64Histogram
	probeDuration metric.Float64Histogram
	examinations  metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(meterName)

	sweeps, err := meter.Int64Counter("monitor.sweeps",
		metric.WithDescription("Number of completed sweeps by result."))
	if err != nil {
		return nil, fmt.Errorf("could not create sweeps counter: %w", err)
	}
	sweepDuration, err := meter.Float64Histogram("monitor.sweep.duration",
		metric.WithDescription("Wall time of a sweep over all domains."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create sweep duration histogram: %w", err)
	}
	probeDuration, err := meter.Float64Histogram("monitor.probe.duration",
		metric.WithDescription("Response time observed by probes."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create probe duration histogram: %w", err)
	}
	examinations, err := meter.Int64Counter("monitor.examinations",
		metric.WithDescription("Probe tasks by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create examinations counter: %w", err)
	}

	return &instruments{
		sweeps:        sweeps,
		sweepDuration: sweepDuration,
		probeDuration: probeDuration,
		examinations:  examinations,
	}, nil
}

func (i *instruments) sweepDone(ctx context.Context, took time.Duration, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	attrs := metric.WithAttributes(attribute.String("result", result))

	i.sweeps.Add(ctx, 1, attrs)
	i.sweepDuration.Record(ctx, took.Seconds(), attrs)
}

func (i *instruments) probeDone(ctx context.Context, exam domain.Examination) {
	i.probeDuration.Record(ctx, exam.ResponseTime.Seconds(),
		metric.WithAttributes(attribute.String("status_class", statusClass(exam.StatusCode))))
}

func (i *instruments) examinationDone(ctx context.Context, o outcome) {
	i.examinations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", o.String())))
}

// statusClass buckets status codes as "2xx", "4xx" and so on.
func statusClass(code int) string {
	if code == domain.StatusUnreachable {
		return "unreachable"
	}

	return fmt.Sprintf("%dxx", code/100)
}

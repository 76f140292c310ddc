// Package probe checks whether registered domains answer HTTP requests and
// measures how long they take to do so.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"uptime/internal/config"
	"uptime/pkg/domain"
	"uptime/pkg/serrors"
)

const (
	tracerName = "uptime/internal/probe"

	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 64 << 10
)

// Options configure how probes are issued.
type Options struct {
	// Timeout bounds a single probe, from dialing to receiving response headers.
	Timeout time.Duration
	// UserAgent is sent with every probe when set.
	UserAgent string
	// MaxBodyBytes caps how much of the response body is drained before the
	// connection is released.
	MaxBodyBytes int64
	// TracerProvider creates the spans wrapping each probe. Defaults to the
	// global provider.
	TracerProvider trace.TracerProvider
	// Now is the clock used to timestamp probes. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Timeout:      cfg.Prober.Timeout,
		UserAgent:    cfg.Prober.UserAgent,
		MaxBodyBytes: cfg.Prober.MaxBodyBytes,
	}
}

// HTTPProber probes domains with a single GET request. It is safe for
// concurrent use.
type HTTPProber struct {
	httpClient *http.Client
	options    Options
	tracer     trace.Tracer
}

// TargetURL returns the URL probed for a registered domain name. Names stored
// without a scheme are probed over https.
func TargetURL(name string) string {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return name
	}

	return "https://" + name
}

// Probe issues one GET to d and reports the status code and the time until the
// response headers arrived.
func (p *HTTPProber) Probe(ctx context.Context, d domain.Domain) (*domain.Examination, error) {
	target := TargetURL(d.Name)

	ctx, span := p.tracer.Start(ctx, "probe.http",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int64("domain.id", int64(d.ID)),
			attribute.String("url.full", target),
		))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, p.options.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		span.SetStatus(codes.Error, "invalid request")

		return nil, serrors.Wrap(serrors.ErrBadRequest, fmt.Errorf("%w: %w", domain.ErrProbe, err),
			"could not build request for %q", d.Name)
	}
	if p.options.UserAgent != "" {
		req.Header.Set("User-Agent", p.options.UserAgent)
	}

	start := p.options.Now()
	resp, err := p.httpClient.Do(req)
	end := p.options.Now()

	elapsed := end.Sub(start)
	if elapsed < 0 {
		if resp != nil {
			_ = resp.Body.Close()
		}
		span.SetStatus(codes.Error, "negative response time")

		return nil, serrors.Wrap(serrors.ErrInternal,
			fmt.Errorf("%w: negative response time %s", domain.ErrProbe, elapsed),
			"clock went backwards while probing %q", d.Name)
	}

	exam := &domain.Examination{
		DomainID:        d.ID,
		ExaminationTime: end,
		ResponseTime:    elapsed,
	}

	if err != nil {
		exam.StatusCode = domain.StatusUnreachable
		span.RecordError(err)
		span.SetStatus(codes.Error, "unreachable")

		kind := serrors.ErrUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			kind = serrors.ErrTimeout
		}

		return exam, serrors.Wrap(kind, fmt.Errorf("%w: %w", domain.ErrProbe, err), "could not reach %q", d.Name)
	}

	// drain a bounded amount so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, p.options.MaxBodyBytes))
	_ = resp.Body.Close()

	exam.StatusCode = resp.StatusCode
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	return exam, nil
}

// Ensure HTTPProber conforms to the Prober interface at compile time.
var _ Prober = (*HTTPProber)(nil)

// New constructs an HTTPProber that sends requests with httpClient.
func New(httpClient *http.Client, options Options) *HTTPProber {
	if options.Timeout <= 0 {
		options.Timeout = defaultTimeout
	}
	if options.MaxBodyBytes <= 0 {
		options.MaxBodyBytes = defaultMaxBodyBytes
	}
	if options.TracerProvider == nil {
		options.TracerProvider = otel.GetTracerProvider()
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &HTTPProber{
		httpClient: httpClient,
		options:    options,
		tracer:     options.TracerProvider.Tracer(tracerName),
	}
}

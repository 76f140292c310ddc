package probe

import (
	"context"

	"uptime/pkg/domain"
)

// Prober performs a single liveness check against a domain.
//
//go:generate mockgen -package mockprobe -source=interface.go -destination=mock/mockprobe.go *
type Prober interface {
	// Probe checks d once and returns the observed examination. Transport
	// failures still produce an examination with domain.StatusUnreachable,
	// returned together with an error wrapping domain.ErrProbe. A nil
	// examination means nothing trustworthy was observed.
	Probe(ctx context.Context, d domain.Domain) (*domain.Examination, error)
}

package monitor

import (
	"context"

	"uptime/pkg/domain"
)

// Service is the consumer-facing side of the monitor: registering domains and
// reading back what the scheduler recorded for them.
//
//go:generate mockgen -package mockmonitor -source=interface.go -destination=mock/mockmonitor.go *
type Service interface {
	// Register stores a new domain. Registering a name, or any spelling with
	// the same normalized form, twice fails with domain.ErrDomainAlreadyExists.
	Register(ctx context.Context, raw string) (*domain.Domain, error)
	// Domains lists every registered domain in registration order.
	Domains(ctx context.Context) ([]domain.Domain, error)
	// DomainDetail returns a domain and its examination history. name may be
	// any spelling that normalizes to the registered domain's key.
	DomainDetail(ctx context.Context, name string) (*domain.DomainDetail, error)
}

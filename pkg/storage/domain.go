package storage

import (
	"context"

	"uptime/pkg/domain"
)

// DomainStorage persists registered domains. Domains are never updated or
// deleted once stored.
type DomainStorage interface {
	// StoreDomain inserts a domain and returns it with its generated ID. A name or
	// normalized form that is already registered yields an error matching
	// domain.ErrDomainAlreadyExists and serrors.ErrConflict. Uniqueness is left
	// to the database, no read-before-write is performed.
	StoreDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error)
	// Domains returns every registered domain ordered by ID.
	Domains(ctx context.Context) ([]domain.Domain, error)
	// DomainWithExaminations returns the domain whose normalized form equals
	// normalized, with its examinations ordered by examination time. A miss
	// yields an error matching domain.ErrDomainNotFound and serrors.ErrNotFound.
	DomainWithExaminations(ctx context.Context, normalized string) (*domain.DomainDetail, error)
}

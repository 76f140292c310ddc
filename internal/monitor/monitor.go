// Package monitor implements domain registration and history lookups on top of
// the storage layer.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"uptime/pkg/domain"
	"uptime/pkg/logger"
	"uptime/pkg/serrors"
	"uptime/pkg/storage"
)

// MaxDomainLength is the longest domain string that can be registered.
const MaxDomainLength = 255

type monitor struct {
	storage storage.Storage
}

// Register validates raw, derives its normalized key and stores the domain in
// its own transaction. Uniqueness is enforced by the storage engine.
func (m monitor) Register(ctx context.Context, raw string) (*domain.Domain, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "domain is required")
	}
	if utf8.RuneCountInString(raw) > MaxDomainLength {
		return nil, serrors.With(serrors.ErrBadRequest, "domain must be at most %d characters", MaxDomainLength)
	}

	normalized := NormalizeURL(raw)
	if normalized == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "domain %q has no host", raw)
	}

	var stored *domain.Domain
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		stored, err = tx.StoreDomain(ctx, domain.Domain{Name: raw, Normalized: normalized})

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not register domain: %w", err)
	}

	logger.Info(ctx, "domain registered",
		zap.Int64("domainId", int64(stored.ID)),
		zap.String("domain", stored.Name))

	return stored, nil
}

// Domains returns all domains in store order with their display form
// recomputed from the registered name.
func (m monitor) Domains(ctx context.Context) ([]domain.Domain, error) {
	domains, err := m.storage.Domains(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list domains: %w", err)
	}

	for i := range domains {
		domains[i].Normalized = NormalizeURL(domains[i].Name)
	}

	return domains, nil
}

// DomainDetail looks a domain up by the normalized form of name. The domain and
// its examinations are read in one transaction so they are consistent with
// each other.
func (m monitor) DomainDetail(ctx context.Context, name string) (*domain.DomainDetail, error) {
	key := NormalizeURL(strings.TrimSpace(name))
	if key == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "domain is required")
	}

	var detail *domain.DomainDetail
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		detail, err = tx.DomainWithExaminations(ctx, key)

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not get domain detail: %w", err)
	}

	return detail, nil
}

// New creates a Service backed by the provided storage.
func New(storage storage.Storage) Service {
	return &monitor{
		storage: storage,
	}
}

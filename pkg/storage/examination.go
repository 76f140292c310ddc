package storage

import (
	"context"

	"uptime/pkg/domain"
)

// ExaminationStorage records probe outcomes. Examinations are append-only.
type ExaminationStorage interface {
	// StoreExamination inserts a single examination and returns it with its
	// generated ID. Malformed payloads and references to unknown domains yield
	// an error matching domain.ErrExaminationCreate.
	StoreExamination(ctx context.Context, e domain.Examination) (*domain.Examination, error)
}

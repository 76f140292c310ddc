package sqldb

import (
	"context"
	"fmt"

	"uptime/pkg/domain"
	"uptime/pkg/serrors"
)

const (
	examinationsTable = "examinations"
)

func (s *SQLDB) StoreExamination(ctx context.Context, e domain.Examination) (*domain.Examination, error) {
	if err := e.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "invalid examination")
	}

	var row SQLExamination
	row.FromDomain(e)

	id, err := s.insert(ctx, examinationsTable, row)
	if err != nil {
		switch classify(err) {
		case violationForeignKey, violationCheck:
			return nil, serrors.Wrap(serrors.ErrInternal, fmt.Errorf("%w: %w", domain.ErrExaminationCreate, err),
				"could not store examination of domain %d", e.DomainID)
		default:
			return nil, fmt.Errorf("could not store examination: %w", err)
		}
	}

	stored := row.ToDomain()
	stored.ID = domain.ExaminationID(id)

	return &stored, nil
}

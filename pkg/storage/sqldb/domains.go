package sqldb

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"uptime/pkg/domain"
	"uptime/pkg/serrors"
)

const (
	domainsTable = "domains"
)

func (s *SQLDB) StoreDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error) {
	var row SQLDomain
	row.FromDomain(d)

	id, err := s.insert(ctx, domainsTable, row)
	if err != nil {
		if classify(err) == violationUnique {
			return nil, serrors.Wrap(serrors.ErrConflict, domain.ErrDomainAlreadyExists,
				"domain %q already exists", d.Name)
		}

		return nil, fmt.Errorf("could not store domain: %w", err)
	}

	d.ID = domain.DomainID(id)

	return &d, nil
}

// Domains returns every registered domain ordered by id.
func (s *SQLDB) Domains(ctx context.Context) ([]domain.Domain, error) {
	var rows []SQLDomain
	if err := s.Builder.From(domainsTable).
		Prepared(true).
		Order(goqu.I("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch domains: %w", err)
	}

	domains := make([]domain.Domain, 0, len(rows))
	for i := range rows {
		domains = append(domains, rows[i].ToDomain())
	}

	return domains, nil
}

// DomainWithExaminations looks the domain up by its normalized form and eagerly
// loads its examinations, oldest first.
func (s *SQLDB) DomainWithExaminations(ctx context.Context, normalized string) (*domain.DomainDetail, error) {
	var row SQLDomain
	found, err := s.Builder.From(domainsTable).
		Prepared(true).
		Where(goqu.I("normalized").Eq(normalized)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch domain: %w", err)
	}
	if !found {
		return nil, serrors.Wrap(serrors.ErrNotFound, domain.ErrDomainNotFound, "domain %q not found", normalized)
	}

	var exams []SQLExamination
	if err := s.Builder.From(examinationsTable).
		Prepared(true).
		Where(goqu.I("domain_id").Eq(row.ID)).
		Order(goqu.I("examination_time").Asc(), goqu.I("id").Asc()).
		ScanStructsContext(ctx, &exams); err != nil {
		return nil, fmt.Errorf("could not fetch examinations of domain %d: %w", row.ID, err)
	}

	return &domain.DomainDetail{
		Domain:       row.ToDomain(),
		Examinations: sqlExaminationsToDomain(exams),
	}, nil
}

// insert stores a single row and returns its generated id. goqu has no
// RETURNING support for SQLite, so the driver's last insert id is used there.
func (s *SQLDB) insert(ctx context.Context, table string, row any) (int64, error) {
	ds := s.Builder.Insert(table).Prepared(true).Rows(row)

	if s.dialect == DialectSQLite {
		res, err := ds.Executor().ExecContext(ctx)
		if err != nil {
			return 0, err
		}

		return res.LastInsertId()
	}

	var id int64
	if _, err := ds.Returning(goqu.I("id")).Executor().ScanValContext(ctx, &id); err != nil {
		return 0, err
	}

	return id, nil
}

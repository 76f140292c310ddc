package sqldb

import (
	"time"

	"uptime/pkg/domain"
)

type SQLDomain struct {
	ID         int64     `db:"id"         goqu:"skipinsert"`
	Domain     string    `db:"domain"`
	Normalized string    `db:"normalized"`
	CreatedAt  time.Time `db:"created_at" goqu:"skipinsert"`
}

func (d *SQLDomain) ToDomain() domain.Domain {
	return domain.Domain{
		ID:         domain.DomainID(d.ID),
		Name:       d.Domain,
		Normalized: d.Normalized,
	}
}

func (d *SQLDomain) FromDomain(dom domain.Domain) {
	*d = SQLDomain{
		ID:         int64(dom.ID),
		Domain:     dom.Name,
		Normalized: dom.Normalized,
	}
}

type SQLExamination struct {
	ID              int64     `db:"id"               goqu:"skipinsert"`
	DomainID        int64     `db:"domain_id"`
	StatusCode      int       `db:"status_code"`
	ExaminationTime time.Time `db:"examination_time"`
	ResponseTimeNS  int64     `db:"response_time_ns"`
}

func (e *SQLExamination) ToDomain() domain.Examination {
	return domain.Examination{
		ID:              domain.ExaminationID(e.ID),
		DomainID:        domain.DomainID(e.DomainID),
		StatusCode:      e.StatusCode,
		ExaminationTime: e.ExaminationTime.UTC(),
		ResponseTime:    time.Duration(e.ResponseTimeNS),
	}
}

func (e *SQLExamination) FromDomain(exam domain.Examination) {
	*e = SQLExamination{
		ID:              int64(exam.ID),
		DomainID:        int64(exam.DomainID),
		StatusCode:      exam.StatusCode,
		ExaminationTime: exam.ExaminationTime.UTC(),
		ResponseTimeNS:  exam.ResponseTime.Nanoseconds(),
	}
}

func sqlExaminationsToDomain(rows []SQLExamination) []domain.Examination {
	exams := make([]domain.Examination, 0, len(rows))
	for i := range rows {
		exams = append(exams, rows[i].ToDomain())
	}

	return exams
}

package domain

import (
	"fmt"
	"time"
)

// ExaminationID uniquely identifies a recorded examination.
type ExaminationID int64

// StatusUnreachable is stored as the status code of an examination whose probe
// failed at the transport level (DNS failure, refused connection, timeout).
const StatusUnreachable = 0

// Examination is one recorded outcome of probing a domain.
type Examination struct {
	ID       ExaminationID `json:"id"`
	DomainID DomainID      `json:"domain_id"`

	// StatusCode is the HTTP status of the response or StatusUnreachable.
	StatusCode int `json:"status_code"`
	// ExaminationTime is when the response (or the failure) was observed.
	ExaminationTime time.Time `json:"examination_time"`
	// ResponseTime is the time between sending the request and receiving the
	// response headers. Never negative.
	ResponseTime time.Duration `json:"response_time"`
}

// Reachable reports whether the probe received an HTTP response at all.
func (e Examination) Reachable() bool {
	return e.StatusCode != StatusUnreachable
}

// Validate checks the invariants an examination must satisfy before it can be
// persisted. The returned error wraps ErrExaminationCreate.
func (e Examination) Validate() error {
	switch {
	case e.DomainID <= 0:
		return fmt.Errorf("%w: invalid domain id %d", ErrExaminationCreate, e.DomainID)
	case e.ResponseTime < 0:
		return fmt.Errorf("%w: negative response time %s", ErrExaminationCreate, e.ResponseTime)
	case e.ExaminationTime.IsZero():
		return fmt.Errorf("%w: missing examination time", ErrExaminationCreate)
	case e.StatusCode < 0:
		return fmt.Errorf("%w: invalid status code %d", ErrExaminationCreate, e.StatusCode)
	}

	return nil
}

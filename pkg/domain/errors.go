package domain

import "errors"

// Sentinel errors of the monitoring domain. Storage and service layers wrap them
// into serrors values so that both errors.Is(err, ErrDomainNotFound) and
// errors.Is(err, serrors.ErrNotFound) hold.
var (
	// ErrDomainAlreadyExists is returned when registering a domain whose name or
	// normalized form is already registered.
	ErrDomainAlreadyExists = errors.New("domain already exists")
	// ErrDomainNotFound is returned when a lookup matches no registered domain.
	ErrDomainNotFound = errors.New("domain not found")
	// ErrExaminationCreate is returned when an examination payload is malformed
	// or references a domain that does not exist.
	ErrExaminationCreate = errors.New("could not create examination")
	// ErrProbe is returned when a single probe could not complete.
	ErrProbe = errors.New("probe failed")
)

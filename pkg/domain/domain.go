package domain

// DomainID uniquely identifies a registered domain. It is generated by the
// storage engine.
type DomainID int64

// Domain is a registered target being monitored.
type Domain struct {
	// ID is the storage-generated identifier.
	ID DomainID `json:"id"`
	// Name is the domain exactly as it was registered, e.g. "https://www.google.com/".
	Name string `json:"domain"`
	// Normalized is the canonical lookup key derived from Name (scheme, "www." and
	// trailing slash stripped). It is unique across all domains.
	Normalized string `json:"-"`
}

// DomainDetail is a domain together with its full examination history.
type DomainDetail struct {
	Domain

	// Examinations are ordered by examination time, oldest first. It is empty,
	// never nil, for a domain that was not probed yet.
	Examinations []Examination `json:"examinations"`
}

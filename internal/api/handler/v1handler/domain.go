package v1handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"

	"uptime/pkg/domain"
	"uptime/pkg/serrors"
)

const maxRequestBytes = 1 << 16

// AddDomainRequest is the body of POST /add_domain.
type AddDomainRequest struct {
	Domain string `validate:"required,http_url,max=255"`
}

// DecodeAddDomainRequest reads an AddDomainRequest from its JSON form.
// Unknown fields are ignored.
func DecodeAddDomainRequest(d *jx.Decoder) (AddDomainRequest, error) {
	var req AddDomainRequest
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "domain":
			v, err := d.Str()
			if err != nil {
				return fmt.Errorf("domain must be a string: %w", err)
			}
			req.Domain = v

			return nil
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return AddDomainRequest{}, err //nolint: wrapcheck
	}

	return req, nil
}

// EncodeDomain writes d as {"id", "domain"} using name as the domain value.
func EncodeDomain(e *jx.Encoder, d domain.Domain, name string) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(int64(d.ID))
	e.FieldStart("domain")
	e.Str(name)
	e.ObjEnd()
}

// AddDomain registers a new domain. It answers 201 with the stored domain, 400
// for a malformed URL and 409 for a duplicate.
func (h Handler) AddDomain(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}

	req, err := DecodeAddDomainRequest(jx.DecodeBytes(body))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "%s", validationMessage(err)))

		return
	}

	d, err := h.deps.Monitor.Register(r.Context(), req.Domain)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var e jx.Encoder
	EncodeDomain(&e, *d, d.Name)
	writeJSON(r.Context(), w, http.StatusCreated, &e)
}

// ListDomains answers with every registered domain in its normalized form.
func (h Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	domains, err := h.deps.Monitor.Domains(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var e jx.Encoder
	e.ArrStart()
	for _, d := range domains {
		EncodeDomain(&e, d, d.Normalized)
	}
	e.ArrEnd()

	writeJSON(r.Context(), w, http.StatusOK, &e)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}

	switch verrs[0].Tag() {
	case "required":
		return "domain is required"
	case "max":
		return "domain must be at most " + verrs[0].Param() + " characters"
	default:
		return "domain must be an http or https URL"
	}
}

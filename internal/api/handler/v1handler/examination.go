package v1handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/jx"

	"uptime/pkg/domain"
	"uptime/pkg/serrors"
)

// ExaminationsPath prefixes the domain in GET /examinations/{domain}.
const ExaminationsPath = "/examinations/"

// FormatISODuration renders d as an ISO-8601 duration in seconds, e.g. "PT0.123S".
func FormatISODuration(d time.Duration) string {
	return "PT" + strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "S"
}

// EncodeExamination writes a single examination.
func EncodeExamination(e *jx.Encoder, exam domain.Examination) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(int64(exam.ID))
	e.FieldStart("status_code")
	e.Int(exam.StatusCode)
	e.FieldStart("examination_time")
	e.Str(exam.ExaminationTime.UTC().Format(time.RFC3339Nano))
	e.FieldStart("response_time")
	e.Str(FormatISODuration(exam.ResponseTime))
	e.FieldStart("domain_id")
	e.Int64(int64(exam.DomainID))
	e.ObjEnd()
}

// EncodeDomainDetail writes a domain together with its examination history.
func EncodeDomainDetail(e *jx.Encoder, detail domain.DomainDetail) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(int64(detail.ID))
	e.FieldStart("domain")
	e.Str(detail.Name)
	e.FieldStart("examinations")
	e.ArrStart()
	for _, exam := range detail.Examinations {
		EncodeExamination(e, exam)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// GetExaminations answers with the history of the domain named by the rest of
// the path. Any spelling with the same normalized form resolves.
func (h Handler) GetExaminations(w http.ResponseWriter, r *http.Request) {
	// the escaped form is decoded exactly once so %2F and / address the same key
	escaped, ok := strings.CutPrefix(r.URL.EscapedPath(), ExaminationsPath)
	if !ok {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "domain is required"))

		return
	}

	name, err := url.PathUnescape(escaped)
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain"))

		return
	}

	detail, err := h.deps.Monitor.DomainDetail(r.Context(), name)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var e jx.Encoder
	EncodeDomainDetail(&e, *detail)
	writeJSON(r.Context(), w, http.StatusOK, &e)
}

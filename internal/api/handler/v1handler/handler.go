// Package v1handler implements the HTTP endpoints of the monitor API.
package v1handler

import (
	"context"
	"net/http"

	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"uptime/internal/monitor"
	"uptime/pkg/logger"
	"uptime/pkg/serrors"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Monitor monitor.Service
}

type Handler struct {
	deps     Deps
	validate *validator.Validate
}

func New(deps Deps) *Handler {
	return &Handler{
		deps:     deps,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// NewError maps err to a client-safe response. Internal errors are logged and
// reported without detail.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status := serrors.HTTPStatus(kind)

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: serrors.PublicMessage(err),
		},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Str(res.Response.Code)
	e.FieldStart("message")
	e.Str(res.Response.Message)
	e.ObjEnd()

	writeJSON(r.Context(), w, res.StatusCode, &e)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}

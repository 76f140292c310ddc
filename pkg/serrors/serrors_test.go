package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"uptime/pkg/serrors"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "domain %q not found", "example.com")
	require.Equal(t, `domain "example.com" not found`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "loading domain")
	require.Equal(t, "loading domain: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrConflict, base, "storing")

	require.ErrorIs(t, e, serrors.ErrConflict)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound)

	// matching survives further fmt wrapping
	wrapped := fmt.Errorf("could not register: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrConflict)
	require.ErrorIs(t, wrapped, base)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))
	require.Equal(t, serrors.ErrConflict,
		serrors.KindOf(fmt.Errorf("outer: %w", serrors.With(serrors.ErrConflict, "dupe"))))
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, http.StatusNotFound, serrors.HTTPStatus(serrors.ErrNotFound))
	require.Equal(t, http.StatusBadRequest, serrors.HTTPStatus(serrors.ErrBadRequest))
	require.Equal(t, http.StatusConflict, serrors.HTTPStatus(serrors.ErrConflict))
	require.Equal(t, http.StatusGatewayTimeout, serrors.HTTPStatus(serrors.ErrTimeout))
	require.Equal(t, http.StatusServiceUnavailable, serrors.HTTPStatus(serrors.ErrUnavailable))
	require.Equal(t, http.StatusInternalServerError, serrors.HTTPStatus(serrors.ErrInternal))
	require.Equal(t, http.StatusInternalServerError, serrors.HTTPStatus(serrors.NewKind("OTHER")))
}

func TestPublicMessage(t *testing.T) {
	require.Equal(t, "internal error", serrors.PublicMessage(errors.New("pq: password authentication failed")))
	require.Equal(t, "internal error",
		serrors.PublicMessage(serrors.With(serrors.ErrInternal, "secret detail")))
	require.Equal(t, "domain already exists",
		serrors.PublicMessage(serrors.Wrap(serrors.ErrConflict, errors.New("23505"), "domain already exists")))
	require.Equal(t, "resource not found", serrors.PublicMessage(serrors.ErrNotFound))
}

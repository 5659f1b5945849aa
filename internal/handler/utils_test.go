package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarhub/internal/errdefs"
)

func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestMapErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", errdefs.ErrValidation, http.StatusBadRequest},
		{"Authentication", errdefs.ErrAuthentication, http.StatusUnauthorized},
		{"PermissionDenied", errdefs.ErrPermissionDenied, http.StatusForbidden},
		{"NotFound", errdefs.ErrNotFound, http.StatusNotFound},
		{"AlreadyExists", errdefs.ErrAlreadyExists, http.StatusConflict},
		{"Upstream", errdefs.ErrUpstream, http.StatusInternalServerError},
		{"Unknown", errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapErr(tc.err))
		})
	}
}

func TestMapErr_WrappedSentinel(t *testing.T) {
	err := errors.Join(errors.New("context"), errdefs.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, mapErr(err))
}

func TestParsePagination(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/materials?page=2&size=10", nil)
	page, size, err := parsePagination(r)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page)
	assert.Equal(t, int64(10), size)
}

func TestParsePagination_NonNumeric(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/materials?page=abc&size=10", nil)
	_, _, err := parsePagination(r)
	assert.True(t, errors.Is(err, errdefs.ErrValidation))

	r = httptest.NewRequest(http.MethodGet, "/materials?page=1", nil)
	_, _, err = parsePagination(r)
	assert.True(t, errors.Is(err, errdefs.ErrValidation))
}

func TestParsePathParam_Missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/note/", nil)
	r = withChiParam(r, "other", "x")
	_, err := parsePathParam(r, "id")
	assert.True(t, errors.Is(err, errdefs.ErrValidation))
}

func TestRespondError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(context.Background(), rec, errors.New("mongo: topology closed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "mongo")
}

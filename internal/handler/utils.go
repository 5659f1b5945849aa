package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"scholarhub/internal/errdefs"
	"scholarhub/pkg/logging"
)

func mapErr(err error) int {
	switch {
	case errors.Is(err, errdefs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	w.Write(data)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

// respondError maps an error to its HTTP status. Internal failures are
// logged and collapsed to a generic message so store detail never leaks.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	statusCode := mapErr(err)
	if statusCode == http.StatusInternalServerError {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "request failed", zap.Error(err))
		}
		writeErrorJSON(w, statusCode, http.StatusText(statusCode))
		return
	}
	writeErrorJSON(w, statusCode, err.Error())
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", errdefs.ErrValidation)
	}
	return nil
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param %s", errdefs.ErrValidation, key)
	}
	return val, nil
}

// parsePagination reads 1-indexed page and size query params. Non-numeric
// values are rejected here; positivity is enforced by the services.
func parsePagination(r *http.Request) (page, size int64, err error) {
	page, err = strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: page must be a number", errdefs.ErrValidation)
	}
	size, err = strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size must be a number", errdefs.ErrValidation)
	}
	return page, size, nil
}

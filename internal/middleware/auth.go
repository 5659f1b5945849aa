package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"scholarhub/internal/auth"
	"scholarhub/internal/ctxdata"
	"scholarhub/internal/errdefs"
	"scholarhub/internal/model"
	"scholarhub/pkg/logging"
)

type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// RoleStore looks up the current user record for an authenticated email.
type RoleStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// NewAuthMiddleware rejects requests without a valid bearer token and puts
// the verified identity into the request context for downstream handlers.
func NewAuthMiddleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			header := r.Header.Get("Authorization")
			if header == "" {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no authorization header", zap.String("path", r.URL.Path))
				}
				writeMessage(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeMessage(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			claims, err := parser.Parse(parts[1])
			if err != nil {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "token rejected", zap.String("path", r.URL.Path), zap.Error(err))
				}
				writeMessage(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ctx = ctxdata.WithUserEmail(ctx, claims.Email)
			ctx = ctxdata.WithUserName(ctx, claims.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewRoleMiddleware passes only callers whose current role matches. The role
// is loaded from the user collection on every request so a revoked role
// takes effect immediately, not at token expiry. A missing record or a role
// mismatch is a denial; a store failure is an internal error.
func NewRoleMiddleware(store RoleStore, role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			email, ok := ctxdata.GetUserEmail(ctx)
			if !ok {
				writeMessage(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			user, err := store.GetByEmail(ctx, email)
			if err != nil && !errors.Is(err, errdefs.ErrNotFound) {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Error(ctx, "role lookup failed",
						zap.String("path", r.URL.Path),
						zap.Error(err),
					)
				}
				writeMessage(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
				return
			}
			if err != nil || user.Role != role {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "role check failed",
						zap.String("path", r.URL.Path),
						zap.String("required_role", role.String()),
					)
				}
				writeMessage(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"message": message})
	w.Write(resp)
}

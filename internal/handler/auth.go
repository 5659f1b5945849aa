package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scholarhub/internal/errdefs"
)

type TokenIssuer interface {
	Issue(email, name string) (string, error)
}

type AuthHandler struct {
	tokens TokenIssuer
}

func NewAuthHandler(tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/jwt", h.IssueToken)
}

func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	if payload.Email == "" {
		respondError(r.Context(), w, fmt.Errorf("%w: email is required", errdefs.ErrValidation))
		return
	}

	token, err := h.tokens.Issue(payload.Email, payload.Name)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scholarhub/internal/model"
)

type ReviewService interface {
	Create(ctx context.Context, review *model.Review) (*model.InsertResult, error)
	List(ctx context.Context) ([]*model.Review, error)
}

type ReviewHandler struct {
	service ReviewService
}

func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/reviews", h.List)
	r.With(authMiddleware).Post("/review", h.Create)
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.List(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var review model.Review
	if err := decodeJSON(r, &review); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := h.service.Create(r.Context(), &review)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

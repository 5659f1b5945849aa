package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scholarhub/internal/model"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.BookedSession) (*model.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]*model.BookedSession, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r chi.Router) {
	r.Get("/booked-session/{email}", h.ListByEmail)
	// path spelling kept as deployed clients call it
	r.Post("/booked-sesssion", h.Create)
}

func (h *BookingHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email, err := parsePathParam(r, "email")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	bookings, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var booking model.BookedSession
	if err := decodeJSON(r, &booking); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := h.service.Create(r.Context(), &booking)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

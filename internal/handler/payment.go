package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, fee *float64) (string, error)
}

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/create-payment-intent", h.CreateIntent)
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RegistrationFee *float64 `json:"registration_fee"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	clientSecret, err := h.service.CreatePaymentIntent(r.Context(), payload.RegistrationFee)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

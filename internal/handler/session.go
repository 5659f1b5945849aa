package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scholarhub/internal/model"
)

type SessionService interface {
	Create(ctx context.Context, session *model.Session) (*model.InsertResult, error)
	List(ctx context.Context) ([]*model.Session, error)
	Count(ctx context.Context) (int64, error)
	ListByTutor(ctx context.Context, tutorEmail string, page, size int64) ([]*model.Session, error)
	UpdateStatus(ctx context.Context, id string, input *model.UpdateSessionStatusInput) (*model.UpdateResult, error)
	Update(ctx context.Context, id string, input *model.UpdateSessionInput) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type SessionHandler struct {
	service SessionService
}

func NewSessionHandler(service SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) RegisterRoutes(r chi.Router, authMiddleware, tutorMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Get("/allSessions", h.List)
	r.Get("/sessionsCount", h.Count)
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.With(tutorMiddleware).Get("/sessions/{tutor_email}", h.ListByTutor)
		r.Post("/session", h.Create)
		r.Put("/session/{id}", h.UpdateStatus)
		r.With(adminMiddleware).Put("/update-session/{id}", h.Update)
		r.With(adminMiddleware).Delete("/session/{id}", h.Delete)
	})
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.List(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *SessionHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Count(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *SessionHandler) ListByTutor(w http.ResponseWriter, r *http.Request) {
	tutorEmail, err := parsePathParam(r, "tutor_email")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	page, size, err := parsePagination(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	sessions, err := h.service.ListByTutor(r.Context(), tutorEmail, page, size)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var session model.Session
	if err := decodeJSON(r, &session); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := h.service.Create(r.Context(), &session)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *SessionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var input model.UpdateSessionStatusInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, &input)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var input model.UpdateSessionInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := h.service.Update(r.Context(), id, &input)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

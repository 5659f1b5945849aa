package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scholarhub/internal/model"
)

type NoteService interface {
	Create(ctx context.Context, note *model.Note) (*model.InsertResult, error)
	GetByID(ctx context.Context, id string) (*model.Note, error)
	ListByOwner(ctx context.Context, email string) ([]*model.Note, error)
	Update(ctx context.Context, id string, input *model.UpdateNoteInput) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type NoteHandler struct {
	service NoteService
}

func NewNoteHandler(service NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

func (h *NoteHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/notes/{email}", h.ListByOwner)
		r.Get("/note/{id}", h.Get)
		r.Post("/note", h.Create)
		r.Put("/note/{id}", h.Update)
		r.Delete("/note/{id}", h.Delete)
	})
}

func (h *NoteHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	email, err := parsePathParam(r, "email")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	notes, err := h.service.ListByOwner(r.Context(), email)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	note, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var note model.Note
	if err := decodeJSON(r, &note); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := h.service.Create(r.Context(), &note)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var input model.UpdateNoteInput
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

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

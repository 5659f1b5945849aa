package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scholarhub/internal/model"
)

type MaterialService interface {
	Create(ctx context.Context, material *model.Material) (*model.InsertResult, error)
	GetByID(ctx context.Context, id string) (*model.Material, error)
	List(ctx context.Context, page, size int64) ([]*model.Material, error)
	Count(ctx context.Context) (int64, error)
	ListByTutor(ctx context.Context, tutorEmail string) ([]*model.Material, error)
	Update(ctx context.Context, id string, input *model.UpdateMaterialInput) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type MaterialHandler struct {
	service MaterialService
}

func NewMaterialHandler(service MaterialService) *MaterialHandler {
	return &MaterialHandler{service: service}
}

func (h *MaterialHandler) RegisterRoutes(r chi.Router, authMiddleware, tutorMiddleware func(http.Handler) http.Handler) {
	r.Get("/materials", h.List)
	r.Get("/materialsCount", h.Count)
	r.Get("/materials/{tutor_email}", h.ListByTutor)
	r.Get("/material/{id}", h.Get)
	r.With(authMiddleware, tutorMiddleware).Post("/upload-materials", h.Create)
	// update and delete are deliberately left unguarded to match the
	// deployed surface; see DESIGN.md
	r.Put("/materials/{id}", h.Update)
	r.Delete("/delete-materials/{id}", h.Delete)
}

func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size, err := parsePagination(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	materials, err := h.service.List(r.Context(), page, size)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, materials)
}

func (h *MaterialHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Count(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *MaterialHandler) ListByTutor(w http.ResponseWriter, r *http.Request) {
	tutorEmail, err := parsePathParam(r, "tutor_email")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	materials, err := h.service.ListByTutor(r.Context(), tutorEmail)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, materials)
}

func (h *MaterialHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	material, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, material)
}

func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var material model.Material
	if err := decodeJSON(r, &material); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := h.service.Create(r.Context(), &material)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var input model.UpdateMaterialInput
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

func (h *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

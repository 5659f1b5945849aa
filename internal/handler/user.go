package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scholarhub/internal/model"
)

type UserService interface {
	Register(ctx context.Context, input *model.RegisterUserInput) (*model.RegisterResult, error)
	ProbeRole(ctx context.Context, email string, role model.Role) (bool, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Search(ctx context.Context, search string) ([]*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	SetRole(ctx context.Context, id string, role model.Role) (*model.UpdateResult, error)
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Post("/users", h.Register)
	// named tutors for historical reasons; returns every registered user
	r.Get("/tutors", h.ListAll)
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/user/student/{email}", h.ProbeStudent)
		r.Get("/user/tutor/{email}", h.ProbeTutor)
		r.Get("/users/admin/{email}", h.ProbeAdmin)
		r.Get("/user/{id}", h.GetUser)
		r.With(adminMiddleware).Get("/all-users", h.Search)
		r.With(adminMiddleware).Put("/user/{id}", h.SetRole)
	})
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input model.RegisterUserInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := h.service.Register(r.Context(), &input)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *UserHandler) ProbeStudent(w http.ResponseWriter, r *http.Request) {
	h.probe(w, r, model.RoleStudent, "student")
}

func (h *UserHandler) ProbeTutor(w http.ResponseWriter, r *http.Request) {
	h.probe(w, r, model.RoleTutor, "tutor")
}

func (h *UserHandler) ProbeAdmin(w http.ResponseWriter, r *http.Request) {
	h.probe(w, r, model.RoleAdmin, "admin")
}

func (h *UserHandler) probe(w http.ResponseWriter, r *http.Request, role model.Role, key string) {
	email, err := parsePathParam(r, "email")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	holds, err := h.service.ProbeRole(r.Context(), email, role)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{key: holds})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var input struct {
		Role model.Role `json:"role"`
	}
	if err := decodeJSON(r, &input); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := h.service.SetRole(r.Context(), id, input.Role)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

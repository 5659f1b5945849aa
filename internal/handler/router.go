package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"scholarhub/internal/middleware"
	"scholarhub/internal/model"
	"scholarhub/pkg/logging"
)

type RouterDeps struct {
	Logger         *logging.Logger
	AllowedOrigins []string
	TokenParser    middleware.TokenParser
	RoleStore      middleware.RoleStore

	Auth      *AuthHandler
	Users     *UserHandler
	Sessions  *SessionHandler
	Notes     *NoteHandler
	Materials *MaterialHandler
	Bookings  *BookingHandler
	Reviews   *ReviewHandler
	Payments  *PaymentHandler
}

func NewRouter(deps RouterDeps) http.Handler {
	authMiddleware := middleware.NewAuthMiddleware(deps.TokenParser)
	tutorMiddleware := middleware.NewRoleMiddleware(deps.RoleStore, model.RoleTutor)
	adminMiddleware := middleware.NewRoleMiddleware(deps.RoleStore, model.RoleAdmin)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 1<<20) // 1 MB
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Hello from ScholarHub Server.."))
	})

	deps.Auth.RegisterRoutes(r)
	deps.Users.RegisterRoutes(r, authMiddleware, adminMiddleware)
	deps.Sessions.RegisterRoutes(r, authMiddleware, tutorMiddleware, adminMiddleware)
	deps.Notes.RegisterRoutes(r, authMiddleware)
	deps.Materials.RegisterRoutes(r, authMiddleware, tutorMiddleware)
	deps.Bookings.RegisterRoutes(r)
	deps.Reviews.RegisterRoutes(r, authMiddleware)
	deps.Payments.RegisterRoutes(r)

	return r
}

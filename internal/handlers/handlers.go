package handlers

import (
	"NoteKeeper/internal/apperr"
	"NoteKeeper/internal/auth"
	"NoteKeeper/internal/config"
	"NoteKeeper/internal/middleware"
	"NoteKeeper/internal/service"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	noteService *service.NoteService,
	categoryService *service.CategoryService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	authHandler := NewAuthHandler(userService, logger)
	userHandler := NewUserHandler(userService, logger)
	noteHandler := NewNoteHandler(noteService, logger)
	categoryHandler := NewCategoryHandler(categoryService, logger)

	// Auth routes
	r.Post("/api/auth/login", authHandler.Login)

	// Note routes
	r.Route("/api/notes", func(r chi.Router) {
		r.Get("/", noteHandler.List)
		r.Post("/", noteHandler.Create)
		r.Get("/category/{categoryId}", noteHandler.ListByCategory)
		r.Get("/{id}", noteHandler.Get)
		r.Put("/{id}", noteHandler.Update)
		r.Delete("/{id}", noteHandler.Delete)
	})

	// Category routes
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.List)
		r.Post("/", categoryHandler.Create)
	})

	// User routes
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Get("/{id}", userHandler.Get)
		r.Put("/{id}", userHandler.Update)
		r.Delete("/{id}", userHandler.Delete)
	})

	// Любой незадекларированный путь — единый 404-конверт
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return &Handler{Router: r}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, failBody{
		Status:  "fail",
		Message: fmt.Sprintf("Cannot find %s on this server", r.URL.Path),
	})
}

// requireSession достаёт сессию, положенную в контекст мидлварью аутентификации.
func requireSession(r *http.Request) (*auth.Session, error) {
	if s, ok := middleware.GetSessionFromContext(r.Context()); ok {
		return s, nil
	}
	return nil, apperr.Unauthorized("authentication required")
}

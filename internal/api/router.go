package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bazaarlabs/bazaar-be/internal/api/handlers"
	"github.com/bazaarlabs/bazaar-be/internal/auth"
	"github.com/bazaarlabs/bazaar-be/internal/services"
	"github.com/bazaarlabs/bazaar-be/internal/storage"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.Service,
	userService services.UserServiceProvider,
	categoryService services.CategoryServiceProvider,
	itemService services.ItemServiceProvider,
	files *storage.FileStore,
	corsOrigin string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, tokens)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	itemHandler := handlers.NewItemHandler(itemService, files)
	fileHandler := handlers.NewFileHandler(files)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello, World! This is the backend."))
	})

	r.Get("/uploads/{filename}", fileHandler.Serve)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Get("/users", userHandler.GetAll)
		r.Get("/categories", categoryHandler.GetAll)
		r.Get("/items", itemHandler.GetAll)

		// Endpoints requiring a verified identity
		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware())
			r.Get("/profile", userHandler.Profile)
			r.Post("/categories", categoryHandler.Create)
			r.Post("/items", itemHandler.Create)
		})
	})

	return r
}

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/vaughan-dsouza/BeGoForms/internal/handlers"
	"github.com/vaughan-dsouza/BeGoForms/internal/logging"
	"github.com/vaughan-dsouza/BeGoForms/internal/middleware"
)

// NewRouter mounts the HTML pages under /posts and the JSON API under /api.
func NewRouter(h *handlers.Handler, apiSecret string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logging.Requests(logger))
	r.Use(chimw.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/posts", http.StatusSeeOther)
	})

	// HTML
	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.Posts.GetPosts)
		r.Post("/", h.Posts.CreatePost)
		r.Get("/new", h.Posts.NewPost)
	})

	// JSON
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(apiSecret))

		r.Get("/posts", h.API.GetPosts)
		r.Post("/posts", h.API.CreatePost)
		r.Get("/posts/new", h.API.NewPost)
	})

	return r
}

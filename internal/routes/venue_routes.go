package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"moodvenue/internal/handlers"
	"moodvenue/internal/repository"
)

// RegisterVenueRoutes mounts the public, read-only venue API. The trailing slash is optional.
func RegisterVenueRoutes(r chi.Router, db *sql.DB, base handlers.BaseHandler) {
	handler := handlers.NewVenueHandler(repository.NewVenueRepository(db), base)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/{id}", handler.Get)
		r.Get("/{id}/", handler.Get)
	})
}

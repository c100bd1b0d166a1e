package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"moodvenue/internal/handlers"
	"moodvenue/internal/repository"
)

func RegisterPlanRoutes(r chi.Router, db *sql.DB, base handlers.BaseHandler) {
	handler := handlers.NewPlanHandler(repository.NewPlanRepository(db), base)

	r.Route("/plans", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/{id}", handler.Get)
		r.Get("/{id}/", handler.Get)
	})
}

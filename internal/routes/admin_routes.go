package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"moodvenue/internal/config"
	"moodvenue/internal/handlers"
	appmw "moodvenue/internal/middleware"
	"moodvenue/internal/repository"
	"moodvenue/internal/services"
)

// RegisterAdminRoutes mounts login plus the token-protected management API.
func RegisterAdminRoutes(r chi.Router, db *sql.DB, cfg *config.Config, base handlers.BaseHandler, media services.MediaStore) {
	auth := handlers.NewAuthHandler(cfg)
	venues := handlers.NewVenueHandler(repository.NewVenueRepository(db), base)
	plans := handlers.NewPlanHandler(repository.NewPlanRepository(db), base)
	uploads := handlers.NewMediaHandler(media, base)

	r.Post("/login", auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(appmw.JWTAuth(cfg.SecretKey))

		r.Route("/venues", func(r chi.Router) {
			r.Get("/", venues.AdminList)
			r.Post("/", venues.Create)
			r.Put("/{id}", venues.Update)
			r.Delete("/{id}", venues.Delete)
		})
		r.Route("/plans", func(r chi.Router) {
			r.Get("/", plans.AdminList)
			r.Post("/", plans.Create)
			r.Put("/{id}", plans.Update)
			r.Delete("/{id}", plans.Delete)
		})
		r.Post("/media", uploads.Upload)
	})
}

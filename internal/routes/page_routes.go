package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"moodvenue/internal/handlers"
	"moodvenue/internal/web"
)

func RegisterPageRoutes(r chi.Router, renderer *web.Renderer) {
	pages := handlers.NewPageHandler(renderer)

	r.Get("/", pages.Home)
	r.Get("/venue/{id:[0-9]+}", pages.VenueDetail)
	r.Get("/venue/{id:[0-9]+}/", pages.VenueDetail)
	r.Handle("/static/*", http.StripPrefix("/static", web.StaticHandler()))
}

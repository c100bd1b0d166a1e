// internal/routes/routes.go
package routes

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"moodvenue/internal/config"
	"moodvenue/internal/handlers"
	appmw "moodvenue/internal/middleware"
	"moodvenue/internal/services"
	"moodvenue/internal/web"
)

// SetupRoutes builds the full router. media may be nil when no bucket is configured.
func SetupRoutes(db *sql.DB, cfg *config.Config, media services.MediaStore) *chi.Mux {
	r := chi.NewRouter()
	base := handlers.NewBaseHandler(cfg)

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmw.RequestLogger)
	r.Use(middleware.Recoverer)

	// Health check answers probes regardless of the Host header.
	r.Get("/health", handlers.NewHealthHandler(db).Health)

	r.Group(func(r chi.Router) {
		r.Use(appmw.AllowedHosts(cfg.AllowedHosts))
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"Link"},
			MaxAge:         300,
		}))

		r.Route("/api", func(r chi.Router) {
			RegisterVenueRoutes(r, db, base)
			RegisterPlanRoutes(r, db, base)
		})

		r.Route("/admin/api", func(r chi.Router) {
			RegisterAdminRoutes(r, db, cfg, base, media)
		})

		RegisterPageRoutes(r, web.MustNewRenderer())
		RegisterSwaggerRoutes(r)
	})

	return r
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"moodvenue/internal/web"
)

// PageHandler serves the HTML shells. The pages fetch their data from the read API.
type PageHandler struct {
	renderer *web.Renderer
}

func NewPageHandler(renderer *web.Renderer) *PageHandler {
	return &PageHandler{renderer: renderer}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.PageHome, web.PageData{Title: "Mood Venue"})
}

// VenueDetail renders for any id the route pattern accepts. It does not consult the store;
// a missing venue is reported by the page script.
func (h *PageHandler) VenueDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, web.PageVenueDetail, web.PageData{Title: "Venue", VenueID: id})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, page string, data web.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, page, data); err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetReqID(r.Context())).Str("page", page).Msg("render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

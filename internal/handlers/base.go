// internal/handlers/base.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"moodvenue/internal/config"
	"moodvenue/internal/interfaces"
)

// BaseHandler holds the settings every handler shares.
type BaseHandler struct {
	// Debug exposes store error details in 5xx responses.
	Debug bool
}

func NewBaseHandler(cfg *config.Config) BaseHandler {
	if cfg == nil {
		return BaseHandler{}
	}
	return BaseHandler{Debug: cfg.Debug}
}

// writeStoreError answers a failed repository call. what names the operation, e.g. "get venue".
func (b BaseHandler) writeStoreError(w http.ResponseWriter, r *http.Request, err error, what string) {
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		writeNotFound(w)
	case errors.Is(err, interfaces.ErrConflict):
		writeJSONErrorResponse(w, http.StatusConflict, "conflict", "A record with the same unique value already exists.")
	default:
		log.Error().
			Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("operation", what).
			Msg("store request failed")
		message := "Failed to " + what
		if b.Debug {
			message += ": " + err.Error()
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", message)
	}
}

// parseID reads the {id} path parameter. Anything that is not a positive integer can never
// match a stored record, so callers answer it as not found.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeNotFound(w http.ResponseWriter) {
	writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Not found.")
}

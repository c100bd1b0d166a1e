package handlers

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"

	"moodvenue/internal/services"
)

const maxUploadBytes = 32 << 20

type MediaHandler struct {
	BaseHandler
	store services.MediaStore
}

// NewMediaHandler accepts a nil store; uploads then answer 503.
func NewMediaHandler(store services.MediaStore, base BaseHandler) *MediaHandler {
	return &MediaHandler{BaseHandler: base, store: store}
}

// Upload stores one image or audio file and returns its public URL.
// @Tags Admin
// @Summary Upload media
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image or audio file"
// @Success 201 {object} models.MediaObject
// @Failure 400 {object} map[string]interface{}
// @Failure 415 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /admin/api/media [post]
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeJSONErrorResponse(w, http.StatusServiceUnavailable, "media_unavailable", "No media bucket is configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Missing file field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}

	obj, err := h.store.Put(r.Context(), header.Filename, contentType, file, header.Size)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedMedia) {
			writeJSONErrorResponse(w, http.StatusUnsupportedMediaType, "unsupported_media", "Only image and audio files are accepted")
			return
		}
		h.writeStoreError(w, r, err, "upload media")
		return
	}
	writeJSON(w, http.StatusCreated, obj)
}

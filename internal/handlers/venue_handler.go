package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"moodvenue/internal/interfaces"
	"moodvenue/internal/models"
)

type VenueHandler struct {
	BaseHandler
	repo      interfaces.VenueRepository
	validator *validator.Validate
}

func NewVenueHandler(repo interfaces.VenueRepository, base BaseHandler) *VenueHandler {
	return &VenueHandler{
		BaseHandler: base,
		repo:        repo,
		validator:   validator.New(),
	}
}

// List returns every venue.
// @Tags Venues
// @Summary List venues
// @Produce json
// @Success 200 {array} handlers.VenueResource
// @Failure 500 {object} map[string]interface{}
// @Router /api/venues/ [get]
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	venues, err := h.repo.List(r.Context())
	if err != nil {
		h.writeStoreError(w, r, err, "list venues")
		return
	}
	writeJSON(w, http.StatusOK, NewVenueResources(venues))
}

// Get returns one venue.
// @Tags Venues
// @Summary Get a venue
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} handlers.VenueResource
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/venues/{id}/ [get]
func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	venue, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, r, err, "get venue")
		return
	}
	writeJSON(w, http.StatusOK, NewVenueResource(venue))
}

// AdminList supports the admin change list: ?search= matches name, date_text and
// detail_description; ?rating_stars= filters exactly.
// @Tags Admin
// @Summary Search venues
// @Security BearerAuth
// @Produce json
// @Param search query string false "Substring of name, date text or description"
// @Param rating_stars query int false "Exact star rating"
// @Success 200 {array} handlers.VenueResource
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /admin/api/venues [get]
func (h *VenueHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	filter := interfaces.VenueFilter{Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("rating_stars"); raw != "" {
		stars, err := strconv.Atoi(raw)
		if err != nil {
			writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "rating_stars must be an integer")
			return
		}
		filter.RatingStars = &stars
	}

	venues, err := h.repo.Search(r.Context(), filter)
	if err != nil {
		h.writeStoreError(w, r, err, "search venues")
		return
	}
	writeJSON(w, http.StatusOK, NewVenueResources(venues))
}

// @Tags Admin
// @Summary Create a venue
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param venue body models.VenueInput true "Venue"
// @Success 201 {object} handlers.VenueResource
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /admin/api/venues [post]
func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	venue := input.Venue()
	if err := h.repo.Create(r.Context(), venue); err != nil {
		h.writeStoreError(w, r, err, "create venue")
		return
	}
	writeJSON(w, http.StatusCreated, NewVenueResource(venue))
}

// @Tags Admin
// @Summary Replace a venue
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param venue body models.VenueInput true "Venue"
// @Success 200 {object} handlers.VenueResource
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/api/venues/{id} [put]
func (h *VenueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	venue := input.Venue()
	venue.ID = id
	if err := h.repo.Update(r.Context(), venue); err != nil {
		h.writeStoreError(w, r, err, "update venue")
		return
	}
	writeJSON(w, http.StatusOK, NewVenueResource(venue))
}

// @Tags Admin
// @Summary Delete a venue
// @Security BearerAuth
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/api/venues/{id} [delete]
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err, "delete venue")
		return
	}
	writeJSONMessage(w, http.StatusOK, "Venue deleted successfully")
}

func (h *VenueHandler) decodeInput(w http.ResponseWriter, r *http.Request) (*models.VenueInput, bool) {
	var input models.VenueInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_json", "Invalid JSON: "+err.Error())
		return nil, false
	}
	input.Normalize()
	if err := h.validator.Struct(input); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return nil, false
	}
	return &input, true
}

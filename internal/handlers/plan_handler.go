package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"moodvenue/internal/interfaces"
	"moodvenue/internal/models"
)

type PlanHandler struct {
	BaseHandler
	repo      interfaces.PlanRepository
	validator *validator.Validate
}

func NewPlanHandler(repo interfaces.PlanRepository, base BaseHandler) *PlanHandler {
	return &PlanHandler{
		BaseHandler: base,
		repo:        repo,
		validator:   validator.New(),
	}
}

// @Tags Plans
// @Summary List plans
// @Produce json
// @Success 200 {array} handlers.PlanResource
// @Failure 500 {object} map[string]interface{}
// @Router /api/plans/ [get]
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.repo.List(r.Context())
	if err != nil {
		h.writeStoreError(w, r, err, "list plans")
		return
	}
	writeJSON(w, http.StatusOK, NewPlanResources(plans))
}

// @Tags Plans
// @Summary Get a plan
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} handlers.PlanResource
// @Failure 404 {object} map[string]interface{}
// @Router /api/plans/{id}/ [get]
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	plan, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, r, err, "get plan")
		return
	}
	writeJSON(w, http.StatusOK, NewPlanResource(plan))
}

// @Tags Admin
// @Summary List plans by theme
// @Security BearerAuth
// @Produce json
// @Param theme query string false "positive or sad"
// @Success 200 {array} handlers.PlanResource
// @Failure 400 {object} map[string]interface{}
// @Router /admin/api/plans [get]
func (h *PlanHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	filter := interfaces.PlanFilter{Theme: models.Theme(r.URL.Query().Get("theme"))}
	if filter.Theme != "" && !filter.Theme.Valid() {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "theme must be positive or sad")
		return
	}

	plans, err := h.repo.Search(r.Context(), filter)
	if err != nil {
		h.writeStoreError(w, r, err, "search plans")
		return
	}
	writeJSON(w, http.StatusOK, NewPlanResources(plans))
}

// @Tags Admin
// @Summary Create a plan
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plan body models.PlanInput true "Plan"
// @Success 201 {object} handlers.PlanResource
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /admin/api/plans [post]
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	plan := input.Plan()
	if err := h.repo.Create(r.Context(), plan); err != nil {
		h.writeStoreError(w, r, err, "create plan")
		return
	}
	writeJSON(w, http.StatusCreated, NewPlanResource(plan))
}

// @Tags Admin
// @Summary Replace a plan
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param plan body models.PlanInput true "Plan"
// @Success 200 {object} handlers.PlanResource
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /admin/api/plans/{id} [put]
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	plan := input.Plan()
	plan.ID = id
	if err := h.repo.Update(r.Context(), plan); err != nil {
		h.writeStoreError(w, r, err, "update plan")
		return
	}
	writeJSON(w, http.StatusOK, NewPlanResource(plan))
}

// @Tags Admin
// @Summary Delete a plan
// @Security BearerAuth
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/api/plans/{id} [delete]
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err, "delete plan")
		return
	}
	writeJSONMessage(w, http.StatusOK, "Plan deleted successfully")
}

func (h *PlanHandler) decodeInput(w http.ResponseWriter, r *http.Request) (*models.PlanInput, bool) {
	var input models.PlanInput
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

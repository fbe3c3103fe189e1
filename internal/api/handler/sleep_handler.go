package handler

import (
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
)

type SleepHandler struct {
	service service.SleepService
}

func NewSleepHandler(service service.SleepService) *SleepHandler {
	return &SleepHandler{service: service}
}

// Create handles POST /v1/users/{userId}/sleep
// @Summary Log a night of sleep
// @Description Record bed and wake times, quality, wake mood and pre-sleep activities. Duration is computed server side.
// @Tags sleep
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.CreateSleepRequest true "Sleep entry"
// @Success 201 {object} domain.SleepEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep [post]
func (h *SleepHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CreateSleepRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to create sleep entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry.ToResponse())
}

// List handles GET /v1/users/{userId}/sleep
// @Summary List sleep entries
// @Description Newest night first with cursor pagination
// @Tags sleep
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param from query string false "Start of range (RFC3339)"
// @Param to query string false "End of range (RFC3339)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} domain.SleepListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep [get]
func (h *SleepHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to list sleep entries")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Get handles GET /v1/users/{userId}/sleep/{sleepId}
// @Summary Get a sleep entry
// @Tags sleep
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param sleepId path string true "Sleep entry ID" format(uuid)
// @Success 200 {object} domain.SleepEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep/{sleepId} [get]
func (h *SleepHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	sleepID, ok := pathUUID(w, r, "sleepId", "sleep entry")
	if !ok {
		return
	}

	entry, err := h.service.GetByID(r.Context(), userID, sleepID)
	if err != nil {
		writeServiceError(w, err, "Sleep entry not found", "Failed to get sleep entry")
		return
	}

	writeJSON(w, http.StatusOK, entry.ToResponse())
}

// Update handles PUT /v1/users/{userId}/sleep/{sleepId}
// @Summary Update a sleep entry
// @Description Only provided fields are changed
// @Tags sleep
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param sleepId path string true "Sleep entry ID" format(uuid)
// @Param request body domain.UpdateSleepRequest true "Fields to change"
// @Success 200 {object} domain.SleepEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep/{sleepId} [put]
func (h *SleepHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	sleepID, ok := pathUUID(w, r, "sleepId", "sleep entry")
	if !ok {
		return
	}

	var req domain.UpdateSleepRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.service.Update(r.Context(), userID, sleepID, &req)
	if err != nil {
		writeServiceError(w, err, "Sleep entry not found", "Failed to update sleep entry")
		return
	}

	writeJSON(w, http.StatusOK, entry.ToResponse())
}

// Delete handles DELETE /v1/users/{userId}/sleep/{sleepId}
// @Summary Delete a sleep entry
// @Tags sleep
// @Param userId path string true "User ID" format(uuid)
// @Param sleepId path string true "Sleep entry ID" format(uuid)
// @Success 204 "Deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep/{sleepId} [delete]
func (h *SleepHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	sleepID, ok := pathUUID(w, r, "sleepId", "sleep entry")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, sleepID); err != nil {
		writeServiceError(w, err, "Sleep entry not found", "Failed to delete sleep entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Analytics handles GET /v1/users/{userId}/sleep/analytics
// @Summary Sleep analytics
// @Description Metrics, insights, tips, chart and quality distribution for a trailing window. Unknown timeframes fall back to week.
// @Tags sleep
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param timeframe query string false "Window" Enums(week, month, 3months, year)
// @Success 200 {object} domain.SleepAnalyticsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep/analytics [get]
func (h *SleepHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	response, err := h.service.Analytics(r.Context(), userID, r.URL.Query().Get("timeframe"))
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to compute sleep analytics")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

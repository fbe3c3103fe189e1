package handler

import (
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
)

type MoodHandler struct {
	service service.MoodService
}

func NewMoodHandler(service service.MoodService) *MoodHandler {
	return &MoodHandler{service: service}
}

// Create handles POST /v1/users/{userId}/moods
// @Summary Log a mood
// @Description Record a mood entry with optional energy level, activities and note. The timestamp defaults to now.
// @Tags moods
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.CreateMoodRequest true "Mood entry"
// @Success 201 {object} domain.MoodEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/moods [post]
func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CreateMoodRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to create mood entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry.ToResponse())
}

// List handles GET /v1/users/{userId}/moods
// @Summary List mood entries
// @Description Newest first with cursor pagination
// @Tags moods
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param from query string false "Start of range (RFC3339)"
// @Param to query string false "End of range (RFC3339)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} domain.MoodListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/moods [get]
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
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
		writeServiceError(w, err, "User not found", "Failed to list mood entries")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Get handles GET /v1/users/{userId}/moods/{moodId}
// @Summary Get a mood entry
// @Tags moods
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param moodId path string true "Mood entry ID" format(uuid)
// @Success 200 {object} domain.MoodEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/moods/{moodId} [get]
func (h *MoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	moodID, ok := pathUUID(w, r, "moodId", "mood entry")
	if !ok {
		return
	}

	entry, err := h.service.GetByID(r.Context(), userID, moodID)
	if err != nil {
		writeServiceError(w, err, "Mood entry not found", "Failed to get mood entry")
		return
	}

	writeJSON(w, http.StatusOK, entry.ToResponse())
}

// Update handles PUT /v1/users/{userId}/moods/{moodId}
// @Summary Update a mood entry
// @Description Only provided fields are changed
// @Tags moods
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param moodId path string true "Mood entry ID" format(uuid)
// @Param request body domain.UpdateMoodRequest true "Fields to change"
// @Success 200 {object} domain.MoodEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/moods/{moodId} [put]
func (h *MoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	moodID, ok := pathUUID(w, r, "moodId", "mood entry")
	if !ok {
		return
	}

	var req domain.UpdateMoodRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.service.Update(r.Context(), userID, moodID, &req)
	if err != nil {
		writeServiceError(w, err, "Mood entry not found", "Failed to update mood entry")
		return
	}

	writeJSON(w, http.StatusOK, entry.ToResponse())
}

// Delete handles DELETE /v1/users/{userId}/moods/{moodId}
// @Summary Delete a mood entry
// @Tags moods
// @Param userId path string true "User ID" format(uuid)
// @Param moodId path string true "Mood entry ID" format(uuid)
// @Success 204 "Deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/moods/{moodId} [delete]
func (h *MoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	moodID, ok := pathUUID(w, r, "moodId", "mood entry")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, moodID); err != nil {
		writeServiceError(w, err, "Mood entry not found", "Failed to delete mood entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Analytics handles GET /v1/users/{userId}/moods/analytics
// @Summary Mood analytics
// @Description Metrics, insights, chart, distribution and calendar for a trailing window. Unknown timeframes fall back to week.
// @Tags moods
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param timeframe query string false "Window" Enums(week, month, 3months, year)
// @Success 200 {object} domain.MoodAnalyticsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/moods/analytics [get]
func (h *MoodHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	response, err := h.service.Analytics(r.Context(), userID, r.URL.Query().Get("timeframe"))
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to compute mood analytics")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

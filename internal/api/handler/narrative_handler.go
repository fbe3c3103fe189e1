package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/llm"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
)

// NarrativeHandler handles the LLM wellbeing narrative endpoints.
type NarrativeHandler struct {
	service service.NarrativeService
}

// NewNarrativeHandler creates a new NarrativeHandler.
func NewNarrativeHandler(service service.NarrativeService) *NarrativeHandler {
	return &NarrativeHandler{service: service}
}

// Get handles GET /v1/users/{userId}/wellbeing/narrative
// @Summary Get an LLM wellbeing narrative
// @Description Build mood and sleep snapshots for the timeframe and ask the LLM for a summary, observations and guidance.
// @Tags wellbeing
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param timeframe query string false "Window" Enums(week, month, 3months, year) default(week)
// @Success 200 {object} domain.NarrativeResponse "Snapshots with LLM narrative"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/wellbeing/narrative [get]
func (h *NarrativeHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.Generate(r.Context(), userID, r.URL.Query().Get("timeframe"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate narrative from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate narrative").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Feedback handles POST /v1/users/{userId}/wellbeing/narrative/feedback
// @Summary Rate a wellbeing narrative
// @Description Submit a 1-5 rating and optional comment for a previous narrative response.
// @Tags wellbeing
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body domain.NarrativeFeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 403 {object} problem.Problem "Trace belongs to another user"
// @Failure 404 {object} problem.Problem "User or trace not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/wellbeing/narrative/feedback [post]
func (h *NarrativeHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.NarrativeFeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.SubmitFeedback(r.Context(), userID, &req); err != nil {
		writeServiceError(w, err, "User or narrative trace not found", "Failed to submit feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

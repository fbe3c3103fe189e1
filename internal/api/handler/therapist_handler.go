package handler

import (
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
)

// TherapistHandler proxies the AI therapist conversation.
type TherapistHandler struct {
	service service.TherapistService
}

func NewTherapistHandler(service service.TherapistService) *TherapistHandler {
	return &TherapistHandler{service: service}
}

// Chat handles POST /v1/users/{userId}/therapist/chat
// @Summary Talk to the AI therapist
// @Description The user's age and gender are forwarded with the message. Requests are rate limited per client IP.
// @Tags therapist
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.ChatRequest true "Message"
// @Success 200 {object} domain.ChatResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 429 {object} problem.Problem
// @Failure 502 {object} problem.Problem "Therapist service failed"
// @Router /users/{userId}/therapist/chat [post]
func (h *TherapistHandler) Chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Chat(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to reach therapist")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Feedback handles POST /v1/users/{userId}/therapist/feedback
// @Summary Send feedback about a therapist conversation
// @Tags therapist
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.TherapistFeedbackRequest true "Feedback"
// @Success 200 {object} domain.TherapistFeedbackResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 429 {object} problem.Problem
// @Failure 502 {object} problem.Problem
// @Router /users/{userId}/therapist/feedback [post]
func (h *TherapistHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.TherapistFeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Feedback(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to submit feedback")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

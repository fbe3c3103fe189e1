package handler

import (
	"net/http"
	"strings"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
)

type JournalHandler struct {
	service service.JournalService
}

func NewJournalHandler(service service.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

// Create handles POST /v1/users/{userId}/journal
// @Summary Write a journal entry
// @Description Content is markdown; the response also carries sanitized HTML.
// @Tags journal
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.CreateJournalRequest true "Journal entry"
// @Success 201 {object} domain.JournalEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal [post]
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CreateJournalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to create journal entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// List handles GET /v1/users/{userId}/journal
// @Summary List journal entries
// @Description Pinned entries first, then newest first
// @Tags journal
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param tag query string false "Only entries with this tag"
// @Param q query string false "Substring of title or content"
// @Success 200 {object} domain.JournalListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal [get]
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := domain.JournalFilter{
		Tag:   strings.TrimSpace(q.Get("tag")),
		Query: strings.TrimSpace(q.Get("q")),
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to list journal entries")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Get handles GET /v1/users/{userId}/journal/{entryId}
// @Summary Get a journal entry
// @Tags journal
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param entryId path string true "Entry ID" format(uuid)
// @Success 200 {object} domain.JournalEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal/{entryId} [get]
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	entryID, ok := pathUUID(w, r, "entryId", "entry")
	if !ok {
		return
	}

	entry, err := h.service.GetByID(r.Context(), userID, entryID)
	if err != nil {
		writeServiceError(w, err, "Journal entry not found", "Failed to get journal entry")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Update handles PUT /v1/users/{userId}/journal/{entryId}
// @Summary Update a journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param entryId path string true "Entry ID" format(uuid)
// @Param request body domain.UpdateJournalRequest true "Fields to change"
// @Success 200 {object} domain.JournalEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal/{entryId} [put]
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	entryID, ok := pathUUID(w, r, "entryId", "entry")
	if !ok {
		return
	}

	var req domain.UpdateJournalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.service.Update(r.Context(), userID, entryID, &req)
	if err != nil {
		writeServiceError(w, err, "Journal entry not found", "Failed to update journal entry")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /v1/users/{userId}/journal/{entryId}
// @Summary Delete a journal entry
// @Tags journal
// @Param userId path string true "User ID" format(uuid)
// @Param entryId path string true "Entry ID" format(uuid)
// @Success 204 "Deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal/{entryId} [delete]
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	entryID, ok := pathUUID(w, r, "entryId", "entry")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, entryID); err != nil {
		writeServiceError(w, err, "Journal entry not found", "Failed to delete journal entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TogglePin handles POST /v1/users/{userId}/journal/{entryId}/pin
// @Summary Pin or unpin a journal entry
// @Tags journal
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param entryId path string true "Entry ID" format(uuid)
// @Success 200 {object} domain.JournalEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal/{entryId}/pin [post]
func (h *JournalHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}
	entryID, ok := pathUUID(w, r, "entryId", "entry")
	if !ok {
		return
	}

	entry, err := h.service.TogglePin(r.Context(), userID, entryID)
	if err != nil {
		writeServiceError(w, err, "Journal entry not found", "Failed to pin journal entry")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

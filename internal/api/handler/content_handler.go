package handler

import (
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/go-chi/chi/v5"
)

// MemeHandler serves random memes for the mood lift screen.
type MemeHandler struct {
	service service.MemeService
}

func NewMemeHandler(service service.MemeService) *MemeHandler {
	return &MemeHandler{service: service}
}

// Random handles GET /v1/memes/random
// @Summary Get a random safe-for-work meme
// @Tags memes
// @Produce json
// @Success 200 {object} domain.Meme
// @Failure 502 {object} problem.Problem "Meme API failed or only returned NSFW results"
// @Router /memes/random [get]
func (h *MemeHandler) Random(w http.ResponseWriter, r *http.Request) {
	meme, err := h.service.Random(r.Context())
	if err != nil {
		writeServiceError(w, err, "Meme not found", "Failed to fetch meme")
		return
	}

	writeJSON(w, http.StatusOK, meme)
}

// BreathingHandler serves the breathing exercise catalog.
type BreathingHandler struct {
	service service.BreathingService
}

func NewBreathingHandler(service service.BreathingService) *BreathingHandler {
	return &BreathingHandler{service: service}
}

// ListTechniques handles GET /v1/breathing/techniques
// @Summary List breathing techniques
// @Tags breathing
// @Produce json
// @Success 200 {array} domain.BreathingTechnique
// @Router /breathing/techniques [get]
func (h *BreathingHandler) ListTechniques(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ListTechniques(r.Context()))
}

// GetTechnique handles GET /v1/breathing/techniques/{techniqueId}
// @Summary Get a breathing technique
// @Tags breathing
// @Produce json
// @Param techniqueId path string true "Technique ID" example(box)
// @Success 200 {object} domain.BreathingTechnique
// @Failure 404 {object} problem.Problem
// @Router /breathing/techniques/{techniqueId} [get]
func (h *BreathingHandler) GetTechnique(w http.ResponseWriter, r *http.Request) {
	technique, err := h.service.GetTechnique(r.Context(), chi.URLParam(r, "techniqueId"))
	if err != nil {
		writeServiceError(w, err, "Breathing technique not found", "Failed to get technique")
		return
	}

	writeJSON(w, http.StatusOK, technique)
}

// ListMusic handles GET /v1/breathing/music
// @Summary List background music tracks
// @Tags breathing
// @Produce json
// @Success 200 {array} domain.MusicTrack
// @Router /breathing/music [get]
func (h *BreathingHandler) ListMusic(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ListMusic(r.Context()))
}

// FocusHandler serves the focus games catalog and focus playlists.
type FocusHandler struct {
	service service.FocusService
}

func NewFocusHandler(service service.FocusService) *FocusHandler {
	return &FocusHandler{service: service}
}

// ListActivities handles GET /v1/focus/activities
// @Summary List focus games and exercises
// @Description Static catalog of focus mini-games and exercises, optionally filtered by type.
// @Tags focus
// @Produce json
// @Param type query string false "Activity type" Enums(all, game, exercise, challenge)
// @Success 200 {array} domain.FocusActivity
// @Failure 400 {object} problem.Problem "Unknown type"
// @Router /focus/activities [get]
func (h *FocusHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeServiceError(w, err, "Focus activity not found", "Failed to list focus activities")
		return
	}

	writeJSON(w, http.StatusOK, activities)
}

// ListPlaylists handles GET /v1/focus/playlists
// @Summary List focus playlists
// @Tags focus
// @Produce json
// @Success 200 {array} domain.FocusPlaylist
// @Router /focus/playlists [get]
func (h *FocusHandler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ListPlaylists(r.Context()))
}

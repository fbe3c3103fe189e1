package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

func TestSleepHandler_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
		wantMinutes    int
	}{
		{
			name:           "overnight sleep",
			body:           `{"sleep_date": "2024-03-19", "bed_time": "23:30", "wake_time": "06:15", "sleep_quality": 4, "wake_mood": "refreshed", "activities": ["reading"]}`,
			wantStatusCode: http.StatusCreated,
			wantMinutes:    405,
		},
		{
			name:           "bad clock",
			body:           `{"sleep_date": "2024-03-19", "bed_time": "25:00", "wake_time": "06:15", "sleep_quality": 4, "wake_mood": "refreshed"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "bad date",
			body:           `{"sleep_date": "19/03/2024", "bed_time": "23:00", "wake_time": "06:15", "sleep_quality": 4, "wake_mood": "refreshed"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown wake mood",
			body:           `{"sleep_date": "2024-03-19", "bed_time": "23:00", "wake_time": "06:15", "sleep_quality": 4, "wake_mood": "ecstatic"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "quality missing",
			body:           `{"sleep_date": "2024-03-19", "bed_time": "23:00", "wake_time": "06:15", "wake_mood": "tired"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSleepHandler(&MockSleepService{})

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/sleep", bytes.NewBufferString(tt.body))
			req = withURLParams(req, "userId", userID.String())
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode == http.StatusCreated {
				var response domain.SleepEntryResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if response.Duration.TotalMinutes != tt.wantMinutes {
					t.Errorf("total_minutes = %d, want %d", response.Duration.TotalMinutes, tt.wantMinutes)
				}
			}
		})
	}
}

func TestSleepHandler_GetInvalidEntryID(t *testing.T) {
	handler := NewSleepHandler(&MockSleepService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = withURLParams(req, "userId", uuid.New().String(), "sleepId", "nope")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Get() status = %d, want 400", rec.Code)
	}
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

func TestMoodHandler_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		body           string
		mockService    *MockMoodService
		wantStatusCode int
	}{
		{
			name:           "valid entry",
			userID:         userID.String(),
			body:           `{"mood": 4, "energy_level": 3, "activities": ["exercise", "friends"], "note": "run"}`,
			mockService:    &MockMoodService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "mood out of range",
			userID:         userID.String(),
			body:           `{"mood": 6}`,
			mockService:    &MockMoodService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown activity",
			userID:         userID.String(),
			body:           `{"mood": 3, "activities": ["skydiving"]}`,
			mockService:    &MockMoodService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid JSON",
			userID:         userID.String(),
			body:           `{mood: 3`,
			mockService:    &MockMoodService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid user ID",
			userID:         "abc",
			body:           `{"mood": 3}`,
			mockService:    &MockMoodService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "unknown user",
			userID: userID.String(),
			body:   `{"mood": 3}`,
			mockService: &MockMoodService{
				createFunc: func(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodRequest) (*domain.MoodEntry, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMoodHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+tt.userID+"/moods", bytes.NewBufferString(tt.body))
			req = withURLParams(req, "userId", tt.userID)
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if rec.Code >= 400 {
				if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
					t.Errorf("error Content-Type = %q, want application/problem+json", ct)
				}
			}
		})
	}
}

func TestMoodHandler_List_ParsesFilter(t *testing.T) {
	userID := uuid.New()
	var got domain.ListFilter
	handler := NewMoodHandler(&MockMoodService{
		listFunc: func(ctx context.Context, id uuid.UUID, filter domain.ListFilter) (*domain.MoodListResponse, error) {
			got = filter
			return &domain.MoodListResponse{Data: []domain.MoodEntryResponse{}}, nil
		},
	})

	url := "/v1/users/" + userID.String() + "/moods?from=2024-01-01T00:00:00Z&to=2024-01-31T00:00:00Z&limit=5&cursor=abc"
	req := withURLParams(httptest.NewRequest(http.MethodGet, url, nil), "userId", userID.String())
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("List() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if got.Limit != 5 || got.Cursor != "abc" {
		t.Errorf("filter = %+v", got)
	}
	if got.From == nil || !got.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v", got.From)
	}
}

func TestMoodHandler_List_InvalidQuery(t *testing.T) {
	userID := uuid.New()
	tests := []string{
		"from=yesterday",
		"limit=0",
		"limit=ten",
		"from=2024-02-01T00:00:00Z&to=2024-01-01T00:00:00Z",
	}

	for _, query := range tests {
		t.Run(query, func(t *testing.T) {
			handler := NewMoodHandler(&MockMoodService{})
			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/moods?"+query, nil)
			req = withURLParams(req, "userId", userID.String())
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("List() status = %d, want 422, body: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestMoodHandler_Delete(t *testing.T) {
	userID, moodID := uuid.New(), uuid.New()

	tests := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{name: "deleted", wantStatusCode: http.StatusNoContent},
		{name: "not found", err: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMoodHandler(&MockMoodService{
				deleteFunc: func(ctx context.Context, u, id uuid.UUID) error {
					if u != userID || id != moodID {
						t.Errorf("Delete() called with %s/%s", u, id)
					}
					return tt.err
				},
			})

			req := httptest.NewRequest(http.MethodDelete, "/", nil)
			req = withURLParams(req, "userId", userID.String(), "moodId", moodID.String())
			rec := httptest.NewRecorder()

			handler.Delete(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Delete() status = %d, want %d", rec.Code, tt.wantStatusCode)
			}
		})
	}
}

func TestMoodHandler_Analytics_PassesTimeframe(t *testing.T) {
	userID := uuid.New()
	var gotTimeframe string
	handler := NewMoodHandler(&MockMoodService{
		analyticsFunc: func(ctx context.Context, id uuid.UUID, timeframe string) (*domain.MoodAnalyticsResponse, error) {
			gotTimeframe = timeframe
			return &domain.MoodAnalyticsResponse{
				Timeframe: domain.TimeframeMonth,
				Insights:  []string{"Start tracking your mood to see insights here."},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/moods/analytics?timeframe=month", nil)
	req = withURLParams(req, "userId", userID.String())
	rec := httptest.NewRecorder()

	handler.Analytics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Analytics() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if gotTimeframe != "month" {
		t.Errorf("timeframe = %q, want month", gotTimeframe)
	}

	var response domain.MoodAnalyticsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Timeframe != domain.TimeframeMonth || len(response.Insights) != 1 {
		t.Errorf("response = %+v", response)
	}
}

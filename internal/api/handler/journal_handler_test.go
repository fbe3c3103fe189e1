package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

func TestJournalHandler_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{name: "valid entry", body: `{"title": "Calm", "content": "**Slept well**", "tags": ["gratitude"]}`, wantStatusCode: http.StatusCreated},
		{name: "missing title", body: `{"content": "text"}`, wantStatusCode: http.StatusUnprocessableEntity},
		{name: "unknown tag", body: `{"title": "t", "content": "c", "tags": ["shopping"]}`, wantStatusCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewJournalHandler(&MockJournalService{})

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req = withURLParams(req, "userId", userID.String())
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestJournalHandler_List_Filters(t *testing.T) {
	userID := uuid.New()
	var got domain.JournalFilter
	handler := NewJournalHandler(&MockJournalService{
		listFunc: func(ctx context.Context, id uuid.UUID, filter domain.JournalFilter) (*domain.JournalListResponse, error) {
			got = filter
			return &domain.JournalListResponse{Data: []domain.JournalEntryResponse{}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/?tag=dreams&q=+ocean+", nil)
	req = withURLParams(req, "userId", userID.String())
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("List() status = %d", rec.Code)
	}
	if got.Tag != "dreams" || got.Query != "ocean" {
		t.Errorf("filter = %+v", got)
	}
}

func TestJournalHandler_TogglePin(t *testing.T) {
	userID, entryID := uuid.New(), uuid.New()
	handler := NewJournalHandler(&MockJournalService{
		togglePinFunc: func(ctx context.Context, u, id uuid.UUID) (*domain.JournalEntryResponse, error) {
			if id != entryID {
				return nil, domain.ErrNotFound
			}
			return &domain.JournalEntryResponse{ID: id, UserID: u, Pinned: true}, nil
		},
	})

	for _, tc := range []struct {
		id   string
		want int
	}{
		{entryID.String(), http.StatusOK},
		{uuid.NewString(), http.StatusNotFound},
		{"x", http.StatusBadRequest},
	} {
		req := withURLParams(httptest.NewRequest(http.MethodPost, "/", nil), "userId", userID.String(), "entryId", tc.id)
		rec := httptest.NewRecorder()

		handler.TogglePin(rec, req)

		if rec.Code != tc.want {
			t.Errorf("TogglePin(%s) status = %d, want %d", tc.id, rec.Code, tc.want)
		}
	}
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/blaisecz/wellbeing-tracker/internal/content"
	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/google/uuid"
)

// JournalService manages journal entries. Responses carry the entry content
// rendered from markdown to sanitized HTML.
type JournalService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalRequest) (*domain.JournalEntryResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntryResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *domain.UpdateJournalRequest) (*domain.JournalEntryResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	// List returns pinned entries first, then newest first.
	List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) (*domain.JournalListResponse, error)
	TogglePin(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntryResponse, error)
}

type journalService struct {
	repo     repository.JournalRepository
	userRepo repository.UserRepository
	renderer content.Renderer
}

func NewJournalService(repo repository.JournalRepository, userRepo repository.UserRepository, renderer content.Renderer) JournalService {
	return &journalService{
		repo:     repo,
		userRepo: userRepo,
		renderer: renderer,
	}
}

func (s *journalService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalRequest) (*domain.JournalEntryResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entry := &domain.JournalEntry{
		UserID:  userID,
		Title:   s.renderer.Plain(req.Title),
		Content: req.Content,
		Tags:    nonNilStrings(req.Tags),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return s.render(entry)
}

func (s *journalService) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntryResponse, error) {
	entry, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.render(entry)
}

func (s *journalService) Update(ctx context.Context, userID, id uuid.UUID, req *domain.UpdateJournalRequest) (*domain.JournalEntryResponse, error) {
	entry, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entry.Title = s.renderer.Plain(*req.Title)
	}
	if req.Content != nil {
		entry.Content = *req.Content
	}
	if req.Tags != nil {
		entry.Tags = nonNilStrings(*req.Tags)
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return s.render(entry)
}

func (s *journalService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *journalService) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) (*domain.JournalListResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	filter.Query = strings.TrimSpace(filter.Query)
	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	response := &domain.JournalListResponse{Data: make([]domain.JournalEntryResponse, 0, len(entries))}
	for i := range entries {
		rendered, err := s.render(&entries[i])
		if err != nil {
			return nil, err
		}
		response.Data = append(response.Data, *rendered)
	}
	return response, nil
}

func (s *journalService) TogglePin(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntryResponse, error) {
	entry, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	entry.Pinned = !entry.Pinned
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return s.render(entry)
}

func (s *journalService) render(entry *domain.JournalEntry) (*domain.JournalEntryResponse, error) {
	html, err := s.renderer.Markdown(entry.Content)
	if err != nil {
		return nil, fmt.Errorf("render journal entry %s: %w", entry.ID, err)
	}
	response := entry.ToResponse(html)
	return &response, nil
}

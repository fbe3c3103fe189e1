package service

import (
	"context"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/metrics"
	"github.com/blaisecz/wellbeing-tracker/internal/psychologist"
	"github.com/google/uuid"
)

const feedbackSubmittedMessage = "Feedback submitted successfully"

// TherapistService proxies conversations to the external therapist service,
// enriching each message with the user's age and gender.
type TherapistService interface {
	Chat(ctx context.Context, userID uuid.UUID, req *domain.ChatRequest) (*domain.ChatResponse, error)
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.TherapistFeedbackRequest) (*domain.TherapistFeedbackResponse, error)
}

type therapistService struct {
	users  UserService
	client psychologist.Client
}

func NewTherapistService(users UserService, client psychologist.Client) TherapistService {
	return &therapistService{users: users, client: client}
}

func (s *therapistService) Chat(ctx context.Context, userID uuid.UUID, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	uc, err := s.users.Context(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Chat(ctx, psychologist.ChatInput{
		UserID:  userID.String(),
		Message: req.Message,
		Gender:  uc.Gender,
		Age:     uc.Age,
	})
	metrics.UpstreamRequestsTotal.WithLabelValues("psychologist", "chat", metrics.Status(err)).Inc()
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *therapistService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.TherapistFeedbackRequest) (*domain.TherapistFeedbackResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	status, err := s.client.Feedback(ctx, userID.String(), req.Feedback)
	metrics.UpstreamRequestsTotal.WithLabelValues("psychologist", "feedback", metrics.Status(err)).Inc()
	if err != nil {
		return nil, err
	}
	return &domain.TherapistFeedbackResponse{
		Message: feedbackSubmittedMessage,
		Status:  status,
	}, nil
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/google/uuid"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// UpdateProfile stores the onboarding answers and marks onboarding as
	// completed.
	UpdateProfile(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error)
	// Context returns the demographics forwarded to the therapist service.
	Context(ctx context.Context, id uuid.UUID) (*domain.UserContext, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Reject duplicates up front; the unique index still guards races
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Timezone: req.Timezone,
		Goals:    []string{},
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Timezone != nil && *req.Timezone != "" {
		user.Timezone = *req.Timezone
	}
	age := req.Age
	user.Age = &age
	user.Gender = req.Gender
	user.Occupation = strings.TrimSpace(req.Occupation)
	user.Goals = nonNilStrings(req.Goals)
	user.OnboardingCompleted = true

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Context(ctx context.Context, id uuid.UUID) (*domain.UserContext, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc := &domain.UserContext{Gender: user.Gender}
	if user.Age != nil {
		uc.Age = *user.Age
	}
	if uc.Gender == "" {
		uc.Gender = "prefer-not-to-say"
	}
	return uc, nil
}

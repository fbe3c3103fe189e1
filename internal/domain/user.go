package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string                      `gorm:"type:varchar(100);not null" json:"name"`
	Email               string                      `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Age                 *int                        `gorm:"type:smallint" json:"age,omitempty"`
	Gender              string                      `gorm:"type:varchar(32)" json:"gender,omitempty"`
	Occupation          string                      `gorm:"type:varchar(100)" json:"occupation,omitempty"`
	Goals               datatypes.JSONSlice[string] `json:"goals"`
	Timezone            string                      `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	OnboardingCompleted bool                        `gorm:"not null;default:false" json:"onboarding_completed"`
	CreatedAt           time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

// Location returns the user's home timezone, UTC when unset or unknown.
func (u *User) Location() *time.Location {
	if u.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100" example:"Alex"`
	Email    string `json:"email" validate:"required,email,max=255" example:"alex@example.com"`
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
}

// UpdateProfileRequest carries the onboarding answers.
// @Description Onboarding profile: demographics used by the therapist service and wellbeing goals.
type UpdateProfileRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Age        int      `json:"age" validate:"required,min=13,max=120" example:"29"`
	Gender     string   `json:"gender" validate:"required,oneof=male female non-binary prefer-not-to-say" example:"female"`
	Occupation string   `json:"occupation" validate:"omitempty,max=100" example:"designer"`
	Goals      []string `json:"goals" validate:"omitempty,max=8,unique,dive,oneof=reduce-anxiety improve-sleep mindfulness manage-stress boost-mood self-discovery improve-focus build-resilience" example:"improve-sleep"`
	Timezone   *string  `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Age                 *int      `json:"age,omitempty"`
	Gender              string    `json:"gender,omitempty"`
	Occupation          string    `json:"occupation,omitempty"`
	Goals               []string  `json:"goals"`
	Timezone            string    `json:"timezone"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	goals := []string(u.Goals)
	if goals == nil {
		goals = []string{}
	}
	return UserResponse{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		Age:                 u.Age,
		Gender:              u.Gender,
		Occupation:          u.Occupation,
		Goals:               goals,
		Timezone:            u.Timezone,
		OnboardingCompleted: u.OnboardingCompleted,
		CreatedAt:           u.CreatedAt,
	}
}

// UserContext is the demographic slice of a profile forwarded to the
// therapist service.
type UserContext struct {
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

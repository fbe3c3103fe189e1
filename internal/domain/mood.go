package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MoodEntry is a single self-reported mood observation.
type MoodEntry struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID                   `gorm:"type:uuid;not null;index:idx_mood_entries_user_ts" json:"user_id"`
	Mood        int                         `gorm:"type:smallint;not null" json:"mood"`
	EnergyLevel *int                        `gorm:"type:smallint" json:"energy_level,omitempty"`
	Activities  datatypes.JSONSlice[string] `json:"activities"`
	Note        string                      `gorm:"type:text" json:"note,omitempty"`
	Timestamp   time.Time                   `gorm:"not null;index:idx_mood_entries_user_ts,sort:desc" json:"timestamp"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}

func (m *MoodEntry) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}

// HasActivity reports whether the entry is tagged with activity.
func (m *MoodEntry) HasActivity(activity string) bool {
	for _, a := range m.Activities {
		if a == activity {
			return true
		}
	}
	return false
}

// CreateMoodRequest is the request body for logging a mood.
// @Description Mood observation. Timestamp defaults to the time of the request.
type CreateMoodRequest struct {
	// Mood from 1 (bad) to 5 (excellent)
	Mood int `json:"mood" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional energy level from 1 to 5
	EnergyLevel *int `json:"energy_level,omitempty" validate:"omitempty,min=1,max=5" example:"3"`
	// Activity tags
	Activities []string `json:"activities" validate:"omitempty,max=17,unique,dive,oneof=work exercise family friends hobbies studying socializing selfCare dating gaming resting cooking travel shopping nature music reading" example:"exercise,friends"`
	// Free text note
	Note string `json:"note,omitempty" validate:"max=2000" example:"Went for a run with Sam"`
	// Point in time the entry describes (RFC3339)
	Timestamp *time.Time `json:"timestamp,omitempty" example:"2024-01-15T18:30:00Z"`
}

// UpdateMoodRequest is the request body for editing a mood entry. Absent
// fields are left untouched.
type UpdateMoodRequest struct {
	Mood        *int       `json:"mood,omitempty" validate:"omitempty,min=1,max=5"`
	EnergyLevel *int       `json:"energy_level,omitempty" validate:"omitempty,min=1,max=5"`
	Activities  *[]string  `json:"activities,omitempty" validate:"omitempty,max=17,unique,dive,oneof=work exercise family friends hobbies studying socializing selfCare dating gaming resting cooking travel shopping nature music reading"`
	Note        *string    `json:"note,omitempty" validate:"omitempty,max=2000"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

// MoodEntryResponse is the response body for mood endpoints.
type MoodEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Mood        int       `json:"mood" example:"4"`
	MoodLabel   string    `json:"mood_label" example:"Good"`
	EnergyLevel *int      `json:"energy_level,omitempty" example:"3"`
	Activities  []string  `json:"activities"`
	Note        string    `json:"note,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m *MoodEntry) ToResponse() MoodEntryResponse {
	activities := []string(m.Activities)
	if activities == nil {
		activities = []string{}
	}
	return MoodEntryResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		Mood:        m.Mood,
		MoodLabel:   MoodLabel(m.Mood),
		EnergyLevel: m.EnergyLevel,
		Activities:  activities,
		Note:        m.Note,
		Timestamp:   m.Timestamp,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MoodListResponse is the paginated list of mood entries.
type MoodListResponse struct {
	Data       []MoodEntryResponse `json:"data"`
	Pagination PaginationResponse  `json:"pagination"`
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// DateLayout is the wire format of calendar dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format of local clock times.
	ClockLayout = "15:04"

	minutesPerDay = 24 * 60
)

// SleepDuration is derived from bed and wake clock times when an entry is
// written and stored alongside it.
type SleepDuration struct {
	Hours        int `json:"hours" example:"7"`
	Minutes      int `json:"minutes" example:"45"`
	TotalMinutes int `json:"total_minutes" example:"465"`
}

// ParseClock converts an HH:MM clock time into minutes after midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: clock time %q", ErrInvalidInput, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// NewSleepDuration computes the time slept between bedTime and wakeTime.
// A wake time numerically earlier than the bed time crosses midnight.
func NewSleepDuration(bedTime, wakeTime string) (SleepDuration, error) {
	bed, err := ParseClock(bedTime)
	if err != nil {
		return SleepDuration{}, err
	}
	wake, err := ParseClock(wakeTime)
	if err != nil {
		return SleepDuration{}, err
	}
	if wake < bed {
		wake += minutesPerDay
	}
	total := wake - bed
	return SleepDuration{
		Hours:        total / 60,
		Minutes:      total % 60,
		TotalMinutes: total,
	}, nil
}

// SleepEntry is one night of sleep as reported by the user.
type SleepEntry struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID                   `gorm:"type:uuid;not null;index:idx_sleep_entries_user_date" json:"user_id"`
	SleepDate       time.Time                   `gorm:"not null;index:idx_sleep_entries_user_date,sort:desc" json:"sleep_date"`
	BedTime         string                      `gorm:"type:varchar(5);not null" json:"bed_time"`
	WakeTime        string                      `gorm:"type:varchar(5);not null" json:"wake_time"`
	DurationHours   int                         `gorm:"type:smallint;not null" json:"-"`
	DurationMinutes int                         `gorm:"type:smallint;not null" json:"-"`
	TotalMinutes    int                         `gorm:"not null" json:"-"`
	SleepQuality    int                         `gorm:"type:smallint;not null" json:"sleep_quality"`
	WakeMood        string                      `gorm:"type:varchar(16);not null" json:"wake_mood"`
	Activities      datatypes.JSONSlice[string] `json:"activities"`
	Notes           string                      `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepEntry) TableName() string {
	return "sleep_entries"
}

func (s *SleepEntry) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// Duration returns the stored sleep duration.
func (s *SleepEntry) Duration() SleepDuration {
	return SleepDuration{
		Hours:        s.DurationHours,
		Minutes:      s.DurationMinutes,
		TotalMinutes: s.TotalMinutes,
	}
}

// SetTimes stores bed and wake times together with the derived duration.
func (s *SleepEntry) SetTimes(bedTime, wakeTime string) error {
	d, err := NewSleepDuration(bedTime, wakeTime)
	if err != nil {
		return err
	}
	s.BedTime = bedTime
	s.WakeTime = wakeTime
	s.DurationHours = d.Hours
	s.DurationMinutes = d.Minutes
	s.TotalMinutes = d.TotalMinutes
	return nil
}

func (s *SleepEntry) HasActivity(activity string) bool {
	for _, a := range s.Activities {
		if a == activity {
			return true
		}
	}
	return false
}

// CreateSleepRequest is the request body for logging a night of sleep.
// @Description Sleep entry. Times are local clock times; a wake time earlier than the bed time crosses midnight.
type CreateSleepRequest struct {
	// Calendar date the sleep is attributed to
	SleepDate string `json:"sleep_date" validate:"required,date" example:"2024-01-15"`
	// Bed time (HH:MM)
	BedTime string `json:"bed_time" validate:"required,clock" example:"23:00"`
	// Wake time (HH:MM)
	WakeTime string `json:"wake_time" validate:"required,clock" example:"07:00"`
	// Sleep quality from 1 (poor) to 5 (excellent)
	SleepQuality int `json:"sleep_quality" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// How the user felt on waking
	WakeMood string `json:"wake_mood" validate:"required,oneof=refreshed energized tired groggy neutral" example:"refreshed" enums:"refreshed,energized,tired,groggy,neutral"`
	// Pre-sleep activities
	Activities []string `json:"activities" validate:"omitempty,max=8,unique,dive,oneof=reading meditation screen exercise caffeine alcohol heavyMeal nap" example:"reading"`
	// Free text notes
	Notes string `json:"notes,omitempty" validate:"max=2000"`
}

// UpdateSleepRequest is the request body for editing a sleep entry.
type UpdateSleepRequest struct {
	SleepDate    *string   `json:"sleep_date,omitempty" validate:"omitempty,date"`
	BedTime      *string   `json:"bed_time,omitempty" validate:"omitempty,clock"`
	WakeTime     *string   `json:"wake_time,omitempty" validate:"omitempty,clock"`
	SleepQuality *int      `json:"sleep_quality,omitempty" validate:"omitempty,min=1,max=5"`
	WakeMood     *string   `json:"wake_mood,omitempty" validate:"omitempty,oneof=refreshed energized tired groggy neutral"`
	Activities   *[]string `json:"activities,omitempty" validate:"omitempty,max=8,unique,dive,oneof=reading meditation screen exercise caffeine alcohol heavyMeal nap"`
	Notes        *string   `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// SleepEntryResponse is the response body for sleep endpoints.
type SleepEntryResponse struct {
	ID                uuid.UUID     `json:"id"`
	UserID            uuid.UUID     `json:"user_id"`
	SleepDate         string        `json:"sleep_date" example:"2024-01-15"`
	BedTime           string        `json:"bed_time" example:"23:00"`
	WakeTime          string        `json:"wake_time" example:"07:00"`
	Duration          SleepDuration `json:"duration"`
	SleepQuality      int           `json:"sleep_quality" example:"4"`
	SleepQualityLabel string        `json:"sleep_quality_label" example:"Very Good"`
	WakeMood          string        `json:"wake_mood" example:"refreshed"`
	Activities        []string      `json:"activities"`
	Notes             string        `json:"notes,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (s *SleepEntry) ToResponse() SleepEntryResponse {
	activities := []string(s.Activities)
	if activities == nil {
		activities = []string{}
	}
	return SleepEntryResponse{
		ID:                s.ID,
		UserID:            s.UserID,
		SleepDate:         s.SleepDate.Format(DateLayout),
		BedTime:           s.BedTime,
		WakeTime:          s.WakeTime,
		Duration:          s.Duration(),
		SleepQuality:      s.SleepQuality,
		SleepQualityLabel: SleepQualityLabel(s.SleepQuality),
		WakeMood:          s.WakeMood,
		Activities:        activities,
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// SleepQualityLabel returns the label of a 1-5 quality rating.
func SleepQualityLabel(quality int) string {
	if quality < 1 || quality >= len(SleepQualityLabels) {
		return ""
	}
	return SleepQualityLabels[quality]
}

// SleepListResponse is the paginated list of sleep entries.
type SleepListResponse struct {
	Data       []SleepEntryResponse `json:"data"`
	Pagination PaginationResponse   `json:"pagination"`
}

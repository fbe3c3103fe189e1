package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JournalEntry struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string                      `gorm:"type:varchar(200);not null" json:"title"`
	Content   string                      `gorm:"type:text;not null" json:"content"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	Pinned    bool                        `gorm:"not null;default:false" json:"pinned"`
	CreatedAt time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

func (j *JournalEntry) BeforeCreate(tx *gorm.DB) error {
	ensureID(&j.ID)
	return nil
}

func (j *JournalEntry) HasTag(tag string) bool {
	return containsString(j.Tags, tag)
}

// CreateJournalRequest is the request body for writing a journal entry.
// @Description Journal entry; content is markdown.
type CreateJournalRequest struct {
	Title   string   `json:"title" validate:"required,max=200" example:"A calmer week"`
	Content string   `json:"content" validate:"required,max=20000" example:"Today I *finally* slept well."`
	Tags    []string `json:"tags" validate:"omitempty,max=8,unique,dive,oneof=reflection gratitude goals memories challenges ideas dreams lessons" example:"gratitude"`
}

type UpdateJournalRequest struct {
	Title   *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content *string   `json:"content,omitempty" validate:"omitempty,min=1,max=20000"`
	Tags    *[]string `json:"tags,omitempty" validate:"omitempty,max=8,unique,dive,oneof=reflection gratitude goals memories challenges ideas dreams lessons"`
}

// JournalFilter narrows a journal listing.
type JournalFilter struct {
	Tag   string
	Query string
}

type JournalEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	Tags        []string  `json:"tags"`
	Pinned      bool      `json:"pinned"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToResponse builds the response; html is the rendered content.
func (j *JournalEntry) ToResponse(html string) JournalEntryResponse {
	tags := []string(j.Tags)
	if tags == nil {
		tags = []string{}
	}
	return JournalEntryResponse{
		ID:          j.ID,
		UserID:      j.UserID,
		Title:       j.Title,
		Content:     j.Content,
		ContentHTML: html,
		Tags:        tags,
		Pinned:      j.Pinned,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

type JournalListResponse struct {
	Data []JournalEntryResponse `json:"data"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PostSort selects the ordering of a community listing.
type PostSort string

const (
	PostSortRecent  PostSort = "recent"
	PostSortPopular PostSort = "popular"
)

// Post is a community forum thread.
type Post struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	AuthorName   string                      `gorm:"type:varchar(100);not null" json:"author_name"`
	Title        string                      `gorm:"type:varchar(200);not null" json:"title"`
	Content      string                      `gorm:"type:text;not null" json:"content"`
	Categories   datatypes.JSONSlice[string] `json:"categories"`
	Likes        int                         `gorm:"not null;default:0;index" json:"likes"`
	LikedBy      datatypes.JSONSlice[string] `json:"liked_by"`
	SavedBy      datatypes.JSONSlice[string] `json:"saved_by"`
	CommentCount int                         `gorm:"not null;default:0" json:"comment_count"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Post) TableName() string {
	return "community_posts"
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// HasCategory reports whether the post is filed under category.
func (p *Post) HasCategory(category string) bool {
	return containsString(p.Categories, category)
}

// ToggleLike flips userID's like, keeping Likes equal to len(LikedBy).
// It returns whether the post is liked afterwards.
func (p *Post) ToggleLike(userID uuid.UUID) bool {
	var liked bool
	p.LikedBy, liked = toggleString(p.LikedBy, userID.String())
	p.Likes = len(p.LikedBy)
	return liked
}

// ToggleSave flips userID's bookmark and returns whether the post is saved
// afterwards.
func (p *Post) ToggleSave(userID uuid.UUID) bool {
	var saved bool
	p.SavedBy, saved = toggleString(p.SavedBy, userID.String())
	return saved
}

// IsSavedBy reports whether userID bookmarked the post.
func (p *Post) IsSavedBy(userID uuid.UUID) bool {
	return containsString(p.SavedBy, userID.String())
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func toggleString(values []string, v string) ([]string, bool) {
	for i, s := range values {
		if s == v {
			out := make([]string, 0, len(values)-1)
			out = append(out, values[:i]...)
			return append(out, values[i+1:]...), false
		}
	}
	return append(values, v), true
}

// Comment is a reply on a community post.
type Comment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID     uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	AuthorName string    `gorm:"type:varchar(100);not null" json:"author_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "community_comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// CreatePostRequest is the request body for starting a thread.
// @Description Community post; content is markdown.
type CreatePostRequest struct {
	UserID     uuid.UUID `json:"user_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title      string    `json:"title" validate:"required,max=200" example:"Small wins this week"`
	Content    string    `json:"content" validate:"required,max=10000" example:"Managed three mindful walks."`
	Categories []string  `json:"categories" validate:"required,min=1,max=10,unique,dive,oneof=mental-health anxiety depression mindfulness self-care stress relationships success-stories questions resources" example:"mindfulness"`
}

// PostActionRequest identifies the user liking or saving a post.
type PostActionRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type CreateCommentRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Content string    `json:"content" validate:"required,max=2000" example:"Thanks for sharing!"`
}

// PostFilter narrows and orders a community listing.
type PostFilter struct {
	Category string
	Sort     PostSort
	Limit    int
}

type PostResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	AuthorName   string    `json:"author_name"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ContentHTML  string    `json:"content_html"`
	Categories   []string  `json:"categories"`
	Likes        int       `json:"likes"`
	LikedBy      []string  `json:"liked_by"`
	SavedBy      []string  `json:"saved_by"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *Post) ToResponse(html string) PostResponse {
	return PostResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		AuthorName:   p.AuthorName,
		Title:        p.Title,
		Content:      p.Content,
		ContentHTML:  html,
		Categories:   nonNil(p.Categories),
		Likes:        p.Likes,
		LikedBy:      nonNil(p.LikedBy),
		SavedBy:      nonNil(p.SavedBy),
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

type PostListResponse struct {
	Data []PostResponse `json:"data"`
}

// ToggleResponse reports the state of a like or save after toggling it.
type ToggleResponse struct {
	PostID uuid.UUID `json:"post_id"`
	Active bool      `json:"active"`
	Likes  int       `json:"likes"`
}

type CommentListResponse struct {
	Data []Comment `json:"data"`
}

package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommunityRepository interface {
	CreatePost(ctx context.Context, post *domain.Post) error
	GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	ListSaved(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)
	// UpdatePost loads the post under a row lock, applies fn and saves it in
	// one transaction.
	UpdatePost(ctx context.Context, id uuid.UUID, fn func(post *domain.Post) error) (*domain.Post, error)
	AddComment(ctx context.Context, comment *domain.Comment) error
	ListComments(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
}

type communityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Omit("User").Create(post).Error
}

func (r *communityRepository) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return findPost(r.db.WithContext(ctx), id)
}

func findPost(db *gorm.DB, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	if err := db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *communityRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Post{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// ListPosts orders by recency, or by likes for the popular sort.
func (r *communityRepository) ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	query := r.db.WithContext(ctx)
	if filter.Category != "" {
		query = query.Where(datatypes.JSONArrayQuery("categories").Contains(filter.Category))
	}
	if filter.Sort == domain.PostSortPopular {
		query = query.Order("likes DESC")
	}

	var posts []domain.Post
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(pagination.NormalizeLimit(filter.Limit)).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *communityRepository) ListSaved(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	posts := make([]domain.Post, 0)
	err := r.db.WithContext(ctx).
		Where(datatypes.JSONArrayQuery("saved_by").Contains(userID.String())).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *communityRepository) UpdatePost(ctx context.Context, id uuid.UUID, fn func(post *domain.Post) error) (*domain.Post, error) {
	var updated *domain.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := findPost(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
		if err != nil {
			return err
		}
		if err := fn(post); err != nil {
			return err
		}
		if err := tx.Omit("User").Save(post).Error; err != nil {
			return err
		}
		updated = post
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddComment stores the comment and bumps the post's comment count in the
// same transaction.
func (r *communityRepository) AddComment(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Omit("Post").Create(comment).Error
	})
}

func (r *communityRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

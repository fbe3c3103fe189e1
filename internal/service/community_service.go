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

type CommunityService interface {
	CreatePost(ctx context.Context, req *domain.CreatePostRequest) (*domain.PostResponse, error)
	GetPost(ctx context.Context, id uuid.UUID) (*domain.PostResponse, error)
	ListPosts(ctx context.Context, filter domain.PostFilter) (*domain.PostListResponse, error)
	// DeletePost removes the post and its comments. Only the author may
	// delete; anyone else gets domain.ErrForbidden.
	DeletePost(ctx context.Context, postID, userID uuid.UUID) error
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*domain.ToggleResponse, error)
	ToggleSave(ctx context.Context, postID, userID uuid.UUID) (*domain.ToggleResponse, error)
	AddComment(ctx context.Context, postID uuid.UUID, req *domain.CreateCommentRequest) (*domain.Comment, error)
	ListComments(ctx context.Context, postID uuid.UUID) (*domain.CommentListResponse, error)
	ListSaved(ctx context.Context, userID uuid.UUID) (*domain.PostListResponse, error)
}

type communityService struct {
	repo     repository.CommunityRepository
	userRepo repository.UserRepository
	renderer content.Renderer
}

func NewCommunityService(repo repository.CommunityRepository, userRepo repository.UserRepository, renderer content.Renderer) CommunityService {
	return &communityService{
		repo:     repo,
		userRepo: userRepo,
		renderer: renderer,
	}
}

// ParsePostSort maps the sort query parameter; anything but "popular" sorts
// by recency.
func ParsePostSort(s string) domain.PostSort {
	if strings.EqualFold(s, string(domain.PostSortPopular)) {
		return domain.PostSortPopular
	}
	return domain.PostSortRecent
}

func (s *communityService) CreatePost(ctx context.Context, req *domain.CreatePostRequest) (*domain.PostResponse, error) {
	author, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		UserID:     author.ID,
		AuthorName: author.Name,
		Title:      s.renderer.Plain(req.Title),
		Content:    req.Content,
		Categories: nonNilStrings(req.Categories),
		LikedBy:    []string{},
		SavedBy:    []string{},
	}

	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return s.render(post)
}

func (s *communityService) GetPost(ctx context.Context, id uuid.UUID) (*domain.PostResponse, error) {
	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.render(post)
}

func (s *communityService) ListPosts(ctx context.Context, filter domain.PostFilter) (*domain.PostListResponse, error) {
	if filter.Sort == "" {
		filter.Sort = domain.PostSortRecent
	}
	posts, err := s.repo.ListPosts(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.renderList(posts)
}

func (s *communityService) DeletePost(ctx context.Context, postID, userID uuid.UUID) error {
	post, err := s.repo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return domain.ErrForbidden
	}
	return s.repo.DeletePost(ctx, postID)
}

func (s *communityService) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*domain.ToggleResponse, error) {
	return s.toggle(ctx, postID, userID, (*domain.Post).ToggleLike)
}

func (s *communityService) ToggleSave(ctx context.Context, postID, userID uuid.UUID) (*domain.ToggleResponse, error) {
	return s.toggle(ctx, postID, userID, (*domain.Post).ToggleSave)
}

func (s *communityService) toggle(ctx context.Context, postID, userID uuid.UUID, apply func(*domain.Post, uuid.UUID) bool) (*domain.ToggleResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	var active bool
	post, err := s.repo.UpdatePost(ctx, postID, func(p *domain.Post) error {
		active = apply(p, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.ToggleResponse{
		PostID: post.ID,
		Active: active,
		Likes:  post.Likes,
	}, nil
}

func (s *communityService) AddComment(ctx context.Context, postID uuid.UUID, req *domain.CreateCommentRequest) (*domain.Comment, error) {
	author, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	body := s.renderer.Plain(req.Content)
	if body == "" {
		return nil, fmt.Errorf("%w: comment is empty after sanitizing", domain.ErrInvalidInput)
	}

	comment := &domain.Comment{
		PostID:     postID,
		UserID:     author.ID,
		AuthorName: author.Name,
		Content:    body,
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *communityService) ListComments(ctx context.Context, postID uuid.UUID) (*domain.CommentListResponse, error) {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.repo.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return &domain.CommentListResponse{Data: comments}, nil
}

func (s *communityService) ListSaved(ctx context.Context, userID uuid.UUID) (*domain.PostListResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	posts, err := s.repo.ListSaved(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.renderList(posts)
}

func (s *communityService) render(post *domain.Post) (*domain.PostResponse, error) {
	html, err := s.renderer.Markdown(post.Content)
	if err != nil {
		return nil, fmt.Errorf("render post %s: %w", post.ID, err)
	}
	response := post.ToResponse(html)
	return &response, nil
}

func (s *communityService) renderList(posts []domain.Post) (*domain.PostListResponse, error) {
	response := &domain.PostListResponse{Data: make([]domain.PostResponse, 0, len(posts))}
	for i := range posts {
		rendered, err := s.render(&posts[i])
		if err != nil {
			return nil, err
		}
		response.Data = append(response.Data, *rendered)
	}
	return response, nil
}

package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
	"github.com/google/uuid"
)

// CommunityHandler serves the community board: posts, likes, bookmarks and
// comments.
type CommunityHandler struct {
	service service.CommunityService
}

func NewCommunityHandler(service service.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: service}
}

// CreatePost handles POST /v1/community/posts
// @Summary Create a community post
// @Tags community
// @Accept json
// @Produce json
// @Param request body domain.CreatePostRequest true "Post"
// @Success 201 {object} domain.PostResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Author not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /community/posts [post]
func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := h.service.CreatePost(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to create post")
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// ListPosts handles GET /v1/community/posts
// @Summary List community posts
// @Tags community
// @Produce json
// @Param category query string false "Only posts in this category"
// @Param sort query string false "Ordering" Enums(recent, popular) default(recent)
// @Param limit query int false "Maximum number of posts (default 20, max 100)"
// @Success 200 {object} domain.PostListResponse
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /community/posts [get]
func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.PostFilter{
		Category: q.Get("category"),
		Sort:     service.ParsePostSort(q.Get("sort")),
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "limit", Message: "must be a positive integer"},
			}).Write(w)
			return
		}
		filter.Limit = limit
	}

	posts, err := h.service.ListPosts(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, "Posts not found", "Failed to list posts")
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// GetPost handles GET /v1/community/posts/{postId}
// @Summary Get a community post
// @Tags community
// @Produce json
// @Param postId path string true "Post ID" format(uuid)
// @Success 200 {object} domain.PostResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /community/posts/{postId} [get]
func (h *CommunityHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathUUID(w, r, "postId", "post")
	if !ok {
		return
	}

	post, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err, "Post not found", "Failed to get post")
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /v1/community/posts/{postId}
// @Summary Delete a community post
// @Description Only the author may delete a post. The caller is identified by the user_id query parameter.
// @Tags community
// @Param postId path string true "Post ID" format(uuid)
// @Param user_id query string true "Caller user ID" format(uuid)
// @Success 204 "Deleted"
// @Failure 400 {object} problem.Problem
// @Failure 403 {object} problem.Problem "Caller is not the author"
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /community/posts/{postId} [delete]
func (h *CommunityHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathUUID(w, r, "postId", "post")
	if !ok {
		return
	}
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if err := h.service.DeletePost(r.Context(), postID, userID); err != nil {
		writeServiceError(w, err, "Post not found", "Failed to delete post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Like handles POST /v1/community/posts/{postId}/like
// @Summary Like or unlike a post
// @Tags community
// @Accept json
// @Produce json
// @Param postId path string true "Post ID" format(uuid)
// @Param request body domain.PostActionRequest true "Acting user"
// @Success 200 {object} domain.ToggleResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /community/posts/{postId}/like [post]
func (h *CommunityHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.ToggleLike)
}

// Save handles POST /v1/community/posts/{postId}/save
// @Summary Bookmark or unbookmark a post
// @Tags community
// @Accept json
// @Produce json
// @Param postId path string true "Post ID" format(uuid)
// @Param request body domain.PostActionRequest true "Acting user"
// @Success 200 {object} domain.ToggleResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /community/posts/{postId}/save [post]
func (h *CommunityHandler) Save(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.ToggleSave)
}

type toggleFunc func(ctx context.Context, postID, userID uuid.UUID) (*domain.ToggleResponse, error)

func (h *CommunityHandler) toggle(w http.ResponseWriter, r *http.Request, apply toggleFunc) {
	postID, ok := pathUUID(w, r, "postId", "post")
	if !ok {
		return
	}

	var req domain.PostActionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := apply(r.Context(), postID, req.UserID)
	if err != nil {
		writeServiceError(w, err, "Post not found", "Failed to update post")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AddComment handles POST /v1/community/posts/{postId}/comments
// @Summary Comment on a post
// @Tags community
// @Accept json
// @Produce json
// @Param postId path string true "Post ID" format(uuid)
// @Param request body domain.CreateCommentRequest true "Comment"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Post or user not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /community/posts/{postId}/comments [post]
func (h *CommunityHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathUUID(w, r, "postId", "post")
	if !ok {
		return
	}

	var req domain.CreateCommentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	comment, err := h.service.AddComment(r.Context(), postID, &req)
	if err != nil {
		writeServiceError(w, err, "Post not found", "Failed to add comment")
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// ListComments handles GET /v1/community/posts/{postId}/comments
// @Summary List comments on a post
// @Description Oldest first
// @Tags community
// @Produce json
// @Param postId path string true "Post ID" format(uuid)
// @Success 200 {object} domain.CommentListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /community/posts/{postId}/comments [get]
func (h *CommunityHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathUUID(w, r, "postId", "post")
	if !ok {
		return
	}

	comments, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err, "Post not found", "Failed to list comments")
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

// ListSaved handles GET /v1/users/{userId}/community/saved
// @Summary List posts bookmarked by a user
// @Tags community
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.PostListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/community/saved [get]
func (h *CommunityHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user")
	if !ok {
		return
	}

	posts, err := h.service.ListSaved(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to list saved posts")
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

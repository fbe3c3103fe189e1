package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

func newTestCommunityService() (CommunityService, *MockCommunityRepository, *MockUserRepository) {
	repo := NewMockCommunityRepository()
	users := NewMockUserRepository()
	return NewCommunityService(repo, users, stubRenderer{}), repo, users
}

func TestCommunityService_CreatePost(t *testing.T) {
	svc, _, users := newTestCommunityService()
	author := users.add("casey", "UTC")

	post, err := svc.CreatePost(context.Background(), &domain.CreatePostRequest{
		UserID:     author.ID,
		Title:      "Small wins",
		Content:    "Three walks",
		Categories: []string{"mindfulness"},
	})
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	if post.AuthorName != "casey" || post.ContentHTML != "<p>Three walks</p>" {
		t.Errorf("CreatePost() = %+v", post)
	}
	if post.Likes != 0 || post.LikedBy == nil || post.SavedBy == nil {
		t.Errorf("new post counters = %+v", post)
	}

	_, err = svc.CreatePost(context.Background(), &domain.CreatePostRequest{UserID: uuid.New(), Title: "x", Content: "y", Categories: []string{"stress"}})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("CreatePost() unknown author error = %v, want ErrNotFound", err)
	}
}

func TestCommunityService_DeletePostAuthorOnly(t *testing.T) {
	svc, repo, users := newTestCommunityService()
	author := users.add("casey", "UTC")
	stranger := users.add("drew", "UTC")
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &domain.CreatePostRequest{UserID: author.ID, Title: "t", Content: "c", Categories: []string{"stress"}})
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	if err := svc.DeletePost(ctx, post.ID, stranger.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("DeletePost() by stranger error = %v, want ErrForbidden", err)
	}
	if err := svc.DeletePost(ctx, post.ID, author.ID); err != nil {
		t.Fatalf("DeletePost() by author error = %v", err)
	}
	if len(repo.posts) != 0 {
		t.Error("post should be removed")
	}
	if err := svc.DeletePost(ctx, post.ID, author.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second DeletePost() error = %v, want ErrNotFound", err)
	}
}

func TestCommunityService_ToggleLikeAndSave(t *testing.T) {
	svc, _, users := newTestCommunityService()
	author := users.add("casey", "UTC")
	reader := users.add("drew", "UTC")
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &domain.CreatePostRequest{UserID: author.ID, Title: "t", Content: "c", Categories: []string{"stress"}})
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	liked, err := svc.ToggleLike(ctx, post.ID, reader.ID)
	if err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}
	if !liked.Active || liked.Likes != 1 {
		t.Errorf("ToggleLike() = %+v, want active with 1 like", liked)
	}
	unliked, err := svc.ToggleLike(ctx, post.ID, reader.ID)
	if err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}
	if unliked.Active || unliked.Likes != 0 {
		t.Errorf("second ToggleLike() = %+v, want inactive with 0 likes", unliked)
	}

	saved, err := svc.ToggleSave(ctx, post.ID, reader.ID)
	if err != nil || !saved.Active {
		t.Fatalf("ToggleSave() = %+v, %v", saved, err)
	}
	list, err := svc.ListSaved(ctx, reader.ID)
	if err != nil {
		t.Fatalf("ListSaved() error = %v", err)
	}
	if len(list.Data) != 1 || list.Data[0].ID != post.ID {
		t.Errorf("ListSaved() = %+v", list.Data)
	}

	if _, err := svc.ToggleLike(ctx, uuid.New(), reader.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ToggleLike() unknown post error = %v", err)
	}
	if _, err := svc.ToggleSave(ctx, post.ID, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ToggleSave() unknown user error = %v", err)
	}
}

func TestCommunityService_Comments(t *testing.T) {
	svc, repo, users := newTestCommunityService()
	author := users.add("casey", "UTC")
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &domain.CreatePostRequest{UserID: author.ID, Title: "t", Content: "c", Categories: []string{"stress"}})
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	comment, err := svc.AddComment(ctx, post.ID, &domain.CreateCommentRequest{UserID: author.ID, Content: "Thanks"})
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if comment.AuthorName != "casey" || comment.PostID != post.ID {
		t.Errorf("AddComment() = %+v", comment)
	}
	if repo.posts[post.ID].CommentCount != 1 {
		t.Errorf("CommentCount = %d, want 1", repo.posts[post.ID].CommentCount)
	}

	if _, err := svc.AddComment(ctx, post.ID, &domain.CreateCommentRequest{UserID: author.ID, Content: "  "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("AddComment() blank error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.AddComment(ctx, uuid.New(), &domain.CreateCommentRequest{UserID: author.ID, Content: "hi"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("AddComment() unknown post error = %v", err)
	}

	list, err := svc.ListComments(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListComments() error = %v", err)
	}
	if len(list.Data) != 1 {
		t.Errorf("ListComments() returned %d, want 1", len(list.Data))
	}
	if _, err := svc.ListComments(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ListComments() unknown post error = %v", err)
	}
}

func TestParsePostSort(t *testing.T) {
	cases := map[string]domain.PostSort{
		"":        domain.PostSortRecent,
		"recent":  domain.PostSortRecent,
		"popular": domain.PostSortPopular,
		"Popular": domain.PostSortPopular,
		"oldest":  domain.PostSortRecent,
	}
	for in, want := range cases {
		if got := ParsePostSort(in); got != want {
			t.Errorf("ParsePostSort(%q) = %q, want %q", in, got, want)
		}
	}
}

package handler

import (
	"context"
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// withURLParams attaches a chi route context carrying the given key/value
// pairs so handlers can be called without a router.
func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc        func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateProfileFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Name: req.Name, Email: req.Email, Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error) {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, id, req)
	}
	age := req.Age
	return &domain.User{ID: id, Age: &age, Gender: req.Gender, Timezone: "UTC", OnboardingCompleted: true}, nil
}

func (m *MockUserService) Context(ctx context.Context, id uuid.UUID) (*domain.UserContext, error) {
	return &domain.UserContext{}, nil
}

// MockMoodService is a mock implementation of MoodService
type MockMoodService struct {
	createFunc    func(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodRequest) (*domain.MoodEntry, error)
	getByIDFunc   func(ctx context.Context, userID, id uuid.UUID) (*domain.MoodEntry, error)
	updateFunc    func(ctx context.Context, userID, id uuid.UUID, req *domain.UpdateMoodRequest) (*domain.MoodEntry, error)
	deleteFunc    func(ctx context.Context, userID, id uuid.UUID) error
	listFunc      func(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.MoodListResponse, error)
	analyticsFunc func(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.MoodAnalyticsResponse, error)
}

func (m *MockMoodService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodRequest) (*domain.MoodEntry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.MoodEntry{ID: uuid.New(), UserID: userID, Mood: req.Mood, Activities: req.Activities}, nil
}

func (m *MockMoodService) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.MoodEntry, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, userID, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockMoodService) Update(ctx context.Context, userID, id uuid.UUID, req *domain.UpdateMoodRequest) (*domain.MoodEntry, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, id, req)
	}
	return &domain.MoodEntry{ID: id, UserID: userID, Mood: 3}, nil
}

func (m *MockMoodService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *MockMoodService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.MoodListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.MoodListResponse{Data: []domain.MoodEntryResponse{}}, nil
}

func (m *MockMoodService) Analytics(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.MoodAnalyticsResponse, error) {
	if m.analyticsFunc != nil {
		return m.analyticsFunc(ctx, userID, timeframe)
	}
	return &domain.MoodAnalyticsResponse{Timeframe: domain.TimeframeWeek}, nil
}

// MockSleepService is a mock implementation of SleepService
type MockSleepService struct {
	createFunc    func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRequest) (*domain.SleepEntry, error)
	analyticsFunc func(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.SleepAnalyticsResponse, error)
}

func (m *MockSleepService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRequest) (*domain.SleepEntry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	entry := &domain.SleepEntry{ID: uuid.New(), UserID: userID, SleepQuality: req.SleepQuality, WakeMood: req.WakeMood}
	if err := entry.SetTimes(req.BedTime, req.WakeTime); err != nil {
		return nil, err
	}
	return entry, nil
}

func (m *MockSleepService) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepEntry, error) {
	return nil, domain.ErrNotFound
}

func (m *MockSleepService) Update(ctx context.Context, userID, id uuid.UUID, req *domain.UpdateSleepRequest) (*domain.SleepEntry, error) {
	return nil, domain.ErrNotFound
}

func (m *MockSleepService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return domain.ErrNotFound
}

func (m *MockSleepService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.SleepListResponse, error) {
	return &domain.SleepListResponse{Data: []domain.SleepEntryResponse{}}, nil
}

func (m *MockSleepService) Analytics(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.SleepAnalyticsResponse, error) {
	if m.analyticsFunc != nil {
		return m.analyticsFunc(ctx, userID, timeframe)
	}
	return &domain.SleepAnalyticsResponse{Timeframe: domain.TimeframeWeek}, nil
}

// MockJournalService is a mock implementation of JournalService
type MockJournalService struct {
	createFunc    func(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalRequest) (*domain.JournalEntryResponse, error)
	listFunc      func(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) (*domain.JournalListResponse, error)
	togglePinFunc func(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntryResponse, error)
}

func (m *MockJournalService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalRequest) (*domain.JournalEntryResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.JournalEntryResponse{ID: uuid.New(), UserID: userID, Title: req.Title}, nil
}

func (m *MockJournalService) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntryResponse, error) {
	return nil, domain.ErrNotFound
}

func (m *MockJournalService) Update(ctx context.Context, userID, id uuid.UUID, req *domain.UpdateJournalRequest) (*domain.JournalEntryResponse, error) {
	return nil, domain.ErrNotFound
}

func (m *MockJournalService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return nil
}

func (m *MockJournalService) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) (*domain.JournalListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.JournalListResponse{Data: []domain.JournalEntryResponse{}}, nil
}

func (m *MockJournalService) TogglePin(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntryResponse, error) {
	if m.togglePinFunc != nil {
		return m.togglePinFunc(ctx, userID, id)
	}
	return nil, domain.ErrNotFound
}

// MockCommunityService is a mock implementation of CommunityService
type MockCommunityService struct {
	listPostsFunc  func(ctx context.Context, filter domain.PostFilter) (*domain.PostListResponse, error)
	deletePostFunc func(ctx context.Context, postID, userID uuid.UUID) error
	toggleLikeFunc func(ctx context.Context, postID, userID uuid.UUID) (*domain.ToggleResponse, error)
	addCommentFunc func(ctx context.Context, postID uuid.UUID, req *domain.CreateCommentRequest) (*domain.Comment, error)
}

func (m *MockCommunityService) CreatePost(ctx context.Context, req *domain.CreatePostRequest) (*domain.PostResponse, error) {
	return &domain.PostResponse{ID: uuid.New(), UserID: req.UserID, Title: req.Title}, nil
}

func (m *MockCommunityService) GetPost(ctx context.Context, id uuid.UUID) (*domain.PostResponse, error) {
	return nil, domain.ErrNotFound
}

func (m *MockCommunityService) ListPosts(ctx context.Context, filter domain.PostFilter) (*domain.PostListResponse, error) {
	if m.listPostsFunc != nil {
		return m.listPostsFunc(ctx, filter)
	}
	return &domain.PostListResponse{Data: []domain.PostResponse{}}, nil
}

func (m *MockCommunityService) DeletePost(ctx context.Context, postID, userID uuid.UUID) error {
	if m.deletePostFunc != nil {
		return m.deletePostFunc(ctx, postID, userID)
	}
	return nil
}

func (m *MockCommunityService) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*domain.ToggleResponse, error) {
	if m.toggleLikeFunc != nil {
		return m.toggleLikeFunc(ctx, postID, userID)
	}
	return &domain.ToggleResponse{PostID: postID, Active: true, Likes: 1}, nil
}

func (m *MockCommunityService) ToggleSave(ctx context.Context, postID, userID uuid.UUID) (*domain.ToggleResponse, error) {
	return &domain.ToggleResponse{PostID: postID, Active: true}, nil
}

func (m *MockCommunityService) AddComment(ctx context.Context, postID uuid.UUID, req *domain.CreateCommentRequest) (*domain.Comment, error) {
	if m.addCommentFunc != nil {
		return m.addCommentFunc(ctx, postID, req)
	}
	return &domain.Comment{ID: uuid.New(), PostID: postID, UserID: req.UserID, Content: req.Content}, nil
}

func (m *MockCommunityService) ListComments(ctx context.Context, postID uuid.UUID) (*domain.CommentListResponse, error) {
	return &domain.CommentListResponse{Data: []domain.Comment{}}, nil
}

func (m *MockCommunityService) ListSaved(ctx context.Context, userID uuid.UUID) (*domain.PostListResponse, error) {
	return &domain.PostListResponse{Data: []domain.PostResponse{}}, nil
}

// MockTherapistService is a mock implementation of TherapistService
type MockTherapistService struct {
	chatFunc func(ctx context.Context, userID uuid.UUID, req *domain.ChatRequest) (*domain.ChatResponse, error)
}

func (m *MockTherapistService) Chat(ctx context.Context, userID uuid.UUID, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	if m.chatFunc != nil {
		return m.chatFunc(ctx, userID, req)
	}
	return &domain.ChatResponse{Response: "echo: " + req.Message}, nil
}

func (m *MockTherapistService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.TherapistFeedbackRequest) (*domain.TherapistFeedbackResponse, error) {
	return &domain.TherapistFeedbackResponse{Message: "Feedback submitted successfully", Status: "ok"}, nil
}

// MockMemeService is a mock implementation of MemeService
type MockMemeService struct {
	meme *domain.Meme
	err  error
}

func (m *MockMemeService) Random(ctx context.Context) (*domain.Meme, error) {
	return m.meme, m.err
}

// MockNarrativeService is a mock implementation of NarrativeService
type MockNarrativeService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.NarrativeResponse, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error
}

func (m *MockNarrativeService) Generate(ctx context.Context, userID uuid.UUID, timeframe string) (*domain.NarrativeResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, timeframe)
	}
	return &domain.NarrativeResponse{Timeframe: domain.TimeframeWeek}, nil
}

func (m *MockNarrativeService) SubmitFeedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/langfuse"
	"github.com/blaisecz/wellbeing-tracker/internal/psychologist"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.ErrConflict
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) add(name, timezone string) *domain.User {
	u := &domain.User{ID: uuid.New(), Name: name, Email: name + "@example.com", Timezone: timezone, Goals: []string{}}
	m.users[u.ID] = u
	return u
}

// MockMoodRepository keeps entries in a map; version changes on every write.
type MockMoodRepository struct {
	entries    map[uuid.UUID]*domain.MoodEntry
	writes     int
	listSinces int
	err        error
}

func NewMockMoodRepository() *MockMoodRepository {
	return &MockMoodRepository{entries: make(map[uuid.UUID]*domain.MoodEntry)}
}

func (m *MockMoodRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	m.entries[entry.ID] = entry
	m.writes++
	return nil
}

func (m *MockMoodRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *MockMoodRepository) Update(ctx context.Context, entry *domain.MoodEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries[entry.ID] = entry
	m.writes++
	return nil
}

func (m *MockMoodRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return domain.ErrNotFound
	}
	delete(m.entries, id)
	m.writes++
	return nil
}

func (m *MockMoodRepository) sorted(userID uuid.UUID) []domain.MoodEntry {
	var out []domain.MoodEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

// List ignores the cursor and returns up to limit+1 entries.
func (m *MockMoodRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := m.sorted(userID)
	if n := filter.Limit + 1; filter.Limit > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (m *MockMoodRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.listSinces++
	var out []domain.MoodEntry
	for _, e := range m.sorted(userID) {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockMoodRepository) Version(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return strconv.Itoa(m.writes), nil
}

// MockSleepRepository mirrors MockMoodRepository for sleep entries.
type MockSleepRepository struct {
	entries map[uuid.UUID]*domain.SleepEntry
	writes  int
	err     error
}

func NewMockSleepRepository() *MockSleepRepository {
	return &MockSleepRepository{entries: make(map[uuid.UUID]*domain.SleepEntry)}
}

func (m *MockSleepRepository) Create(ctx context.Context, entry *domain.SleepEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	m.entries[entry.ID] = entry
	m.writes++
	return nil
}

func (m *MockSleepRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *MockSleepRepository) Update(ctx context.Context, entry *domain.SleepEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries[entry.ID] = entry
	m.writes++
	return nil
}

func (m *MockSleepRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return domain.ErrNotFound
	}
	delete(m.entries, id)
	m.writes++
	return nil
}

func (m *MockSleepRepository) sorted(userID uuid.UUID) []domain.SleepEntry {
	var out []domain.SleepEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SleepDate.After(out[j].SleepDate) })
	return out
}

func (m *MockSleepRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.SleepEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := m.sorted(userID)
	if n := filter.Limit + 1; filter.Limit > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (m *MockSleepRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.SleepEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.SleepEntry
	for _, e := range m.sorted(userID) {
		if !e.SleepDate.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockSleepRepository) Version(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return strconv.Itoa(m.writes), nil
}

// MockJournalRepository is a mock implementation of JournalRepository
type MockJournalRepository struct {
	entries map[uuid.UUID]*domain.JournalEntry
	err     error
}

func NewMockJournalRepository() *MockJournalRepository {
	return &MockJournalRepository{entries: make(map[uuid.UUID]*domain.JournalEntry)}
}

func (m *MockJournalRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockJournalRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *MockJournalRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockJournalRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return domain.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockJournalRepository) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]domain.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.JournalEntry
	for _, e := range m.entries {
		if e.UserID == userID && (filter.Tag == "" || e.HasTag(filter.Tag)) {
			out = append(out, *e)
		}
	}
	return out, nil
}

// MockCommunityRepository is a mock implementation of CommunityRepository
type MockCommunityRepository struct {
	posts    map[uuid.UUID]*domain.Post
	comments []domain.Comment
	err      error
}

func NewMockCommunityRepository() *MockCommunityRepository {
	return &MockCommunityRepository{posts: make(map[uuid.UUID]*domain.Post)}
}

func (m *MockCommunityRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	if m.err != nil {
		return m.err
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	m.posts[post.ID] = post
	return nil
}

func (m *MockCommunityRepository) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *MockCommunityRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *MockCommunityRepository) ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Post
	for _, p := range m.posts {
		if filter.Category == "" || p.HasCategory(filter.Category) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *MockCommunityRepository) ListSaved(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Post
	for _, p := range m.posts {
		if p.IsSavedBy(userID) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *MockCommunityRepository) UpdatePost(ctx context.Context, id uuid.UUID, fn func(post *domain.Post) error) (*domain.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *MockCommunityRepository) AddComment(ctx context.Context, comment *domain.Comment) error {
	if m.err != nil {
		return m.err
	}
	p, ok := m.posts[comment.PostID]
	if !ok {
		return domain.ErrNotFound
	}
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	p.CommentCount++
	m.comments = append(m.comments, *comment)
	return nil
}

func (m *MockCommunityRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

// MockPsychologistClient records the last chat input.
type MockPsychologistClient struct {
	lastChat  psychologist.ChatInput
	chatResp  *domain.ChatResponse
	status    string
	err       error
	chatCalls int
}

func (m *MockPsychologistClient) Chat(ctx context.Context, in psychologist.ChatInput) (*domain.ChatResponse, error) {
	m.chatCalls++
	m.lastChat = in
	if m.err != nil {
		return nil, m.err
	}
	return m.chatResp, nil
}

func (m *MockPsychologistClient) Feedback(ctx context.Context, userID, feedback string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.status, nil
}

// MockMemeClient returns the queued memes in order.
type MockMemeClient struct {
	memes []*domain.Meme
	calls int
	err   error
}

func (m *MockMemeClient) Gimme(ctx context.Context) (*domain.Meme, error) {
	if m.err != nil {
		return nil, m.err
	}
	meme := m.memes[m.calls%len(m.memes)]
	m.calls++
	return meme, nil
}

// MockNarrativeLLM is a mock implementation of llm.NarrativeLLM
type MockNarrativeLLM struct {
	output  *domain.NarrativeOutput
	err     error
	lastCtx *domain.NarrativeContext
}

func (m *MockNarrativeLLM) GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.NarrativeOutput, error) {
	m.lastCtx = narrativeCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// MockLangfuseClient records traces and scores synchronously.
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if !m.enabled {
		return "", nil
	}
	m.traces = append(m.traces, in)
	return "trace-" + in.Name, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if !m.enabled {
		return nil
	}
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Flush() {}

// stubRenderer wraps markdown in a paragraph without parsing it.
type stubRenderer struct{}

func (stubRenderer) Markdown(src string) (string, error) { return "<p>" + src + "</p>", nil }

func (stubRenderer) Plain(s string) string { return strings.TrimSpace(s) }

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}

var fixedNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

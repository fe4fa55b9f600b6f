package handlers_test

import (
	"NoteKeeper/internal/auth"
	"NoteKeeper/internal/config"
	"NoteKeeper/internal/handlers"
	"NoteKeeper/internal/model"
	"NoteKeeper/internal/repo"
	"NoteKeeper/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, updates)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockNoteRepo struct{ mock.Mock }

func (m *mockNoteRepo) Create(ctx context.Context, note *model.Note) error {
	return m.Called(ctx, note).Error(0)
}
func (m *mockNoteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*model.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNoteRepo) ListByUser(ctx context.Context, userID int64) ([]model.Note, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNoteRepo) ListByUserAndCategory(ctx context.Context, userID int64, categoryID string) ([]model.Note, error) {
	args := m.Called(ctx, userID, categoryID)
	if v, ok := args.Get(0).([]model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNoteRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}
func (m *mockNoteRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.NoteRepository = (*mockNoteRepo)(nil)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockCategoryRepo) ListByUser(ctx context.Context, userID int64) ([]model.Category, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) ExistsForUser(ctx context.Context, userID int64, name string) (bool, error) {
	args := m.Called(ctx, userID, name)
	return args.Bool(0), args.Error(1)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)

// --- Helpers ---

type testMocks struct {
	users      *mockUserRepo
	notes      *mockNoteRepo
	categories *mockCategoryRepo
}

func newTestRouter(t *testing.T) (http.Handler, *config.Config, *testMocks) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", TokenTTLMinutes: 60}
	logger := zap.NewNop().Sugar()

	m := &testMocks{users: &mockUserRepo{}, notes: &mockNoteRepo{}, categories: &mockCategoryRepo{}}

	userSvc := service.NewUserService(m.users, cfg.AuthSecret, cfg.TokenTTL())
	noteSvc := service.NewNoteService(m.notes, m.categories)
	catSvc := service.NewCategoryService(m.categories)

	h := handlers.NewHandler(userSvc, noteSvc, catSvc, logger, cfg)
	return h.Router, cfg, m
}

func addAuth(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	token, _, err := auth.Encode(auth.Session{UserID: userID, Username: "u", Email: "u@example.com"}, secret, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue test token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func doRequest(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

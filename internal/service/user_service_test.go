package service

import (
	"NoteKeeper/internal/apperr"
	"NoteKeeper/internal/auth"
	"NoteKeeper/internal/model"
	"NoteKeeper/internal/repo"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// мок для repo.UserRepository
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

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, "test-secret", time.Hour)

	t.Run("ok when email free", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByEmail", mock.Anything, "john@example.com").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		created := &model.User{ID: 10, Username: "john", Email: "john@example.com"}
		m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// пароль должен уходить в репозиторий уже захешированным
			return u.Email == "john@example.com" && u.Password != "" && u.Password != "p@ss"
		})).Return(created, nil).Once()

		user, err := svc.Register(ctx, "john", "john@example.com", "p@ss")
		assert.NoError(t, err)
		assert.Equal(t, int64(10), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("bad request when email taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByEmail", mock.Anything, "john@example.com").Return(&model.User{ID: 1, Email: "john@example.com"}, nil).Once()

		user, err := svc.Register(ctx, "john", "john@example.com", "p@ss")
		assert.Nil(t, user)
		assert.True(t, apperr.IsBadRequest(err))
		m.AssertExpectations(t)
	})

	t.Run("bad request on missing fields", func(t *testing.T) {
		m.ExpectedCalls = nil
		user, err := svc.Register(ctx, "", "a@b.c", "p")
		assert.Nil(t, user)
		assert.True(t, apperr.IsBadRequest(err))
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, "test-secret", time.Hour)

	// готовим хеш для пароля "secret"
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	stored := &model.User{ID: 2, Username: "alice", Email: "alice@example.com", Password: string(hash)}

	t.Run("ok with valid credentials", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil).Once()

		res, err := svc.Login(ctx, "alice@example.com", "secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, res.Token)

		// токен декодируется обратно в сессию с данными пользователя
		sess, err := auth.Decode(res.Token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), sess.UserID)
		assert.Equal(t, "alice", sess.Username)
		assert.Equal(t, "alice@example.com", sess.Email)
		m.AssertExpectations(t)
	})

	t.Run("not found for unknown email", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByEmail", mock.Anything, "nobody@example.com").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		res, err := svc.Login(ctx, "nobody@example.com", "secret")
		assert.Nil(t, res)
		assert.True(t, apperr.IsNotFound(err))
		m.AssertExpectations(t)
	})

	t.Run("unauthorized on invalid password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil).Once()

		res, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.Nil(t, res)
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
		m.AssertExpectations(t)
	})
}

func TestUserService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, "test-secret", time.Hour)

	t.Run("only provided fields go to repo", func(t *testing.T) {
		m.ExpectedCalls = nil
		name := "neo"
		m.On("Update", mock.Anything, int64(7), map[string]any{"username": "neo"}).
			Return(&model.User{ID: 7, Username: "neo"}, nil).Once()

		user, err := svc.Update(ctx, 7, UserUpdate{Username: &name})
		assert.NoError(t, err)
		assert.Equal(t, "neo", user.Username)
		m.AssertExpectations(t)
	})

	t.Run("empty update degrades to get", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(7)).Return(&model.User{ID: 7}, nil).Once()

		user, err := svc.Update(ctx, 7, UserUpdate{})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		m.ExpectedCalls = nil
		name := "x"
		m.On("Update", mock.Anything, int64(404), mock.Anything).Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		user, err := svc.Update(ctx, 404, UserUpdate{Username: &name})
		assert.Nil(t, user)
		assert.True(t, apperr.IsNotFound(err))
		m.AssertExpectations(t)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, "test-secret", time.Hour)

	m.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
	assert.NoError(t, svc.Delete(ctx, 1))

	m.On("Delete", mock.Anything, int64(2)).Return(gorm.ErrRecordNotFound).Once()
	assert.True(t, apperr.IsNotFound(svc.Delete(ctx, 2)))
	m.AssertExpectations(t)
}

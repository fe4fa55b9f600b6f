package service

import (
	"NoteKeeper/internal/apperr"
	"NoteKeeper/internal/auth"
	"NoteKeeper/internal/model"
	"NoteKeeper/internal/repo"
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService инкапсулирует регистрацию, вход и CRUD пользователей.
type UserService struct {
	repo       repo.UserRepository
	authSecret string
	tokenTTL   time.Duration
}

func NewUserService(r repo.UserRepository, authSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{repo: r, authSecret: authSecret, tokenTTL: tokenTTL}
}

// LoginResult — выпущенный токен и время его истечения.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// UserUpdate — частичное обновление: nil-поля не трогаем.
type UserUpdate struct {
	Username *string
	Email    *string
}

// Register создаёт пользователя. Дубликат email — BadRequest.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperr.BadRequest("Username, email and password are required")
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperr.BadRequest("User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &model.User{Username: username, Email: email, Password: string(hash)})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest("User already exists")
		}
		return nil, err
	}
	return user, nil
}

// Login находит пользователя по email, сверяет пароль и выпускает подписанный токен.
// Сессия не персистится: всё её содержимое живёт в токене.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	session := auth.Session{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		IssuedAt: time.Now().UTC(),
	}
	token, expiresAt, err := auth.Encode(session, s.authSecret, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User with ID %d not found", id)
		}
		return nil, err
	}
	return user, nil
}

// Update меняет только переданные поля. Изменения не попадут в уже выпущенные
// токены — сессия остаётся прежней до истечения срока.
func (s *UserService) Update(ctx context.Context, id int64, upd UserUpdate) (*model.User, error) {
	updates := map[string]any{}
	if upd.Username != nil {
		updates["username"] = *upd.Username
	}
	if upd.Email != nil {
		updates["email"] = *upd.Email
	}
	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	user, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User with ID %d not found", id)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest("User already exists")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User with ID %d not found", id)
		}
		return err
	}
	return nil
}

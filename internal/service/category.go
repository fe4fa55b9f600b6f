package service

import (
	"NoteKeeper/internal/apperr"
	"NoteKeeper/internal/model"
	"NoteKeeper/internal/repo"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService инкапсулирует бизнес-логику категорий.
type CategoryService struct {
	repo repo.CategoryRepository
}

func NewCategoryService(r repo.CategoryRepository) *CategoryService {
	return &CategoryService{repo: r}
}

// Create создаёт категорию владельца userID. Имя обязательно и уникально
// в пределах пользователя; гонку закрывает составной индекс (user_id, name).
func (s *CategoryService) Create(ctx context.Context, userID int64, name, description, color string) (*model.Category, error) {
	if name == "" {
		return nil, apperr.BadRequest("Category name is required")
	}
	if len(name) > 50 {
		return nil, apperr.BadRequest("Category name cannot be more than 50 characters")
	}
	if len(description) > 200 {
		return nil, apperr.BadRequest("Description cannot be more than 200 characters")
	}
	if color == "" {
		color = model.DefaultCategoryColor
	}

	taken, err := s.repo.ExistsForUser(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.BadRequest("This category name already exists")
	}

	category, err := s.repo.Create(ctx, &model.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Color:       color,
		UserID:      userID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest("This category name already exists")
		}
		return nil, err
	}
	return category, nil
}

// List возвращает категории пользователя.
func (s *CategoryService) List(ctx context.Context, userID int64) ([]model.Category, error) {
	return s.repo.ListByUser(ctx, userID)
}

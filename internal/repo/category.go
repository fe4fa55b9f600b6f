package repo

import (
	"NoteKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// CategoryRepository определяет контракт доступа к Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	// Exists сообщает, есть ли категория с таким id, без загрузки записи.
	Exists(ctx context.Context, id string) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Category, error)
	// ExistsForUser проверяет занятость имени в пределах пользователя.
	ExistsForUser(ctx context.Context, userID int64, name string) (bool, error)
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository создаёт реализацию репозитория для Category.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepo) ListByUser(ctx context.Context, userID int64) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) ExistsForUser(ctx context.Context, userID int64, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

package repo

import (
	"NoteKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// NoteRepository определяет контракт доступа к Note.
// Чтения подгружают связанную категорию, чтобы она попала в ответ API.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	GetByID(ctx context.Context, id string) (*model.Note, error)
	// ListByUser возвращает заметки пользователя, свежеобновлённые первыми.
	ListByUser(ctx context.Context, userID int64) ([]model.Note, error)
	ListByUserAndCategory(ctx context.Context, userID int64, categoryID string) ([]model.Note, error)
	// Update применяет только перечисленные колонки.
	Update(ctx context.Context, id string, updates map[string]any) error
	Delete(ctx context.Context, id string) error
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepository создаёт реализацию репозитория для Note.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	var n model.Note
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepo) ListByUser(ctx context.Context, userID int64) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.WithContext(ctx).Preload("Category").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) ListByUserAndCategory(ctx context.Context, userID int64, categoryID string) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.WithContext(ctx).Preload("Category").
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Order("updated_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.Note{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *noteRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Note{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

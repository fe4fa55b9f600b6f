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

// NoteService инкапсулирует бизнес-логику заметок: проверки владения
// и существования выполняются до любых записей в хранилище.
type NoteService struct {
	notes      repo.NoteRepository
	categories repo.CategoryRepository
}

func NewNoteService(notes repo.NoteRepository, categories repo.CategoryRepository) *NoteService {
	return &NoteService{notes: notes, categories: categories}
}

// NoteUpdate — частичное обновление: nil-поля не трогаем.
// Пустой CategoryID снимает категорию с заметки.
type NoteUpdate struct {
	Title      *string
	Content    *string
	CategoryID *string
}

// Create сохраняет заметку. Ссылка на категорию, если передана, должна
// указывать на существующую категорию — иначе BadRequest и ничего не пишем.
func (s *NoteService) Create(ctx context.Context, userID int64, title, content string, categoryID *string) (*model.Note, error) {
	if title == "" {
		return nil, apperr.BadRequest("Title is required")
	}
	if len(title) > 100 {
		return nil, apperr.BadRequest("Title cannot be more than 100 characters")
	}
	if content == "" {
		return nil, apperr.BadRequest("Content is required")
	}

	if categoryID != nil && *categoryID != "" {
		ok, err := s.categories.Exists(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.BadRequest("Category with ID %s not found", *categoryID)
		}
	} else {
		categoryID = nil
	}

	note := &model.Note{
		ID:         uuid.NewString(),
		Title:      title,
		Content:    content,
		CategoryID: categoryID,
		UserID:     userID,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	// перечитываем с подгруженной категорией для ответа
	return s.getOwned(ctx, userID, note.ID)
}

// Get возвращает заметку по id. Неизвестный id — NotFound, чужая заметка — Forbidden:
// проверки последовательные и различимые.
func (s *NoteService) Get(ctx context.Context, userID int64, id string) (*model.Note, error) {
	return s.getOwned(ctx, userID, id)
}

// List возвращает заметки пользователя, свежеобновлённые первыми.
func (s *NoteService) List(ctx context.Context, userID int64) ([]model.Note, error) {
	return s.notes.ListByUser(ctx, userID)
}

// ListByCategory возвращает категорию и заметки пользователя в ней.
// Несуществующая категория — NotFound.
func (s *NoteService) ListByCategory(ctx context.Context, userID int64, categoryID string) (*model.Category, []model.Note, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("Category with ID %s not found", categoryID)
		}
		return nil, nil, err
	}
	notes, err := s.notes.ListByUserAndCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, nil, err
	}
	return category, notes, nil
}

// Update применяет только переданные поля после проверок существования и владения.
func (s *NoteService) Update(ctx context.Context, userID int64, id string, upd NoteUpdate) (*model.Note, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, apperr.BadRequest("Title is required")
		}
		if len(*upd.Title) > 100 {
			return nil, apperr.BadRequest("Title cannot be more than 100 characters")
		}
		updates["title"] = *upd.Title
	}
	if upd.Content != nil {
		if *upd.Content == "" {
			return nil, apperr.BadRequest("Content is required")
		}
		updates["content"] = *upd.Content
	}
	if upd.CategoryID != nil {
		if *upd.CategoryID == "" {
			updates["category_id"] = nil
		} else {
			ok, err := s.categories.Exists(ctx, *upd.CategoryID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, apperr.BadRequest("Category with ID %s not found", *upd.CategoryID)
			}
			updates["category_id"] = *upd.CategoryID
		}
	}

	if len(updates) > 0 {
		if err := s.notes.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.getOwned(ctx, userID, id)
}

// Delete удаляет заметку строго после проверок: сначала существование,
// затем владение, и только потом деструктивная операция.
func (s *NoteService) Delete(ctx context.Context, userID int64, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.notes.Delete(ctx, id)
}

func (s *NoteService) getOwned(ctx context.Context, userID int64, id string) (*model.Note, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Note with ID %s not found", id)
		}
		return nil, err
	}
	if note.UserID != userID {
		return nil, apperr.Forbidden("you are not authorised to view this resource")
	}
	return note, nil
}

package service

import (
	"NoteKeeper/internal/apperr"
	"NoteKeeper/internal/model"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("ok with defaults", func(t *testing.T) {
		cr := new(mockCategoryRepo)
		svc := NewCategoryService(cr)
		cr.On("ExistsForUser", mock.Anything, int64(1), "Work").Return(false, nil).Once()
		cr.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
			// без цвета от клиента подставляется дефолтный, id генерируется
			return c.Name == "Work" && c.Color == model.DefaultCategoryColor && c.UserID == int64(1) && c.ID != ""
		})).Return(&model.Category{ID: "c1", Name: "Work", Color: model.DefaultCategoryColor, UserID: 1}, nil).Once()

		cat, err := svc.Create(ctx, 1, "Work", "", "")
		assert.NoError(t, err)
		assert.Equal(t, "Work", cat.Name)
		cr.AssertExpectations(t)
	})

	t.Run("duplicate name same user — bad request", func(t *testing.T) {
		cr := new(mockCategoryRepo)
		svc := NewCategoryService(cr)
		cr.On("ExistsForUser", mock.Anything, int64(1), "Work").Return(true, nil).Once()

		cat, err := svc.Create(ctx, 1, "Work", "", "")
		assert.Nil(t, cat)
		assert.True(t, apperr.IsBadRequest(err))
		cr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("same name different user — ok", func(t *testing.T) {
		cr := new(mockCategoryRepo)
		svc := NewCategoryService(cr)
		cr.On("ExistsForUser", mock.Anything, int64(2), "Work").Return(false, nil).Once()
		cr.On("Create", mock.Anything, mock.Anything).Return(&model.Category{ID: "c2", Name: "Work", UserID: 2}, nil).Once()

		cat, err := svc.Create(ctx, 2, "Work", "", "")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), cat.UserID)
	})

	t.Run("name required", func(t *testing.T) {
		cr := new(mockCategoryRepo)
		svc := NewCategoryService(cr)

		cat, err := svc.Create(ctx, 1, "", "", "")
		assert.Nil(t, cat)
		assert.True(t, apperr.IsBadRequest(err))
	})

	t.Run("name too long", func(t *testing.T) {
		cr := new(mockCategoryRepo)
		svc := NewCategoryService(cr)

		cat, err := svc.Create(ctx, 1, strings.Repeat("x", 51), "", "")
		assert.Nil(t, cat)
		assert.True(t, apperr.IsBadRequest(err))
	})
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()
	cr := new(mockCategoryRepo)
	svc := NewCategoryService(cr)

	cr.On("ListByUser", mock.Anything, int64(1)).Return([]model.Category{{ID: "c1"}, {ID: "c2"}}, nil).Once()

	list, err := svc.List(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	cr.AssertExpectations(t)
}

package service

import (
	"context"
	"testing"

	"PassVault/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestNoteService_Update(t *testing.T) {
	cipher := newTestCipher(t)
	repos := new(MockSecretRepo[*model.Note])
	svc := NewNoteService(repos, cipher)
	ctx := context.Background()

	current := func() *model.Note {
		return &model.Note{ID: 1, UserID: 7, Title: "groceries", Text: "milk"}
	}

	t.Run("text only", func(t *testing.T) {
		repos.ExpectedCalls = nil
		repos.Calls = nil
		repos.On("GetByID", mock.Anything, int64(1)).Return(current(), nil)
		repos.On("Update", mock.Anything, int64(1), map[string]any{"text": "milk, eggs"}).Return(nil)

		note, err := svc.Update(ctx, 1, NotePatch{Text: strPtr("milk, eggs")}, 7)
		assert.NoError(t, err)
		assert.NotNil(t, note)
		// заголовок не менялся — проверка уникальности не нужна
		repos.AssertNotCalled(t, "FindByKey", mock.Anything, mock.Anything)
	})

	t.Run("rename to free title", func(t *testing.T) {
		repos.ExpectedCalls = nil
		repos.On("GetByID", mock.Anything, int64(1)).Return(current(), nil)
		repos.On("FindByKey", mock.Anything, map[string]any{"user_id": int64(7), "title": "shopping"}).
			Return(nil, gorm.ErrRecordNotFound)
		repos.On("Update", mock.Anything, int64(1), map[string]any{"title": "shopping"}).Return(nil)

		_, err := svc.Update(ctx, 1, NotePatch{Title: strPtr("shopping")}, 7)
		assert.NoError(t, err)
		repos.AssertExpectations(t)
	})

	t.Run("rename to taken title", func(t *testing.T) {
		repos.ExpectedCalls = nil
		repos.Calls = nil
		repos.On("GetByID", mock.Anything, int64(1)).Return(current(), nil)
		repos.On("FindByKey", mock.Anything, map[string]any{"user_id": int64(7), "title": "todo"}).
			Return(&model.Note{ID: 2, UserID: 7, Title: "todo"}, nil)

		_, err := svc.Update(ctx, 1, NotePatch{Title: strPtr("todo")}, 7)
		assert.ErrorIs(t, err, ErrTitleTaken)
		repos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("same title skips probe", func(t *testing.T) {
		repos.ExpectedCalls = nil
		repos.Calls = nil
		repos.On("GetByID", mock.Anything, int64(1)).Return(current(), nil)

		note, err := svc.Update(ctx, 1, NotePatch{Title: strPtr("groceries")}, 7)
		assert.NoError(t, err)
		assert.Equal(t, "groceries", note.Title)
		repos.AssertNotCalled(t, "FindByKey", mock.Anything, mock.Anything)
		repos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("foreign note", func(t *testing.T) {
		repos.ExpectedCalls = nil
		foreign := current()
		foreign.UserID = 8
		repos.On("GetByID", mock.Anything, int64(1)).Return(foreign, nil)

		_, err := svc.Update(ctx, 1, NotePatch{Text: strPtr("x")}, 7)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing note", func(t *testing.T) {
		repos.ExpectedCalls = nil
		repos.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, 99, NotePatch{Text: strPtr("x")}, 7)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

package service

import (
	"PassVault/internal/model"
	"PassVault/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// NotePatch — частичное обновление заметки. nil-поле остаётся без изменений.
type NotePatch struct {
	Title *string
	Text  *string
}

// NoteService добавляет к общему протоколу операцию Update —
// единственный вид записей, который можно править после создания.
type NoteService struct {
	*VaultService[*model.Note]
	repo repo.SecretRepository[*model.Note]
}

// NewNoteService создаёт сервис заметок.
func NewNoteService(r repo.SecretRepository[*model.Note], cipher model.Cipher) *NoteService {
	return &NoteService{
		VaultService: NewVaultService(r, cipher, ErrTitleTaken),
		repo:         r,
	}
}

// Update меняет заголовок и/или текст заметки. Проверка владения — как у
// FindOne. Уникальность перепроверяется только если заголовок задан и
// отличается от текущего.
func (s *NoteService) Update(ctx context.Context, id int64, patch NotePatch, ownerID int64) (*model.Note, error) {
	note, err := s.FindOne(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Title != nil && *patch.Title != note.Title {
		probe := &model.Note{UserID: ownerID, Title: *patch.Title}
		if _, err := s.repo.FindByKey(ctx, probe.ConflictKey()); err == nil {
			return nil, ErrTitleTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["title"] = *patch.Title
	}
	if patch.Text != nil {
		updates["text"] = *patch.Text
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if errors.Is(err, repo.ErrDuplicateKey) {
				return nil, ErrTitleTaken
			}
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

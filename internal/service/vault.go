package service

import (
	"PassVault/internal/model"
	"PassVault/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// VaultService — общий протокол работы с защищёнными записями:
// проверка уникальности до вставки, шифрование чувствительных полей
// и контроль владения. Одна реализация обслуживает все пять видов,
// различие между ними целиком в модели P.
type VaultService[P model.Secret] struct {
	repo   repo.SecretRepository[P]
	cipher model.Cipher
	dupErr error // ошибка конфликта уникальности для данного вида
}

// NewVaultService создаёт сервис для вида записей P.
// dupErr — ошибка, которой вид сообщает о дубликате (ErrTitleTaken
// или ErrLicenseTaken).
func NewVaultService[P model.Secret](r repo.SecretRepository[P], cipher model.Cipher, dupErr error) *VaultService[P] {
	return &VaultService[P]{repo: r, cipher: cipher, dupErr: dupErr}
}

// Create сохраняет новую запись владельца ownerID.
// Сначала проверка ключа уникальности (дубликат — без вставки), затем
// шифрование чувствительных полей и вставка. Уникальный индекс БД
// страхует гонку двух одновременных Create и даёт ту же ошибку.
// Возвращается запись с расшифрованными полями.
func (s *VaultService[P]) Create(ctx context.Context, rec P, ownerID int64) (P, error) {
	var zero P

	rec.SetOwnerID(ownerID)
	if _, err := s.repo.FindByKey(ctx, rec.ConflictKey()); err == nil {
		return zero, s.dupErr
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return zero, err
	}

	if err := rec.Seal(s.cipher); err != nil {
		return zero, err
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			return zero, s.dupErr
		}
		return zero, err
	}
	if err := rec.Open(s.cipher); err != nil {
		return zero, err
	}
	return rec, nil
}

// FindAll возвращает все записи владельца с расшифрованными полями.
func (s *VaultService[P]) FindAll(ctx context.Context, ownerID int64) ([]P, error) {
	recs, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if err := rec.Open(s.cipher); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

// FindOne возвращает запись по id. Порядок проверок фиксирован:
// сначала существование (ErrNotFound), потом владение (ErrForbidden).
func (s *VaultService[P]) FindOne(ctx context.Context, id, ownerID int64) (P, error) {
	var zero P

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	if rec.GetOwnerID() != ownerID {
		return zero, ErrForbidden
	}
	if err := rec.Open(s.cipher); err != nil {
		return zero, err
	}
	return rec, nil
}

// Remove удаляет запись по id после той же проверки, что и FindOne.
func (s *VaultService[P]) Remove(ctx context.Context, id, ownerID int64) error {
	if _, err := s.FindOne(ctx, id, ownerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

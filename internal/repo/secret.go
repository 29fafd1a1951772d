package repo

import (
	"PassVault/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateKey возвращается, когда вставка или обновление упирается
// в уникальный индекс записи.
var ErrDuplicateKey = errors.New("duplicate key")

// SecretRepository — общий контракт хранения для всех пяти видов записей.
// P — указатель на конкретную модель (*model.Credential и т.д.).
type SecretRepository[P model.Secret] interface {
	Create(ctx context.Context, rec P) error
	GetByID(ctx context.Context, id int64) (P, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]P, error)

	// FindByKey ищет запись по ключу уникальности (см. Secret.ConflictKey).
	FindByKey(ctx context.Context, key map[string]any) (P, error)

	Update(ctx context.Context, id int64, updates map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type secretRepo[T any, P interface {
	*T
	model.Secret
}] struct {
	db *gorm.DB
}

// NewSecretRepository создаёт gorm-реализацию для модели T.
// Одна реализация обслуживает все виды записей.
func NewSecretRepository[T any, P interface {
	*T
	model.Secret
}](db *gorm.DB) SecretRepository[P] {
	return &secretRepo[T, P]{db: db}
}

func (r *secretRepo[T, P]) Create(ctx context.Context, rec P) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *secretRepo[T, P]) GetByID(ctx context.Context, id int64) (P, error) {
	var rec T
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		var zero P
		return zero, err
	}
	return P(&rec), nil
}

func (r *secretRepo[T, P]) ListByOwner(ctx context.Context, ownerID int64) ([]P, error) {
	var recs []T
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]P, 0, len(recs))
	for i := range recs {
		out = append(out, P(&recs[i]))
	}
	return out, nil
}

func (r *secretRepo[T, P]) FindByKey(ctx context.Context, key map[string]any) (P, error) {
	var rec T
	if err := r.db.WithContext(ctx).Where(key).First(&rec).Error; err != nil {
		var zero P
		return zero, err
	}
	return P(&rec), nil
}

func (r *secretRepo[T, P]) Update(ctx context.Context, id int64, updates map[string]any) error {
	var rec T
	err := r.db.WithContext(ctx).Model(&rec).Where("id = ?", id).Updates(updates).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *secretRepo[T, P]) Delete(ctx context.Context, id int64) error {
	var rec T
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&rec).Error
}

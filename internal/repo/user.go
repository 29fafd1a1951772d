package repo

import (
	"PassVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// SecretCounts — количество записей пользователя по каждому виду.
type SecretCounts struct {
	Credentials int64 `json:"credentials"`
	Cards       int64 `json:"cards"`
	Wifis       int64 `json:"wifis"`
	Licenses    int64 `json:"licenses"`
	Notes       int64 `json:"notes"`
}

// UserRepository определяет контракт доступа к учётным записям.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)

	// DeleteUser удаляет пользователя и все его записи всех видов
	// в одной транзакции.
	DeleteUser(ctx context.Context, id int64) error

	// CountSecrets возвращает количество записей пользователя по видам.
	CountSecrets(ctx context.Context, id int64) (*SecretCounts, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория пользователей.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser каскадно удаляет пользователя: сперва записи каждого вида,
// затем сама учётная запись. Либо всё, либо ничего.
func (r *userRepo) DeleteUser(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []any{
			&model.Credential{},
			&model.Card{},
			&model.Wifi{},
			&model.License{},
			&model.Note{},
		}
		for _, m := range owned {
			if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.User{}, id).Error
	})
}

func (r *userRepo) CountSecrets(ctx context.Context, id int64) (*SecretCounts, error) {
	counts := &SecretCounts{}
	for _, c := range []struct {
		m   any
		dst *int64
	}{
		{&model.Credential{}, &counts.Credentials},
		{&model.Card{}, &counts.Cards},
		{&model.Wifi{}, &counts.Wifis},
		{&model.License{}, &counts.Licenses},
		{&model.Note{}, &counts.Notes},
	} {
		if err := r.db.WithContext(ctx).Model(c.m).Where("user_id = ?", id).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return counts, nil
}

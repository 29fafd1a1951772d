package service

import (
	"PassVault/internal/crypto"
	"PassVault/internal/repo"
	"context"
)

// UserService — операции над учётной записью целиком.
type UserService struct {
	users  repo.UserRepository
	hasher *crypto.Hasher
}

// NewUserService создаёт сервис пользователей.
func NewUserService(users repo.UserRepository, hasher *crypto.Hasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Erase удаляет пользователя и все его записи после повторного
// подтверждения текущего пароля. Несовпадение — ErrConfirmation,
// и ничего не удаляется.
func (s *UserService) Erase(ctx context.Context, userID int64, password string) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConfirmation
	}
	return s.users.DeleteUser(ctx, userID)
}

// Count возвращает количество записей пользователя по каждому виду.
func (s *UserService) Count(ctx context.Context, userID int64) (*repo.SecretCounts, error) {
	return s.users.CountSecrets(ctx, userID)
}

package service

import (
	"PassVault/internal/crypto"
	"PassVault/internal/model"
	"PassVault/internal/repo"
	"PassVault/internal/token"
	"context"
	"errors"

	"gorm.io/gorm"
)

// AuthService выдаёт и проверяет учётные данные: регистрация,
// вход по паре email/пароль и резолв токена в пользователя.
type AuthService struct {
	users  repo.UserRepository
	hasher *crypto.Hasher
	tokens *token.Manager
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(users repo.UserRepository, hasher *crypto.Hasher, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// SignUp регистрирует пользователя. Занятый email — ErrEmailTaken,
// в том числе если дубликат поймал уникальный индекс, а не предпроверка.
func (s *AuthService) SignUp(ctx context.Context, email, password string) error {
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	_, err = s.users.CreateUser(ctx, &model.User{Email: email, Password: hash})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

// SignIn проверяет пару email/пароль и выдаёт токен.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID, user.Email)
}

// CheckToken резолвит токен в существующего пользователя.
// Валидный по подписи токен удалённого аккаунта тоже отклоняется.
func (s *AuthService) CheckToken(ctx context.Context, tokenString string) (*model.User, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if user.Email != claims.Email {
		return nil, ErrInvalidToken
	}
	return user, nil
}

package service

import (
	"context"

	"PassVault/internal/model"
	"PassVault/internal/repo"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository — мок репозитория пользователей.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) CountSecrets(ctx context.Context, id int64) (*repo.SecretCounts, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*repo.SecretCounts); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSecretRepo — мок хранилища записей, один на все виды.
type MockSecretRepo[P model.Secret] struct {
	mock.Mock
}

func (m *MockSecretRepo[P]) Create(ctx context.Context, rec P) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockSecretRepo[P]) GetByID(ctx context.Context, id int64) (P, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(P); ok {
		return rec, args.Error(1)
	}
	var zero P
	return zero, args.Error(1)
}

func (m *MockSecretRepo[P]) ListByOwner(ctx context.Context, ownerID int64) ([]P, error) {
	args := m.Called(ctx, ownerID)
	if recs, ok := args.Get(0).([]P); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSecretRepo[P]) FindByKey(ctx context.Context, key map[string]any) (P, error) {
	args := m.Called(ctx, key)
	if rec, ok := args.Get(0).(P); ok {
		return rec, args.Error(1)
	}
	var zero P
	return zero, args.Error(1)
}

func (m *MockSecretRepo[P]) Update(ctx context.Context, id int64, updates map[string]any) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockSecretRepo[P]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

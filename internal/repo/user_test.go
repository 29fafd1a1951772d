package repo

import (
	"context"
	"testing"

	"PassVault/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	created, err := r.CreateUser(ctx, &model.User{Email: "alice@example.com", Password: "hash"})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	byEmail, err := r.GetUserByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := r.GetUserByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	// несуществующий email
	_, err = r.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	_, err := r.CreateUser(ctx, &model.User{Email: "dup@example.com", Password: "h1"})
	assert.NoError(t, err)

	// уникальный индекс по email
	_, err = r.CreateUser(ctx, &model.User{Email: "dup@example.com", Password: "h2"})
	assert.Error(t, err)
}

func TestUserRepo_DeleteCascade(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	victim, err := r.CreateUser(ctx, &model.User{Email: "victim@example.com", Password: "h"})
	assert.NoError(t, err)
	other, err := r.CreateUser(ctx, &model.User{Email: "other@example.com", Password: "h"})
	assert.NoError(t, err)

	// по записи каждого вида у удаляемого и одна у соседа
	assert.NoError(t, db.Create(&model.Credential{UserID: victim.ID, Title: "t", URL: "u", Username: "n", Password: "p"}).Error)
	assert.NoError(t, db.Create(&model.Card{UserID: victim.ID, Title: "t", Number: "1", Name: "n", CVV: "c", Expiration: "01/30", Password: "p", Type: model.CardTypeDebit}).Error)
	assert.NoError(t, db.Create(&model.Wifi{UserID: victim.ID, Title: "t", Name: "ssid", Password: "p"}).Error)
	assert.NoError(t, db.Create(&model.License{UserID: victim.ID, SoftwareName: "s", SoftwareVersion: "1", LicenseKey: "k"}).Error)
	assert.NoError(t, db.Create(&model.Note{UserID: victim.ID, Title: "t", Text: "x"}).Error)
	assert.NoError(t, db.Create(&model.Note{UserID: other.ID, Title: "keep", Text: "x"}).Error)

	assert.NoError(t, r.DeleteUser(ctx, victim.ID))

	_, err = r.GetUserByID(ctx, victim.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// все записи удалённого исчезли
	counts, err := r.CountSecrets(ctx, victim.ID)
	assert.NoError(t, err)
	assert.Equal(t, &SecretCounts{}, counts)

	// чужие данные не задеты
	otherCounts, err := r.CountSecrets(ctx, other.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), otherCounts.Notes)
	_, err = r.GetUserByID(ctx, other.ID)
	assert.NoError(t, err)
}

func TestUserRepo_CountSecrets(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u, err := r.CreateUser(ctx, &model.User{Email: "count@example.com", Password: "h"})
	assert.NoError(t, err)

	assert.NoError(t, db.Create(&model.Credential{UserID: u.ID, Title: "a", URL: "u", Username: "n", Password: "p"}).Error)
	assert.NoError(t, db.Create(&model.Credential{UserID: u.ID, Title: "b", URL: "u", Username: "n", Password: "p"}).Error)
	assert.NoError(t, db.Create(&model.Note{UserID: u.ID, Title: "n", Text: "x"}).Error)

	counts, err := r.CountSecrets(ctx, u.ID)
	assert.NoError(t, err)
	assert.Equal(t, &SecretCounts{Credentials: 2, Notes: 1}, counts)
}

package handlers

import (
	"net/http"
	"testing"

	"PassVault/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestUserCount(t *testing.T) {
	env := newTestEnv(t)
	tok := env.register("alice@example.com")

	rec := env.do(http.MethodGet, "/api/users/count", tok, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"credentials":0,"cards":0,"wifis":0,"licenses":0,"notes":0}`, rec.Body.String())

	env.do(http.MethodPost, "/api/notes", tok, map[string]string{"title": "n1", "text": "x"})
	env.do(http.MethodPost, "/api/notes", tok, map[string]string{"title": "n2", "text": "y"})
	env.do(http.MethodPost, "/api/wifis", tok, map[string]string{"title": "home", "name": "ssid", "password": "p"})

	rec = env.do(http.MethodGet, "/api/users/count", tok, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"credentials":0,"cards":0,"wifis":1,"licenses":0,"notes":2}`, rec.Body.String())
}

func TestUserErase(t *testing.T) {
	env := newTestEnv(t)
	tok := env.register("alice@example.com")
	otherTok := env.register("bob@example.com")

	env.do(http.MethodPost, "/api/notes", tok, map[string]string{"title": "mine", "text": "x"})
	env.do(http.MethodPost, "/api/notes", otherTok, map[string]string{"title": "his", "text": "y"})

	t.Run("wrong confirmation password", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/users/erase", tok,
			map[string]string{"password": "Wr0nG!P4szwuRd"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		// аккаунт жив, данные на месте
		rec = env.do(http.MethodGet, "/api/notes", tok, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/users/erase", tok, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success cascades", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/users/erase", tok,
			map[string]string{"password": strongPassword})
		assert.Equal(t, http.StatusNoContent, rec.Code)

		// записи удалённого исчезли из базы
		var n int64
		assert.NoError(t, env.db.Model(&model.Note{}).Where("title = ?", "mine").Count(&n).Error)
		assert.Zero(t, n)

		// сосед не пострадал
		rec = env.do(http.MethodGet, "/api/notes", otherTok, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "his")
	})
}

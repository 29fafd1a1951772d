package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashFormat возвращается, когда сохранённый дайджест пароля повреждён.
var ErrHashFormat = errors.New("malformed password hash")

// Hasher — одностороннее хеширование паролей учётных записей (bcrypt).
// Стоимость задаётся конфигурацией процесса, не вызовом.
type Hasher struct {
	cost int
}

// NewHasher создаёт хешер с заданной стоимостью bcrypt.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash возвращает bcrypt-дайджест пароля.
func (h *Hasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify сверяет пароль с дайджестом. Несовпадение — (false, nil),
// повреждённый дайджест — ErrHashFormat.
func (h *Hasher) Verify(plain, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrHashFormat, err)
	}
}

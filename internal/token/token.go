package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Issuer и Audience — фиксированные значения для всех выданных токенов.
	Issuer   = "PassVault"
	Audience = "users"

	// TTL — срок жизни токена с момента выдачи.
	TTL = 7 * 24 * time.Hour
)

// ErrInvalidToken возвращается при любой проблеме с токеном: плохая подпись,
// истёкший срок, чужой issuer/audience или сломанная структура.
var ErrInvalidToken = errors.New("invalid token")

// Claims — полезная нагрузка токена: email плюс стандартные поля
// (subject хранит десятичный id пользователя).
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID возвращает id пользователя из subject.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return id, nil
}

// Manager подписывает и проверяет bearer-токены (HS256).
type Manager struct {
	secret []byte
}

// NewManager создаёт менеджер токенов с серверным секретом подписи.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue выдаёт подписанный токен для пользователя.
func (m *Manager) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    Issuer,
			Audience:  jwt.ClaimStrings{Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify разбирает и проверяет токен: подпись, срок, issuer и audience.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

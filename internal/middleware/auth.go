package middleware

import (
	"PassVault/internal/model"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userContextKey contextKey = "auth_user"

// TokenChecker резолвит bearer-токен в подтверждённого пользователя.
// Реализуется service.AuthService.
type TokenChecker interface {
	CheckToken(ctx context.Context, token string) (*model.User, error)
}

// WithAuth разбирает заголовок Authorization и кладёт пользователя в контекст
// запроса. Невалидный или отсутствующий токен оставляет запрос анонимным —
// решение отклонить принимает хендлер защищённого маршрута.
func WithAuth(auth TokenChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "
			header := r.Header.Get("Authorization")
			if strings.HasPrefix(header, prefix) {
				if user, err := auth.CheckToken(r.Context(), strings.TrimPrefix(header, prefix)); err == nil {
					ctx := context.WithValue(r.Context(), userContextKey, user)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserFromContext возвращает пользователя, положенного WithAuth.
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userContextKey).(*model.User)
	return user, ok
}

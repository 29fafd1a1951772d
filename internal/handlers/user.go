package handlers

import (
	"PassVault/internal/middleware"
	"PassVault/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler — операции над учётной записью целиком.
type UserHandler struct {
	Users  *service.UserService
	Logger *zap.SugaredLogger
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(users *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

type eraseRequest struct {
	Password string `json:"password"`
}

// Erase удаляет учётную запись и все записи пользователя.
// Требует повторного подтверждения текущего пароля.
func (h *UserHandler) Erase(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	var req eraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "password is required", http.StatusBadRequest)
		return
	}

	if err := h.Users.Erase(r.Context(), user.ID, req.Password); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Count возвращает количество записей пользователя по видам.
func (h *UserHandler) Count(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	counts, err := h.Users.Count(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	respondJSON(w, http.StatusOK, counts)
}

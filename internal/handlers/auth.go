package handlers

import (
	"PassVault/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// AuthHandler — регистрация и вход.
type AuthHandler struct {
	Auth   *service.AuthService
	Logger *zap.SugaredLogger
}

// NewAuthHandler создаёт хендлер аутентификации.
func NewAuthHandler(auth *service.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *signUpRequest) validate() error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	return validatePassword(req.Password)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp регистрирует пользователя. Занятый email — 409.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Auth.SignUp(r.Context(), req.Email, req.Password); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"message": "User created."})
}

// SignIn выдаёт токен по паре email/пароль. Обе причины отказа дают
// одинаковый ответ 401.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	tok, err := h.Auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": tok})
}

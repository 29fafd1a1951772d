package handlers

import (
	"PassVault/internal/middleware"
	"PassVault/internal/model"
	"PassVault/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CredentialHandler — логины/пароли для сайтов.
type CredentialHandler struct {
	secretHandler[*model.Credential]
}

// NewCredentialHandler создаёт хендлер credentials.
func NewCredentialHandler(svc *service.VaultService[*model.Credential], logger *zap.SugaredLogger) *CredentialHandler {
	return &CredentialHandler{secretHandler[*model.Credential]{svc: svc, logger: logger}}
}

type createCredentialRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *createCredentialRequest) validate() error {
	if req.Title == "" || req.URL == "" || req.Username == "" || req.Password == "" {
		return errors.New("title, url, username and password are required")
	}
	return validateURL(req.URL)
}

// Create регистрирует credential. Повтор заголовка у владельца — 409.
func (h *CredentialHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	var req createCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Create(r.Context(), &model.Credential{
		Title:    req.Title,
		URL:      req.URL,
		Username: req.Username,
		Password: req.Password,
	}, user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// Routes монтирует маршруты вида.
func (h *CredentialHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.FindAll)
	r.Get("/{id}", h.FindOne)
	r.Delete("/{id}", h.Remove)
}

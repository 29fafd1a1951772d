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

// WifiHandler — сохранённые точки доступа.
type WifiHandler struct {
	secretHandler[*model.Wifi]
}

// NewWifiHandler создаёт хендлер wifis.
func NewWifiHandler(svc *service.VaultService[*model.Wifi], logger *zap.SugaredLogger) *WifiHandler {
	return &WifiHandler{secretHandler[*model.Wifi]{svc: svc, logger: logger}}
}

type createWifiRequest struct {
	Title    string `json:"title"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (req *createWifiRequest) validate() error {
	if req.Title == "" || req.Name == "" || req.Password == "" {
		return errors.New("title, name and password are required")
	}
	return nil
}

// Create регистрирует wifi. Повтор заголовка у владельца — 409.
func (h *WifiHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	var req createWifiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Create(r.Context(), &model.Wifi{
		Title:    req.Title,
		Name:     req.Name,
		Password: req.Password,
	}, user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// Routes монтирует маршруты вида.
func (h *WifiHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.FindAll)
	r.Get("/{id}", h.FindOne)
	r.Delete("/{id}", h.Remove)
}

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

// CardHandler — банковские карты.
type CardHandler struct {
	secretHandler[*model.Card]
}

// NewCardHandler создаёт хендлер cards.
func NewCardHandler(svc *service.VaultService[*model.Card], logger *zap.SugaredLogger) *CardHandler {
	return &CardHandler{secretHandler[*model.Card]{svc: svc, logger: logger}}
}

type createCardRequest struct {
	Title      string         `json:"title"`
	Number     string         `json:"number"`
	Name       string         `json:"name"`
	CVV        string         `json:"cvv"`
	Expiration string         `json:"expiration"`
	Password   string         `json:"password"`
	Virtual    *bool          `json:"virtual"`
	Type       model.CardType `json:"type"`
}

func (req *createCardRequest) validate() error {
	if req.Title == "" || req.Number == "" || req.Name == "" || req.CVV == "" || req.Password == "" {
		return errors.New("title, number, name, cvv and password are required")
	}
	if req.Virtual == nil {
		return errors.New("virtual is required")
	}
	switch req.Type {
	case model.CardTypeCredit, model.CardTypeDebit, model.CardTypeBoth:
	default:
		return errors.New("type must be CREDIT, DEBIT or BOTH")
	}
	return validateExpiration(req.Expiration)
}

// Create регистрирует карту. Повтор заголовка у владельца — 409.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Create(r.Context(), &model.Card{
		Title:      req.Title,
		Number:     req.Number,
		Name:       req.Name,
		CVV:        req.CVV,
		Expiration: req.Expiration,
		Password:   req.Password,
		Virtual:    *req.Virtual,
		Type:       req.Type,
	}, user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// Routes монтирует маршруты вида.
func (h *CardHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.FindAll)
	r.Get("/{id}", h.FindOne)
	r.Delete("/{id}", h.Remove)
}

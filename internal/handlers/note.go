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

// NoteHandler — заметки. Единственный вид с операцией обновления.
type NoteHandler struct {
	secretHandler[*model.Note]
	notes *service.NoteService
}

// NewNoteHandler создаёт хендлер notes.
func NewNoteHandler(svc *service.NoteService, logger *zap.SugaredLogger) *NoteHandler {
	return &NoteHandler{
		secretHandler: secretHandler[*model.Note]{svc: svc.VaultService, logger: logger},
		notes:         svc,
	}
}

type createNoteRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (req *createNoteRequest) validate() error {
	if req.Title == "" || req.Text == "" {
		return errors.New("title and text are required")
	}
	return nil
}

type updateNoteRequest struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
}

// Create регистрирует заметку. Повтор заголовка у владельца — 409.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Create(r.Context(), &model.Note{Title: req.Title, Text: req.Text}, user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// Update частично обновляет заметку: заголовок и/или текст.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Title != nil && *req.Title == "" {
		http.Error(w, "title must not be empty", http.StatusBadRequest)
		return
	}
	if req.Text != nil && *req.Text == "" {
		http.Error(w, "text must not be empty", http.StatusBadRequest)
		return
	}

	note, err := h.notes.Update(r.Context(), id, service.NotePatch{Title: req.Title, Text: req.Text}, user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// Routes монтирует маршруты вида.
func (h *NoteHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.FindAll)
	r.Get("/{id}", h.FindOne)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Remove)
}

package handlers

import (
	"PassVault/internal/middleware"
	"PassVault/internal/model"
	"PassVault/internal/service"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// secretHandler — общие операции чтения и удаления для вида записей P.
// Кинд-специфичное создание живёт в хендлере конкретного вида.
type secretHandler[P model.Secret] struct {
	svc    *service.VaultService[P]
	logger *zap.SugaredLogger
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// FindAll отдаёт все записи владельца, чувствительные поля расшифрованы.
func (h *secretHandler[P]) FindAll(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	recs, err := h.svc.FindAll(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

// FindOne отдаёт запись по id: 404 — нет такой, 403 — чужая.
func (h *secretHandler[P]) FindOne(w http.ResponseWriter, r *http.Request) {
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

	rec, err := h.svc.FindOne(r.Context(), id, user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// Remove удаляет запись по id после тех же проверок, что и FindOne.
func (h *secretHandler[P]) Remove(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Remove(r.Context(), id, user.ID); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

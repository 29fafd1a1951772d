package handlers

import (
	"PassVault/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusOf переводит ожидаемые ошибки сервисов в HTTP-статусы.
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrTitleTaken),
		errors.Is(err, service.ErrLicenseTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrConfirmation):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError отдаёт ошибку сервиса клиенту. Неожиданные ошибки
// (включая повреждённый шифртекст или дайджест) логируются и уходят
// наружу обезличенным 500.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Errorw("internal error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), status)
}

func unauthorized(w http.ResponseWriter) {
	http.Error(w, "Invalid token.", http.StatusUnauthorized)
}

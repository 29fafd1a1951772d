package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthHandler отвечает на пробу живости: приложение поднято и БД отвечает.
type HealthHandler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewHealthHandler создаёт хендлер health-пробы.
func NewHealthHandler(db *gorm.DB, logger *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Check пингует БД и отвечает 200 либо 503.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		http.Error(w, "database is not configured", http.StatusServiceUnavailable)
		return
	}
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		h.logger.Errorw("health check failed", "error", err)
		http.Error(w, "database is unavailable", http.StatusServiceUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

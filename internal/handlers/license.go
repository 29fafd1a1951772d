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

// LicenseHandler — лицензии на ПО.
type LicenseHandler struct {
	secretHandler[*model.License]
}

// NewLicenseHandler создаёт хендлер licenses.
func NewLicenseHandler(svc *service.VaultService[*model.License], logger *zap.SugaredLogger) *LicenseHandler {
	return &LicenseHandler{secretHandler[*model.License]{svc: svc, logger: logger}}
}

type createLicenseRequest struct {
	SoftwareName    string `json:"softwareName"`
	SoftwareVersion string `json:"softwareVersion"`
	LicenseKey      string `json:"licenseKey"`
}

func (req *createLicenseRequest) validate() error {
	if req.SoftwareName == "" || req.SoftwareVersion == "" || req.LicenseKey == "" {
		return errors.New("softwareName, softwareVersion and licenseKey are required")
	}
	return nil
}

// Create регистрирует лицензию. Повтор содержимого у владельца — 409.
func (h *LicenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	var req createLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Create(r.Context(), &model.License{
		SoftwareName:    req.SoftwareName,
		SoftwareVersion: req.SoftwareVersion,
		LicenseKey:      req.LicenseKey,
	}, user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// Routes монтирует маршруты вида.
func (h *LicenseHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.FindAll)
	r.Get("/{id}", h.FindOne)
	r.Delete("/{id}", h.Remove)
}

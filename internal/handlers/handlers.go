package handlers

import (
	"PassVault/internal/middleware"
	"PassVault/internal/model"
	"PassVault/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services — все сервисы, которые нужны HTTP-слою.
type Services struct {
	Auth        *service.AuthService
	Users       *service.UserService
	Credentials *service.VaultService[*model.Credential]
	Cards       *service.VaultService[*model.Card]
	Wifis       *service.VaultService[*model.Wifi]
	Licenses    *service.VaultService[*model.License]
	Notes       *service.NoteService
}

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров: middleware, публичные маршруты
// аутентификации и защищённые маршруты пяти видов записей.
func NewHandler(svcs Services, db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(svcs.Auth))

	r.Get("/health", NewHealthHandler(db, logger).Check)

	authHandler := NewAuthHandler(svcs.Auth, logger)
	r.Post("/api/users/auth/sign-up", authHandler.SignUp)
	r.Post("/api/users/auth/sign-in", authHandler.SignIn)

	userHandler := NewUserHandler(svcs.Users, logger)
	r.Post("/api/users/erase", userHandler.Erase)
	r.Get("/api/users/count", userHandler.Count)

	r.Route("/api/credentials", NewCredentialHandler(svcs.Credentials, logger).Routes)
	r.Route("/api/cards", NewCardHandler(svcs.Cards, logger).Routes)
	r.Route("/api/wifis", NewWifiHandler(svcs.Wifis, logger).Routes)
	r.Route("/api/licenses", NewLicenseHandler(svcs.Licenses, logger).Routes)
	r.Route("/api/notes", NewNoteHandler(svcs.Notes, logger).Routes)

	return &Handler{Router: r}
}

package main

import (
	"PassVault/internal/config"
	"PassVault/internal/crypto"
	"PassVault/internal/handlers"
	"PassVault/internal/middleware"
	"PassVault/internal/model"
	"PassVault/internal/repo"
	"PassVault/internal/service"
	"PassVault/internal/token"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	cipher, err := crypto.NewCipher(cfg.CryptSecret, cfg.CryptIterations)
	if err != nil {
		sugar.Fatalw("failed to initialize cipher", "error", err)
	}
	hasher := crypto.NewHasher(cfg.BcryptCost)
	tokens := token.NewManager(cfg.AuthSecret)

	userRepo := repo.NewUserRepository(gormDB)

	svcs := handlers.Services{
		Auth:  service.NewAuthService(userRepo, hasher, tokens),
		Users: service.NewUserService(userRepo, hasher),
		Credentials: service.NewVaultService(
			repo.NewSecretRepository[model.Credential](gormDB), cipher, service.ErrTitleTaken),
		Cards: service.NewVaultService(
			repo.NewSecretRepository[model.Card](gormDB), cipher, service.ErrTitleTaken),
		Wifis: service.NewVaultService(
			repo.NewSecretRepository[model.Wifi](gormDB), cipher, service.ErrTitleTaken),
		Licenses: service.NewVaultService(
			repo.NewSecretRepository[model.License](gormDB), cipher, service.ErrLicenseTaken),
		Notes: service.NewNoteService(repo.NewSecretRepository[model.Note](gormDB), cipher),
	}

	h := handlers.NewHandler(svcs, gormDB, sugar)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}

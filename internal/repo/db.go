package repo

import (
	"PassVault/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает подключение к Postgres и прогоняет автомиграции.
// TranslateError нужен, чтобы нарушение уникального индекса приходило
// как gorm.ErrDuplicatedKey независимо от драйвера.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate создаёт таблицы всех моделей, включая уникальные индексы,
// страхующие проверку дубликатов перед вставкой.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Credential{},
		&model.Card{},
		&model.Wifi{},
		&model.License{},
		&model.Note{},
	)
}

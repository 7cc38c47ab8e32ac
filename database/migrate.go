package database

import (
	"fmt"

	"workhub_backend/internal/config"
	"workhub_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает соединение GORM с DSN из конфига.
// TranslateError включен, чтобы нарушения уникальных индексов
// приходили как gorm.ErrDuplicatedKey.
func Connect() (*gorm.DB, error) {
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	// Расширение для uuid_generate_v4() в default первичных ключей
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.WorkerProfile{},
		&models.Job{},
		&models.WorkerApplication{},
	)
}

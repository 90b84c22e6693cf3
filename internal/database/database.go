package database

import (
	"fmt"
	"time"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the Postgres connection pool and runs migrations.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// AutoMigrate creates the doctor and patient tables. Safe to run repeatedly.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Doctor{}, &models.Patient{})
}

// SeedAdmin ensures the administrator account exists. It only inserts when no
// doctor with the admin username is present, so running it on every start
// leaves exactly one admin.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Doctor{}).
		Where("username = ?", models.AdminUsername).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := models.Doctor{
		Username:     models.AdminUsername,
		FullName:     "Admin",
		PasswordHash: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Warn().Msg("created default admin account with the well-known password; change it before exposing the service")
	return nil
}

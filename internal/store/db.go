package store

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"openhiring/internal/config"
	"openhiring/internal/logging"
	"openhiring/pkg/models"
)

// Store is the persistence layer. Every query goes through gorm with
// bound parameters; no user input is ever concatenated into SQL text.
type Store struct {
	db     *gorm.DB
	logger logging.Logger
}

// Open connects to postgres, runs migrations and returns the store.
func Open(cfg *config.Config) (*Store, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Job{},
		&models.Application{},
		&models.Company{},
		&models.Category{},
		&models.Admin{},
		&models.Setting{},
		&models.ContactMessage{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := &Store{
		db:     db,
		logger: logging.GetGlobalLogger(),
	}

	if err := s.bootstrapAdmin(cfg); err != nil {
		return nil, err
	}

	s.logger.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"database": cfg.Database.Name,
	})

	return s, nil
}

// bootstrapAdmin seeds the first admin account from config when the
// admins table is empty. Without it a fresh install has no way in.
func (s *Store) bootstrapAdmin(cfg *config.Config) error {
	if cfg.Admin.BootstrapUsername == "" || cfg.Admin.BootstrapPassword == "" {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	admin := models.Admin{
		Username: cfg.Admin.BootstrapUsername,
		Password: string(hash),
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	s.logger.Info("Bootstrap admin account created", map[string]interface{}{
		"username": admin.Username,
	})
	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// notFound converts gorm's sentinel into the store's not-found error.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

package store

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"openhiring/pkg/models"
)

// GetSetting reads a site setting, falling back to the default when the
// key is absent.
func (s *Store) GetSetting(ctx context.Context, key, defaultValue string) (string, error) {
	var setting models.Setting
	err := s.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		if notFound(err) {
			return defaultValue, nil
		}
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return setting.Value, nil
}

// SetSetting upserts a site setting by key.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	setting := models.Setting{SettingKey: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// CreateContactMessage stores a public contact-form submission.
func (s *Store) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

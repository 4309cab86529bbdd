package store

import (
	"context"
	"fmt"

	"openhiring/pkg/models"
	"openhiring/pkg/utils"
)

// GetAdminByUsername fetches an admin account for login.
func (s *Store) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if notFound(err) {
			return nil, utils.NewNotFoundError("admin")
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

// GetAdmin fetches an admin account by id.
func (s *Store) GetAdmin(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).First(&admin, id).Error
	if err != nil {
		if notFound(err) {
			return nil, utils.NewNotFoundError("admin")
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

// UpdateAdminPassword stores a new bcrypt hash for the admin.
func (s *Store) UpdateAdminPassword(ctx context.Context, id uint, hash string) error {
	result := s.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("id = ?", id).
		Update("password", hash)
	if result.Error != nil {
		return fmt.Errorf("failed to update admin password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFoundError("admin")
	}
	return nil
}

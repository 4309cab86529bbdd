package store

import (
	"context"
	"fmt"

	"openhiring/pkg/models"
	"openhiring/pkg/utils"
)

// GetCompanyProfile fetches the company profile row.
func (s *Store) GetCompanyProfile(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	err := s.db.WithContext(ctx).First(&company, id).Error
	if err != nil {
		if notFound(err) {
			return nil, utils.NewNotFoundError("company")
		}
		return nil, fmt.Errorf("failed to get company profile: %w", err)
	}
	return &company, nil
}

// UpdateCompanyProfile rewrites the company profile row.
func (s *Store) UpdateCompanyProfile(ctx context.Context, company *models.Company) error {
	if err := s.db.WithContext(ctx).Save(company).Error; err != nil {
		return fmt.Errorf("failed to update company profile: %w", err)
	}
	return nil
}

// Categories returns every category with its active-job count, for the
// public filter dropdown.
func (s *Store) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	var categories []models.CategoryCount
	err := s.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("categories.id, categories.name, COUNT(jobs.id) AS job_count").
		Joins("LEFT JOIN jobs ON jobs.category_id = categories.id AND jobs.status = ?", models.JobStatusActive).
		Group("categories.id, categories.name").
		Order("categories.name").
		Scan(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

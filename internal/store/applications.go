package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"openhiring/pkg/models"
	"openhiring/pkg/utils"
)

// CreateApplication inserts a submitted application. Status defaults to
// pending; it is only ever changed by admin action afterwards.
func (s *Store) CreateApplication(ctx context.Context, app *models.Application) error {
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	if err := s.db.WithContext(ctx).Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// ListApplications returns one admin page of applications joined with
// their job titles. The count query and the row query share the same
// composed predicate and the same join.
func (s *Store) ListApplications(ctx context.Context, filter ApplicationFilter, page, perPage int) ([]models.ApplicationRow, Pagination, error) {
	p := filter.predicate()

	base := func() *gorm.DB {
		return s.db.WithContext(ctx).
			Model(&models.Application{}).
			Joins("JOIN jobs ON jobs.id = job_applications.job_id")
	}

	var total int64
	if err := p.apply(base()).Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count applications: %w", err)
	}

	pagination := Paginate(total, page, perPage)

	var rows []models.ApplicationRow
	err := p.apply(base()).
		Select("job_applications.*, jobs.title AS job_title").
		Order("job_applications.applied_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.PerPage).
		Scan(&rows).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list applications: %w", err)
	}

	return rows, pagination, nil
}

// GetApplication fetches a single application by id.
func (s *Store) GetApplication(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := s.db.WithContext(ctx).First(&app, id).Error
	if err != nil {
		if notFound(err) {
			return nil, utils.NewNotFoundError("application")
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// UpdateApplicationStatus moves an application to a new review state.
func (s *Store) UpdateApplicationStatus(ctx context.Context, id uint, status models.ApplicationStatus) error {
	result := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update application status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFoundError("application")
	}
	return nil
}

// RecentApplications returns the newest applications with job titles
// for the admin dashboard.
func (s *Store) RecentApplications(ctx context.Context, limit int) ([]models.ApplicationRow, error) {
	var rows []models.ApplicationRow
	err := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = job_applications.job_id").
		Select("job_applications.*, jobs.title AS job_title").
		Order("job_applications.applied_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent applications: %w", err)
	}
	return rows, nil
}

package store

import (
	"context"
	"fmt"

	"openhiring/pkg/models"
)

// Stats gathers the headline counters for the home page and admin
// dashboard. The happy-candidates figure is a fixed-ratio estimate of
// the application count, not a measured value.
func (s *Store) Stats(ctx context.Context) (*models.SiteStats, error) {
	stats := &models.SiteStats{}

	if err := s.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ?", models.JobStatusActive).
		Count(&stats.TotalJobs).Error; err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Job{}).
		Distinct("company_name").
		Count(&stats.TotalCompanies).Error; err != nil {
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Count(&stats.TotalApplications).Error; err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("status = ?", models.ApplicationStatusPending).
		Count(&stats.PendingApplications).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending applications: %w", err)
	}

	stats.HappyCandidates = int64(float64(stats.TotalApplications) * 0.85)

	return stats, nil
}

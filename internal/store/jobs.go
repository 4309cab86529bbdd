package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"openhiring/pkg/models"
	"openhiring/pkg/utils"
)

// ListJobs returns one page of jobs matching the filter plus the page
// metadata computed from the matching row count. Count and rows share
// the same composed predicate.
func (s *Store) ListJobs(ctx context.Context, filter JobFilter, page, perPage int) ([]models.Job, Pagination, error) {
	p := filter.predicate()

	var total int64
	if err := p.apply(s.db.WithContext(ctx).Model(&models.Job{})).Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count jobs: %w", err)
	}

	pagination := Paginate(total, page, perPage)

	var jobs []models.Job
	err := p.apply(s.db.WithContext(ctx)).
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.PerPage).
		Find(&jobs).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, pagination, nil
}

// GetJobBySlug fetches an active job by its public slug.
func (s *Store) GetJobBySlug(ctx context.Context, slug string) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, models.JobStatusActive).
		First(&job).Error
	if err != nil {
		if notFound(err) {
			return nil, utils.NewNotFoundError("job")
		}
		return nil, fmt.Errorf("failed to get job by slug: %w", err)
	}
	return &job, nil
}

// GetActiveJob fetches an active job by id, as used by the public
// application form.
func (s *Store) GetActiveJob(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.JobStatusActive).
		First(&job).Error
	if err != nil {
		if notFound(err) {
			return nil, utils.NewNotFoundError("job")
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// GetJob fetches a job by id regardless of status (admin view).
func (s *Store) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).First(&job, id).Error
	if err != nil {
		if notFound(err) {
			return nil, utils.NewNotFoundError("job")
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// IncrementJobViews bumps the view counter atomically in the database.
func (s *Store) IncrementJobViews(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment job views: %w", err)
	}
	return nil
}

// LatestJobs returns the most recently posted active jobs.
func (s *Store) LatestJobs(ctx context.Context, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("status = ?", models.JobStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list latest jobs: %w", err)
	}
	return jobs, nil
}

// FeaturedJobs returns the most viewed active jobs.
func (s *Store) FeaturedJobs(ctx context.Context, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("status = ?", models.JobStatusActive).
		Order("views DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list featured jobs: %w", err)
	}
	return jobs, nil
}

// SimilarJobs returns other active jobs from the same category,
// newest first, excluding the job itself.
func (s *Store) SimilarJobs(ctx context.Context, jobID uint, categoryID *uint, limit int) ([]models.Job, error) {
	if categoryID == nil {
		return nil, nil
	}

	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("category_id = ? AND id != ? AND status = ?", *categoryID, jobID, models.JobStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list similar jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob derives a unique slug from the title and inserts the job.
func (s *Store) CreateJob(ctx context.Context, job *models.Job) error {
	slug, err := s.uniqueSlug(ctx, job.Title, 0)
	if err != nil {
		return err
	}
	job.Slug = slug

	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// UpdateJob rewrites the job row. The slug is re-derived only when the
// title changed, keeping public URLs stable across unrelated edits.
func (s *Store) UpdateJob(ctx context.Context, job *models.Job) error {
	var current models.Job
	if err := s.db.WithContext(ctx).First(&current, job.ID).Error; err != nil {
		if notFound(err) {
			return utils.NewNotFoundError("job")
		}
		return fmt.Errorf("failed to load job for update: %w", err)
	}

	if current.Title != job.Title {
		slug, err := s.uniqueSlug(ctx, job.Title, job.ID)
		if err != nil {
			return err
		}
		job.Slug = slug
	} else {
		job.Slug = current.Slug
	}
	job.Views = current.Views
	job.CreatedAt = current.CreatedAt

	if err := s.db.WithContext(ctx).Save(job).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

// DeleteJob removes the job row. Returns the deleted job so the caller
// can clean up its logo file afterwards.
func (s *Store) DeleteJob(ctx context.Context, id uint) (*models.Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Job{}, id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete job: %w", err)
	}
	return job, nil
}

// JobOptions returns id/title pairs for the admin filter dropdown.
func (s *Store) JobOptions(ctx context.Context) ([]models.JobOption, error) {
	var options []models.JobOption
	err := s.db.WithContext(ctx).
		Model(&models.Job{}).
		Select("id, title").
		Order("title").
		Scan(&options).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job options: %w", err)
	}
	return options, nil
}

// uniqueSlug derives the slug for title and probes for collisions,
// appending -2, -3, ... until free. excludeID skips the job being
// updated so it does not collide with itself. The unique index on slug
// is the backstop for concurrent inserts.
func (s *Store) uniqueSlug(ctx context.Context, title string, excludeID uint) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		base = "job"
	}

	slug := base
	for i := 2; ; i++ {
		var count int64
		q := s.db.WithContext(ctx).Model(&models.Job{}).Where("slug = ?", slug)
		if excludeID != 0 {
			q = q.Where("id != ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to probe slug: %w", err)
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

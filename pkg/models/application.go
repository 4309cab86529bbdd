package models

import "time"

// ApplicationStatus is the review state of a submitted application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ValidApplicationStatus reports whether s is one of the known review
// states.
func ValidApplicationStatus(s string) bool {
	switch ApplicationStatus(s) {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application is a candidate's submission for a job posting.
type Application struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	JobID       uint              `gorm:"index;not null" json:"job_id"`
	Name        string            `gorm:"not null" json:"name"`
	Email       string            `gorm:"not null" json:"email"`
	Phone       string            `gorm:"not null" json:"phone"`
	CoverLetter string            `gorm:"type:text;not null" json:"cover_letter"`
	Resume      string            `gorm:"not null" json:"resume"`
	Status      ApplicationStatus `gorm:"index;default:'pending'" json:"status"`
	IPAddress   string            `json:"ip_address"`
	UserAgent   string            `json:"user_agent"`
	AppliedAt   time.Time         `gorm:"index;autoCreateTime" json:"applied_at"`
}

// TableName keeps the historical table name.
func (Application) TableName() string {
	return "job_applications"
}

// ApplicationRow is an application joined with its job title for the
// admin listing.
type ApplicationRow struct {
	Application
	JobTitle string `json:"job_title"`
}

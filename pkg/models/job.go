package models

import "time"

// JobStatus is the lifecycle state of a job posting. Only active jobs
// are visible on public listings.
type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
	JobStatusPending  JobStatus = "pending"
)

// JobType enumerates the employment types offered on the board.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeFreelance  JobType = "Freelance"
	JobTypeInternship JobType = "Internship"
)

// JobTypes lists the selectable employment types in form order.
var JobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeFreelance,
	JobTypeInternship,
}

// Job represents a single job posting.
type Job struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Slug           string    `gorm:"uniqueIndex;not null" json:"slug"`
	CompanyName    string    `gorm:"not null" json:"company_name"`
	Location       string    `gorm:"not null" json:"location"`
	JobDescription string    `gorm:"type:text;not null" json:"job_description"`
	Requirements   string    `gorm:"type:text" json:"requirements"`
	Benefits       string    `gorm:"type:text" json:"benefits"`
	Salary         string    `json:"salary"`
	JobType        JobType   `gorm:"default:'Full-time'" json:"job_type"`
	Position       string    `json:"position"`
	Experience     string    `json:"experience"`
	CategoryID     *uint     `gorm:"index" json:"category_id,omitempty"`
	Status         JobStatus `gorm:"index;default:'active'" json:"status"`
	Views          int64     `gorm:"default:0" json:"views"`
	CompanyLogo    string    `json:"company_logo,omitempty"`

	// Company details captured on the job form itself.
	CompanyDescription string `gorm:"type:text" json:"company_description"`
	CompanyWebsite     string `json:"company_website"`
	CompanySize        string `json:"company_size"`
	ContactEmail       string `json:"contact_email"`

	AdminID   uint      `json:"admin_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobOption is the id/title pair used by admin filter dropdowns.
type JobOption struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

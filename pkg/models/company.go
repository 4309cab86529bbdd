package models

import "time"

// Company is the single company profile managed from the admin panel.
type Company struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Website     string `json:"website"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	PostalCode  string `json:"postal_code"`
	Industry    string `json:"industry"`
	FoundedYear int    `json:"founded_year"`
	CompanySize string `json:"company_size"`
	Logo        string `json:"logo,omitempty"`

	LinkedinURL string `json:"linkedin_url"`
	TwitterURL  string `json:"twitter_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category groups jobs for filtering and similar-job lookup.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// CategoryCount is a category together with the number of active jobs
// it currently holds, as shown in the public filter dropdown.
type CategoryCount struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	JobCount int64  `json:"job_count"`
}

package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// SiteStats carries the headline counters shown on the home page and
// the admin dashboard.
type SiteStats struct {
	TotalJobs           int64 `json:"total_jobs"`
	TotalCompanies      int64 `json:"total_companies"`
	TotalApplications   int64 `json:"total_applications"`
	PendingApplications int64 `json:"pending_applications"`
	HappyCandidates     int64 `json:"happy_candidates"` // estimate, not a measured value
}

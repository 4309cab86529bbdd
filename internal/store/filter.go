package store

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"openhiring/pkg/models"
)

// predicate accumulates typed WHERE fragments with their bound
// parameters. The same predicate instance is applied to both the count
// query and the row query, so the two can never diverge.
type predicate struct {
	conds []condition
}

type condition struct {
	expr string
	args []interface{}
}

func (p *predicate) add(expr string, args ...interface{}) {
	p.conds = append(p.conds, condition{expr: expr, args: args})
}

// apply chains every accumulated fragment onto tx with AND semantics.
func (p *predicate) apply(tx *gorm.DB) *gorm.DB {
	for _, c := range p.conds {
		tx = tx.Where(c.expr, c.args...)
	}
	return tx
}

func (p *predicate) empty() bool {
	return len(p.conds) == 0
}

// positiveInt parses raw as a positive integer. Anything else (empty,
// junk, zero, negative) means the filter is simply not applied.
func positiveInt(raw string) (uint, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint(n), true
}

func likePattern(s string) string {
	return "%" + s + "%"
}

// JobFilter carries the optional predicates of a job listing query.
// Empty values are excluded from the composed predicate entirely.
type JobFilter struct {
	Search   string
	Location string
	Category string
	Status   string

	// AdminView lifts the active-only restriction and enables the
	// status filter. Public listings never see non-active jobs.
	AdminView bool
}

// predicate composes the WHERE fragments for this filter. Free text
// matches case-insensitively as a substring, OR-combined across its
// column set; all other filters AND together.
func (f JobFilter) predicate() *predicate {
	p := &predicate{}

	if !f.AdminView {
		p.add("status = ?", models.JobStatusActive)
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		like := likePattern(search)
		if f.AdminView {
			p.add("(title ILIKE ? OR company_name ILIKE ?)", like, like)
		} else {
			p.add("(title ILIKE ? OR company_name ILIKE ? OR job_description ILIKE ?)", like, like, like)
		}
	}

	if location := strings.TrimSpace(f.Location); location != "" {
		p.add("location ILIKE ?", likePattern(location))
	}

	if id, ok := positiveInt(f.Category); ok {
		p.add("category_id = ?", id)
	}

	if f.AdminView {
		if status := strings.TrimSpace(f.Status); status != "" {
			p.add("status = ?", status)
		}
	}

	return p
}

// ApplicationFilter carries the optional predicates of an admin
// application listing query. Column references are qualified because
// the listing joins applications with their jobs.
type ApplicationFilter struct {
	Search string
	Status string
	JobID  string
}

func (f ApplicationFilter) predicate() *predicate {
	p := &predicate{}

	if search := strings.TrimSpace(f.Search); search != "" {
		like := likePattern(search)
		p.add("(job_applications.name ILIKE ? OR job_applications.email ILIKE ? OR jobs.title ILIKE ?)",
			like, like, like)
	}

	if status := strings.TrimSpace(f.Status); status != "" {
		p.add("job_applications.status = ?", status)
	}

	if id, ok := positiveInt(f.JobID); ok {
		p.add("job_applications.job_id = ?", id)
	}

	return p
}

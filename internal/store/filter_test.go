package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"openhiring/pkg/models"
)

func exprs(p *predicate) []string {
	out := make([]string, 0, len(p.conds))
	for _, c := range p.conds {
		out = append(out, c.expr)
	}
	return out
}

func TestJobFilterPublicPinsActiveStatus(t *testing.T) {
	p := JobFilter{}.predicate()

	assert.Len(t, p.conds, 1)
	assert.Equal(t, "status = ?", p.conds[0].expr)
	assert.Equal(t, []interface{}{models.JobStatusActive}, p.conds[0].args)
}

func TestJobFilterSearchColumns(t *testing.T) {
	public := JobFilter{Search: "engineer"}.predicate()
	assert.Contains(t, exprs(public),
		"(title ILIKE ? OR company_name ILIKE ? OR job_description ILIKE ?)")

	admin := JobFilter{Search: "engineer", AdminView: true}.predicate()
	assert.Contains(t, exprs(admin), "(title ILIKE ? OR company_name ILIKE ?)")
}

func TestJobFilterSearchBindsPattern(t *testing.T) {
	p := JobFilter{Search: "go dev"}.predicate()

	// status + search group
	assert.Len(t, p.conds, 2)
	assert.Equal(t, []interface{}{"%go dev%", "%go dev%", "%go dev%"}, p.conds[1].args)
}

func TestJobFilterBlankValuesExcluded(t *testing.T) {
	p := JobFilter{Search: "   ", Location: "", Category: "", AdminView: true}.predicate()
	assert.True(t, p.empty(), "blank admin filter composes no predicate")
}

func TestJobFilterCategoryRequiresPositiveInt(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		p := JobFilter{Category: raw, AdminView: true}.predicate()
		assert.True(t, p.empty(), "category %q must not filter", raw)
	}

	p := JobFilter{Category: "7", AdminView: true}.predicate()
	assert.Equal(t, "category_id = ?", p.conds[0].expr)
	assert.Equal(t, []interface{}{uint(7)}, p.conds[0].args)
}

func TestJobFilterStatusOnlyInAdminView(t *testing.T) {
	public := JobFilter{Status: "inactive"}.predicate()
	assert.Equal(t, []string{"status = ?"}, exprs(public))
	assert.Equal(t, []interface{}{models.JobStatusActive}, public.conds[0].args,
		"public listings never see a caller-chosen status")

	admin := JobFilter{Status: "inactive", AdminView: true}.predicate()
	assert.Equal(t, []string{"status = ?"}, exprs(admin))
	assert.Equal(t, []interface{}{"inactive"}, admin.conds[0].args)
}

func TestApplicationFilterQualifiedColumns(t *testing.T) {
	p := ApplicationFilter{Search: "jane", Status: "pending", JobID: "3"}.predicate()

	assert.Equal(t, []string{
		"(job_applications.name ILIKE ? OR job_applications.email ILIKE ? OR jobs.title ILIKE ?)",
		"job_applications.status = ?",
		"job_applications.job_id = ?",
	}, exprs(p))
}

func TestApplicationFilterEmpty(t *testing.T) {
	p := ApplicationFilter{JobID: "junk"}.predicate()
	assert.True(t, p.empty())
}

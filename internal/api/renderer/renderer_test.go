package renderer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesAllTemplates(t *testing.T) {
	r := New()

	for _, name := range []string{
		"home", "jobs", "job_detail", "apply", "contact", "about", "not_found",
		"admin_login", "admin_dashboard", "admin_jobs", "admin_job_form",
		"admin_applications", "admin_company", "admin_settings",
		"header", "footer", "admin_header", "admin_footer", "pagination",
	} {
		assert.NotNil(t, r.templates.Lookup(name), "template %q missing", name)
	}
}

func TestRenderNotFoundPage(t *testing.T) {
	r := New()

	var buf bytes.Buffer
	err := r.Render(&buf, "not_found", map[string]interface{}{
		"Site":  map[string]string{"Name": "OpenHiring", "Description": "Find your dream job"},
		"Title": "Page Not Found",
		"Flash": nil,
	}, nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Page Not Found")
	assert.Contains(t, buf.String(), "OpenHiring")
}

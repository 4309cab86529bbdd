package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// formData is a ValueSource backed by a plain map.
type formData map[string]string

func (f formData) FormValue(name string) string { return f[name] }

func validApplication() formData {
	return formData{
		"name":         "Jane Doe",
		"email":        "jane@example.com",
		"phone":        "+1 555 0100",
		"cover_letter": strings.Repeat("I am a strong fit for this role. ", 3),
	}
}

func TestParseApplicationFormValid(t *testing.T) {
	form, errs := ParseApplicationForm(validApplication())

	require.Empty(t, errs)
	require.NotNil(t, form)
	assert.Equal(t, "Jane Doe", form.Name)
	assert.Equal(t, "jane@example.com", form.Email)
}

func TestParseApplicationFormShortCoverLetter(t *testing.T) {
	data := validApplication()
	data["cover_letter"] = "Too short."

	form, errs := ParseApplicationForm(data)

	assert.Nil(t, form, "invalid input must not yield a partially valid form")
	assert.Equal(t, "Cover letter should be at least 50 characters", errs["cover_letter"])
}

func TestParseApplicationFormCoverLetterBoundary(t *testing.T) {
	data := validApplication()
	data["cover_letter"] = strings.Repeat("a", 50)

	form, errs := ParseApplicationForm(data)
	require.Empty(t, errs)
	require.NotNil(t, form)

	data["cover_letter"] = strings.Repeat("a", 49)
	form, errs = ParseApplicationForm(data)
	assert.Nil(t, form)
	assert.True(t, errs.Has("cover_letter"))
}

func TestParseApplicationFormBadEmail(t *testing.T) {
	data := validApplication()
	data["email"] = "not-an-email"

	_, errs := ParseApplicationForm(data)

	assert.Equal(t, "Please enter a valid email address", errs["email"])
}

func TestParseApplicationFormMissingFields(t *testing.T) {
	_, errs := ParseApplicationForm(formData{})

	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Phone number is required", errs["phone"])
	assert.Equal(t, "Cover letter is required", errs["cover_letter"])
}

func TestParseApplicationFormSanitizes(t *testing.T) {
	data := validApplication()
	data["name"] = `<b>Jane</b>`
	data["cover_letter"] = "<script>" + strings.Repeat("I am very interested. ", 4) + "</script>"

	form, errs := ParseApplicationForm(data)

	require.Empty(t, errs)
	assert.Equal(t, "&lt;b&gt;Jane&lt;/b&gt;", form.Name)
	assert.NotContains(t, form.CoverLetter, "<script>")
}

func TestParseContactFormShortMessage(t *testing.T) {
	_, errs := ParseContactForm(formData{
		"name":    "Jane",
		"email":   "jane@example.com",
		"subject": "Hello",
		"message": "Too short",
	})

	assert.Equal(t, "Message should be at least 20 characters", errs["message"])
}

func TestParseContactFormValid(t *testing.T) {
	form, errs := ParseContactForm(formData{
		"name":    "Jane",
		"email":   "jane@example.com",
		"subject": "Question about a posting",
		"message": "Is the senior role still open for remote candidates?",
	})

	require.Empty(t, errs)
	require.NotNil(t, form)
}

func TestParseJobForm(t *testing.T) {
	form, errs := ParseJobForm(formData{
		"title":           "Go Developer",
		"company_name":    "Acme",
		"location":        "Berlin",
		"job_description": "Build services.",
		"job_type":        "Contract",
		"status":          "active",
	})

	require.Empty(t, errs)
	assert.True(t, form.Active)
	assert.Equal(t, "Contract", string(form.JobTypeOrDefault()))
}

func TestParseJobFormMissingRequired(t *testing.T) {
	_, errs := ParseJobForm(formData{})

	assert.Equal(t, "Job title is required", errs["title"])
	assert.Equal(t, "Company name is required", errs["company_name"])
	assert.Equal(t, "Location is required", errs["location"])
	assert.Equal(t, "Job description is required", errs["job_description"])
}

func TestParseJobFormUnknownTypeDefaults(t *testing.T) {
	form, errs := ParseJobForm(formData{
		"title":           "Go Developer",
		"company_name":    "Acme",
		"location":        "Berlin",
		"job_description": "Build services.",
		"job_type":        "Gig",
	})

	require.Empty(t, errs)
	assert.Equal(t, "Full-time", string(form.JobTypeOrDefault()))
}

func TestParseLoginForm(t *testing.T) {
	_, errs := ParseLoginForm(formData{})
	assert.Equal(t, "Username is required", errs["username"])
	assert.Equal(t, "Password is required", errs["password"])

	form, errs := ParseLoginForm(formData{"username": "admin", "password": "secret"})
	require.Empty(t, errs)
	assert.Equal(t, "secret", form.Password, "passwords are never sanitized")
}

func TestParsePasswordForm(t *testing.T) {
	_, errs := ParsePasswordForm(formData{
		"current_password": "old-password",
		"new_password":     "new-password",
		"confirm_password": "different",
	})
	assert.Equal(t, "Passwords do not match", errs["confirm_password"])

	_, errs = ParsePasswordForm(formData{
		"current_password": "old-password",
		"new_password":     "short",
		"confirm_password": "short",
	})
	assert.Equal(t, "New password should be at least 8 characters", errs["new_password"])

	form, errs := ParsePasswordForm(formData{
		"current_password": "old-password",
		"new_password":     "much-safer-now",
		"confirm_password": "much-safer-now",
	})
	require.Empty(t, errs)
	require.NotNil(t, form)
}

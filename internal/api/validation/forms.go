package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"openhiring/pkg/models"
	"openhiring/pkg/utils"
)

var validate = validator.New()

// Form values carrier: echo's c.FormValue behind a minimal interface so
// parsing stays testable without an HTTP request.
type ValueSource interface {
	FormValue(name string) string
}

// ApplicationForm is the typed model of a job application submission.
type ApplicationForm struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"required"`
	CoverLetter string `validate:"required,min=50"`
}

// JobForm is the typed model of the admin create/edit job form.
type JobForm struct {
	Title          string `validate:"required"`
	CompanyName    string `validate:"required"`
	Location       string `validate:"required"`
	JobDescription string `validate:"required"`
	Requirements   string
	Benefits       string
	Salary         string
	JobType        string
	Position       string
	Experience     string
	Category       string
	ContactEmail   string `validate:"omitempty,email"`
	Active         bool

	CompanyDescription string
	CompanyWebsite     string
	CompanySize        string
}

// ContactForm is the typed model of the public contact form.
type ContactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required"`
	Message string `validate:"required,min=20"`
}

// CompanyForm is the typed model of the admin company profile form.
type CompanyForm struct {
	Name        string `validate:"required"`
	Description string
	Website     string
	Email       string `validate:"omitempty,email"`
	Phone       string
	Address     string
	City        string
	State       string
	Country     string
	PostalCode  string
	Industry    string
	FoundedYear string `validate:"omitempty,number"`
	CompanySize string
	LinkedinURL string
	TwitterURL  string
}

// LoginForm is the admin credential pair.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// PasswordForm changes an admin password.
type PasswordForm struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

// ParseApplicationForm builds the typed application model from raw form
// values. It returns either the populated struct or the field-error
// mapping, never a partially valid object.
func ParseApplicationForm(src ValueSource) (*ApplicationForm, utils.FieldErrors) {
	form := &ApplicationForm{
		Name:        utils.Sanitize(src.FormValue("name")),
		Email:       utils.Sanitize(src.FormValue("email")),
		Phone:       utils.Sanitize(src.FormValue("phone")),
		CoverLetter: strings.TrimSpace(src.FormValue("cover_letter")),
	}

	errs := check(form, map[string]string{
		"Name":        "name",
		"Email":       "email",
		"Phone":       "phone",
		"CoverLetter": "cover_letter",
	}, map[string]string{
		"Name.required":        "Name is required",
		"Email.required":       "Email is required",
		"Email.email":          "Please enter a valid email address",
		"Phone.required":       "Phone number is required",
		"CoverLetter.required": "Cover letter is required",
		"CoverLetter.min":      "Cover letter should be at least 50 characters",
	})
	if len(errs) > 0 {
		return nil, errs
	}

	// The cover letter is stored escaped like every other field; length
	// is validated on the raw text so entities do not inflate it.
	form.CoverLetter = utils.Sanitize(form.CoverLetter)
	return form, nil
}

// ParseJobForm builds the typed job model from the admin form.
func ParseJobForm(src ValueSource) (*JobForm, utils.FieldErrors) {
	form := &JobForm{
		Title:          utils.Sanitize(src.FormValue("title")),
		CompanyName:    utils.Sanitize(src.FormValue("company_name")),
		Location:       utils.Sanitize(src.FormValue("location")),
		JobDescription: utils.Sanitize(src.FormValue("job_description")),
		Requirements:   utils.Sanitize(src.FormValue("requirements")),
		Benefits:       utils.Sanitize(src.FormValue("benefits")),
		Salary:         utils.Sanitize(src.FormValue("salary")),
		JobType:        utils.Sanitize(src.FormValue("job_type")),
		Position:       utils.Sanitize(src.FormValue("position")),
		Experience:     utils.Sanitize(src.FormValue("experience")),
		Category:       strings.TrimSpace(src.FormValue("category")),
		ContactEmail:   utils.Sanitize(src.FormValue("contact_email")),
		Active:         src.FormValue("status") != "",

		CompanyDescription: utils.Sanitize(src.FormValue("company_description")),
		CompanyWebsite:     utils.Sanitize(src.FormValue("company_website")),
		CompanySize:        utils.Sanitize(src.FormValue("company_size")),
	}

	errs := check(form, map[string]string{
		"Title":          "title",
		"CompanyName":    "company_name",
		"Location":       "location",
		"JobDescription": "job_description",
		"ContactEmail":   "contact_email",
	}, map[string]string{
		"Title.required":          "Job title is required",
		"CompanyName.required":    "Company name is required",
		"Location.required":       "Location is required",
		"JobDescription.required": "Job description is required",
		"ContactEmail.email":      "Please enter a valid contact email",
	})
	if len(errs) > 0 {
		return nil, errs
	}
	return form, nil
}

// ParseContactForm builds the typed contact model from raw form values.
func ParseContactForm(src ValueSource) (*ContactForm, utils.FieldErrors) {
	form := &ContactForm{
		Name:    utils.Sanitize(src.FormValue("name")),
		Email:   utils.Sanitize(src.FormValue("email")),
		Subject: utils.Sanitize(src.FormValue("subject")),
		Message: strings.TrimSpace(src.FormValue("message")),
	}

	errs := check(form, map[string]string{
		"Name":    "name",
		"Email":   "email",
		"Subject": "subject",
		"Message": "message",
	}, map[string]string{
		"Name.required":    "Name is required",
		"Email.required":   "Email is required",
		"Email.email":      "Please enter a valid email address",
		"Subject.required": "Subject is required",
		"Message.required": "Message is required",
		"Message.min":      "Message should be at least 20 characters",
	})
	if len(errs) > 0 {
		return nil, errs
	}

	form.Message = utils.Sanitize(form.Message)
	return form, nil
}

// ParseCompanyForm builds the typed company profile model.
func ParseCompanyForm(src ValueSource) (*CompanyForm, utils.FieldErrors) {
	form := &CompanyForm{
		Name:        utils.Sanitize(src.FormValue("name")),
		Description: utils.Sanitize(src.FormValue("description")),
		Website:     utils.Sanitize(src.FormValue("website")),
		Email:       utils.Sanitize(src.FormValue("email")),
		Phone:       utils.Sanitize(src.FormValue("phone")),
		Address:     utils.Sanitize(src.FormValue("address")),
		City:        utils.Sanitize(src.FormValue("city")),
		State:       utils.Sanitize(src.FormValue("state")),
		Country:     utils.Sanitize(src.FormValue("country")),
		PostalCode:  utils.Sanitize(src.FormValue("postal_code")),
		Industry:    utils.Sanitize(src.FormValue("industry")),
		FoundedYear: strings.TrimSpace(src.FormValue("founded_year")),
		CompanySize: utils.Sanitize(src.FormValue("company_size")),
		LinkedinURL: utils.Sanitize(src.FormValue("linkedin_url")),
		TwitterURL:  utils.Sanitize(src.FormValue("twitter_url")),
	}

	errs := check(form, map[string]string{
		"Name":        "name",
		"Email":       "email",
		"FoundedYear": "founded_year",
	}, map[string]string{
		"Name.required":      "Company name is required",
		"Email.email":        "Please enter a valid email address",
		"FoundedYear.number": "Founded year must be a number",
	})
	if len(errs) > 0 {
		return nil, errs
	}
	return form, nil
}

// ParseLoginForm builds the credential pair from the login form.
func ParseLoginForm(src ValueSource) (*LoginForm, utils.FieldErrors) {
	form := &LoginForm{
		Username: utils.Sanitize(src.FormValue("username")),
		Password: src.FormValue("password"),
	}

	errs := check(form, map[string]string{
		"Username": "username",
		"Password": "password",
	}, map[string]string{
		"Username.required": "Username is required",
		"Password.required": "Password is required",
	})
	if len(errs) > 0 {
		return nil, errs
	}
	return form, nil
}

// ParsePasswordForm builds the password change model.
func ParsePasswordForm(src ValueSource) (*PasswordForm, utils.FieldErrors) {
	form := &PasswordForm{
		CurrentPassword: src.FormValue("current_password"),
		NewPassword:     src.FormValue("new_password"),
		ConfirmPassword: src.FormValue("confirm_password"),
	}

	errs := check(form, map[string]string{
		"CurrentPassword": "current_password",
		"NewPassword":     "new_password",
		"ConfirmPassword": "confirm_password",
	}, map[string]string{
		"CurrentPassword.required": "Current password is required",
		"NewPassword.required":     "New password is required",
		"NewPassword.min":          "New password should be at least 8 characters",
		"ConfirmPassword.required": "Please confirm the new password",
		"ConfirmPassword.eqfield":  "Passwords do not match",
	})
	if len(errs) > 0 {
		return nil, errs
	}
	return form, nil
}

// JobTypeOrDefault resolves the submitted job type against the known
// set, defaulting to full time.
func (f *JobForm) JobTypeOrDefault() models.JobType {
	for _, t := range models.JobTypes {
		if string(t) == f.JobType {
			return t
		}
	}
	return models.JobTypeFullTime
}

// check runs the struct validators and maps violations to form field
// names with user-facing messages.
func check(form interface{}, fieldNames map[string]string, messages map[string]string) utils.FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return utils.FieldErrors{"general": "Invalid input"}
	}

	errs := utils.FieldErrors{}
	for _, fe := range verrs {
		field, ok := fieldNames[fe.StructField()]
		if !ok {
			field = strings.ToLower(fe.StructField())
		}

		msg, ok := messages[fe.StructField()+"."+fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		errs[field] = msg
	}
	return errs
}

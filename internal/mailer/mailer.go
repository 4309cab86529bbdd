package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"openhiring/internal/config"
	"openhiring/internal/logging"
	"openhiring/pkg/models"
)

// Mailer sends the plain-text notification mails. It is a
// fire-and-forget boundary: failures are logged, never surfaced to the
// end user.
type Mailer struct {
	cfg     *config.Config
	logger  logging.Logger
	baseURL string
}

// New creates a mailer from configuration.
func New(cfg *config.Config) *Mailer {
	return &Mailer{
		cfg:     cfg,
		logger:  logging.GetGlobalLogger(),
		baseURL: strings.TrimRight(cfg.Site.BaseURL, "/"),
	}
}

// NotifyEmployer mails the job's contact address (or the admin fallback)
// about a new application.
func (m *Mailer) NotifyEmployer(job *models.Job, app *models.Application, resumeURL string) {
	to := job.ContactEmail
	if to == "" {
		to = m.cfg.Mail.AdminEmail
	}

	subject := fmt.Sprintf("New Application for %s", job.Title)

	var body strings.Builder
	body.WriteString("You have received a new application:\n\n")
	fmt.Fprintf(&body, "Job Title: %s\n", job.Title)
	fmt.Fprintf(&body, "Applicant Name: %s\n", app.Name)
	fmt.Fprintf(&body, "Applicant Email: %s\n", app.Email)
	fmt.Fprintf(&body, "Applicant Phone: %s\n\n", app.Phone)
	fmt.Fprintf(&body, "Cover Letter:\n%s\n\n", app.CoverLetter)
	fmt.Fprintf(&body, "Resume: %s\n", resumeURL)

	m.send(to, subject, body.String(), app.Email)
}

// ConfirmApplicant mails the candidate a confirmation of their
// submission.
func (m *Mailer) ConfirmApplicant(job *models.Job, app *models.Application) {
	subject := fmt.Sprintf("Application Confirmation for %s", job.Title)

	var body strings.Builder
	fmt.Fprintf(&body, "Thank you for applying to %s at %s.\n\n", job.Title, job.CompanyName)
	body.WriteString("We have received your application and will review it shortly.\n")
	body.WriteString("If your qualifications match our requirements, we will contact you for next steps.\n\n")
	body.WriteString("Job Details:\n")
	fmt.Fprintf(&body, "Title: %s\n", job.Title)
	fmt.Fprintf(&body, "Company: %s\n", job.CompanyName)
	fmt.Fprintf(&body, "Location: %s\n\n", job.Location)
	fmt.Fprintf(&body, "You can view the job posting here: %s/jobs/%s\n\n", m.baseURL, job.Slug)
	body.WriteString("Best regards,\n")
	fmt.Fprintf(&body, "The %s Team", job.CompanyName)

	m.send(app.Email, subject, body.String(), "")
}

// ForwardContactMessage mails a contact-form submission to the site's
// contact address.
func (m *Mailer) ForwardContactMessage(msg *models.ContactMessage) {
	subject := fmt.Sprintf("New Contact Message: %s", msg.Subject)

	var body strings.Builder
	body.WriteString("You have received a new contact message:\n\n")
	fmt.Fprintf(&body, "Name: %s\n", msg.Name)
	fmt.Fprintf(&body, "Email: %s\n\n", msg.Email)
	fmt.Fprintf(&body, "Message:\n%s\n", msg.Message)

	m.send(m.cfg.Mail.ContactEmail, subject, body.String(), msg.Email)
}

// send delivers one plain-text message over SMTP. Errors are logged
// only; delivery is best effort by design.
func (m *Mailer) send(to, subject, body, replyTo string) {
	if !m.cfg.Mail.Enabled {
		m.logger.Debug("Mail disabled, skipping send", map[string]interface{}{
			"to":      to,
			"subject": subject,
		})
		return
	}

	from := m.cfg.Mail.NoReplyEmail

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	if replyTo != "" {
		fmt.Fprintf(&msg, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Mail.SMTPHost, m.cfg.Mail.SMTPPort)

	var auth smtp.Auth
	if m.cfg.Mail.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Mail.Username, m.cfg.Mail.Password, m.cfg.Mail.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg.String())); err != nil {
		m.logger.Error("Failed to send mail", map[string]interface{}{
			"to":      to,
			"subject": subject,
			"error":   err.Error(),
		})
		return
	}

	m.logger.Info("Mail sent", map[string]interface{}{
		"to":      to,
		"subject": subject,
	})
}

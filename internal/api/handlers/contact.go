package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"openhiring/internal/api/validation"
	"openhiring/internal/config"
	"openhiring/internal/mailer"
	"openhiring/internal/session"
	"openhiring/internal/store"
	"openhiring/pkg/models"
)

// ContactFormHandler renders the public contact form.
func ContactFormHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		data := view(c, cfg, st, sessions, "Contact Us")
		return c.Render(http.StatusOK, "contact", data)
	}
}

// ContactSubmitHandler validates and stores a contact message, then
// forwards it to the site's contact address.
func ContactSubmitHandler(cfg *config.Config, st *store.Store, sessions *session.Manager, mail *mailer.Mailer) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		form, errs := validation.ParseContactForm(c)
		if len(errs) > 0 {
			data := view(c, cfg, st, sessions, "Contact Us")
			data["Errors"] = errs
			data["Values"] = formValues(c, "name", "email", "subject", "message")
			return c.Render(http.StatusOK, "contact", data)
		}

		msg := models.ContactMessage{
			Name:      form.Name,
			Email:     form.Email,
			Subject:   form.Subject,
			Message:   form.Message,
			IPAddress: c.RealIP(),
		}
		if err := st.CreateContactMessage(ctx, &msg); err != nil {
			return serverError(c, err)
		}

		mail.ForwardContactMessage(&msg)

		return redirectWithFlash(c, cfg, sessions, "/contact", "success",
			"Thank you for your message. We will get back to you soon!")
	}
}

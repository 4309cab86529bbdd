package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"openhiring/internal/api/validation"
	"openhiring/internal/config"
	"openhiring/internal/session"
	"openhiring/internal/store"
	"openhiring/pkg/utils"
)

// AdminLoginFormHandler renders the login page, skipping straight to
// the dashboard when a session is already live.
func AdminLoginFormHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := sessions.Admin(c.Request().Context(), sessionID(c, cfg)); ok {
			return c.Redirect(http.StatusFound, "/admin")
		}

		data := view(c, cfg, st, sessions, "Admin Login")
		return c.Render(http.StatusOK, "admin_login", data)
	}
}

// AdminLoginHandler checks credentials and establishes the admin
// session. Bad username and bad password produce the same message.
func AdminLoginHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		form, errs := validation.ParseLoginForm(c)
		if len(errs) > 0 {
			return renderLoginForm(c, cfg, st, sessions, errs)
		}

		admin, err := st.GetAdminByUsername(ctx, form.Username)
		if err != nil {
			var notFound *utils.NotFoundError
			if errors.As(err, &notFound) {
				return renderLoginForm(c, cfg, st, sessions,
					utils.FieldErrors{"general": "Invalid username or password"})
			}
			return serverError(c, err)
		}

		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(form.Password)) != nil {
			requestLogger(c).Warn("Failed admin login attempt", map[string]interface{}{
				"username": form.Username,
				"ip":       c.RealIP(),
			})
			return renderLoginForm(c, cfg, st, sessions,
				utils.FieldErrors{"general": "Invalid username or password"})
		}

		// A fresh session ID on login prevents fixation.
		id := sessions.NewSessionID()
		if err := sessions.LoginAdmin(ctx, id, admin.ID, admin.Username); err != nil {
			return serverError(c, err)
		}
		setSessionCookie(c, cfg, id)

		requestLogger(c).Info("Admin logged in", map[string]interface{}{
			"username": admin.Username,
		})

		return c.Redirect(http.StatusFound, "/admin")
	}
}

// AdminLogoutHandler drops the session and clears the cookie.
func AdminLogoutHandler(cfg *config.Config, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		if id := sessionID(c, cfg); id != "" {
			if err := sessions.LogoutAdmin(c.Request().Context(), id); err != nil {
				requestLogger(c).Warn("Failed to drop admin session", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
		clearSessionCookie(c, cfg)
		return c.Redirect(http.StatusFound, "/admin/login")
	}
}

func renderLoginForm(c echo.Context, cfg *config.Config, st *store.Store, sessions *session.Manager, errs utils.FieldErrors) error {
	data := view(c, cfg, st, sessions, "Admin Login")
	data["Errors"] = errs
	data["Values"] = formValues(c, "username")
	return c.Render(http.StatusOK, "admin_login", data)
}

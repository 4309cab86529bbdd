package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"openhiring/internal/config"
	"openhiring/internal/session"
)

// AdminContextKey is where the authenticated admin session is stored on
// the echo context.
const AdminContextKey = "admin_session"

// RequireAdmin guards the back-office routes. Requests without a live
// admin session are redirected to the login page.
func RequireAdmin(cfg *config.Config, sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cfg.Session.CookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/admin/login")
			}

			admin, ok := sessions.Admin(c.Request().Context(), cookie.Value)
			if !ok {
				return c.Redirect(http.StatusFound, "/admin/login")
			}

			c.Set(AdminContextKey, admin)
			return next(c)
		}
	}
}

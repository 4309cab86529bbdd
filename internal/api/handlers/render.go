package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"openhiring/internal/api/middleware"
	"openhiring/internal/config"
	"openhiring/internal/logging"
	"openhiring/internal/session"
	"openhiring/internal/store"
)

// viewSite is the site identity block available to every template. Name
// and description come from the database settings with the configured
// values as fallback.
type viewSite struct {
	Name        string
	Description string
	BaseURL     string
}

// view assembles the base template data shared by every page: site
// identity, page title, the logged-in admin (if any) and the pending
// flash notice.
func view(c echo.Context, cfg *config.Config, st *store.Store, sessions *session.Manager, title string) map[string]interface{} {
	ctx := c.Request().Context()

	site := viewSite{
		Name:        cfg.Site.Name,
		Description: cfg.Site.Description,
		BaseURL:     cfg.Site.BaseURL,
	}
	if name, err := st.GetSetting(ctx, "site_name", cfg.Site.Name); err == nil {
		site.Name = name
	}
	if desc, err := st.GetSetting(ctx, "site_description", cfg.Site.Description); err == nil {
		site.Description = desc
	}

	data := map[string]interface{}{
		"Site":   site,
		"Title":  title,
		"Admin":  currentAdmin(c),
		"Flash":  sessions.PopFlash(ctx, sessionID(c, cfg)),
		"Errors": map[string]string{},
		"Values": map[string]string{},
	}
	return data
}

// currentAdmin returns the admin session placed on the context by the
// auth middleware, or nil on public pages.
func currentAdmin(c echo.Context) *session.AdminSession {
	admin, ok := c.Get(middleware.AdminContextKey).(*session.AdminSession)
	if !ok {
		return nil
	}
	return admin
}

// sessionID reads the session cookie, returning "" when absent.
func sessionID(c echo.Context, cfg *config.Config) string {
	cookie, err := c.Cookie(cfg.Session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ensureSessionID returns the existing session ID or mints one and sets
// the cookie, so flash notices work for anonymous visitors too.
func ensureSessionID(c echo.Context, cfg *config.Config, sessions *session.Manager) string {
	if id := sessionID(c, cfg); id != "" {
		return id
	}

	id := sessions.NewSessionID()
	setSessionCookie(c, cfg, id)
	return id
}

func setSessionCookie(c echo.Context, cfg *config.Config, id string) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(cfg.Session.TTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// redirectWithFlash stores a one-shot notice and redirects.
func redirectWithFlash(c echo.Context, cfg *config.Config, sessions *session.Manager, url, flashType, message string) error {
	id := ensureSessionID(c, cfg, sessions)
	sessions.SetFlash(c.Request().Context(), id, flashType, message)
	return c.Redirect(http.StatusFound, url)
}

// requestLogger returns a logger carrying this request's ID.
func requestLogger(c echo.Context) logging.Logger {
	requestID, _ := c.Get("request_id").(string)
	return logging.LogWithRequestID(requestID)
}

// serverError logs the failure with full detail and returns the generic
// error page; internals never reach the response.
func serverError(c echo.Context, err error) error {
	requestLogger(c).Error("Request failed", map[string]interface{}{
		"path":  c.Path(),
		"error": err.Error(),
	})
	return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong. Please try again later.")
}

// formValues captures the raw submitted values for form re-rendering.
func formValues(c echo.Context, names ...string) map[string]string {
	values := make(map[string]string, len(names))
	for _, name := range names {
		values[name] = c.FormValue(name)
	}
	return values
}

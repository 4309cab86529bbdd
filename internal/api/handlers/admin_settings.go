package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"openhiring/internal/api/validation"
	"openhiring/internal/config"
	"openhiring/internal/session"
	"openhiring/internal/store"
	"openhiring/pkg/utils"
)

// settingKeys lists the editable site settings with their config-backed
// defaults.
func settingDefaults(cfg *config.Config) map[string]string {
	return map[string]string{
		"site_name":        cfg.Site.Name,
		"site_description": cfg.Site.Description,
		"contact_email":    cfg.Mail.ContactEmail,
		"about_text":       "We connect great companies with great people.",
	}
}

// AdminSettingsHandler renders the settings page.
func AdminSettingsHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderSettings(c, cfg, st, sessions, nil)
	}
}

// AdminSettingsUpdateHandler upserts the editable site settings.
func AdminSettingsUpdateHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		for key := range settingDefaults(cfg) {
			if err := st.SetSetting(ctx, key, utils.Sanitize(c.FormValue(key))); err != nil {
				return serverError(c, err)
			}
		}

		return redirectWithFlash(c, cfg, sessions, "/admin/settings", "success",
			"Settings saved successfully")
	}
}

// AdminPasswordHandler changes the logged-in admin's password after
// verifying the current one.
func AdminPasswordHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		form, errs := validation.ParsePasswordForm(c)
		if len(errs) > 0 {
			return renderSettings(c, cfg, st, sessions, errs)
		}

		admin, err := st.GetAdmin(ctx, currentAdmin(c).AdminID)
		if err != nil {
			return serverError(c, err)
		}

		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(form.CurrentPassword)) != nil {
			return renderSettings(c, cfg, st, sessions,
				utils.FieldErrors{"current_password": "Current password is incorrect"})
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(form.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return serverError(c, err)
		}

		if err := st.UpdateAdminPassword(ctx, admin.ID, string(hash)); err != nil {
			return serverError(c, err)
		}

		requestLogger(c).Info("Admin password changed", map[string]interface{}{
			"admin_id": admin.ID,
		})

		return redirectWithFlash(c, cfg, sessions, "/admin/settings", "success",
			"Password updated successfully")
	}
}

func renderSettings(c echo.Context, cfg *config.Config, st *store.Store, sessions *session.Manager, errs utils.FieldErrors) error {
	ctx := c.Request().Context()

	settings := make(map[string]string)
	for key, fallback := range settingDefaults(cfg) {
		value, err := st.GetSetting(ctx, key, fallback)
		if err != nil {
			return serverError(c, err)
		}
		settings[key] = value
	}

	data := view(c, cfg, st, sessions, "Settings")
	data["Settings"] = settings
	if errs != nil {
		data["Errors"] = errs
	}
	return c.Render(http.StatusOK, "admin_settings", data)
}

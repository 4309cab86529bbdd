package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"openhiring/internal/config"
	"openhiring/internal/session"
	"openhiring/internal/store"
)

// AdminDashboardHandler renders the back-office landing page with
// headline stats and the most recent activity.
func AdminDashboardHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		stats, err := st.Stats(ctx)
		if err != nil {
			return serverError(c, err)
		}

		recentApps, err := st.RecentApplications(ctx, 5)
		if err != nil {
			return serverError(c, err)
		}

		recentJobs, _, err := st.ListJobs(ctx, store.JobFilter{AdminView: true}, 1, 5)
		if err != nil {
			return serverError(c, err)
		}

		data := view(c, cfg, st, sessions, "Dashboard")
		data["Stats"] = stats
		data["RecentApplications"] = recentApps
		data["RecentJobs"] = recentJobs
		return c.Render(http.StatusOK, "admin_dashboard", data)
	}
}

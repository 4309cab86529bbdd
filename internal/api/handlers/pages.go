package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"openhiring/internal/config"
	"openhiring/internal/session"
	"openhiring/internal/store"
)

// HomeHandler renders the landing page with headline stats, featured
// jobs and the latest postings.
func HomeHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		stats, err := st.Stats(ctx)
		if err != nil {
			return serverError(c, err)
		}

		featured, err := st.FeaturedJobs(ctx, 3)
		if err != nil {
			return serverError(c, err)
		}

		latest, err := st.LatestJobs(ctx, 6)
		if err != nil {
			return serverError(c, err)
		}

		data := view(c, cfg, st, sessions, "Home")
		data["Stats"] = stats
		data["FeaturedJobs"] = featured
		data["LatestJobs"] = latest
		return c.Render(http.StatusOK, "home", data)
	}
}

// AboutHandler renders the about page from the stored about text.
func AboutHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		about, err := st.GetSetting(ctx, "about_text",
			"We connect great companies with great people.")
		if err != nil {
			return serverError(c, err)
		}

		stats, err := st.Stats(ctx)
		if err != nil {
			return serverError(c, err)
		}

		data := view(c, cfg, st, sessions, "About Us")
		data["AboutText"] = about
		data["Stats"] = stats
		return c.Render(http.StatusOK, "about", data)
	}
}

// NotFoundHandler renders the 404 page for unknown routes.
func NotFoundHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		data := view(c, cfg, st, sessions, "Page Not Found")
		return c.Render(http.StatusNotFound, "not_found", data)
	}
}

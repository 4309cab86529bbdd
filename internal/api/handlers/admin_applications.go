package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"openhiring/internal/config"
	"openhiring/internal/session"
	"openhiring/internal/store"
	"openhiring/internal/upload"
	"openhiring/pkg/models"
)

// AdminApplicationListHandler renders the application review listing
// with search, status and job filters.
func AdminApplicationListHandler(cfg *config.Config, st *store.Store, sessions *session.Manager, uploads *upload.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		filter := store.ApplicationFilter{
			Search: c.QueryParam("search"),
			Status: c.QueryParam("status"),
			JobID:  c.QueryParam("job_id"),
		}

		apps, pagination, err := st.ListApplications(ctx, filter, pageParam(c), cfg.Site.JobsPerPage)
		if err != nil {
			return serverError(c, err)
		}

		options, err := st.JobOptions(ctx)
		if err != nil {
			return serverError(c, err)
		}

		resumeURLs := make(map[uint]string, len(apps))
		for _, app := range apps {
			resumeURLs[app.ID] = uploads.PublicURL(upload.KindResume, app.Resume)
		}

		data := view(c, cfg, st, sessions, "Applications")
		data["Applications"] = apps
		data["Pagination"] = pagination
		data["Filter"] = filter
		data["JobOptions"] = options
		data["ResumeURLs"] = resumeURLs
		data["Query"] = filterQuery(map[string]string{
			"search": filter.Search,
			"status": filter.Status,
			"job_id": filter.JobID,
		})
		return c.Render(http.StatusOK, "admin_applications", data)
	}
}

// AdminApplicationStatusHandler moves an application to a new review
// state.
func AdminApplicationStatusHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 1 {
			return redirectWithFlash(c, cfg, sessions, "/admin/applications", "error", "Application not found")
		}

		status := c.FormValue("status")
		if !models.ValidApplicationStatus(status) {
			return redirectWithFlash(c, cfg, sessions, "/admin/applications", "error", "Invalid status")
		}

		if err := st.UpdateApplicationStatus(c.Request().Context(), uint(id), models.ApplicationStatus(status)); err != nil {
			return redirectWithFlash(c, cfg, sessions, "/admin/applications", "error", "Application not found")
		}

		return redirectWithFlash(c, cfg, sessions, "/admin/applications", "success", "Application status updated")
	}
}

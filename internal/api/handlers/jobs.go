package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"openhiring/internal/config"
	"openhiring/internal/session"
	"openhiring/internal/store"
	"openhiring/internal/upload"
	"openhiring/pkg/utils"
)

// JobListHandler renders the public job listing with search, location
// and category filters.
func JobListHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		filter := store.JobFilter{
			Search:   c.QueryParam("search"),
			Location: c.QueryParam("location"),
			Category: c.QueryParam("category"),
		}

		jobs, pagination, err := st.ListJobs(ctx, filter, pageParam(c), cfg.Site.JobsPerPage)
		if err != nil {
			return serverError(c, err)
		}

		categories, err := st.Categories(ctx)
		if err != nil {
			return serverError(c, err)
		}

		data := view(c, cfg, st, sessions, "Browse Jobs")
		data["Jobs"] = jobs
		data["Pagination"] = pagination
		data["Filter"] = filter
		data["Categories"] = categories
		data["Query"] = filterQuery(map[string]string{
			"search":   filter.Search,
			"location": filter.Location,
			"category": filter.Category,
		})
		return c.Render(http.StatusOK, "jobs", data)
	}
}

// JobDetailHandler renders a single active job by slug and records the
// view.
func JobDetailHandler(cfg *config.Config, st *store.Store, sessions *session.Manager, uploads *upload.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		job, err := st.GetJobBySlug(ctx, c.Param("slug"))
		if err != nil {
			var notFound *utils.NotFoundError
			if errors.As(err, &notFound) {
				data := view(c, cfg, st, sessions, "Job Not Found")
				return c.Render(http.StatusNotFound, "not_found", data)
			}
			return serverError(c, err)
		}

		// A lost view count is not worth failing the page over.
		if err := st.IncrementJobViews(ctx, job.ID); err != nil {
			requestLogger(c).Warn("Failed to increment job views", map[string]interface{}{
				"job_id": job.ID,
				"error":  err.Error(),
			})
		}

		similar, err := st.SimilarJobs(ctx, job.ID, job.CategoryID, 3)
		if err != nil {
			return serverError(c, err)
		}

		data := view(c, cfg, st, sessions, job.Title)
		data["Job"] = job
		data["SimilarJobs"] = similar
		data["LogoURL"] = uploads.PublicURL(upload.KindLogo, job.CompanyLogo)
		return c.Render(http.StatusOK, "job_detail", data)
	}
}

// pageParam reads the 1-indexed page query parameter; anything
// unparseable means page one.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// filterQuery encodes the non-empty filter values as a query-string
// prefix for pagination links.
func filterQuery(params map[string]string) string {
	values := url.Values{}
	for name, value := range params {
		if value != "" {
			values.Set(name, value)
		}
	}
	if len(values) == 0 {
		return ""
	}
	return values.Encode() + "&"
}

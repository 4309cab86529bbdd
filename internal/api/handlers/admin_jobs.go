package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"openhiring/internal/api/validation"
	"openhiring/internal/config"
	"openhiring/internal/session"
	"openhiring/internal/store"
	"openhiring/internal/upload"
	"openhiring/pkg/models"
	"openhiring/pkg/utils"
)

// AdminJobListHandler renders the job management listing with search
// and status filters.
func AdminJobListHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		filter := store.JobFilter{
			Search:    c.QueryParam("search"),
			Status:    c.QueryParam("status"),
			AdminView: true,
		}

		jobs, pagination, err := st.ListJobs(ctx, filter, pageParam(c), cfg.Site.JobsPerPage)
		if err != nil {
			return serverError(c, err)
		}

		data := view(c, cfg, st, sessions, "Jobs")
		data["Jobs"] = jobs
		data["Pagination"] = pagination
		data["Filter"] = filter
		data["Query"] = filterQuery(map[string]string{
			"search": filter.Search,
			"status": filter.Status,
		})
		return c.Render(http.StatusOK, "admin_jobs", data)
	}
}

// AdminJobNewHandler renders the empty job form.
func AdminJobNewHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderJobForm(c, cfg, st, sessions, "Post New Job", "/admin/jobs/new",
			&models.Job{Status: models.JobStatusActive}, "", nil)
	}
}

// AdminJobCreateHandler validates the form and creates the posting. A
// logo that fails validation never reaches disk; a stored logo is
// removed again if the insert fails.
func AdminJobCreateHandler(cfg *config.Config, st *store.Store, sessions *session.Manager, uploads *upload.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		form, errs := validation.ParseJobForm(c)
		if len(errs) > 0 {
			return renderJobForm(c, cfg, st, sessions, "Post New Job", "/admin/jobs/new", jobFromRequest(c), "", errs)
		}

		job := jobFromForm(form)
		job.AdminID = currentAdmin(c).AdminID

		logo, err := saveLogo(c, uploads, "company_logo")
		if err != nil {
			var rejection *upload.Error
			if errors.As(err, &rejection) {
				errs = utils.FieldErrors{"company_logo": logoErrorMessage(rejection)}
				return renderJobForm(c, cfg, st, sessions, "Post New Job", "/admin/jobs/new", job, "", errs)
			}
			return serverError(c, err)
		}
		job.CompanyLogo = logo

		if err := st.CreateJob(ctx, job); err != nil {
			uploads.Remove(upload.KindLogo, logo)
			return serverError(c, err)
		}

		requestLogger(c).Info("Job created", map[string]interface{}{
			"job_id": job.ID,
			"slug":   job.Slug,
		})

		return redirectWithFlash(c, cfg, sessions, "/admin/jobs", "success", "Job posted successfully")
	}
}

// AdminJobEditHandler renders the form pre-filled with the job.
func AdminJobEditHandler(cfg *config.Config, st *store.Store, sessions *session.Manager, uploads *upload.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		job, err := jobFromParam(c, st)
		if err != nil {
			return jobNotFound(c, cfg, sessions, err)
		}

		action := "/admin/jobs/" + strconv.FormatUint(uint64(job.ID), 10) + "/edit"
		logoURL := uploads.PublicURL(upload.KindLogo, job.CompanyLogo)
		return renderJobForm(c, cfg, st, sessions, "Edit Job", action, job, logoURL, nil)
	}
}

// AdminJobUpdateHandler validates the form and rewrites the posting.
// When a new logo is uploaded, the old file is only deleted after the
// database update succeeded.
func AdminJobUpdateHandler(cfg *config.Config, st *store.Store, sessions *session.Manager, uploads *upload.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		current, err := jobFromParam(c, st)
		if err != nil {
			return jobNotFound(c, cfg, sessions, err)
		}
		action := "/admin/jobs/" + strconv.FormatUint(uint64(current.ID), 10) + "/edit"
		logoURL := uploads.PublicURL(upload.KindLogo, current.CompanyLogo)

		form, errs := validation.ParseJobForm(c)
		if len(errs) > 0 {
			job := jobFromRequest(c)
			job.ID = current.ID
			job.CompanyLogo = current.CompanyLogo
			return renderJobForm(c, cfg, st, sessions, "Edit Job", action, job, logoURL, errs)
		}

		job := jobFromForm(form)
		job.ID = current.ID
		job.AdminID = current.AdminID
		job.CompanyLogo = current.CompanyLogo

		newLogo, err := saveLogo(c, uploads, "company_logo")
		if err != nil {
			var rejection *upload.Error
			if errors.As(err, &rejection) {
				errs = utils.FieldErrors{"company_logo": logoErrorMessage(rejection)}
				return renderJobForm(c, cfg, st, sessions, "Edit Job", action, job, logoURL, errs)
			}
			return serverError(c, err)
		}
		swap := logoSwap{current: current.CompanyLogo, uploaded: newLogo}
		job.CompanyLogo = swap.filename()

		if err := st.UpdateJob(ctx, job); err != nil {
			swap.rollback(uploads)
			return serverError(c, err)
		}
		swap.commit(uploads)

		return redirectWithFlash(c, cfg, sessions, "/admin/jobs", "success", "Job updated successfully")
	}
}

// AdminJobDeleteHandler removes the posting and then its logo file.
func AdminJobDeleteHandler(cfg *config.Config, st *store.Store, sessions *session.Manager, uploads *upload.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 1 {
			return redirectWithFlash(c, cfg, sessions, "/admin/jobs", "error", "Job not found")
		}

		job, err := st.DeleteJob(c.Request().Context(), uint(id))
		if err != nil {
			return jobNotFound(c, cfg, sessions, err)
		}

		uploads.Remove(upload.KindLogo, job.CompanyLogo)

		requestLogger(c).Info("Job deleted", map[string]interface{}{
			"job_id": job.ID,
			"title":  job.Title,
		})

		return redirectWithFlash(c, cfg, sessions, "/admin/jobs", "success", "Job deleted successfully")
	}
}

func renderJobForm(c echo.Context, cfg *config.Config, st *store.Store, sessions *session.Manager, title, action string, job *models.Job, logoURL string, errs utils.FieldErrors) error {
	categories, err := st.Categories(c.Request().Context())
	if err != nil {
		return serverError(c, err)
	}

	data := view(c, cfg, st, sessions, title)
	data["Action"] = action
	data["Job"] = job
	data["LogoURL"] = logoURL
	data["Categories"] = categories
	data["JobTypes"] = models.JobTypes
	if errs != nil {
		data["Errors"] = errs
	}
	return c.Render(http.StatusOK, "admin_job_form", data)
}

// jobFromForm maps the validated form onto a job model.
func jobFromForm(form *validation.JobForm) *models.Job {
	status := models.JobStatusInactive
	if form.Active {
		status = models.JobStatusActive
	}

	return &models.Job{
		Title:          form.Title,
		CompanyName:    form.CompanyName,
		Location:       form.Location,
		JobDescription: form.JobDescription,
		Requirements:   form.Requirements,
		Benefits:       form.Benefits,
		Salary:         form.Salary,
		JobType:        form.JobTypeOrDefault(),
		Position:       form.Position,
		Experience:     form.Experience,
		CategoryID:     categoryRef(form.Category),
		Status:         status,

		CompanyDescription: form.CompanyDescription,
		CompanyWebsite:     form.CompanyWebsite,
		CompanySize:        form.CompanySize,
		ContactEmail:       form.ContactEmail,
	}
}

// jobFromRequest rebuilds a display-only job from the raw submission so
// a failed validation re-renders with the admin's input preserved. The
// template escapes on output; nothing here is persisted.
func jobFromRequest(c echo.Context) *models.Job {
	status := models.JobStatusInactive
	if c.FormValue("status") != "" {
		status = models.JobStatusActive
	}

	return &models.Job{
		Title:          c.FormValue("title"),
		CompanyName:    c.FormValue("company_name"),
		Location:       c.FormValue("location"),
		JobDescription: c.FormValue("job_description"),
		Requirements:   c.FormValue("requirements"),
		Benefits:       c.FormValue("benefits"),
		Salary:         c.FormValue("salary"),
		JobType:        models.JobType(c.FormValue("job_type")),
		Position:       c.FormValue("position"),
		Experience:     c.FormValue("experience"),
		CategoryID:     categoryRef(c.FormValue("category")),
		Status:         status,

		CompanyDescription: c.FormValue("company_description"),
		CompanyWebsite:     c.FormValue("company_website"),
		CompanySize:        c.FormValue("company_size"),
		ContactEmail:       c.FormValue("contact_email"),
	}
}

// categoryRef parses the submitted category ID; anything that is not a
// positive integer means no category.
func categoryRef(raw string) *uint {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return nil
	}
	id := uint(n)
	return &id
}

func jobFromParam(c echo.Context, st *store.Store) (*models.Job, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return nil, utils.NewNotFoundError("job")
	}
	return st.GetJob(c.Request().Context(), uint(id))
}

func jobNotFound(c echo.Context, cfg *config.Config, sessions *session.Manager, err error) error {
	var notFound *utils.NotFoundError
	if errors.As(err, &notFound) {
		return redirectWithFlash(c, cfg, sessions, "/admin/jobs", "error", "Job not found")
	}
	return serverError(c, err)
}

// logoRemover is satisfied by *upload.Storage.
type logoRemover interface {
	Remove(kind upload.Kind, filename string) error
}

// logoSwap tracks a logo replacement across a row update. Without an
// upload it changes nothing; with one, the new file survives only a
// confirmed update and the old file is removed only after it.
type logoSwap struct {
	current  string
	uploaded string
}

// filename is what the updated row should store.
func (s logoSwap) filename() string {
	if s.uploaded != "" {
		return s.uploaded
	}
	return s.current
}

// rollback discards the uploaded file after a failed update.
func (s logoSwap) rollback(files logoRemover) {
	if s.uploaded != "" {
		files.Remove(upload.KindLogo, s.uploaded)
	}
}

// commit removes the replaced file once the update is confirmed.
func (s logoSwap) commit(files logoRemover) {
	if s.uploaded != "" && s.current != "" {
		files.Remove(upload.KindLogo, s.current)
	}
}

// saveLogo stores an optional logo upload; ("", nil) means no file was
// submitted.
func saveLogo(c echo.Context, uploads *upload.Storage, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh.Filename == "" || fh.Size == 0 {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return uploads.Save(upload.Input{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     src,
	}, upload.KindLogo)
}

func logoErrorMessage(err *upload.Error) string {
	switch err.Reason {
	case upload.ReasonBadType:
		return "Only JPEG and PNG images are allowed"
	case upload.ReasonFileTooLarge:
		return "Logo must be 1 MB or smaller"
	default:
		return "Logo upload failed"
	}
}

package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"openhiring/internal/api/validation"
	"openhiring/internal/config"
	"openhiring/internal/mailer"
	"openhiring/internal/session"
	"openhiring/internal/store"
	"openhiring/internal/upload"
	"openhiring/pkg/models"
	"openhiring/pkg/utils"
)

// ApplyFormHandler renders the application form for an active job.
func ApplyFormHandler(cfg *config.Config, st *store.Store, sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		job, err := activeJobFromParam(c, st)
		if err != nil {
			return redirectWithFlash(c, cfg, sessions, "/jobs", "error", "Job not found or no longer available")
		}

		data := view(c, cfg, st, sessions, "Apply for "+job.Title)
		data["Job"] = job
		return c.Render(http.StatusOK, "apply", data)
	}
}

// ApplySubmitHandler validates and stores a job application. The resume
// only reaches disk after the form fields pass validation, and the
// stored file is removed again if the database insert fails.
func ApplySubmitHandler(cfg *config.Config, st *store.Store, sessions *session.Manager, uploads *upload.Storage, mail *mailer.Mailer) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		job, err := activeJobFromParam(c, st)
		if err != nil {
			return redirectWithFlash(c, cfg, sessions, "/jobs", "error", "Job not found or no longer available")
		}

		form, errs := validation.ParseApplicationForm(c)
		if errs == nil {
			errs = utils.FieldErrors{}
		}

		fileHeader, fileErr := c.FormFile("resume")
		if fileErr != nil {
			errs["resume"] = "Resume is required"
		}

		if len(errs) > 0 {
			return renderApplyForm(c, cfg, st, sessions, job, errs)
		}

		filename, err := saveResume(uploads, fileHeader)
		if err != nil {
			var rejection *upload.Error
			if errors.As(err, &rejection) {
				errs["resume"] = resumeErrorMessage(rejection)
				return renderApplyForm(c, cfg, st, sessions, job, errs)
			}
			return serverError(c, err)
		}

		app := models.Application{
			JobID:       job.ID,
			Name:        form.Name,
			Email:       form.Email,
			Phone:       form.Phone,
			CoverLetter: form.CoverLetter,
			Resume:      filename,
			IPAddress:   c.RealIP(),
			UserAgent:   c.Request().UserAgent(),
		}
		if err := st.CreateApplication(ctx, &app); err != nil {
			uploads.Remove(upload.KindResume, filename)
			return serverError(c, err)
		}

		requestLogger(c).Info("Application submitted", map[string]interface{}{
			"job_id":         job.ID,
			"application_id": app.ID,
		})

		mail.NotifyEmployer(job, &app, uploads.PublicURL(upload.KindResume, filename))
		mail.ConfirmApplicant(job, &app)

		return redirectWithFlash(c, cfg, sessions, "/jobs/"+job.Slug, "success",
			"Your application has been submitted successfully!")
	}
}

func renderApplyForm(c echo.Context, cfg *config.Config, st *store.Store, sessions *session.Manager, job *models.Job, errs utils.FieldErrors) error {
	data := view(c, cfg, st, sessions, "Apply for "+job.Title)
	data["Job"] = job
	data["Errors"] = errs
	data["Values"] = formValues(c, "name", "email", "phone", "cover_letter")
	return c.Render(http.StatusOK, "apply", data)
}

// activeJobFromParam resolves the :id route parameter to an active job.
func activeJobFromParam(c echo.Context, st *store.Store) (*models.Job, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return nil, utils.NewNotFoundError("job")
	}
	return st.GetActiveJob(c.Request().Context(), uint(id))
}

// saveResume streams the uploaded resume through the validation
// pipeline.
func saveResume(uploads *upload.Storage, fh *multipart.FileHeader) (string, error) {
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
	}, upload.KindResume)
}

func resumeErrorMessage(err *upload.Error) string {
	switch err.Reason {
	case upload.ReasonBadType:
		return "Only PDF, DOC and DOCX files are allowed"
	case upload.ReasonFileTooLarge:
		return "Resume must be 2 MB or smaller"
	default:
		return "Resume is required"
	}
}

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

// companyProfileID pins the single company profile row.
const companyProfileID = 1

// AdminCompanyHandler renders the company profile form.
func AdminCompanyHandler(cfg *config.Config, st *store.Store, sessions *session.Manager, uploads *upload.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		company, err := companyOrEmpty(c, st)
		if err != nil {
			return serverError(c, err)
		}

		return renderCompanyForm(c, cfg, st, sessions, uploads, company, nil)
	}
}

// AdminCompanyUpdateHandler validates and saves the company profile.
// A replaced logo file is only deleted after the update succeeded.
func AdminCompanyUpdateHandler(cfg *config.Config, st *store.Store, sessions *session.Manager, uploads *upload.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		current, err := companyOrEmpty(c, st)
		if err != nil {
			return serverError(c, err)
		}

		form, errs := validation.ParseCompanyForm(c)
		if len(errs) > 0 {
			company := companyFromRequest(c)
			company.ID = current.ID
			company.Logo = current.Logo
			return renderCompanyForm(c, cfg, st, sessions, uploads, company, errs)
		}

		company := companyFromForm(form)
		company.ID = current.ID
		company.Logo = current.Logo
		company.CreatedAt = current.CreatedAt

		newLogo, err := saveLogo(c, uploads, "logo")
		if err != nil {
			var rejection *upload.Error
			if errors.As(err, &rejection) {
				errs = utils.FieldErrors{"logo": logoErrorMessage(rejection)}
				return renderCompanyForm(c, cfg, st, sessions, uploads, company, errs)
			}
			return serverError(c, err)
		}
		swap := logoSwap{current: current.Logo, uploaded: newLogo}
		company.Logo = swap.filename()

		if err := st.UpdateCompanyProfile(ctx, company); err != nil {
			swap.rollback(uploads)
			return serverError(c, err)
		}
		swap.commit(uploads)

		return redirectWithFlash(c, cfg, sessions, "/admin/company", "success",
			"Company profile updated successfully")
	}
}

func renderCompanyForm(c echo.Context, cfg *config.Config, st *store.Store, sessions *session.Manager, uploads *upload.Storage, company *models.Company, errs utils.FieldErrors) error {
	data := view(c, cfg, st, sessions, "Company Profile")
	data["Company"] = company
	data["LogoURL"] = uploads.PublicURL(upload.KindLogo, company.Logo)
	if errs != nil {
		data["Errors"] = errs
	}
	return c.Render(http.StatusOK, "admin_company", data)
}

// companyOrEmpty loads the profile row, returning an empty profile on a
// fresh install so the form still renders.
func companyOrEmpty(c echo.Context, st *store.Store) (*models.Company, error) {
	company, err := st.GetCompanyProfile(c.Request().Context(), companyProfileID)
	if err != nil {
		var notFound *utils.NotFoundError
		if errors.As(err, &notFound) {
			return &models.Company{ID: companyProfileID}, nil
		}
		return nil, err
	}
	return company, nil
}

// companyFromRequest rebuilds a display-only profile from the raw
// submission so a failed validation re-renders with the input kept.
func companyFromRequest(c echo.Context) *models.Company {
	founded, _ := strconv.Atoi(c.FormValue("founded_year"))

	return &models.Company{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Website:     c.FormValue("website"),
		Email:       c.FormValue("email"),
		Phone:       c.FormValue("phone"),
		Address:     c.FormValue("address"),
		City:        c.FormValue("city"),
		State:       c.FormValue("state"),
		Country:     c.FormValue("country"),
		PostalCode:  c.FormValue("postal_code"),
		Industry:    c.FormValue("industry"),
		FoundedYear: founded,
		CompanySize: c.FormValue("company_size"),
		LinkedinURL: c.FormValue("linkedin_url"),
		TwitterURL:  c.FormValue("twitter_url"),
	}
}

func companyFromForm(form *validation.CompanyForm) *models.Company {
	founded, _ := strconv.Atoi(form.FoundedYear)

	return &models.Company{
		Name:        form.Name,
		Description: form.Description,
		Website:     form.Website,
		Email:       form.Email,
		Phone:       form.Phone,
		Address:     form.Address,
		City:        form.City,
		State:       form.State,
		Country:     form.Country,
		PostalCode:  form.PostalCode,
		Industry:    form.Industry,
		FoundedYear: founded,
		CompanySize: form.CompanySize,
		LinkedinURL: form.LinkedinURL,
		TwitterURL:  form.TwitterURL,
	}
}

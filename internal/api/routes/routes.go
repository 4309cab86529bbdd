package routes

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"openhiring/internal/api/handlers"
	"openhiring/internal/api/middleware"
	"openhiring/internal/config"
	"openhiring/internal/mailer"
	"openhiring/internal/session"
	"openhiring/internal/store"
	"openhiring/internal/upload"
)

// SetupRoutes configures all routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, st *store.Store, sessions *session.Manager, uploads *upload.Storage, mail *mailer.Mailer, limiter *middleware.SubmissionLimiter) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestValidation())

	// Uploaded assets and static files
	e.Static("/assets", "assets")

	// Health check routes
	e.GET("/health", handlers.HealthHandler(st, sessions))
	e.GET("/health/live", handlers.LivenessHandler)

	// Public routes
	e.GET("/", handlers.HomeHandler(cfg, st, sessions))
	e.GET("/about", handlers.AboutHandler(cfg, st, sessions))
	e.GET("/jobs", handlers.JobListHandler(cfg, st, sessions))
	e.GET("/jobs/:slug", handlers.JobDetailHandler(cfg, st, sessions, uploads))

	e.GET("/apply/:id", handlers.ApplyFormHandler(cfg, st, sessions))
	e.POST("/apply/:id", handlers.ApplySubmitHandler(cfg, st, sessions, uploads, mail), limiter.Middleware())

	e.GET("/contact", handlers.ContactFormHandler(cfg, st, sessions))
	e.POST("/contact", handlers.ContactSubmitHandler(cfg, st, sessions, mail), limiter.Middleware())

	// Admin login is outside the guarded group
	e.GET("/admin/login", handlers.AdminLoginFormHandler(cfg, st, sessions))
	e.POST("/admin/login", handlers.AdminLoginHandler(cfg, st, sessions))
	e.GET("/admin/logout", handlers.AdminLogoutHandler(cfg, sessions))

	// Admin routes
	admin := e.Group("/admin", middleware.RequireAdmin(cfg, sessions))
	{
		admin.GET("", handlers.AdminDashboardHandler(cfg, st, sessions))

		admin.GET("/jobs", handlers.AdminJobListHandler(cfg, st, sessions))
		admin.GET("/jobs/new", handlers.AdminJobNewHandler(cfg, st, sessions))
		admin.POST("/jobs/new", handlers.AdminJobCreateHandler(cfg, st, sessions, uploads))
		admin.GET("/jobs/:id/edit", handlers.AdminJobEditHandler(cfg, st, sessions, uploads))
		admin.POST("/jobs/:id/edit", handlers.AdminJobUpdateHandler(cfg, st, sessions, uploads))
		admin.POST("/jobs/:id/delete", handlers.AdminJobDeleteHandler(cfg, st, sessions, uploads))

		admin.GET("/applications", handlers.AdminApplicationListHandler(cfg, st, sessions, uploads))
		admin.POST("/applications/:id/status", handlers.AdminApplicationStatusHandler(cfg, st, sessions))

		admin.GET("/company", handlers.AdminCompanyHandler(cfg, st, sessions, uploads))
		admin.POST("/company", handlers.AdminCompanyUpdateHandler(cfg, st, sessions, uploads))

		admin.GET("/settings", handlers.AdminSettingsHandler(cfg, st, sessions))
		admin.POST("/settings", handlers.AdminSettingsUpdateHandler(cfg, st, sessions))
		admin.POST("/settings/password", handlers.AdminPasswordHandler(cfg, st, sessions))
	}

	// Unknown routes get the rendered 404 page
	echo.NotFoundHandler = func(c echo.Context) error {
		return handlers.NotFoundHandler(cfg, st, sessions)(c)
	}
}

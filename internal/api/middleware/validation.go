package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"openhiring/pkg/utils"
)

// RequestValidation middleware validates incoming requests
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Add request ID to context
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			// Content length validation for POST requests. The ceiling
			// leaves room for a resume upload plus the form fields.
			if c.Request().Method == http.MethodPost {
				contentLength := c.Request().ContentLength
				if contentLength > 4*1024*1024 {
					return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large")
				}
			}

			return next(c)
		}
	}
}

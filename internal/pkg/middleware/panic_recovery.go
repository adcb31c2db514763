package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/openfleet/cabdispatch/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace and returns a 500 response instead of crashing the process.
func PanicRecoveryMiddleware(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(logrus.Fields{
						"panic":     r,
						"method":    c.Request().Method,
						"path":      c.Request().URL.Path,
						"remote_ip": c.RealIP(),
						"stack":     string(debug.Stack()),
					}).Error("recovered from panic")

					if !c.Response().Committed {
						_ = utils.InternalServerErrorResponse(c, http.StatusText(http.StatusInternalServerError))
					}
				}
			}()

			return next(c)
		}
	}
}

package httpapi

import (
	"slices"

	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func skipper(c echo.Context) bool {
	return slices.Contains([]string{
		"/health",
		"/favicon.ico",
	}, c.Request().URL.Path)
}

// newRequestLogger logs one line per request through l.
func newRequestLogger(l logging.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:        true,
		LogURI:           true,
		LogError:         true,
		HandleError:      true, // runs the error handler first so the logged status is the final one
		LogRequestID:     true,
		LogRemoteIP:      true,
		LogMethod:        true,
		LogUserAgent:     true,
		LogLatency:       true,
		LogContentLength: true,
		LogResponseSize:  true,
		Skipper:          skipper,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{
				"request_id", v.RequestID,
				"remote_ip", v.RemoteIP,
				"method", v.Method,
				"uri", v.URI,
				"user_agent", v.UserAgent,
				"status", v.Status,
				"latency", v.Latency,
				"bytes_in", v.ContentLength,
				"bytes_out", v.ResponseSize,
			}

			ctx := c.Request().Context()
			if v.Error != nil {
				l.Warn(ctx, "REQUEST_ERROR", append(args, "err", v.Error.Error())...)
				return nil
			}
			l.Info(ctx, "REQUEST", args...)
			return nil
		},
	})
}

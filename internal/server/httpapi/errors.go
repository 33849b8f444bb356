package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/labstack/echo/v4"
)

// Stable machine-readable error codes.
const (
	CodeAssetNotFound         = "ASSET_NOT_FOUND"
	CodeDuplicateSerialNumber = "DUPLICATE_SERIAL_NUMBER"
	CodeValidation            = "VALIDATION_ERROR"
	CodeDatabase              = "DATABASE_ERROR"
	CodeHTTP                  = "HTTP_ERROR"
	CodeInternal              = "INTERNAL_SERVER_ERROR"
)

const (
	msgDatabase = "Database error: the operation could not be completed"
	msgInternal = "An unexpected error occurred"
)

// ErrorBody is the payload under the "error" key of every failure response.
type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the envelope {"error": {...}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// MapError converts err into a status code and envelope. Storage failures
// and unknown errors get a generic message; their cause stays server-side.
func MapError(err error) (int, ErrorResponse) {
	var (
		notFound  common.NotFoundError
		duplicate common.DuplicateSerialNumberError
		invalid   *common.ValidationError
		storage   *common.StorageError
		httpErr   *echo.HTTPError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{ErrorBody{Code: CodeAssetNotFound, Message: notFound.Error()}}
	case errors.As(err, &duplicate):
		return http.StatusConflict, ErrorResponse{ErrorBody{Code: CodeDuplicateSerialNumber, Message: duplicate.Error()}}
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity, ErrorResponse{ErrorBody{Code: CodeValidation, Message: invalid.Message, Details: invalid.Details}}
	case errors.As(err, &storage):
		return http.StatusInternalServerError, ErrorResponse{ErrorBody{Code: CodeDatabase, Message: msgDatabase}}
	case errors.As(err, &httpErr):
		msg := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			msg = m
		} else if httpErr.Message != nil {
			msg = fmt.Sprint(httpErr.Message)
		}
		return httpErr.Code, ErrorResponse{ErrorBody{Code: CodeHTTP, Message: msg}}
	}
	return http.StatusInternalServerError, ErrorResponse{ErrorBody{Code: CodeInternal, Message: msgInternal}}
}

// handleError is the echo HTTPErrorHandler. Server-side failures are logged
// with their cause before the generic envelope is written.
func (s *HTTPServer) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := MapError(err)
	ctx := c.Request().Context()
	if status >= http.StatusInternalServerError {
		s.logger.Error(ctx, "request failed",
			"error", err,
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(status)
	} else {
		werr = c.JSON(status, body)
	}
	if werr != nil {
		s.logger.Error(ctx, "write error response", "error", werr)
	}
}

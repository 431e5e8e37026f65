package apperror

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrorBody is the JSON shape every failed request returns.
type ErrorBody struct {
	Error   Kind                `json:"error"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func statusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNoTenant:
		return http.StatusForbidden
	case KindNotFoundOrForbidden:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HTTPErrorHandler returns an echo error handler that maps the taxonomy onto
// status codes and safe JSON bodies. Persistence causes are logged with the
// request id but never serialized into the response.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *Error
		if errors.As(err, &appErr) {
			if appErr.Kind == KindPersistence {
				rid, _ := c.Get("request_id").(string)
				logger.Error().Err(appErr.Unwrap()).
					Str("request_id", rid).
					Str("path", c.Request().URL.Path).
					Msg("persistence failure")
			}
			body := ErrorBody{Error: appErr.Kind, Message: appErr.Message, Fields: appErr.Fields}
			_ = c.JSON(statusFor(appErr.Kind), body)
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			msg, ok := httpErr.Message.(string)
			if !ok {
				msg = http.StatusText(httpErr.Code)
			}
			_ = c.JSON(httpErr.Code, ErrorBody{Error: "http_error", Message: msg})
			return
		}

		rid, _ := c.Get("request_id").(string)
		logger.Error().Err(err).Str("request_id", rid).Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, ErrorBody{
			Error:   KindPersistence,
			Message: "an unexpected error occurred",
		})
	}
}

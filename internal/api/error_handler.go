package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/ospanovk/hydromon/internal/pkg/logger"
)

// httpErrorHandler maps coded errors to their status and message. Anything
// else is logged and answered with a fixed 500 body so internals never leak
// to the client.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := ""
	code := http.StatusInternalServerError

	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*constants.CodedError); ok {
			code = ce.Code()
			msg = ce.Error()
			break
		}
		if he, ok := e.(*echo.HTTPError); ok {
			code = he.Code
			msg = http.StatusText(he.Code)
			if s, ok := he.Message.(string); ok {
				msg = s
			}
			break
		}
	}

	if msg == "" {
		logger.Errorf(c.Request().Context(), "unhandled error: %s [%s %s]", err, c.Request().Method, c.Request().URL.Path)
		msg = "internal server error"
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Success: false,
		Error:   msg,
		Code:    code,
	})
}

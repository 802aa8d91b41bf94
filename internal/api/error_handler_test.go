package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, domain.ErrorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/sensors", nil)
	rec := httptest.NewRecorder()

	httpErrorHandler(err, e.NewContext(req, rec))

	var resp domain.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestErrorHandlerCodedError(t *testing.T) {
	rec, resp := runErrorHandler(t, constants.ErrForbidden)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, constants.ErrForbidden.Error(), resp.Error)
	assert.False(t, resp.Success)
}

func TestErrorHandlerWrappedCodedError(t *testing.T) {
	rec, resp := runErrorHandler(t, fmt.Errorf("get evacuation: %w", constants.ErrDBNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constants.ErrDBNotFound.Error(), resp.Error)
}

func TestErrorHandlerHidesUnexpectedErrors(t *testing.T) {
	raw := errors.New(`connect failed: password "s3cret" rejected for db hydromon`)
	rec, resp := runErrorHandler(t, raw)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", resp.Error)
	assert.NotContains(t, rec.Body.String(), "s3cret")
}

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmuriuki/campusreg/internal/app/models/dto"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
)

func handleErr(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return rec, &resp
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   dto.ErrorCode
	}{
		{apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrExamNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrHolidayReportNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrStudentNoExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrAlreadyRegistered, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrExamNotPublished, http.StatusConflict, dto.ErrorCodeResourceConflict},
		{apperrors.ErrDeadlinePassed, http.StatusConflict, dto.ErrorCodeResourceConflict},
		{apperrors.ErrReportNotPending, http.StatusConflict, dto.ErrorCodeResourceConflict},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeForbidden},
		{apperrors.ErrNotReportOwner, http.StatusForbidden, dto.ErrorCodeForbidden},
		{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec, resp := handleErr(t, tc.err)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, resp.Error.Code)
			assert.False(t, resp.Success)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("error retrieving exam: %w", apperrors.ErrExamNotFound)
	rec, resp := handleErr(t, wrapped)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestHandleAPIErrorCustomMessages(t *testing.T) {
	rec, resp := handleErr(t, apperrors.NewConflictError("exam lifecycle has already ended"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "exam lifecycle has already ended", resp.Error.Message)

	rec, resp = handleErr(t, apperrors.NewBadRequestError("student number cannot be changed"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "student number cannot be changed", resp.Error.Message)
}

func TestHandleAPIErrorUnknownError(t *testing.T) {
	rec, resp := handleErr(t, errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, dto.ErrorCodeInternalServer, resp.Error.Code)
	// Internal details stay out of the response body
	assert.Equal(t, "Internal server error", resp.Error.Message)
}

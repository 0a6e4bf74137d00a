package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmuriuki/campusreg/internal/pkg/schema"
)

func TestNewValidationErrorResponseCarriesEveryFieldError(t *testing.T) {
	errs := schema.Errors{
		{Path: "studentNo", Message: "Student number is required", Kind: schema.KindRequired},
		{Path: "birthDate", Message: "Age must be between 16 and 35 years", Kind: schema.KindCrossField},
	}

	resp := NewValidationErrorResponse(errs)

	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrorCodeValidationFailed, resp.Error.Code)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "studentNo", resp.Errors[0].Field)
	assert.Equal(t, string(schema.KindRequired), resp.Errors[0].Code)
	assert.Equal(t, "birthDate", resp.Errors[1].Field)
	assert.Equal(t, "Age must be between 16 and 35 years", resp.Errors[1].Message)
}

func TestNewAPIResponse(t *testing.T) {
	resp := NewAPIResponse(map[string]string{"id": "abc"}, "Created")
	assert.True(t, resp.Success)
	assert.Equal(t, "Created", resp.Message)
	assert.NotZero(t, resp.Timestamp)
}

func TestErrorDetailBuilders(t *testing.T) {
	detail := NewErrorDetail(ErrorCodeResourceConflict, "already registered").
		WithField("examId").
		WithSeverity(ErrorSeverityWarning)

	assert.Equal(t, ErrorCodeResourceConflict, detail.Code)
	assert.Equal(t, "examId", detail.Field)
	assert.Equal(t, ErrorSeverityWarning, detail.Severity)
}

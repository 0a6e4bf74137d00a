package schema

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmuriuki/campusreg/internal/app/models"
)

func TestParseExamFiltersDefaults(t *testing.T) {
	f, errs := ParseExamFilters(url.Values{})
	require.Nil(t, errs)
	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Nil(t, f.Status)
	assert.Equal(t, 0, f.Offset())
}

func TestParseExamFiltersPagination(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		page  int
		limit int
		errAt string
	}{
		{"explicit values", url.Values{"page": {"3"}, "limit": {"25"}}, 3, 25, ""},
		{"empty strings take defaults", url.Values{"page": {""}, "limit": {""}}, 1, 10, ""},
		{"limit at cap", url.Values{"limit": {"100"}}, 1, 100, ""},
		{"limit above cap rejected", url.Values{"limit": {"500"}}, 0, 0, "limit"},
		{"zero page rejected", url.Values{"page": {"0"}}, 0, 0, "page"},
		{"negative page rejected", url.Values{"page": {"-2"}}, 0, 0, "page"},
		{"non-numeric page rejected", url.Values{"page": {"abc"}}, 0, 0, "page"},
		{"non-numeric limit rejected", url.Values{"limit": {"ten"}}, 0, 0, "limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, errs := ParseExamFilters(tt.query)
			if tt.errAt == "" {
				require.Nil(t, errs)
				assert.Equal(t, tt.page, f.Page)
				assert.Equal(t, tt.limit, f.Limit)
				assert.GreaterOrEqual(t, f.Page, 1)
				assert.GreaterOrEqual(t, f.Limit, 1)
				assert.LessOrEqual(t, f.Limit, MaxLimit)
			} else {
				require.NotNil(t, errs)
				assert.True(t, errs.Has(tt.errAt))
				assert.Nil(t, f)
			}
		})
	}
}

func TestParseExamFiltersStatusEnum(t *testing.T) {
	f, errs := ParseExamFilters(url.Values{"status": {"PUBLISHED"}})
	require.Nil(t, errs)
	require.NotNil(t, f.Status)
	assert.Equal(t, models.ExamStatusPublished, *f.Status)

	_, errs = ParseExamFilters(url.Values{"status": {"OPEN"}})
	require.NotNil(t, errs)
	assert.Equal(t, KindInvalidEnum, errs.First("status").Kind)
}

func TestParseExamFiltersPassthrough(t *testing.T) {
	f, errs := ParseExamFilters(url.Values{
		"department": {"dept-001"},
		"session":    {"sess-001"},
		"examType":   {"Final Exam"},
		"q":          {"data structures"},
	})
	require.Nil(t, errs)
	assert.Equal(t, "dept-001", f.Department)
	assert.Equal(t, "sess-001", f.Session)
	assert.Equal(t, "Final Exam", f.ExamType)
	assert.Equal(t, "data structures", f.Query)
}

func TestParseStudentFilters(t *testing.T) {
	f, errs := ParseStudentFilters(url.Values{
		"studentType": {"SELF_SPONSORED"},
		"class":       {"1A"},
		"page":        {"2"},
	})
	require.Nil(t, errs)
	require.NotNil(t, f.StudentType)
	assert.Equal(t, models.StudentTypeSelfSponsored, *f.StudentType)
	assert.Equal(t, "1A", f.Class)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 10, f.Offset())

	_, errs = ParseStudentFilters(url.Values{"studentType": {"SPONSORED"}})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("studentType"))
}

func TestParseHolidayReportFilters(t *testing.T) {
	f, errs := ParseHolidayReportFilters(url.Values{
		"status":        {"PENDING"},
		"priorityLevel": {"Urgent"},
		"studentId":     {"stu-001"},
	})
	require.Nil(t, errs)
	require.NotNil(t, f.Status)
	assert.Equal(t, models.HolidayStatusPending, *f.Status)
	require.NotNil(t, f.PriorityLevel)
	assert.Equal(t, models.PriorityUrgent, *f.PriorityLevel)
	assert.Equal(t, "stu-001", f.StudentID)

	// both enum filters invalid: both reported in one pass
	_, errs = ParseHolidayReportFilters(url.Values{
		"status":        {"WAITING"},
		"priorityLevel": {"Critical"},
	})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("status"))
	assert.True(t, errs.Has("priorityLevel"))
}

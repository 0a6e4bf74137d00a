package schema

import (
	"net/url"
	"strconv"

	"github.com/kmuriuki/campusreg/internal/app/models"
)

// Pagination defaults and bounds for list endpoints
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination holds validated list-query paging. A validated value always
// satisfies Page >= 1 and 1 <= Limit <= MaxLimit, so callers never
// re-check bounds.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Offset returns the 0-based row offset for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// parsePagination validates page and limit query parameters. Absent or
// empty parameters take the defaults; a present value that is not a
// number or falls outside bounds is rejected rather than clamped,
// consistent with the other range checks.
func parsePagination(c *Checker, q url.Values) Pagination {
	p := Pagination{Page: DefaultPage, Limit: DefaultLimit}

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			c.Add("page", "Page must be a number", KindInvalidFormat)
		case n < 1:
			c.Add("page", "Page must be greater than 0", KindOutOfRange)
		default:
			p.Page = n
		}
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			c.Add("limit", "Limit must be a number", KindInvalidFormat)
		case n < 1:
			c.Add("limit", "Limit must be greater than 0", KindOutOfRange)
		case n > MaxLimit:
			c.Add("limit", "Limit must be at most 100", KindOutOfRange)
		default:
			p.Limit = n
		}
	}
	return p
}

// ExamFilters holds validated list-query parameters for exams.
type ExamFilters struct {
	Department string
	Session    string
	ExamType   string
	Query      string
	Status     *models.ExamStatus
	Pagination
}

// ParseExamFilters validates exam listing query parameters.
func ParseExamFilters(q url.Values) (*ExamFilters, Errors) {
	var c Checker
	f := &ExamFilters{
		Department: q.Get("department"),
		Session:    q.Get("session"),
		ExamType:   q.Get("examType"),
		Query:      q.Get("q"),
	}
	f.Status, _ = OptionalEnum(&c, "status", q.Get("status"), models.ExamStatusValues(), "exam status")
	f.Pagination = parsePagination(&c, q)
	if errs := c.Errs(); errs != nil {
		return nil, errs
	}
	return f, nil
}

// StudentFilters holds validated list-query parameters for students.
type StudentFilters struct {
	Department  string
	Class       string
	Session     string
	StudentType *models.StudentType
	Query       string
	Pagination
}

// ParseStudentFilters validates student listing query parameters.
func ParseStudentFilters(q url.Values) (*StudentFilters, Errors) {
	var c Checker
	f := &StudentFilters{
		Department: q.Get("department"),
		Class:      q.Get("class"),
		Session:    q.Get("session"),
		Query:      q.Get("q"),
	}
	f.StudentType, _ = OptionalEnum(&c, "studentType", q.Get("studentType"), models.StudentTypeValues(), "student type")
	f.Pagination = parsePagination(&c, q)
	if errs := c.Errs(); errs != nil {
		return nil, errs
	}
	return f, nil
}

// HolidayReportFilters holds validated list-query parameters for holiday reports.
type HolidayReportFilters struct {
	Status        *models.HolidayStatus
	PriorityLevel *models.PriorityLevel
	HolidayType   string
	StudentID     string
	Query         string
	Pagination
}

// ParseHolidayReportFilters validates holiday report listing query parameters.
func ParseHolidayReportFilters(q url.Values) (*HolidayReportFilters, Errors) {
	var c Checker
	f := &HolidayReportFilters{
		HolidayType: q.Get("holidayType"),
		StudentID:   q.Get("studentId"),
		Query:       q.Get("q"),
	}
	f.Status, _ = OptionalEnum(&c, "status", q.Get("status"), models.HolidayStatusValues(), "holiday status")
	f.PriorityLevel, _ = OptionalEnum(&c, "priorityLevel", q.Get("priorityLevel"), models.PriorityLevelValues(), "priority level")
	f.Pagination = parsePagination(&c, q)
	if errs := c.Errs(); errs != nil {
		return nil, errs
	}
	return f, nil
}

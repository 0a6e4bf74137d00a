package schema

import (
	"time"

	"github.com/kmuriuki/campusreg/internal/app/models"
)

// MinReasonLength is the minimum length of a holiday report reason
const MinReasonLength = 10

// HolidayReportForm carries a holiday leave submission from the student form.
type HolidayReportForm struct {
	HolidayType           string `json:"holidayType" form:"holidayType"`
	PriorityLevel         string `json:"priorityLevel" form:"priorityLevel"`
	StartDate             string `json:"startDate" form:"startDate"`
	ExpectedReturnDate    string `json:"expectedReturnDate" form:"expectedReturnDate"`
	Destination           string `json:"destination" form:"destination"`
	Reason                string `json:"reason" form:"reason"`
	EmergencyContactName  string `json:"emergencyContactName" form:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone" form:"emergencyContactPhone"`
}

// Validate checks every field plus the two date refinements: the expected
// return must fall after the start, and the start must not be in the past
// (date precision). An omitted priority level defaults to Normal.
func (f *HolidayReportForm) Validate(now time.Time) (*models.HolidayReport, Errors) {
	var c Checker

	c.Required("holidayType", f.HolidayType, "Holiday type is required")
	priority := models.PriorityNormal
	if f.PriorityLevel != "" {
		p, ok := Enum(&c, "priorityLevel", f.PriorityLevel, models.PriorityLevelValues(), "priority level")
		if ok {
			priority = p
		}
	}
	startDate, startOK := c.Date("startDate", f.StartDate, "Start date is required")
	returnDate, returnOK := c.Date("expectedReturnDate", f.ExpectedReturnDate, "Expected return date is required")
	c.Required("destination", f.Destination, "Destination is required")
	c.MinLen("reason", f.Reason, MinReasonLength, "Reason must be at least 10 characters")
	var contactPhone *string
	if f.EmergencyContactPhone != "" {
		contactPhone = &f.EmergencyContactPhone
	}
	c.OptionalPhone("emergencyContactPhone", contactPhone)

	if startOK && returnOK && !returnDate.After(startDate) {
		c.Add("expectedReturnDate", "Expected return date must be after start date", KindCrossField)
	}
	if startOK && startDate.Before(DateOnly(now)) {
		c.Add("startDate", "Start date cannot be in the past", KindCrossField)
	}

	if errs := c.Errs(); errs != nil {
		return nil, errs
	}

	report := &models.HolidayReport{
		HolidayType:        f.HolidayType,
		PriorityLevel:      &priority,
		StartDate:          startDate,
		ExpectedReturnDate: returnDate,
		Destination:        f.Destination,
		Reason:             f.Reason,
	}
	if f.EmergencyContactName != "" {
		report.EmergencyContactName = &f.EmergencyContactName
	}
	report.EmergencyContactPhone = contactPhone
	return report, nil
}

// InsertHolidayReport is the API-side variant with typed dates, used when
// a report is created on behalf of a student rather than from the form.
// Unlike the form it allows back-dated reports, so only the return-after-
// start refinement applies.
type InsertHolidayReport struct {
	StudentID             string        `json:"studentId"`
	HolidayType           string        `json:"holidayType"`
	PriorityLevel         string        `json:"priorityLevel"`
	StartDate             time.Time     `json:"startDate"`
	ExpectedReturnDate    time.Time     `json:"expectedReturnDate"`
	Destination           string        `json:"destination"`
	Reason                string        `json:"reason"`
	EmergencyContactName  string        `json:"emergencyContactName"`
	EmergencyContactPhone string        `json:"emergencyContactPhone"`
	SupportingDocuments   models.DocumentSet `json:"supportingDocuments"`
}

// Validate checks the insert variant and returns the normalized report.
func (f *InsertHolidayReport) Validate() (*models.HolidayReport, Errors) {
	var c Checker

	c.Required("holidayType", f.HolidayType, "Holiday type is required")
	priority := models.PriorityNormal
	if f.PriorityLevel != "" {
		p, ok := Enum(&c, "priorityLevel", f.PriorityLevel, models.PriorityLevelValues(), "priority level")
		if ok {
			priority = p
		}
	}
	if f.StartDate.IsZero() {
		c.Add("startDate", "Start date is required", KindRequired)
	}
	if f.ExpectedReturnDate.IsZero() {
		c.Add("expectedReturnDate", "Expected return date is required", KindRequired)
	}
	c.Required("destination", f.Destination, "Destination is required")
	c.MinLen("reason", f.Reason, MinReasonLength, "Reason must be at least 10 characters")
	var contactPhone *string
	if f.EmergencyContactPhone != "" {
		contactPhone = &f.EmergencyContactPhone
	}
	c.OptionalPhone("emergencyContactPhone", contactPhone)

	if !f.StartDate.IsZero() && !f.ExpectedReturnDate.IsZero() &&
		!DateOnly(f.ExpectedReturnDate).After(DateOnly(f.StartDate)) {
		c.Add("expectedReturnDate", "Expected return date must be after start date", KindCrossField)
	}

	if errs := c.Errs(); errs != nil {
		return nil, errs
	}

	report := &models.HolidayReport{
		HolidayType:         f.HolidayType,
		PriorityLevel:       &priority,
		StartDate:           DateOnly(f.StartDate),
		ExpectedReturnDate:  DateOnly(f.ExpectedReturnDate),
		Destination:         f.Destination,
		Reason:              f.Reason,
		SupportingDocuments: f.SupportingDocuments,
	}
	if f.StudentID != "" {
		report.StudentID = &f.StudentID
	}
	if f.EmergencyContactName != "" {
		report.EmergencyContactName = &f.EmergencyContactName
	}
	report.EmergencyContactPhone = contactPhone
	return report, nil
}

package schema

import (
	"github.com/kmuriuki/campusreg/internal/app/models"
)

// ExamCreationForm carries an exam scheduling submission.
type ExamCreationForm struct {
	Title                string   `json:"title" form:"title"`
	CourseCode           string   `json:"courseCode" form:"courseCode"`
	Description          string   `json:"description" form:"description"`
	ExamType             string   `json:"examType" form:"examType"`
	DepartmentID         string   `json:"departmentId" form:"departmentId"`
	SessionID            string   `json:"sessionId" form:"sessionId"`
	ExamDate             string   `json:"examDate" form:"examDate"`
	StartTime            string   `json:"startTime" form:"startTime"`
	EndTime              string   `json:"endTime" form:"endTime"`
	Room                 string   `json:"room" form:"room"`
	MaxCapacity          *int     `json:"maxCapacity" form:"maxCapacity"`
	RegistrationDeadline string   `json:"registrationDeadline" form:"registrationDeadline"`
	RegistrationFee      *float64 `json:"registrationFee" form:"registrationFee"`
}

// Validate checks every field plus the two scheduling refinements:
// startTime < endTime and registrationDeadline < examDate. The returned
// exam has normalized (zero-padded) times and DRAFT status; ID and
// timestamps are filled in by the service layer.
func (f *ExamCreationForm) Validate() (*models.Exam, Errors) {
	var c Checker

	c.Required("title", f.Title, "Exam title is required")
	c.Required("courseCode", f.CourseCode, "Course code is required")
	c.Required("examType", f.ExamType, "Exam type is required")
	c.Required("departmentId", f.DepartmentID, "Department is required")
	c.Required("sessionId", f.SessionID, "Session is required")
	examDate, dateOK := c.Date("examDate", f.ExamDate, "Exam date is required")
	startTime, startOK := c.TimeOfDay("startTime", f.StartTime)
	endTime, endOK := c.TimeOfDay("endTime", f.EndTime)
	c.PositiveInt("maxCapacity", f.MaxCapacity, "Max capacity")
	deadline, deadlineOK := c.Date("registrationDeadline", f.RegistrationDeadline, "Registration deadline is required")
	c.NonNegative("registrationFee", f.RegistrationFee, "Registration fee")

	// Refinements are skipped for fields that already failed so a bad
	// time string never produces a misleading ordering error on top.
	if startOK && endOK && startTime >= endTime {
		c.Add("endTime", "End time must be after start time", KindCrossField)
	}
	if dateOK && deadlineOK && !deadline.Before(examDate) {
		c.Add("registrationDeadline", "Registration deadline must be before exam date", KindCrossField)
	}

	if errs := c.Errs(); errs != nil {
		return nil, errs
	}

	status := models.ExamStatusDraft
	exam := &models.Exam{
		Title:                f.Title,
		CourseCode:           f.CourseCode,
		ExamType:             f.ExamType,
		DepartmentID:         &f.DepartmentID,
		SessionID:            &f.SessionID,
		ExamDate:             examDate,
		StartTime:            startTime,
		EndTime:              endTime,
		MaxCapacity:          f.MaxCapacity,
		RegistrationDeadline: deadline,
		RegistrationFee:      f.RegistrationFee,
		Status:               &status,
	}
	if f.Description != "" {
		exam.Description = &f.Description
	}
	if f.Room != "" {
		exam.Room = &f.Room
	}
	return exam, nil
}

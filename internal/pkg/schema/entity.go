package schema

import (
	"github.com/kmuriuki/campusreg/internal/app/models"
)

// Entity validators check fully-typed records with the same rule set the
// form schemas use, so a record accepted from a form re-validates clean
// when it is read back or mutated. Services call these before updates
// that bypass the form path.

// ValidateUser checks a user account record.
func ValidateUser(u *models.User) Errors {
	var c Checker
	if u.Email != nil && *u.Email != "" {
		c.Email("email", *u.Email)
	}
	if u.FirstName != nil {
		c.Required("firstName", *u.FirstName, "First name is required")
	}
	if u.LastName != nil {
		c.Required("lastName", *u.LastName, "Last name is required")
	}
	if u.Role != nil {
		Enum(&c, "role", string(*u.Role), models.UserRoleValues(), "role")
	}
	return c.Errs()
}

// ValidateDepartment checks a department record.
func ValidateDepartment(d *models.Department) Errors {
	var c Checker
	c.Required("name", d.Name, "Department name is required")
	return c.Errs()
}

// ValidateAcademicSession checks an academic session record.
func ValidateAcademicSession(s *models.AcademicSession) Errors {
	var c Checker
	c.Required("name", s.Name, "Session name is required")
	if s.StartDate.IsZero() {
		c.Add("startDate", "Start date is required", KindRequired)
	}
	if s.EndDate.IsZero() {
		c.Add("endDate", "End date is required", KindRequired)
	}
	if !s.StartDate.IsZero() && !s.EndDate.IsZero() && !s.EndDate.After(s.StartDate) {
		c.Add("endDate", "End date must be after start date", KindCrossField)
	}
	return c.Errs()
}

// ValidateStudent checks a full student record.
func ValidateStudent(s *models.Student) Errors {
	var c Checker
	c.Required("studentNo", s.StudentNo, "Student number is required")
	c.Required("studentName", s.StudentName, "Student name is required")
	Enum(&c, "studentType", string(s.StudentType), models.StudentTypeValues(), "student type")
	c.Required("birthCertNo", s.BirthCertNo, "Birth certificate number is required")
	if s.BirthDate.IsZero() {
		c.Add("birthDate", "Birth date is required", KindRequired)
	}
	c.Required("county", s.County, "County is required")
	c.Required("subCounty", s.SubCounty, "Sub-county is required")
	Enum(&c, "gender", string(s.Gender), models.GenderValues(), "gender")
	c.Required("nationality", s.Nationality, "Nationality is required")
	c.Phone("phoneNumber", s.PhoneNumber)
	c.Email("email", s.Email)
	c.Required("class", s.Class, "Class is required")
	c.Required("session", s.Session, "Session is required")
	c.Required("programme", s.Programme, "Programme is required")
	return c.Errs()
}

// ValidateExam checks a full exam record, including the scheduling
// refinements shared with the creation form.
func ValidateExam(e *models.Exam) Errors {
	var c Checker
	c.Required("title", e.Title, "Exam title is required")
	c.Required("courseCode", e.CourseCode, "Course code is required")
	c.Required("examType", e.ExamType, "Exam type is required")
	if e.ExamDate.IsZero() {
		c.Add("examDate", "Exam date is required", KindRequired)
	}
	startTime, startOK := c.TimeOfDay("startTime", e.StartTime)
	endTime, endOK := c.TimeOfDay("endTime", e.EndTime)
	c.PositiveInt("maxCapacity", e.MaxCapacity, "Max capacity")
	if e.RegistrationDeadline.IsZero() {
		c.Add("registrationDeadline", "Registration deadline is required", KindRequired)
	}
	c.NonNegative("registrationFee", e.RegistrationFee, "Registration fee")
	if e.Status != nil {
		Enum(&c, "status", string(*e.Status), models.ExamStatusValues(), "exam status")
	}

	if startOK && endOK && startTime >= endTime {
		c.Add("endTime", "End time must be after start time", KindCrossField)
	}
	if !e.ExamDate.IsZero() && !e.RegistrationDeadline.IsZero() &&
		!e.RegistrationDeadline.Before(e.ExamDate) {
		c.Add("registrationDeadline", "Registration deadline must be before exam date", KindCrossField)
	}
	return c.Errs()
}

// ValidateExamRegistration checks an exam registration record.
func ValidateExamRegistration(r *models.ExamRegistration) Errors {
	var c Checker
	c.Required("examId", r.ExamID, "Exam is required")
	if r.Status != nil {
		Enum(&c, "status", string(*r.Status), models.RegistrationStatusValues(), "registration status")
	}
	return c.Errs()
}

// ValidateHolidayReport checks a full holiday report record. The past-date
// refinement is a creation-form rule only and is deliberately absent here,
// so a stored report whose leave has since begun still validates.
func ValidateHolidayReport(h *models.HolidayReport) Errors {
	var c Checker
	c.Required("holidayType", h.HolidayType, "Holiday type is required")
	if h.PriorityLevel != nil {
		Enum(&c, "priorityLevel", string(*h.PriorityLevel), models.PriorityLevelValues(), "priority level")
	}
	if h.StartDate.IsZero() {
		c.Add("startDate", "Start date is required", KindRequired)
	}
	if h.ExpectedReturnDate.IsZero() {
		c.Add("expectedReturnDate", "Expected return date is required", KindRequired)
	}
	c.Required("destination", h.Destination, "Destination is required")
	c.MinLen("reason", h.Reason, MinReasonLength, "Reason must be at least 10 characters")
	c.OptionalPhone("emergencyContactPhone", h.EmergencyContactPhone)
	if h.Status != nil {
		Enum(&c, "status", string(*h.Status), models.HolidayStatusValues(), "holiday status")
	}

	if !h.StartDate.IsZero() && !h.ExpectedReturnDate.IsZero() &&
		!h.ExpectedReturnDate.After(h.StartDate) {
		c.Add("expectedReturnDate", "Expected return date must be after start date", KindCrossField)
	}
	return c.Errs()
}

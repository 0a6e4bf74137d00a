package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmuriuki/campusreg/internal/app/models"
)

// fixed clock for time-sensitive refinements
var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func validStudentForm() StudentRegistrationForm {
	return StudentRegistrationForm{
		StudentName:  "Wanjiku Kamau",
		StudentNo:    "SC/2025/0042",
		StudentType:  "KUCCPS",
		BirthCertNo:  "BC-884213",
		BirthDate:    "2004-03-12",
		County:       "Nakuru",
		SubCounty:    "Naivasha",
		Gender:       "Female",
		Nationality:  "Kenyan",
		PhoneNumber:  "+254712345678",
		Email:        "wanjiku.kamau@example.com",
		Class:        "1A",
		Session:      "2025/2026",
		Programme:    "Computer Science",
		DepartmentID: "dept-001",
	}
}

func TestStudentRegistrationFormAccepts(t *testing.T) {
	form := validStudentForm()
	student, errs := form.Validate(testNow)
	require.Nil(t, errs)
	require.NotNil(t, student)

	assert.Equal(t, models.StudentTypeKUCCPS, student.StudentType)
	assert.Equal(t, models.GenderFemale, student.Gender)
	assert.Equal(t, time.Date(2004, 3, 12, 0, 0, 0, 0, time.UTC), student.BirthDate)
	require.NotNil(t, student.DepartmentID)
	assert.Equal(t, "dept-001", *student.DepartmentID)
	assert.Nil(t, student.KCPEIndex)
}

func TestStudentRegistrationFormAgeBounds(t *testing.T) {
	tests := []struct {
		name      string
		birthYear int
		ok        bool
	}{
		{"age 16 lower bound", 2009, true},
		{"age 35 upper bound", 1990, true},
		{"age 15 too young", 2010, false},
		{"age 36 too old", 1989, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validStudentForm()
			form.BirthDate = time.Date(tt.birthYear, 7, 1, 0, 0, 0, 0, time.UTC).Format(DateLayout)
			_, errs := form.Validate(testNow)
			if tt.ok {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				err := errs.First("birthDate")
				require.NotNil(t, err)
				assert.Equal(t, KindCrossField, err.Kind)
			}
		})
	}
}

func TestStudentRegistrationFormCollectsAllErrors(t *testing.T) {
	form := StudentRegistrationForm{}
	_, errs := form.Validate(testNow)
	require.NotNil(t, errs)

	// every required field reported in one pass
	for _, path := range []string{
		"studentName", "studentNo", "studentType", "birthCertNo", "birthDate",
		"county", "subCounty", "gender", "nationality", "phoneNumber",
		"email", "class", "session", "programme", "departmentId",
	} {
		assert.True(t, errs.Has(path), "expected error at %s", path)
	}

	// the age refinement depends on birthDate, which is invalid, so it
	// must be skipped: the only birthDate error is the required one
	birthErr := errs.First("birthDate")
	require.NotNil(t, birthErr)
	assert.Equal(t, KindRequired, birthErr.Kind)
}

func TestStudentRegistrationFormOptionalFreeText(t *testing.T) {
	form := validStudentForm()
	form.KCSEIndex = "30412007001/2023"
	form.PreviousInstitution = "Naivasha High School"
	student, errs := form.Validate(testNow)
	require.Nil(t, errs)
	require.NotNil(t, student.KCSEIndex)
	assert.Equal(t, "30412007001/2023", *student.KCSEIndex)
	require.NotNil(t, student.PreviousInstitution)
	assert.Nil(t, student.KCPEIndex)
}

func validExamForm() ExamCreationForm {
	seats := 120
	fee := 500.0
	return ExamCreationForm{
		Title:                "Data Structures Final",
		CourseCode:           "CSC 201",
		ExamType:             "Final Exam",
		DepartmentID:         "dept-001",
		SessionID:            "sess-001",
		ExamDate:             "2025-12-15",
		StartTime:            "09:00",
		EndTime:              "12:00",
		Room:                 "LT-4",
		MaxCapacity:          &seats,
		RegistrationDeadline: "2025-12-10",
		RegistrationFee:      &fee,
	}
}

func TestExamCreationFormAccepts(t *testing.T) {
	form := validExamForm()
	exam, errs := form.Validate()
	require.Nil(t, errs)
	require.NotNil(t, exam)

	assert.Equal(t, "09:00", exam.StartTime)
	assert.Equal(t, "12:00", exam.EndTime)
	require.NotNil(t, exam.Status)
	assert.Equal(t, models.ExamStatusDraft, *exam.Status)
	assert.Equal(t, time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), exam.ExamDate)
}

func TestExamCreationFormTimeOrdering(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		ok         bool
	}{
		{"start before end", "09:00", "12:00", true},
		{"equal times", "09:00", "09:00", false},
		{"start after end", "10:00", "09:00", false},
		{"single-digit hour normalized", "9:00", "12:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validExamForm()
			form.StartTime = tt.start
			form.EndTime = tt.end
			_, errs := form.Validate()
			if tt.ok {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				err := errs.First("endTime")
				require.NotNil(t, err)
				assert.Equal(t, KindCrossField, err.Kind)
			}
		})
	}
}

func TestExamCreationFormDeadlineBeforeExamDate(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		examDate string
		ok       bool
	}{
		{"deadline before exam", "2025-12-10", "2025-12-15", true},
		{"deadline equals exam date", "2025-12-15", "2025-12-15", false},
		{"deadline after exam", "2025-12-16", "2025-12-15", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validExamForm()
			form.RegistrationDeadline = tt.deadline
			form.ExamDate = tt.examDate
			_, errs := form.Validate()
			if tt.ok {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				err := errs.First("registrationDeadline")
				require.NotNil(t, err)
				assert.Equal(t, KindCrossField, err.Kind)
			}
		})
	}
}

func TestExamCreationFormSkipsRefinementOnBadTime(t *testing.T) {
	form := validExamForm()
	form.StartTime = "25:00"
	_, errs := form.Validate()
	require.NotNil(t, errs)

	err := errs.First("startTime")
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidFormat, err.Kind)
	// ordering refinement skipped: no cascading endTime error
	assert.False(t, errs.Has("endTime"))
}

func validHolidayForm() HolidayReportForm {
	return HolidayReportForm{
		HolidayType:        "Medical Leave",
		StartDate:          "2025-07-01",
		ExpectedReturnDate: "2025-07-10",
		Destination:        "Eldoret",
		Reason:             "Scheduled surgery and recovery at home",
	}
}

func TestHolidayReportFormAccepts(t *testing.T) {
	form := validHolidayForm()
	report, errs := form.Validate(testNow)
	require.Nil(t, errs)
	require.NotNil(t, report)

	// priority defaults to Normal when omitted
	require.NotNil(t, report.PriorityLevel)
	assert.Equal(t, models.PriorityNormal, *report.PriorityLevel)
}

func TestHolidayReportFormReturnAfterStart(t *testing.T) {
	tests := []struct {
		name string
		ret  string
		ok   bool
	}{
		{"return after start", "2025-07-05", true},
		{"return equals start", "2025-07-01", false},
		{"return before start", "2025-06-28", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validHolidayForm()
			form.StartDate = "2025-07-01"
			form.ExpectedReturnDate = tt.ret
			_, errs := form.Validate(testNow)
			if tt.ok {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				err := errs.First("expectedReturnDate")
				require.NotNil(t, err)
				assert.Equal(t, KindCrossField, err.Kind)
			}
		})
	}
}

func TestHolidayReportFormRejectsPastStart(t *testing.T) {
	form := validHolidayForm()
	form.StartDate = "2025-06-14" // the day before testNow
	form.ExpectedReturnDate = "2025-06-20"
	_, errs := form.Validate(testNow)
	require.NotNil(t, errs)
	err := errs.First("startDate")
	require.NotNil(t, err)
	assert.Equal(t, KindCrossField, err.Kind)

	// starting today is allowed: the check is date precision, not instant
	form.StartDate = "2025-06-15"
	_, errs = form.Validate(testNow)
	assert.Nil(t, errs)
}

func TestHolidayReportFormReasonLength(t *testing.T) {
	form := validHolidayForm()
	form.Reason = "too short"
	_, errs := form.Validate(testNow)
	require.NotNil(t, errs)
	err := errs.First("reason")
	require.NotNil(t, err)
	assert.Equal(t, KindTooShort, err.Kind)

	// An absent reason is a missing field, not a short one; the message
	// stays the same either way.
	form.Reason = ""
	_, errs = form.Validate(testNow)
	require.NotNil(t, errs)
	err = errs.First("reason")
	require.NotNil(t, err)
	assert.Equal(t, KindRequired, err.Kind)
	assert.Equal(t, "Reason must be at least 10 characters", err.Message)
}

func TestHolidayReportFormPriorityEnum(t *testing.T) {
	form := validHolidayForm()
	form.PriorityLevel = "Critical"
	_, errs := form.Validate(testNow)
	require.NotNil(t, errs)
	assert.Equal(t, KindInvalidEnum, errs.First("priorityLevel").Kind)

	form.PriorityLevel = "Emergency"
	report, errs := form.Validate(testNow)
	require.Nil(t, errs)
	assert.Equal(t, models.PriorityEmergency, *report.PriorityLevel)
}

func TestInsertHolidayReportAllowsPastStart(t *testing.T) {
	// the API variant has no past-date rule, only return-after-start
	ins := InsertHolidayReport{
		StudentID:          "stu-001",
		HolidayType:        "Family Emergency",
		StartDate:          time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		ExpectedReturnDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		Destination:        "Kisumu",
		Reason:             "Bereavement in the immediate family",
	}
	report, errs := ins.Validate()
	require.Nil(t, errs)
	require.NotNil(t, report.StudentID)
	assert.Equal(t, "stu-001", *report.StudentID)

	ins.ExpectedReturnDate = ins.StartDate
	_, errs = ins.Validate()
	require.NotNil(t, errs)
	assert.Equal(t, KindCrossField, errs.First("expectedReturnDate").Kind)
}

func TestValidationIdempotence(t *testing.T) {
	// an accepted record fed back through entity validation passes again
	form := validStudentForm()
	student, errs := form.Validate(testNow)
	require.Nil(t, errs)
	assert.Nil(t, ValidateStudent(student))

	examForm := validExamForm()
	exam, errs := examForm.Validate()
	require.Nil(t, errs)
	assert.Nil(t, ValidateExam(exam))

	holidayForm := validHolidayForm()
	report, errs := holidayForm.Validate(testNow)
	require.Nil(t, errs)
	assert.Nil(t, ValidateHolidayReport(report))
}

func TestValidateAcademicSession(t *testing.T) {
	s := &models.AcademicSession{
		Name:      "2025/2026 Term 1",
		StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC),
	}
	assert.Nil(t, ValidateAcademicSession(s))

	s.EndDate = s.StartDate
	errs := ValidateAcademicSession(s)
	require.NotNil(t, errs)
	assert.Equal(t, KindCrossField, errs.First("endDate").Kind)
}

func TestValidateUser(t *testing.T) {
	email := "admin@example.com"
	role := models.RoleAdmin
	u := &models.User{Email: &email, Role: &role}
	assert.Nil(t, ValidateUser(u))

	badRole := models.UserRole("OWNER")
	u.Role = &badRole
	errs := ValidateUser(u)
	require.NotNil(t, errs)
	assert.Equal(t, KindInvalidEnum, errs.First("role").Kind)
}

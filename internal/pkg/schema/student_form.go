package schema

import (
	"time"

	"github.com/kmuriuki/campusreg/internal/app/models"
)

// Age eligibility bounds for student registration
const (
	MinRegistrationAge = 16
	MaxRegistrationAge = 35
)

// StudentRegistrationForm carries a student onboarding submission.
// Dates arrive as strings because HTML forms transmit everything as text.
type StudentRegistrationForm struct {
	StudentName         string `json:"studentName" form:"studentName"`
	StudentNo           string `json:"studentNo" form:"studentNo"`
	StudentType         string `json:"studentType" form:"studentType"`
	BirthCertNo         string `json:"birthCertNo" form:"birthCertNo"`
	BirthDate           string `json:"birthDate" form:"birthDate"`
	County              string `json:"county" form:"county"`
	SubCounty           string `json:"subCounty" form:"subCounty"`
	Gender              string `json:"gender" form:"gender"`
	Nationality         string `json:"nationality" form:"nationality"`
	PhoneNumber         string `json:"phoneNumber" form:"phoneNumber"`
	Email               string `json:"email" form:"email"`
	Class               string `json:"class" form:"class"`
	Session             string `json:"session" form:"session"`
	Programme           string `json:"programme" form:"programme"`
	DepartmentID        string `json:"departmentId" form:"departmentId"`
	KCPEIndex           string `json:"kcpeIndex" form:"kcpeIndex"`
	KCSEIndex           string `json:"kcseIndex" form:"kcseIndex"`
	PreviousInstitution string `json:"previousInstitution" form:"previousInstitution"`
}

// Validate checks every field and the age-eligibility refinement, and
// returns the normalized student record. The caller supplies the current
// time; ID, documents and timestamps are filled in by the service layer.
func (f *StudentRegistrationForm) Validate(now time.Time) (*models.Student, Errors) {
	var c Checker

	c.Required("studentName", f.StudentName, "Student name is required")
	c.Required("studentNo", f.StudentNo, "Student number is required")
	studentType, _ := Enum(&c, "studentType", f.StudentType, models.StudentTypeValues(), "student type")
	c.Required("birthCertNo", f.BirthCertNo, "Birth certificate number is required")
	birthDate, birthOK := c.Date("birthDate", f.BirthDate, "Birth date is required")
	c.Required("county", f.County, "County is required")
	c.Required("subCounty", f.SubCounty, "Sub-county is required")
	gender, _ := Enum(&c, "gender", f.Gender, models.GenderValues(), "gender")
	c.Required("nationality", f.Nationality, "Nationality is required")
	c.Phone("phoneNumber", f.PhoneNumber)
	c.Email("email", f.Email)
	c.Required("class", f.Class, "Class is required")
	c.Required("session", f.Session, "Session is required")
	c.Required("programme", f.Programme, "Programme is required")
	c.Required("departmentId", f.DepartmentID, "Department is required")

	// Refinement: runs only when the birth date parsed clean, so a
	// malformed date never reaches the age computation.
	if birthOK {
		if age := AgeAt(birthDate, now); age < MinRegistrationAge || age > MaxRegistrationAge {
			c.Add("birthDate", "Age must be between 16 and 35 years", KindCrossField)
		}
	}

	if errs := c.Errs(); errs != nil {
		return nil, errs
	}

	student := &models.Student{
		StudentNo:    f.StudentNo,
		StudentName:  f.StudentName,
		StudentType:  studentType,
		BirthCertNo:  f.BirthCertNo,
		BirthDate:    birthDate,
		County:       f.County,
		SubCounty:    f.SubCounty,
		Gender:       gender,
		Nationality:  f.Nationality,
		PhoneNumber:  f.PhoneNumber,
		Email:        f.Email,
		Class:        f.Class,
		Session:      f.Session,
		Programme:    f.Programme,
		DepartmentID: &f.DepartmentID,
	}
	if f.KCPEIndex != "" {
		student.KCPEIndex = &f.KCPEIndex
	}
	if f.KCSEIndex != "" {
		student.KCSEIndex = &f.KCSEIndex
	}
	if f.PreviousInstitution != "" {
		student.PreviousInstitution = &f.PreviousInstitution
	}
	return student, nil
}

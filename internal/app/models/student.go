package models

import "time"

// Student defines a registered student record based on the 'students' table
type Student struct {
	ID                  string      `json:"id" db:"id"`
	UserID              *string     `json:"userId" db:"user_id"`
	StudentNo           string      `json:"studentNo" db:"student_no"`
	StudentName         string      `json:"studentName" db:"student_name"`
	StudentType         StudentType `json:"studentType" db:"student_type"`
	BirthCertNo         string      `json:"birthCertNo" db:"birth_cert_no"`
	BirthDate           time.Time   `json:"birthDate" db:"birth_date"`
	County              string      `json:"county" db:"county"`
	SubCounty           string      `json:"subCounty" db:"sub_county"`
	Gender              Gender      `json:"gender" db:"gender"`
	Nationality         string      `json:"nationality" db:"nationality"`
	PhoneNumber         string      `json:"phoneNumber" db:"phone_number"`
	Email               string      `json:"email" db:"email"`
	Class               string      `json:"class" db:"class"`
	Session             string      `json:"session" db:"session"`
	Programme           string      `json:"programme" db:"programme"`
	DepartmentID        *string     `json:"departmentId" db:"department_id"`
	KCPEIndex           *string     `json:"kcpeIndex" db:"kcpe_index"`
	KCSEIndex           *string     `json:"kcseIndex" db:"kcse_index"`
	PreviousInstitution *string     `json:"previousInstitution" db:"previous_institution"`
	Documents           DocumentSet `json:"documents" db:"documents"`
	CreatedAt           *time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt           *time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User       *User       `json:"user,omitempty"`
	Department *Department `json:"department,omitempty"`
}

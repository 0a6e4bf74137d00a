package models

// StudentType defines how a student was admitted
type StudentType string

const (
	StudentTypeKUCCPS        StudentType = "KUCCPS"
	StudentTypeSelfSponsored StudentType = "SELF_SPONSORED"
)

// StudentTypeValues returns the closed set of admission types
func StudentTypeValues() []StudentType {
	return []StudentType{StudentTypeKUCCPS, StudentTypeSelfSponsored}
}

// Gender defines the student gender options used on registration forms
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// GenderValues returns the closed set of gender options
func GenderValues() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// ExamStatus defines the lifecycle state of an exam
type ExamStatus string

const (
	ExamStatusDraft     ExamStatus = "DRAFT"
	ExamStatusPublished ExamStatus = "PUBLISHED"
	ExamStatusCompleted ExamStatus = "COMPLETED"
	ExamStatusCancelled ExamStatus = "CANCELLED"
)

// ExamStatusValues returns the closed set of exam statuses
func ExamStatusValues() []ExamStatus {
	return []ExamStatus{ExamStatusDraft, ExamStatusPublished, ExamStatusCompleted, ExamStatusCancelled}
}

// RegistrationStatus defines the state of an exam registration
type RegistrationStatus string

const (
	RegistrationStatusPending    RegistrationStatus = "PENDING"
	RegistrationStatusConfirmed  RegistrationStatus = "CONFIRMED"
	RegistrationStatusCancelled  RegistrationStatus = "CANCELLED"
	RegistrationStatusWaitlisted RegistrationStatus = "WAITLISTED"
)

// RegistrationStatusValues returns the closed set of registration statuses
func RegistrationStatusValues() []RegistrationStatus {
	return []RegistrationStatus{
		RegistrationStatusPending,
		RegistrationStatusConfirmed,
		RegistrationStatusCancelled,
		RegistrationStatusWaitlisted,
	}
}

// HolidayStatus defines the review state of a holiday report
type HolidayStatus string

const (
	HolidayStatusPending     HolidayStatus = "PENDING"
	HolidayStatusApproved    HolidayStatus = "APPROVED"
	HolidayStatusRejected    HolidayStatus = "REJECTED"
	HolidayStatusUnderReview HolidayStatus = "UNDER_REVIEW"
)

// HolidayStatusValues returns the closed set of holiday report statuses
func HolidayStatusValues() []HolidayStatus {
	return []HolidayStatus{HolidayStatusPending, HolidayStatusApproved, HolidayStatusRejected, HolidayStatusUnderReview}
}

// PriorityLevel defines the urgency of a holiday report
type PriorityLevel string

const (
	PriorityNormal    PriorityLevel = "Normal"
	PriorityUrgent    PriorityLevel = "Urgent"
	PriorityEmergency PriorityLevel = "Emergency"
)

// PriorityLevelValues returns the closed set of priority levels
func PriorityLevelValues() []PriorityLevel {
	return []PriorityLevel{PriorityNormal, PriorityUrgent, PriorityEmergency}
}

// UserRole defines the user role type
type UserRole string

const (
	RoleStudent    UserRole = "STUDENT"
	RoleAdmin      UserRole = "ADMIN"
	RoleStaff      UserRole = "STAFF"
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
)

// UserRoleValues returns the closed set of user roles
func UserRoleValues() []UserRole {
	return []UserRole{RoleStudent, RoleAdmin, RoleStaff, RoleSuperAdmin}
}

// HolidayTypes lists the leave categories offered on the holiday report form.
// Free text is still accepted; these drive the form dropdown.
var HolidayTypes = []string{
	"Medical Leave",
	"Family Emergency",
	"Personal Leave",
	"Academic Break",
	"Religious Holiday",
	"Other",
}

// ExamTypes lists the exam categories offered on the exam creation form.
var ExamTypes = []string{
	"Final Exam",
	"Mid-term Exam",
	"Quiz",
	"Practical Exam",
	"Oral Exam",
	"Project Defense",
}

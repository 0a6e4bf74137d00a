package models

import "time"

// Exam defines a scheduled examination students can register for.
// StartTime and EndTime are zero-padded 24h HH:MM strings so that
// lexicographic comparison matches chronological order.
type Exam struct {
	ID                   string      `json:"id" db:"id"`
	Title                string      `json:"title" db:"title"`
	CourseCode           string      `json:"courseCode" db:"course_code"`
	Description          *string     `json:"description" db:"description"`
	ExamType             string      `json:"examType" db:"exam_type"`
	DepartmentID         *string     `json:"departmentId" db:"department_id"`
	SessionID            *string     `json:"sessionId" db:"session_id"`
	ExamDate             time.Time   `json:"examDate" db:"exam_date"`
	StartTime            string      `json:"startTime" db:"start_time"`
	EndTime              string      `json:"endTime" db:"end_time"`
	Room                 *string     `json:"room" db:"room"`
	MaxCapacity          *int        `json:"maxCapacity" db:"max_capacity"`
	RegistrationDeadline time.Time   `json:"registrationDeadline" db:"registration_deadline"`
	RegistrationFee      *float64    `json:"registrationFee" db:"registration_fee"`
	Status               *ExamStatus `json:"status" db:"status"`
	CreatedAt            *time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            *time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Department *Department      `json:"department,omitempty"`
	Session    *AcademicSession `json:"session,omitempty"`

	// RegistrationCount is the number of non-cancelled registrations, populated on listings
	RegistrationCount int `json:"registrationCount,omitempty"`
}

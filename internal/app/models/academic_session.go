package models

import "time"

// AcademicSession represents a term or academic year exams are scheduled in
type AcademicSession struct {
	ID        string     `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	StartDate time.Time  `json:"startDate" db:"start_date"`
	EndDate   time.Time  `json:"endDate" db:"end_date"`
	IsActive  *bool      `json:"isActive" db:"is_active"`
	CreatedAt *time.Time `json:"createdAt" db:"created_at"`
}

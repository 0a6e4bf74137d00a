package models

import "time"

// Department represents an academic department students and exams belong to
type Department struct {
	ID          string     `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description" db:"description"`
	CreatedAt   *time.Time `json:"createdAt" db:"created_at"`
}

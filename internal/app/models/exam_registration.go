package models

import "time"

// ExamRegistration links a student to an exam they signed up for.
// At most one non-cancelled registration may exist per (student, exam) pair;
// the registration service enforces this before insert.
type ExamRegistration struct {
	ID            string              `json:"id" db:"id"`
	StudentID     *string             `json:"studentId" db:"student_id"`
	ExamID        string              `json:"examId" db:"exam_id"`
	Status        *RegistrationStatus `json:"status" db:"status"`
	RegisteredAt  *time.Time          `json:"registeredAt" db:"registered_at"`
	PaymentStatus *string             `json:"paymentStatus" db:"payment_status"`
	Notes         *string             `json:"notes" db:"notes"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Exam    *Exam    `json:"exam,omitempty"`
}

// IsActive reports whether the registration has not been cancelled.
func (r *ExamRegistration) IsActive() bool {
	return r != nil && (r.Status == nil || *r.Status != RegistrationStatusCancelled)
}

// HoldsSlot reports whether the registration occupies a capacity slot.
// Waitlisted registrations are active but hold no slot.
func (r *ExamRegistration) HoldsSlot() bool {
	if r == nil {
		return false
	}
	if r.Status == nil {
		return true
	}
	return *r.Status == RegistrationStatusPending || *r.Status == RegistrationStatusConfirmed
}

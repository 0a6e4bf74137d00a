package models

import "time"

// HolidayReport defines a student's leave-of-absence report.
// Reports start as PENDING and may only be edited or deleted by their
// owner while still PENDING; review moves them to APPROVED, REJECTED
// or UNDER_REVIEW and stamps the reviewer.
type HolidayReport struct {
	ID                    string         `json:"id" db:"id"`
	StudentID             *string        `json:"studentId" db:"student_id"`
	HolidayType           string         `json:"holidayType" db:"holiday_type"`
	PriorityLevel         *PriorityLevel `json:"priorityLevel" db:"priority_level"`
	StartDate             time.Time      `json:"startDate" db:"start_date"`
	ExpectedReturnDate    time.Time      `json:"expectedReturnDate" db:"expected_return_date"`
	Destination           string         `json:"destination" db:"destination"`
	Reason                string         `json:"reason" db:"reason"`
	EmergencyContactName  *string        `json:"emergencyContactName" db:"emergency_contact_name"`
	EmergencyContactPhone *string        `json:"emergencyContactPhone" db:"emergency_contact_phone"`
	SupportingDocuments   DocumentSet    `json:"supportingDocuments" db:"supporting_documents"`
	Status                *HolidayStatus `json:"status" db:"status"`
	SubmittedAt           *time.Time     `json:"submittedAt" db:"submitted_at"`
	ReviewedAt            *time.Time     `json:"reviewedAt" db:"reviewed_at"`
	ReviewedBy            *string        `json:"reviewedBy" db:"reviewed_by"`
	ReviewComments        *string        `json:"reviewComments" db:"review_comments"`

	// Relations (populated when needed)
	Student  *Student `json:"student,omitempty"`
	Reviewer *User    `json:"reviewer,omitempty"`
}

// IsPending reports whether the report is still awaiting review.
func (h *HolidayReport) IsPending() bool {
	return h != nil && (h.Status == nil || *h.Status == HolidayStatusPending)
}

// OwnedBy reports whether the report belongs to the given student.
func (h *HolidayReport) OwnedBy(studentID string) bool {
	return h != nil && h.StudentID != nil && *h.StudentID == studentID
}

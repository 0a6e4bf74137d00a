package dto

// CreateRegistrationRequest signs a student up for an exam
type CreateRegistrationRequest struct {
	StudentID string `json:"studentId" binding:"required" example:"7f6c1d4e-..."`
	ExamID    string `json:"examId" binding:"required" example:"b03e2a91-..."`
	Notes     string `json:"notes" example:"Needs front-row seating"`
}

// UpdateRegistrationStatusRequest moves a registration between states
type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED WAITLISTED" example:"CONFIRMED"`
}

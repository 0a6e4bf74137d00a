package dto

// UpdateExamStatusRequest moves an exam through its lifecycle
type UpdateExamStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT PUBLISHED COMPLETED CANCELLED" example:"PUBLISHED"`
}

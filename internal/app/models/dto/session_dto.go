package dto

// CreateSessionRequest carries a new academic session.
// Dates use the same plain date layout the forms submit.
type CreateSessionRequest struct {
	Name      string `json:"name" binding:"required" example:"2025/2026 Term 1"`
	StartDate string `json:"startDate" binding:"required" example:"2025-09-01"`
	EndDate   string `json:"endDate" binding:"required" example:"2025-12-05"`
	IsActive  *bool  `json:"isActive"`
}

// UpdateSessionRequest carries academic session changes
type UpdateSessionRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	IsActive  *bool  `json:"isActive"`
}

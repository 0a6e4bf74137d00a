package dto

// CreateDepartmentRequest carries a new department
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required" example:"Computer Science"`
	Description string `json:"description" example:"Undergraduate computing programmes"`
}

// UpdateDepartmentRequest carries department changes
type UpdateDepartmentRequest struct {
	Name        string `json:"name" binding:"required" example:"Computer Science"`
	Description string `json:"description"`
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/app/repositories"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	if strings.TrimSpace(department.Name) == "" {
		return apperrors.NewBadRequestError("department name cannot be empty")
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return err
	}
	return nil
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id string) (*models.Department, error) {
	if id == "" {
		return nil, apperrors.NewBadRequestError("department ID is required")
	}
	return s.departmentRepo.GetByID(ctx, id)
}

// GetAllDepartments retrieves all departments
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// UpdateDepartment updates an existing department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, department *models.Department) error {
	if department.ID == "" {
		return apperrors.NewBadRequestError("department ID is required")
	}
	if strings.TrimSpace(department.Name) == "" {
		return apperrors.NewBadRequestError("department name cannot be empty")
	}

	return s.departmentRepo.Update(ctx, department)
}

// DeleteDepartment deletes a department by ID. Departments with students
// or exams attached are refused.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewBadRequestError("department ID is required")
	}
	return s.departmentRepo.Delete(ctx, id)
}

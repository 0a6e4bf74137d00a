package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/app/repositories"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
	"github.com/kmuriuki/campusreg/internal/pkg/logger"
	"github.com/kmuriuki/campusreg/internal/pkg/schema"
)

// ExamService handles exam scheduling and lifecycle
type ExamService struct {
	examRepo       *repositories.ExamRepository
	departmentRepo *repositories.DepartmentRepository
	sessionRepo    *repositories.SessionRepository
}

// NewExamService creates a new exam service instance
func NewExamService(examRepo *repositories.ExamRepository, departmentRepo *repositories.DepartmentRepository, sessionRepo *repositories.SessionRepository) *ExamService {
	return &ExamService{
		examRepo:       examRepo,
		departmentRepo: departmentRepo,
		sessionRepo:    sessionRepo,
	}
}

// checkReferences verifies the department and session an exam points at.
func (s *ExamService) checkReferences(ctx context.Context, exam *models.Exam) (schema.Errors, error) {
	if exam.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *exam.DepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrDepartmentNotFound) {
				return schema.Errors{{Path: "departmentId", Message: "Department does not exist", Kind: schema.KindInvalidEnum}}, nil
			}
			return nil, err
		}
	}
	if exam.SessionID != nil {
		if _, err := s.sessionRepo.GetByID(ctx, *exam.SessionID); err != nil {
			if errors.Is(err, apperrors.ErrSessionNotFound) {
				return schema.Errors{{Path: "sessionId", Message: "Academic session does not exist", Kind: schema.KindInvalidEnum}}, nil
			}
			return nil, err
		}
	}
	return nil, nil
}

// CreateExam validates the creation form and schedules a new DRAFT exam.
func (s *ExamService) CreateExam(ctx context.Context, form *schema.ExamCreationForm) (*models.Exam, schema.Errors, error) {
	exam, fieldErrs := form.Validate()
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	fieldErrs, err := s.checkReferences(ctx, exam)
	if err != nil || fieldErrs != nil {
		return nil, fieldErrs, err
	}

	if err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, nil, err
	}

	logger.Info().Str("examId", exam.ID).Str("courseCode", exam.CourseCode).Msg("Exam scheduled")
	return exam, nil, nil
}

// GetExams retrieves a filtered page of exams with relations attached
func (s *ExamService) GetExams(ctx context.Context, filters *schema.ExamFilters) ([]*models.Exam, int64, error) {
	exams, total, err := s.examRepo.GetAll(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving exams: %w", err)
	}

	s.attachRelations(ctx, exams)
	return exams, total, nil
}

// GetExamByID retrieves an exam with relations attached
func (s *ExamService) GetExamByID(ctx context.Context, id string) (*models.Exam, error) {
	if id == "" {
		return nil, apperrors.NewBadRequestError("exam ID is required")
	}

	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.attachRelations(ctx, []*models.Exam{exam})
	return exam, nil
}

// UpdateExam revalidates the full form and rewrites the exam, keeping
// its current lifecycle status.
func (s *ExamService) UpdateExam(ctx context.Context, id string, form *schema.ExamCreationForm) (*models.Exam, schema.Errors, error) {
	existing, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	exam, fieldErrs := form.Validate()
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	fieldErrs, err = s.checkReferences(ctx, exam)
	if err != nil || fieldErrs != nil {
		return nil, fieldErrs, err
	}

	exam.ID = existing.ID
	exam.Status = existing.Status

	if err := s.examRepo.Update(ctx, exam); err != nil {
		return nil, nil, err
	}

	return exam, nil, nil
}

// UpdateExamStatus moves an exam through its lifecycle. Completed and
// cancelled exams stay where they are.
func (s *ExamService) UpdateExamStatus(ctx context.Context, id string, status models.ExamStatus) (*models.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if exam.Status != nil {
		switch *exam.Status {
		case models.ExamStatusCompleted, models.ExamStatusCancelled:
			return nil, apperrors.NewConflictError("exam lifecycle has already ended")
		}
	}

	if err := s.examRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	exam.Status = &status
	logger.Info().Str("examId", id).Str("status", string(status)).Msg("Exam status changed")
	return exam, nil
}

// DeleteExam removes an exam together with its registrations
func (s *ExamService) DeleteExam(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewBadRequestError("exam ID is required")
	}
	return s.examRepo.Delete(ctx, id)
}

func (s *ExamService) attachRelations(ctx context.Context, exams []*models.Exam) {
	deptCache := map[string]*models.Department{}
	sessionCache := map[string]*models.AcademicSession{}

	for _, exam := range exams {
		if exam.DepartmentID != nil {
			dept, ok := deptCache[*exam.DepartmentID]
			if !ok {
				var err error
				dept, err = s.departmentRepo.GetByID(ctx, *exam.DepartmentID)
				if err != nil {
					continue
				}
				deptCache[*exam.DepartmentID] = dept
			}
			exam.Department = dept
		}
		if exam.SessionID != nil {
			session, ok := sessionCache[*exam.SessionID]
			if !ok {
				var err error
				session, err = s.sessionRepo.GetByID(ctx, *exam.SessionID)
				if err != nil {
					continue
				}
				sessionCache[*exam.SessionID] = session
			}
			exam.Session = session
		}
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/app/repositories"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
	"github.com/kmuriuki/campusreg/internal/pkg/filestorage"
	"github.com/kmuriuki/campusreg/internal/pkg/logger"
	"github.com/kmuriuki/campusreg/internal/pkg/schema"
)

// StudentService handles student onboarding and records
type StudentService struct {
	studentRepo    *repositories.StudentRepository
	departmentRepo *repositories.DepartmentRepository
	userRepo       *repositories.UserRepository
	storage        filestorage.Storage
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, departmentRepo *repositories.DepartmentRepository, userRepo *repositories.UserRepository, storage filestorage.Storage) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		storage:        storage,
	}
}

// RegisterStudent validates a registration form and creates the student
// record. Field-level problems come back as schema.Errors; uniqueness and
// infrastructure failures come back as error.
func (s *StudentService) RegisterStudent(ctx context.Context, form *schema.StudentRegistrationForm, now time.Time) (*models.Student, schema.Errors, error) {
	student, fieldErrs := form.Validate(now)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	if student.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *student.DepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrDepartmentNotFound) {
				return nil, schema.Errors{{Path: "departmentId", Message: "Department does not exist", Kind: schema.KindInvalidEnum}}, nil
			}
			return nil, nil, err
		}
	}

	exists, err := s.studentRepo.StudentNoExists(ctx, student.StudentNo)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, apperrors.ErrStudentNoExists
	}

	exists, err = s.studentRepo.BirthCertExists(ctx, student.BirthCertNo)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, apperrors.ErrBirthCertExists
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, nil, err
	}

	logger.Info().Str("studentId", student.ID).Str("studentNo", student.StudentNo).Msg("Student registered")
	return student, nil, nil
}

// GetStudents retrieves a filtered page of students with their departments attached
func (s *StudentService) GetStudents(ctx context.Context, filters *schema.StudentFilters) ([]*models.Student, int64, error) {
	students, total, err := s.studentRepo.GetAll(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}

	s.attachDepartments(ctx, students)
	return students, total, nil
}

// GetStudentByID retrieves a student with its department attached
func (s *StudentService) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	if id == "" {
		return nil, apperrors.NewBadRequestError("student ID is required")
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.attachDepartments(ctx, []*models.Student{student})
	return student, nil
}

// GetStudentByUserID retrieves the student record linked to a portal account
func (s *StudentService) GetStudentByUserID(ctx context.Context, userID string) (*models.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.attachDepartments(ctx, []*models.Student{student})
	return student, nil
}

// UpdateStudent revalidates the full form and rewrites the record.
func (s *StudentService) UpdateStudent(ctx context.Context, id string, form *schema.StudentRegistrationForm, now time.Time) (*models.Student, schema.Errors, error) {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	student, fieldErrs := form.Validate(now)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	// The admission number is immutable once issued.
	if student.StudentNo != existing.StudentNo {
		return nil, nil, apperrors.NewBadRequestError("student number cannot be changed")
	}

	student.ID = existing.ID
	student.UserID = existing.UserID
	student.Documents = existing.Documents

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, nil, err
	}

	return student, nil, nil
}

// DeleteStudent removes a student record together with its registrations
// and holiday reports, and cleans up stored documents.
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	// The linked portal account loses access but keeps its audit trail.
	if student.UserID != nil {
		if err := s.userRepo.SetActive(ctx, *student.UserID, false); err != nil {
			logger.Warn().Err(err).Str("userId", *student.UserID).Msg("Failed to disable linked account")
		}
	}

	for category, ref := range student.Documents {
		if err := s.storage.DeleteFile(ref.URL); err != nil {
			logger.Warn().Err(err).Str("category", category).Msg("Failed to delete student document")
		}
	}

	return nil
}

// UploadDocument stores an uploaded document under the student's record,
// replacing any previous file in the same category.
func (s *StudentService) UploadDocument(ctx context.Context, studentID, category string, fileHeader *multipart.FileHeader) (models.FileRef, error) {
	if category == "" {
		return models.FileRef{}, apperrors.NewBadRequestError("document category is required")
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return models.FileRef{}, err
	}

	ref, err := s.storage.SaveUpload(fileHeader, "students/"+studentID)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("error storing document: %w", err)
	}

	previous, hadPrevious := student.Documents[category]

	if student.Documents == nil {
		student.Documents = models.DocumentSet{}
	}
	student.Documents[category] = ref

	if err := s.studentRepo.UpdateDocuments(ctx, studentID, student.Documents); err != nil {
		_ = s.storage.DeleteFile(ref.URL)
		return models.FileRef{}, err
	}

	if hadPrevious {
		if err := s.storage.DeleteFile(previous.URL); err != nil {
			logger.Warn().Err(err).Str("category", category).Msg("Failed to delete replaced document")
		}
	}

	return ref, nil
}

func (s *StudentService) attachDepartments(ctx context.Context, students []*models.Student) {
	cache := map[string]*models.Department{}
	for _, student := range students {
		if student.DepartmentID == nil {
			continue
		}
		dept, ok := cache[*student.DepartmentID]
		if !ok {
			var err error
			dept, err = s.departmentRepo.GetByID(ctx, *student.DepartmentID)
			if err != nil {
				continue
			}
			cache[*student.DepartmentID] = dept
		}
		student.Department = dept
	}
}

package services

import (
	"context"
	"errors"
	"time"

	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/app/repositories"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
	"github.com/kmuriuki/campusreg/internal/pkg/logger"
	"github.com/kmuriuki/campusreg/internal/pkg/schema"
)

// RegistrationService handles exam sign-ups, enforcing the publication,
// deadline, duplicate and capacity rules.
type RegistrationService struct {
	registrationRepo *repositories.RegistrationRepository
	examRepo         *repositories.ExamRepository
	studentRepo      *repositories.StudentRepository
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(registrationRepo *repositories.RegistrationRepository, examRepo *repositories.ExamRepository, studentRepo *repositories.StudentRepository) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		examRepo:         examRepo,
		studentRepo:      studentRepo,
	}
}

// RegisterForExam signs a student up for an exam. The exam must be
// PUBLISHED and its deadline not yet passed (date precision: the deadline
// day itself still counts). A student may hold at most one non-cancelled
// registration per exam. When the exam is full the registration is
// accepted as WAITLISTED instead of being refused.
func (s *RegistrationService) RegisterForExam(ctx context.Context, studentID, examID string, notes *string, now time.Time) (*models.ExamRegistration, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	if exam.Status == nil || *exam.Status != models.ExamStatusPublished {
		return nil, apperrors.ErrExamNotPublished
	}

	if schema.DateOnly(now).After(schema.DateOnly(exam.RegistrationDeadline)) {
		return nil, apperrors.ErrDeadlinePassed
	}

	_, err = s.registrationRepo.GetActiveByStudentAndExam(ctx, studentID, examID)
	if err == nil {
		return nil, apperrors.ErrAlreadyRegistered
	}
	if !errors.Is(err, apperrors.ErrRegistrationNotFound) {
		return nil, err
	}

	status := models.RegistrationStatusPending
	if exam.MaxCapacity != nil {
		active, err := s.registrationRepo.CountActiveByExam(ctx, examID)
		if err != nil {
			return nil, err
		}
		if active >= *exam.MaxCapacity {
			status = models.RegistrationStatusWaitlisted
		}
	}

	paymentStatus := "UNPAID"
	if exam.RegistrationFee == nil || *exam.RegistrationFee == 0 {
		paymentStatus = "NOT_REQUIRED"
	}

	registration := &models.ExamRegistration{
		StudentID:     &student.ID,
		ExamID:        exam.ID,
		Status:        &status,
		PaymentStatus: &paymentStatus,
		Notes:         notes,
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, err
	}

	logger.Info().
		Str("registrationId", registration.ID).
		Str("examId", examID).
		Str("studentId", studentID).
		Str("status", string(status)).
		Msg("Exam registration created")

	registration.Student = student
	registration.Exam = exam
	return registration, nil
}

// GetRegistrationByID retrieves a registration with its student and exam attached
func (s *RegistrationService) GetRegistrationByID(ctx context.Context, id string) (*models.ExamRegistration, error) {
	registration, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.attachRelations(ctx, []*models.ExamRegistration{registration})
	return registration, nil
}

// GetRegistrationsByExam lists every registration for an exam
func (s *RegistrationService) GetRegistrationsByExam(ctx context.Context, examID string) ([]*models.ExamRegistration, error) {
	if _, err := s.examRepo.GetByID(ctx, examID); err != nil {
		return nil, err
	}

	registrations, err := s.registrationRepo.GetByExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	s.attachRelations(ctx, registrations)
	return registrations, nil
}

// GetRegistrationsByStudent lists every registration made by a student
func (s *RegistrationService) GetRegistrationsByStudent(ctx context.Context, studentID string) ([]*models.ExamRegistration, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	registrations, err := s.registrationRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	s.attachRelations(ctx, registrations)
	return registrations, nil
}

// UpdateRegistrationStatus moves a registration between states. When a
// registration frees a slot, the oldest waitlisted registration for the
// exam is promoted.
func (s *RegistrationService) UpdateRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus) (*models.ExamRegistration, error) {
	registration, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cancelling a waitlisted registration frees nothing, so only a
	// registration that held a slot triggers a promotion.
	heldSlot := registration.HoldsSlot()

	if err := s.registrationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	registration.Status = &status

	if heldSlot && status == models.RegistrationStatusCancelled {
		s.promoteFromWaitlist(ctx, registration.ExamID)
	}

	return registration, nil
}

// CancelRegistration cancels a registration, promoting a waitlisted one if possible
func (s *RegistrationService) CancelRegistration(ctx context.Context, id string) error {
	_, err := s.UpdateRegistrationStatus(ctx, id, models.RegistrationStatusCancelled)
	return err
}

// promoteFromWaitlist moves the oldest waitlisted registration to PENDING
// after a slot opens up.
func (s *RegistrationService) promoteFromWaitlist(ctx context.Context, examID string) {
	registrations, err := s.registrationRepo.GetByExam(ctx, examID)
	if err != nil {
		logger.Warn().Err(err).Str("examId", examID).Msg("Failed to load waitlist")
		return
	}

	// GetByExam returns newest first; walk backwards for the oldest.
	for i := len(registrations) - 1; i >= 0; i-- {
		reg := registrations[i]
		if reg.Status != nil && *reg.Status == models.RegistrationStatusWaitlisted {
			if err := s.registrationRepo.UpdateStatus(ctx, reg.ID, models.RegistrationStatusPending); err != nil {
				logger.Warn().Err(err).Str("registrationId", reg.ID).Msg("Failed to promote from waitlist")
			}
			return
		}
	}
}

// MarkPaid records payment for a registration
func (s *RegistrationService) MarkPaid(ctx context.Context, id string) error {
	registration, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if registration.PaymentStatus != nil && *registration.PaymentStatus == "NOT_REQUIRED" {
		return apperrors.NewConflictError("registration has no fee to pay")
	}

	return s.registrationRepo.UpdatePaymentStatus(ctx, id, "PAID")
}

func (s *RegistrationService) attachRelations(ctx context.Context, registrations []*models.ExamRegistration) {
	examCache := map[string]*models.Exam{}

	for _, reg := range registrations {
		if reg.StudentID != nil && reg.Student == nil {
			student, err := s.studentRepo.GetByID(ctx, *reg.StudentID)
			if err == nil {
				reg.Student = student
			}
		}
		if reg.Exam == nil {
			exam, ok := examCache[reg.ExamID]
			if !ok {
				var err error
				exam, err = s.examRepo.GetByID(ctx, reg.ExamID)
				if err != nil {
					continue
				}
				examCache[reg.ExamID] = exam
			}
			reg.Exam = exam
		}
	}
}

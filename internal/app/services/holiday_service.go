package services

import (
	"context"
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

// HolidayService handles holiday report submission and review
type HolidayService struct {
	reportRepo  *repositories.HolidayReportRepository
	studentRepo *repositories.StudentRepository
	userRepo    *repositories.UserRepository
	storage     filestorage.Storage
}

// NewHolidayService creates a new holiday service instance
func NewHolidayService(reportRepo *repositories.HolidayReportRepository, studentRepo *repositories.StudentRepository, userRepo *repositories.UserRepository, storage filestorage.Storage) *HolidayService {
	return &HolidayService{
		reportRepo:  reportRepo,
		studentRepo: studentRepo,
		userRepo:    userRepo,
		storage:     storage,
	}
}

// SubmitReport validates the student-facing form and files a PENDING report.
func (s *HolidayService) SubmitReport(ctx context.Context, studentID string, form *schema.HolidayReportForm, now time.Time) (*models.HolidayReport, schema.Errors, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	report, fieldErrs := form.Validate(now)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	report.StudentID = &student.ID
	status := models.HolidayStatusPending
	report.Status = &status

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, nil, err
	}

	logger.Info().Str("reportId", report.ID).Str("studentId", studentID).Msg("Holiday report submitted")
	return report, nil, nil
}

// InsertReport files a report on a student's behalf using the typed
// insert variant, which permits back-dated leave.
func (s *HolidayService) InsertReport(ctx context.Context, insert *schema.InsertHolidayReport) (*models.HolidayReport, schema.Errors, error) {
	report, fieldErrs := insert.Validate()
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	if report.StudentID == nil {
		return nil, schema.Errors{{Path: "studentId", Message: "Student is required", Kind: schema.KindRequired}}, nil
	}
	if _, err := s.studentRepo.GetByID(ctx, *report.StudentID); err != nil {
		return nil, nil, err
	}

	status := models.HolidayStatusPending
	report.Status = &status

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, nil, err
	}

	return report, nil, nil
}

// GetReports retrieves a filtered page of reports with students attached
func (s *HolidayService) GetReports(ctx context.Context, filters *schema.HolidayReportFilters) ([]*models.HolidayReport, int64, error) {
	reports, total, err := s.reportRepo.GetAll(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving holiday reports: %w", err)
	}

	s.attachRelations(ctx, reports)
	return reports, total, nil
}

// GetReportByID retrieves a report with its student and reviewer attached
func (s *HolidayService) GetReportByID(ctx context.Context, id string) (*models.HolidayReport, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.attachRelations(ctx, []*models.HolidayReport{report})
	return report, nil
}

// GetReportsByStudent lists every report a student has submitted
func (s *HolidayService) GetReportsByStudent(ctx context.Context, studentID string) ([]*models.HolidayReport, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.reportRepo.GetByStudent(ctx, studentID)
}

// UpdateReport rewrites a report. Only the owning student may edit it,
// and only while it is still PENDING.
func (s *HolidayService) UpdateReport(ctx context.Context, id, studentID string, form *schema.HolidayReportForm, now time.Time) (*models.HolidayReport, schema.Errors, error) {
	existing, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !existing.OwnedBy(studentID) {
		return nil, nil, apperrors.ErrNotReportOwner
	}
	if !existing.IsPending() {
		return nil, nil, apperrors.ErrReportNotPending
	}

	report, fieldErrs := form.Validate(now)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	report.ID = existing.ID
	report.StudentID = existing.StudentID
	report.SupportingDocuments = existing.SupportingDocuments

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, nil, err
	}

	report.Status = existing.Status
	report.SubmittedAt = existing.SubmittedAt
	return report, nil, nil
}

// ReviewReport records a review decision on a PENDING or UNDER_REVIEW report.
func (s *HolidayService) ReviewReport(ctx context.Context, id, reviewerID string, status models.HolidayStatus, comments string, now time.Time) (*models.HolidayReport, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if report.Status != nil {
		switch *report.Status {
		case models.HolidayStatusApproved, models.HolidayStatusRejected:
			return nil, apperrors.ErrReportNotPending
		}
	}

	var reviewComments *string
	if comments != "" {
		reviewComments = &comments
	}

	if err := s.reportRepo.Review(ctx, id, status, reviewerID, reviewComments, now); err != nil {
		return nil, err
	}

	logger.Info().
		Str("reportId", id).
		Str("reviewerId", reviewerID).
		Str("status", string(status)).
		Msg("Holiday report reviewed")

	return s.GetReportByID(ctx, id)
}

// DeleteReport removes a report. Only the owning student may delete it,
// and only while it is still PENDING. Admin callers pass an empty
// studentID and bypass the ownership check.
func (s *HolidayService) DeleteReport(ctx context.Context, id, studentID string) error {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if studentID != "" {
		if !report.OwnedBy(studentID) {
			return apperrors.ErrNotReportOwner
		}
		if !report.IsPending() {
			return apperrors.ErrReportNotPending
		}
	}

	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return err
	}

	for category, ref := range report.SupportingDocuments {
		if err := s.storage.DeleteFile(ref.URL); err != nil {
			logger.Warn().Err(err).Str("category", category).Msg("Failed to delete report document")
		}
	}

	return nil
}

// UploadDocument attaches a supporting document to a PENDING report.
func (s *HolidayService) UploadDocument(ctx context.Context, id, studentID, category string, fileHeader *multipart.FileHeader) (models.FileRef, error) {
	if category == "" {
		return models.FileRef{}, apperrors.NewBadRequestError("document category is required")
	}

	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return models.FileRef{}, err
	}

	if !report.OwnedBy(studentID) {
		return models.FileRef{}, apperrors.ErrNotReportOwner
	}
	if !report.IsPending() {
		return models.FileRef{}, apperrors.ErrReportNotPending
	}

	ref, err := s.storage.SaveUpload(fileHeader, "holiday-reports/"+id)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("error storing document: %w", err)
	}

	if report.SupportingDocuments == nil {
		report.SupportingDocuments = models.DocumentSet{}
	}
	report.SupportingDocuments[category] = ref

	if err := s.reportRepo.Update(ctx, report); err != nil {
		_ = s.storage.DeleteFile(ref.URL)
		return models.FileRef{}, err
	}

	return ref, nil
}

func (s *HolidayService) attachRelations(ctx context.Context, reports []*models.HolidayReport) {
	for _, report := range reports {
		if report.StudentID != nil && report.Student == nil {
			student, err := s.studentRepo.GetByID(ctx, *report.StudentID)
			if err == nil {
				report.Student = student
			}
		}
		if report.ReviewedBy != nil && report.Reviewer == nil {
			reviewer, err := s.userRepo.GetByID(ctx, *report.ReviewedBy)
			if err == nil {
				report.Reviewer = reviewer
			}
		}
	}
}

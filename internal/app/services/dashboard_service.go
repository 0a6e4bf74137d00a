package services

import (
	"context"
	"fmt"

	"github.com/kmuriuki/campusreg/internal/app/models/dto"
	"github.com/kmuriuki/campusreg/internal/app/repositories"
)

// DashboardService aggregates admin dashboard counters
type DashboardService struct {
	studentRepo      *repositories.StudentRepository
	examRepo         *repositories.ExamRepository
	registrationRepo *repositories.RegistrationRepository
	reportRepo       *repositories.HolidayReportRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(studentRepo *repositories.StudentRepository, examRepo *repositories.ExamRepository, registrationRepo *repositories.RegistrationRepository, reportRepo *repositories.HolidayReportRepository) *DashboardService {
	return &DashboardService{
		studentRepo:      studentRepo,
		examRepo:         examRepo,
		registrationRepo: registrationRepo,
		reportRepo:       reportRepo,
	}
}

// GetStats collects the dashboard counters in one pass
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	var err error
	if stats.TotalStudents, err = s.studentRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}
	if stats.TotalExams, err = s.examRepo.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("error counting exams: %w", err)
	}
	if stats.UpcomingExams, err = s.examRepo.CountUpcoming(ctx); err != nil {
		return nil, fmt.Errorf("error counting upcoming exams: %w", err)
	}
	if stats.PendingHolidayReports, err = s.reportRepo.CountPending(ctx); err != nil {
		return nil, fmt.Errorf("error counting pending reports: %w", err)
	}
	if stats.RegistrationsByStatus, err = s.registrationRepo.CountByStatus(ctx); err != nil {
		return nil, fmt.Errorf("error grouping registrations: %w", err)
	}
	if stats.StudentsByType, err = s.studentRepo.CountByType(ctx); err != nil {
		return nil, fmt.Errorf("error grouping students: %w", err)
	}
	if stats.HolidayReportsByStatus, err = s.reportRepo.CountByStatus(ctx); err != nil {
		return nil, fmt.Errorf("error grouping reports: %w", err)
	}

	return stats, nil
}

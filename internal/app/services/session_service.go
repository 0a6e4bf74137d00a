package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/app/models/dto"
	"github.com/kmuriuki/campusreg/internal/app/repositories"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
	"github.com/kmuriuki/campusreg/internal/pkg/schema"
)

// SessionService handles academic session operations
type SessionService struct {
	sessionRepo *repositories.SessionRepository
}

// NewSessionService creates a new session service instance
func NewSessionService(sessionRepo *repositories.SessionRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

// buildSession validates and converts a session request into a model.
func buildSession(name, startDate, endDate string, isActive *bool) (*models.AcademicSession, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewBadRequestError("session name cannot be empty")
	}

	start, err := schema.ParseDate(startDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid start date")
	}
	end, err := schema.ParseDate(endDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid end date")
	}
	if !end.After(start) {
		return nil, apperrors.NewBadRequestError("end date must be after start date")
	}

	session := &models.AcademicSession{
		Name:      name,
		StartDate: start,
		EndDate:   end,
		IsActive:  isActive,
	}
	return session, nil
}

// CreateSession creates a new academic session. If the session is flagged
// active it becomes the single active session.
func (s *SessionService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*models.AcademicSession, error) {
	session, err := buildSession(req.Name, req.StartDate, req.EndDate, req.IsActive)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	if req.IsActive != nil && *req.IsActive {
		if err := s.sessionRepo.SetActive(ctx, session.ID); err != nil {
			return nil, fmt.Errorf("error activating session: %w", err)
		}
	}

	return session, nil
}

// GetSessionByID retrieves an academic session by ID
func (s *SessionService) GetSessionByID(ctx context.Context, id string) (*models.AcademicSession, error) {
	if id == "" {
		return nil, apperrors.NewBadRequestError("session ID is required")
	}
	return s.sessionRepo.GetByID(ctx, id)
}

// GetAllSessions retrieves all academic sessions
func (s *SessionService) GetAllSessions(ctx context.Context) ([]*models.AcademicSession, error) {
	return s.sessionRepo.GetAll(ctx)
}

// GetActiveSession retrieves the currently active academic session
func (s *SessionService) GetActiveSession(ctx context.Context) (*models.AcademicSession, error) {
	return s.sessionRepo.GetActive(ctx)
}

// UpdateSession updates an academic session and optionally activates it
func (s *SessionService) UpdateSession(ctx context.Context, id string, req *dto.UpdateSessionRequest) (*models.AcademicSession, error) {
	if id == "" {
		return nil, apperrors.NewBadRequestError("session ID is required")
	}

	session, err := buildSession(req.Name, req.StartDate, req.EndDate, req.IsActive)
	if err != nil {
		return nil, err
	}
	session.ID = id

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	if req.IsActive != nil && *req.IsActive {
		if err := s.sessionRepo.SetActive(ctx, id); err != nil {
			return nil, fmt.Errorf("error activating session: %w", err)
		}
	}

	return s.sessionRepo.GetByID(ctx, id)
}

// ActivateSession marks a session as the active one
func (s *SessionService) ActivateSession(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewBadRequestError("session ID is required")
	}
	return s.sessionRepo.SetActive(ctx, id)
}

// DeleteSession deletes an academic session. Sessions with exams
// scheduled in them are refused.
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewBadRequestError("session ID is required")
	}
	return s.sessionRepo.Delete(ctx, id)
}

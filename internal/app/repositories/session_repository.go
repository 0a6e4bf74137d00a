package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/db"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
	"github.com/kmuriuki/campusreg/internal/pkg/dberrors"
)

// SessionRepository handles database operations for academic sessions
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new academic session repository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new academic session
func (r *SessionRepository) Create(ctx context.Context, session *models.AcademicSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	query := `
		INSERT INTO academic_sessions (id, name, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID, session.Name, session.StartDate, session.EndDate, session.IsActive)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSessionNameExists
		}
		return fmt.Errorf("error creating academic session: %w", err)
	}

	return nil
}

// GetByID retrieves an academic session by ID
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.AcademicSession, error) {
	query := `
		SELECT id, name, start_date, end_date, is_active, created_at
		FROM academic_sessions
		WHERE id = $1
	`

	var session models.AcademicSession
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.Name,
		&session.StartDate,
		&session.EndDate,
		&session.IsActive,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving academic session: %w", err)
	}

	return &session, nil
}

// GetAll retrieves all academic sessions, most recent first
func (r *SessionRepository) GetAll(ctx context.Context) ([]*models.AcademicSession, error) {
	query := `
		SELECT id, name, start_date, end_date, is_active, created_at
		FROM academic_sessions
		ORDER BY start_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.AcademicSession
	for rows.Next() {
		var session models.AcademicSession
		if err := rows.Scan(
			&session.ID,
			&session.Name,
			&session.StartDate,
			&session.EndDate,
			&session.IsActive,
			&session.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetActive retrieves the currently active academic session
func (r *SessionRepository) GetActive(ctx context.Context) (*models.AcademicSession, error) {
	query := `
		SELECT id, name, start_date, end_date, is_active, created_at
		FROM academic_sessions
		WHERE is_active = TRUE
		ORDER BY start_date DESC
		LIMIT 1
	`

	var session models.AcademicSession
	err := r.db.QueryRow(ctx, query).Scan(
		&session.ID,
		&session.Name,
		&session.StartDate,
		&session.EndDate,
		&session.IsActive,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving active session: %w", err)
	}

	return &session, nil
}

// SetActive marks a session active and deactivates the others
func (r *SessionRepository) SetActive(ctx context.Context, id string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE academic_sessions SET is_active = FALSE WHERE is_active = TRUE`); err != nil {
			return fmt.Errorf("error deactivating sessions: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `UPDATE academic_sessions SET is_active = TRUE WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error activating session: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrSessionNotFound
		}

		return nil
	})
}

// Update updates an existing academic session
func (r *SessionRepository) Update(ctx context.Context, session *models.AcademicSession) error {
	query := `
		UPDATE academic_sessions
		SET name = $1, start_date = $2, end_date = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		session.Name, session.StartDate, session.EndDate, session.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSessionNameExists
		}
		return fmt.Errorf("error updating academic session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}

	return nil
}

// Delete deletes an academic session unless exams are scheduled in it
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	var hasRelations bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM exams WHERE session_id = $1)`, id).Scan(&hasRelations)
	if err != nil {
		return fmt.Errorf("error checking session relations: %w", err)
	}

	if hasRelations {
		return apperrors.ErrSessionHasRelations
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM academic_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting academic session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}

	return nil
}

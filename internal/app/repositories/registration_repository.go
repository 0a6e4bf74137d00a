package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
)

// RegistrationRepository handles database operations for exam registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new exam registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

const registrationColumns = `id, student_id, exam_id, status, registered_at, payment_status, notes`

func scanRegistration(row pgx.Row) (*models.ExamRegistration, error) {
	var reg models.ExamRegistration
	err := row.Scan(
		&reg.ID,
		&reg.StudentID,
		&reg.ExamID,
		&reg.Status,
		&reg.RegisteredAt,
		&reg.PaymentStatus,
		&reg.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Create inserts a new registration and fills in its generated ID
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.ExamRegistration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}

	query := `
		INSERT INTO exam_registrations (id, student_id, exam_id, status, payment_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING registered_at
	`

	err := r.db.QueryRow(ctx, query,
		reg.ID, reg.StudentID, reg.ExamID, reg.Status, reg.PaymentStatus, reg.Notes).
		Scan(&reg.RegisteredAt)
	if err != nil {
		return fmt.Errorf("error creating exam registration: %w", err)
	}

	return nil
}

// GetByID retrieves a registration by ID
func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*models.ExamRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM exam_registrations WHERE id = $1`

	reg, err := scanRegistration(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error retrieving exam registration: %w", err)
	}

	return reg, nil
}

// GetActiveByStudentAndExam retrieves the student's non-cancelled registration
// for an exam, if one exists
func (r *RegistrationRepository) GetActiveByStudentAndExam(ctx context.Context, studentID, examID string) (*models.ExamRegistration, error) {
	query := `SELECT ` + registrationColumns + `
		FROM exam_registrations
		WHERE student_id = $1 AND exam_id = $2 AND status != 'CANCELLED'`

	reg, err := scanRegistration(r.db.QueryRow(ctx, query, studentID, examID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error retrieving exam registration: %w", err)
	}

	return reg, nil
}

// GetByExam retrieves all registrations for an exam, newest first
func (r *RegistrationRepository) GetByExam(ctx context.Context, examID string) ([]*models.ExamRegistration, error) {
	query := `SELECT ` + registrationColumns + `
		FROM exam_registrations
		WHERE exam_id = $1
		ORDER BY registered_at DESC`

	return r.queryRegistrations(ctx, query, examID)
}

// GetByStudent retrieves all registrations made by a student, newest first
func (r *RegistrationRepository) GetByStudent(ctx context.Context, studentID string) ([]*models.ExamRegistration, error) {
	query := `SELECT ` + registrationColumns + `
		FROM exam_registrations
		WHERE student_id = $1
		ORDER BY registered_at DESC`

	return r.queryRegistrations(ctx, query, studentID)
}

func (r *RegistrationRepository) queryRegistrations(ctx context.Context, query string, args ...interface{}) ([]*models.ExamRegistration, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing exam registrations: %w", err)
	}
	defer rows.Close()

	var regs []*models.ExamRegistration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}

	return regs, rows.Err()
}

// CountActiveByExam counts registrations still occupying a slot for an exam
func (r *RegistrationRepository) CountActiveByExam(ctx context.Context, examID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM exam_registrations WHERE exam_id = $1 AND status != 'CANCELLED'`,
		examID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting exam registrations: %w", err)
	}
	return count, nil
}

// UpdateStatus moves a registration to a new state
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status models.RegistrationStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE exam_registrations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating registration status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// UpdatePaymentStatus records a payment state change for a registration
func (r *RegistrationRepository) UpdatePaymentStatus(ctx context.Context, id string, paymentStatus string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE exam_registrations SET payment_status = $1 WHERE id = $2`, paymentStatus, id)
	if err != nil {
		return fmt.Errorf("error updating payment status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// CountByStatus returns registration counts grouped by status
func (r *RegistrationRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM exam_registrations GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting registrations by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

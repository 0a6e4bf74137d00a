package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
	"github.com/kmuriuki/campusreg/internal/pkg/helpers"
	"github.com/kmuriuki/campusreg/internal/pkg/schema"
)

// ExamRepository handles database operations for exams
type ExamRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new exam repository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{db: db}
}

// examColumns selects exam fields plus the count of registrations still
// occupying a slot (everything except CANCELLED).
const examColumns = `e.id, e.title, e.course_code, e.description, e.exam_type, e.department_id,
	e.session_id, e.exam_date, e.start_time, e.end_time, e.room, e.max_capacity,
	e.registration_deadline, e.registration_fee, e.status, e.created_at, e.updated_at,
	(SELECT COUNT(*) FROM exam_registrations r WHERE r.exam_id = e.id AND r.status != 'CANCELLED')`

func scanExam(row pgx.Row) (*models.Exam, error) {
	var exam models.Exam
	err := row.Scan(
		&exam.ID,
		&exam.Title,
		&exam.CourseCode,
		&exam.Description,
		&exam.ExamType,
		&exam.DepartmentID,
		&exam.SessionID,
		&exam.ExamDate,
		&exam.StartTime,
		&exam.EndTime,
		&exam.Room,
		&exam.MaxCapacity,
		&exam.RegistrationDeadline,
		&exam.RegistrationFee,
		&exam.Status,
		&exam.CreatedAt,
		&exam.UpdatedAt,
		&exam.RegistrationCount,
	)
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// Create inserts a new exam and fills in its generated ID
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	if exam.ID == "" {
		exam.ID = uuid.NewString()
	}

	query := `
		INSERT INTO exams (id, title, course_code, description, exam_type, department_id, session_id,
			exam_date, start_time, end_time, room, max_capacity, registration_deadline,
			registration_fee, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		exam.ID, exam.Title, exam.CourseCode, exam.Description, exam.ExamType, exam.DepartmentID,
		exam.SessionID, exam.ExamDate, exam.StartTime, exam.EndTime, exam.Room, exam.MaxCapacity,
		exam.RegistrationDeadline, exam.RegistrationFee, exam.Status)
	if err != nil {
		return fmt.Errorf("error creating exam: %w", err)
	}

	return nil
}

// GetByID retrieves an exam by ID
func (r *ExamRepository) GetByID(ctx context.Context, id string) (*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams e WHERE e.id = $1`

	exam, err := scanExam(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error retrieving exam: %w", err)
	}

	return exam, nil
}

// examFilterClause builds the WHERE clause and args for a filtered listing
func examFilterClause(filters *schema.ExamFilters) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filters.Department != "" {
		addCondition("e.department_id = $%d", filters.Department)
	}
	if filters.Session != "" {
		addCondition("e.session_id = $%d", filters.Session)
	}
	if filters.ExamType != "" {
		addCondition("e.exam_type = $%d", filters.ExamType)
	}
	if filters.Status != nil {
		addCondition("e.status = $%d", *filters.Status)
	}
	if filters.Query != "" {
		args = append(args, helpers.SearchPattern(filters.Query))
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(e.title ILIKE $%d OR e.course_code ILIKE $%d)", n, n))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// GetAll retrieves a page of exams matching the filters, plus the total count
func (r *ExamRepository) GetAll(ctx context.Context, filters *schema.ExamFilters) ([]*models.Exam, int64, error) {
	where, args := examFilterClause(filters)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exams e`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting exams: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM exams e%s ORDER BY e.exam_date, e.start_time LIMIT $%d OFFSET $%d`,
		examColumns, where, len(args)+1, len(args)+2)
	args = append(args, filters.Limit, filters.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing exams: %w", err)
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, 0, err
		}
		exams = append(exams, exam)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return exams, total, nil
}

// Update updates an existing exam
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	query := `
		UPDATE exams
		SET title = $1, course_code = $2, description = $3, exam_type = $4, department_id = $5,
			session_id = $6, exam_date = $7, start_time = $8, end_time = $9, room = $10,
			max_capacity = $11, registration_deadline = $12, registration_fee = $13,
			updated_at = NOW()
		WHERE id = $14
	`

	cmdTag, err := r.db.Exec(ctx, query,
		exam.Title, exam.CourseCode, exam.Description, exam.ExamType, exam.DepartmentID,
		exam.SessionID, exam.ExamDate, exam.StartTime, exam.EndTime, exam.Room,
		exam.MaxCapacity, exam.RegistrationDeadline, exam.RegistrationFee, exam.ID)
	if err != nil {
		return fmt.Errorf("error updating exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// UpdateStatus moves an exam to a new lifecycle state
func (r *ExamRepository) UpdateStatus(ctx context.Context, id string, status models.ExamStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE exams SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating exam status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// Delete deletes an exam together with its registrations
func (r *ExamRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// CountAll returns the total number of exams
func (r *ExamRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exams`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting exams: %w", err)
	}
	return count, nil
}

// CountUpcoming returns the number of published exams scheduled from today onwards
func (r *ExamRepository) CountUpcoming(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM exams WHERE status = 'PUBLISHED' AND exam_date >= CURRENT_DATE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting upcoming exams: %w", err)
	}
	return count, nil
}

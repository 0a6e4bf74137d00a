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
	"github.com/kmuriuki/campusreg/internal/pkg/dberrors"
	"github.com/kmuriuki/campusreg/internal/pkg/helpers"
	"github.com/kmuriuki/campusreg/internal/pkg/schema"
)

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `id, user_id, student_no, student_name, student_type, birth_cert_no, birth_date,
	county, sub_county, gender, nationality, phone_number, email, class, session, programme,
	department_id, kcpe_index, kcse_index, previous_institution, documents, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var documents []byte
	err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.StudentNo,
		&student.StudentName,
		&student.StudentType,
		&student.BirthCertNo,
		&student.BirthDate,
		&student.County,
		&student.SubCounty,
		&student.Gender,
		&student.Nationality,
		&student.PhoneNumber,
		&student.Email,
		&student.Class,
		&student.Session,
		&student.Programme,
		&student.DepartmentID,
		&student.KCPEIndex,
		&student.KCSEIndex,
		&student.PreviousInstitution,
		&documents,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := student.Documents.UnmarshalDB(documents); err != nil {
		return nil, fmt.Errorf("error decoding student documents: %w", err)
	}
	return &student, nil
}

// Create inserts a new student record and fills in its generated ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}

	documents, err := student.Documents.MarshalDB()
	if err != nil {
		return fmt.Errorf("error encoding student documents: %w", err)
	}

	query := `
		INSERT INTO students (id, user_id, student_no, student_name, student_type, birth_cert_no,
			birth_date, county, sub_county, gender, nationality, phone_number, email, class,
			session, programme, department_id, kcpe_index, kcse_index, previous_institution, documents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	_, err = r.db.Exec(ctx, query,
		student.ID, student.UserID, student.StudentNo, student.StudentName, student.StudentType,
		student.BirthCertNo, student.BirthDate, student.County, student.SubCounty, student.Gender,
		student.Nationality, student.PhoneNumber, student.Email, student.Class, student.Session,
		student.Programme, student.DepartmentID, student.KCPEIndex, student.KCSEIndex,
		student.PreviousInstitution, documents)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_no_key") {
			return apperrors.ErrStudentNoExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByUserID retrieves the student record linked to a portal account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// StudentNoExists checks whether an admission number is already registered
func (r *StudentRepository) StudentNoExists(ctx context.Context, studentNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE student_no = $1)`, studentNo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student number: %w", err)
	}
	return exists, nil
}

// BirthCertExists checks whether a birth certificate number is already registered
func (r *StudentRepository) BirthCertExists(ctx context.Context, birthCertNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE birth_cert_no = $1)`, birthCertNo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking birth certificate number: %w", err)
	}
	return exists, nil
}

// studentFilterClause builds the WHERE clause and args for a filtered listing
func studentFilterClause(filters *schema.StudentFilters) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filters.Department != "" {
		addCondition("department_id = $%d", filters.Department)
	}
	if filters.Class != "" {
		addCondition("class = $%d", filters.Class)
	}
	if filters.Session != "" {
		addCondition("session = $%d", filters.Session)
	}
	if filters.StudentType != nil {
		addCondition("student_type = $%d", *filters.StudentType)
	}
	if filters.Query != "" {
		args = append(args, helpers.SearchPattern(filters.Query))
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(student_name ILIKE $%d OR student_no ILIKE $%d OR email ILIKE $%d)", n, n, n))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// GetAll retrieves a page of students matching the filters, plus the total count
func (r *StudentRepository) GetAll(ctx context.Context, filters *schema.StudentFilters) ([]*models.Student, int64, error) {
	where, args := studentFilterClause(filters)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM students%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		studentColumns, where, len(args)+1, len(args)+2)
	args = append(args, filters.Limit, filters.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Update updates an existing student record
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	documents, err := student.Documents.MarshalDB()
	if err != nil {
		return fmt.Errorf("error encoding student documents: %w", err)
	}

	query := `
		UPDATE students
		SET student_name = $1, student_type = $2, birth_cert_no = $3, birth_date = $4,
			county = $5, sub_county = $6, gender = $7, nationality = $8, phone_number = $9,
			email = $10, class = $11, session = $12, programme = $13, department_id = $14,
			kcpe_index = $15, kcse_index = $16, previous_institution = $17, documents = $18,
			updated_at = NOW()
		WHERE id = $19
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.StudentName, student.StudentType, student.BirthCertNo, student.BirthDate,
		student.County, student.SubCounty, student.Gender, student.Nationality, student.PhoneNumber,
		student.Email, student.Class, student.Session, student.Programme, student.DepartmentID,
		student.KCPEIndex, student.KCSEIndex, student.PreviousInstitution, documents, student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateDocuments replaces the stored document set for a student
func (r *StudentRepository) UpdateDocuments(ctx context.Context, id string, documents models.DocumentSet) error {
	raw, err := documents.MarshalDB()
	if err != nil {
		return fmt.Errorf("error encoding student documents: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET documents = $1, updated_at = NOW() WHERE id = $2`, raw, id)
	if err != nil {
		return fmt.Errorf("error updating student documents: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete deletes a student record together with its registrations and reports
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// CountAll returns the total number of students
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// CountByType returns student counts grouped by admission type
func (r *StudentRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT student_type, COUNT(*) FROM students GROUP BY student_type`)
	if err != nil {
		return nil, fmt.Errorf("error counting students by type: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var studentType string
		var count int64
		if err := rows.Scan(&studentType, &count); err != nil {
			return nil, err
		}
		counts[studentType] = count
	}

	return counts, rows.Err()
}

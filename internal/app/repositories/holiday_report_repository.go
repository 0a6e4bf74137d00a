package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
	"github.com/kmuriuki/campusreg/internal/pkg/helpers"
	"github.com/kmuriuki/campusreg/internal/pkg/schema"
)

// HolidayReportRepository handles database operations for holiday reports
type HolidayReportRepository struct {
	db *pgxpool.Pool
}

// NewHolidayReportRepository creates a new holiday report repository
func NewHolidayReportRepository(db *pgxpool.Pool) *HolidayReportRepository {
	return &HolidayReportRepository{db: db}
}

const holidayReportColumns = `id, student_id, holiday_type, priority_level, start_date,
	expected_return_date, destination, reason, emergency_contact_name, emergency_contact_phone,
	supporting_documents, status, submitted_at, reviewed_at, reviewed_by, review_comments`

func scanHolidayReport(row pgx.Row) (*models.HolidayReport, error) {
	var report models.HolidayReport
	var documents []byte
	err := row.Scan(
		&report.ID,
		&report.StudentID,
		&report.HolidayType,
		&report.PriorityLevel,
		&report.StartDate,
		&report.ExpectedReturnDate,
		&report.Destination,
		&report.Reason,
		&report.EmergencyContactName,
		&report.EmergencyContactPhone,
		&documents,
		&report.Status,
		&report.SubmittedAt,
		&report.ReviewedAt,
		&report.ReviewedBy,
		&report.ReviewComments,
	)
	if err != nil {
		return nil, err
	}
	if err := report.SupportingDocuments.UnmarshalDB(documents); err != nil {
		return nil, fmt.Errorf("error decoding report documents: %w", err)
	}
	return &report, nil
}

// Create inserts a new holiday report and fills in its generated ID
func (r *HolidayReportRepository) Create(ctx context.Context, report *models.HolidayReport) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}

	documents, err := report.SupportingDocuments.MarshalDB()
	if err != nil {
		return fmt.Errorf("error encoding report documents: %w", err)
	}

	query := `
		INSERT INTO holiday_reports (id, student_id, holiday_type, priority_level, start_date,
			expected_return_date, destination, reason, emergency_contact_name,
			emergency_contact_phone, supporting_documents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING submitted_at
	`

	err = r.db.QueryRow(ctx, query,
		report.ID, report.StudentID, report.HolidayType, report.PriorityLevel, report.StartDate,
		report.ExpectedReturnDate, report.Destination, report.Reason, report.EmergencyContactName,
		report.EmergencyContactPhone, documents, report.Status).
		Scan(&report.SubmittedAt)
	if err != nil {
		return fmt.Errorf("error creating holiday report: %w", err)
	}

	return nil
}

// GetByID retrieves a holiday report by ID
func (r *HolidayReportRepository) GetByID(ctx context.Context, id string) (*models.HolidayReport, error) {
	query := `SELECT ` + holidayReportColumns + ` FROM holiday_reports WHERE id = $1`

	report, err := scanHolidayReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHolidayReportNotFound
		}
		return nil, fmt.Errorf("error retrieving holiday report: %w", err)
	}

	return report, nil
}

// holidayFilterClause builds the WHERE clause and args for a filtered listing
func holidayFilterClause(filters *schema.HolidayReportFilters) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filters.Status != nil {
		addCondition("status = $%d", *filters.Status)
	}
	if filters.PriorityLevel != nil {
		addCondition("priority_level = $%d", *filters.PriorityLevel)
	}
	if filters.HolidayType != "" {
		addCondition("holiday_type = $%d", filters.HolidayType)
	}
	if filters.StudentID != "" {
		addCondition("student_id = $%d", filters.StudentID)
	}
	if filters.Query != "" {
		args = append(args, helpers.SearchPattern(filters.Query))
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(destination ILIKE $%d OR reason ILIKE $%d)", n, n))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// GetAll retrieves a page of holiday reports matching the filters, plus the total count
func (r *HolidayReportRepository) GetAll(ctx context.Context, filters *schema.HolidayReportFilters) ([]*models.HolidayReport, int64, error) {
	where, args := holidayFilterClause(filters)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM holiday_reports`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting holiday reports: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM holiday_reports%s ORDER BY submitted_at DESC LIMIT $%d OFFSET $%d`,
		holidayReportColumns, where, len(args)+1, len(args)+2)
	args = append(args, filters.Limit, filters.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing holiday reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.HolidayReport
	for rows.Next() {
		report, err := scanHolidayReport(rows)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

// GetByStudent retrieves all reports submitted by a student, newest first
func (r *HolidayReportRepository) GetByStudent(ctx context.Context, studentID string) ([]*models.HolidayReport, error) {
	query := `SELECT ` + holidayReportColumns + `
		FROM holiday_reports
		WHERE student_id = $1
		ORDER BY submitted_at DESC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing holiday reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.HolidayReport
	for rows.Next() {
		report, err := scanHolidayReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// Update rewrites the editable fields of a report
func (r *HolidayReportRepository) Update(ctx context.Context, report *models.HolidayReport) error {
	documents, err := report.SupportingDocuments.MarshalDB()
	if err != nil {
		return fmt.Errorf("error encoding report documents: %w", err)
	}

	query := `
		UPDATE holiday_reports
		SET holiday_type = $1, priority_level = $2, start_date = $3, expected_return_date = $4,
			destination = $5, reason = $6, emergency_contact_name = $7,
			emergency_contact_phone = $8, supporting_documents = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		report.HolidayType, report.PriorityLevel, report.StartDate, report.ExpectedReturnDate,
		report.Destination, report.Reason, report.EmergencyContactName,
		report.EmergencyContactPhone, documents, report.ID)
	if err != nil {
		return fmt.Errorf("error updating holiday report: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHolidayReportNotFound
	}

	return nil
}

// Review records a review decision and stamps the reviewer
func (r *HolidayReportRepository) Review(ctx context.Context, id string, status models.HolidayStatus, reviewerID string, comments *string, reviewedAt time.Time) error {
	query := `
		UPDATE holiday_reports
		SET status = $1, reviewed_by = $2, review_comments = $3, reviewed_at = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, status, reviewerID, comments, reviewedAt, id)
	if err != nil {
		return fmt.Errorf("error reviewing holiday report: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHolidayReportNotFound
	}

	return nil
}

// Delete removes a holiday report
func (r *HolidayReportRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM holiday_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting holiday report: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHolidayReportNotFound
	}

	return nil
}

// CountPending returns the number of reports still awaiting review
func (r *HolidayReportRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM holiday_reports WHERE status = 'PENDING'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending reports: %w", err)
	}
	return count, nil
}

// CountByStatus returns report counts grouped by review status
func (r *HolidayReportRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM holiday_reports GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting reports by status: %w", err)
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

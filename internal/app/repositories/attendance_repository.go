package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tolgaakgoz/attendly/internal/app/models"
	"github.com/tolgaakgoz/attendly/internal/db"
	"github.com/tolgaakgoz/attendly/internal/pkg/apperrors"
	"github.com/tolgaakgoz/attendly/internal/pkg/dberrors"
)

// AttendanceRepository handles database operations for the attendance ledger
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// UpsertStatus writes one (student, date) status. The unique constraint on
// (student_id, date) makes this idempotent: the first call inserts, every
// later call overwrites status and marked_by on the same row. It accepts a
// Querier so reconciliation and bulk marking can run it inside their
// enclosing transaction.
func (r *AttendanceRepository) UpsertStatus(ctx context.Context, q db.Querier, studentID int64, date time.Time, status string, markedBy int64) (*models.AttendanceRecord, error) {
	query := `
		INSERT INTO attendance_records (student_id, date, status, marked_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, date)
		DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by
		RETURNING id, student_id, date, status, marked_by, created_at
	`

	var record models.AttendanceRecord
	err := q.QueryRow(ctx, query, studentID, date, status, markedBy).Scan(
		&record.ID,
		&record.StudentID,
		&record.Date,
		&record.Status,
		&record.MarkedBy,
		&record.CreatedAt,
	)
	if err != nil {
		// the student FK fires when the referenced user was deleted
		// between validation and the write
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewNotFoundError(apperrors.ErrStudentNotFound,
				fmt.Sprintf("student %d not found", studentID))
		}
		return nil, fmt.Errorf("error upserting attendance record: %w", err)
	}

	return &record, nil
}

// ListByStudent returns a student's full attendance history, newest first
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, date, status, marked_by, created_at
		FROM attendance_records
		WHERE student_id = $1
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance records: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(
			&record.ID,
			&record.StudentID,
			&record.Date,
			&record.Status,
			&record.MarkedBy,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, rows.Err()
}

// ListAll returns every attendance record, newest first
func (r *AttendanceRepository) ListAll(ctx context.Context) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, date, status, marked_by, created_at
		FROM attendance_records
		ORDER BY date DESC, student_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance records: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(
			&record.ID,
			&record.StudentID,
			&record.Date,
			&record.Status,
			&record.MarkedBy,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, rows.Err()
}

// StatusesByStudent returns just the status labels of a student's records.
// The percentage computation happens in the service layer.
func (r *AttendanceRepository) StatusesByStudent(ctx context.Context, studentID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status FROM attendance_records WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance statuses: %w", err)
	}
	defer rows.Close()

	var statuses []string
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, rows.Err()
}

// RosterForDate joins every student to their attendance status for one
// date. Students without a record for the date appear with a nil status.
func (r *AttendanceRepository) RosterForDate(ctx context.Context, date time.Time) ([]*models.RosterEntry, error) {
	query := `
		SELECT u.id, u.username, u.name, u.roll_no, u.section, ar.status, ar.marked_by
		FROM users u
		LEFT JOIN attendance_records ar ON ar.student_id = u.id AND ar.date = $1
		WHERE u.role = $2
		ORDER BY u.id
	`

	rows, err := r.db.Query(ctx, query, date, models.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("error building roster: %w", err)
	}
	defer rows.Close()

	var roster []*models.RosterEntry
	for rows.Next() {
		var entry models.RosterEntry
		if err := rows.Scan(
			&entry.StudentID,
			&entry.Username,
			&entry.Name,
			&entry.RollNo,
			&entry.Section,
			&entry.Status,
			&entry.MarkedBy,
		); err != nil {
			return nil, err
		}
		roster = append(roster, &entry)
	}

	return roster, rows.Err()
}

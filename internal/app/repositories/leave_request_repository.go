package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tolgaakgoz/attendly/internal/app/models"
	"github.com/tolgaakgoz/attendly/internal/db"
	"github.com/tolgaakgoz/attendly/internal/pkg/apperrors"
)

const leaveColumns = `id, student_id, start_date, end_date, reason, status, image_url, approved_by, created_at`

// LeaveRequestRepository handles database operations for leave requests
// and their assigned-advisor sets
type LeaveRequestRepository struct {
	db *pgxpool.Pool
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(db *pgxpool.Pool) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: db}
}

func scanLeaveRequest(row pgx.Row) (*models.LeaveRequest, error) {
	var req models.LeaveRequest
	err := row.Scan(
		&req.ID,
		&req.StudentID,
		&req.StartDate,
		&req.EndDate,
		&req.Reason,
		&req.Status,
		&req.ImageURL,
		&req.ApprovedBy,
		&req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Create inserts a pending leave request inside the given transaction
func (r *LeaveRequestRepository) Create(ctx context.Context, q db.Querier, req *models.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (student_id, start_date, end_date, reason, status, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		req.StudentID, req.StartDate, req.EndDate, req.Reason, req.Status, req.ImageURL,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating leave request: %w", err)
	}

	return nil
}

// AssignAdvisors writes the assigned-advisor set for a request
func (r *LeaveRequestRepository) AssignAdvisors(ctx context.Context, q db.Querier, requestID int64, advisorIDs []int64) error {
	for _, advisorID := range advisorIDs {
		_, err := q.Exec(ctx, `
			INSERT INTO request_advisors (request_id, advisor_id)
			VALUES ($1, $2)
			ON CONFLICT (request_id, advisor_id) DO NOTHING
		`, requestID, advisorID)
		if err != nil {
			return fmt.Errorf("error assigning advisor %d: %w", advisorID, err)
		}
	}
	return nil
}

// GetByIDForUpdate retrieves a leave request inside a transaction with a
// row lock, so a concurrent transition on the same request waits and then
// observes the terminal state.
func (r *LeaveRequestRepository) GetByIDForUpdate(ctx context.Context, q db.Querier, id int64) (*models.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1 FOR UPDATE`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving leave request: %w", err)
	}

	if req.AdvisorIDs, err = r.advisorIDs(ctx, q, id); err != nil {
		return nil, err
	}

	return req, nil
}

// UpdateStatus flips a request's status and records who resolved it
func (r *LeaveRequestRepository) UpdateStatus(ctx context.Context, q db.Querier, id int64, status models.LeaveStatus, resolvedBy int64) error {
	cmdTag, err := q.Exec(ctx,
		`UPDATE leave_requests SET status = $1, approved_by = $2 WHERE id = $3`,
		status, resolvedBy, id)
	if err != nil {
		return fmt.Errorf("error updating leave request status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}

	return nil
}

// ListByStudent returns a student's own requests, newest first
func (r *LeaveRequestRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE student_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, studentID)
}

// ListAll returns every leave request, newest first
func (r *LeaveRequestRepository) ListAll(ctx context.Context) ([]*models.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// ListPending returns every pending request, newest first
func (r *LeaveRequestRepository) ListPending(ctx context.Context) ([]*models.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, models.LeavePending)
}

// ListForAdvisor returns requests whose assigned-advisor set contains the
// given advisor, optionally restricted to one status.
func (r *LeaveRequestRepository) ListForAdvisor(ctx context.Context, advisorID int64, status models.LeaveStatus) ([]*models.LeaveRequest, error) {
	query := `
		SELECT ` + qualifiedLeaveColumns("lr") + `
		FROM leave_requests lr
		JOIN request_advisors ra ON ra.request_id = lr.id
		WHERE ra.advisor_id = $1
	`
	args := []any{advisorID}
	if status != "" {
		query += ` AND lr.status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY lr.created_at DESC`

	return r.list(ctx, query, args...)
}

func qualifiedLeaveColumns(alias string) string {
	return alias + `.id, ` + alias + `.student_id, ` + alias + `.start_date, ` + alias + `.end_date, ` +
		alias + `.reason, ` + alias + `.status, ` + alias + `.image_url, ` + alias + `.approved_by, ` + alias + `.created_at`
}

func (r *LeaveRequestRepository) list(ctx context.Context, query string, args ...any) ([]*models.LeaveRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing leave requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, req := range requests {
		if req.AdvisorIDs, err = r.advisorIDs(ctx, r.db, req.ID); err != nil {
			return nil, err
		}
	}

	return requests, nil
}

func (r *LeaveRequestRepository) advisorIDs(ctx context.Context, q db.Querier, requestID int64) ([]int64, error) {
	rows, err := q.Query(ctx,
		`SELECT advisor_id FROM request_advisors WHERE request_id = $1 ORDER BY advisor_id`, requestID)
	if err != nil {
		return nil, fmt.Errorf("error loading advisor assignments: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

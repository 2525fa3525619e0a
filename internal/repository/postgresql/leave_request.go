package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/leave"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	query := `
		INSERT INTO leave_requests (
			id, employee_id, start_date, end_date, leave_type, reason,
			status, reviewed_by, reviewed_at, comments, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		request.ID, request.EmployeeID, request.StartDate, request.EndDate,
		string(request.Type), request.Reason, string(request.Status),
		request.ReviewedBy, request.ReviewedAt, request.Comments, request.CreatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, leave_type, reason,
			   status, reviewed_by, reviewed_at, comments, created_at
		FROM leave_requests
		WHERE id = $1
	`
	var request leave.LeaveRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.StartDate, &request.EndDate,
		&request.Type, &request.Reason, &request.Status,
		&request.ReviewedBy, &request.ReviewedAt, &request.Comments, &request.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, leave_type, reason,
			   status, reviewed_by, reviewed_at, comments, created_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC, id
	`
	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) GetByStatus(ctx context.Context, status leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, leave_type, reason,
			   status, reviewed_by, reviewed_at, comments, created_at
		FROM leave_requests
		WHERE status = $1
		ORDER BY created_at DESC, id
	`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.LeaveRequest) error {
	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, comments = $5
		WHERE id = $1
	`
	commandTag, err := r.db.Exec(ctx, query,
		request.ID, string(request.Status), request.ReviewedBy, request.ReviewedAt, request.Comments,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	// Removal is idempotent: deleting an absent id is not an error.
	_, err := r.db.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	return err
}

func scanLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.StartDate, &request.EndDate,
			&request.Type, &request.Reason, &request.Status,
			&request.ReviewedBy, &request.ReviewedAt, &request.Comments, &request.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

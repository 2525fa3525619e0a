package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/leave"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/dateutil"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRequestRepo leave.LeaveRequestRepository
	now              func() time.Time
}

func NewLeaveService(leaveRequestRepo leave.LeaveRequestRepository) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		leaveRequestRepo: leaveRequestRepo,
		now:              time.Now,
	}
}

func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	startDate, err := dateutil.ParseDate(req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := dateutil.ParseDate(req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to generate request id: %w", err)
	}

	// Status is always forced to pending on submission.
	request := leave.LeaveRequest{
		ID:         id.String(),
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Type:       leave.LeaveType(req.Type),
		Reason:     req.Reason,
		Status:     leave.LeaveStatusPending,
		Comments:   req.Comments,
		CreatedAt:  s.now(),
	}

	created, err := s.leaveRequestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ReviewLeaveRequestRequest) (leave.LeaveRequest, error) {
	return s.review(ctx, req, leave.LeaveStatusApproved)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.ReviewLeaveRequestRequest) (leave.LeaveRequest, error) {
	return s.review(ctx, req, leave.LeaveStatusRejected)
}

func (s *LeaveServiceImpl) review(ctx context.Context, req leave.ReviewLeaveRequestRequest, status leave.LeaveStatus) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	request, err := s.leaveRequestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	// Approved and rejected are terminal.
	if request.Status != leave.LeaveStatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	reviewedAt := s.now()
	request.Status = status
	request.ReviewedBy = &req.ReviewerID
	request.ReviewedAt = &reviewedAt
	if req.Comment != nil {
		request.Comments = req.Comment
	}

	if err := s.leaveRequestRepo.Update(ctx, request); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return request, nil
}

func (s *LeaveServiceImpl) Withdraw(ctx context.Context, id string) error {
	request, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if request.Status != leave.LeaveStatusPending {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return s.leaveRequestRepo.Delete(ctx, id)
}

func (s *LeaveServiceImpl) ByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.leaveRequestRepo.GetByID(ctx, id)
}

func (s *LeaveServiceImpl) ByUser(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return s.leaveRequestRepo.GetByEmployeeID(ctx, employeeID)
}

func (s *LeaveServiceImpl) ByStatus(ctx context.Context, status string) ([]leave.LeaveRequest, error) {
	if !validator.IsInSlice(status, leave.ValidLeaveStatuses()) {
		return nil, validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		}}
	}
	return s.leaveRequestRepo.GetByStatus(ctx, leave.LeaveStatus(status))
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/leave"
)

type leaveRequestRepositoryImpl struct {
	mu       sync.RWMutex
	requests map[string]leave.LeaveRequest
	path     string
}

func NewLeaveRequestRepository(dir string) (leave.LeaveRequestRepository, error) {
	r := &leaveRequestRepositoryImpl{
		requests: make(map[string]leave.LeaveRequest),
		path:     storeFile(dir, "leave-requests"),
	}

	var records []leave.LeaveRequest
	if err := loadSnapshot(r.path, &records); err != nil {
		return nil, err
	}
	for _, req := range records {
		r.requests[req.ID] = req
	}
	return r, nil
}

func (r *leaveRequestRepositoryImpl) persistLocked() error {
	records := make([]leave.LeaveRequest, 0, len(r.requests))
	for _, req := range r.requests {
		records = append(records, req)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return saveSnapshot(r.path, records)
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests[request.ID] = request
	if err := r.persistLocked(); err != nil {
		delete(r.requests, request.ID)
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var requests []leave.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			requests = append(requests, req)
		}
	}
	sortNewestFirst(requests)
	return requests, nil
}

func (r *leaveRequestRepositoryImpl) GetByStatus(ctx context.Context, status leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var requests []leave.LeaveRequest
	for _, req := range r.requests {
		if req.Status == status {
			requests = append(requests, req)
		}
	}
	sortNewestFirst(requests)
	return requests, nil
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.requests[request.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	r.requests[request.ID] = request
	if err := r.persistLocked(); err != nil {
		r.requests[request.ID] = prev
		return err
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.requests[id]
	if !ok {
		return nil
	}
	delete(r.requests, id)
	if err := r.persistLocked(); err != nil {
		r.requests[id] = prev
		return err
	}
	return nil
}

// Review screens show the newest request first.
func sortNewestFirst(requests []leave.LeaveRequest) {
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		}
		return requests[i].ID < requests[j].ID
	})
}

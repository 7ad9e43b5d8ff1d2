package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/activity"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
)

type Service struct {
	requestRepo leave.RequestRepository
	chart       *approval.Chart
	recorder    activity.Recorder
}

func NewService(requestRepo leave.RequestRepository, chart *approval.Chart, recorder activity.Recorder) *Service {
	return &Service{
		requestRepo: requestRepo,
		chart:       chart,
		recorder:    recorder,
	}
}

func (s *Service) Create(ctx context.Context, p user.Principal, req leave.CreateRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if endDate.Before(startDate) {
		return leave.RequestResponse{}, leave.ErrInvalidDateRange
	}

	request := leave.Request{
		EmployeeID: p.EmployeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     approval.StatePending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toRequestResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (leave.RequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	return toRequestResponse(request), nil
}

func (s *Service) List(ctx context.Context, filter leave.Filter) (leave.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListResponse{}, err
	}

	requests, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return leave.ListResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	summary, err := s.requestRepo.Summarize(ctx, filter)
	if err != nil {
		return leave.ListResponse{}, fmt.Errorf("failed to summarize leave requests: %w", err)
	}

	resp := leave.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
		Summary:    summary,
	}
	for _, request := range requests {
		resp.Requests = append(resp.Requests, toRequestResponse(request))
	}

	return resp, nil
}

// ApproveL1 validates the transition against the chart, then relies on
// the repository's status-guarded update. A zero row count means the
// request left pending between the read and the write.
func (s *Service) ApproveL1(ctx context.Context, p user.Principal, req leave.ApproveRequest) (leave.RequestResponse, error) {
	if !p.CanApprove() {
		return leave.RequestResponse{}, user.ErrSupervisorAccessRequired
	}

	request, err := s.requestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if _, err := s.chart.Next(request.Status, approval.ActionApproveL1); err != nil {
		return leave.RequestResponse{}, transitionError(request.Status, leave.ErrNotAwaitingL1)
	}

	affected, err := s.requestRepo.ApproveL1(ctx, req.ID, p.UserID, req.Comment)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to apply level 1 approval: %w", err)
	}
	if affected == 0 {
		return leave.RequestResponse{}, leave.ErrNotAwaitingL1
	}

	s.recorder.Record(ctx, p.UserID, activity.ActionApproveL1, "leave_request", req.ID, req.Comment)

	return s.Get(ctx, req.ID)
}

// ApproveL2 requires HR or superadmin. The guarded update touches zero
// rows when the request is not in approved_l1, including the pending
// case, which leaves the row unchanged.
func (s *Service) ApproveL2(ctx context.Context, p user.Principal, req leave.ApproveRequest) (leave.RequestResponse, error) {
	if !p.CanApproveFinal() {
		return leave.RequestResponse{}, user.ErrHRAccessRequired
	}

	request, err := s.requestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if _, err := s.chart.Next(request.Status, approval.ActionApproveL2); err != nil {
		return leave.RequestResponse{}, transitionError(request.Status, leave.ErrNotAwaitingL2)
	}

	affected, err := s.requestRepo.ApproveL2(ctx, req.ID, p.UserID, req.Comment)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to apply level 2 approval: %w", err)
	}
	if affected == 0 {
		return leave.RequestResponse{}, leave.ErrNotAwaitingL2
	}

	s.recorder.Record(ctx, p.UserID, activity.ActionApproveL2, "leave_request", req.ID, req.Comment)

	return s.Get(ctx, req.ID)
}

func (s *Service) Reject(ctx context.Context, p user.Principal, req leave.RejectRequest) (leave.RequestResponse, error) {
	if !p.CanApprove() {
		return leave.RequestResponse{}, user.ErrSupervisorAccessRequired
	}
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	request, err := s.requestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if _, err := s.chart.Next(request.Status, approval.ActionReject); err != nil {
		return leave.RequestResponse{}, transitionError(request.Status, leave.ErrRequestProcessed)
	}

	affected, err := s.requestRepo.Reject(ctx, req.ID, p.UserID, req.Reason)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to reject leave request: %w", err)
	}
	if affected == 0 {
		return leave.RequestResponse{}, leave.ErrRequestProcessed
	}

	s.recorder.Record(ctx, p.UserID, activity.ActionReject, "leave_request", req.ID, &req.Reason)

	return s.Get(ctx, req.ID)
}

func (s *Service) Delete(ctx context.Context, p user.Principal, id string) error {
	if !p.CanDelete() {
		return user.ErrHRAccessRequired
	}

	if err := s.requestRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, p.UserID, activity.ActionDelete, "leave_request", id, nil)
	return nil
}

// BulkDelete reports how many of the requested ids were actually
// removed; callers compare against the requested count to spot races.
func (s *Service) BulkDelete(ctx context.Context, p user.Principal, req leave.BulkDeleteRequest) (leave.BulkDeleteResponse, error) {
	if !p.CanDelete() {
		return leave.BulkDeleteResponse{}, user.ErrHRAccessRequired
	}
	if err := req.Validate(); err != nil {
		return leave.BulkDeleteResponse{}, err
	}

	deleted, err := s.requestRepo.BulkDelete(ctx, req.IDs)
	if err != nil {
		return leave.BulkDeleteResponse{}, fmt.Errorf("failed to bulk delete leave requests: %w", err)
	}

	detail := fmt.Sprintf("requested %d, deleted %d", len(req.IDs), deleted)
	s.recorder.Record(ctx, p.UserID, activity.ActionBulkDelete, "leave_request", detail, nil)

	return leave.BulkDeleteResponse{
		Requested: int64(len(req.IDs)),
		Deleted:   deleted,
	}, nil
}

// transitionError maps a refused transition to the domain sentinel for
// the request's current state.
func transitionError(state approval.State, notAwaiting error) error {
	if state == approval.StateRejected || state == approval.StateApprovedL2 {
		return leave.ErrRequestProcessed
	}
	return notAwaiting
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

func toRequestResponse(r leave.Request) leave.RequestResponse {
	resp := leave.RequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		EmployeeCode:    r.EmployeeCode,
		LeaveType:       string(r.LeaveType),
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		Days:            r.Days(),
		Reason:          r.Reason,
		Status:          string(r.Status),
		L1ApproverName:  r.L1ApproverName,
		L1Comment:       r.L1Comment,
		L2ApproverName:  r.L2ApproverName,
		L2Comment:       r.L2Comment,
		RejectorName:    r.RejectorName,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}

	if r.L1ApprovedAt != nil {
		v := r.L1ApprovedAt.Format(time.RFC3339)
		resp.L1ApprovedAt = &v
	}
	if r.L2ApprovedAt != nil {
		v := r.L2ApprovedAt.Format(time.RFC3339)
		resp.L2ApprovedAt = &v
	}
	if r.RejectedAt != nil {
		v := r.RejectedAt.Format(time.RFC3339)
		resp.RejectedAt = &v
	}

	return resp
}

package pettycash

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/activity"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/pettycash"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
)

type Service struct {
	requestRepo pettycash.RequestRepository
	chart       *approval.Chart
	recorder    activity.Recorder
}

func NewService(requestRepo pettycash.RequestRepository, chart *approval.Chart, recorder activity.Recorder) *Service {
	return &Service{
		requestRepo: requestRepo,
		chart:       chart,
		recorder:    recorder,
	}
}

func (s *Service) Create(ctx context.Context, p user.Principal, req pettycash.CreateRequest) (pettycash.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return pettycash.RequestResponse{}, err
	}

	request := pettycash.Request{
		EmployeeID: p.EmployeeID,
		Amount:     req.Amount,
		Reason:     req.Reason,
		Status:     approval.StatePending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return pettycash.RequestResponse{}, fmt.Errorf("failed to create petty cash request: %w", err)
	}

	return toRequestResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (pettycash.RequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return pettycash.RequestResponse{}, err
	}
	return toRequestResponse(request), nil
}

func (s *Service) List(ctx context.Context, filter pettycash.Filter) (pettycash.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return pettycash.ListResponse{}, err
	}

	requests, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return pettycash.ListResponse{}, fmt.Errorf("failed to list petty cash requests: %w", err)
	}

	summary, err := s.requestRepo.Summarize(ctx, filter)
	if err != nil {
		return pettycash.ListResponse{}, fmt.Errorf("failed to summarize petty cash requests: %w", err)
	}

	resp := pettycash.ListResponse{
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

func (s *Service) Approve(ctx context.Context, p user.Principal, req pettycash.ApproveRequest) (pettycash.RequestResponse, error) {
	return s.decide(ctx, p, req.ID, approval.ActionApprove, req.Notes)
}

func (s *Service) Reject(ctx context.Context, p user.Principal, req pettycash.RejectRequest) (pettycash.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return pettycash.RequestResponse{}, err
	}
	return s.decide(ctx, p, req.ID, approval.ActionReject, &req.Reason)
}

func (s *Service) decide(ctx context.Context, p user.Principal, id string, action approval.Action, notes *string) (pettycash.RequestResponse, error) {
	if !p.CanApprove() {
		return pettycash.RequestResponse{}, user.ErrSupervisorAccessRequired
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return pettycash.RequestResponse{}, err
	}

	next, err := s.chart.Next(request.Status, action)
	if err != nil {
		if errors.Is(err, approval.ErrAlreadyProcessed) {
			return pettycash.RequestResponse{}, pettycash.ErrRequestProcessed
		}
		return pettycash.RequestResponse{}, err
	}

	guard := string(request.Status)
	now := time.Now()
	request.Status = next
	request.ApprovedBy = &p.UserID
	request.ApprovedAt = &now
	request.ApprovalNotes = notes

	affected, err := s.requestRepo.UpdateStatus(ctx, request, guard)
	if err != nil {
		return pettycash.RequestResponse{}, fmt.Errorf("failed to update petty cash status: %w", err)
	}
	if affected == 0 {
		return pettycash.RequestResponse{}, pettycash.ErrRequestProcessed
	}

	s.recorder.Record(ctx, p.UserID, string(action), "petty_cash_request", id, notes)

	return toRequestResponse(request), nil
}

func (s *Service) Delete(ctx context.Context, p user.Principal, id string) error {
	if !p.CanDelete() {
		return user.ErrHRAccessRequired
	}

	if err := s.requestRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, p.UserID, activity.ActionDelete, "petty_cash_request", id, nil)
	return nil
}

func (s *Service) BulkDelete(ctx context.Context, p user.Principal, ids []string) (int64, error) {
	if !p.CanDelete() {
		return 0, user.ErrHRAccessRequired
	}

	deleted, err := s.requestRepo.BulkDelete(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete petty cash requests: %w", err)
	}

	s.recorder.Record(ctx, p.UserID, activity.ActionBulkDelete, "petty_cash_request", fmt.Sprintf("%d ids", len(ids)), nil)

	return deleted, nil
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

func toRequestResponse(r pettycash.Request) pettycash.RequestResponse {
	resp := pettycash.RequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Amount:        r.Amount,
		Reason:        r.Reason,
		Status:        string(r.Status),
		ApprovalNotes: r.ApprovalNotes,
		ApproverName:  r.ApproverName,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}

	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		resp.EmployeeCode = *r.EmployeeCode
	}
	if r.ApprovedAt != nil {
		v := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}

	return resp
}

package expense

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/activity"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/expense"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/storage"
)

type Service struct {
	expenseRepo expense.ExpenseRepository
	storage     storage.FileStorage
	chart       *approval.Chart
	recorder    activity.Recorder
}

func NewService(expenseRepo expense.ExpenseRepository, fileStorage storage.FileStorage, chart *approval.Chart, recorder activity.Recorder) *Service {
	return &Service{
		expenseRepo: expenseRepo,
		storage:     fileStorage,
		chart:       chart,
		recorder:    recorder,
	}
}

func (s *Service) Create(ctx context.Context, p user.Principal, req expense.CreateRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	// Category must exist before the row is written.
	if _, err := s.expenseRepo.GetCategory(ctx, req.CategoryID); err != nil {
		return expense.ExpenseResponse{}, err
	}

	if req.File != nil && req.FileHeader != nil {
		path := fmt.Sprintf("expenses/%s/%s%s", p.EmployeeID, uuid.NewString(), filepath.Ext(req.FileHeader.Filename))
		stored, err := s.storage.Upload(ctx, req.File, path, req.FileHeader.Header.Get("Content-Type"))
		if err != nil {
			return expense.ExpenseResponse{}, fmt.Errorf("failed to upload receipt: %w", err)
		}
		url, err := s.storage.GetURL(ctx, stored, 0)
		if err != nil {
			return expense.ExpenseResponse{}, fmt.Errorf("failed to resolve receipt url: %w", err)
		}
		req.ReceiptURL = &url
	}

	e := expense.Expense{
		EmployeeID: p.EmployeeID,
		CategoryID: req.CategoryID,
		TaskID:     req.TaskID,
		Amount:     req.Amount,
		Reason:     req.Reason,
		ReceiptURL: req.ReceiptURL,
		Status:     approval.StatePending,
	}

	created, err := s.expenseRepo.Create(ctx, e)
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return toExpenseResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	e, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return toExpenseResponse(e), nil
}

func (s *Service) List(ctx context.Context, filter expense.Filter) (expense.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return expense.ListResponse{}, err
	}

	expenses, total, err := s.expenseRepo.List(ctx, filter)
	if err != nil {
		return expense.ListResponse{}, fmt.Errorf("failed to list expenses: %w", err)
	}

	summary, err := s.expenseRepo.Summarize(ctx, filter)
	if err != nil {
		return expense.ListResponse{}, fmt.Errorf("failed to summarize expenses: %w", err)
	}

	resp := expense.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
		Summary:    summary,
	}
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, toExpenseResponse(e))
	}

	return resp, nil
}

func (s *Service) Approve(ctx context.Context, p user.Principal, req expense.ApproveRequest) (expense.ExpenseResponse, error) {
	return s.decide(ctx, p, req.ID, approval.ActionApprove, req.Notes)
}

func (s *Service) Reject(ctx context.Context, p user.Principal, req expense.RejectRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}
	return s.decide(ctx, p, req.ID, approval.ActionReject, &req.Reason)
}

func (s *Service) decide(ctx context.Context, p user.Principal, id string, action approval.Action, notes *string) (expense.ExpenseResponse, error) {
	if !p.CanApprove() {
		return expense.ExpenseResponse{}, user.ErrSupervisorAccessRequired
	}

	e, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	next, err := s.chart.Next(e.Status, action)
	if err != nil {
		if errors.Is(err, approval.ErrAlreadyProcessed) {
			return expense.ExpenseResponse{}, expense.ErrExpenseProcessed
		}
		return expense.ExpenseResponse{}, err
	}

	guard := string(e.Status)
	now := time.Now()
	e.Status = next
	e.ApprovedBy = &p.UserID
	e.ApprovedAt = &now
	e.ApprovalNotes = notes

	affected, err := s.expenseRepo.UpdateStatus(ctx, e, guard)
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to update expense status: %w", err)
	}
	if affected == 0 {
		return expense.ExpenseResponse{}, expense.ErrExpenseProcessed
	}

	s.recorder.Record(ctx, p.UserID, string(action), "expense", id, notes)

	return toExpenseResponse(e), nil
}

func (s *Service) Delete(ctx context.Context, p user.Principal, id string) error {
	if !p.CanDelete() {
		return user.ErrHRAccessRequired
	}

	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, p.UserID, activity.ActionDelete, "expense", id, nil)
	return nil
}

func (s *Service) BulkDelete(ctx context.Context, p user.Principal, ids []string) (int64, error) {
	if !p.CanDelete() {
		return 0, user.ErrHRAccessRequired
	}

	deleted, err := s.expenseRepo.BulkDelete(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete expenses: %w", err)
	}

	s.recorder.Record(ctx, p.UserID, activity.ActionBulkDelete, "expense", fmt.Sprintf("%d ids", len(ids)), nil)

	return deleted, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]expense.Category, error) {
	return s.expenseRepo.ListCategories(ctx)
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

func toExpenseResponse(e expense.Expense) expense.ExpenseResponse {
	resp := expense.ExpenseResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		EmployeeName:  e.EmployeeName,
		EmployeeCode:  e.EmployeeCode,
		CategoryID:    e.CategoryID,
		CategoryName:  e.CategoryName,
		TaskID:        e.TaskID,
		TaskTitle:     e.TaskTitle,
		Amount:        e.Amount,
		Reason:        e.Reason,
		ReceiptURL:    e.ReceiptURL,
		Status:        string(e.Status),
		ApproverName:  e.ApproverName,
		ApprovalNotes: e.ApprovalNotes,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}

	if e.ApprovedAt != nil {
		v := e.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}

	return resp
}

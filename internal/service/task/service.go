package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/task"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
)

type Service struct {
	taskRepo    task.TaskRepository
	sessionRepo attendance.SessionRepository
	logger      *slog.Logger
}

func NewService(taskRepo task.TaskRepository, sessionRepo attendance.SessionRepository, logger *slog.Logger) *Service {
	return &Service{
		taskRepo:    taskRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

const (
	reasonNoOpenSession   = "no open attendance session"
	reasonUnfinishedTasks = "an active or pending task already exists"
)

// CanCreate requires an open attendance session and zero unfinished
// tasks. Either lookup failing answers false: starting a task is
// fail-closed, unlike check-in.
func (s *Service) CanCreate(ctx context.Context, employeeID string) (task.EligibilityResponse, error) {
	today := time.Now()
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	_, err := s.sessionRepo.GetOpenSession(ctx, employeeID, day)
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenSession) {
			return task.EligibilityResponse{Reason: reasonNoOpenSession}, nil
		}
		s.logger.Error("open session read failed", "employee_id", employeeID, "error", err)
		return task.EligibilityResponse{
			CanCreate: bool(attendance.TaskCreateOnError),
			Reason:    "attendance status unavailable",
		}, nil
	}

	unfinished, err := s.taskRepo.CountUnfinished(ctx, employeeID)
	if err != nil {
		s.logger.Error("unfinished task count failed", "employee_id", employeeID, "error", err)
		return task.EligibilityResponse{
			CanCreate: bool(attendance.TaskCreateOnError),
			Reason:    "task status unavailable",
		}, nil
	}
	if unfinished > 0 {
		return task.EligibilityResponse{Reason: reasonUnfinishedTasks}, nil
	}

	return task.EligibilityResponse{CanCreate: true}, nil
}

func (s *Service) Create(ctx context.Context, p user.Principal, req task.CreateRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	eligibility, err := s.CanCreate(ctx, p.EmployeeID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if !eligibility.CanCreate {
		if eligibility.Reason == reasonNoOpenSession {
			return task.TaskResponse{}, task.ErrNoOpenSession
		}
		return task.TaskResponse{}, task.ErrUnfinishedTasks
	}

	t := task.Task{
		EmployeeID:  p.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
		Status:      task.StatusActive,
	}

	created, err := s.taskRepo.Create(ctx, t)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return toTaskResponse(created), nil
}

func (s *Service) Complete(ctx context.Context, p user.Principal, id string) (task.TaskResponse, error) {
	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if t.EmployeeID != p.EmployeeID && !p.CanApprove() {
		return task.TaskResponse{}, task.ErrTaskNotFound
	}
	if t.Status == task.StatusCompleted {
		return task.TaskResponse{}, task.ErrTaskAlreadyClosed
	}

	now := time.Now()
	t.Status = task.StatusCompleted
	t.CompletedAt = &now

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to complete task: %w", err)
	}

	return toTaskResponse(t), nil
}

func (s *Service) Get(ctx context.Context, id string) (task.TaskResponse, error) {
	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return toTaskResponse(t), nil
}

func (s *Service) List(ctx context.Context, filter task.Filter) (task.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return task.ListResponse{}, err
	}

	tasks, total, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return task.ListResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	resp := task.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(t))
	}

	return resp, nil
}

func (s *Service) Delete(ctx context.Context, p user.Principal, id string) error {
	if !p.CanDelete() {
		return user.ErrHRAccessRequired
	}
	return s.taskRepo.Delete(ctx, id)
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

func toTaskResponse(t task.Task) task.TaskResponse {
	resp := task.TaskResponse{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		EmployeeName: t.EmployeeName,
		EmployeeCode: t.EmployeeCode,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}

	if t.CompletedAt != nil {
		v := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}

	return resp
}

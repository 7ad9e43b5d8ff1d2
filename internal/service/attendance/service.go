package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/activity"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/storage"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/utils"
)

type Service struct {
	sessionRepo attendance.SessionRepository
	storage     storage.FileStorage
	chart       *approval.Chart
	recorder    activity.Recorder
	logger      *slog.Logger
}

func NewService(sessionRepo attendance.SessionRepository, fileStorage storage.FileStorage, chart *approval.Chart, recorder activity.Recorder, logger *slog.Logger) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		storage:     fileStorage,
		chart:       chart,
		recorder:    recorder,
		logger:      logger,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GetStatus derives check-in/check-out legality from the day's session
// tally. A failed tally read falls back per the failure policy table:
// check-in stays permitted, check-out does not.
func (s *Service) GetStatus(ctx context.Context, employeeID string, date time.Time) (attendance.StatusResponse, error) {
	if date.IsZero() {
		date = time.Now()
	}
	day := dateOnly(date)

	counts, err := s.sessionRepo.CountSessions(ctx, employeeID, day)
	if err != nil {
		s.logger.Error("session tally read failed", "employee_id", employeeID, "error", err)
		return attendance.StatusResponse{
			CanCheckIn:  bool(attendance.CheckInOnError),
			CanCheckOut: bool(attendance.CheckOutOnError),
			Status:      "unknown",
		}, nil
	}

	return attendance.StatusResponse{
		CanCheckIn:  canCheckIn(counts),
		CanCheckOut: canCheckOut(counts),
		Status:      deriveStatus(counts),
	}, nil
}

// ValidateTransition applies the check-in cool-down rule. A failed
// lookup answers valid, per the cool-down failure policy.
func (s *Service) ValidateTransition(ctx context.Context, employeeID string, action string, at time.Time) attendance.TransitionResponse {
	if action != "check_in" {
		return attendance.TransitionResponse{Valid: true}
	}

	latest, err := s.sessionRepo.LatestCheckOut(ctx, employeeID, dateOnly(at))
	if err != nil {
		s.logger.Error("latest check-out read failed", "employee_id", employeeID, "error", err)
		return attendance.TransitionResponse{Valid: bool(attendance.CooldownOnError)}
	}

	if wait := cooldownRemaining(latest, at); wait > 0 {
		return attendance.TransitionResponse{
			Valid:   false,
			Message: fmt.Sprintf("check-in available in %s", wait.Round(time.Second)),
		}
	}

	return attendance.TransitionResponse{Valid: true}
}

func (s *Service) CheckIn(ctx context.Context, p user.Principal, req attendance.CheckInRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	now := time.Now()

	if v := s.ValidateTransition(ctx, p.EmployeeID, "check_in", now); !v.Valid {
		return attendance.SessionResponse{}, attendance.ErrCheckInCooldown
	}

	if req.File != nil && req.FileHeader != nil {
		path := fmt.Sprintf("attendance/%s/%s%s", p.EmployeeID, uuid.NewString(), filepath.Ext(req.FileHeader.Filename))
		stored, err := s.storage.Upload(ctx, req.File, path, req.FileHeader.Header.Get("Content-Type"))
		if err != nil {
			return attendance.SessionResponse{}, fmt.Errorf("failed to upload proof photo: %w", err)
		}
		url, err := s.storage.GetURL(ctx, stored, 0)
		if err != nil {
			return attendance.SessionResponse{}, fmt.Errorf("failed to resolve proof photo url: %w", err)
		}
		req.ProofPhotoURL = &url
	}

	session := attendance.Session{
		EmployeeID:       p.EmployeeID,
		Date:             dateOnly(now),
		CheckIn:          &now,
		CheckInLatitude:  req.Latitude,
		CheckInLongitude: req.Longitude,
		CheckInProofURL:  req.ProofPhotoURL,
		Status:           approval.StatePending,
	}

	created, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to create attendance session: %w", err)
	}

	return toSessionResponse(created), nil
}

func (s *Service) CheckOut(ctx context.Context, p user.Principal, req attendance.CheckOutRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	now := time.Now()

	open, err := s.sessionRepo.GetOpenSession(ctx, p.EmployeeID, dateOnly(now))
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenSession) {
			return attendance.SessionResponse{}, attendance.ErrNoOpenSession
		}
		// Closing a session needs proof an open one exists.
		return attendance.SessionResponse{}, fmt.Errorf("failed to find open session: %w", err)
	}

	if req.File != nil && req.FileHeader != nil {
		path := fmt.Sprintf("attendance/%s/%s%s", p.EmployeeID, uuid.NewString(), filepath.Ext(req.FileHeader.Filename))
		stored, err := s.storage.Upload(ctx, req.File, path, req.FileHeader.Header.Get("Content-Type"))
		if err != nil {
			return attendance.SessionResponse{}, fmt.Errorf("failed to upload proof photo: %w", err)
		}
		url, err := s.storage.GetURL(ctx, stored, 0)
		if err != nil {
			return attendance.SessionResponse{}, fmt.Errorf("failed to resolve proof photo url: %w", err)
		}
		req.ProofPhotoURL = &url
	}

	minutes := int(now.Sub(*open.CheckIn).Minutes())

	open.CheckOut = &now
	open.CheckOutLatitude = req.Latitude
	open.CheckOutLongitude = req.Longitude
	open.CheckOutProofURL = req.ProofPhotoURL
	open.WorkMinutes = &minutes

	if err := s.sessionRepo.Update(ctx, open); err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to close attendance session: %w", err)
	}

	return toSessionResponse(open), nil
}

func (s *Service) List(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	sessions, total, err := s.sessionRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendance sessions: %w", err)
	}

	summary, err := s.sessionRepo.Summarize(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to summarize attendance sessions: %w", err)
	}

	resp := attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
		Summary:    summary,
	}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, toSessionResponse(session))
	}

	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (attendance.SessionResponse, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.SessionResponse{}, err
	}
	return toSessionResponse(session), nil
}

func (s *Service) Approve(ctx context.Context, p user.Principal, req attendance.ApproveRequest) (attendance.SessionResponse, error) {
	return s.decide(ctx, p, req.ID, approval.ActionApprove, req.Notes)
}

func (s *Service) Reject(ctx context.Context, p user.Principal, req attendance.RejectRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}
	return s.decide(ctx, p, req.ID, approval.ActionReject, &req.Reason)
}

func (s *Service) decide(ctx context.Context, p user.Principal, id string, action approval.Action, notes *string) (attendance.SessionResponse, error) {
	if !p.CanApprove() {
		return attendance.SessionResponse{}, user.ErrSupervisorAccessRequired
	}

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	next, err := s.chart.Next(session.Status, action)
	if err != nil {
		if errors.Is(err, approval.ErrAlreadyProcessed) {
			return attendance.SessionResponse{}, attendance.ErrSessionProcessed
		}
		return attendance.SessionResponse{}, err
	}

	guard := string(session.Status)
	now := time.Now()
	session.Status = next
	session.ApprovedBy = &p.UserID
	session.ApprovedAt = &now
	session.ApprovalNotes = notes

	affected, err := s.sessionRepo.UpdateStatus(ctx, session, guard)
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to update session status: %w", err)
	}
	if affected == 0 {
		// Another approver won the race.
		return attendance.SessionResponse{}, attendance.ErrSessionProcessed
	}

	s.recorder.Record(ctx, p.UserID, string(action), "attendance_session", id, notes)

	return toSessionResponse(session), nil
}

func (s *Service) Delete(ctx context.Context, p user.Principal, id string) error {
	if !p.CanDelete() {
		return user.ErrHRAccessRequired
	}

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, p.UserID, activity.ActionDelete, "attendance_session", id, nil)
	return nil
}

func (s *Service) GetDailySummary(ctx context.Context, employeeID string, date time.Time) (attendance.DailySummary, error) {
	if date.IsZero() {
		date = time.Now()
	}
	return s.sessionRepo.GetDailySummary(ctx, employeeID, dateOnly(date))
}

func (s *Service) GetMonthlyStats(ctx context.Context, employeeID string, month, year int) (attendance.MonthlyStats, error) {
	return s.sessionRepo.GetMonthlyStats(ctx, employeeID, month, year)
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

func toSessionResponse(s attendance.Session) attendance.SessionResponse {
	resp := attendance.SessionResponse{
		ID:                s.ID,
		EmployeeID:        s.EmployeeID,
		Date:              s.Date.Format("2006-01-02"),
		CheckInLatitude:   s.CheckInLatitude,
		CheckInLongitude:  s.CheckInLongitude,
		CheckOutLatitude:  s.CheckOutLatitude,
		CheckOutLongitude: s.CheckOutLongitude,
		CheckInProofURL:   s.CheckInProofURL,
		CheckOutProofURL:  s.CheckOutProofURL,
		Status:            string(s.Status),
		ApprovalNotes:     s.ApprovalNotes,
		CreatedAt:         s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         s.UpdatedAt.Format(time.RFC3339),
	}

	if s.EmployeeName != nil {
		resp.EmployeeName = *s.EmployeeName
	}
	if s.EmployeeCode != nil {
		resp.EmployeeCode = *s.EmployeeCode
	}
	resp.ApproverName = s.ApproverName

	if s.CheckIn != nil {
		v := s.CheckIn.Format(time.RFC3339)
		resp.CheckInTime = &v
	}
	if s.CheckOut != nil {
		v := s.CheckOut.Format(time.RFC3339)
		resp.CheckOutTime = &v
	}
	if s.WorkMinutes != nil {
		hours := float64(*s.WorkMinutes) / 60
		resp.WorkingHours = &hours
	}

	// Distance between the two check locations, once both are known.
	if s.CheckInLatitude != nil && s.CheckInLongitude != nil &&
		s.CheckOutLatitude != nil && s.CheckOutLongitude != nil {
		d := utils.CalculateHaversineDistance(
			*s.CheckInLatitude, *s.CheckInLongitude,
			*s.CheckOutLatitude, *s.CheckOutLongitude,
		)
		resp.DistanceMeters = &d
	}

	return resp
}

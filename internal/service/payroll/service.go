package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/activity"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub-hr/staffhub-backend-go/internal/repository/postgresql"
)

type Service struct {
	db           *database.DB
	salaryRepo   payroll.SalaryRepository
	employeeRepo employee.EmployeeRepository
	sessionRepo  attendance.SessionRepository
	recorder     activity.Recorder
}

func NewService(db *database.DB, salaryRepo payroll.SalaryRepository, employeeRepo employee.EmployeeRepository, sessionRepo attendance.SessionRepository, recorder activity.Recorder) *Service {
	return &Service{
		db:           db,
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
		sessionRepo:  sessionRepo,
		recorder:     recorder,
	}
}

// daysInMonth is the calendar-day count; weekends and holidays are not
// excluded from the working-day total.
func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// computeSalary derives the prorated salary from the wage basis. A
// nonzero daily wage wins over the monthly basic salary.
func computeSalary(emp employee.Employee, presentDays, totalDays int) (decimal.Decimal, error) {
	if emp.IsDailyWage() {
		return emp.DailyWage.Mul(decimal.NewFromInt(int64(presentDays))), nil
	}
	if emp.BasicSalary == nil || emp.BasicSalary.IsZero() {
		return decimal.Zero, payroll.ErrNoWageBasis
	}
	return emp.BasicSalary.
		Div(decimal.NewFromInt(int64(totalDays))).
		Mul(decimal.NewFromInt(int64(presentDays))), nil
}

// Generate computes and upserts the salary record for the period. Only
// approved attendance days count as present; regeneration overwrites
// the prior record.
func (s *Service) Generate(ctx context.Context, p user.Principal, req payroll.GenerateRequest) (payroll.SalaryResponse, error) {
	if !p.CanApproveFinal() {
		return payroll.SalaryResponse{}, user.ErrHRAccessRequired
	}
	if err := req.Validate(); err != nil {
		return payroll.SalaryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	totalDays := daysInMonth(req.Month, req.Year)

	// The day count and the upsert share one transaction so a
	// concurrent attendance approval cannot slip between them.
	var saved payroll.SalaryRecord
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		presentDays, err := s.sessionRepo.CountPresentDays(txCtx, req.EmployeeID, req.Month, req.Year)
		if err != nil {
			return fmt.Errorf("failed to count present days: %w", err)
		}

		calculated, err := computeSalary(emp, presentDays, totalDays)
		if err != nil {
			return err
		}

		rec := payroll.SalaryRecord{
			EmployeeID:       req.EmployeeID,
			Month:            req.Month,
			Year:             req.Year,
			PresentDays:      presentDays,
			TotalWorkingDays: totalDays,
			CalculatedSalary: calculated,
			TotalSalary:      calculated,
			Bonus:            req.Bonus,
			Advance:          req.Advance,
		}
		if emp.DailyWage != nil {
			rec.DailyWage = *emp.DailyWage
		}
		if emp.BasicSalary != nil {
			rec.BasicSalary = *emp.BasicSalary
		}

		// Generation knows no statutory components; net pay is the
		// prorated figure plus bonus, minus advance and the flat deduction.
		rec.NetSalary = calculated.Add(req.Bonus).Sub(req.Advance).Sub(req.Deductions)
		rec.Deductions = req.Deductions.Add(req.Advance)

		saved, err = s.salaryRepo.Upsert(txCtx, rec)
		if err != nil {
			return fmt.Errorf("failed to upsert salary record: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	detail := fmt.Sprintf("%04d-%02d", req.Year, req.Month)
	s.recorder.Record(ctx, p.UserID, activity.ActionGenerate, "salary_record", saved.ID, &detail)

	return toSalaryResponse(saved), nil
}

// Edit applies field overrides and recomputes net pay with the
// canonical formula. The base defaults to the manually entered total.
func (s *Service) Edit(ctx context.Context, p user.Principal, req payroll.EditRequest) (payroll.SalaryResponse, error) {
	if !p.CanApproveFinal() {
		return payroll.SalaryResponse{}, user.ErrHRAccessRequired
	}
	if err := req.Validate(); err != nil {
		return payroll.SalaryResponse{}, err
	}

	rec, err := s.salaryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	applyOverrides(&rec, req)

	base := payroll.BaseTotal
	if req.Base != nil {
		base = payroll.Base(*req.Base)
	}
	rec.Recompute(base)

	if err := s.salaryRepo.Update(ctx, rec); err != nil {
		return payroll.SalaryResponse{}, fmt.Errorf("failed to update salary record: %w", err)
	}

	s.recorder.Record(ctx, p.UserID, activity.ActionEdit, "salary_record", rec.ID, nil)

	return toSalaryResponse(rec), nil
}

func applyOverrides(rec *payroll.SalaryRecord, req payroll.EditRequest) {
	if req.TotalSalary != nil {
		rec.TotalSalary = *req.TotalSalary
	}
	if req.Bonus != nil {
		rec.Bonus = *req.Bonus
	}
	if req.VariableBonus != nil {
		rec.VariableBonus = *req.VariableBonus
	}
	if req.Advance != nil {
		rec.Advance = *req.Advance
	}
	if req.EPFEmployee != nil {
		rec.EPFEmployee = *req.EPFEmployee
	}
	if req.ESIEmployee != nil {
		rec.ESIEmployee = *req.ESIEmployee
	}
	if req.ProfessionalTax != nil {
		rec.ProfessionalTax = *req.ProfessionalTax
	}
	if req.TDS != nil {
		rec.TDS = *req.TDS
	}
	if req.Gratuity != nil {
		rec.Gratuity = *req.Gratuity
	}
	if req.GHI != nil {
		rec.GHI = *req.GHI
	}
}

func (s *Service) Get(ctx context.Context, id string) (payroll.SalaryResponse, error) {
	rec, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}
	return toSalaryResponse(rec), nil
}

func (s *Service) List(ctx context.Context, filter payroll.Filter) (payroll.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListResponse{}, err
	}

	records, total, err := s.salaryRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListResponse{}, fmt.Errorf("failed to list salary records: %w", err)
	}

	summary, err := s.salaryRepo.Summarize(ctx, filter)
	if err != nil {
		return payroll.ListResponse{}, fmt.Errorf("failed to summarize salary records: %w", err)
	}

	resp := payroll.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
		Summary:    summary,
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, toSalaryResponse(rec))
	}

	return resp, nil
}

func (s *Service) Delete(ctx context.Context, p user.Principal, id string) error {
	if !p.CanDelete() {
		return user.ErrHRAccessRequired
	}

	if err := s.salaryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, p.UserID, activity.ActionDelete, "salary_record", id, nil)
	return nil
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

func toSalaryResponse(r payroll.SalaryRecord) payroll.SalaryResponse {
	return payroll.SalaryResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		EmployeeCode:     r.EmployeeCode,
		Month:            r.Month,
		Year:             r.Year,
		PresentDays:      r.PresentDays,
		TotalWorkingDays: r.TotalWorkingDays,
		DailyWage:        r.DailyWage,
		BasicSalary:      r.BasicSalary,
		CalculatedSalary: r.CalculatedSalary,
		TotalSalary:      r.TotalSalary,
		Bonus:            r.Bonus,
		VariableBonus:    r.VariableBonus,
		Advance:          r.Advance,
		EPFEmployee:      r.EPFEmployee,
		ESIEmployee:      r.ESIEmployee,
		ProfessionalTax:  r.ProfessionalTax,
		TDS:              r.TDS,
		Gratuity:         r.Gratuity,
		GHI:              r.GHI,
		Deductions:       r.Deductions,
		NetSalary:        r.NetSalary,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.Format(time.RFC3339),
	}
}

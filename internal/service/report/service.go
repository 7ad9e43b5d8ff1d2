package report

import (
	"context"
	"fmt"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/report"
)

type Service struct {
	reportRepo report.ReportRepository
}

func NewService(reportRepo report.ReportRepository) *Service {
	return &Service{reportRepo: reportRepo}
}

func (s *Service) GetMonthlyReport(ctx context.Context, filter report.Filter) (report.MonthlyReport, error) {
	if err := filter.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	attendance, err := s.reportRepo.GetAttendanceReport(ctx, filter)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to build attendance report: %w", err)
	}

	payroll, err := s.reportRepo.GetPayrollReport(ctx, filter)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to build payroll report: %w", err)
	}

	spend, err := s.reportRepo.GetSpendTotals(ctx, filter)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to build spend totals: %w", err)
	}

	return report.MonthlyReport{
		Attendance: attendance,
		Payroll:    payroll,
		Spend:      spend,
	}, nil
}

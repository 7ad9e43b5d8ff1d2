package report

import "context"

// ReportRepository runs the read-only aggregation queries behind the
// admin reports.
type ReportRepository interface {
	GetAttendanceReport(ctx context.Context, filter Filter) ([]AttendanceRow, error)
	GetPayrollReport(ctx context.Context, filter Filter) ([]PayrollRow, error)
	GetSpendTotals(ctx context.Context, filter Filter) (SpendTotals, error)
}

type ReportService interface {
	GetMonthlyReport(ctx context.Context, filter Filter) (MonthlyReport, error)
}

package http

import (
	"net/http"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/report"
	"github.com/staffhub-hr/staffhub-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Monthly returns the combined attendance, payroll and spend report.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	filter := report.Filter{
		EmployeeID: queryString(r, "employee_id"),
		Month:      queryIntPtr(r, "month"),
		Year:       queryIntPtr(r, "year"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetMonthlyReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

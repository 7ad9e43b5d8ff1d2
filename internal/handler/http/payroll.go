package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/payroll"
	"github.com/staffhub-hr/staffhub-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	salaryService payroll.SalaryService
}

func NewPayrollHandler(salaryService payroll.SalaryService) PayrollHandler {
	return &payrollHandlerImpl{
		salaryService: salaryService,
	}
}

// Generate computes and stores the salary record for one employee and
// period, replacing any prior run for the same period.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.Generate(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary generated", result)
}

// Edit overrides salary fields and recomputes net pay.
func (h *payrollHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req payroll.EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.salaryService.Edit(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary updated", result)
}

// Get implements PayrollHandler.
func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.salaryService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PayrollHandler.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payroll.Filter{
		EmployeeID: queryString(r, "employee_id"),
		Month:      queryIntPtr(r, "month"),
		Year:       queryIntPtr(r, "year"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 0),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.salaryService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Delete implements PayrollHandler.
func (h *payrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.salaryService.Delete(r.Context(), p, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record deleted", nil)
}

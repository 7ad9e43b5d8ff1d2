package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/expense"
	"github.com/staffhub-hr/staffhub-backend-go/internal/handler/http/response"
)

type ExpenseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	BulkDelete(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
}

type expenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &expenseHandlerImpl{
		expenseService: expenseService,
	}
}

// Create submits an expense with its receipt photo. The body is
// multipart: a 'data' JSON field plus a 'receipt' file.
func (h *expenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req expense.CreateRequest

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}
	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The receipt photo is optional.
	file, fileHeader, err := r.FormFile("receipt")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.expenseService.Create(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense submitted", result)
}

// ListMine lists the caller's own expenses.
func (h *expenseHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	filter := h.parseFilter(r)
	filter.EmployeeID = &p.EmployeeID

	h.list(w, r, filter)
}

// List implements ExpenseHandler.
func (h *expenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.parseFilter(r))
}

func (h *expenseHandlerImpl) parseFilter(r *http.Request) expense.Filter {
	return expense.Filter{
		EmployeeID: queryString(r, "employee_id"),
		CategoryID: queryString(r, "category_id"),
		TaskID:     queryString(r, "task_id"),
		Status:     queryString(r, "status"),
		StartDate:  queryString(r, "start_date"),
		EndDate:    queryString(r, "end_date"),
		Month:      queryString(r, "month"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 0),
	}
}

func (h *expenseHandlerImpl) list(w http.ResponseWriter, r *http.Request, filter expense.Filter) {
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.expenseService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Get implements ExpenseHandler.
func (h *expenseHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.expenseService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements ExpenseHandler.
func (h *expenseHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req expense.ApproveRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.expenseService.Approve(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense approved", result)
}

// Reject implements ExpenseHandler.
func (h *expenseHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req expense.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.expenseService.Reject(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense rejected", result)
}

// Delete implements ExpenseHandler.
func (h *expenseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.expenseService.Delete(r.Context(), p, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense deleted", nil)
}

// BulkDelete implements ExpenseHandler.
func (h *expenseHandlerImpl) BulkDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(req.IDs) == 0 {
		response.BadRequest(w, "ids must not be empty", nil)
		return
	}

	deleted, err := h.expenseService.BulkDelete(r.Context(), p, req.IDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expenses deleted", map[string]int64{
		"requested": int64(len(req.IDs)),
		"deleted":   deleted,
	})
}

// ListCategories implements ExpenseHandler.
func (h *expenseHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.expenseService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

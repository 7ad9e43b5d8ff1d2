package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/pettycash"
	"github.com/staffhub-hr/staffhub-backend-go/internal/handler/http/response"
)

type PettyCashHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	BulkDelete(w http.ResponseWriter, r *http.Request)
}

type pettyCashHandlerImpl struct {
	requestService pettycash.RequestService
}

func NewPettyCashHandler(requestService pettycash.RequestService) PettyCashHandler {
	return &pettyCashHandlerImpl{
		requestService: requestService,
	}
}

// Create implements PettyCashHandler.
func (h *pettyCashHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req pettycash.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.requestService.Create(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Petty cash request submitted", result)
}

// ListMine lists the caller's own requests.
func (h *pettyCashHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	filter := h.parseFilter(r)
	filter.EmployeeID = &p.EmployeeID

	h.list(w, r, filter)
}

// List implements PettyCashHandler.
func (h *pettyCashHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.parseFilter(r))
}

func (h *pettyCashHandlerImpl) parseFilter(r *http.Request) pettycash.Filter {
	return pettycash.Filter{
		EmployeeID: queryString(r, "employee_id"),
		Status:     queryString(r, "status"),
		StartDate:  queryString(r, "start_date"),
		EndDate:    queryString(r, "end_date"),
		Month:      queryString(r, "month"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 0),
	}
}

func (h *pettyCashHandlerImpl) list(w http.ResponseWriter, r *http.Request, filter pettycash.Filter) {
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Get implements PettyCashHandler.
func (h *pettyCashHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.requestService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements PettyCashHandler.
func (h *pettyCashHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req pettycash.ApproveRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.requestService.Approve(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Petty cash request approved", result)
}

// Reject implements PettyCashHandler.
func (h *pettyCashHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req pettycash.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.requestService.Reject(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Petty cash request rejected", result)
}

// Delete implements PettyCashHandler.
func (h *pettyCashHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.requestService.Delete(r.Context(), p, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Petty cash request deleted", nil)
}

// BulkDelete removes a batch of requests and reports how many of the
// requested ids actually existed.
func (h *pettyCashHandlerImpl) BulkDelete(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := h.requestService.BulkDelete(r.Context(), p, req.IDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Petty cash requests deleted", map[string]int64{
		"requested": int64(len(req.IDs)),
		"deleted":   deleted,
	})
}

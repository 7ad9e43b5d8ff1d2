package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/activity"
	"github.com/staffhub-hr/staffhub-backend-go/internal/handler/http/response"
)

type ActivityHandler interface {
	ListByEntity(w http.ResponseWriter, r *http.Request)
	ListByActor(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	logService activity.LogService
}

func NewActivityHandler(logService activity.LogService) ActivityHandler {
	return &activityHandlerImpl{
		logService: logService,
	}
}

// ListByEntity returns the audit trail of one record, newest first.
func (h *activityHandlerImpl) ListByEntity(w http.ResponseWriter, r *http.Request) {
	entityType := chi.URLParam(r, "entityType")
	entityID := chi.URLParam(r, "entityID")
	if entityType == "" || entityID == "" {
		response.BadRequest(w, "entity type and id are required", nil)
		return
	}

	result, err := h.logService.EntityHistory(r.Context(), entityType, entityID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByActor returns an actor's recent audit entries.
func (h *activityHandlerImpl) ListByActor(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "actorID")
	if actorID == "" {
		response.BadRequest(w, "actor id is required", nil)
		return
	}

	result, err := h.logService.ActorHistory(r.Context(), actorID, queryInt(r, "limit", 0))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

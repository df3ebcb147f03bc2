package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"mindwell/internal/model"
	"mindwell/internal/service"
	"mindwell/internal/transport/rest/middleware"
)

// EscalationHandler handles escalation endpoints
type EscalationHandler struct {
	escalationSvc *service.EscalationService
}

// NewEscalationHandler creates a new escalation handler
func NewEscalationHandler(escalationSvc *service.EscalationService) *EscalationHandler {
	return &EscalationHandler{escalationSvc: escalationSvc}
}

// Raise handles POST /v1/escalations
func (h *EscalationHandler) Raise(w http.ResponseWriter, r *http.Request) {
	var req model.EscalationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.EscalationLevel {
	case model.EscalationLow, model.EscalationMedium, model.EscalationHigh, model.EscalationCritical:
	default:
		writeError(w, http.StatusBadRequest, "invalid escalation level")
		return
	}

	userID := middleware.GetUserID(r.Context())

	resources := h.escalationSvc.Raise(r.Context(), userID, req.EscalationLevel, req.Message)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "escalation_logged",
		"resources": resources,
	})
}

// Pending handles GET /v1/escalations (counsellor only)
func (h *EscalationHandler) Pending(w http.ResponseWriter, r *http.Request) {
	records, err := h.escalationSvc.Pending(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load escalations")
		return
	}
	if records == nil {
		records = []*model.EscalationRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

// Acknowledge handles PATCH /v1/escalations/{id}/ack (counsellor only)
func (h *EscalationHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.escalationSvc.Acknowledge(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to acknowledge escalation")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "acknowledged"})
}

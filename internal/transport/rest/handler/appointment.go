package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"mindwell/internal/model"
	"mindwell/internal/service"
	"mindwell/internal/transport/rest/middleware"
)

// AppointmentHandler handles counsellor appointment endpoints
type AppointmentHandler struct {
	appointmentSvc *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentSvc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentSvc: appointmentSvc}
}

// List handles GET /v1/counsellor/appointments
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	counsellorID := middleware.GetCounsellorID(r.Context())

	appts, err := h.appointmentSvc.List(r.Context(), counsellorID, 100)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load appointments")
		return
	}
	if appts == nil {
		appts = []*model.Appointment{}
	}

	writeJSON(w, http.StatusOK, appts)
}

// UpdateStatus handles PATCH /v1/counsellor/appointments/{id}/status
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	counsellorID := middleware.GetCounsellorID(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.appointmentSvc.UpdateStatus(r.Context(), counsellorID, id, req.Status); err != nil {
		writeAppointmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Reschedule handles PATCH /v1/counsellor/appointments/{id}/reschedule
func (h *AppointmentHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req model.RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" || req.Time == "" {
		writeError(w, http.StatusBadRequest, "date and time are required")
		return
	}

	counsellorID := middleware.GetCounsellorID(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.appointmentSvc.Reschedule(r.Context(), counsellorID, id, req.Date, req.Time); err != nil {
		writeAppointmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "rescheduled"})
}

// Slots handles GET /v1/counsellor/availability?date=...
func (h *AppointmentHandler) Slots(w http.ResponseWriter, r *http.Request) {
	counsellorID := middleware.GetCounsellorID(r.Context())
	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}

	slots, err := h.appointmentSvc.Slots(r.Context(), counsellorID, date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load availability")
		return
	}
	if slots == nil {
		slots = []*model.AvailabilitySlot{}
	}

	writeJSON(w, http.StatusOK, slots)
}

// AddSlot handles POST /v1/counsellor/availability
func (h *AppointmentHandler) AddSlot(w http.ResponseWriter, r *http.Request) {
	var req model.SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" || req.Time == "" {
		writeError(w, http.StatusBadRequest, "date and time are required")
		return
	}

	counsellorID := middleware.GetCounsellorID(r.Context())

	if err := h.appointmentSvc.UpsertSlot(r.Context(), counsellorID, req.Date, req.Time); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save slot")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// ToggleSlot handles PATCH /v1/counsellor/availability/toggle
func (h *AppointmentHandler) ToggleSlot(w http.ResponseWriter, r *http.Request) {
	var req model.SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" || req.Time == "" || req.Active == nil {
		writeError(w, http.StatusBadRequest, "date, time and active are required")
		return
	}

	counsellorID := middleware.GetCounsellorID(r.Context())

	if err := h.appointmentSvc.ToggleSlot(r.Context(), counsellorID, req.Date, req.Time, *req.Active); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update slot")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// GetNote handles GET /v1/counsellor/appointments/{id}/notes
func (h *AppointmentHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	counsellorID := middleware.GetCounsellorID(r.Context())
	id := mux.Vars(r)["id"]

	note, err := h.appointmentSvc.GetNote(r.Context(), id, counsellorID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load note")
		return
	}
	if note == nil {
		writeJSON(w, http.StatusOK, map[string]string{"text": ""})
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// PutNote handles PUT /v1/counsellor/appointments/{id}/notes
func (h *AppointmentHandler) PutNote(w http.ResponseWriter, r *http.Request) {
	var req model.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	counsellorID := middleware.GetCounsellorID(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.appointmentSvc.PutNote(r.Context(), id, counsellorID, req.Text); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save note")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func writeAppointmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAppointmentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotYourAppointment):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "failed to update appointment")
	}
}

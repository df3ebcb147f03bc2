package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"mindwell/internal/assessment"
	"mindwell/internal/model"
	"mindwell/internal/service"
	"mindwell/internal/transport/rest/middleware"
)

// AssessmentHandler handles clinical questionnaire endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Questions handles GET /v1/assessments/questions/{instrument}
func (h *AssessmentHandler) Questions(w http.ResponseWriter, r *http.Request) {
	instrument, ok := parseInstrument(mux.Vars(r)["instrument"])
	if !ok {
		writeError(w, http.StatusNotFound, "unknown instrument")
		return
	}

	bank, err := h.assessmentSvc.Questions(instrument)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown instrument")
		return
	}

	writeJSON(w, http.StatusOK, bank)
}

// ScorePHQ9 handles POST /v1/assessments/phq9
func (h *AssessmentHandler) ScorePHQ9(w http.ResponseWriter, r *http.Request) {
	h.score(w, r, model.InstrumentPHQ9)
}

// ScoreGAD7 handles POST /v1/assessments/gad7
func (h *AssessmentHandler) ScoreGAD7(w http.ResponseWriter, r *http.Request) {
	h.score(w, r, model.InstrumentGAD7)
}

func (h *AssessmentHandler) score(w http.ResponseWriter, r *http.Request, instrument model.Instrument) {
	var req model.AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())

	result, err := h.assessmentSvc.Score(r.Context(), userID, instrument, req.Responses)
	if err != nil {
		var verr *assessment.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to score assessment")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ScoreCombined handles POST /v1/assessments/combined
func (h *AssessmentHandler) ScoreCombined(w http.ResponseWriter, r *http.Request) {
	var req model.CombinedAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())

	result, err := h.assessmentSvc.ScoreCombined(r.Context(), userID, req.PHQ9Responses, req.GAD7Responses)
	if err != nil {
		var verr *assessment.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to score assessments")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// History handles GET /v1/assessments/history
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	records, err := h.assessmentSvc.History(r.Context(), userID, 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if records == nil {
		records = []*model.AssessmentRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

func parseInstrument(raw string) (model.Instrument, bool) {
	switch strings.ToLower(raw) {
	case "phq9", "phq-9":
		return model.InstrumentPHQ9, true
	case "gad7", "gad-7":
		return model.InstrumentGAD7, true
	default:
		return "", false
	}
}

package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"mindwell/internal/model"
	"mindwell/internal/service"
	"mindwell/internal/transport/rest/middleware"
)

// ChatHandler handles chat and sentiment analytics endpoints
type ChatHandler struct {
	chatSvc *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatSvc *service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// Message handles POST /v1/chat
func (h *ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	userID := middleware.GetUserID(r.Context())
	sessionID := middleware.GetSessionID(r.Context())

	turn, analysis := h.chatSvc.HandleMessage(r.Context(), userID, sessionID, req.Message)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"response": turn,
		"analysis": analysis,
	})
}

// Trends handles GET /v1/analytics/sentiment-trends
func (h *ChatHandler) Trends(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	summary, err := h.chatSvc.Trends(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute trends")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

package rest

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"mindwell/internal/service"
	"mindwell/internal/transport/rest/handler"
	"mindwell/internal/transport/rest/middleware"
	"mindwell/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService        *service.AuthService
	ChatService        *service.ChatService
	AssessmentService  *service.AssessmentService
	EscalationService  *service.EscalationService
	AppointmentService *service.AppointmentService
	WSHub              *ws.Hub
	CORSOrigins        []string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	chatHandler := handler.NewChatHandler(c.ChatService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	escalationHandler := handler.NewEscalationHandler(c.EscalationService)
	appointmentHandler := handler.NewAppointmentHandler(c.AppointmentService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORSOrigins))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/session", authHandler.Session).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/questions/{instrument}", assessmentHandler.Questions).Methods("GET", "OPTIONS")

	// WebSocket routes (counsellor token in query param)
	v1.HandleFunc("/ws/alerts", wsHandler.ServeAlerts).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// User routes (require session token)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/chat", chatHandler.Message).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessments/phq9", assessmentHandler.ScorePHQ9).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessments/gad7", assessmentHandler.ScoreGAD7).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessments/combined", assessmentHandler.ScoreCombined).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessments/history", assessmentHandler.History).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/escalations", escalationHandler.Raise).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/analytics/sentiment-trends", chatHandler.Trends).Methods("GET", "OPTIONS")

	// Counsellor routes (require counsellor auth)
	counsellorRoutes := v1.NewRoute().Subrouter()
	counsellorRoutes.Use(authMW.RequireCounsellor)

	counsellorRoutes.HandleFunc("/escalations", escalationHandler.Pending).Methods("GET", "OPTIONS")
	counsellorRoutes.HandleFunc("/escalations/{id}/ack", escalationHandler.Acknowledge).Methods("PATCH", "OPTIONS")
	counsellorRoutes.HandleFunc("/counsellor/appointments", appointmentHandler.List).Methods("GET", "OPTIONS")
	counsellorRoutes.HandleFunc("/counsellor/appointments/{id}/status", appointmentHandler.UpdateStatus).Methods("PATCH", "OPTIONS")
	counsellorRoutes.HandleFunc("/counsellor/appointments/{id}/reschedule", appointmentHandler.Reschedule).Methods("PATCH", "OPTIONS")
	counsellorRoutes.HandleFunc("/counsellor/appointments/{id}/notes", appointmentHandler.GetNote).Methods("GET", "OPTIONS")
	counsellorRoutes.HandleFunc("/counsellor/appointments/{id}/notes", appointmentHandler.PutNote).Methods("PUT", "OPTIONS")
	counsellorRoutes.HandleFunc("/counsellor/availability", appointmentHandler.Slots).Methods("GET", "OPTIONS")
	counsellorRoutes.HandleFunc("/counsellor/availability", appointmentHandler.AddSlot).Methods("POST", "OPTIONS")
	counsellorRoutes.HandleFunc("/counsellor/availability/toggle", appointmentHandler.ToggleSlot).Methods("PATCH", "OPTIONS")

	return r
}

func corsMiddleware(origins []string) mux.MiddlewareFunc {
	allowedOrigins := "*"
	if len(origins) > 0 {
		allowedOrigins = strings.Join(origins, ", ")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

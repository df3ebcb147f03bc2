package model

import "time"

// ConcernType is the topical classification of a chat message
type ConcernType string

const (
	ConcernAnxiety    ConcernType = "anxiety"
	ConcernDepression ConcernType = "depression"
	ConcernSleep      ConcernType = "sleep"
	ConcernAcademic   ConcernType = "academic"
	ConcernCrisis     ConcernType = "crisis"
	ConcernGeneral    ConcernType = "general"
)

// EscalationLevel indicates how urgently a human support path should be invoked
type EscalationLevel string

const (
	EscalationLow      EscalationLevel = "low"
	EscalationMedium   EscalationLevel = "medium"
	EscalationHigh     EscalationLevel = "high"
	EscalationCritical EscalationLevel = "critical"
)

// ChatTurnResponse is what the support bot returns for a single user message
type ChatTurnResponse struct {
	ResponseText    string          `json:"response_text" bson:"response_text"`
	EscalationLevel EscalationLevel `json:"escalation_level" bson:"escalation_level"`
	Suggestions     []string        `json:"suggestions" bson:"suggestions"`
	CrisisDetected  bool            `json:"crisis_detected" bson:"crisis_detected"`
	ConcernType     ConcernType     `json:"concern_type" bson:"concern_type"`
}

// Conversation is the persisted record of one chat turn
type Conversation struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	UserID          string          `json:"user_id" bson:"user_id"`
	SessionID       string          `json:"session_id" bson:"session_id"`
	UserMessage     string          `json:"user_message" bson:"user_message"`
	ResponseText    string          `json:"response_text" bson:"response_text"`
	Analysis        *AnalysisResult `json:"analysis,omitempty" bson:"analysis,omitempty"`
	EscalationLevel EscalationLevel `json:"escalation_level" bson:"escalation_level"`
	Timestamp       time.Time       `json:"timestamp" bson:"timestamp"`
}

// EscalationRecord logs an escalation raised for a user
type EscalationRecord struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	UserID          string          `json:"user_id" bson:"user_id"`
	EscalationLevel EscalationLevel `json:"escalation_level" bson:"escalation_level"`
	Message         string          `json:"message" bson:"message"`
	Status          string          `json:"status" bson:"status"` // "pending", "acknowledged", "resolved"
	Timestamp       time.Time       `json:"timestamp" bson:"timestamp"`
}

// EmergencyContact is a crisis hotline entry
type EmergencyContact struct {
	Name   string `json:"name" bson:"name"`
	Number string `json:"number" bson:"number"`
}

// CrisisResources is the fixed payload returned when an escalation is logged
type CrisisResources struct {
	EmergencyContacts []EmergencyContact `json:"emergency_contacts" bson:"emergency_contacts"`
	ImmediateActions  []string           `json:"immediate_actions" bson:"immediate_actions"`
}

// ChatRequest is one inbound chat message
type ChatRequest struct {
	Message string `json:"message"`
}

// EscalationRequest asks the backend to log an escalation
type EscalationRequest struct {
	EscalationLevel EscalationLevel `json:"escalation_level"`
	Message         string          `json:"message"`
}

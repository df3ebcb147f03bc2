package model

import "time"

// Instrument identifies a clinical screening questionnaire
type Instrument string

const (
	InstrumentPHQ9 Instrument = "PHQ-9"
	InstrumentGAD7 Instrument = "GAD-7"
)

// Severity is an instrument-specific severity band
type Severity string

const (
	SeverityMinimal          Severity = "minimal"
	SeverityMild             Severity = "mild"
	SeverityModerate         Severity = "moderate"
	SeverityModeratelySevere Severity = "moderately_severe"
	SeveritySevere           Severity = "severe"
)

// RiskLevel is the combined two-instrument risk tier
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ClinicalAssessment is a scored PHQ-9 or GAD-7 questionnaire.
// TotalScore is always the sum of Responses.
type ClinicalAssessment struct {
	Instrument      Instrument `json:"instrument" bson:"instrument"`
	Responses       []int      `json:"responses" bson:"responses"`
	TotalScore      int        `json:"total_score" bson:"total_score"`
	Severity        Severity   `json:"severity" bson:"severity"`
	Description     string     `json:"description" bson:"description"`
	SuicideRisk     bool       `json:"suicide_risk" bson:"suicide_risk"` // PHQ-9 item 9 only
	Recommendations []string   `json:"recommendations" bson:"recommendations"`
	Timestamp       time.Time  `json:"timestamp" bson:"timestamp"`
}

// CombinedAssessment pairs a PHQ-9 and a GAD-7 result with a derived risk tier
type CombinedAssessment struct {
	PHQ9                    *ClinicalAssessment `json:"phq9" bson:"phq9"`
	GAD7                    *ClinicalAssessment `json:"gad7" bson:"gad7"`
	OverallRisk             RiskLevel           `json:"overall_risk" bson:"overall_risk"`
	CombinedRecommendations []string            `json:"combined_recommendations" bson:"combined_recommendations"`
	Timestamp               time.Time           `json:"timestamp" bson:"timestamp"`
}

// AssessmentRecord is the persisted form of a scored assessment
type AssessmentRecord struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	UserID          string     `json:"user_id" bson:"user_id"`
	Instrument      Instrument `json:"instrument" bson:"instrument"`
	Responses       []int      `json:"responses" bson:"responses"`
	TotalScore      int        `json:"total_score" bson:"total_score"`
	Severity        Severity   `json:"severity" bson:"severity"`
	SuicideRisk     bool       `json:"suicide_risk" bson:"suicide_risk"`
	Recommendations []string   `json:"recommendations" bson:"recommendations"`
	Timestamp       time.Time  `json:"timestamp" bson:"timestamp"`
}

// AssessmentQuestion is one question shown to the frontend
type AssessmentQuestion struct {
	ID   int    `json:"id" bson:"id"`
	Text string `json:"text" bson:"text"`
}

// QuestionBank is the full question set for an instrument
type QuestionBank struct {
	Instrument  Instrument           `json:"instrument" bson:"instrument"`
	Title       string               `json:"title" bson:"title"`
	Description string               `json:"description" bson:"description"`
	Scale       map[string]string    `json:"scale" bson:"scale"`
	Questions   []AssessmentQuestion `json:"questions" bson:"questions"`
}

// AssessmentRequest carries one instrument's item responses
type AssessmentRequest struct {
	Responses []int `json:"responses"`
}

// CombinedAssessmentRequest carries both instruments' responses
type CombinedAssessmentRequest struct {
	PHQ9Responses []int `json:"phq9_responses"`
	GAD7Responses []int `json:"gad7_responses"`
}

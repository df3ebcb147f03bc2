package model

// SentimentLabel classifies the overall emotional tone of a message
type SentimentLabel string

const (
	LabelPositive SentimentLabel = "positive"
	LabelNeutral  SentimentLabel = "neutral"
	LabelNegative SentimentLabel = "negative"
	LabelCrisis   SentimentLabel = "crisis"
)

// Intensity describes how strongly the label applies
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityMedium   Intensity = "medium"
	IntensityHigh     Intensity = "high"
	IntensityCritical Intensity = "critical"
)

// EmotionalKeywords holds the lexicon words matched in a message
type EmotionalKeywords struct {
	Positive []string `json:"positive" bson:"positive"`
	Negative []string `json:"negative" bson:"negative"`
}

// AnalysisResult is the full output of sentiment/crisis analysis for one text.
// Created fresh per input and never mutated afterwards.
type AnalysisResult struct {
	RawText           string            `json:"raw_text" bson:"raw_text"`
	NormalizedText    string            `json:"normalized_text" bson:"normalized_text"`
	Label             SentimentLabel    `json:"label" bson:"label"`
	Score             float64           `json:"score" bson:"score"`
	Confidence        float64           `json:"confidence" bson:"confidence"`
	Intensity         Intensity         `json:"intensity" bson:"intensity"`
	CrisisDetected    bool              `json:"crisis_detected" bson:"crisis_detected"`
	CrisisIndicators  []string          `json:"crisis_indicators" bson:"crisis_indicators"`
	EmotionalKeywords EmotionalKeywords `json:"emotional_keywords" bson:"emotional_keywords"`
	Recommendations   []string          `json:"recommendations" bson:"recommendations"`
}

// TrendSummary aggregates sentiment over a user's recent conversations
type TrendSummary struct {
	Trend              string  `json:"trend" bson:"trend"` // "improving", "declining", "stable"
	AverageScore       float64 `json:"average_score" bson:"average_score"`
	Volatility         float64 `json:"volatility" bson:"volatility"`
	PositivePercentage float64 `json:"positive_percentage" bson:"positive_percentage"`
	NegativePercentage float64 `json:"negative_percentage" bson:"negative_percentage"`
	CrisisCount        int     `json:"crisis_count" bson:"crisis_count"`
}

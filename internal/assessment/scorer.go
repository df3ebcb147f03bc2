package assessment

import (
	"fmt"
	"time"

	"mindwell/internal/lexicon"
	"mindwell/internal/model"
	"mindwell/internal/recommend"
)

// Expected response counts per instrument
const (
	PHQ9Length = 9
	GAD7Length = 7
)

// suicideItemIndex is PHQ-9 item 9, the self-harm/suicidal-ideation item
const suicideItemIndex = 8

// ValidationError reports a malformed instrument submission. It is the
// only error the scoring path surfaces to callers; scoring is rejected
// outright, never partial.
type ValidationError struct {
	Instrument model.Instrument
	Index      int // -1 for length errors
	Value      int
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Instrument, e.Reason)
	}
	return fmt.Sprintf("%s: invalid response %d for question %d: %s", e.Instrument, e.Value, e.Index+1, e.Reason)
}

// ErrUnknownInstrument is returned for instruments outside PHQ-9/GAD-7
var ErrUnknownInstrument = fmt.Errorf("unknown instrument")

// Score validates and scores a single instrument submission
func Score(instrument model.Instrument, responses []int) (*model.ClinicalAssessment, error) {
	var (
		expected int
		bands    []lexicon.SeverityBand
	)
	switch instrument {
	case model.InstrumentPHQ9:
		expected, bands = PHQ9Length, lexicon.PHQ9Bands
	case model.InstrumentGAD7:
		expected, bands = GAD7Length, lexicon.GAD7Bands
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, instrument)
	}

	if err := validate(instrument, responses, expected); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range responses {
		total += r
	}

	severity, description := bandFor(bands, total)

	assessment := &model.ClinicalAssessment{
		Instrument:  instrument,
		Responses:   responses,
		TotalScore:  total,
		Severity:    severity,
		Description: description,
		Timestamp:   time.Now(),
	}

	if instrument == model.InstrumentPHQ9 {
		// Surfaced independently of severity: a low total can still
		// carry suicide risk.
		assessment.SuicideRisk = responses[suicideItemIndex] > 0
		assessment.Recommendations = recommend.ForPHQ9(total)
	} else {
		assessment.Recommendations = recommend.ForGAD7(total)
	}

	return assessment, nil
}

// ScoreCombined scores both instruments and derives the overall risk tier
func ScoreCombined(phq9Responses, gad7Responses []int) (*model.CombinedAssessment, error) {
	phq9, err := Score(model.InstrumentPHQ9, phq9Responses)
	if err != nil {
		return nil, err
	}
	gad7, err := Score(model.InstrumentGAD7, gad7Responses)
	if err != nil {
		return nil, err
	}

	return &model.CombinedAssessment{
		PHQ9:                    phq9,
		GAD7:                    gad7,
		OverallRisk:             overallRisk(phq9.Severity, gad7.Severity),
		CombinedRecommendations: recommend.Combine(phq9.Recommendations, gad7.Recommendations),
		Timestamp:               time.Now(),
	}, nil
}

// Questions returns the question bank for an instrument, for the frontend
func Questions(instrument model.Instrument) (*model.QuestionBank, error) {
	switch instrument {
	case model.InstrumentPHQ9:
		return bank(instrument, "Depression Screening (PHQ-9)",
			"Over the last 2 weeks, how often have you been bothered by any of the following problems?",
			lexicon.PHQ9Questions), nil
	case model.InstrumentGAD7:
		return bank(instrument, "Anxiety Screening (GAD-7)",
			"Over the last 2 weeks, how often have you been bothered by the following problems?",
			lexicon.GAD7Questions), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, instrument)
	}
}

func bank(instrument model.Instrument, title, description string, questions []string) *model.QuestionBank {
	qs := make([]model.AssessmentQuestion, 0, len(questions))
	for i, q := range questions {
		qs = append(qs, model.AssessmentQuestion{ID: i + 1, Text: q})
	}
	return &model.QuestionBank{
		Instrument:  instrument,
		Title:       title,
		Description: description,
		Scale:       lexicon.LikertScale,
		Questions:   qs,
	}
}

func validate(instrument model.Instrument, responses []int, expected int) error {
	if len(responses) != expected {
		return &ValidationError{
			Instrument: instrument,
			Index:      -1,
			Reason:     fmt.Sprintf("requires exactly %d responses, got %d", expected, len(responses)),
		}
	}
	for i, r := range responses {
		if r < 0 || r > 3 {
			return &ValidationError{
				Instrument: instrument,
				Index:      i,
				Value:      r,
				Reason:     "must be 0-3",
			}
		}
	}
	return nil
}

func bandFor(bands []lexicon.SeverityBand, total int) (model.Severity, string) {
	for _, b := range bands {
		if total >= b.Min && total <= b.Max {
			return b.Severity, b.Description
		}
	}
	// Unreachable for validated input; bands cover the full range
	return model.SeverityMinimal, "Score out of range"
}

// overallRisk implements the compound two-instrument risk rule
func overallRisk(phq9, gad7 model.Severity) model.RiskLevel {
	phq9Elevated := phq9 == model.SeveritySevere || phq9 == model.SeverityModeratelySevere
	phq9Moderate := phq9 == model.SeverityModerate || phq9 == model.SeverityModeratelySevere
	gad7Moderate := gad7 == model.SeverityModerate || gad7 == model.SeveritySevere

	if phq9Elevated || gad7 == model.SeveritySevere || (phq9Moderate && gad7Moderate) {
		return model.RiskHigh
	}
	if phq9Moderate || gad7Moderate {
		return model.RiskMedium
	}
	return model.RiskLow
}

package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"mindwell/internal/assessment"
	"mindwell/internal/model"
	"mindwell/internal/repository"
)

// AssessmentService scores clinical instruments and persists the results
type AssessmentService struct {
	repo repository.AssessmentRepo
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(repo repository.AssessmentRepo) *AssessmentService {
	return &AssessmentService{repo: repo}
}

// Score scores one instrument for a user. Validation failure is the only
// hard error; persistence failure is logged and swallowed.
func (s *AssessmentService) Score(ctx context.Context, userID string, instrument model.Instrument, responses []int) (*model.ClinicalAssessment, error) {
	result, err := assessment.Score(instrument, responses)
	if err != nil {
		return nil, err
	}

	s.persist(ctx, userID, result)
	return result, nil
}

// ScoreCombined scores both instruments and derives the combined risk
func (s *AssessmentService) ScoreCombined(ctx context.Context, userID string, phq9, gad7 []int) (*model.CombinedAssessment, error) {
	combined, err := assessment.ScoreCombined(phq9, gad7)
	if err != nil {
		return nil, err
	}

	s.persist(ctx, userID, combined.PHQ9)
	s.persist(ctx, userID, combined.GAD7)
	return combined, nil
}

// Questions returns the question bank for an instrument
func (s *AssessmentService) Questions(instrument model.Instrument) (*model.QuestionBank, error) {
	return assessment.Questions(instrument)
}

// History returns a user's recent assessment records, newest first
func (s *AssessmentService) History(ctx context.Context, userID string, limit int64) ([]*model.AssessmentRecord, error) {
	return s.repo.GetByUserID(ctx, userID, limit)
}

func (s *AssessmentService) persist(ctx context.Context, userID string, result *model.ClinicalAssessment) {
	if userID == "" {
		return
	}

	record := &model.AssessmentRecord{
		UserID:          userID,
		Instrument:      result.Instrument,
		Responses:       result.Responses,
		TotalScore:      result.TotalScore,
		Severity:        result.Severity,
		SuicideRisk:     result.SuicideRisk,
		Recommendations: result.Recommendations,
		Timestamp:       result.Timestamp,
	}
	if _, err := s.repo.Create(ctx, record); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("instrument", string(result.Instrument)).Msg("failed to save assessment")
	}
}

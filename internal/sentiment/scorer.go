package sentiment

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/rs/zerolog/log"
)

// PolarityScorer estimates general sentiment for a piece of text.
// Polarity is in [-1,1], subjectivity in [0,1].
type PolarityScorer interface {
	Score(text string) (polarity, subjectivity float64, err error)
}

// VaderScorer is the lexicon-only scorer, always available
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer creates a VADER-backed polarity scorer
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VaderScorer) Score(text string) (float64, float64, error) {
	scores := s.analyzer.PolarityScores(text)
	subjectivity := scores.Positive + scores.Negative
	if subjectivity > 1 {
		subjectivity = 1
	}
	return scores.Compound, subjectivity, nil
}

// modelArtifact is the on-disk format of a trained word-weight model
type modelArtifact struct {
	Weights map[string]float64 `json:"weights"`
	Bias    float64            `json:"bias"`
}

// ModelScorer scores text with a pre-trained word-weight artifact
type ModelScorer struct {
	weights map[string]float64
	bias    float64
}

// LoadModelScorer reads a model artifact from path
func LoadModelScorer(path string) (*ModelScorer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var artifact modelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, err
	}
	return &ModelScorer{weights: artifact.Weights, bias: artifact.Bias}, nil
}

func (s *ModelScorer) Score(text string) (float64, float64, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return 0, 0.5, nil
	}

	sum := s.bias
	matched := 0
	for _, tok := range tokens {
		if w, ok := s.weights[tok]; ok {
			sum += w
			matched++
		}
	}

	polarity := sum
	if matched > 0 {
		polarity = sum / float64(matched)
	}
	if polarity > 1 {
		polarity = 1
	} else if polarity < -1 {
		polarity = -1
	}

	// Coverage of weighted vocabulary stands in for subjectivity
	subjectivity := float64(matched) / float64(len(tokens))
	return polarity, subjectivity, nil
}

// NewScorer selects the trained-model scorer when an artifact is present
// at modelPath, falling back to the lexicon-only VADER scorer. A missing
// or unreadable artifact is not fatal.
func NewScorer(modelPath string) PolarityScorer {
	if modelPath != "" {
		scorer, err := LoadModelScorer(modelPath)
		if err == nil {
			log.Info().Str("path", modelPath).Msg("loaded pre-trained sentiment model")
			return scorer
		}
		log.Warn().Err(err).Str("path", modelPath).Msg("sentiment model unavailable, using lexicon-only scorer")
	}
	return NewVaderScorer()
}

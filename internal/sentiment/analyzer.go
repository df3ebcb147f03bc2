package sentiment

import (
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"mindwell/internal/lexicon"
	"mindwell/internal/model"
	"mindwell/internal/recommend"
)

// Weights for combining the general polarity estimate with the
// mental-health keyword score. Fixed by contract.
const (
	polarityWeight = 0.7
	keywordWeight  = 0.3
)

// Label thresholds on the combined score
const (
	positiveThreshold  = 0.3
	negativeThreshold  = -0.3
	highIntensityBound = 0.7
)

// Analyzer performs sentiment and crisis analysis over free text.
// It is stateless apart from the read-only scorer and safe for
// concurrent use.
type Analyzer struct {
	scorer PolarityScorer
}

// NewAnalyzer creates an analyzer on top of the given polarity scorer
func NewAnalyzer(scorer PolarityScorer) *Analyzer {
	return &Analyzer{scorer: scorer}
}

// Analyze runs the full pipeline over one text. It never fails: scorer
// errors degrade to keyword-only scoring, and any other fault yields
// the neutral default result.
func (a *Analyzer) Analyze(text string) (result *model.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("sentiment analysis failed, returning default result")
			result = a.defaultResult(text)
		}
	}()

	normalized := Normalize(text)
	result = a.defaultResult(text)
	result.NormalizedText = normalized

	// Empty or whitespace-only input carries no signal
	if normalized == "" {
		result.Recommendations = recommend.ForAnalysis(result.Label, result.Intensity, false)
		return result
	}

	polarity, _ := a.polarity(normalized)

	tokens := strings.Fields(normalized)
	keywordScore, keywords := scoreKeywords(tokens)

	combined := polarityWeight*polarity + keywordWeight*keywordScore

	indicators := scanCrisis(normalized, tokens)

	result.EmotionalKeywords = keywords
	result.CrisisIndicators = indicators
	result.CrisisDetected = len(indicators) > 0

	if result.CrisisDetected {
		// Crisis always overrides the polarity-based label
		result.Label = model.LabelCrisis
		result.Score = -1.0
		result.Confidence = 0.9
		result.Intensity = model.IntensityCritical
	} else {
		result.Score = combined
		switch {
		case combined >= positiveThreshold:
			result.Label = model.LabelPositive
			result.Intensity = intensityFor(combined)
		case combined <= negativeThreshold:
			result.Label = model.LabelNegative
			result.Intensity = intensityFor(combined)
		default:
			result.Label = model.LabelNeutral
			result.Intensity = model.IntensityLow
		}
		result.Confidence = math.Min(math.Abs(combined)*1.5, 1.0)
	}

	result.Recommendations = recommend.ForAnalysis(result.Label, result.Intensity, result.CrisisDetected)
	return result
}

// AnalyzeBatch analyzes several texts in order
func (a *Analyzer) AnalyzeBatch(texts []string) []*model.AnalysisResult {
	results := make([]*model.AnalysisResult, 0, len(texts))
	for _, t := range texts {
		results = append(results, a.Analyze(t))
	}
	return results
}

// polarity asks the scorer for a general sentiment estimate. On error
// the estimate degrades to zero so keyword scoring carries the result.
func (a *Analyzer) polarity(text string) (float64, float64) {
	polarity, subjectivity, err := a.scorer.Score(text)
	if err != nil {
		log.Warn().Err(err).Msg("polarity scorer unavailable, falling back to keyword score")
		return 0, 0.5
	}
	return polarity, subjectivity
}

// scoreKeywords counts lexicon matches and returns the normalized
// keyword score (positive - negative) / tokens.
func scoreKeywords(tokens []string) (float64, model.EmotionalKeywords) {
	keywords := model.EmotionalKeywords{Positive: []string{}, Negative: []string{}}
	for _, tok := range tokens {
		if lexicon.IsPositive(tok) {
			keywords.Positive = append(keywords.Positive, tok)
		} else if lexicon.IsNegative(tok) {
			keywords.Negative = append(keywords.Negative, tok)
		}
	}
	if len(tokens) == 0 {
		return 0, keywords
	}
	return float64(len(keywords.Positive)-len(keywords.Negative)) / float64(len(tokens)), keywords
}

// scanCrisis collects crisis keywords from the tokens and crisis phrases
// from the full normalized text, in lexicon order.
func scanCrisis(normalized string, tokens []string) []string {
	indicators := []string{}
	for _, tok := range tokens {
		if lexicon.IsCrisis(tok) {
			indicators = append(indicators, tok)
		}
	}
	for _, phrase := range lexicon.CrisisPhrases {
		if strings.Contains(normalized, phrase) {
			indicators = append(indicators, phrase)
		}
	}
	return indicators
}

func intensityFor(combined float64) model.Intensity {
	if math.Abs(combined) >= highIntensityBound {
		return model.IntensityHigh
	}
	return model.IntensityMedium
}

// defaultResult is the neutral best-effort result used when analysis
// cannot proceed.
func (a *Analyzer) defaultResult(text string) *model.AnalysisResult {
	return &model.AnalysisResult{
		RawText:           text,
		NormalizedText:    text,
		Label:             model.LabelNeutral,
		Score:             0,
		Confidence:        0,
		Intensity:         model.IntensityLow,
		CrisisDetected:    false,
		CrisisIndicators:  []string{},
		EmotionalKeywords: model.EmotionalKeywords{Positive: []string{}, Negative: []string{}},
		Recommendations:   recommend.DefaultRecommendations,
	}
}

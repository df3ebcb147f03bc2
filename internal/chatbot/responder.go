package chatbot

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog/log"

	"mindwell/internal/lexicon"
	"mindwell/internal/model"
	"mindwell/internal/sentiment"
)

// Escalation thresholds on the combined sentiment score. These operate
// on the classifier's score, not on its intensity band.
const (
	highThreshold     = -0.7
	elevatedThreshold = -0.4
	mediumThreshold   = -0.2
)

// Responder turns an analyzed user message into a support response.
// Stateless and safe for concurrent use.
type Responder struct {
	// pick selects a random index; replaceable in tests
	pick func(n int) int
}

// NewResponder creates a responder with unseeded random template choice
func NewResponder() *Responder {
	return &Responder{pick: rand.Intn}
}

// Respond builds the chat turn for a user message and its analysis.
// It never fails: any internal fault yields the fixed fallback response.
func (r *Responder) Respond(message string, analysis *model.AnalysisResult) (resp *model.ChatTurnResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("response generation failed, returning fallback")
			resp = fallback()
		}
	}()

	if analysis == nil {
		return fallback()
	}

	// Redundant safety check: the raw message is re-scanned for crisis
	// phrases even when the analysis missed them.
	if analysis.CrisisDetected || containsCrisisPhrase(message) {
		return r.crisisResponse()
	}

	concern := ClassifyConcern(message)
	template := lexicon.ConcernTemplates[concern]

	var sb strings.Builder
	sb.WriteString(template.Intros[r.pick(len(template.Intros))])
	sb.WriteString("\n\nHere are some things you can try:\n")
	for i, technique := range template.Techniques {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, technique))
	}

	return &model.ChatTurnResponse{
		ResponseText:    sb.String(),
		EscalationLevel: escalationFor(analysis.Score, concern),
		Suggestions:     lexicon.ConcernSuggestions[concern],
		CrisisDetected:  false,
		ConcernType:     concern,
	}
}

// ClassifyConcern picks the concern type by keyword frequency over the
// topic lexicons. Keywords match whole tokens and repeats count each
// time. Ties resolve in declaration order; no match means general.
func ClassifyConcern(message string) model.ConcernType {
	normalized := sentiment.Normalize(message)

	tokenCounts := make(map[string]int)
	for _, tok := range strings.Fields(normalized) {
		tokenCounts[strings.Trim(tok, ".!?")]++
	}

	best := model.ConcernGeneral
	bestCount := 0
	for _, concern := range lexicon.ConcernOrder {
		count := 0
		for _, kw := range lexicon.ConcernKeywords[concern] {
			if strings.ContainsRune(kw, ' ') {
				count += strings.Count(normalized, kw)
			} else {
				count += tokenCounts[kw]
			}
		}
		if count > bestCount {
			best = concern
			bestCount = count
		}
	}
	return best
}

// escalationFor maps the combined sentiment score and concern type to an
// escalation level. Crisis is handled before this is reached.
func escalationFor(score float64, concern model.ConcernType) model.EscalationLevel {
	switch {
	case score < highThreshold:
		return model.EscalationHigh
	case score < elevatedThreshold && (concern == model.ConcernDepression || concern == model.ConcernCrisis):
		return model.EscalationHigh
	case score < mediumThreshold:
		return model.EscalationMedium
	default:
		return model.EscalationLow
	}
}

func (r *Responder) crisisResponse() *model.ChatTurnResponse {
	var sb strings.Builder
	sb.WriteString(lexicon.CrisisIntros[r.pick(len(lexicon.CrisisIntros))])
	sb.WriteString("\n\n")
	for _, line := range lexicon.CrisisResourceLines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return &model.ChatTurnResponse{
		ResponseText:    sb.String(),
		EscalationLevel: model.EscalationCritical,
		Suggestions:     lexicon.CrisisSuggestions,
		CrisisDetected:  true,
		ConcernType:     model.ConcernCrisis,
	}
}

func containsCrisisPhrase(message string) bool {
	normalized := sentiment.Normalize(message)
	for _, phrase := range lexicon.CrisisPhrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

func fallback() *model.ChatTurnResponse {
	return &model.ChatTurnResponse{
		ResponseText:    lexicon.FallbackResponse,
		EscalationLevel: model.EscalationLow,
		Suggestions:     lexicon.ConcernSuggestions[model.ConcernGeneral],
		CrisisDetected:  false,
		ConcernType:     model.ConcernGeneral,
	}
}

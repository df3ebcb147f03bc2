package recommend

import (
	"strings"

	"mindwell/internal/model"
)

// Fixed recommendation tables keyed by analysis outcome and clinical
// score tiers. Lists are ordered and never empty.

// ForAnalysis picks recommendations for a sentiment analysis outcome
func ForAnalysis(label model.SentimentLabel, intensity model.Intensity, crisisDetected bool) []string {
	switch {
	case crisisDetected:
		return []string{
			"Immediate crisis intervention needed",
			"Contact emergency services or crisis hotline",
			"Ensure safety of the individual",
			"Professional mental health support required",
		}
	case label == model.LabelNegative && intensity == model.IntensityHigh:
		return []string{
			"High priority for professional support",
			"Consider immediate counseling session",
			"Monitor for crisis indicators",
			"Provide additional resources and support",
		}
	case label == model.LabelNegative:
		return []string{
			"Moderate support needed",
			"Offer coping strategies",
			"Consider counseling referral",
			"Monitor progress",
		}
	case label == model.LabelPositive:
		return []string{
			"Continue current support strategies",
			"Encourage positive coping mechanisms",
			"Maintain regular check-ins",
		}
	default:
		return []string{
			"General support and monitoring",
			"Provide resources for future reference",
			"Regular check-ins recommended",
		}
	}
}

// DefaultRecommendations are used when analysis itself fails
var DefaultRecommendations = []string{"General support and monitoring recommended"}

// ForPHQ9 picks recommendations for a PHQ-9 total score
func ForPHQ9(total int) []string {
	switch {
	case total >= 20:
		return []string{
			"Immediate professional intervention recommended",
			"Consider psychiatric evaluation",
			"Regular therapy sessions (weekly or bi-weekly)",
			"Monitor for safety concerns",
			"Consider medication evaluation",
			"Crisis intervention resources available",
		}
	case total >= 15:
		return []string{
			"Professional counseling strongly recommended",
			"Consider therapy sessions (weekly)",
			"Monitor symptoms closely",
			"Consider medication evaluation",
			"Develop safety plan if needed",
		}
	case total >= 10:
		return []string{
			"Professional counseling recommended",
			"Consider therapy sessions (bi-weekly)",
			"Learn coping strategies",
			"Monitor symptoms",
			"Consider support groups",
		}
	case total >= 5:
		return []string{
			"Self-help strategies and monitoring",
			"Consider brief counseling",
			"Learn stress management techniques",
			"Regular check-ins recommended",
			"Access mental health resources",
		}
	default:
		return []string{
			"Continue current self-care practices",
			"Regular mental health check-ins",
			"Access resources for future reference",
			"Maintain healthy lifestyle habits",
		}
	}
}

// ForGAD7 picks recommendations for a GAD-7 total score
func ForGAD7(total int) []string {
	switch {
	case total >= 15:
		return []string{
			"Immediate professional intervention recommended",
			"Consider psychiatric evaluation",
			"Regular therapy sessions (weekly)",
			"Consider medication evaluation",
			"Learn anxiety management techniques",
			"Crisis intervention resources available",
		}
	case total >= 10:
		return []string{
			"Professional counseling recommended",
			"Consider therapy sessions (bi-weekly)",
			"Learn anxiety management techniques",
			"Practice relaxation exercises",
			"Consider support groups",
		}
	case total >= 5:
		return []string{
			"Self-help strategies and monitoring",
			"Consider brief counseling",
			"Learn stress management techniques",
			"Practice mindfulness and relaxation",
			"Regular check-ins recommended",
		}
	default:
		return []string{
			"Continue current self-care practices",
			"Regular mental health check-ins",
			"Access resources for future reference",
			"Maintain healthy lifestyle habits",
		}
	}
}

// priorityKeywords mark recommendations that must sort ahead of the rest
var priorityKeywords = []string{"immediate", "professional", "crisis", "psychiatric"}

// Dedupe removes duplicates while keeping first-seen order
func Dedupe(recs []string) []string {
	seen := make(map[string]struct{}, len(recs))
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Prioritize partitions recommendations so urgent-care entries come first.
// Order within each partition follows the input.
func Prioritize(recs []string) []string {
	prioritized := make([]string, 0, len(recs))
	others := make([]string, 0, len(recs))
	for _, r := range recs {
		lower := strings.ToLower(r)
		urgent := false
		for _, kw := range priorityKeywords {
			if strings.Contains(lower, kw) {
				urgent = true
				break
			}
		}
		if urgent {
			prioritized = append(prioritized, r)
		} else {
			others = append(others, r)
		}
	}
	return append(prioritized, others...)
}

// Combine merges two recommendation lists into the final prioritized set
func Combine(a, b []string) []string {
	return Prioritize(Dedupe(append(append([]string{}, a...), b...)))
}

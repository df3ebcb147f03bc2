package sentiment

import (
	"math"

	"mindwell/internal/model"
)

// Trends summarizes sentiment over a sequence of analyses ordered
// oldest to newest.
func Trends(analyses []*model.AnalysisResult) *model.TrendSummary {
	if len(analyses) == 0 {
		return &model.TrendSummary{Trend: "stable"}
	}

	scores := make([]float64, 0, len(analyses))
	positive, negative, crisisCount := 0, 0, 0
	for _, a := range analyses {
		scores = append(scores, a.Score)
		switch a.Label {
		case model.LabelPositive:
			positive++
		case model.LabelNegative:
			negative++
		}
		if a.CrisisDetected {
			crisisCount++
		}
	}

	// Trend compares the last three scores against everything before
	trend := "stable"
	if len(scores) >= 2 {
		recentN := 3
		if len(scores) < recentN {
			recentN = len(scores)
		}
		recentAvg := mean(scores[len(scores)-recentN:])
		olderAvg := recentAvg
		if len(scores) > recentN {
			olderAvg = mean(scores[:len(scores)-recentN])
		}
		switch {
		case recentAvg > olderAvg+0.1:
			trend = "improving"
		case recentAvg < olderAvg-0.1:
			trend = "declining"
		}
	}

	volatility := 0.0
	if len(scores) > 1 {
		m := mean(scores)
		variance := 0.0
		for _, s := range scores {
			variance += (s - m) * (s - m)
		}
		volatility = math.Sqrt(variance / float64(len(scores)))
	}

	n := float64(len(analyses))
	return &model.TrendSummary{
		Trend:              trend,
		AverageScore:       mean(scores),
		Volatility:         volatility,
		PositivePercentage: float64(positive) / n * 100,
		NegativePercentage: float64(negative) / n * 100,
		CrisisCount:        crisisCount,
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

package sentiment

import (
	"math"
	"testing"

	"mindwell/internal/model"
)

func analysesFromScores(scores []float64) []*model.AnalysisResult {
	out := make([]*model.AnalysisResult, 0, len(scores))
	for _, s := range scores {
		label := model.LabelNeutral
		if s >= 0.3 {
			label = model.LabelPositive
		} else if s <= -0.3 {
			label = model.LabelNegative
		}
		out = append(out, &model.AnalysisResult{Score: s, Label: label})
	}
	return out
}

func TestTrendsEmpty(t *testing.T) {
	summary := Trends(nil)
	if summary.Trend != "stable" {
		t.Errorf("trend = %q, want stable", summary.Trend)
	}
	if summary.AverageScore != 0 || summary.CrisisCount != 0 {
		t.Error("empty input must yield zeroed summary")
	}
}

func TestTrendsImproving(t *testing.T) {
	// Older scores are low, last three are clearly higher
	summary := Trends(analysesFromScores([]float64{-0.6, -0.5, 0.4, 0.5, 0.6}))
	if summary.Trend != "improving" {
		t.Errorf("trend = %q, want improving", summary.Trend)
	}
}

func TestTrendsDeclining(t *testing.T) {
	summary := Trends(analysesFromScores([]float64{0.5, 0.6, -0.4, -0.5, -0.6}))
	if summary.Trend != "declining" {
		t.Errorf("trend = %q, want declining", summary.Trend)
	}
}

func TestTrendsStableWithinBand(t *testing.T) {
	// Differences inside the +/-0.1 band do not flip the trend
	summary := Trends(analysesFromScores([]float64{0.0, 0.05, 0.02, 0.08}))
	if summary.Trend != "stable" {
		t.Errorf("trend = %q, want stable", summary.Trend)
	}
}

func TestTrendsPercentagesAndCrisis(t *testing.T) {
	analyses := analysesFromScores([]float64{0.5, -0.5, 0.0, 0.5})
	analyses[1].CrisisDetected = true

	summary := Trends(analyses)

	if summary.CrisisCount != 1 {
		t.Errorf("crisis count = %d, want 1", summary.CrisisCount)
	}
	if math.Abs(summary.PositivePercentage-50) > 1e-9 {
		t.Errorf("positive%% = %v, want 50", summary.PositivePercentage)
	}
	if math.Abs(summary.NegativePercentage-25) > 1e-9 {
		t.Errorf("negative%% = %v, want 25", summary.NegativePercentage)
	}
}

func TestTrendsSingleEntry(t *testing.T) {
	summary := Trends(analysesFromScores([]float64{-0.9}))
	if summary.Trend != "stable" {
		t.Errorf("trend = %q, want stable for one entry", summary.Trend)
	}
	if summary.Volatility != 0 {
		t.Errorf("volatility = %v, want 0 for one entry", summary.Volatility)
	}
}

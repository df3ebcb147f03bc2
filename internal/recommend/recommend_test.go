package recommend

import (
	"reflect"
	"strings"
	"testing"

	"mindwell/internal/model"
)

func TestForAnalysisCrisisWinsOverLabel(t *testing.T) {
	recs := ForAnalysis(model.LabelPositive, model.IntensityLow, true)
	if !strings.Contains(recs[0], "crisis intervention") {
		t.Errorf("crisis recommendations expected, got %v", recs)
	}
}

func TestForAnalysisTiers(t *testing.T) {
	high := ForAnalysis(model.LabelNegative, model.IntensityHigh, false)
	moderate := ForAnalysis(model.LabelNegative, model.IntensityMedium, false)
	positive := ForAnalysis(model.LabelPositive, model.IntensityMedium, false)
	neutral := ForAnalysis(model.LabelNeutral, model.IntensityLow, false)

	for name, recs := range map[string][]string{
		"high": high, "moderate": moderate, "positive": positive, "neutral": neutral,
	} {
		if len(recs) == 0 {
			t.Errorf("%s tier must not be empty", name)
		}
	}
	if reflect.DeepEqual(high, moderate) {
		t.Error("high and moderate negative tiers must differ")
	}
	if !strings.Contains(high[0], "High priority") {
		t.Errorf("unexpected high tier: %v", high)
	}
}

func TestForPHQ9Tiers(t *testing.T) {
	cases := []struct {
		total int
		first string
	}{
		{27, "Immediate professional intervention recommended"},
		{20, "Immediate professional intervention recommended"},
		{19, "Professional counseling strongly recommended"},
		{14, "Professional counseling recommended"},
		{9, "Self-help strategies and monitoring"},
		{4, "Continue current self-care practices"},
	}
	for _, tc := range cases {
		recs := ForPHQ9(tc.total)
		if recs[0] != tc.first {
			t.Errorf("ForPHQ9(%d)[0] = %q, want %q", tc.total, recs[0], tc.first)
		}
	}
}

func TestForGAD7Tiers(t *testing.T) {
	cases := []struct {
		total int
		first string
	}{
		{21, "Immediate professional intervention recommended"},
		{15, "Immediate professional intervention recommended"},
		{14, "Professional counseling recommended"},
		{9, "Self-help strategies and monitoring"},
		{4, "Continue current self-care practices"},
	}
	for _, tc := range cases {
		recs := ForGAD7(tc.total)
		if recs[0] != tc.first {
			t.Errorf("ForGAD7(%d)[0] = %q, want %q", tc.total, recs[0], tc.first)
		}
	}
}

func TestDedupeKeepsFirstSeenOrder(t *testing.T) {
	in := []string{"b", "a", "b", "c", "a"}
	want := []string{"b", "a", "c"}
	if got := Dedupe(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Dedupe = %v, want %v", got, want)
	}
}

func TestPrioritizePartitions(t *testing.T) {
	in := []string{
		"Monitor progress",
		"Consider psychiatric evaluation",
		"Learn coping strategies",
		"Crisis intervention resources available",
	}
	want := []string{
		"Consider psychiatric evaluation",
		"Crisis intervention resources available",
		"Monitor progress",
		"Learn coping strategies",
	}
	if got := Prioritize(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Prioritize = %v, want %v", got, want)
	}
}

func TestCombineDoesNotMutateInputs(t *testing.T) {
	a := []string{"Monitor progress", "Consider psychiatric evaluation"}
	b := []string{"Monitor progress", "Learn coping strategies"}
	aCopy := append([]string{}, a...)

	out := Combine(a, b)

	if !reflect.DeepEqual(a, aCopy) {
		t.Error("Combine mutated its input")
	}
	if len(out) != 3 {
		t.Errorf("Combine length = %d, want 3", len(out))
	}
	if out[0] != "Consider psychiatric evaluation" {
		t.Errorf("urgent entry not first: %v", out)
	}
}

package lexicon

import "testing"

func TestMembershipSets(t *testing.T) {
	if !IsPositive("happy") || IsPositive("sad") {
		t.Error("positive set wrong")
	}
	if !IsNegative("sad") || IsNegative("happy") {
		t.Error("negative set wrong")
	}
	if !IsCrisis("suicide") || IsCrisis("happy") {
		t.Error("crisis set wrong")
	}
}

func TestSeverityBandsAreContiguous(t *testing.T) {
	cases := []struct {
		name  string
		bands []SeverityBand
		max   int
	}{
		{"phq9", PHQ9Bands, 27},
		{"gad7", GAD7Bands, 21},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.bands[0].Min != 0 {
				t.Errorf("first band starts at %d, want 0", tc.bands[0].Min)
			}
			for i := 1; i < len(tc.bands); i++ {
				if tc.bands[i].Min != tc.bands[i-1].Max+1 {
					t.Errorf("gap between bands %d and %d", i-1, i)
				}
			}
			last := tc.bands[len(tc.bands)-1]
			if last.Max != tc.max {
				t.Errorf("last band ends at %d, want %d", last.Max, tc.max)
			}
		})
	}
}

func TestInstrumentQuestionCounts(t *testing.T) {
	if len(PHQ9Questions) != 9 {
		t.Errorf("PHQ-9 has %d questions, want 9", len(PHQ9Questions))
	}
	if len(GAD7Questions) != 7 {
		t.Errorf("GAD-7 has %d questions, want 7", len(GAD7Questions))
	}
}

func TestEveryConcernHasTemplateAndSuggestions(t *testing.T) {
	for _, concern := range ConcernOrder {
		template, ok := ConcernTemplates[concern]
		if !ok {
			t.Fatalf("no template for %q", concern)
		}
		if len(template.Intros) == 0 || len(template.Techniques) == 0 {
			t.Errorf("template for %q is incomplete", concern)
		}
		if len(ConcernSuggestions[concern]) == 0 {
			t.Errorf("no suggestions for %q", concern)
		}
	}
}

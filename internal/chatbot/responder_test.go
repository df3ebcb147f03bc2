package chatbot

import (
	"strings"
	"testing"

	"mindwell/internal/lexicon"
	"mindwell/internal/model"
)

// newTestResponder pins template choice to the first entry
func newTestResponder() *Responder {
	return &Responder{pick: func(n int) int { return 0 }}
}

func neutralAnalysis(score float64) *model.AnalysisResult {
	return &model.AnalysisResult{Score: score, Label: model.LabelNeutral}
}

func TestRespondCrisisFromAnalysis(t *testing.T) {
	r := newTestResponder()

	analysis := &model.AnalysisResult{CrisisDetected: true, Score: -1.0}
	resp := r.Respond("anything", analysis)

	if !resp.CrisisDetected {
		t.Fatal("expected crisis response")
	}
	if resp.EscalationLevel != model.EscalationCritical {
		t.Errorf("escalation = %q, want critical", resp.EscalationLevel)
	}
	if resp.ConcernType != model.ConcernCrisis {
		t.Errorf("concern = %q, want crisis", resp.ConcernType)
	}
	if !strings.Contains(resp.ResponseText, "988") {
		t.Error("crisis response must include hotline resources")
	}
}

func TestRespondCrisisFromRawMessage(t *testing.T) {
	// The analysis missed it, the raw-message scan must not
	r := newTestResponder()

	resp := r.Respond("sometimes I want to End It All", neutralAnalysis(0))

	if !resp.CrisisDetected {
		t.Fatal("expected crisis phrase in raw message to trigger crisis response")
	}
	if resp.EscalationLevel != model.EscalationCritical {
		t.Errorf("escalation = %q, want critical", resp.EscalationLevel)
	}
}

func TestRespondNilAnalysisFallsBack(t *testing.T) {
	r := newTestResponder()

	resp := r.Respond("hello", nil)

	if resp.ResponseText != lexicon.FallbackResponse {
		t.Errorf("response = %q, want fallback", resp.ResponseText)
	}
	if resp.EscalationLevel != model.EscalationLow {
		t.Errorf("escalation = %q, want low", resp.EscalationLevel)
	}
	if resp.ConcernType != model.ConcernGeneral {
		t.Errorf("concern = %q, want general", resp.ConcernType)
	}
}

func TestClassifyConcern(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    model.ConcernType
	}{
		{"anxiety", "I keep having panic attacks and I'm so nervous", model.ConcernAnxiety},
		{"depression", "I feel hopeless and empty and worthless", model.ConcernDepression},
		{"sleep", "insomnia again, lying awake with nightmares", model.ConcernSleep},
		{"academic", "my exam grades are slipping and the deadline is close", model.ConcernAcademic},
		{"no match", "tell me about the weather", model.ConcernGeneral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyConcern(tc.message)
			if got != tc.want {
				t.Errorf("ClassifyConcern(%q) = %q, want %q", tc.message, got, tc.want)
			}
		})
	}
}

func TestClassifyConcernTokenMatching(t *testing.T) {
	// "test" must not match inside "protest"
	if got := ClassifyConcern("I joined a protest downtown"); got != model.ConcernGeneral {
		t.Errorf("ClassifyConcern(protest) = %q, want general", got)
	}
	// Repeated keywords count every occurrence
	if got := ClassifyConcern("worry worry worry about one exam"); got != model.ConcernAnxiety {
		t.Errorf("ClassifyConcern(repeated worry) = %q, want anxiety", got)
	}
	// Multi-word keywords still match as phrases
	if got := ClassifyConcern("I have been on edge all week"); got != model.ConcernAnxiety {
		t.Errorf("ClassifyConcern(on edge) = %q, want anxiety", got)
	}
}

func TestClassifyConcernTieBreak(t *testing.T) {
	// One anxiety keyword and one academic keyword: anxiety is earlier
	// in the resolution order and wins the tie.
	got := ClassifyConcern("so nervous about my homework")
	if got != model.ConcernAnxiety {
		t.Errorf("tie broke to %q, want anxiety", got)
	}
}

func TestEscalationThresholds(t *testing.T) {
	r := newTestResponder()

	cases := []struct {
		name    string
		message string
		score   float64
		want    model.EscalationLevel
	}{
		{"very negative", "my grades are bad", -0.8, model.EscalationHigh},
		{"elevated with depression concern", "feeling hopeless and empty", -0.5, model.EscalationHigh},
		{"elevated without risky concern", "the deadline for my exam is close", -0.5, model.EscalationMedium},
		{"mildly negative", "my grades worry me a little", -0.25, model.EscalationMedium},
		{"boundary is exclusive", "about my exam", -0.2, model.EscalationLow},
		{"neutral", "just checking in", 0.0, model.EscalationLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := r.Respond(tc.message, neutralAnalysis(tc.score))
			if resp.EscalationLevel != tc.want {
				t.Errorf("escalation = %q, want %q (score %v)", resp.EscalationLevel, tc.want, tc.score)
			}
		})
	}
}

func TestRespondTemplateStructure(t *testing.T) {
	r := newTestResponder()

	resp := r.Respond("anxiety is taking over before my exam", neutralAnalysis(-0.1))

	if resp.ConcernType != model.ConcernAnxiety {
		t.Fatalf("concern = %q, want anxiety", resp.ConcernType)
	}
	template := lexicon.ConcernTemplates[model.ConcernAnxiety]
	if !strings.HasPrefix(resp.ResponseText, template.Intros[0]) {
		t.Error("response must start with the chosen intro")
	}
	for _, technique := range template.Techniques {
		if !strings.Contains(resp.ResponseText, technique) {
			t.Errorf("response missing technique %q", technique)
		}
	}
	if len(resp.Suggestions) == 0 {
		t.Error("expected concern suggestions")
	}
}

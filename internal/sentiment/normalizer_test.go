package sentiment

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "I Feel GREAT", "i feel great"},
		{"collapses whitespace", "so   much \t space\n here", "so much space here"},
		{"strips symbols", "feeling #blessed @ home!!", "feeling blessed  home!!"},
		{"keeps basic punctuation", "why? because. stop!", "why? because. stop!"},
		{"trims", "  padded  ", "padded"},
		{"empty", "", ""},
		{"only symbols", "@#$%", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := "I'm SO  stressed about exams!!"
	once := Normalize(in)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("normalization not idempotent: %q vs %q", once, twice)
	}
}

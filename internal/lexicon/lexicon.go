package lexicon

// Static keyword tables for mental-health text analysis. All data in this
// package is read-only after init and safe to share across goroutines.

// PositiveWords are emotional keywords that pull the keyword score up
var PositiveWords = []string{
	"happy", "joy", "excited", "grateful", "hopeful", "confident",
	"proud", "accomplished", "motivated", "energetic", "peaceful",
	"calm", "relaxed", "content", "satisfied", "optimistic",
}

// NegativeWords are emotional keywords that pull the keyword score down
var NegativeWords = []string{
	"sad", "depressed", "anxious", "worried", "stressed", "overwhelmed",
	"hopeless", "worthless", "guilty", "ashamed", "angry", "frustrated",
	"lonely", "isolated", "empty", "numb", "tired", "exhausted",
}

// CrisisWords are single tokens associated with self-harm or suicide risk
var CrisisWords = []string{
	"suicide", "kill", "die", "end", "hurt", "harm", "overdose",
	"jump", "hang", "cut", "bleed", "pain", "suffering", "hopeless",
}

// CrisisPhrases are matched as substrings against the full normalized text
var CrisisPhrases = []string{
	"want to die", "kill myself", "end it all", "not worth living",
	"hurt myself", "self harm", "cut myself", "overdose",
}

// IntensityModifiers scale nearby emotional keywords
var IntensityModifiers = map[string]float64{
	"very": 1.5, "extremely": 2.0, "incredibly": 2.0, "totally": 1.5,
	"completely": 1.5, "absolutely": 1.5, "really": 1.2, "quite": 1.1,
	"somewhat": 0.8, "slightly": 0.6, "a bit": 0.7, "kind of": 0.8,
}

// isSet turns a word list into a membership set
func isSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var (
	positiveSet = isSet(PositiveWords)
	negativeSet = isSet(NegativeWords)
	crisisSet   = isSet(CrisisWords)
)

// IsPositive reports whether token is a positive emotional keyword
func IsPositive(token string) bool {
	_, ok := positiveSet[token]
	return ok
}

// IsNegative reports whether token is a negative emotional keyword
func IsNegative(token string) bool {
	_, ok := negativeSet[token]
	return ok
}

// IsCrisis reports whether token is a crisis keyword
func IsCrisis(token string) bool {
	_, ok := crisisSet[token]
	return ok
}

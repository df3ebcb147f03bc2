package lexicon

import "mindwell/internal/model"

// PHQ9Questions is the 9-item depression screening bank
var PHQ9Questions = []string{
	"Little interest or pleasure in doing things",
	"Feeling down, depressed, or hopeless",
	"Trouble falling or staying asleep, or sleeping too much",
	"Feeling tired or having little energy",
	"Poor appetite or overeating",
	"Feeling bad about yourself - or that you are a failure or have let yourself or your family down",
	"Trouble concentrating on things, such as reading the newspaper or watching television",
	"Moving or speaking so slowly that other people could have noticed, or the opposite - being so fidgety or restless that you have been moving around a lot more than usual",
	"Thoughts that you would be better off dead, or of hurting yourself",
}

// GAD7Questions is the 7-item anxiety screening bank
var GAD7Questions = []string{
	"Feeling nervous, anxious, or on edge",
	"Not being able to stop or control worrying",
	"Worrying too much about different things",
	"Trouble relaxing",
	"Being so restless that it is hard to sit still",
	"Becoming easily annoyed or irritable",
	"Feeling afraid, as if something awful might happen",
}

// LikertScale maps the 0-3 response values to their frontend labels
var LikertScale = map[string]string{
	"0": "Not at all",
	"1": "Several days",
	"2": "More than half the days",
	"3": "Nearly every day",
}

// SeverityBand is a closed integer interval on the total score
type SeverityBand struct {
	Min         int
	Max         int
	Severity    model.Severity
	Description string
}

// PHQ9Bands are the standard PHQ-9 cutpoints (max total 27)
var PHQ9Bands = []SeverityBand{
	{0, 4, model.SeverityMinimal, "Minimal depression"},
	{5, 9, model.SeverityMild, "Mild depression"},
	{10, 14, model.SeverityModerate, "Moderate depression"},
	{15, 19, model.SeverityModeratelySevere, "Moderately severe depression"},
	{20, 27, model.SeveritySevere, "Severe depression"},
}

// GAD7Bands are the standard GAD-7 cutpoints (max total 21)
var GAD7Bands = []SeverityBand{
	{0, 4, model.SeverityMinimal, "Minimal anxiety"},
	{5, 9, model.SeverityMild, "Mild anxiety"},
	{10, 14, model.SeverityModerate, "Moderate anxiety"},
	{15, 21, model.SeveritySevere, "Severe anxiety"},
}

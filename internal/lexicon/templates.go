package lexicon

import "mindwell/internal/model"

// ConcernKeywords are the topic lexicons used to classify a chat message.
// ConcernOrder fixes the tie-break: earlier entries win on equal counts.
var ConcernOrder = []model.ConcernType{
	model.ConcernAnxiety,
	model.ConcernDepression,
	model.ConcernSleep,
	model.ConcernAcademic,
}

var ConcernKeywords = map[model.ConcernType][]string{
	model.ConcernAnxiety: {
		"anxious", "anxiety", "panic", "worry", "worried", "nervous",
		"restless", "on edge", "racing", "overthinking", "fear", "afraid",
	},
	model.ConcernDepression: {
		"depressed", "depression", "sad", "hopeless", "empty", "worthless",
		"unmotivated", "numb", "crying", "lonely", "miserable", "down",
	},
	model.ConcernSleep: {
		"sleep", "insomnia", "tired", "exhausted", "awake", "nightmares",
		"oversleeping", "rest", "fatigue", "drowsy",
	},
	model.ConcernAcademic: {
		"exam", "test", "grades", "study", "studying", "assignment",
		"deadline", "school", "class", "homework", "failing", "professor",
	},
}

// ResponseTemplate is a set of interchangeable intros plus a fixed
// technique list; the intro is chosen at random, the techniques are
// always enumerated in order.
type ResponseTemplate struct {
	Intros     []string
	Techniques []string
}

// ConcernTemplates hold the coping-guidance templates per concern type
var ConcernTemplates = map[model.ConcernType]ResponseTemplate{
	model.ConcernAnxiety: {
		Intros: []string{
			"It sounds like anxiety is weighing on you right now. That is a very real and common experience.",
			"Feeling anxious can be exhausting. Thank you for sharing how you are feeling.",
			"Anxiety can make everything feel bigger than it is. Let's slow things down together.",
		},
		Techniques: []string{
			"Try box breathing: inhale for 4 counts, hold for 4, exhale for 4, hold for 4",
			"Ground yourself with the 5-4-3-2-1 technique: name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste",
			"Write your worries down, then mark which ones you can act on today",
		},
	},
	model.ConcernDepression: {
		Intros: []string{
			"I'm sorry you are feeling this low. Your feelings are valid, and you don't have to carry them alone.",
			"Thank you for opening up. Low moods can make even small things feel heavy.",
			"It takes courage to talk about feeling down. I'm glad you did.",
		},
		Techniques: []string{
			"Pick one small, concrete activity you used to enjoy and try it for ten minutes",
			"Step outside for a short walk, even just around the block",
			"Reach out to one person you trust, even with a short message",
		},
	},
	model.ConcernSleep: {
		Intros: []string{
			"Sleep trouble can affect everything else. Let's look at some things that may help.",
			"Poor sleep wears you down fast. You are right to take it seriously.",
		},
		Techniques: []string{
			"Keep a consistent bedtime and wake time, even on weekends",
			"Avoid screens for 30 minutes before bed",
			"If you can't sleep after 20 minutes, get up and do something calm until you feel drowsy",
		},
	},
	model.ConcernAcademic: {
		Intros: []string{
			"Academic pressure is a heavy load. It makes sense that you are feeling stressed.",
			"Deadlines and exams can feel overwhelming. Let's break things into manageable pieces.",
		},
		Techniques: []string{
			"Break the work into tasks small enough to finish in 25 minutes, and take 5-minute breaks between them",
			"Make a realistic plan for the next 48 hours only, not the whole term",
			"Talk to your instructor or advisor early if you are falling behind",
		},
	},
	model.ConcernGeneral: {
		Intros: []string{
			"Thank you for sharing that with me. I'm here to listen.",
			"I hear you. Whatever you are going through, you don't have to face it alone.",
		},
		Techniques: []string{
			"Take a few slow, deep breaths and check in with how your body feels",
			"Consider writing down what is on your mind to get some distance from it",
			"Regular movement, meals, and sleep are a foundation worth protecting",
		},
	},
}

// ConcernSuggestions are the fixed follow-up suggestion chips per concern
var ConcernSuggestions = map[model.ConcernType][]string{
	model.ConcernAnxiety: {
		"Try a guided breathing exercise",
		"Read about managing anxious thoughts",
		"Book a session with a counsellor",
	},
	model.ConcernDepression: {
		"Explore self-care resources",
		"Book a session with a counsellor",
		"Join a peer support group",
	},
	model.ConcernSleep: {
		"Read our sleep hygiene guide",
		"Try a wind-down routine tonight",
		"Book a session with a counsellor",
	},
	model.ConcernAcademic: {
		"Try a study planning template",
		"Read about managing exam stress",
		"Talk to an academic advisor",
	},
	model.ConcernGeneral: {
		"Explore our resource library",
		"Take a quick self-assessment",
		"Book a session with a counsellor",
	},
}

// CrisisIntros open the crisis response; one is chosen at random
var CrisisIntros = []string{
	"I'm really concerned about what you just shared. You matter, and help is available right now.",
	"Thank you for telling me. What you are feeling is serious, and you deserve immediate support.",
	"I hear how much pain you are in. Please reach out for help right away - you are not alone.",
}

// CrisisResourceLines are always appended in full to a crisis response
var CrisisResourceLines = []string{
	"National Suicide Prevention Lifeline: call or text 988",
	"Crisis Text Line: text HOME to 741741",
	"Emergency Services: call 911",
	"If you are in immediate danger, please go to your nearest emergency room",
}

// CrisisSuggestions are the fixed suggestions for a crisis response
var CrisisSuggestions = []string{
	"Contact emergency services",
	"Call the crisis hotline",
	"Go to the nearest emergency room",
}

// Resources is the fixed crisis-resource payload returned by the
// escalation endpoint.
var Resources = model.CrisisResources{
	EmergencyContacts: []model.EmergencyContact{
		{Name: "National Suicide Prevention Lifeline", Number: "988"},
		{Name: "Crisis Text Line", Number: "Text HOME to 741741"},
		{Name: "Emergency Services", Number: "911"},
	},
	ImmediateActions: []string{
		"Contact emergency services if in immediate danger",
		"Reach out to a trusted friend or family member",
		"Go to the nearest emergency room",
		"Use crisis text line for immediate support",
	},
}

// FallbackResponse is returned when response generation fails internally
const FallbackResponse = "I'm here to listen. Could you tell me a little more about how you are feeling?"

package interview

import "strings"

// CompanyStyle holds curated values and interview-culture data for a company.
// It flavours the composed prompt without the interviewer ever naming the
// company to the candidate. Absence of a style is a valid state; the generic
// prompt is used instead.
type CompanyStyle struct {
	Values           []string
	InterviewFocus   []string
	TypicalQuestions []string
	CulturalNotes    string
}

// companyStyles is keyed by lower-cased company name. Lookup is a
// case-insensitive exact match only; no fuzzy matching.
var companyStyles = map[string]CompanyStyle{
	"google": {
		Values:         []string{"Focus on the user", "Think 10x, not 10%", "Respect for data over opinion"},
		InterviewFocus: []string{"General cognitive ability", "Structured problem decomposition", "Googleyness: comfort with ambiguity"},
		TypicalQuestions: []string{
			"How would you improve a product you used this morning?",
			"Tell me about a time you used data to overturn a strong opinion.",
		},
		CulturalNotes: "Flat discussion culture; interviewers reward candidates who think aloud and quantify claims.",
	},
	"amazon": {
		Values:         []string{"Customer obsession", "Ownership", "Bias for action", "Dive deep", "Frugality"},
		InterviewFocus: []string{"Leadership principles evidenced with specific stories", "Metrics and mechanisms", "Disagree and commit"},
		TypicalQuestions: []string{
			"Tell me about a time you took ownership beyond your job description.",
			"Describe a decision you made with incomplete data.",
		},
		CulturalNotes: "Expects STAR-shaped answers with hard numbers; vague claims are probed relentlessly.",
	},
	"meta": {
		Values:         []string{"Move fast", "Be bold", "Focus on impact"},
		InterviewFocus: []string{"Speed of execution", "Impact measurement", "Comfort with shifting priorities"},
		TypicalQuestions: []string{
			"What is the highest-impact thing you shipped last year, and how do you know?",
		},
		CulturalNotes: "Values candidates who talk in terms of impact per unit time.",
	},
	"netflix": {
		Values:         []string{"Freedom and responsibility", "Candour", "Highly aligned, loosely coupled"},
		InterviewFocus: []string{"Independent judgement", "Direct feedback given and received", "Talent density fit"},
		TypicalQuestions: []string{
			"Tell me about the hardest piece of feedback you have given a peer.",
		},
		CulturalNotes: "The keeper test shapes interviews: expect blunt questions and reward blunt, honest answers.",
	},
	"stripe": {
		Values:         []string{"Users first", "Rigorous thinking", "Craft and beauty in technical work"},
		InterviewFocus: []string{"Writing and communication clarity", "API design taste", "Care for developer experience"},
		TypicalQuestions: []string{
			"Explain a gnarly technical concept in an email-sized answer.",
		},
		CulturalNotes: "Written communication is a first-class signal; rambling answers land poorly.",
	},
	"goldman sachs": {
		Values:         []string{"Client service", "Excellence", "Integrity"},
		InterviewFocus: []string{"Market knowledge", "Composure under rapid questioning", "Why-this-firm conviction"},
		TypicalQuestions: []string{
			"Pitch me a stock in two minutes.",
		},
		CulturalNotes: "Fast-paced interviews with frequent interruptions; composure is part of the test.",
	},
	"mckinsey": {
		Values:         []string{"Client impact", "Top-down communication", "Obligation to dissent"},
		InterviewFocus: []string{"Hypothesis-driven casing", "Synthesis before detail", "Personal impact stories"},
		TypicalQuestions: []string{
			"Summarise your analysis as if the CEO just walked in.",
		},
		CulturalNotes: "Answer-first communication is mandatory; structure is graded as heavily as content.",
	},
	"clifford chance": {
		Values:         []string{"Client focus", "Global collaboration", "Inclusive excellence"},
		InterviewFocus: []string{"Commercial awareness", "Precision in language", "Motivation for city law"},
		TypicalQuestions: []string{
			"Which recent deal in the news would you most like to have worked on?",
		},
		CulturalNotes: "Expects candidates to connect legal issues to client commercial outcomes unprompted.",
	},
	"nhs": {
		Values:         []string{"Patients first", "Compassion", "Working together"},
		InterviewFocus: []string{"Values-based scenarios", "Safeguarding instincts", "Resilience under resource pressure"},
		TypicalQuestions: []string{
			"A colleague seems unsafe to practise today. What do you do?",
		},
		CulturalNotes: "Values-based interviewing: how a candidate decides matters more than the outcome.",
	},
	"bbc": {
		Values:         []string{"Audiences at the heart", "Impartiality", "Creativity"},
		InterviewFocus: []string{"Editorial judgement", "Audience empathy", "Working within standards"},
		TypicalQuestions: []string{
			"How would you cover a polarising story for a mainstream audience?",
		},
		CulturalNotes: "Impartiality questions recur; strong personal opinions need careful framing.",
	},
}

// StyleForCompany returns the curated style for a company name, matching
// case-insensitively on the exact name.
func StyleForCompany(name string) (CompanyStyle, bool) {
	s, ok := companyStyles[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

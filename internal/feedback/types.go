// Package feedback scores candidate answers and issues the final interview
// verdict. The scoring itself is delegated to the language model; this
// package owns prompt construction, response validation and the feedback
// history bookkeeping.
package feedback

// Scores holds the four 0-10 subscores reported for every answer. The
// DomainKnowledge slot carries the commercial-awareness score for law
// interviews; the label, not the field, changes per industry.
type Scores struct {
	Communication      float64 `json:"communication"`
	DomainKnowledge    float64 `json:"domain_knowledge"`
	ProblemSolving     float64 `json:"problem_solving"`
	RelevantExperience float64 `json:"relevant_experience"`
}

// FeedbackItem is the per-answer assessment. Items are created once and
// never mutated after creation.
type FeedbackItem struct {
	QuestionNumber        int      `json:"question_number"`
	Question              string   `json:"question"`
	Answer                string   `json:"answer"`
	Strengths             []string `json:"strengths"`
	Weaknesses            []string `json:"weaknesses"`
	Opportunities         []string `json:"opportunities"`
	Threats               []string `json:"threats"`
	SuggestedImprovements []string `json:"suggested_improvements"`
	Scores                Scores   `json:"scores"`
}

// clampScore forces a model-reported score into [0,10].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// clampScores returns a copy with every subscore clamped into range.
func clampScores(s Scores) Scores {
	return Scores{
		Communication:      clampScore(s.Communication),
		DomainKnowledge:    clampScore(s.DomainKnowledge),
		ProblemSolving:     clampScore(s.ProblemSolving),
		RelevantExperience: clampScore(s.RelevantExperience),
	}
}

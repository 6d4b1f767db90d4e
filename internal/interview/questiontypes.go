package interview

// questionTypeDescriptions maps a question type id selected by the user to
// the human-readable directive rendered into the prompt. Unknown ids are
// silently dropped during composition.
var questionTypeDescriptions = map[string]string{
	"behavioral":   "Behavioural: past situations, actions taken and outcomes (STAR-shaped probing)",
	"technical":    "Technical: tools, methods and specialist knowledge relevant to the role",
	"situational":  "Situational: hypothetical scenarios testing judgement before experience",
	"competency":   "Competency: evidence against the specific skills the role requires",
	"motivational": "Motivational: why this role, this company and this career path",
	"cultural-fit": "Cultural fit: working style, values and collaboration preferences",
	"brainteaser":  "Brainteaser: estimation and lateral-thinking puzzles worked aloud",
}

// QuestionTypeDescription resolves a question type id.
func QuestionTypeDescription(id string) (string, bool) {
	d, ok := questionTypeDescriptions[id]
	return d, ok
}

// QuestionTypeIDs returns the known question type ids. Order is not
// significant; the composer preserves the user's selection order.
func QuestionTypeIDs() []string {
	ids := make([]string, 0, len(questionTypeDescriptions))
	for id := range questionTypeDescriptions {
		ids = append(ids, id)
	}
	return ids
}

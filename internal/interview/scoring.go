package interview

// Scoring category labels shared by the prompt composer and the feedback
// analyzer. Law interviews assess commercial awareness in place of domain
// knowledge; the other three categories are common to all industries.
const (
	LabelCommunication       = "communication"
	LabelDomainKnowledge     = "domain knowledge"
	LabelCommercialAwareness = "commercial awareness"
	LabelProblemSolving      = "problem solving"
	LabelRelevantExperience  = "relevant experience"
)

// ScoringCategories returns the four assessment labels for an industry, in
// the order they are reported.
func ScoringCategories(industry string) []string {
	knowledge := LabelDomainKnowledge
	if industry == "law" {
		knowledge = LabelCommercialAwareness
	}
	return []string{
		LabelCommunication,
		knowledge,
		LabelProblemSolving,
		LabelRelevantExperience,
	}
}

package feedback

// History is the append-only list of per-answer feedback for a session.
// Items are stored in chronological order; NewestFirst exists for display.
type History struct {
	items []FeedbackItem
}

// Append adds an item to the history.
func (h *History) Append(item FeedbackItem) {
	h.items = append(h.items, item)
}

// Len returns the number of items recorded.
func (h *History) Len() int {
	return len(h.items)
}

// Chronological returns a copy of the items in the order they were recorded.
// Scoring aggregation uses this view.
func (h *History) Chronological() []FeedbackItem {
	out := make([]FeedbackItem, len(h.items))
	copy(out, h.items)
	return out
}

// NewestFirst returns a copy of the items newest first, the order the UI
// displays them in.
func (h *History) NewestFirst() []FeedbackItem {
	out := make([]FeedbackItem, len(h.items))
	for i, item := range h.items {
		out[len(h.items)-1-i] = item
	}
	return out
}

// AverageScores returns the mean of each subscore across the history.
// An empty history averages to zero.
func (h *History) AverageScores() Scores {
	if len(h.items) == 0 {
		return Scores{}
	}
	var sum Scores
	for _, item := range h.items {
		sum.Communication += item.Scores.Communication
		sum.DomainKnowledge += item.Scores.DomainKnowledge
		sum.ProblemSolving += item.Scores.ProblemSolving
		sum.RelevantExperience += item.Scores.RelevantExperience
	}
	n := float64(len(h.items))
	return Scores{
		Communication:      sum.Communication / n,
		DomainKnowledge:    sum.DomainKnowledge / n,
		ProblemSolving:     sum.ProblemSolving / n,
		RelevantExperience: sum.RelevantExperience / n,
	}
}

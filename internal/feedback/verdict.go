package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/schemas"
)

// Verdict outcomes.
const (
	VerdictPass       = "pass"
	VerdictBorderline = "borderline"
	VerdictFail       = "fail"
)

// FinalAssessment is the end-of-interview verdict returned to the candidate.
type FinalAssessment struct {
	Verdict       string   `json:"verdict"`
	Summary       string   `json:"summary"`
	KeyStrengths  []string `json:"key_strengths"`
	KeyConcerns   []string `json:"key_concerns"`
	AverageScores Scores   `json:"average_scores"`
}

// Evaluate issues the final hire/no-hire verdict for a completed interview.
// It weighs the full transcript alongside the accumulated per-answer
// feedback; the averaged subscores are computed locally and attached to the
// result, not asked of the model.
func (a *Analyzer) Evaluate(ctx context.Context, cfg interview.InterviewRequestConfig, transcript interview.Transcript, history *History) (FinalAssessment, error) {
	if len(transcript) == 0 {
		return FinalAssessment{}, fmt.Errorf("cannot evaluate an empty interview")
	}

	avg := Scores{}
	digest := "(no per-answer feedback recorded)"
	if history != nil && history.Len() > 0 {
		avg = history.AverageScores()
		digest = renderFeedbackDigest(history.Chronological())
	}

	input := prompts.Format(prompts.MustGet("feedback.json", "verdict-context"), map[string]string{
		"Industry":       cfg.Industry,
		"Role":           cfg.Role,
		"Difficulty":     cfg.Difficulty,
		"QuestionCount":  strconv.Itoa(cfg.QuestionCount),
		"AverageScores":  renderScores(avg),
		"FeedbackDigest": digest,
		"Transcript":     renderTranscript(transcript),
	})

	prompt := llm.BuildExtractionPrompt(llm.FinalVerdictSchema(), input)
	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return FinalAssessment{}, fmt.Errorf("verdict generation failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.ValidateVerdict(raw); err != nil {
		return FinalAssessment{}, fmt.Errorf("verdict response rejected: %w", err)
	}

	var assessment FinalAssessment
	if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
		return FinalAssessment{}, fmt.Errorf("failed to parse verdict response: %w", err)
	}
	assessment.AverageScores = avg

	return assessment, nil
}

// renderScores formats averaged subscores one per line for a prompt.
func renderScores(s Scores) string {
	return fmt.Sprintf(
		"communication: %.1f\nknowledge: %.1f\nproblem solving: %.1f\nrelevant experience: %.1f",
		s.Communication, s.DomainKnowledge, s.ProblemSolving, s.RelevantExperience,
	)
}

// renderFeedbackDigest summarizes per-answer feedback for the verdict prompt.
// Full SWOT lists would dwarf the transcript, so only the first strength and
// weakness of each answer are carried.
func renderFeedbackDigest(items []FeedbackItem) string {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "Q%d: %s\n", item.QuestionNumber, item.Question)
		if len(item.Strengths) > 0 {
			fmt.Fprintf(&sb, "  strength: %s\n", item.Strengths[0])
		}
		if len(item.Weaknesses) > 0 {
			fmt.Fprintf(&sb, "  weakness: %s\n", item.Weaknesses[0])
		}
		fmt.Fprintf(&sb, "  scores: %.1f / %.1f / %.1f / %.1f\n",
			item.Scores.Communication, item.Scores.DomainKnowledge,
			item.Scores.ProblemSolving, item.Scores.RelevantExperience)
	}
	return strings.TrimRight(sb.String(), "\n")
}

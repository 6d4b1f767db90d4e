package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/schemas"
)

// recentTurnWindow bounds how much conversation context is sent with each
// scoring call. The answer under review is always included in full.
const recentTurnWindow = 6

// Analyzer scores individual answers against the industry's four assessment
// categories. It is stateless; callers own the History the results land in.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an analyzer backed by the given LLM client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// AnalyzeAnswer scores the most recent candidate answer in the transcript.
// The question is the assistant message immediately preceding it. Scores
// outside [0,10] are clamped rather than rejected.
func (a *Analyzer) AnalyzeAnswer(ctx context.Context, cfg interview.InterviewRequestConfig, transcript interview.Transcript, questionNumber int) (FeedbackItem, error) {
	question, answer, err := latestExchange(transcript)
	if err != nil {
		return FeedbackItem{}, err
	}

	label := interview.LabelDomainKnowledge
	if cfg.Industry == "law" {
		label = interview.LabelCommercialAwareness
	}

	input := prompts.Format(prompts.MustGet("feedback.json", "answer-context"), map[string]string{
		"Industry":         cfg.Industry,
		"KnowledgeLabel":   label,
		"Question":         question,
		"Answer":           answer,
		"RecentTranscript": renderTranscript(transcript.LastN(recentTurnWindow)),
	})

	prompt := llm.BuildExtractionPrompt(llm.AnswerFeedbackSchema(label), input)
	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return FeedbackItem{}, fmt.Errorf("feedback generation failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.ValidateFeedback(raw); err != nil {
		return FeedbackItem{}, fmt.Errorf("feedback response rejected: %w", err)
	}

	var parsed struct {
		Strengths             []string `json:"strengths"`
		Weaknesses            []string `json:"weaknesses"`
		Opportunities         []string `json:"opportunities"`
		Threats               []string `json:"threats"`
		SuggestedImprovements []string `json:"suggested_improvements"`
		Communication         float64  `json:"communication"`
		DomainKnowledge       float64  `json:"domain_knowledge"`
		ProblemSolving        float64  `json:"problem_solving"`
		RelevantExperience    float64  `json:"relevant_experience"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return FeedbackItem{}, fmt.Errorf("failed to parse feedback response: %w", err)
	}

	return FeedbackItem{
		QuestionNumber:        questionNumber,
		Question:              question,
		Answer:                answer,
		Strengths:             parsed.Strengths,
		Weaknesses:            parsed.Weaknesses,
		Opportunities:         parsed.Opportunities,
		Threats:               parsed.Threats,
		SuggestedImprovements: parsed.SuggestedImprovements,
		Scores: clampScores(Scores{
			Communication:      parsed.Communication,
			DomainKnowledge:    parsed.DomainKnowledge,
			ProblemSolving:     parsed.ProblemSolving,
			RelevantExperience: parsed.RelevantExperience,
		}),
	}, nil
}

// latestExchange returns the most recent question/answer pair: the last user
// message and the assistant message that preceded it.
func latestExchange(t interview.Transcript) (question, answer string, err error) {
	answerIdx := -1
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Role == "user" {
			answerIdx = i
			break
		}
	}
	if answerIdx == -1 {
		return "", "", fmt.Errorf("transcript has no candidate answer to score")
	}
	answer = t[answerIdx].Content

	for i := answerIdx - 1; i >= 0; i-- {
		if t[i].Role == "assistant" {
			return t[i].Content, answer, nil
		}
	}
	return "", "", fmt.Errorf("transcript has no question preceding the answer")
}

// renderTranscript formats messages as labeled lines for inclusion in a
// scoring prompt.
func renderTranscript(t interview.Transcript) string {
	if len(t) == 0 {
		return "(none)"
	}
	lines := make([]string, 0, len(t))
	for _, msg := range t {
		speaker := "Candidate"
		if msg.Role == "assistant" {
			speaker = "Interviewer"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, msg.Content))
	}
	return strings.Join(lines, "\n")
}

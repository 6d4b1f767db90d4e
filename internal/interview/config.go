package interview

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Limits applied to user-supplied interview configuration.
const (
	MaxCustomQuestions   = 5
	MaxJobDescriptionLen = 2000
	MaxCVTextLen         = 8000
	MinQuestionCount     = 1
	MaxQuestionCount     = 10
)

// InterviewRequestConfig is the full user-supplied configuration for one
// interview session. It is constructed once from user input and treated as
// immutable afterwards; the system prompt is rebuilt from it on every model
// call rather than cached.
type InterviewRequestConfig struct {
	Industry          string            `json:"industry" validate:"required"`
	Role              string            `json:"role" validate:"required,min=1"`
	Difficulty        string            `json:"difficulty" validate:"required"`
	Company           string            `json:"company,omitempty"`
	JobDescription    string            `json:"job_description,omitempty" validate:"max=2000"`
	QuestionTypes     []string          `json:"question_types,omitempty"`
	CustomQuestions   []string          `json:"custom_questions,omitempty" validate:"max=5"`
	FollowUpIntensity FollowUpIntensity `json:"follow_up_intensity,omitempty"`
	QuestionCount     int               `json:"question_count"`
	CVText            string            `json:"cv_text,omitempty" validate:"max=8000"`
	PriorityOrder     []Tier            `json:"priority_order,omitempty"`
}

// Sanitized returns a copy with fields normalized: role and company trimmed,
// question count clamped to [1,10], blank custom questions dropped and the
// list capped, and the follow-up intensity defaulted to moderate.
func (c InterviewRequestConfig) Sanitized() InterviewRequestConfig {
	out := c
	out.Role = strings.TrimSpace(c.Role)
	out.Company = strings.TrimSpace(c.Company)
	out.JobDescription = strings.TrimSpace(c.JobDescription)
	out.CVText = strings.TrimSpace(c.CVText)

	if out.QuestionCount < MinQuestionCount {
		out.QuestionCount = MinQuestionCount
	}
	if out.QuestionCount > MaxQuestionCount {
		out.QuestionCount = MaxQuestionCount
	}

	questions := make([]string, 0, len(c.CustomQuestions))
	for _, q := range c.CustomQuestions {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		questions = append(questions, q)
		if len(questions) == MaxCustomQuestions {
			break
		}
	}
	out.CustomQuestions = questions

	if out.FollowUpIntensity == "" {
		out.FollowUpIntensity = DefaultFollowUpIntensity
	}

	return out
}

// Validate checks the configuration against struct tags and the fixed
// industry/difficulty/intensity tables. Call Sanitized first; Validate does
// not normalize.
func (c *InterviewRequestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if _, ok := Industry(c.Industry); !ok {
		return &ErrUnknownIndustry{Industry: c.Industry}
	}
	if _, ok := Difficulty(c.Difficulty); !ok {
		return &ErrUnknownDifficulty{Difficulty: c.Difficulty}
	}
	if !ValidFollowUpIntensity(c.FollowUpIntensity) {
		return &ErrInvalidFollowUp{Intensity: string(c.FollowUpIntensity)}
	}

	return nil
}

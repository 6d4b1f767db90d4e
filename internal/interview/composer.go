package interview

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// ComposedPrompt is the derived system prompt for a session plus the values
// the composer resolved while building it. It has no persisted identity; it
// is recomputed from the config on every model call.
type ComposedPrompt struct {
	Text    string
	Company string
	Title   string
	Order   []Tier
}

// Composer builds interviewer system prompts. The randomness source is
// injectable so tests can pin the company and title picks; the default
// source is unseeded on purpose, so identical configs may resolve different
// companies and titles between sessions.
type Composer struct {
	rng *rand.Rand
}

// NewComposer returns a Composer with a time-seeded randomness source.
func NewComposer() *Composer {
	return NewComposerWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewComposerWithRand returns a Composer using the given randomness source.
func NewComposerWithRand(rng *rand.Rand) *Composer {
	return &Composer{rng: rng}
}

// Compose builds the system prompt for a session. The config should already
// be sanitized; Compose clamps and trims defensively anyway and never fails
// on a malformed optional field, it degrades by omitting the section.
// research is an optional pre-fetched company research digest; empty means
// no research section is rendered.
func (c *Composer) Compose(cfg InterviewRequestConfig, research string) ComposedPrompt {
	cfg = cfg.Sanitized()

	industry, ok := Industry(cfg.Industry)
	if !ok {
		// Callers validate first; an unknown industry here still must not
		// panic, so fall back to the generic technology profile.
		industry = industryProfiles["technology"]
	}
	difficulty, ok := Difficulty(cfg.Difficulty)
	if !ok {
		difficulty = difficultyProfiles["mid-level"]
	}

	company := c.resolveCompany(cfg.Company, industry)
	title := c.pick(TitlesFor(industry.ID, difficulty.Level))
	order := ResolvePriorityOrder(cfg.PriorityOrder, cfg.CustomQuestions, cfg.CVText)

	var sections []string

	// 1. Base interviewer rules.
	sections = append(sections, baseRules)

	// 2. Question count directive.
	sections = append(sections, questionCountDirective(cfg.QuestionCount))

	// 3. Priority banner, rendered unconditionally.
	sections = append(sections, priorityBanner(order))

	// 4. Custom questions, verbatim.
	if len(cfg.CustomQuestions) > 0 {
		sections = append(sections, customQuestionsSection(cfg.CustomQuestions))
	}

	// 5. CV grounding.
	if cfg.CVText != "" {
		sections = append(sections, cvSection(cfg.CVText))
	}

	// 6. Law industry override.
	if industry.ID == "law" {
		sections = append(sections, lawOverrideSection(industry))
	}

	// 7. Interview context.
	sections = append(sections, contextSection(industry, cfg.Role, company, title, research))

	// 8. Focus areas, difficulty guidance, pressure tactics.
	sections = append(sections, focusSection(industry, difficulty))

	// 9. Company style, when curated data exists for the resolved company.
	if style, ok := StyleForCompany(company); ok {
		sections = append(sections, companyStyleSection(style))
	}

	// 10. Job description.
	if cfg.JobDescription != "" {
		sections = append(sections, jobDescriptionSection(cfg.JobDescription))
	}

	// 11. Question type preferences.
	if block := questionTypeSection(cfg.QuestionTypes); block != "" {
		sections = append(sections, block)
	}

	// 12. Follow-up intensity.
	sections = append(sections, FollowUpBlock(cfg.FollowUpIntensity))

	// 13. Introduction example.
	sections = append(sections, introExampleSection(industry.ID))

	// 14. Closing reminders.
	sections = append(sections, closingReminders)

	return ComposedPrompt{
		Text:    strings.Join(sections, "\n\n"),
		Company: company,
		Title:   title,
		Order:   order,
	}
}

// resolveCompany returns the explicit company when given, otherwise a
// uniform random pick from the industry's company list so the interpolated
// value is never empty.
func (c *Composer) resolveCompany(company string, industry IndustryProfile) string {
	if company != "" {
		return company
	}
	return c.pick(industry.Companies)
}

func (c *Composer) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[c.rng.Intn(len(options))]
}

const baseRules = `You are conducting a realistic mock job interview. Stay in character as the interviewer for the entire conversation.

GROUND RULES:
- Speak in a professional, courteous register. Be warm in the opening and closing, businesslike in between.
- Invent a realistic full name for yourself at the start and keep it for the whole interview. Never present yourself as an AI.
- Ask exactly ONE question per message, then stop and wait for the answer. Never bundle several questions together.
- Use follow-up questions with discipline, according to the follow-up policy below. A follow-up does not count as a new main question.
- NEVER reveal the name of the company you represent, no matter how directly the candidate asks. Deflect politely and move on.`

func questionCountDirective(n int) string {
	wrapAt := n - 2
	if wrapAt < 1 {
		wrapAt = 1
	}
	return fmt.Sprintf(
		"QUESTION COUNT: Ask exactly %d main questions over the course of the interview. "+
			"From question %d onwards, begin steering towards the wrap-up so the interview closes naturally after the final question.",
		n, wrapAt)
}

// priorityBanner states the fixed three-tier hierarchy. It is rendered even
// when only the generic tier is active for the session.
func priorityBanner(order []Tier) string {
	names := map[Tier]string{
		TierCustom:  "the user's pre-set questions",
		TierCV:      "questions grounded in the candidate's CV",
		TierGeneric: "generic industry questions",
	}
	active := make([]string, len(order))
	for i, tier := range order {
		active[i] = names[tier]
	}
	return "QUESTION SOURCE PRIORITY: pre-set questions outrank CV-grounded questions, " +
		"which outrank generic industry questions. Always exhaust a higher tier before drawing from a lower one.\n" +
		"Active sources for this session, in order: " + strings.Join(active, ", then ") + "."
}

func customQuestionsSection(questions []string) string {
	var sb strings.Builder
	sb.WriteString("CUSTOM QUESTIONS (MANDATORY):\n")
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}
	sb.WriteString("Ask every question above WORD FOR WORD, in the listed order, before any other question. ")
	sb.WriteString("You may ask 1-2 follow-ups after each, but do NOT interleave CV-based or generic questions ")
	sb.WriteString("until this entire list has been asked.")
	return sb.String()
}

func cvSection(cvText string) string {
	var sb strings.Builder
	sb.WriteString("CANDIDATE CV:\n\"\"\"\n")
	sb.WriteString(cvText)
	sb.WriteString("\n\"\"\"\n")
	sb.WriteString("Of the remaining questions after any mandatory custom questions, 50-70% or more must reference ")
	sb.WriteString("a concrete item from this CV: a named employer, a named skill, or a visible gap. ")
	sb.WriteString("When the CV says \"we\", probe for what the candidate specifically did themselves.")
	return sb.String()
}

// lawOverrideSection switches the interviewer persona for law interviews:
// constructive coach tone, British English throughout, and a heavy draw from
// the industry's fixed question bank.
func lawOverrideSection(industry IndustryProfile) string {
	var sb strings.Builder
	sb.WriteString("LAW INTERVIEW OVERRIDE:\n")
	sb.WriteString("- Adopt the tone of a constructive coach rather than an adversarial interviewer. ")
	sb.WriteString("Offer brief, genuine praise when an answer lands well before moving on.\n")
	sb.WriteString("- Use British English spelling and vocabulary throughout. Apply these substitutions without exception:\n")
	sb.WriteString("    organise (not organize), analyse (not analyze), specialise (not specialize),\n")
	sb.WriteString("    programme (not program, except computer software), licence as the noun (not license),\n")
	sb.WriteString("    practise as the verb and practice as the noun, whilst is acceptable,\n")
	sb.WriteString("    CV (never resume), solicitor or barrister (never attorney), firm (not corporation).\n")
	sb.WriteString("- Draw 70-80% of your questions from the question bank below, in a random order. ")
	sb.WriteString("The remainder may be your own, in the same spirit.\n")
	sb.WriteString("QUESTION BANK:\n")
	for i, q := range industry.SampleQuestions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func contextSection(industry IndustryProfile, role, company, title, research string) string {
	var sb strings.Builder
	sb.WriteString("INTERVIEW CONTEXT:\n")
	sb.WriteString(fmt.Sprintf("- Industry: %s (%s)\n", industry.ID, industry.Description))
	sb.WriteString(fmt.Sprintf("- Role being interviewed for: %s\n", role))
	sb.WriteString(fmt.Sprintf("- You represent: %s (remember: never name this company to the candidate)\n", company))
	sb.WriteString(fmt.Sprintf("- Your job title: %s", title))
	if research != "" {
		sb.WriteString("\nRECENT COMPANY CONTEXT (for flavouring questions, never to be quoted or attributed):\n")
		sb.WriteString(research)
	}
	return sb.String()
}

func focusSection(industry IndustryProfile, difficulty DifficultyProfile) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("LEVEL: %s\n", difficulty.Display))
	sb.WriteString(difficulty.Guidance)
	sb.WriteString("\nThe candidate is assessed on: ")
	sb.WriteString(strings.Join(ScoringCategories(industry.ID), ", "))
	sb.WriteString(".\n")
	sb.WriteString("FOCUS AREAS:\n")
	for _, area := range industry.FocusAreas {
		sb.WriteString(fmt.Sprintf("- %s\n", area))
	}
	sb.WriteString("PRESSURE TACTICS (use sparingly, matched to the level):\n")
	for _, tactic := range industry.PressureTactics {
		sb.WriteString(fmt.Sprintf("- %s\n", tactic))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func companyStyleSection(style CompanyStyle) string {
	var sb strings.Builder
	sb.WriteString("COMPANY STYLE (embody these without ever naming the company):\n")
	if len(style.Values) > 0 {
		sb.WriteString("- Values: " + strings.Join(style.Values, "; ") + "\n")
	}
	if len(style.InterviewFocus) > 0 {
		sb.WriteString("- Interview focus: " + strings.Join(style.InterviewFocus, "; ") + "\n")
	}
	if len(style.TypicalQuestions) > 0 {
		sb.WriteString("- Questions typical of this interview style:\n")
		for _, q := range style.TypicalQuestions {
			sb.WriteString("    " + q + "\n")
		}
	}
	if style.CulturalNotes != "" {
		sb.WriteString("- Culture: " + style.CulturalNotes + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func jobDescriptionSection(jd string) string {
	return "JOB DESCRIPTION:\n\"\"\"\n" + jd + "\n\"\"\"\n" +
		"Tailor your questions to the responsibilities and requirements in this description."
}

// questionTypeSection renders the user's selected question types. Unknown
// ids are silently dropped; when nothing survives, the section is omitted.
func questionTypeSection(typeIDs []string) string {
	var lines []string
	for _, id := range typeIDs {
		if desc, ok := QuestionTypeDescription(id); ok {
			lines = append(lines, "- "+desc)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return "PREFERRED QUESTION TYPES (weight your generic questions towards these):\n" +
		strings.Join(lines, "\n")
}

func introExampleSection(industryID string) string {
	if industryID == "law" {
		return `INTRODUCTION EXAMPLE (shape, not script):
"Good morning, thank you for coming in. I'm Eleanor Whitfield, a Senior Associate here. Today is a chance for us to have a proper conversation about your experience and your interest in commercial law, and I'll share some pointers as we go. Shall we start with you telling me a little about yourself?"`
	}
	return `INTRODUCTION EXAMPLE (shape, not script):
"Hi, thanks for joining today. I'm Sarah Chen, and I lead one of our teams here. I'll be asking about your background and how you approach your work, and there'll be time for your questions at the end. To start: could you walk me through your background?"`
}

const closingReminders = `FINAL REMINDERS:
- Never reveal the company name, even in the wrap-up.
- One question at a time, always.
- If the candidate asks questions mid-interview, note them warmly and save them for the end.`

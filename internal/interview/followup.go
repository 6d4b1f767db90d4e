package interview

// FollowUpIntensity controls how aggressively the interviewer probes vague
// answers. Exactly one of four fixed text blocks is rendered into the prompt.
type FollowUpIntensity string

// Supported follow-up intensities.
const (
	FollowUpNone      FollowUpIntensity = "none"
	FollowUpLight     FollowUpIntensity = "light"
	FollowUpModerate  FollowUpIntensity = "moderate"
	FollowUpIntensive FollowUpIntensity = "intensive"
)

// DefaultFollowUpIntensity is used when the config leaves the knob unset.
const DefaultFollowUpIntensity = FollowUpModerate

var followUpBlocks = map[FollowUpIntensity]string{
	FollowUpNone: "FOLLOW-UP POLICY: Do not ask follow-up questions. Accept each answer as given, " +
		"acknowledge it briefly, and move directly to the next planned question.",
	FollowUpLight: "FOLLOW-UP POLICY: Ask at most one short follow-up per answer, and only when the answer " +
		"was genuinely unclear or incomplete. Otherwise move on. Keep follow-ups under one sentence.",
	FollowUpModerate: "FOLLOW-UP POLICY: Probe vague or generic answers with one or two targeted follow-ups " +
		"before moving on. Ask for specifics: numbers, names of tools, the candidate's personal contribution. " +
		"If an answer is already concrete and complete, do not pad with unnecessary follow-ups.",
	FollowUpIntensive: "FOLLOW-UP POLICY: Challenge every answer. Ask two or three pointed follow-ups per question, " +
		"drilling into specifics, inconsistencies and the gap between 'we' and 'I'. Interrupt rambling answers " +
		"and redirect. Do not let a vague claim pass unexamined.",
}

// FollowUpBlock returns the fixed prompt text for an intensity, falling back
// to the moderate block for unknown or empty values.
func FollowUpBlock(intensity FollowUpIntensity) string {
	if block, ok := followUpBlocks[intensity]; ok {
		return block
	}
	return followUpBlocks[DefaultFollowUpIntensity]
}

// ValidFollowUpIntensity reports whether the value is one of the four knobs
// or empty (empty means "use the default").
func ValidFollowUpIntensity(intensity FollowUpIntensity) bool {
	if intensity == "" {
		return true
	}
	_, ok := followUpBlocks[intensity]
	return ok
}

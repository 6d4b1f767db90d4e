package interview

// Tier is a source category for interview questions. The interviewer works
// through active tiers in priority order: user-supplied custom questions
// first, CV-grounded questions next, generic industry questions last.
type Tier string

// The three question tiers.
const (
	TierCustom  Tier = "custom"
	TierCV      Tier = "cv"
	TierGeneric Tier = "generic"
)

// DefaultPriorityOrder is the base ordering used when the user has not
// reordered the tiers.
func DefaultPriorityOrder() []Tier {
	return []Tier{TierCustom, TierCV, TierGeneric}
}

// ResolvePriorityOrder filters a base tier ordering down to the tiers that
// have backing data: custom is dropped when no custom questions exist, cv is
// dropped when no CV text exists, and generic is never dropped. Unknown and
// duplicate tiers in the base ordering are discarded. A nil or empty base
// falls back to the default ordering.
//
// The resolved order is advisory only. It is rendered into the system prompt
// as an instruction to the model; nothing here mechanically enforces the
// sequence the model actually follows.
func ResolvePriorityOrder(base []Tier, customQuestions []string, cvText string) []Tier {
	if len(base) == 0 {
		base = DefaultPriorityOrder()
	}

	hasCustom := false
	for _, q := range customQuestions {
		if q != "" {
			hasCustom = true
			break
		}
	}
	hasCV := cvText != ""

	resolved := make([]Tier, 0, 3)
	seen := make(map[Tier]bool, 3)
	for _, tier := range base {
		if seen[tier] {
			continue
		}
		switch tier {
		case TierCustom:
			if !hasCustom {
				continue
			}
		case TierCV:
			if !hasCV {
				continue
			}
		case TierGeneric:
			// always kept
		default:
			continue
		}
		resolved = append(resolved, tier)
		seen[tier] = true
	}

	// The generic tier survives even a base ordering that omitted it.
	if !seen[TierGeneric] {
		resolved = append(resolved, TierGeneric)
	}

	return resolved
}

package interview

import "fmt"

// ErrUnknownIndustry indicates the industry id is not in the fixed set.
type ErrUnknownIndustry struct {
	Industry string
}

func (e *ErrUnknownIndustry) Error() string {
	return fmt.Sprintf("unknown industry: %q", e.Industry)
}

// ErrUnknownDifficulty indicates the difficulty level is not one of the four
// supported levels.
type ErrUnknownDifficulty struct {
	Difficulty string
}

func (e *ErrUnknownDifficulty) Error() string {
	return fmt.Sprintf("unknown difficulty level: %q", e.Difficulty)
}

// ErrInvalidFollowUp indicates an unrecognized follow-up intensity value.
type ErrInvalidFollowUp struct {
	Intensity string
}

func (e *ErrInvalidFollowUp) Error() string {
	return fmt.Sprintf("invalid follow-up intensity: %q", e.Intensity)
}

// Package speech wraps the Google Cloud speech-to-text and text-to-speech
// APIs behind small interfaces the server can stub in tests.
package speech

import "fmt"

// MaxAudioBytes is the largest audio upload accepted for transcription.
const MaxAudioBytes = 25 * 1024 * 1024

// ErrAudioTooLarge is returned when an upload exceeds MaxAudioBytes.
type ErrAudioTooLarge struct {
	Size int
}

func (e *ErrAudioTooLarge) Error() string {
	return fmt.Sprintf("audio upload of %d bytes exceeds the %d byte limit", e.Size, MaxAudioBytes)
}

// ErrEmptyTranscript is returned when the provider recognized no speech in
// the audio. Callers surface this to the user rather than treating it as a
// provider failure.
type ErrEmptyTranscript struct{}

func (e *ErrEmptyTranscript) Error() string {
	return "no speech recognized in audio"
}

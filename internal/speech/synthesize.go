package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	ttsapi "google.golang.org/api/texttospeech/v1"
)

// MaxSynthesisChars is the provider's per-request input limit.
const MaxSynthesisChars = 4096

// Synthesizer converts interviewer text into spoken audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// GoogleSynthesizer implements Synthesizer on the Cloud Text-to-Speech API.
type GoogleSynthesizer struct {
	service *ttsapi.Service
	voice   string
}

// NewGoogleSynthesizer creates a synthesizer authenticated with an API key.
func NewGoogleSynthesizer(ctx context.Context, apiKey string) (*GoogleSynthesizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("speech API key is required")
	}
	service, err := ttsapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech service: %w", err)
	}
	return &GoogleSynthesizer{service: service, voice: "en-US-Neural2-D"}, nil
}

// Synthesize renders text as MP3 audio. Input past the provider limit is
// truncated at a sentence boundary rather than rejected, since a clipped
// spoken reply is better than a failed turn.
func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("synthesis text is empty")
	}
	text = TruncateForSynthesis(text, MaxSynthesisChars)

	req := &ttsapi.SynthesizeSpeechRequest{
		Input: &ttsapi.SynthesisInput{Text: text},
		Voice: &ttsapi.VoiceSelectionParams{
			LanguageCode: "en-US",
			Name:         s.voice,
		},
		AudioConfig: &ttsapi.AudioConfig{AudioEncoding: "MP3"},
	}

	resp, err := s.service.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode synthesized audio: %w", err)
	}
	return audio, nil
}

// TruncateForSynthesis shortens text to at most max characters, cutting at
// the last sentence terminator inside the window when one exists so the
// audio does not stop mid-word.
func TruncateForSynthesis(text string, max int) string {
	if len(text) <= max {
		return text
	}
	window := text[:max]
	cut := -1
	for _, term := range []string{". ", "! ", "? ", ".\n", "!\n", "?\n"} {
		if idx := strings.LastIndex(window, term); idx > cut {
			cut = idx
		}
	}
	if cut > 0 {
		return strings.TrimSpace(window[:cut+1])
	}
	// No sentence boundary found, fall back to the last space.
	if idx := strings.LastIndex(window, " "); idx > 0 {
		return strings.TrimSpace(window[:idx])
	}
	return window
}

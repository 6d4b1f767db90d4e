package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	speechapi "google.golang.org/api/speech/v1"
	"google.golang.org/api/option"
)

// Transcriber converts candidate audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// GoogleTranscriber implements Transcriber on the Cloud Speech-to-Text API.
type GoogleTranscriber struct {
	service *speechapi.Service
}

// NewGoogleTranscriber creates a transcriber authenticated with an API key.
func NewGoogleTranscriber(ctx context.Context, apiKey string) (*GoogleTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("speech API key is required")
	}
	service, err := speechapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}
	return &GoogleTranscriber{service: service}, nil
}

// Transcribe recognizes speech in the uploaded audio and returns the joined
// transcript. Uploads over MaxAudioBytes are rejected before any provider
// call, and audio with no recognizable speech yields ErrEmptyTranscript.
func (t *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio payload is empty")
	}
	if len(audio) > MaxAudioBytes {
		return "", &ErrAudioTooLarge{Size: len(audio)}
	}

	req := &speechapi.RecognizeRequest{
		Config: &speechapi.RecognitionConfig{
			Encoding:     encodingFor(mimeType),
			LanguageCode: "en-US",
			Model:        "latest_long",
		},
		Audio: &speechapi.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	resp, err := t.service.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		if text := strings.TrimSpace(result.Alternatives[0].Transcript); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return "", &ErrEmptyTranscript{}
	}

	return strings.Join(parts, " "), nil
}

// encodingFor maps an upload MIME type onto the provider encoding name.
// Unknown types fall through as unspecified, which lets the provider sniff
// containers that carry their own headers.
func encodingFor(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "audio/webm", "audio/ogg":
		return "WEBM_OPUS"
	case "audio/wav", "audio/x-wav":
		return "LINEAR16"
	case "audio/flac":
		return "FLAC"
	default:
		return "ENCODING_UNSPECIFIED"
	}
}

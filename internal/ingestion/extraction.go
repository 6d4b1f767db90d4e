// Package ingestion turns uploaded documents (CVs, job descriptions) into
// clean plain text suitable for prompt inclusion. Plain text and HTML are
// handled locally; binary formats are read by the language model.
package ingestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
)

// MaxDocumentChars caps extracted text before it enters a prompt.
const MaxDocumentChars = 8000

// MaxDocumentBytes caps the raw document upload accepted for extraction.
const MaxDocumentBytes = 10 * 1024 * 1024

// truncationMarker is appended when a document is cut at MaxDocumentChars.
const truncationMarker = "... [truncated]"

// ErrUnsupportedDocumentType is returned for MIME types no extraction path
// handles.
type ErrUnsupportedDocumentType struct {
	MimeType string
}

func (e *ErrUnsupportedDocumentType) Error() string {
	return fmt.Sprintf("unsupported document type %q", e.MimeType)
}

// Extractor converts uploaded documents into prompt-ready text.
type Extractor struct {
	client llm.Client
}

// NewExtractor creates an extractor. The client is only used for binary
// formats; text and HTML never leave the process.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// ExtractText returns the document's text, cleaned and truncated to
// MaxDocumentChars. The result and its metadata are what the upload
// endpoint returns to the client.
func (e *Extractor) ExtractText(ctx context.Context, data []byte, mimeType string) (string, *DocumentMetadata, error) {
	if len(data) == 0 {
		return "", nil, fmt.Errorf("document payload is empty")
	}

	normalized := normalizeMimeType(mimeType)
	var text string
	var err error

	switch normalized {
	case "text/plain", "text/markdown":
		text = string(data)
	case "text/html":
		text, err = FromHTML(string(data))
	case "application/pdf",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/msword":
		text, err = e.extractWithModel(ctx, data, normalized)
	default:
		return "", nil, &ErrUnsupportedDocumentType{MimeType: mimeType}
	}
	if err != nil {
		return "", nil, err
	}

	text = CleanText(text)
	if text == "" {
		return "", nil, fmt.Errorf("document contained no extractable text")
	}

	text, truncated := TruncateDocument(text)
	meta := NewDocumentMetadata(text, normalized, truncated)
	return text, meta, nil
}

// extractWithModel asks the model to transcribe a binary document.
func (e *Extractor) extractWithModel(ctx context.Context, data []byte, mimeType string) (string, error) {
	if e.client == nil {
		return "", fmt.Errorf("no LLM client configured for binary document extraction")
	}
	prompt := prompts.MustGet("extraction.json", "document-text")
	text, err := e.client.GenerateFromDocument(ctx, prompt, data, mimeType, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("document extraction failed: %w", err)
	}
	return text, nil
}

// TruncateDocument enforces the prompt size cap. When the text is cut, the
// marker is included within the cap so downstream length validation still
// passes.
func TruncateDocument(text string) (string, bool) {
	if len(text) <= MaxDocumentChars {
		return text, false
	}
	cut := MaxDocumentChars - len(truncationMarker)
	return strings.TrimSpace(text[:cut]) + truncationMarker, true
}

// normalizeMimeType strips parameters like "; charset=utf-8" and lowercases.
func normalizeMimeType(mimeType string) string {
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

package ingestion

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/llm"
)

// docStubClient serves canned document transcriptions.
type docStubClient struct {
	text         string
	err          error
	lastMimeType string
}

func (s *docStubClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return "", nil
}

func (s *docStubClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return "", nil
}

func (s *docStubClient) GenerateChat(ctx context.Context, systemPrompt string, history []llm.ChatMessage, tier llm.ModelTier) (string, error) {
	return "", nil
}

func (s *docStubClient) GenerateChatStream(ctx context.Context, systemPrompt string, history []llm.ChatMessage, tier llm.ModelTier, onDelta func(string) error) (string, error) {
	return "", nil
}

func (s *docStubClient) GenerateFromDocument(ctx context.Context, prompt string, data []byte, mimeType string, tier llm.ModelTier) (string, error) {
	s.lastMimeType = mimeType
	return s.text, s.err
}

func (s *docStubClient) GetModel(tier llm.ModelTier) string { return "stub" }
func (s *docStubClient) Close() error                       { return nil }

func TestExtractText_PlainText(t *testing.T) {
	e := NewExtractor(nil)

	text, meta, err := e.ExtractText(context.Background(), []byte("My   CV\n\n\n\n- Led a team"), "text/plain; charset=utf-8")
	require.NoError(t, err)

	assert.Equal(t, "My CV\n\n- Led a team", text)
	require.NotNil(t, meta)
	assert.Equal(t, "text/plain", meta.MimeType)
	assert.False(t, meta.Truncated)
	assert.Len(t, meta.Hash, 64)
}

func TestExtractText_HTML(t *testing.T) {
	e := NewExtractor(nil)
	html := `<html><head><script>ignore()</script></head><body>
		<h1>Jane Doe</h1>
		<p>Backend engineer.</p>
		<ul><li>Go</li><li>Postgres</li></ul>
	</body></html>`

	text, _, err := e.ExtractText(context.Background(), []byte(html), "text/html")
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Backend engineer.")
	assert.Contains(t, text, "- Go")
	assert.NotContains(t, text, "ignore()")
}

func TestExtractText_PDFUsesModel(t *testing.T) {
	client := &docStubClient{text: "Transcribed CV body"}
	e := NewExtractor(client)

	text, meta, err := e.ExtractText(context.Background(), []byte{0x25, 0x50, 0x44, 0x46}, "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "Transcribed CV body", text)
	assert.Equal(t, "application/pdf", client.lastMimeType)
	assert.Equal(t, "application/pdf", meta.MimeType)
}

func TestExtractText_PDFWithoutClient(t *testing.T) {
	e := NewExtractor(nil)

	_, _, err := e.ExtractText(context.Background(), []byte{0x01}, "application/pdf")
	assert.Error(t, err)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	e := NewExtractor(nil)

	_, _, err := e.ExtractText(context.Background(), []byte("data"), "image/png")

	var unsupported *ErrUnsupportedDocumentType
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "image/png", unsupported.MimeType)
}

func TestExtractText_EmptyPayload(t *testing.T) {
	e := NewExtractor(nil)

	_, _, err := e.ExtractText(context.Background(), nil, "text/plain")
	assert.Error(t, err)
}

func TestTruncateDocument(t *testing.T) {
	short := "fits easily"
	got, truncated := TruncateDocument(short)
	assert.Equal(t, short, got)
	assert.False(t, truncated)

	long := strings.Repeat("a", MaxDocumentChars+500)
	got, truncated = TruncateDocument(long)
	assert.True(t, truncated)
	assert.LessOrEqual(t, len(got), MaxDocumentChars)
	assert.True(t, strings.HasSuffix(got, "... [truncated]"))
}

func TestNormalizeMimeType(t *testing.T) {
	assert.Equal(t, "text/html", normalizeMimeType("TEXT/HTML; charset=UTF-8"))
	assert.Equal(t, "text/plain", normalizeMimeType(" text/plain "))
	assert.Equal(t, "application/pdf", normalizeMimeType("application/pdf"))
}

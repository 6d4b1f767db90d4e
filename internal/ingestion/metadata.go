package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// DocumentMetadata describes an extracted document. The hash lets clients
// detect re-uploads of the same file without keeping the content around.
type DocumentMetadata struct {
	MimeType  string `json:"mime_type"`
	Chars     int    `json:"chars"`
	Words     int    `json:"words"`
	Hash      string `json:"hash"`
	Truncated bool   `json:"truncated"`
	Timestamp string `json:"timestamp"`
}

// NewDocumentMetadata computes metadata for extracted text.
func NewDocumentMetadata(text, mimeType string, truncated bool) *DocumentMetadata {
	return &DocumentMetadata{
		MimeType:  mimeType,
		Chars:     len(text),
		Words:     len(strings.Fields(text)),
		Hash:      computeHash(text),
		Truncated: truncated,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

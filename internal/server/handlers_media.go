package server

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/speech"
)

// TranscribeResponse returns the recognized speech.
type TranscribeResponse struct {
	Transcript string `json:"transcript"`
}

// SynthesizeRequest asks for spoken audio of a piece of text.
type SynthesizeRequest struct {
	Text string `json:"text"`
}

// SynthesizeResponse carries the audio as base64.
type SynthesizeResponse struct {
	Audio    string `json:"audio"`
	MimeType string `json:"mime_type"`
}

// ExtractDocumentResponse returns extracted document text plus metadata.
type ExtractDocumentResponse struct {
	Text     string                      `json:"text"`
	Metadata *ingestion.DocumentMetadata `json:"metadata"`
}

// handleTranscribe accepts a multipart audio upload and returns the
// transcript.
func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if s.transcriber == nil {
		s.domainError(w, &ErrMissingCredential{Feature: "speech-to-text"})
		return
	}

	audio, mimeType, err := s.readUpload(r, "audio", speech.MaxAudioBytes)
	if err != nil {
		s.domainError(w, err)
		return
	}

	transcript, err := s.transcriber.Transcribe(r.Context(), audio, mimeType)
	if err != nil {
		s.transcriptionError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, TranscribeResponse{Transcript: transcript})
}

// transcriptionError keeps the size and empty-transcript errors typed while
// wrapping everything else as a provider failure.
func (s *Server) transcriptionError(w http.ResponseWriter, err error) {
	switch err.(type) {
	case *speech.ErrAudioTooLarge, *speech.ErrEmptyTranscript:
		s.domainError(w, err)
	default:
		s.domainError(w, &ErrProvider{Op: "speech recognition", Err: err})
	}
}

// handleSynthesize renders text as spoken audio.
func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	if s.synthesizer == nil {
		s.domainError(w, &ErrMissingCredential{Feature: "text-to-speech"})
		return
	}

	var req SynthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.domainError(w, &ErrValidation{Field: "text", Message: "text is required"})
		return
	}

	audio, err := s.synthesizer.Synthesize(r.Context(), req.Text)
	if err != nil {
		s.domainError(w, &ErrProvider{Op: "speech synthesis", Err: err})
		return
	}

	s.jsonResponse(w, http.StatusOK, SynthesizeResponse{
		Audio:    base64.StdEncoding.EncodeToString(audio),
		MimeType: "audio/mpeg",
	})
}

// handleExtractDocument accepts a multipart document upload and returns its
// text, truncated to the prompt size cap.
func (s *Server) handleExtractDocument(w http.ResponseWriter, r *http.Request) {
	data, mimeType, err := s.readUpload(r, "document", ingestion.MaxDocumentBytes)
	if err != nil {
		s.domainError(w, err)
		return
	}

	text, meta, err := s.extractor.ExtractText(r.Context(), data, mimeType)
	if err != nil {
		if _, ok := err.(*ingestion.ErrUnsupportedDocumentType); ok {
			s.domainError(w, err)
			return
		}
		s.domainError(w, &ErrProvider{Op: "document extraction", Err: err})
		return
	}

	s.jsonResponse(w, http.StatusOK, ExtractDocumentResponse{Text: text, Metadata: meta})
}

// readUpload reads one multipart file field, capped at maxBytes. The MIME
// type comes from the part header, falling back to a "mime_type" form field.
func (s *Server) readUpload(r *http.Request, field string, maxBytes int64) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes+4096)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, "", &ErrValidation{Field: field, Message: "expected a multipart upload: " + err.Error()}
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", &ErrValidation{Field: field, Message: "file field is required"}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", &ErrValidation{Field: field, Message: "failed to read upload: " + err.Error()}
	}

	mimeType := header.Header.Get("Content-Type")
	if override := r.FormValue("mime_type"); override != "" {
		mimeType = override
	}
	return data, mimeType, nil
}

package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/feedback"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/orchestrator"
)

// audioGrace is how long a turn handler holds the stream open for the
// detached audio event after the reply has been sent.
const audioGrace = 15 * time.Second

// kickoffMessage is the synthetic candidate message that opens a session so
// the interviewer speaks first.
const kickoffMessage = "Hello, I'm ready to begin the interview."

// PromptRequest asks for a composed system prompt.
type PromptRequest struct {
	Config interview.InterviewRequestConfig `json:"config"`
}

// PromptResponse returns the composed prompt and the values resolved while
// building it.
type PromptResponse struct {
	Prompt        string           `json:"prompt"`
	Company       string           `json:"company"`
	Title         string           `json:"title"`
	PriorityOrder []interview.Tier `json:"priority_order"`
}

// StartRequest opens a new interview session.
type StartRequest struct {
	Config interview.InterviewRequestConfig `json:"config"`
}

// SessionEvent is the first SSE event of a session. The client echoes
// company and research back on every subsequent turn; the server keeps no
// session state beyond the stale guard.
type SessionEvent struct {
	SessionID     string           `json:"session_id"`
	Company       string           `json:"company"`
	Title         string           `json:"title"`
	PriorityOrder []interview.Tier `json:"priority_order"`
	Research      string           `json:"research,omitempty"`
}

// TurnRequestBody runs one interview turn.
type TurnRequestBody struct {
	SessionID  string                           `json:"session_id"`
	Turn       int                              `json:"turn"`
	Config     interview.InterviewRequestConfig `json:"config"`
	Transcript []interview.Message              `json:"transcript"`
	Research   string                           `json:"research,omitempty"`
}

// FeedbackRequestBody scores the latest answer in a transcript.
type FeedbackRequestBody struct {
	Config         interview.InterviewRequestConfig `json:"config"`
	Transcript     []interview.Message              `json:"transcript"`
	QuestionNumber int                              `json:"question_number,omitempty"`
}

// VerdictRequestBody asks for the final interview verdict.
type VerdictRequestBody struct {
	Config     interview.InterviewRequestConfig `json:"config"`
	Transcript []interview.Message              `json:"transcript"`
	Feedback   []feedback.FeedbackItem          `json:"feedback,omitempty"`
}

// handleComposePrompt composes and returns the system prompt without running
// a turn. Inspection route; no research is fetched.
func (s *Server) handleComposePrompt(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cfg, err := s.preparedConfig(req.Config)
	if err != nil {
		s.domainError(w, err)
		return
	}

	prompt := s.composer.Compose(cfg, "")
	s.jsonResponse(w, http.StatusOK, PromptResponse{
		Prompt:        prompt.Text,
		Company:       prompt.Company,
		Title:         prompt.Title,
		PriorityOrder: prompt.Order,
	})
}

// handleStartInterview validates the config, pins the session's company,
// fetches optional research and streams the interviewer's opening message.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cfg, err := s.preparedConfig(req.Config)
	if err != nil {
		s.domainError(w, err)
		return
	}

	// Resolve the company once. Every later turn echoes it back in the
	// config, so random picks stay stable for the whole session.
	composed := s.composer.Compose(cfg, "")
	cfg.Company = composed.Company

	research := ""
	if s.researcher.Enabled() {
		brief, err := s.researcher.ResearchCompany(r.Context(), cfg.Company, cfg.Role)
		if err != nil {
			log.Printf("company research skipped: %v", err)
		} else {
			research = brief
		}
	}

	sessionID := uuid.New().String()

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := sse.WriteEvent("session", SessionEvent{
		SessionID:     sessionID,
		Company:       cfg.Company,
		Title:         composed.Title,
		PriorityOrder: composed.Order,
		Research:      research,
	}); err != nil {
		return
	}

	var transcript interview.Transcript
	transcript = transcript.Append("user", kickoffMessage)

	s.streamTurn(w, r, sse, orchestrator.TurnRequest{
		Config:     cfg,
		Transcript: transcript,
		Turn:       1,
		Research:   research,
	}, sessionID)
}

// handleInterviewTurn streams one turn: the interviewer's reply plus, in
// parallel, feedback on the candidate's latest answer.
func (s *Server) handleInterviewTurn(w http.ResponseWriter, r *http.Request) {
	var req TurnRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.SessionID == "" {
		s.domainError(w, &ErrValidation{Field: "session_id", Message: "session_id is required"})
		return
	}
	if req.Turn < 1 {
		s.domainError(w, &ErrValidation{Field: "turn", Message: "turn must be a positive integer"})
		return
	}
	if len(req.Transcript) == 0 || req.Transcript[len(req.Transcript)-1].Role != "user" {
		s.domainError(w, &ErrValidation{Field: "transcript", Message: "transcript must end with a candidate message"})
		return
	}

	cfg, err := s.preparedConfig(req.Config)
	if err != nil {
		s.domainError(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.streamTurn(w, r, sse, orchestrator.TurnRequest{
		Config:     cfg,
		Transcript: interview.Transcript(req.Transcript),
		Turn:       req.Turn,
		Research:   req.Research,
	}, req.SessionID)
}

// turnEmitter forwards orchestrator events to the SSE stream until the
// handler returns. The detached synthesis goroutine can outlive the request;
// after Close its events are dropped instead of reaching a dead connection.
type turnEmitter struct {
	mu     sync.Mutex
	sse    *SSEWriter
	closed bool
}

func (e *turnEmitter) Emit(ev orchestrator.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	return e.sse.WriteEvent(ev.Type, ev)
}

func (e *turnEmitter) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
}

// streamTurn runs the orchestrator against an established SSE stream and
// holds the stream open briefly for the detached audio event.
func (s *Server) streamTurn(_ http.ResponseWriter, r *http.Request, sse *SSEWriter, turn orchestrator.TurnRequest, sessionID string) {
	emitter := &turnEmitter{sse: sse}
	defer emitter.Close()

	result, err := s.orch.RunTurn(r.Context(), turn, s.guardFor(sessionID), emitter.Emit)
	if err != nil {
		log.Printf("turn %d failed: %v", turn.Turn, err)
		sse.WriteError(err.Error())
		return
	}

	select {
	case <-result.AudioDone:
	case <-time.After(audioGrace):
	case <-r.Context().Done():
		return
	}

	sse.WriteComplete(sessionID, "completed")
}

// handleFeedback scores the latest answer without streaming.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cfg, err := s.preparedConfig(req.Config)
	if err != nil {
		s.domainError(w, err)
		return
	}

	transcript := interview.Transcript(req.Transcript)
	questionNumber := req.QuestionNumber
	if questionNumber < 1 {
		questionNumber = countAnsweredQuestions(transcript)
	}
	if questionNumber < 1 {
		s.domainError(w, &ErrValidation{Field: "transcript", Message: "transcript has no answered question to score"})
		return
	}

	item, err := s.analyzer.AnalyzeAnswer(r.Context(), cfg, transcript, questionNumber)
	if err != nil {
		s.domainError(w, &ErrProvider{Op: "answer scoring", Err: err})
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

// handleVerdict issues the final pass/borderline/fail assessment.
func (s *Server) handleVerdict(w http.ResponseWriter, r *http.Request) {
	var req VerdictRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cfg, err := s.preparedConfig(req.Config)
	if err != nil {
		s.domainError(w, err)
		return
	}

	if len(req.Transcript) == 0 {
		s.domainError(w, &ErrValidation{Field: "transcript", Message: "transcript is required"})
		return
	}

	var history feedback.History
	for _, item := range req.Feedback {
		history.Append(item)
	}

	verdict, err := s.analyzer.Evaluate(r.Context(), cfg, interview.Transcript(req.Transcript), &history)
	if err != nil {
		s.domainError(w, &ErrProvider{Op: "verdict generation", Err: err})
		return
	}

	s.jsonResponse(w, http.StatusOK, verdict)
}

// preparedConfig sanitizes and validates a user-supplied interview config.
// Struct-tag failures are folded into the validation error type so they map
// to 400 like the table-lookup failures do.
func (s *Server) preparedConfig(cfg interview.InterviewRequestConfig) (interview.InterviewRequestConfig, error) {
	cfg = cfg.Sanitized()
	if err := cfg.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return cfg, &ErrValidation{
				Field:   verrs[0].Field(),
				Message: "failed " + verrs[0].Tag() + " constraint",
			}
		}
		return cfg, err
	}
	return cfg, nil
}

// countAnsweredQuestions counts candidate messages that follow at least one
// interviewer question.
func countAnsweredQuestions(t interview.Transcript) int {
	count := 0
	sawQuestion := false
	for _, msg := range t {
		switch msg.Role {
		case "assistant":
			sawQuestion = true
		case "user":
			if sawQuestion {
				count++
			}
		}
	}
	return count
}

package orchestrator

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/feedback"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/speech"
)

const stubFeedbackJSON = `{
	"strengths": ["specific"], "weaknesses": ["long-winded"],
	"opportunities": ["metrics"], "threats": ["rambling"],
	"suggested_improvements": ["shorten"],
	"communication": 7, "domain_knowledge": 6, "problem_solving": 7, "relevant_experience": 5
}`

// turnStubClient streams canned deltas and serves canned scoring JSON.
type turnStubClient struct {
	deltas    []string
	streamErr error
	jsonBody  string
	jsonErr   error
}

func (s *turnStubClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return "", nil
}

func (s *turnStubClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.jsonBody, s.jsonErr
}

func (s *turnStubClient) GenerateChat(ctx context.Context, systemPrompt string, history []llm.ChatMessage, tier llm.ModelTier) (string, error) {
	return s.GenerateChatStream(ctx, systemPrompt, history, tier, nil)
}

func (s *turnStubClient) GenerateChatStream(ctx context.Context, systemPrompt string, history []llm.ChatMessage, tier llm.ModelTier, onDelta func(string) error) (string, error) {
	if s.streamErr != nil {
		return "", s.streamErr
	}
	var full string
	for _, d := range s.deltas {
		full += d
		if onDelta != nil {
			if err := onDelta(d); err != nil {
				return "", err
			}
		}
	}
	return full, nil
}

func (s *turnStubClient) GenerateFromDocument(ctx context.Context, prompt string, data []byte, mimeType string, tier llm.ModelTier) (string, error) {
	return "", nil
}

func (s *turnStubClient) GetModel(tier llm.ModelTier) string { return "stub" }
func (s *turnStubClient) Close() error                       { return nil }

// stubSynth returns fixed audio bytes.
type stubSynth struct {
	audio []byte
	err   error
}

func (s *stubSynth) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return s.audio, s.err
}

// eventRecorder collects emitted events thread-safely.
type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRecorder) emit(ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *eventRecorder) byType(eventType string) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, ev := range r.events {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func turnConfig() interview.InterviewRequestConfig {
	return interview.InterviewRequestConfig{
		Industry:      "technology",
		Role:          "Backend Engineer",
		Difficulty:    "mid-level",
		Company:       "Acme",
		QuestionCount: 5,
	}
}

func midInterviewTranscript() interview.Transcript {
	var t interview.Transcript
	t = t.Append("assistant", "Walk me through a project you led.")
	t = t.Append("user", "I led our payments migration.")
	return t
}

func newTestOrchestrator(client *turnStubClient, synth speech.Synthesizer) *Orchestrator {
	composer := interview.NewComposerWithRand(rand.New(rand.NewSource(1)))
	return New(client, composer, feedback.NewAnalyzer(client), synth)
}

func TestRunTurn_StreamsReplyAndFeedback(t *testing.T) {
	client := &turnStubClient{
		deltas:   []string{"Tell me ", "more about that."},
		jsonBody: stubFeedbackJSON,
	}
	o := newTestOrchestrator(client, nil)
	rec := &eventRecorder{}

	result, err := o.RunTurn(context.Background(), TurnRequest{
		Config:     turnConfig(),
		Transcript: midInterviewTranscript(),
		Turn:       2,
	}, &StaleGuard{}, rec.emit)
	require.NoError(t, err)

	assert.Equal(t, "Tell me more about that.", result.Reply)
	assert.Equal(t, "Acme", result.Company)
	require.NotNil(t, result.Feedback)
	assert.Equal(t, 1, result.Feedback.QuestionNumber)

	deltas := rec.byType(EventDelta)
	require.Len(t, deltas, 2)
	assert.Equal(t, "Tell me ", deltas[0].Data)
	assert.Equal(t, 2, deltas[0].Turn)

	require.Len(t, rec.byType(EventFeedback), 1)

	replies := rec.byType(EventReply)
	require.Len(t, replies, 1)
	assert.Equal(t, "Tell me more about that.", replies[0].Data)
}

func TestRunTurn_FirstTurnHasNoFeedback(t *testing.T) {
	client := &turnStubClient{deltas: []string{"Hello, I am your interviewer."}}
	o := newTestOrchestrator(client, nil)
	rec := &eventRecorder{}

	var transcript interview.Transcript
	transcript = transcript.Append("user", "Hello, I'm ready to start.")

	result, err := o.RunTurn(context.Background(), TurnRequest{
		Config:     turnConfig(),
		Transcript: transcript,
		Turn:       1,
	}, &StaleGuard{}, rec.emit)
	require.NoError(t, err)

	assert.Nil(t, result.Feedback)
	assert.Empty(t, rec.byType(EventFeedback))
}

func TestRunTurn_FeedbackFailureDegrades(t *testing.T) {
	client := &turnStubClient{
		deltas:  []string{"Next question."},
		jsonErr: fmt.Errorf("provider unavailable"),
	}
	o := newTestOrchestrator(client, nil)
	rec := &eventRecorder{}

	result, err := o.RunTurn(context.Background(), TurnRequest{
		Config:     turnConfig(),
		Transcript: midInterviewTranscript(),
		Turn:       2,
	}, &StaleGuard{}, rec.emit)
	require.NoError(t, err)

	assert.Equal(t, "Next question.", result.Reply)
	assert.Nil(t, result.Feedback)
	assert.Empty(t, rec.byType(EventFeedback))
	assert.Len(t, rec.byType(EventReply), 1)
}

func TestRunTurn_StreamFailureFailsTurn(t *testing.T) {
	client := &turnStubClient{
		streamErr: fmt.Errorf("stream broke"),
		jsonBody:  stubFeedbackJSON,
	}
	o := newTestOrchestrator(client, nil)
	rec := &eventRecorder{}

	_, err := o.RunTurn(context.Background(), TurnRequest{
		Config:     turnConfig(),
		Transcript: midInterviewTranscript(),
		Turn:       2,
	}, &StaleGuard{}, rec.emit)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interviewer reply failed")
	assert.Empty(t, rec.byType(EventReply))
}

func TestRunTurn_EmitsAudioWhenSynthConfigured(t *testing.T) {
	client := &turnStubClient{deltas: []string{"Spoken reply."}}
	synth := &stubSynth{audio: []byte("mp3-bytes")}
	o := newTestOrchestrator(client, synth)
	rec := &eventRecorder{}

	result, err := o.RunTurn(context.Background(), TurnRequest{
		Config:     turnConfig(),
		Transcript: midInterviewTranscript(),
		Turn:       3,
	}, &StaleGuard{}, rec.emit)
	require.NoError(t, err)

	select {
	case <-result.AudioDone:
	case <-time.After(2 * time.Second):
		t.Fatal("synthesis did not finish")
	}

	audio := rec.byType(EventAudio)
	require.Len(t, audio, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("mp3-bytes")), audio[0].Data)
}

func TestRunTurn_SynthesisFailureIsSilent(t *testing.T) {
	client := &turnStubClient{deltas: []string{"Reply."}}
	synth := &stubSynth{err: fmt.Errorf("tts down")}
	o := newTestOrchestrator(client, synth)
	rec := &eventRecorder{}

	result, err := o.RunTurn(context.Background(), TurnRequest{
		Config:     turnConfig(),
		Transcript: midInterviewTranscript(),
		Turn:       2,
	}, &StaleGuard{}, rec.emit)
	require.NoError(t, err)

	<-result.AudioDone
	assert.Empty(t, rec.byType(EventAudio))
}

func TestRunTurn_SupersededTurnRejected(t *testing.T) {
	client := &turnStubClient{deltas: []string{"Reply."}}
	o := newTestOrchestrator(client, nil)
	guard := &StaleGuard{}
	require.True(t, guard.Begin(5))

	_, err := o.RunTurn(context.Background(), TurnRequest{
		Config:     turnConfig(),
		Transcript: midInterviewTranscript(),
		Turn:       4,
	}, guard, (&eventRecorder{}).emit)

	assert.Error(t, err)
}

func TestStaleGuard(t *testing.T) {
	guard := &StaleGuard{}

	assert.True(t, guard.Begin(1))
	assert.True(t, guard.Current(1))

	assert.True(t, guard.Begin(2))
	assert.False(t, guard.Current(1))
	assert.True(t, guard.Current(2))

	// An older turn arriving late is stale on arrival.
	assert.False(t, guard.Begin(1))
}

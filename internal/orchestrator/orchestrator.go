// Package orchestrator coordinates the work behind one interview turn: the
// streamed interviewer reply, the concurrent scoring of the previous answer,
// and the detached speech synthesis of the reply.
package orchestrator

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-coach/internal/feedback"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/speech"
)

// synthesisTimeout bounds the detached text-to-speech call. It uses its own
// deadline because the turn's context is already done by the time audio is
// ready in the common case.
const synthesisTimeout = 30 * time.Second

// Event types emitted over the turn stream.
const (
	EventDelta    = "delta"
	EventFeedback = "feedback"
	EventReply    = "reply"
	EventAudio    = "audio"
)

// Event is one turn-tagged message on the stream. Consumers use Turn to
// discard events from superseded turns client-side as well.
type Event struct {
	Type string `json:"type"`
	Turn int    `json:"turn"`
	Data any    `json:"data"`
}

// Emitter delivers events to the client. The orchestrator serializes calls;
// implementations do not need their own locking.
type Emitter func(Event) error

// TurnRequest carries everything needed to run one turn. The transcript must
// end with the candidate's latest message.
type TurnRequest struct {
	Config     interview.InterviewRequestConfig
	Transcript interview.Transcript
	Turn       int
	Research   string
}

// TurnResult is what a completed turn produced. Feedback is nil on the first
// turn and whenever scoring failed; a missing score never fails the turn.
// AudioDone closes once detached speech synthesis has finished or been
// skipped, letting the caller hold the stream open for the audio event.
type TurnResult struct {
	Reply     string
	Company   string
	Feedback  *feedback.FeedbackItem
	AudioDone <-chan struct{}
}

// Orchestrator runs interview turns. All fields are set at construction;
// synth may be nil, which disables spoken replies.
type Orchestrator struct {
	client   llm.Client
	composer *interview.Composer
	analyzer *feedback.Analyzer
	synth    speech.Synthesizer
}

// New creates an Orchestrator.
func New(client llm.Client, composer *interview.Composer, analyzer *feedback.Analyzer, synth speech.Synthesizer) *Orchestrator {
	return &Orchestrator{
		client:   client,
		composer: composer,
		analyzer: analyzer,
		synth:    synth,
	}
}

// RunTurn executes one interview turn. The interviewer reply streams to the
// emitter as it is generated while the previous answer is scored in
// parallel. The reply is mandatory: a stream failure fails the turn. The
// score is best-effort: a scoring failure is logged and the turn proceeds
// without a feedback event. Speech synthesis is started last and not waited
// for.
func (o *Orchestrator) RunTurn(ctx context.Context, req TurnRequest, guard *StaleGuard, emit Emitter) (*TurnResult, error) {
	if guard != nil && !guard.Begin(req.Turn) {
		return nil, fmt.Errorf("turn %d superseded before it started", req.Turn)
	}
	if len(req.Transcript) == 0 {
		return nil, fmt.Errorf("turn requires at least one candidate message")
	}

	send := o.guardedEmitter(req.Turn, guard, emit)

	prompt := o.composer.Compose(req.Config, req.Research)
	history := toChatHistory(req.Transcript)

	result := &TurnResult{Company: prompt.Company}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		reply, err := o.client.GenerateChatStream(gctx, prompt.Text, history, llm.TierStandard, func(delta string) error {
			return send(Event{Type: EventDelta, Turn: req.Turn, Data: delta})
		})
		if err != nil {
			return fmt.Errorf("interviewer reply failed: %w", err)
		}
		result.Reply = reply
		return nil
	})

	if o.analyzer != nil && hasScorableExchange(req.Transcript) {
		g.Go(func() error {
			item, err := o.analyzer.AnalyzeAnswer(gctx, req.Config, req.Transcript, answeredQuestions(req.Transcript))
			if err != nil {
				log.Printf("turn %d: answer scoring skipped: %v", req.Turn, err)
				return nil
			}
			result.Feedback = &item
			return send(Event{Type: EventFeedback, Turn: req.Turn, Data: item})
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := send(Event{Type: EventReply, Turn: req.Turn, Data: result.Reply}); err != nil {
		return nil, err
	}

	result.AudioDone = o.startSynthesis(req.Turn, result.Reply, send)
	return result, nil
}

// guardedEmitter serializes emits and silently drops events once the turn is
// superseded.
func (o *Orchestrator) guardedEmitter(turn int, guard *StaleGuard, emit Emitter) Emitter {
	var mu sync.Mutex
	return func(ev Event) error {
		if guard != nil && !guard.Current(turn) {
			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		return emit(ev)
	}
}

// startSynthesis kicks off detached text-to-speech for the reply. The
// returned channel closes when the audio event has been sent, synthesis
// failed, or no synthesizer is configured.
func (o *Orchestrator) startSynthesis(turn int, reply string, send Emitter) <-chan struct{} {
	done := make(chan struct{})
	if o.synth == nil || reply == "" {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(context.Background(), synthesisTimeout)
		defer cancel()

		audio, err := o.synth.Synthesize(ctx, reply)
		if err != nil {
			log.Printf("turn %d: speech synthesis skipped: %v", turn, err)
			return
		}
		if err := send(Event{Type: EventAudio, Turn: turn, Data: base64.StdEncoding.EncodeToString(audio)}); err != nil {
			log.Printf("turn %d: audio event dropped: %v", turn, err)
		}
	}()
	return done
}

// toChatHistory converts the transcript to provider chat messages.
func toChatHistory(t interview.Transcript) []llm.ChatMessage {
	history := make([]llm.ChatMessage, 0, len(t))
	for _, msg := range t {
		history = append(history, llm.ChatMessage{Role: msg.Role, Content: msg.Content})
	}
	return history
}

// hasScorableExchange reports whether the transcript contains a question
// followed by an answer. The opening turn has nothing to score.
func hasScorableExchange(t interview.Transcript) bool {
	sawQuestion := false
	for _, msg := range t {
		switch msg.Role {
		case "assistant":
			sawQuestion = true
		case "user":
			if sawQuestion {
				return true
			}
		}
	}
	return false
}

// answeredQuestions counts candidate messages that answered an interviewer
// question, which numbers the feedback item being produced.
func answeredQuestions(t interview.Transcript) int {
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

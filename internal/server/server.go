package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jonathan/interview-coach/internal/feedback"
	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/orchestrator"
	"github.com/jonathan/interview-coach/internal/research"
	"github.com/jonathan/interview-coach/internal/server/ratelimit"
	"github.com/jonathan/interview-coach/internal/speech"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	rateLimiter *ratelimit.Limiter

	composer    *interview.Composer
	analyzer    *feedback.Analyzer
	orch        *orchestrator.Orchestrator
	extractor   *ingestion.Extractor
	researcher  *research.Researcher
	transcriber speech.Transcriber
	synthesizer speech.Synthesizer
	llmClient   llm.Client

	// guards holds the per-session stale guards. Sessions are identified by
	// the client; no other server-side session state exists. Entries idle
	// past sessionGuardTTL are swept so the map cannot grow without bound.
	guardsMu    sync.Mutex
	guards      map[string]*guardEntry
	guardTicker *time.Ticker
	guardStop   chan struct{}
}

// guardEntry pairs a session's stale guard with its last use, for sweeping.
type guardEntry struct {
	guard    *orchestrator.StaleGuard
	lastSeen time.Time
}

const (
	// sessionGuardTTL is how long an idle session's guard is kept.
	sessionGuardTTL = 2 * time.Hour
	// guardSweepInterval is how often idle guards are swept.
	guardSweepInterval = 10 * time.Minute
)

// Config holds server configuration
type Config struct {
	Port           int
	GeminiAPIKey   string
	SpeechAPIKey   string
	SearchAPIKey   string
	SearchEngineID string
}

// New creates a new server instance. The Gemini credential is mandatory;
// speech and search credentials are optional feature flags.
func New(cfg Config) (*Server, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	researcher, err := research.NewResearcher(ctx, cfg.SearchAPIKey, cfg.SearchEngineID)
	if err != nil {
		return nil, fmt.Errorf("failed to create researcher: %w", err)
	}
	if !researcher.Enabled() {
		log.Printf("company research disabled: search credentials not configured")
	}

	var transcriber speech.Transcriber
	var synthesizer speech.Synthesizer
	if cfg.SpeechAPIKey != "" {
		t, err := speech.NewGoogleTranscriber(ctx, cfg.SpeechAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create transcriber: %w", err)
		}
		transcriber = t

		s, err := speech.NewGoogleSynthesizer(ctx, cfg.SpeechAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create synthesizer: %w", err)
		}
		synthesizer = s
	} else {
		log.Printf("voice features disabled: speech credential not configured")
	}

	s := newServer(client, researcher, transcriber, synthesizer)
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // SSE turns stay open for the full reply
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer wires the domain services. Split from New so tests can inject
// stub providers without credentials.
func newServer(client llm.Client, researcher *research.Researcher, transcriber speech.Transcriber, synthesizer speech.Synthesizer) *Server {
	composer := interview.NewComposer()
	analyzer := feedback.NewAnalyzer(client)
	s := &Server{
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		composer:    composer,
		analyzer:    analyzer,
		orch:        orchestrator.New(client, composer, analyzer, synthesizer),
		extractor:   ingestion.NewExtractor(client),
		researcher:  researcher,
		transcriber: transcriber,
		synthesizer: synthesizer,
		llmClient:   client,
		guards:      make(map[string]*guardEntry),
		guardTicker: time.NewTicker(guardSweepInterval),
		guardStop:   make(chan struct{}),
	}
	go s.guardSweep()
	return s
}

// Handler builds the routed handler with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Static configuration tables.
	mux.HandleFunc("GET /industries", s.handleListIndustries)
	mux.HandleFunc("GET /industries/{id}", s.handleGetIndustry)
	mux.HandleFunc("GET /companies/{name}/style", s.handleGetCompanyStyle)

	// Interview lifecycle.
	mux.HandleFunc("POST /interviews/prompt", s.handleComposePrompt)
	mux.HandleFunc("POST /interviews/start", s.handleStartInterview)
	mux.HandleFunc("POST /interviews/turn", s.handleInterviewTurn)
	mux.HandleFunc("POST /interviews/verdict", s.handleVerdict)
	mux.HandleFunc("POST /feedback", s.handleFeedback)

	// Media and document endpoints.
	mux.HandleFunc("POST /transcribe", s.handleTranscribe)
	mux.HandleFunc("POST /speech", s.handleSynthesize)
	mux.HandleFunc("POST /documents/extract", s.handleExtractDocument)

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	// Stop the session guard sweeper
	s.guardTicker.Stop()
	close(s.guardStop)

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	log.Println("Server stopped")
	return nil
}

// guardFor returns the stale guard for a session, creating it on first use.
func (s *Server) guardFor(sessionID string) *orchestrator.StaleGuard {
	s.guardsMu.Lock()
	defer s.guardsMu.Unlock()
	entry, ok := s.guards[sessionID]
	if !ok {
		entry = &guardEntry{guard: &orchestrator.StaleGuard{}}
		s.guards[sessionID] = entry
	}
	entry.lastSeen = time.Now()
	return entry.guard
}

// guardSweep periodically evicts guards for sessions idle past the TTL.
func (s *Server) guardSweep() {
	for {
		select {
		case <-s.guardTicker.C:
			s.sweepGuards(time.Now().Add(-sessionGuardTTL))
		case <-s.guardStop:
			return
		}
	}
}

// sweepGuards removes guards last used before the cutoff.
func (s *Server) sweepGuards(cutoff time.Time) {
	s.guardsMu.Lock()
	defer s.guardsMu.Unlock()
	for id, entry := range s.guards {
		if entry.lastSeen.Before(cutoff) {
			delete(s.guards, id)
		}
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// domainError maps a typed error onto its HTTP status and writes it.
func (s *Server) domainError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

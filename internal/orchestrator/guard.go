package orchestrator

import "sync"

// StaleGuard tracks the newest turn number seen for a session. When the
// client fires a new turn while an older one is still streaming, events from
// the superseded turn are dropped rather than interleaved with the new ones.
type StaleGuard struct {
	mu     sync.Mutex
	latest int
}

// Begin registers a turn and reports whether it is (still) the newest.
// Turn numbers at or below an already-registered turn are stale on arrival.
func (g *StaleGuard) Begin(turn int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if turn < g.latest {
		return false
	}
	g.latest = turn
	return true
}

// Current reports whether the turn is still the newest registered one.
func (g *StaleGuard) Current(turn int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return turn == g.latest
}

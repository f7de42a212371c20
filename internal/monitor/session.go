package monitor

import (
	"log"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// Session is the run-wide monitoring state: the ordered target list plus
// the round counters. It is created once at startup, mutated only by the
// loop, and never persisted; a restarted process starts a fresh session
// with every target pending again.
type Session struct {
	Targets       []*Target
	AttemptCount  int
	CheckInterval time.Duration

	// MaxAttempts caps the number of rounds; <= 0 means unbounded.
	MaxAttempts int

	// MaxTargetFailures abandons a target after this many consecutive
	// inspection failures; 0 disables the cap.
	MaxTargetFailures int
}

// NewSession builds the session from the configured job URLs, preserving
// their order. Duplicate URLs are tolerated (each keeps its own target)
// but flagged, since polling the same posting twice per round only burns
// budget.
func NewSession(urls []string, interval time.Duration, maxAttempts, maxTargetFailures int) *Session {
	targets := make([]*Target, 0, len(urls))
	seen := mapset.NewSet[string]()
	for _, u := range urls {
		if !seen.Add(u) {
			log.Printf("⚠️ Duplicate job URL configured: %s", u)
		}
		targets = append(targets, &Target{URL: u, Status: StatusPending})
	}
	return &Session{
		Targets:           targets,
		CheckInterval:     interval,
		MaxAttempts:       maxAttempts,
		MaxTargetFailures: maxTargetFailures,
	}
}

// HasActive reports whether any target still needs polling.
func (s *Session) HasActive() bool {
	for _, t := range s.Targets {
		if t.Active() {
			return true
		}
	}
	return false
}

// AbandonActive marks every remaining active target abandoned and returns
// them, in configured order.
func (s *Session) AbandonActive() []*Target {
	var abandoned []*Target
	for _, t := range s.Targets {
		if t.Active() {
			t.Status = StatusAbandoned
			t.Note = "round budget exhausted"
			abandoned = append(abandoned, t)
		}
	}
	return abandoned
}

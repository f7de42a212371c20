package monitor

import (
	"context"
	"log"
	"time"
)

// Outcome is the terminal condition of a monitoring run.
type Outcome string

const (
	// OutcomeAllResolved means every target left the active set before the
	// round budget ran out.
	OutcomeAllResolved Outcome = "all_resolved"
	// OutcomeBudgetExhausted means the round budget ran out with targets
	// still active; they were abandoned.
	OutcomeBudgetExhausted Outcome = "budget_exhausted"
	// OutcomeCancelled means the run context was cancelled mid-flight.
	OutcomeCancelled Outcome = "cancelled"
)

// Summary is the terminal report of a run.
type Summary struct {
	Outcome   Outcome
	Rounds    int
	Applied   []string
	Abandoned []string
	Pending   []string
}

// Summarize snapshots the session into a terminal report.
func (s *Session) Summarize(outcome Outcome) Summary {
	sum := Summary{Outcome: outcome, Rounds: s.AttemptCount}
	for _, t := range s.Targets {
		switch t.Status {
		case StatusApplied:
			sum.Applied = append(sum.Applied, t.URL)
		case StatusAbandoned:
			sum.Abandoned = append(sum.Abandoned, t.URL)
		default:
			sum.Pending = append(sum.Pending, t.URL)
		}
	}
	return sum
}

// Monitor drives repeated inspection of all active targets until each is
// resolved or the round budget is exhausted. It is single-threaded by
// design: targets are polled strictly in configured order, one browser
// session serves the whole run, and the only suspension point is the
// inter-round sleep.
type Monitor struct {
	inspector PageInspector
	notifier  Notifier
}

// New creates a monitor over the given collaborators.
func New(inspector PageInspector, notifier Notifier) *Monitor {
	return &Monitor{inspector: inspector, notifier: notifier}
}

// Run executes rounds against the session until a terminal condition is
// reached and returns the summary. The session is mutated in place.
func (m *Monitor) Run(ctx context.Context, s *Session) Summary {
	log.Printf("🚀 Monitoring %d job(s), checking every %s", len(s.Targets), s.CheckInterval)
	if s.MaxAttempts > 0 {
		log.Printf("   Round budget: %d", s.MaxAttempts)
	} else {
		log.Println("   Round budget: unbounded")
	}

	for {
		if s.MaxAttempts > 0 && s.AttemptCount >= s.MaxAttempts {
			abandoned := s.AbandonActive()
			log.Printf("⏹️ Budget exhausted after %d round(s), abandoning %d target(s)", s.AttemptCount, len(abandoned))
			return s.Summarize(OutcomeBudgetExhausted)
		}

		s.AttemptCount++
		log.Printf("🔄 Round #%d", s.AttemptCount)

		if !m.runRound(ctx, s) {
			log.Println("🛑 Monitoring cancelled")
			return s.Summarize(OutcomeCancelled)
		}

		if !s.HasActive() {
			log.Printf("🏁 All targets resolved after %d round(s)", s.AttemptCount)
			return s.Summarize(OutcomeAllResolved)
		}

		log.Printf("⏳ Waiting %s before next round...", s.CheckInterval)
		if !sleepCtx(ctx, s.CheckInterval) {
			log.Println("🛑 Monitoring cancelled")
			return s.Summarize(OutcomeCancelled)
		}
	}
}

// runRound scans every active target once, strictly in configured order.
// It reports false when the context was cancelled mid-scan.
func (m *Monitor) runRound(ctx context.Context, s *Session) bool {
	for i, t := range s.Targets {
		if !t.Active() {
			continue
		}
		if ctx.Err() != nil {
			return false
		}
		log.Printf("  🔍 [%d/%d] Checking %s", i+1, len(s.Targets), t.URL)
		m.checkTarget(ctx, s, t)
	}
	return true
}

// checkTarget inspects one target and walks it through its transitions.
// Everything that goes wrong here stays inside the round: the target is
// left retryable and the loop moves on.
func (m *Monitor) checkTarget(ctx context.Context, s *Session, t *Target) {
	verdict, err := m.inspector.Inspect(ctx, t.URL)
	if err != nil {
		t.Status = StatusFailed
		t.ConsecutiveFailures++
		t.Note = err.Error()
		log.Printf("    ⚠️ Inspection failed (%d in a row): %v", t.ConsecutiveFailures, err)
		if s.MaxTargetFailures > 0 && t.ConsecutiveFailures >= s.MaxTargetFailures {
			t.Status = StatusAbandoned
			log.Printf("    🚫 Giving up on %s after %d consecutive failures", t.URL, t.ConsecutiveFailures)
		}
		return
	}

	t.ConsecutiveFailures = 0
	if !verdict.Available {
		t.Status = StatusPending
		t.Note = verdict.Reason
		log.Printf("    💤 Not available: %s", verdict.Reason)
		return
	}

	log.Printf("    🎉 JOB IS AVAILABLE! %s", verdict.Reason)
	m.notifier.Notify(Event{
		Kind:      EventJobAvailable,
		TargetURL: t.URL,
		Message:   "Job is now available! " + verdict.Reason,
		Timestamp: time.Now(),
	})

	note, err := m.inspector.Apply(ctx, t.URL)
	if err != nil {
		// eligible again next round
		t.Status = StatusPending
		t.Note = err.Error()
		log.Printf("    ❌ Failed to apply: %v", err)
		m.notifier.Notify(Event{
			Kind:      EventError,
			TargetURL: t.URL,
			Message:   "Failed to apply: " + err.Error(),
			Timestamp: time.Now(),
		})
		return
	}

	t.Status = StatusApplied
	t.Note = note
	log.Printf("    ✅ Application submitted: %s", note)
	m.notifier.Notify(Event{
		Kind:      EventApplied,
		TargetURL: t.URL,
		Message:   "Successfully applied! " + note,
		Timestamp: time.Now(),
	})
}

// sleepCtx blocks for d or until ctx is cancelled, reporting false on
// cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

package monitor

// Status is the resolution state of a monitored job posting.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApplied   Status = "applied"
	StatusFailed    Status = "failed"
	StatusAbandoned Status = "abandoned"
)

// Target is one monitored job posting. Targets are created from
// configuration at startup and only ever change status; they are never
// removed from the session.
type Target struct {
	URL                 string
	Status              Status
	ConsecutiveFailures int
	Note                string
}

// Active reports whether the target still needs polling. A failed target
// stays active: one bad page load is retried on the next round, only
// applied and abandoned are terminal.
func (t *Target) Active() bool {
	return t.Status == StatusPending || t.Status == StatusFailed
}

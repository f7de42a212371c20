// Narrow interfaces for the two external collaborators the loop drives.
// Implementations live in internal/inspector and internal/notify; the
// loop never sees a browser or an SMTP client.

package monitor

import (
	"context"
	"time"
)

// Inspection is the outcome of rendering a job page and looking for an
// actionable apply affordance. A broken page load is reported through the
// error return instead, so the loop can tell "the page said no" apart
// from "the page could not be read".
type Inspection struct {
	Available bool
	Reason    string
}

// PageInspector renders job postings and drives the apply click-through.
type PageInspector interface {
	// Inspect loads the URL and reports whether the apply affordance is
	// present and actionable. A non-nil error means the inspection itself
	// failed and says nothing about the posting.
	Inspect(ctx context.Context, url string) (Inspection, error)

	// Apply loads the URL and clicks the affordance through. The returned
	// string is a human-readable note about how far the application got.
	Apply(ctx context.Context, url string) (string, error)
}

// EventKind classifies a notification event.
type EventKind string

const (
	EventJobAvailable EventKind = "job_available"
	EventApplied      EventKind = "applied"
	EventError        EventKind = "error"
)

// Event is the ephemeral value handed to the notifier when a target's
// lifecycle changes. It is constructed, dispatched, and dropped.
type Event struct {
	Kind      EventKind
	TargetURL string
	Message   string
	Timestamp time.Time
}

// Notifier dispatches lifecycle events. Dispatch is fire-and-forget:
// implementations log their own failures and never surface them here.
type Notifier interface {
	Notify(Event)
}

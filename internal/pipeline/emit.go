package pipeline

import (
	"context"

	"dashgen/internal/schema"
	"dashgen/internal/variety"
)

// EventType discriminates the stream events a run emits.
type EventType string

const (
	EventComponent EventType = "component"
	EventProgress  EventType = "progress"
	EventDone      EventType = "done"
	EventError     EventType = "error"
)

// Event is one entry on a run's event stream. Component is set for
// "component" events, Progress (0-100) for "progress", Message for "error",
// and Report plus Count for the terminal "done".
type Event struct {
	Type      EventType         `json:"type"`
	SessionID string            `json:"session_id"`
	Component *schema.Component `json:"component,omitempty"`
	Progress  int               `json:"progress,omitempty"`
	Count     int               `json:"count,omitempty"`
	Message   string            `json:"message,omitempty"`
	Report    *variety.Report   `json:"variety,omitempty"`
}

// emit blocks on the bounded channel until the consumer takes the event or
// the run is cancelled. Emission and the model calls are the only suspension
// points in a run.
func (p *Pipeline) emit(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

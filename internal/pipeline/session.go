// Package pipeline sequences one markdown-to-dashboard run: content analysis,
// layout-strategy selection, component-spec generation, normalization, build,
// layout resolution and streamed emission.
package pipeline

import (
	"github.com/google/uuid"

	"dashgen/internal/factory"
	"dashgen/internal/ids"
	"dashgen/internal/normalize"
	"dashgen/internal/schema"
	"dashgen/internal/variety"
)

// State is the pipeline state machine position.
type State int

const (
	StateIdle State = iota
	StateAnalyzing
	StateGenerating
	StateComplete
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnalyzing:
		return "analyzing"
	case StateGenerating:
		return "generating"
	case StateComplete:
		return "complete"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Session is the scope of one markdown-to-dashboard run. It owns the ID
// counter and the append-only output sequence; nothing is shared across
// concurrent sessions.
type Session struct {
	ID    string
	state State

	ids        *ids.Generator
	factory    *factory.Factory
	normalizer *normalize.Normalizer

	sequence []*schema.Component
	report   variety.Report
}

func newSession(norm func(*factory.Factory) *normalize.Normalizer) *Session {
	gen := ids.New()
	f := factory.New(gen)
	return &Session{
		ID:         uuid.NewString(),
		ids:        gen,
		factory:    f,
		normalizer: norm(f),
	}
}

// State returns the current machine position.
func (s *Session) State() State { return s.state }

// Components returns the produced sequence in emission order.
func (s *Session) Components() []*schema.Component {
	out := make([]*schema.Component, len(s.sequence))
	copy(out, s.sequence)
	return out
}

// VarietyReport returns the diversity report computed at completion.
func (s *Session) VarietyReport() variety.Report { return s.report }

// Reset zeroes the ID counter and clears the output sequence. Invoked at the
// start of every new document run.
func (s *Session) Reset() {
	s.ids.Reset()
	s.sequence = nil
	s.report = variety.Report{}
	s.state = StateIdle
}

func (s *Session) append(c *schema.Component) {
	s.sequence = append(s.sequence, c)
}

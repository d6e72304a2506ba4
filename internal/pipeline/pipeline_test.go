package pipeline

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashgen/internal/llm"
	"dashgen/internal/markdown"
	"dashgen/internal/schema"
)

// scriptedClient replays canned responses in call order. An entry with a
// non-nil error simulates a transport failure for that call.
type scriptedClient struct {
	mu      sync.Mutex
	replies []reply
	calls   int
}

type reply struct {
	text string
	err  error
}

func (c *scriptedClient) Complete(ctx context.Context, prompt string, opts ...llm.CallOption) (string, error) {
	return c.CompleteWithSystem(ctx, "", prompt, opts...)
}

func (c *scriptedClient) CompleteWithSystem(ctx context.Context, system, prompt string, opts ...llm.CallOption) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls >= len(c.replies) {
		return "", fmt.Errorf("unscripted call %d", c.calls)
	}
	r := c.replies[c.calls]
	c.calls++
	return r.text, r.err
}

const analysisReply = `{"content_type": "technical", "topics": ["go"], "summary": "release notes", "tone": "neutral"}`
const strategyReply = `{"strategy": "linear", "description": "step ordered", "emphasis": "sequence"}`

const selectionReply = `{"components": [
	{"component_type": "headline", "props": {"title": "Go 1.24"}, "zone": "hero"},
	{"component_type": "statCard", "props": {"label": "Allocs", "value": "-30%"}},
	{"component_type": "keyTakeaways", "props": {"points": ["faster", "smaller"]}},
	{"component_type": "codeExample", "props": {"code": "func main() {}", "language": "go"}},
	{"component_type": "quote", "props": {"text": "ship it"}}
]}`

func collect(events <-chan Event) []Event {
	var out []Event
	for ev := range events {
		out = append(out, ev)
	}
	return out
}

func testPipeline(c llm.Client) *Pipeline {
	return New(c, Config{StageTimeout: time.Second}, nil)
}

func TestRunHappyPath(t *testing.T) {
	client := &scriptedClient{replies: []reply{
		{text: analysisReply},
		{text: strategyReply},
		{text: selectionReply},
	}}

	session, events := testPipeline(client).RunSession(context.Background(), []byte("# Go 1.24\n\nNotes."))
	got := collect(events)

	require.NotEmpty(t, got)
	last := got[len(got)-1]
	require.Equal(t, EventDone, last.Type)
	assert.Equal(t, 5, last.Count)
	require.NotNil(t, last.Report)
	assert.True(t, last.Report.Valid)

	comps := session.Components()
	require.Len(t, comps, 5)
	assert.Equal(t, StateComplete, session.State())
	assert.Equal(t, schema.TypeHeadline, comps[0].Type)
	assert.Equal(t, schema.ZoneHero, comps[0].Zone)
	for _, comp := range comps {
		assert.NotEmpty(t, comp.ID)
		require.NotNil(t, comp.Layout)
		assert.NotEmpty(t, comp.Layout.Width)
		assert.True(t, schema.IsValidZone(comp.Zone), "zone %q", comp.Zone)
	}

	var progress []int
	for _, ev := range got {
		if ev.Type == EventProgress {
			progress = append(progress, ev.Progress)
		}
	}
	require.NotEmpty(t, progress)
	assert.Equal(t, 100, progress[len(progress)-1])
	for i := 1; i < len(progress); i++ {
		assert.GreaterOrEqual(t, progress[i], progress[i-1])
	}
}

func TestRunAnalysisFallback(t *testing.T) {
	// Analysis and strategy both return garbage; heuristics keep the run
	// alive and selection still happens.
	client := &scriptedClient{replies: []reply{
		{text: "I cannot help with that."},
		{err: fmt.Errorf("rate limited")},
		{text: selectionReply},
	}}

	session, events := testPipeline(client).RunSession(context.Background(), []byte("# Title\n\nBody."))
	got := collect(events)

	require.NotEmpty(t, got)
	assert.Equal(t, EventDone, got[len(got)-1].Type)
	assert.Equal(t, StateComplete, session.State())
	assert.Equal(t, 3, client.calls)
}

func TestRunSelectionTransportError(t *testing.T) {
	client := &scriptedClient{replies: []reply{
		{text: analysisReply},
		{text: strategyReply},
		{err: &llm.TransportError{Provider: "anthropic", Err: fmt.Errorf("boom")}},
	}}

	session, events := testPipeline(client).RunSession(context.Background(), []byte("# x"))
	got := collect(events)

	require.Len(t, got, 1)
	assert.Equal(t, EventError, got[0].Type)
	assert.Contains(t, got[0].Message, "component selection")
	assert.Equal(t, StateError, session.State())
}

func TestRunFailsClosedOnZeroComponents(t *testing.T) {
	// Every spec is invalid: recognized type but unbuildable props. The run
	// must end in an error event, never an empty done.
	client := &scriptedClient{replies: []reply{
		{text: analysisReply},
		{text: strategyReply},
		{text: `{"components": [
			{"component_type": "miniChart", "props": {}},
			{"component_type": "gauge", "props": {}}
		]}`},
	}}

	session, events := testPipeline(client).RunSession(context.Background(), []byte("# x"))
	got := collect(events)

	require.Len(t, got, 1)
	assert.Equal(t, EventError, got[0].Type)
	assert.Equal(t, StateError, session.State())
	assert.Empty(t, session.Components())
}

func TestRunRecoversTruncatedSelection(t *testing.T) {
	truncated := `{"components": [
		{"component_type": "headline", "props": {"title": "A"}},
		{"component_type": "statCard", "props": {"label": "B", "value": 2}},
		{"component_type": "quote", "props": {"text": "C"}},
		{"component_type": "tldr", "props": {"text": "D"}},
		{"component_type": "gauge", "props": {"lab`

	client := &scriptedClient{replies: []reply{
		{text: analysisReply},
		{text: strategyReply},
		{text: truncated},
	}}

	session, events := testPipeline(client).RunSession(context.Background(), []byte("# x"))
	got := collect(events)

	require.NotEmpty(t, got)
	assert.Equal(t, EventDone, got[len(got)-1].Type)
	assert.Len(t, session.Components(), 4)
}

func TestRunVarietyRetry(t *testing.T) {
	monotone := `{"components": [
		{"component_type": "statCard", "props": {"label": "a", "value": 1}},
		{"component_type": "statCard", "props": {"label": "b", "value": 2}},
		{"component_type": "statCard", "props": {"label": "c", "value": 3}}
	]}`

	client := &scriptedClient{replies: []reply{
		{text: analysisReply},
		{text: strategyReply},
		{text: monotone},
		{text: selectionReply},
	}}

	p := New(client, Config{StageTimeout: time.Second, VarietyRetry: true}, nil)
	session, events := p.RunSession(context.Background(), []byte("# x"))
	got := collect(events)

	require.NotEmpty(t, got)
	assert.Equal(t, EventDone, got[len(got)-1].Type)
	assert.Equal(t, 4, client.calls, "selection must run twice")
	assert.Len(t, session.Components(), 5)
	assert.True(t, session.VarietyReport().Valid)
}

func TestRunCancellation(t *testing.T) {
	client := &scriptedClient{replies: []reply{
		{text: analysisReply},
		{text: strategyReply},
		{text: selectionReply},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Channel must still close; no goroutine may hang on a full buffer.
	p := New(client, Config{StageTimeout: time.Second, EmitBuffer: 1}, nil)
	events := p.Run(ctx, []byte("# x"))

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("event channel never closed after cancellation")
		}
	}
}

func TestRunErrorEventReachesSlowConsumer(t *testing.T) {
	client := &scriptedClient{replies: []reply{
		{text: analysisReply},
		{text: strategyReply},
		{err: &llm.TransportError{Provider: "anthropic", Err: fmt.Errorf("boom")}},
	}}

	// The terminal error event must be delivered, not dropped, no matter
	// how small the buffer or how late the consumer attaches.
	p := New(client, Config{StageTimeout: time.Second, EmitBuffer: 1}, nil)
	events := p.Run(context.Background(), []byte("# x"))

	time.Sleep(50 * time.Millisecond)
	got := collect(events)

	require.Len(t, got, 1)
	assert.Equal(t, EventError, got[0].Type)
}

func TestSessionReset(t *testing.T) {
	client := &scriptedClient{replies: []reply{
		{text: analysisReply},
		{text: strategyReply},
		{text: selectionReply},
	}}

	session, events := testPipeline(client).RunSession(context.Background(), []byte("# x"))
	collect(events)
	require.NotEmpty(t, session.Components())

	session.Reset()
	assert.Empty(t, session.Components())
	assert.Equal(t, StateIdle, session.State())
	assert.False(t, session.VarietyReport().Valid)
}

func TestHeuristicAnalysisClassification(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"tutorial", "# How to deploy\n\nStep 1 is easy.", "tutorial"},
		{"plain_article", "# Thoughts\n\nSome prose.", "article"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := heuristicAnalysis(markdown.Parse([]byte(tt.doc)))
			assert.Equal(t, tt.want, a.ContentType)
		})
	}
}

func TestHeuristicStrategyMapping(t *testing.T) {
	s := heuristicStrategy(ContentAnalysis{ContentType: "comparison"})
	assert.Equal(t, "split", s.Name)
	s = heuristicStrategy(ContentAnalysis{ContentType: "unknown-kind"})
	assert.Equal(t, "magazine", s.Name)
}

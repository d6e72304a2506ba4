package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dashgen/internal/config"
	"dashgen/internal/llm"
	"dashgen/internal/pipeline"
)

// stubClient returns the same canned reply for every call.
type stubClient struct {
	replies map[string]string // keyed by a substring of the system prompt
}

func (c *stubClient) Complete(ctx context.Context, prompt string, opts ...llm.CallOption) (string, error) {
	return c.CompleteWithSystem(ctx, "", prompt, opts...)
}

func (c *stubClient) CompleteWithSystem(ctx context.Context, system, prompt string, opts ...llm.CallOption) (string, error) {
	for key, reply := range c.replies {
		if strings.Contains(system, key) {
			return reply, nil
		}
	}
	return "", nil
}

func testServer(t *testing.T) *Server {
	t.Helper()
	client := &stubClient{replies: map[string]string{
		"analyze": `{"content_type": "article", "summary": "s"}`,
		"layout":  `{"strategy": "magazine", "description": "d"}`,
		"convert": `{"components": [
			{"component_type": "headline", "props": {"title": "T"}},
			{"component_type": "statCard", "props": {"label": "L", "value": 1}},
			{"component_type": "tldr", "props": {"text": "x"}},
			{"component_type": "quote", "props": {"text": "q"}}
		]}`,
	}}

	cfg := config.DefaultConfig()
	pipe := pipeline.New(client, pipeline.Config{StageTimeout: time.Second}, nil)
	return New(cfg, pipe, zap.NewNop())
}

func TestGenerateNDJSON(t *testing.T) {
	srv := httptest.NewServer(testServer(t).routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/generate/ndjson", "text/markdown",
		strings.NewReader("# Hello\n\nBody."))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/x-ndjson", resp.Header.Get("Content-Type"))

	var types []string
	var done pipeline.Event
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		var ev pipeline.Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		types = append(types, string(ev.Type))
		if ev.Type == pipeline.EventDone {
			done = ev
		}
	}

	assert.Contains(t, types, "component")
	require.Equal(t, "done", types[len(types)-1])
	assert.Equal(t, 4, done.Count)
}

func TestGenerateSSE(t *testing.T) {
	srv := httptest.NewServer(testServer(t).routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/generate", "text/markdown",
		strings.NewReader("# Hello\n\nBody."))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var events, datas int
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event: ") {
			events++
		}
		if strings.HasPrefix(line, "data: ") {
			datas++
			var ev pipeline.Event
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev))
		}
	}
	assert.Equal(t, events, datas, "every event line needs a data line")
	assert.Greater(t, events, 4)
}

func TestGenerateJSONEnvelope(t *testing.T) {
	srv := httptest.NewServer(testServer(t).routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/generate/ndjson", "application/json",
		strings.NewReader(`{"markdown": "# Hello"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGenerateRejectsBadRequests(t *testing.T) {
	srv := httptest.NewServer(testServer(t).routes())
	defer srv.Close()

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"empty_body", "text/markdown", ""},
		{"bad_json", "application/json", "{not json"},
		{"missing_field", "application/json", `{"text": "# x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/generate/ndjson", tt.contentType,
				strings.NewReader(tt.body))
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(testServer(t).routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := httptest.NewServer(testServer(t).routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

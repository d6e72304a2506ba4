package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// readSource pulls the markdown payload from the request. Raw text/markdown
// bodies and {"markdown": "..."} JSON envelopes are both accepted.
func (s *Server) readSource(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, s.cfg.Server.MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > s.cfg.Server.MaxBodyBytes {
		return nil, fmt.Errorf("body exceeds %d bytes", s.cfg.Server.MaxBodyBytes)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty body")
	}

	if r.Header.Get("Content-Type") == "application/json" {
		var env struct {
			Markdown string `json:"markdown"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("parse body: %w", err)
		}
		if env.Markdown == "" {
			return nil, fmt.Errorf("missing markdown field")
		}
		return []byte(env.Markdown), nil
	}
	return body, nil
}

// handleGenerateSSE streams the run as server-sent events. Each pipeline
// event becomes one SSE message with its type in the event field.
func (s *Server) handleGenerateSSE(w http.ResponseWriter, r *http.Request) {
	source, err := s.readSource(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for ev := range s.pipe.Run(r.Context(), source) {
		data, merr := json.Marshal(ev)
		if merr != nil {
			s.log.Error("event marshal failed", zap.Error(merr))
			continue
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
		flusher.Flush()
	}
}

// handleGenerateNDJSON streams the run as newline-delimited JSON, one event
// per line.
func (s *Server) handleGenerateNDJSON(w http.ResponseWriter, r *http.Request) {
	source, err := s.readSource(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	flusher, _ := w.(http.Flusher)
	for ev := range s.pipe.Run(r.Context(), source) {
		if err := enc.Encode(ev); err != nil {
			s.log.Error("event encode failed", zap.Error(err))
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

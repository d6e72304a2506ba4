package llm

import "fmt"

// TransportError wraps an outright provider or network failure. It surfaces
// as the session error state with the underlying message kept for diagnostics.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError reports a response with no parseable JSON even after
// recovery. Recoverable by heuristic fallback at the analysis stages; fatal at
// the component-selection stage.
type MalformedResponseError struct {
	Stage  string
	Detail string
}

func (e *MalformedResponseError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("%s: malformed LLM response: %s", e.Stage, e.Detail)
	}
	return fmt.Sprintf("malformed LLM response: %s", e.Detail)
}

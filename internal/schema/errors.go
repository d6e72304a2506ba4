package schema

import "fmt"

// InvalidTypeError reports a component type that is not in the registry.
// Recoverable: callers fall back to a generic callout, never abort a session.
type InvalidTypeError struct {
	Type string
	// Suggestion is the nearest registered type by edit distance, if any.
	Suggestion string
}

func (e *InvalidTypeError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown component type %q (closest registered: %q)", e.Type, e.Suggestion)
	}
	return fmt.Sprintf("unknown component type %q", e.Type)
}

// ValidationError reports generator arguments that violate a declared
// constraint. Recoverable at spec granularity: the one component is dropped.
type ValidationError struct {
	Type   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: invalid %s: %s", e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Reason)
}

// Validationf builds a ValidationError with a formatted reason.
func Validationf(typ, field, format string, args ...any) *ValidationError {
	return &ValidationError{Type: typ, Field: field, Reason: fmt.Sprintf(format, args...)}
}

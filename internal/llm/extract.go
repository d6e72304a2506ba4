package llm

import (
	"encoding/json"
	"strings"
)

// Tolerant JSON extraction from free-text LLM responses. Providers wrap JSON
// in prose and code fences, and long responses get truncated mid-array, so
// extraction is tiered: direct parse, fence stripping, balanced-brace
// candidate scanning, and finally per-object recovery from a truncated
// "components" array.

// StripFences removes a leading/trailing markdown code fence if present.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"```json", "```JSON", "```"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			s = rest
			break
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// FindJSONCandidates scans s for top-level balanced-brace JSON object
// candidates. A byte-level state machine tracks string and escape state so
// braces inside quoted values do not confuse the depth count. Iterating bytes
// is safe for the ASCII delimiters because UTF-8 never embeds ASCII bytes in
// multi-byte sequences.
func FindJSONCandidates(s string) []string {
	var candidates []string
	var depth int
	start := -1
	var inString, escape bool

	for i := 0; i < len(s); i++ {
		b := s[i]

		if escape {
			escape = false
			continue
		}
		if inString {
			if b == '\\' {
				escape = true
			} else if b == '"' {
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					candidates = append(candidates, s[start:i+1])
					start = -1
				}
			}
		}
	}
	return candidates
}

// ExtractObject locates one parseable JSON object in raw: direct parse first,
// then fence-stripped, then the last valid balanced-brace candidate. Later
// candidates win because models restate corrected payloads after prose.
func ExtractObject(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)
	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return json.RawMessage(trimmed), nil
	}

	stripped := StripFences(raw)
	if json.Valid([]byte(stripped)) && strings.HasPrefix(stripped, "{") {
		return json.RawMessage(stripped), nil
	}

	candidates := FindJSONCandidates(raw)
	for i := len(candidates) - 1; i >= 0; i-- {
		if json.Valid([]byte(candidates[i])) {
			return json.RawMessage(candidates[i]), nil
		}
	}
	return nil, &MalformedResponseError{Detail: "no parseable JSON object found"}
}

// RecoverComponentsArray pulls the complete leading objects out of a
// `"components": [...]` array even when the payload was truncated mid-stream.
// Quoted braces and escaped quotes inside object values are tolerated; the
// trailing incomplete object, if any, is discarded.
func RecoverComponentsArray(raw string) ([]json.RawMessage, error) {
	src := StripFences(raw)

	keyIdx := strings.Index(src, `"components"`)
	if keyIdx < 0 {
		return nil, &MalformedResponseError{Detail: `no "components" array found`}
	}
	arrStart := strings.IndexByte(src[keyIdx:], '[')
	if arrStart < 0 {
		return nil, &MalformedResponseError{Detail: `"components" key has no array value`}
	}

	var out []json.RawMessage
	var depth int
	start := -1
	var inString, escape bool

	for i := keyIdx + arrStart + 1; i < len(src); i++ {
		b := src[i]

		if escape {
			escape = false
			continue
		}
		if inString {
			if b == '\\' {
				escape = true
			} else if b == '"' {
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					obj := src[start : i+1]
					if json.Valid([]byte(obj)) {
						out = append(out, json.RawMessage(obj))
					}
					start = -1
				}
			}
		case ']':
			if depth == 0 {
				// Array closed cleanly.
				return out, nil
			}
		}
	}

	// Truncated input: whatever complete objects we saw are the recovery.
	if len(out) == 0 {
		return nil, &MalformedResponseError{Detail: `"components" array contains no complete objects`}
	}
	return out, nil
}

package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json_fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare_fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"no_fence", `{"a": 1}`, `{"a": 1}`},
		{"whitespace", "  \n{\"a\": 1}\n  ", `{"a": 1}`},
		{"unterminated_fence", "```json\n{\"a\": 1}", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindJSONCandidates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple",
			input: `prefix {"key": "value"} suffix`,
			want:  []string{`{"key": "value"}`},
		},
		{
			name:  "nested",
			input: `start {"a": {"b": "c"}} end`,
			want:  []string{`{"a": {"b": "c"}}`},
		},
		{
			name:  "multiple",
			input: `obj1 {"id": 1} obj2 {"id": 2}`,
			want:  []string{`{"id": 1}`, `{"id": 2}`},
		},
		{
			name:  "string_with_brace",
			input: `{"key": "value with } inside"}`,
			want:  []string{`{"key": "value with } inside"}`},
		},
		{
			name:  "escaped_quote",
			input: `{"key": "value with \" inside"}`,
			want:  []string{`{"key": "value with \" inside"}`},
		},
		{
			name:  "incomplete",
			input: `prefix { incomplete`,
			want:  nil,
		},
		{
			name:  "stray_close_brace",
			input: `} { "valid": 1 } {`,
			want:  []string{`{ "valid": 1 }`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindJSONCandidates(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("candidates mismatch:\n%s", diff)
			}
		})
	}
}

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"direct", `{"a": 1}`, `{"a": 1}`, false},
		{"fenced", "Here you go:\n```json\n{\"a\": 1}\n```", `{"a": 1}`, false},
		{"prose_wrapped", `Sure! The result is {"a": 1} as requested.`, `{"a": 1}`, false},
		{"prefers_later_candidate", `{"broken": } then {"ok": true}`, `{"ok": true}`, false},
		{"nothing", `no json here at all`, "", true},
		{"array_only", `[1, 2, 3]`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractObject(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error, got %s", got)
				}
				var mre *MalformedResponseError
				if !errors.As(err, &mre) {
					t.Errorf("want MalformedResponseError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecoverComponentsArrayTruncated(t *testing.T) {
	// Response cut off mid-third-object: the two complete objects survive.
	raw := `{"components": [
		{"component_type": "statCard", "props": {"label": "a", "value": 1}},
		{"component_type": "headline", "props": {"title": "b"}},
		{"component_type": "gauge", "props": {"lab`

	objs, err := RecoverComponentsArray(raw)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if len(objs) != 2 {
		t.Fatalf("recovered %d objects, want 2", len(objs))
	}
	if !strings.Contains(string(objs[0]), "statCard") {
		t.Errorf("first object = %s", objs[0])
	}
	if !strings.Contains(string(objs[1]), "headline") {
		t.Errorf("second object = %s", objs[1])
	}
}

func TestRecoverComponentsArrayClean(t *testing.T) {
	raw := `{"components": [{"a": 1}, {"b": 2}], "meta": {"c": 3}}`

	objs, err := RecoverComponentsArray(raw)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	// The meta object sits outside the array and must not leak in.
	if len(objs) != 2 {
		t.Fatalf("recovered %d objects, want 2", len(objs))
	}
}

func TestRecoverComponentsArrayFailures(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no_key", `{"items": [{"a": 1}]}`},
		{"no_array", `{"components": "oops"}`},
		{"no_complete_objects", `{"components": [{"cut": "of`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RecoverComponentsArray(tt.in); err == nil {
				t.Error("want error")
			}
		})
	}
}

func BenchmarkFindJSONCandidates(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString(`noise {"component_type": "statCard", "props": {"label": "x", "value": "1,234%"}} more noise `)
	}
	input := sb.String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindJSONCandidates(input)
	}
}

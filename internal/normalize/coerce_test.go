package normalize

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 4.2, 4.2},
		{"int", 7, 7},
		{"json_number", json.Number("12.5"), 12.5},
		{"plain_string", "42", 42},
		{"thousands_separators", "1,234,567", 1234567},
		{"percent_suffix", "87%", 87},
		{"leading_plus", "+5.5", 5.5},
		{"dollar_prefix", "$1,200", 1200},
		{"decorated_combo", "1,234%", 1234},
		{"negative_percent", "-30%", -30},
		{"garbage", "a lot", -1},
		{"nil", nil, -1},
		{"empty_string", "", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.in, -1); got != tt.want {
				t.Errorf("Number(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNumberPtrAbsenceStaysAbsent(t *testing.T) {
	if NumberPtr("n/a") != nil {
		t.Error("unparseable value must yield nil, not zero")
	}
	if p := NumberPtr("0"); p == nil || *p != 0 {
		t.Error("literal zero must survive as a value")
	}
}

func TestInt(t *testing.T) {
	if got := Int("3.9", 0); got != 3 {
		t.Errorf("Int truncates, got %d", got)
	}
	if got := Int([]any{}, 9); got != 9 {
		t.Errorf("default not used, got %d", got)
	}
}

func TestText(t *testing.T) {
	if got := Text("  padded  "); got != "padded" {
		t.Errorf("got %q", got)
	}
	if got := Text(3.0); got != "3" {
		t.Errorf("got %q", got)
	}
	if got := Text(map[string]any{}); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestTextList(t *testing.T) {
	got := TextList([]any{"a", 2.0, "", "c"})
	if diff := cmp.Diff([]string{"a", "2", "c"}, got); diff != "" {
		t.Errorf("mismatch:\n%s", diff)
	}
	if got := TextList("single"); len(got) != 1 || got[0] != "single" {
		t.Errorf("singleton = %v", got)
	}
	if TextList(42.0) != nil {
		t.Error("numbers are not lists")
	}
}

func TestBool(t *testing.T) {
	for _, truthy := range []any{true, "yes", "TRUE", "done", 1.0} {
		if !Bool(truthy) {
			t.Errorf("Bool(%v) should be true", truthy)
		}
	}
	for _, falsy := range []any{false, "no", "", 0.0, nil} {
		if Bool(falsy) {
			t.Errorf("Bool(%v) should be false", falsy)
		}
	}
}

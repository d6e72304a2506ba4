package variety

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		types     []string
		valid     bool
		unique    int
		maxRun    int
		violation string
	}{
		{
			name:   "diverse_sequence",
			types:  []string{"a", "b", "c", "d", "a"},
			valid:  true,
			unique: 4,
			maxRun: 1,
		},
		{
			name:   "run_of_two_allowed",
			types:  []string{"a", "a", "b", "c", "d"},
			valid:  true,
			unique: 4,
			maxRun: 2,
		},
		{
			name:      "too_few_types",
			types:     []string{"a", "b", "a", "b", "c"},
			valid:     false,
			unique:    3,
			maxRun:    1,
			violation: "too few types",
		},
		{
			name:      "run_of_three",
			types:     []string{"a", "b", "c", "d", "d", "d"},
			valid:     false,
			unique:    4,
			maxRun:    3,
			violation: "consecutive run of 3",
		},
		{
			name:      "empty",
			types:     nil,
			valid:     false,
			unique:    0,
			violation: "empty component sequence",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.types)
			if got.Valid != tt.valid {
				t.Errorf("valid = %v, violations: %v", got.Valid, got.Violations)
			}
			if got.UniqueTypes != tt.unique {
				t.Errorf("unique = %d, want %d", got.UniqueTypes, tt.unique)
			}
			if len(tt.types) > 0 && got.MaxConsecutiveSame != tt.maxRun {
				t.Errorf("maxRun = %d, want %d", got.MaxConsecutiveSame, tt.maxRun)
			}
			if tt.violation != "" {
				found := false
				for _, v := range got.Violations {
					if strings.Contains(v, tt.violation) {
						found = true
					}
				}
				if !found {
					t.Errorf("missing violation %q in %v", tt.violation, got.Violations)
				}
			}
		})
	}
}

func TestValidateBothViolations(t *testing.T) {
	got := Validate([]string{"a", "a", "a", "b"})
	if got.Valid {
		t.Fatal("should be invalid")
	}
	if len(got.Violations) != 2 {
		t.Errorf("want both violations, got %v", got.Violations)
	}
}

func TestValidateDistribution(t *testing.T) {
	got := Validate([]string{"a", "b", "a", "c", "d"})
	if got.Distribution["a"] != 2 || got.Distribution["d"] != 1 {
		t.Errorf("distribution = %v", got.Distribution)
	}
}

func TestValidateNeverMutatesInput(t *testing.T) {
	in := []string{"b", "a", "c"}
	Validate(in)
	if in[0] != "b" || in[1] != "a" || in[2] != "c" {
		t.Errorf("input reordered: %v", in)
	}
}

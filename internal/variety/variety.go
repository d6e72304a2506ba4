// Package variety checks a finished component sequence for type diversity.
// The check is advisory: it never mutates or reorders the sequence, it only
// feeds prompt-retry and logging decisions upstream.
package variety

import "fmt"

// Thresholds for a valid sequence.
const (
	MinUniqueTypes    = 4
	MaxConsecutiveRun = 2
)

// Report is the outcome of one validation pass.
type Report struct {
	Valid              bool           `json:"valid"`
	UniqueTypes        int            `json:"unique_types_count"`
	MaxConsecutiveSame int            `json:"max_consecutive_same_type"`
	Distribution       map[string]int `json:"distribution"`
	Violations         []string       `json:"violations"`
}

// Validate inspects the ordered type sequence of produced components.
func Validate(types []string) Report {
	report := Report{Distribution: map[string]int{}}

	if len(types) == 0 {
		report.Violations = append(report.Violations, "empty component sequence")
		return report
	}

	maxRun, run := 1, 1
	runType := types[0]
	report.Distribution[types[0]]++
	for i := 1; i < len(types); i++ {
		report.Distribution[types[i]]++
		if types[i] == types[i-1] {
			run++
			if run > maxRun {
				maxRun, runType = run, types[i]
			}
		} else {
			run = 1
		}
	}

	report.UniqueTypes = len(report.Distribution)
	report.MaxConsecutiveSame = maxRun

	if report.UniqueTypes < MinUniqueTypes {
		report.Violations = append(report.Violations,
			fmt.Sprintf("too few types: %d unique, need at least %d", report.UniqueTypes, MinUniqueTypes))
	}
	if maxRun > MaxConsecutiveRun {
		report.Violations = append(report.Violations,
			fmt.Sprintf("consecutive run of %d %s components, max allowed is %d", maxRun, runType, MaxConsecutiveRun))
	}

	report.Valid = len(report.Violations) == 0
	return report
}

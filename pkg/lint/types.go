// Package lint defines the diagnostic data model shared by lint engines and
// the triage pipeline.
package lint

// Severity is the ordinal severity of a diagnostic. Values follow ESLint's
// numbering so engine output decodes without translation.
type Severity int

const (
	SeverityOff     Severity = 0
	SeverityWarning Severity = 1
	SeverityError   Severity = 2
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "off"
	}
}

// Diagnostic is one reported issue for one file.
type Diagnostic struct {
	RuleID    *string  // nil when the engine could not attribute the issue to a rule
	Severity  Severity
	Message   string
	Line      int // 1-based
	Column    int // 1-based
	EndLine   int // 0 when absent
	EndColumn int // 0 when absent
	Fixable   bool
}

// Rule returns the rule identifier, or "" for unattributed diagnostics.
func (d Diagnostic) Rule() string {
	if d.RuleID == nil {
		return ""
	}
	return *d.RuleID
}

// FileReport is the engine's result for a single file.
type FileReport struct {
	Path                string
	Diagnostics         []Diagnostic
	ErrorCount          int
	WarningCount        int
	FixableErrorCount   int
	FixableWarningCount int

	// Output holds proposed file content. Only set by a fix-mode pass, and
	// only when the engine changed the file.
	Output *string
}

// HasIssues reports whether the engine counted any error or warning.
func (r FileReport) HasIssues() bool {
	return r.ErrorCount > 0 || r.WarningCount > 0
}

// RuleCounts tallies diagnostics per rule identifier. Unattributed
// diagnostics are not counted.
func (r FileReport) RuleCounts() map[string]int {
	counts := make(map[string]int, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		if d.RuleID == nil {
			continue
		}
		counts[*d.RuleID]++
	}
	return counts
}

// StringPtr returns a pointer to s. Handy for building rule IDs in literals.
func StringPtr(s string) *string {
	return &s
}

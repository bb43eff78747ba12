package mapper

import (
	"github.com/dkoosis/lintrisk/internal/fixer"
	"github.com/dkoosis/lintrisk/internal/risk"
	"github.com/dkoosis/lintrisk/internal/triage"
)

// IssueJSON is one issue in a JSON payload. Rule is null for unattributed
// diagnostics.
type IssueJSON struct {
	File    string  `json:"file"`
	Rule    *string `json:"rule"`
	Line    int     `json:"line"`
	Message string  `json:"message"`
	Risk    string  `json:"risk,omitempty"`
}

// ByRiskJSON lists issues per tier, HIGH first.
type ByRiskJSON struct {
	High   []IssueJSON `json:"HIGH"`
	Medium []IssueJSON `json:"MEDIUM"`
	Low    []IssueJSON `json:"LOW"`
}

// Payload is the JSON document printed by analyze and report --json.
// Success is only set by analyze.
type Payload struct {
	Success *bool           `json:"success,omitempty"`
	Error   string          `json:"error,omitempty"`
	Summary *triage.Summary `json:"summary,omitempty"`
	ByRisk  *ByRiskJSON     `json:"byRisk,omitempty"`
}

// AnalyzePayload keeps engine paths and tags each issue with its tier.
func AnalyzePayload(a *triage.Analysis) Payload {
	ok := true
	p := newPayload(a, func(s string) string { return s }, true)
	p.Success = &ok
	return p
}

// AnalyzeFailure is the payload printed when analysis fails.
func AnalyzeFailure(err error) Payload {
	ok := false
	return Payload{Success: &ok, Error: err.Error()}
}

// ReportPayload shows paths relative to opts.Base.
func ReportPayload(a *triage.Analysis, opts Options) Payload {
	return newPayload(a, opts.path, false)
}

func newPayload(a *triage.Analysis, path func(string) string, withRisk bool) Payload {
	conv := func(tier risk.Tier) []IssueJSON {
		out := make([]IssueJSON, 0, len(a.Issues(tier)))
		for _, is := range a.Issues(tier) {
			j := IssueJSON{File: path(is.Path), Rule: is.RuleID, Line: is.Line, Message: is.Message}
			if withRisk {
				j.Risk = is.Tier.String()
			}
			out = append(out, j)
		}
		return out
	}
	sum := a.Summary
	return Payload{
		Summary: &sum,
		ByRisk: &ByRiskJSON{
			High:   conv(risk.High),
			Medium: conv(risk.Medium),
			Low:    conv(risk.Low),
		},
	}
}

// FileFixJSON is one file the fix pass would write, with the rules that
// changed in it.
type FileFixJSON struct {
	File  string   `json:"file"`
	Rules []string `json:"rules"`
}

// FixResultJSON is the document printed by fix --json.
type FixResultJSON struct {
	Ceiling      risk.Tier     `json:"ceiling"`
	DryRun       bool          `json:"dryRun"`
	NothingToFix bool          `json:"nothingToFix"`
	Eligible     int           `json:"eligible"`
	Fixes        []FileFixJSON `json:"fixes"`
	Written      []string      `json:"written"`
}

// FixPayload summarizes a fix run with paths relative to opts.Base.
func FixPayload(res *fixer.Result, opts Options) FixResultJSON {
	out := FixResultJSON{
		Ceiling:      res.Ceiling,
		DryRun:       res.DryRun,
		NothingToFix: res.NothingToFix,
		Eligible:     len(res.Eligible),
		Fixes:        make([]FileFixJSON, 0, len(res.Fixes)),
		Written:      make([]string, 0, len(res.Written)),
	}
	for _, fix := range res.Fixes {
		out.Fixes = append(out.Fixes, FileFixJSON{File: opts.path(fix.Path), Rules: fix.Rules})
	}
	for _, p := range res.Written {
		out.Written = append(out.Written, opts.path(p))
	}
	return out
}

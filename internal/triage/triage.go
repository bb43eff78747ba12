// Package triage classifies lint diagnostics by risk, groups them, and
// decides which engine fixes may be written under a risk ceiling.
package triage

import (
	"github.com/dkoosis/lintrisk/internal/risk"
	"github.com/dkoosis/lintrisk/pkg/lint"
)

// Issue is a diagnostic bound to its file and resolved tier.
type Issue struct {
	lint.Diagnostic
	Path string
	Tier risk.Tier
}

// Summary holds aggregate counts for an analysis.
type Summary struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Files  int `json:"files"`
}

// FileGroup is the ordered list of issues found in one file.
type FileGroup struct {
	Path   string
	Issues []Issue
}

// Analysis is the classified view of one lint pass. Issues keep the order
// the engine reported them in.
type Analysis struct {
	Summary Summary
	ByRisk  map[risk.Tier][]Issue
	ByFile  []FileGroup
}

// Issues returns the issues classified as tier.
func (a *Analysis) Issues(tier risk.Tier) []Issue {
	return a.ByRisk[tier]
}

// All returns every issue, highest tier first.
func (a *Analysis) All() []Issue {
	all := make([]Issue, 0, a.Summary.Total)
	for i := len(risk.Tiers) - 1; i >= 0; i-- {
		all = append(all, a.ByRisk[risk.Tiers[i]]...)
	}
	return all
}

// Aggregate classifies every diagnostic in reports.
func Aggregate(c *risk.Classifier, reports []lint.FileReport) *Analysis {
	a := &Analysis{
		ByRisk: map[risk.Tier][]Issue{
			risk.Low:    {},
			risk.Medium: {},
			risk.High:   {},
		},
	}

	fileIndex := make(map[string]int)
	for _, report := range reports {
		for _, d := range report.Diagnostics {
			issue := Issue{
				Diagnostic: d,
				Path:       report.Path,
				Tier:       c.Classify(d.RuleID),
			}
			a.ByRisk[issue.Tier] = append(a.ByRisk[issue.Tier], issue)

			i, ok := fileIndex[report.Path]
			if !ok {
				i = len(a.ByFile)
				fileIndex[report.Path] = i
				a.ByFile = append(a.ByFile, FileGroup{Path: report.Path})
			}
			a.ByFile[i].Issues = append(a.ByFile[i].Issues, issue)
		}
	}

	a.Summary = Summary{
		High:   len(a.ByRisk[risk.High]),
		Medium: len(a.ByRisk[risk.Medium]),
		Low:    len(a.ByRisk[risk.Low]),
		Files:  len(a.ByFile),
	}
	a.Summary.Total = a.Summary.High + a.Summary.Medium + a.Summary.Low
	return a
}

// FilesWithIssues drops reports with no errors and no warnings.
func FilesWithIssues(reports []lint.FileReport) []lint.FileReport {
	out := make([]lint.FileReport, 0, len(reports))
	for _, r := range reports {
		if r.HasIssues() {
			out = append(out, r)
		}
	}
	return out
}

// GroupByFile groups issues by path, keeping first-seen order.
func GroupByFile(issues []Issue) []FileGroup {
	index := make(map[string]int)
	var groups []FileGroup
	for _, issue := range issues {
		i, ok := index[issue.Path]
		if !ok {
			i = len(groups)
			index[issue.Path] = i
			groups = append(groups, FileGroup{Path: issue.Path})
		}
		groups[i].Issues = append(groups[i].Issues, issue)
	}
	return groups
}

package triage

import (
	"sort"

	"github.com/dkoosis/lintrisk/internal/risk"
	"github.com/dkoosis/lintrisk/pkg/lint"
)

// FileFix is a decision to persist the engine's fixed content for a file.
type FileFix struct {
	Path   string
	Output string
	// Rules are the eligible rule identifiers the fix pass resolved.
	Rules []string
}

// SelectForFix returns the issues at or below ceiling, Low first, then
// Medium, then High. Raising the ceiling only ever adds issues.
func SelectForFix(a *Analysis, ceiling risk.Tier) []Issue {
	var selected []Issue
	for _, tier := range risk.Tiers {
		if tier.AtMost(ceiling) {
			selected = append(selected, a.ByRisk[tier]...)
		}
	}
	return selected
}

// DecideWrites picks the fix-mode reports whose content may be written.
//
// A file qualifies when the fix pass produced output for it and at least
// one of its eligible issues names a rule the fix pass resolved. A rule
// counts as resolved when fewer of its diagnostics remain after the fix
// pass than the read-only pass reported. Matching is by (file, rule) only;
// positions shift between passes.
func DecideWrites(a *Analysis, eligible []Issue, fixReports []lint.FileReport) []FileFix {
	eligibleRules := make(map[string]map[string]struct{})
	for _, issue := range eligible {
		if issue.RuleID == nil {
			continue
		}
		rules, ok := eligibleRules[issue.Path]
		if !ok {
			rules = make(map[string]struct{})
			eligibleRules[issue.Path] = rules
		}
		rules[*issue.RuleID] = struct{}{}
	}

	before := make(map[string]map[string]int, len(a.ByFile))
	for _, g := range a.ByFile {
		counts := make(map[string]int)
		for _, issue := range g.Issues {
			if issue.RuleID != nil {
				counts[*issue.RuleID]++
			}
		}
		before[g.Path] = counts
	}

	var fixes []FileFix
	for _, fr := range fixReports {
		if fr.Output == nil {
			continue
		}
		rules := eligibleRules[fr.Path]
		if len(rules) == 0 {
			continue
		}
		after := fr.RuleCounts()
		var resolved []string
		for rule := range rules {
			if before[fr.Path][rule] > after[rule] {
				resolved = append(resolved, rule)
			}
		}
		if len(resolved) == 0 {
			continue
		}
		sort.Strings(resolved)
		fixes = append(fixes, FileFix{
			Path:   fr.Path,
			Output: *fr.Output,
			Rules:  resolved,
		})
	}
	return fixes
}

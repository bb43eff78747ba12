// Package mapper converts triage results to visualization patterns and
// machine-readable payloads.
package mapper

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dkoosis/lintrisk/internal/risk"
	"github.com/dkoosis/lintrisk/internal/triage"
	"github.com/dkoosis/lintrisk/pkg/pattern"
)

// Options control how an analysis is presented.
type Options struct {
	Target   string
	Detailed bool   // list every MEDIUM issue instead of per-file counts
	Base     string // paths are shown relative to Base
	Program  string // command name used in recommendations
}

func (o Options) path(p string) string { return RelPath(o.Base, p) }

func (o Options) program() string {
	if o.Program == "" {
		return "lintrisk"
	}
	return o.Program
}

// TierKind maps a tier to the pattern kind used to color it.
func TierKind(t risk.Tier) string {
	switch t {
	case risk.High:
		return pattern.KindError
	case risk.Medium:
		return pattern.KindWarning
	default:
		return pattern.KindSuccess
	}
}

var tierNotes = map[risk.Tier]string{
	risk.High:   "Critical, may break functionality",
	risk.Medium: "Type safety improvements",
	risk.Low:    "Safe cleanup (unused vars, formatting)",
}

// FromAnalysis converts an analysis into report patterns: a summary, the
// HIGH issues in full, MEDIUM issues in full or as per-file counts, LOW
// per-file counts, and recommendations.
func FromAnalysis(a *triage.Analysis, opts Options) []pattern.Pattern {
	if a.Summary.Total == 0 {
		return []pattern.Pattern{&pattern.Summary{
			Label: "No lint issues found",
			Kind:  pattern.SummaryKindClean,
			Metrics: []pattern.SummaryItem{
				{Label: "target", Value: opts.Target, Kind: pattern.KindSuccess},
			},
		}}
	}

	patterns := []pattern.Pattern{reportSummary(a, opts)}

	if n := a.Summary.High; n > 0 {
		patterns = append(patterns, issueTable(a, risk.High, opts,
			fmt.Sprintf("HIGH RISK ISSUES (%d) - requires careful review", n), "critical issues"))
	}
	if n := a.Summary.Medium; n > 0 {
		label := fmt.Sprintf("MEDIUM RISK ISSUES (%d)", n)
		if opts.Detailed {
			patterns = append(patterns, issueTable(a, risk.Medium, opts, label, "issues"))
		} else {
			lb := fileCounts(a, risk.Medium, opts, label)
			lb.Hint = "Use --detailed to see all issue details"
			patterns = append(patterns, lb)
		}
	}
	if n := a.Summary.Low; n > 0 {
		patterns = append(patterns, fileCounts(a, risk.Low, opts, fmt.Sprintf("LOW RISK ISSUES (%d)", n)))
	}

	return append(patterns, recommendations(a.Summary, opts))
}

func reportSummary(a *triage.Analysis, opts Options) *pattern.Summary {
	metrics := []pattern.SummaryItem{
		{Label: "target", Value: opts.Target, Kind: pattern.KindInfo},
		{Label: "total issues", Value: fmt.Sprint(a.Summary.Total), Kind: pattern.KindInfo},
		{Label: "affected files", Value: fmt.Sprint(a.Summary.Files), Kind: pattern.KindInfo},
		{Label: "estimated time", Value: a.EstimateFixTime(), Kind: pattern.KindInfo},
	}
	for i := len(risk.Tiers) - 1; i >= 0; i-- {
		tier := risk.Tiers[i]
		n := len(a.Issues(tier))
		if n == 0 {
			continue
		}
		metrics = append(metrics, pattern.SummaryItem{
			Label: strings.ToLower(tier.String()) + " risk",
			Value: fmt.Sprintf("%d issues", n),
			Note:  tierNotes[tier],
			Kind:  TierKind(tier),
		})
	}
	return &pattern.Summary{Label: "Lint risk report", Kind: pattern.SummaryKindReport, Metrics: metrics}
}

func issueTable(a *triage.Analysis, tier risk.Tier, opts Options, label, noun string) *pattern.IssueTable {
	t := &pattern.IssueTable{Label: label, Kind: TierKind(tier), Tier: tier.String()}
	for _, g := range triage.GroupByFile(a.Issues(tier)) {
		f := pattern.IssueFile{
			Path: opts.path(g.Path),
			Note: fmt.Sprintf("%d %s", len(g.Issues), noun),
		}
		for _, is := range g.Issues {
			f.Issues = append(f.Issues, pattern.IssueItem{
				Line:    is.Line,
				Column:  is.Column,
				Rule:    RuleLabel(is.RuleID),
				Message: is.Message,
			})
		}
		t.Files = append(t.Files, f)
	}
	return t
}

// fileCounts ranks files by issue count, most first. Ties keep report order.
func fileCounts(a *triage.Analysis, tier risk.Tier, opts Options, label string) *pattern.Leaderboard {
	groups := triage.GroupByFile(a.Issues(tier))
	sort.SliceStable(groups, func(i, j int) bool { return len(groups[i].Issues) > len(groups[j].Issues) })

	lb := &pattern.Leaderboard{
		Label:      label,
		Kind:       TierKind(tier),
		MetricName: "issues",
		TotalCount: len(groups),
	}
	for i, g := range groups {
		lb.Items = append(lb.Items, pattern.LeaderboardItem{
			Name:   ShortenPath(opts.path(g.Path), DefaultPathWidth),
			Metric: fmt.Sprintf("%d issues", len(g.Issues)),
			Value:  float64(len(g.Issues)),
			Rank:   i + 1,
		})
	}
	return lb
}

func recommendations(s triage.Summary, opts Options) *pattern.Advice {
	adv := &pattern.Advice{Label: "RECOMMENDATIONS"}
	prog := opts.program()
	if s.Low > 0 {
		adv.Items = append(adv.Items, pattern.AdviceItem{
			Kind:     pattern.KindSuccess,
			Text:     fmt.Sprintf("Start with LOW RISK fixes (%d issues):", s.Low),
			Commands: []string{fmt.Sprintf("%s fix --risk=low %s", prog, opts.Target)},
		})
	}
	if s.Medium > 0 {
		adv.Items = append(adv.Items, pattern.AdviceItem{
			Kind:     pattern.KindWarning,
			Text:     fmt.Sprintf("Then address MEDIUM RISK (%d issues):", s.Medium),
			Commands: []string{fmt.Sprintf("%s fix --risk=medium --dry-run %s", prog, opts.Target)},
			Notes:    []string{"Review changes, then run without --dry-run"},
		})
	}
	if s.High > 0 {
		adv.Items = append(adv.Items, pattern.AdviceItem{
			Kind: pattern.KindError,
			Text: fmt.Sprintf("HIGH RISK issues (%d) require manual review:", s.High),
			Notes: []string{
				"These may affect component behavior or cause infinite loops.",
				"Review each issue carefully before fixing.",
			},
		})
	}
	return adv
}

// RuleLabel names a rule for display; unattributed diagnostics have none.
func RuleLabel(id *string) string {
	if id == nil || *id == "" {
		return "(no rule)"
	}
	return *id
}

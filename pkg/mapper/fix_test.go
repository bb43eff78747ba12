package mapper

import (
	"strings"
	"testing"

	"github.com/dkoosis/lintrisk/internal/fixer"
	"github.com/dkoosis/lintrisk/internal/risk"
	"github.com/dkoosis/lintrisk/internal/triage"
	"github.com/dkoosis/lintrisk/pkg/pattern"
)

func TestFromFix_NothingToFix(t *testing.T) {
	patterns := FromFix(&fixer.Result{NothingToFix: true, Ceiling: risk.Medium}, Options{})
	sum := patterns[0].(*pattern.Summary)
	if !strings.Contains(sum.Label, "No MEDIUM risk issues found") {
		t.Errorf("unexpected label %q", sum.Label)
	}
}

func TestFromFix_DryRun(t *testing.T) {
	res := &fixer.Result{
		Ceiling:  risk.Low,
		DryRun:   true,
		Eligible: make([]triage.Issue, 4),
		Affected: make([]triage.FileGroup, 2),
		Fixes:    []triage.FileFix{{Path: "/repo/src/a.ts", Rules: []string{"quotes", "semi"}}},
	}
	patterns := FromFix(res, Options{Base: "/repo"})

	sum := patterns[0].(*pattern.Summary)
	if sum.Label != "DRY RUN - would fix 1 files" {
		t.Errorf("unexpected label %q", sum.Label)
	}
	files := patterns[1].(*pattern.Leaderboard)
	if files.Items[0].Name != "src/a.ts" || files.Items[0].Metric != "quotes, semi" {
		t.Errorf("unexpected file item %+v", files.Items[0])
	}
}

func TestFromFix_Written(t *testing.T) {
	res := &fixer.Result{
		Ceiling:  risk.High,
		Eligible: make([]triage.Issue, 3),
		Fixes: []triage.FileFix{
			{Path: "a.ts", Rules: []string{"semi"}},
			{Path: "b.ts", Rules: []string{"indent"}},
		},
		Written: []string{"a.ts"},
	}
	patterns := FromFix(res, Options{})

	sum := patterns[0].(*pattern.Summary)
	if sum.Label != "Fixed 1 files" {
		t.Errorf("unexpected label %q", sum.Label)
	}
	files := patterns[1].(*pattern.Leaderboard)
	if len(files.Items) != 1 || files.Items[0].Name != "a.ts" {
		t.Errorf("expected only written files, got %+v", files.Items)
	}
}

func TestFromFix_NoEngineFixes(t *testing.T) {
	res := &fixer.Result{Ceiling: risk.Low, Eligible: make([]triage.Issue, 1)}
	patterns := FromFix(res, Options{})
	if len(patterns) != 1 || patterns[0].(*pattern.Summary).Kind != pattern.SummaryKindFix {
		t.Errorf("unexpected patterns %+v", patterns)
	}
}

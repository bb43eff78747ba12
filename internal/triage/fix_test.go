package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/lintrisk/internal/risk"
	"github.com/dkoosis/lintrisk/pkg/lint"
)

func consoleAndHooks() *Analysis {
	return Aggregate(classifier(), []lint.FileReport{
		report("src/App.tsx", diag("no-console", 3), diag("react-hooks/rules-of-hooks", 9)),
	})
}

func TestSelectForFix_MediumCeilingExcludesHigh(t *testing.T) {
	selected := SelectForFix(consoleAndHooks(), risk.Medium)

	require.Len(t, selected, 1)
	assert.Equal(t, "no-console", selected[0].Rule())
}

func TestSelectForFix_Ceilings(t *testing.T) {
	a := Aggregate(classifier(), []lint.FileReport{
		report("a.ts", diag("semi", 1), diag("react/prop-types", 2), diag("react/no-children-prop", 3)),
	})

	assert.Len(t, SelectForFix(a, risk.Low), 1)
	assert.Len(t, SelectForFix(a, risk.Medium), 2)
	assert.Len(t, SelectForFix(a, risk.High), 3)
}

func TestSelectForFix_Monotonic(t *testing.T) {
	a := Aggregate(classifier(), []lint.FileReport{
		report("a.ts", diag("semi", 1), diag("", 2), diag("react/no-children-prop", 3)),
		report("b.ts", diag("quotes", 4), diag("unknown/rule", 5)),
	})

	key := func(i Issue) string { return i.Path + "|" + i.Rule() + "|" + i.Message }
	contains := func(sup []Issue, sub []Issue) bool {
		set := make(map[string]int)
		for _, i := range sup {
			set[key(i)]++
		}
		for _, i := range sub {
			if set[key(i)] == 0 {
				return false
			}
			set[key(i)]--
		}
		return true
	}

	low, medium, high := SelectForFix(a, risk.Low), SelectForFix(a, risk.Medium), SelectForFix(a, risk.High)
	assert.True(t, contains(medium, low))
	assert.True(t, contains(high, medium))
}

func TestSelectForFix_EmptyWhenNothingEligible(t *testing.T) {
	a := Aggregate(classifier(), []lint.FileReport{
		report("a.ts", diag("react/no-children-prop", 3)),
	})
	assert.Empty(t, SelectForFix(a, risk.Low))
}

func withOutput(r lint.FileReport, out string) lint.FileReport {
	r.Output = &out
	return r
}

func TestDecideWrites_EligibleRuleResolved(t *testing.T) {
	a := consoleAndHooks()
	eligible := SelectForFix(a, risk.Low)
	fixReports := []lint.FileReport{
		withOutput(report("src/App.tsx", diag("react-hooks/rules-of-hooks", 8)), "fixed"),
	}

	fixes := DecideWrites(a, eligible, fixReports)
	require.Len(t, fixes, 1)
	assert.Equal(t, "src/App.tsx", fixes[0].Path)
	assert.Equal(t, "fixed", fixes[0].Output)
	assert.Equal(t, []string{"no-console"}, fixes[0].Rules)
}

func TestDecideWrites_HighOnlyFixExcludedUnderLowCeiling(t *testing.T) {
	a := Aggregate(classifier(), []lint.FileReport{
		report("a.tsx", diag("semi", 1), diag("react/no-unescaped-entities", 2)),
	})
	eligible := SelectForFix(a, risk.Low)
	// The fix pass resolved the HIGH rule but left the LOW one in place.
	fixReports := []lint.FileReport{
		withOutput(report("a.tsx", diag("semi", 1)), "changed"),
	}

	assert.Empty(t, DecideWrites(a, eligible, fixReports))
	assert.Len(t, DecideWrites(a, SelectForFix(a, risk.High), fixReports), 1)
}

func TestDecideWrites_NoOutputNoWrite(t *testing.T) {
	a := consoleAndHooks()
	eligible := SelectForFix(a, risk.High)
	fixReports := []lint.FileReport{report("src/App.tsx")}

	assert.Empty(t, DecideWrites(a, eligible, fixReports))
}

func TestDecideWrites_FileWithoutEligibleIssues(t *testing.T) {
	a := Aggregate(classifier(), []lint.FileReport{
		report("a.ts", diag("semi", 1)),
		report("b.ts", diag("react/no-children-prop", 1)),
	})
	eligible := SelectForFix(a, risk.Low)
	fixReports := []lint.FileReport{
		withOutput(report("a.ts"), "a fixed"),
		withOutput(report("b.ts"), "b fixed"),
	}

	fixes := DecideWrites(a, eligible, fixReports)
	require.Len(t, fixes, 1)
	assert.Equal(t, "a.ts", fixes[0].Path)
}

func TestDecideWrites_IgnoresPositions(t *testing.T) {
	a := Aggregate(classifier(), []lint.FileReport{
		report("a.ts", diag("semi", 10), diag("semi", 20)),
	})
	// One semi fixed, the other remains at a shifted line.
	fixReports := []lint.FileReport{withOutput(report("a.ts", diag("semi", 17)), "x")}

	fixes := DecideWrites(a, SelectForFix(a, risk.Low), fixReports)
	require.Len(t, fixes, 1)
	assert.Equal(t, []string{"semi"}, fixes[0].Rules)
}

func TestDecideWrites_UnattributedNeverMatches(t *testing.T) {
	a := Aggregate(classifier(), []lint.FileReport{report("a.ts", diag("", 1))})
	fixReports := []lint.FileReport{withOutput(report("a.ts"), "x")}

	assert.Empty(t, DecideWrites(a, SelectForFix(a, risk.High), fixReports))
}

func TestDecideWrites_FixPassOrderPreserved(t *testing.T) {
	a := Aggregate(classifier(), []lint.FileReport{
		report("a.ts", diag("semi", 1)),
		report("b.ts", diag("quotes", 1)),
	})
	fixReports := []lint.FileReport{
		withOutput(report("b.ts"), "b"),
		withOutput(report("a.ts"), "a"),
	}

	fixes := DecideWrites(a, SelectForFix(a, risk.Low), fixReports)
	require.Len(t, fixes, 2)
	assert.Equal(t, "b.ts", fixes[0].Path)
	assert.Equal(t, "a.ts", fixes[1].Path)
}

package mapper

import (
	"fmt"
	"strings"

	"github.com/dkoosis/lintrisk/internal/fixer"
	"github.com/dkoosis/lintrisk/pkg/pattern"
)

// FromFix converts a fix run into result patterns.
func FromFix(res *fixer.Result, opts Options) []pattern.Pattern {
	if res.NothingToFix {
		return []pattern.Pattern{&pattern.Summary{
			Label: fmt.Sprintf("No %s risk issues found. Nothing to fix.", res.Ceiling),
			Kind:  pattern.SummaryKindClean,
		}}
	}

	if len(res.Fixes) == 0 {
		return []pattern.Pattern{&pattern.Summary{
			Label: "The engine produced no fixes for the selected issues",
			Kind:  pattern.SummaryKindFix,
			Metrics: []pattern.SummaryItem{
				{Label: "issues selected", Value: fmt.Sprint(len(res.Eligible)), Kind: pattern.KindInfo},
				{Label: "risk level", Value: res.Ceiling.String(), Kind: TierKind(res.Ceiling)},
			},
		}}
	}

	files := &pattern.Leaderboard{
		Label:      "Files to write",
		Kind:       pattern.KindInfo,
		MetricName: "rules",
		TotalCount: len(res.Fixes),
	}
	for i, f := range res.Fixes {
		files.Items = append(files.Items, pattern.LeaderboardItem{
			Name:   ShortenPath(opts.path(f.Path), DefaultPathWidth),
			Metric: strings.Join(f.Rules, ", "),
			Value:  float64(len(f.Rules)),
			Rank:   i + 1,
		})
	}

	if res.DryRun {
		return []pattern.Pattern{
			&pattern.Summary{
				Label: fmt.Sprintf("DRY RUN - would fix %d files", len(res.Fixes)),
				Kind:  pattern.SummaryKindFix,
				Metrics: []pattern.SummaryItem{
					{Label: "issues selected", Value: fmt.Sprint(len(res.Eligible)), Kind: pattern.KindInfo},
					{Label: "affected files", Value: fmt.Sprint(len(res.Affected)), Kind: pattern.KindInfo},
					{Label: "risk level", Value: res.Ceiling.String(), Kind: TierKind(res.Ceiling)},
				},
			},
			files,
			&pattern.Advice{Label: "NEXT STEPS", Items: []pattern.AdviceItem{{
				Kind: pattern.KindInfo,
				Text: "Run without --dry-run to apply changes",
			}}},
		}
	}

	files.Label = "Files written"
	files.Items = files.Items[:0]
	for i, path := range res.Written {
		files.Items = append(files.Items, pattern.LeaderboardItem{
			Name:   ShortenPath(opts.path(path), DefaultPathWidth),
			Metric: strings.Join(res.Fixes[i].Rules, ", "),
			Value:  float64(len(res.Fixes[i].Rules)),
			Rank:   i + 1,
		})
	}
	files.TotalCount = len(res.Written)

	return []pattern.Pattern{
		&pattern.Summary{
			Label: fmt.Sprintf("Fixed %d files", len(res.Written)),
			Kind:  pattern.SummaryKindFix,
			Metrics: []pattern.SummaryItem{
				{Label: "issues fixed", Value: fmt.Sprint(len(res.Eligible)), Kind: pattern.KindSuccess},
				{Label: "files modified", Value: fmt.Sprint(len(res.Written)), Kind: pattern.KindSuccess},
				{Label: "risk level", Value: res.Ceiling.String(), Kind: TierKind(res.Ceiling)},
			},
		},
		files,
		&pattern.Advice{Label: "NEXT STEPS", Items: []pattern.AdviceItem{
			{Kind: pattern.KindInfo, Text: "Review changes:", Commands: []string{"git diff"}},
			{Kind: pattern.KindInfo, Text: "Run tests"},
			{Kind: pattern.KindInfo, Text: "Commit if all looks good"},
		}},
	}
}

package triage

import (
	"fmt"
	"math"

	"github.com/dkoosis/lintrisk/internal/risk"
)

// minutesPerIssue is the review effort assumed per tier.
var minutesPerIssue = map[risk.Tier]float64{
	risk.High:   3,
	risk.Medium: 1,
	risk.Low:    0.5,
}

// EstimateMinutes returns the assumed review effort for issues.
func EstimateMinutes(issues []Issue) float64 {
	var total float64
	for _, issue := range issues {
		total += minutesPerIssue[issue.Tier]
	}
	return total
}

// EstimateFixTime formats the review effort for the whole analysis.
func (a *Analysis) EstimateFixTime() string {
	return FormatMinutes(EstimateMinutes(a.All()))
}

// FormatMinutes renders a duration in minutes as "<1 min", "12 min" or
// "2h 5m".
func FormatMinutes(total float64) string {
	if total < 1 {
		return "<1 min"
	}
	rounded := int(math.Round(total))
	if rounded < 60 {
		return fmt.Sprintf("%d min", rounded)
	}
	return fmt.Sprintf("%dh %dm", rounded/60, rounded%60)
}

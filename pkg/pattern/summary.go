package pattern

// SummaryKind identifies which workflow produced a summary.
type SummaryKind string

const (
	SummaryKindReport SummaryKind = "report"
	SummaryKindFix    SummaryKind = "fix"
	SummaryKindClean  SummaryKind = "clean"
)

// Summary represents high-level metrics and counts.
type Summary struct {
	Label   string
	Kind    SummaryKind
	Metrics []SummaryItem
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string // e.g., "Total issues", "HIGH"
	Value string // formatted value
	Note  string // optional trailing description
	Kind  string // KindSuccess, KindError, KindWarning, KindInfo
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }

package pattern

// Leaderboard represents a ranked list of items by metric.
type Leaderboard struct {
	Label      string
	Kind       string // coloring of the header
	MetricName string // e.g., "issues"
	Items      []LeaderboardItem
	TotalCount int // total before filtering to top N
	ShowRank   bool
	Hint       string // optional footer line
}

// LeaderboardItem is a single ranked entry.
type LeaderboardItem struct {
	Name   string  // display name
	Metric string  // formatted value (e.g., "12 issues")
	Value  float64 // numeric value for sorting
	Rank   int
}

func (l *Leaderboard) Type() PatternType { return PatternTypeLeaderboard }

package risk

// Classifier maps rule identifiers to tiers using a fixed RuleTable.
type Classifier struct {
	table RuleTable
}

// NewClassifier creates a classifier over table.
func NewClassifier(table RuleTable) *Classifier {
	return &Classifier{table: table}
}

// Classify returns the tier for a rule identifier. Unattributed (nil) and
// unknown rules are Medium. Tables are consulted Low, Medium, High; the
// first match wins.
func (c *Classifier) Classify(ruleID *string) Tier {
	if ruleID == nil || *ruleID == "" {
		return Medium
	}
	id := *ruleID
	for _, tier := range Tiers {
		if c.table.Contains(tier, id) {
			return tier
		}
	}
	return Medium
}

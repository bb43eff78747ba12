package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestClassify_DefaultTableMembers(t *testing.T) {
	c := NewClassifier(DefaultRuleTable())

	for _, id := range DefaultLowRules() {
		assert.Equal(t, Low, c.Classify(ptr(id)), id)
	}
	for _, id := range DefaultMediumRules() {
		assert.Equal(t, Medium, c.Classify(ptr(id)), id)
	}
	for _, id := range DefaultHighRules() {
		assert.Equal(t, High, c.Classify(ptr(id)), id)
	}
}

func TestClassify_NilAndUnknownAreMedium(t *testing.T) {
	c := NewClassifier(DefaultRuleTable())

	assert.Equal(t, Medium, c.Classify(nil))
	assert.Equal(t, Medium, c.Classify(ptr("")))
	assert.Equal(t, Medium, c.Classify(ptr("totally-unknown-rule")))
}

func TestClassify_FirstTierWinsOnDuplicate(t *testing.T) {
	table := NewRuleTable(
		[]string{"shared"},
		[]string{"shared", "mid-only"},
		[]string{"shared", "mid-only"},
	)
	c := NewClassifier(table)

	assert.Equal(t, Low, c.Classify(ptr("shared")))
	assert.Equal(t, Medium, c.Classify(ptr("mid-only")))
}

func TestClassify_CustomTableReplacesDefaults(t *testing.T) {
	c := NewClassifier(NewRuleTable(nil, nil, []string{"no-console"}))

	assert.Equal(t, High, c.Classify(ptr("no-console")))
	assert.Equal(t, Medium, c.Classify(ptr("semi")), "rules missing from a custom table fall back to Medium")
}

func TestRuleTable_Duplicates(t *testing.T) {
	table := NewRuleTable([]string{"a", "b"}, []string{"b", "c"}, []string{"a"})

	dups := table.Duplicates()
	if assert.Len(t, dups, 2) {
		assert.Equal(t, Duplicate{Rule: "a", Tiers: []Tier{Low, High}}, dups[0])
		assert.Equal(t, Duplicate{Rule: "b", Tiers: []Tier{Low, Medium}}, dups[1])
	}
	assert.Empty(t, DefaultRuleTable().Duplicates())
}

func TestRuleTable_OverrideAddsAndMoves(t *testing.T) {
	merged := DefaultRuleTable().Override(NewRuleTable(nil, nil, []string{"no-eval", "no-console"}))

	assert.True(t, merged.Contains(High, "no-eval"))
	assert.True(t, merged.Contains(Low, "semi"))
	assert.True(t, merged.Contains(High, "no-console"))
	assert.False(t, merged.Contains(Low, "no-console"))
	assert.Equal(t, High, NewClassifier(merged).Classify(ptr("no-console")))
}

func TestRuleTable_OverrideKeepsOwnDuplicates(t *testing.T) {
	merged := DefaultRuleTable().Override(NewRuleTable([]string{"x"}, nil, []string{"x"}))
	assert.Equal(t, []Duplicate{{Rule: "x", Tiers: []Tier{Low, High}}}, merged.Duplicates())
}

func TestRuleTable_IgnoresEmptyIDs(t *testing.T) {
	table := NewRuleTable([]string{"", "semi"}, nil, nil)
	assert.Equal(t, []string{"semi"}, table.Rules(Low))
}

func TestRuleTable_InputSliceNotAliased(t *testing.T) {
	low := []string{"semi"}
	table := NewRuleTable(low, nil, nil)
	low[0] = "changed"

	assert.True(t, table.Contains(Low, "semi"))
	assert.False(t, table.Contains(Low, "changed"))
}

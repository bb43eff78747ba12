package risk

import "sort"

// RuleTable holds the rule identifiers assigned to each tier. A table is
// built once and never mutated; pass a different table to get a different
// policy.
type RuleTable struct {
	low    map[string]struct{}
	medium map[string]struct{}
	high   map[string]struct{}
}

// NewRuleTable builds a table from per-tier rule lists. Lists are copied.
func NewRuleTable(low, medium, high []string) RuleTable {
	return RuleTable{
		low:    toSet(low),
		medium: toSet(medium),
		high:   toSet(high),
	}
}

// DefaultRuleTable returns the built-in ESLint rule assignments.
func DefaultRuleTable() RuleTable {
	return NewRuleTable(DefaultLowRules(), DefaultMediumRules(), DefaultHighRules())
}

// DefaultLowRules are cosmetic rules whose fixes do not change behavior.
func DefaultLowRules() []string {
	return []string{
		"@typescript-eslint/no-unused-vars",
		"no-unused-vars",
		"@typescript-eslint/no-unused-imports",
		"no-console",
		"semi",
		"comma-dangle",
		"quotes",
		"indent",
		"no-trailing-spaces",
		"eol-last",
		"max-len",
	}
}

// DefaultMediumRules are type-safety rules.
func DefaultMediumRules() []string {
	return []string{
		"@typescript-eslint/no-explicit-any",
		"@typescript-eslint/no-inferrable-types",
		"react/prop-types",
		"react/default-props-match-prop-types",
		"@typescript-eslint/explicit-module-boundary-types",
		"@typescript-eslint/no-non-null-assertion",
	}
}

// DefaultHighRules are rules whose fixes can change runtime behavior.
func DefaultHighRules() []string {
	return []string{
		"react-hooks/exhaustive-deps",
		"react/no-unescaped-entities",
		"@typescript-eslint/ban-types",
		"react/no-children-prop",
		"react-hooks/rules-of-hooks",
		"no-unsafe-optional-chaining",
	}
}

// Override returns a new table with other's assignments layered on rt.
// A rule listed anywhere in other is first removed from every tier of rt,
// so a configuration can move a default rule to a different tier.
func (rt RuleTable) Override(other RuleTable) RuleTable {
	moved := func(id string) bool {
		for _, tier := range Tiers {
			if other.Contains(tier, id) {
				return true
			}
		}
		return false
	}
	lists := make([][]string, len(Tiers))
	for i, tier := range Tiers {
		for _, id := range rt.Rules(tier) {
			if !moved(id) {
				lists[i] = append(lists[i], id)
			}
		}
		lists[i] = append(lists[i], other.Rules(tier)...)
	}
	return NewRuleTable(lists[0], lists[1], lists[2])
}

// Rules returns the sorted rule identifiers assigned to tier.
func (rt RuleTable) Rules(tier Tier) []string {
	set := rt.set(tier)
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether id is listed under tier.
func (rt RuleTable) Contains(tier Tier, id string) bool {
	_, ok := rt.set(tier)[id]
	return ok
}

// Duplicate describes a rule listed under more than one tier.
type Duplicate struct {
	Rule  string
	Tiers []Tier
}

// Duplicates lists rules assigned to more than one tier, sorted by rule.
// Classification resolves these to the lowest listed tier.
func (rt RuleTable) Duplicates() []Duplicate {
	seen := make(map[string][]Tier)
	for _, tier := range Tiers {
		for id := range rt.set(tier) {
			seen[id] = append(seen[id], tier)
		}
	}
	var dups []Duplicate
	for id, tiers := range seen {
		if len(tiers) > 1 {
			dups = append(dups, Duplicate{Rule: id, Tiers: tiers})
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].Rule < dups[j].Rule })
	return dups
}

func (rt RuleTable) set(tier Tier) map[string]struct{} {
	switch tier {
	case Low:
		return rt.low
	case Medium:
		return rt.medium
	case High:
		return rt.high
	default:
		return nil
	}
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

package pattern

// Advice is a list of recommended next steps.
type Advice struct {
	Label string
	Items []AdviceItem
}

// AdviceItem is one recommendation, optionally with commands to run.
type AdviceItem struct {
	Kind     string
	Text     string
	Commands []string
	Notes    []string
}

func (a *Advice) Type() PatternType { return PatternTypeAdvice }

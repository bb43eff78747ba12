package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/lintrisk/pkg/pattern"
)

// LLM renders patterns as terse plain text optimized for AI consumption
// and logs. Zero ANSI codes, one fact per line.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns as plain text.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for i, p := range patterns {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch v := p.(type) {
		case *pattern.Summary:
			l.renderSummary(&sb, v)
		case *pattern.IssueTable:
			l.renderIssueTable(&sb, v)
		case *pattern.Leaderboard:
			l.renderLeaderboard(&sb, v)
		case *pattern.Advice:
			l.renderAdvice(&sb, v)
		}
	}
	return sb.String()
}

func (l *LLM) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	sb.WriteString("SCOPE: " + s.Label + "\n")
	for _, m := range s.Metrics {
		sb.WriteString(m.Label + ": " + m.Value)
		if m.Note != "" {
			sb.WriteString(" (" + m.Note + ")")
		}
		sb.WriteString("\n")
	}
}

func (l *LLM) renderIssueTable(sb *strings.Builder, t *pattern.IssueTable) {
	sb.WriteString("## " + t.Label + "\n")
	for _, f := range t.Files {
		sb.WriteString(f.Path + "\n")
		for _, is := range f.Issues {
			if is.Line > 0 {
				sb.WriteString(fmt.Sprintf("  %s %s:%d:%d %s\n", t.Tier, is.Rule, is.Line, is.Column, is.Message))
			} else {
				sb.WriteString(fmt.Sprintf("  %s %s %s\n", t.Tier, is.Rule, is.Message))
			}
		}
	}
}

func (l *LLM) renderLeaderboard(sb *strings.Builder, lb *pattern.Leaderboard) {
	sb.WriteString("## " + lb.Label + "\n")
	for _, item := range lb.Items {
		sb.WriteString("  " + item.Name + " " + item.Metric + "\n")
	}
	if lb.Hint != "" {
		sb.WriteString("  (" + lb.Hint + ")\n")
	}
}

func (l *LLM) renderAdvice(sb *strings.Builder, a *pattern.Advice) {
	sb.WriteString("## " + a.Label + "\n")
	for _, item := range a.Items {
		sb.WriteString("- " + item.Text + "\n")
		for _, cmd := range item.Commands {
			sb.WriteString("  $ " + cmd + "\n")
		}
		for _, note := range item.Notes {
			sb.WriteString("  " + note + "\n")
		}
	}
}

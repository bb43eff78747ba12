package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/lintrisk/pkg/pattern"
)

const (
	maxRuleWidth = 80
	maxNameWidth = 60
)

var titler = cases.Title(language.English)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 || width > maxRuleWidth {
		width = maxRuleWidth
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display, separated by rules.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	rule := t.theme.Muted.Render(strings.Repeat(t.theme.Rule, t.width))
	return "\n" + strings.Join(sections, "\n"+rule+"\n\n") + "\n"
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.IssueTable:
		return t.renderIssueTable(v)
	case *pattern.Leaderboard:
		return t.renderLeaderboard(v)
	case *pattern.Advice:
		return t.renderAdvice(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		style := t.theme.Bold
		if s.Kind == pattern.SummaryKindClean {
			style = style.Inherit(t.theme.Success)
		}
		sb.WriteString(style.Render(s.Label))
		sb.WriteString("\n\n")
	}

	labelWidth := 0
	for _, m := range s.Metrics {
		if w := runewidth.StringWidth(m.Label) + 1; w > labelWidth {
			labelWidth = w
		}
	}
	for _, m := range s.Metrics {
		icon, style := t.kindStyle(m.Kind)
		sb.WriteString("  ")
		sb.WriteString(style.Render(icon))
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(titler.String(m.Label)+":", labelWidth))
		sb.WriteString("  ")
		sb.WriteString(style.Render(m.Value))
		if m.Note != "" {
			sb.WriteString(t.theme.Muted.Render(" - " + m.Note))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderIssueTable(it *pattern.IssueTable) string {
	if len(it.Files) == 0 {
		return ""
	}
	_, style := t.kindStyle(it.Kind)
	var sb strings.Builder
	sb.WriteString(style.Bold(true).Render(it.Label))
	sb.WriteString("\n")

	for _, f := range it.Files {
		sb.WriteString("\n  ")
		sb.WriteString(t.theme.Primary.Render(t.theme.Icons.File + " " + f.Path))
		if f.Note != "" {
			sb.WriteString(t.theme.Muted.Render(" (" + f.Note + ")"))
		}
		sb.WriteString("\n")
		for _, is := range f.Issues {
			sb.WriteString(fmt.Sprintf("     Line %d: ", is.Line))
			sb.WriteString(style.Render("[" + is.Rule + "]"))
			sb.WriteString("\n     ")
			sb.WriteString(t.theme.Muted.Render(t.theme.Icons.Arrow + " " + is.Message))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (t *Terminal) renderLeaderboard(l *pattern.Leaderboard) string {
	if len(l.Items) == 0 {
		return ""
	}
	_, style := t.kindStyle(l.Kind)
	var sb strings.Builder
	if l.Label != "" {
		header := l.Label
		if l.TotalCount > len(l.Items) {
			header += fmt.Sprintf(" (top %d of %d)", len(l.Items), l.TotalCount)
		}
		sb.WriteString(style.Bold(true).Render(header))
		sb.WriteString("\n\n")
	}

	maxName := 0
	for _, item := range l.Items {
		if w := runewidth.StringWidth(item.Name); w > maxName {
			maxName = w
		}
	}
	if maxName > maxNameWidth {
		maxName = maxNameWidth
	}

	for _, item := range l.Items {
		sb.WriteString("  ")
		if l.ShowRank {
			sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%2d. ", item.Rank)))
		} else {
			sb.WriteString(t.theme.Muted.Render(t.theme.Icons.File + " "))
		}
		name := runewidth.Truncate(item.Name, maxName, "...")
		sb.WriteString(t.theme.Primary.Render(runewidth.FillRight(name, maxName)))
		sb.WriteString("  ")
		sb.WriteString(style.Render(item.Metric))
		sb.WriteString("\n")
	}
	if l.Hint != "" {
		sb.WriteString("\n  ")
		sb.WriteString(t.theme.Muted.Render(t.theme.Icons.Hint + " " + l.Hint))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderAdvice(a *pattern.Advice) string {
	if len(a.Items) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(a.Label))
	sb.WriteString("\n")
	for _, item := range a.Items {
		icon, style := t.kindStyle(item.Kind)
		sb.WriteString("\n")
		sb.WriteString(style.Render(icon))
		sb.WriteString(" ")
		sb.WriteString(item.Text)
		sb.WriteString("\n")
		for _, cmd := range item.Commands {
			sb.WriteString("   ")
			sb.WriteString(t.theme.Primary.Render(cmd))
			sb.WriteString("\n")
		}
		for _, note := range item.Notes {
			sb.WriteString("   ")
			sb.WriteString(t.theme.Muted.Render(note))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (t *Terminal) kindStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case pattern.KindError:
		return t.theme.Icons.High, t.theme.Error
	case pattern.KindWarning:
		return t.theme.Icons.Medium, t.theme.Warning
	case pattern.KindSuccess:
		return t.theme.Icons.Low, t.theme.Success
	default:
		return t.theme.Icons.Info, t.theme.Primary
	}
}

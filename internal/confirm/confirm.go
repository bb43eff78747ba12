// Package confirm asks the user to approve fix writes.
package confirm

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	maxListHeight = 12
)

type keyMap struct {
	Yes key.Binding
	No  key.Binding
}

var keys = keyMap{
	Yes: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "write fixes")),
	No:  key.NewBinding(key.WithKeys("n", "N", "enter", "esc", "q", "ctrl+c"), key.WithHelp("n", "cancel")),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

type model struct {
	title    string
	list     viewport.Model
	accepted bool
	answered bool
}

func newModel(title string, lines []string) model {
	height := len(lines)
	if height > maxListHeight {
		height = maxListHeight
	}
	vp := viewport.New(defaultWidth, height)
	vp.SetContent(strings.Join(lines, "\n"))
	return model{title: title, list: vp}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Yes):
			m.accepted, m.answered = true, true
			return m, tea.Quit
		case key.Matches(msg, keys.No):
			m.answered = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.Width = msg.Width
		// title, blank line, help line
		if avail := msg.Height - 3; avail < m.list.Height && avail > 0 {
			m.list.Height = avail
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.answered {
		answer := "no"
		if m.accepted {
			answer = "yes"
		}
		return fmt.Sprintf("%s %s\n", titleStyle.Render(m.title), answer)
	}
	help := fmt.Sprintf("[%s] %s  [%s] %s",
		keys.Yes.Help().Key, keys.Yes.Help().Desc,
		keys.No.Help().Key, keys.No.Help().Desc)
	if !m.list.AtTop() || !m.list.AtBottom() {
		help += "  [↑/↓] scroll"
	}
	return titleStyle.Render(m.title) + "\n" + m.list.View() + "\n\n" + helpStyle.Render(help)
}

// Ask shows title above a scrollable list of lines and waits for y or n.
// Anything other than an explicit yes is a refusal.
func Ask(ctx context.Context, in io.Reader, out io.Writer, title string, lines []string) (bool, error) {
	program := tea.NewProgram(newModel(title, lines),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return final.(model).accepted, nil
}

package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
	Rule    string // section separator character
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	High   string
	Medium string
	Low    string
	Info   string
	File   string
	Arrow  string
	Hint   string
	Bullet string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			High:   "●",
			Medium: "●",
			Low:    "●",
			Info:   "·",
			File:   "▸",
			Arrow:  "→",
			Hint:   "›",
			Bullet: "·",
		},
		Rule: "─",
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	t := DefaultTheme()
	t.Name = "orca"
	t.Primary = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))  // pale blue
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("108")) // sage green
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("179")) // muted gold
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))   // muted red
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))   // lighter gray
	t.Icons.High, t.Icons.Medium, t.Icons.Low = "▲", "◆", "▼"
	return t
}

// MonoTheme returns a monochrome ASCII theme.
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Primary: lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			High:   "[H]",
			Medium: "[M]",
			Low:    "[L]",
			Info:   "*",
			File:   "-",
			Arrow:  "->",
			Hint:   ">",
			Bullet: "-",
		},
		Rule: "-",
	}
}

// WithoutColor keeps t's icons but drops every color.
func (t Theme) WithoutColor() Theme {
	plain := lipgloss.NewStyle()
	t.Primary, t.Success, t.Warning, t.Error, t.Muted = plain, plain, plain, plain, plain
	t.Bold = lipgloss.NewStyle().Bold(true)
	return t
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

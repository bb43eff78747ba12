// Package render provides output renderers for lintrisk's visualization patterns.
package render

import (
	"fmt"

	"github.com/dkoosis/lintrisk/pkg/pattern"
)

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

// Formats accepted by ForFormat.
const (
	FormatAuto     = "auto"
	FormatTerminal = "terminal"
	FormatLLM      = "llm"
)

// ForFormat picks a renderer. Auto means terminal on a TTY, LLM text otherwise.
func ForFormat(format string, isTTY bool, theme Theme, width int) (Renderer, error) {
	switch format {
	case FormatAuto, "":
		if isTTY {
			return NewTerminal(theme, width), nil
		}
		return NewLLM(), nil
	case FormatTerminal:
		return NewTerminal(theme, width), nil
	case FormatLLM:
		return NewLLM(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

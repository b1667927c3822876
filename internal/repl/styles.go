package repl

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	colorError = lipgloss.Color("#EF4444") // Red
	colorMuted = lipgloss.Color("#6B7280") // Gray
)

type styles struct {
	enabled bool
	err     lipgloss.Style
	info    lipgloss.Style
}

// newStyles builds the shell styles for out. color is auto, always or never;
// auto enables styling only when out is a terminal.
func newStyles(out io.Writer, color string) styles {
	r := lipgloss.NewRenderer(out)
	s := styles{
		err:  r.NewStyle().Foreground(colorError),
		info: r.NewStyle().Foreground(colorMuted).Italic(true),
	}

	switch color {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
		s.enabled = true
	case "auto":
		s.enabled = isTerminal(out)
	}
	return s
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

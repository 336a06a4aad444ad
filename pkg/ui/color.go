package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/pkgflag/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ColorEnabled decides whether output written to w is colored, given an
// output.color mode.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}

// SetupColor switches lipgloss and pterm styling on or off.
func SetupColor(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
		return
	}
	if lipgloss.ColorProfile() == termenv.Ascii {
		// forced color on a pipe
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
	pterm.EnableStyling()
}

package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTTY returns true if f is a terminal
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConfigureColor disables styling when output does not go to a terminal
// or when NO_COLOR is set
func ConfigureColor(out *os.File) {
	if os.Getenv("NO_COLOR") != "" || !IsTTY(out) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

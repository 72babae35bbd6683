// Package term provides terminal interaction: TTY detection, terminal
// dimensions, display width of strings and ANSI styling.
//
// Styling forwards to lipgloss, which degrades automatically on dumb
// terminals; ColorProfile exposes the detected capability level directly.
package term

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	xterm "golang.org/x/term"
)

// Style is a set of ANSI text attributes and colors.
type Style = lipgloss.Style

// Color is an ANSI, ANSI256 or hex color specification.
type Color = lipgloss.Color

// NewStyle returns an empty style to build on.
var NewStyle = lipgloss.NewStyle

// Profile is a terminal's color capability level.
type Profile = termenv.Profile

// ColorProfile detects the color capability of stdout.
func ColorProfile() Profile {
	return termenv.ColorProfile()
}

// StdoutIsTTY reports whether stdout is attached to a terminal.
func StdoutIsTTY() bool {
	return isTTY(os.Stdout)
}

// StderrIsTTY reports whether stderr is attached to a terminal.
func StderrIsTTY() bool {
	return isTTY(os.Stderr)
}

// Dimensions returns the width and height of the terminal on stdout. ok is
// false when stdout is not a terminal.
func Dimensions() (width, height int, ok bool) {
	width, height, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

// StringWidth returns the number of terminal cells the string occupies,
// accounting for wide runes.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

func isTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

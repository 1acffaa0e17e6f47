// Package display formats zsnap's stderr diagnostics. Listing output is
// contractual and stays unstyled; only errors and notices get color, and
// only when stderr is a terminal.
package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	NoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// IsTerminal returns true if f is a TTY.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render applies style to msg only when tty is set.
func Render(style lipgloss.Style, tty bool, msg string) string {
	if tty {
		return style.Render(msg)
	}
	return msg
}

// PrintError prints a styled error line to stderr.
func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, Render(ErrorStyle, IsTerminal(os.Stderr), "zsnap: "+msg))
}

// PrintNotice prints a styled notice line to stderr.
func PrintNotice(msg string) {
	fmt.Fprintln(os.Stderr, Render(NoticeStyle, IsTerminal(os.Stderr), "zsnap: "+msg))
}

package report

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	terminalWidthBackup = 80
	colorReset          = "\x1b[0m"
	colorBold           = "\x1b[1m"
	colorBlue           = "\x1b[34m"
	colorAmber          = "\x1b[33m"
	colorMuted          = "\x1b[90m"
)

// Options controls text rendering.
type Options struct {
	// Width is the output width in cells; 0 picks the terminal width.
	Width int
	Color bool
}

// DefaultOptions sizes output for w and enables colour only on a terminal.
func DefaultOptions(w io.Writer) Options {
	return Options{Width: TerminalWidth(), Color: ShouldUseColor(w, false)}
}

func (o Options) width() int {
	if o.Width > 0 {
		return o.Width
	}
	return TerminalWidth()
}

// TerminalWidth returns the stdout width, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// ShouldUseColor reports whether ANSI colour should be written to w.
// NO_COLOR always wins over force.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func colorize(value, code string, enabled bool) string {
	if !enabled || value == "" {
		return value
	}
	return code + value + colorReset
}

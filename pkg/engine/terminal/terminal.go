// Package terminal reports the size of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal returns true if stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Viewport clips a cols x rows picture to the terminal, keeping reserved rows
// free for text around it. Never returns less than one column or row.
func Viewport(cols, rows, reserved int) (int, int) {
	width, height := GetSize()
	return clip(cols, width), clip(rows, height-reserved)
}

func clip(n, limit int) int {
	return max(1, min(n, limit))
}

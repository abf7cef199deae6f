// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
)

// Copy places text on the system clipboard.
func Copy(text string) error {
	return clipboard.WriteAll(text)
}

// CopyStripped places text on the clipboard with ANSI escape sequences
// removed. PTY captures are full of control bytes that are useless outside
// a terminal.
func CopyStripped(text string) error {
	return clipboard.WriteAll(ansi.Strip(text))
}

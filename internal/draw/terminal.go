package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// TermSizeFunc reports the current terminal dimensions. SSH sessions
// supply one backed by window-change events; local play reads stdout.
type TermSizeFunc func() (width, height int, err error)

// StdoutSize is the TermSizeFunc for a local terminal.
var StdoutSize TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor restores the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor positions the cursor at 1-based (col, row).
func MoveCursor(w io.Writer, col, row int) {
	fmt.Fprintf(w, "\033[%d;%dH", row, col)
}

// WriteAt writes s starting at 1-based (col, row).
func WriteAt(w io.Writer, col, row int, s string) {
	MoveCursor(w, col, row)
	io.WriteString(w, s)
}

// CenteredAt writes s centered on column center at the given row.
func CenteredAt(w io.Writer, center, row int, s string) {
	col := center - len(s)/2
	if col < 1 {
		col = 1
	}
	WriteAt(w, col, row, s)
}

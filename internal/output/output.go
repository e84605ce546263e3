package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const columnGap = 2

// Write prints passwords one per line, or in left-aligned rows of the given
// number of columns when columns > 1.
func Write(w io.Writer, passwords []string, columns int) error {
	if columns <= 1 {
		for _, p := range passwords {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
		return nil
	}

	width := CellWidth(passwords)
	for i := 0; i < len(passwords); i += columns {
		end := min(i+columns, len(passwords))
		row := passwords[i:end]

		var b strings.Builder
		for j, p := range row {
			b.WriteString(p)
			if j < len(row)-1 {
				b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(p)+columnGap))
			}
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// CellWidth returns the width of the longest password in symbols.
func CellWidth(passwords []string) int {
	width := 0
	for _, p := range passwords {
		width = max(width, utf8.RuneCountInString(p))
	}
	return width
}

// TerminalColumns returns how many cells of cellWidth fit on one line of f.
// It returns 1 when f is not a terminal.
func TerminalColumns(f *os.File, cellWidth int) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 1
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 1
	}
	return Columns(width, cellWidth)
}

// Columns returns how many cells of cellWidth fit into lineWidth, at least 1.
func Columns(lineWidth, cellWidth int) int {
	if cellWidth <= 0 {
		return 1
	}
	// The last cell needs no gap.
	n := (lineWidth + columnGap) / (cellWidth + columnGap)
	return max(n, 1)
}

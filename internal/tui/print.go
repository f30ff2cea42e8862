// Package tui holds the terminal front ends: the two-player board and plain
// text reports.
package tui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/sakethpatnayakuni/offline-chess/internal/board"
)

var (
	lightCell = color.New(color.FgBlack, color.BgHiYellow)
	darkCell  = color.New(color.FgBlack, color.BgYellow)
	labelText = color.New(color.FgHiBlack)
)

// PrintBoard writes b to w with rank and file labels, one row per line,
// row 0 first. Colors follow color.NoColor.
func PrintBoard(w io.Writer, b *board.Board) error {
	for row := 0; row < board.Size; row++ {
		if _, err := labelText.Fprintf(w, "%d ", board.Size-row); err != nil {
			return err
		}
		for col := 0; col < board.Size; col++ {
			sq := board.Sq(row, col)
			cell := darkCell
			if sq.IsLight() {
				cell = lightCell
			}
			if _, err := cell.Fprint(w, " "+symbol(b.At(sq))+" "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := labelText.Fprintln(w, "   a  b  c  d  e  f  g  h")
	return err
}

func symbol(p board.Piece) string {
	if p.IsEmpty() {
		return " "
	}
	return p.Glyph()
}

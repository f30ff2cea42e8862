// Package board implements the 8x8 board model shared by the offline game,
// its legality rules and the renderers.
package board

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 8

// Square addresses a board cell by row and column.
// Row 0 is black's back rank (top of the screen), row 7 is white's.
type Square struct {
	Row int
	Col int
}

// NoSquare is returned where no square applies.
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// IsValid returns true if the square lies on the board.
func (sq Square) IsValid() bool {
	return sq.Row >= 0 && sq.Row < Size && sq.Col >= 0 && sq.Col < Size
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col, '8'-sq.Row)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0]) - 'a'
	rank := int(s[1]) - '1'

	if col < 0 || col > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return Sq(7-rank, col), nil
}

// IsLight returns true for light squares; a8 (row 0, col 0) is light.
func (sq Square) IsLight() bool {
	return (sq.Row+sq.Col)%2 == 0
}

// SquareFromPixel maps a click position to a square by integer division by
// the tile size. ok is false when the point falls outside the board.
func SquareFromPixel(x, y, tileSize int) (Square, bool) {
	if tileSize <= 0 || x < 0 || y < 0 {
		return NoSquare, false
	}
	sq := Sq(y/tileSize, x/tileSize)
	if !sq.IsValid() {
		return NoSquare, false
	}
	return sq, true
}

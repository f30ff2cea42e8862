package board

import (
	"fmt"
	"strings"
)

// Board is an 8x8 grid of pieces indexed [row][col]. The zero value is an
// empty board.
type Board [Size][Size]Piece

// NewEmptyBoard returns a board with every square empty.
func NewEmptyBoard() *Board {
	return &Board{}
}

// NewBoard returns the standard starting layout.
func NewBoard() *Board {
	b := NewEmptyBoard()
	back := [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < Size; col++ {
		b[0][col] = NewPiece(back[col], Black)
		b[1][col] = BlackPawn
		b[6][col] = WhitePawn
		b[7][col] = NewPiece(back[col], White)
	}
	return b
}

// Clear empties every square.
func (b *Board) Clear() {
	for row := range b {
		for col := range b[row] {
			b[row][col] = NoPiece
		}
	}
}

// At returns the piece on sq, or NoPiece if the square is empty or off the board.
func (b *Board) At(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b[sq.Row][sq.Col]
}

// IsEmpty returns true if sq holds no piece. Off-board squares count as empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq) == NoPiece
}

// Set places p on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.IsValid() {
		return
	}
	b[sq.Row][sq.Col] = p
}

// Apply relocates the piece on m.From to m.To and returns whatever was
// captured there. No legality checking is done.
func (b *Board) Apply(m Move) Piece {
	if !m.From.IsValid() || !m.To.IsValid() {
		return NoPiece
	}
	captured := b.At(m.To)
	b.Set(m.To, b.At(m.From))
	b.Set(m.From, NoPiece)
	return captured
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// ForEach calls f for every square, row by row from the top.
func (b *Board) ForEach(f func(Square, Piece)) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			f(Sq(row, col), b[row][col])
		}
	}
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	b.ForEach(func(_ Square, p Piece) {
		if p != NoPiece {
			n++
		}
	})
	return n
}

// String returns a visual representation of the board.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d  ", Size-row)
		for col := 0; col < Size; col++ {
			p := b[row][col]
			if p == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteByte(p.FEN())
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}

// Position pairs a board with the side to move.
type Position struct {
	Board      *Board
	SideToMove Color
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	return &Position{Board: NewBoard(), SideToMove: White}
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	return &Position{Board: p.Board.Copy(), SideToMove: p.SideToMove}
}

// Validate checks the position for shapes the board model cannot hold.
func (p *Position) Validate() error {
	if p.Board == nil {
		return fmt.Errorf("position has no board")
	}
	if p.SideToMove >= NoColor {
		return fmt.Errorf("invalid side to move: %d", p.SideToMove)
	}
	var err error
	p.Board.ForEach(func(sq Square, pc Piece) {
		if err == nil && pc > BlackKing {
			err = fmt.Errorf("invalid piece value %d on %s", pc, sq)
		}
	})
	return err
}

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardLayout(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, 32, b.Count())
	assert.Equal(t, BlackRook, b.At(Sq(0, 0)))
	assert.Equal(t, BlackKing, b.At(Sq(0, 4)))
	assert.Equal(t, BlackQueen, b.At(Sq(0, 3)))
	assert.Equal(t, WhiteKing, b.At(Sq(7, 4)))
	assert.Equal(t, WhiteQueen, b.At(Sq(7, 3)))
	assert.Equal(t, WhiteKnight, b.At(Sq(7, 1)))
	for col := 0; col < Size; col++ {
		assert.Equal(t, BlackPawn, b.At(Sq(1, col)))
		assert.Equal(t, WhitePawn, b.At(Sq(6, col)))
		for row := 2; row < 6; row++ {
			assert.True(t, b.IsEmpty(Sq(row, col)))
		}
	}
}

func TestAtOffBoard(t *testing.T) {
	b := NewBoard()
	for _, sq := range []Square{Sq(-1, 0), Sq(0, -1), Sq(8, 0), Sq(0, 8), NoSquare} {
		assert.Equal(t, NoPiece, b.At(sq), "square %v", sq)
	}

	// Set off the board is a no-op.
	b.Set(Sq(8, 8), WhiteQueen)
	assert.Equal(t, 32, b.Count())
}

func TestApply(t *testing.T) {
	b := NewBoard()

	captured := b.Apply(NewMove(Sq(6, 4), Sq(4, 4)))
	assert.Equal(t, NoPiece, captured)
	assert.Equal(t, NoPiece, b.At(Sq(6, 4)))
	assert.Equal(t, WhitePawn, b.At(Sq(4, 4)))

	// Apply does not check legality: a rook may land on its own pawn.
	captured = b.Apply(NewMove(Sq(0, 0), Sq(1, 0)))
	assert.Equal(t, BlackPawn, captured)
	assert.Equal(t, BlackRook, b.At(Sq(1, 0)))
	assert.Equal(t, 31, b.Count())
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	c := b.Copy()
	c.Apply(NewMove(Sq(7, 1), Sq(5, 2)))

	assert.Equal(t, WhiteKnight, b.At(Sq(7, 1)))
	assert.Equal(t, NoPiece, c.At(Sq(7, 1)))
}

func TestPieceCodes(t *testing.T) {
	tests := []struct {
		code  string
		piece Piece
		glyph string
	}{
		{"wP", WhitePawn, "♙"},
		{"wN", WhiteKnight, "♘"},
		{"wB", WhiteBishop, "♗"},
		{"wR", WhiteRook, "♖"},
		{"wQ", WhiteQueen, "♕"},
		{"wK", WhiteKing, "♔"},
		{"bP", BlackPawn, "♟"},
		{"bN", BlackKnight, "♞"},
		{"bB", BlackBishop, "♝"},
		{"bR", BlackRook, "♜"},
		{"bQ", BlackQueen, "♛"},
		{"bK", BlackKing, "♚"},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			p, ok := ParsePiece(tc.code)
			require.True(t, ok)
			assert.Equal(t, tc.piece, p)
			assert.Equal(t, tc.code, p.String())
			assert.Equal(t, tc.glyph, p.Glyph())
		})
	}

	p, ok := ParsePiece("")
	assert.True(t, ok)
	assert.Equal(t, NoPiece, p)

	for _, bad := range []string{"x", "xP", "wX", "wPP"} {
		_, ok := ParsePiece(bad)
		assert.False(t, ok, bad)
	}
}

func TestNoPiece(t *testing.T) {
	assert.True(t, NoPiece.IsEmpty())
	assert.Equal(t, NoKind, NoPiece.Kind())
	assert.Equal(t, NoColor, NoPiece.Color())
	assert.Equal(t, "", NoPiece.String())
	assert.Equal(t, "", NoPiece.Glyph())
	assert.Equal(t, NoPiece, NewPiece(NoKind, White))
	assert.Equal(t, NoPiece, NewPiece(Pawn, NoColor))
	assert.True(t, Piece(13).IsEmpty())
}

func TestZeroBoardIsEmpty(t *testing.T) {
	var b Board
	assert.Equal(t, 0, b.Count())
	assert.True(t, b.IsEmpty(Sq(6, 0)))
	assert.Equal(t, NoPiece, b.At(Sq(0, 0)))
	assert.Equal(t, "8/8/8/8/8/8/8/8", b.Placement())

	var p Piece
	assert.Equal(t, NoPiece, p)
}

func TestValidate(t *testing.T) {
	pos := NewPosition()
	require.NoError(t, pos.Validate())

	pos.Board[3][3] = Piece(13)
	assert.Error(t, pos.Validate())

	assert.Error(t, (&Position{}).Validate())
	assert.Error(t, (&Position{Board: NewEmptyBoard(), SideToMove: NoColor}).Validate())
}

func TestColorDirections(t *testing.T) {
	assert.Equal(t, -1, White.Forward())
	assert.Equal(t, 1, Black.Forward())
	assert.Equal(t, 6, White.HomeRow())
	assert.Equal(t, 1, Black.HomeRow())
	assert.Equal(t, Black, White.Other())
	assert.Equal(t, White, Black.Other())
}

func TestSquareNotation(t *testing.T) {
	assert.Equal(t, "a8", Sq(0, 0).String())
	assert.Equal(t, "h1", Sq(7, 7).String())
	assert.Equal(t, "e2", Sq(6, 4).String())
	assert.Equal(t, "-", NoSquare.String())

	sq, err := ParseSquare("e4")
	require.NoError(t, err)
	assert.Equal(t, Sq(4, 4), sq)

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		_, err := ParseSquare(bad)
		assert.Error(t, err, bad)
	}

	m, err := ParseMove("g1f3")
	require.NoError(t, err)
	assert.Equal(t, NewMove(Sq(7, 6), Sq(5, 5)), m)
	assert.Equal(t, "g1f3", m.String())
	dr, dc := m.Delta()
	assert.Equal(t, -2, dr)
	assert.Equal(t, -1, dc)
}

func TestSquareFromPixel(t *testing.T) {
	tests := []struct {
		x, y, tile int
		want       Square
		ok         bool
	}{
		{0, 0, 80, Sq(0, 0), true},
		{79, 79, 80, Sq(0, 0), true},
		{80, 0, 80, Sq(0, 1), true},
		{639, 639, 80, Sq(7, 7), true},
		{100, 500, 64, Sq(7, 1), true},
		{640, 0, 80, NoSquare, false},
		{0, 640, 80, NoSquare, false},
		{-1, 10, 80, NoSquare, false},
		{10, 10, 0, NoSquare, false},
	}

	for _, tc := range tests {
		sq, ok := SquareFromPixel(tc.x, tc.y, tc.tile)
		assert.Equal(t, tc.ok, ok, "(%d,%d)/%d", tc.x, tc.y, tc.tile)
		assert.Equal(t, tc.want, sq, "(%d,%d)/%d", tc.x, tc.y, tc.tile)
	}
}

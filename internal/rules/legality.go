// Package rules decides whether a move is geometrically legal for the piece
// being moved. It knows nothing about check, castling, en passant or
// promotion: a king may be left in check and pawns stop on the last rank.
package rules

import "github.com/sakethpatnayakuni/offline-chess/internal/board"

// IsLegal reports whether side may play m on b. The board is only read.
// Off-board squares, an empty or foreign source square, a null move and
// self-capture all yield false.
func IsLegal(b *board.Board, side board.Color, m board.Move) bool {
	if b == nil || !m.From.IsValid() || !m.To.IsValid() {
		return false
	}
	if m.From == m.To {
		return false
	}

	piece := b.At(m.From)
	if piece == board.NoPiece || piece.Color() != side {
		return false
	}

	target := b.At(m.To)
	if target != board.NoPiece && target.Color() == side {
		return false
	}

	dRow, dCol := m.Delta()

	switch piece.Kind() {
	case board.Pawn:
		return pawnCanMove(b, piece.Color(), m, target)

	case board.Rook:
		if dRow != 0 && dCol != 0 {
			return false
		}
		return pathClear(b, m.From, m.To)

	case board.Bishop:
		if abs(dRow) != abs(dCol) {
			return false
		}
		return pathClear(b, m.From, m.To)

	case board.Queen:
		if dRow != 0 && dCol != 0 && abs(dRow) != abs(dCol) {
			return false
		}
		return pathClear(b, m.From, m.To)

	case board.Knight:
		r, c := abs(dRow), abs(dCol)
		return (r == 1 && c == 2) || (r == 2 && c == 1)

	case board.King:
		return max(abs(dRow), abs(dCol)) == 1
	}

	return false
}

// pawnCanMove applies the pawn rules: one step forward onto an empty square,
// two steps from the home row through two empty squares, or one diagonal step
// forward onto an enemy piece.
func pawnCanMove(b *board.Board, c board.Color, m board.Move, target board.Piece) bool {
	dir := c.Forward()
	dRow, dCol := m.Delta()

	if dCol == 0 {
		if target != board.NoPiece {
			return false
		}
		if dRow == dir {
			return true
		}
		if m.From.Row == c.HomeRow() && dRow == 2*dir {
			return b.IsEmpty(board.Sq(m.From.Row+dir, m.From.Col))
		}
		return false
	}

	return abs(dCol) == 1 && dRow == dir && target != board.NoPiece
}

// Destinations lists every square the piece on from may legally move to.
// It is empty when from does not hold a piece of side.
func Destinations(b *board.Board, side board.Color, from board.Square) []board.Square {
	if b == nil || b.At(from) == board.NoPiece || b.At(from).Color() != side {
		return nil
	}

	var dests []board.Square
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			to := board.Sq(row, col)
			if IsLegal(b, side, board.NewMove(from, to)) {
				dests = append(dests, to)
			}
		}
	}
	return dests
}

// HasAnyMove reports whether side has at least one legal move on b.
func HasAnyMove(b *board.Board, side board.Color) bool {
	found := false
	b.ForEach(func(sq board.Square, p board.Piece) {
		if found || p == board.NoPiece || p.Color() != side {
			return
		}
		found = len(Destinations(b, side, sq)) > 0
	})
	return found
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package rules

import "github.com/sakethpatnayakuni/offline-chess/internal/board"

// pathClear walks from the square next to from toward to, stopping before
// to, and reports whether every square on the way is empty. Callers make sure
// from and to share a row, column or diagonal.
func pathClear(b *board.Board, from, to board.Square) bool {
	stepRow := sign(to.Row - from.Row)
	stepCol := sign(to.Col - from.Col)

	sq := board.Sq(from.Row+stepRow, from.Col+stepCol)
	for sq != to {
		if !b.IsEmpty(sq) {
			return false
		}
		sq = board.Sq(sq.Row+stepRow, sq.Col+stepCol)
	}

	return true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

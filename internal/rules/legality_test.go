package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakethpatnayakuni/offline-chess/internal/board"
)

func mv(t *testing.T, s string) board.Move {
	t.Helper()
	m, err := board.ParseMove(s)
	require.NoError(t, err)
	return m
}

func boardFrom(t *testing.T, placement string) *board.Board {
	t.Helper()
	b, err := board.ParsePlacement(placement)
	require.NoError(t, err)
	return b
}

func TestOpeningMoves(t *testing.T) {
	b := board.NewBoard()

	tests := []struct {
		move  string
		side  board.Color
		legal bool
	}{
		{"e2e3", board.White, true},
		{"e2e4", board.White, true},
		{"e2e5", board.White, false},
		{"e2d3", board.White, false},
		{"e7e6", board.Black, true},
		{"e7e5", board.Black, true},
		{"e7e4", board.Black, false},
		{"b1a3", board.White, true},
		{"b1c3", board.White, true},
		{"b1d2", board.White, false},
		{"g8f6", board.Black, true},
		{"c1a3", board.White, false},
		{"a1a3", board.White, false},
		{"d1d3", board.White, false},
		{"e1e2", board.White, false},
		{"e2e4", board.Black, false},
		{"e7e5", board.White, false},
	}

	for _, tc := range tests {
		t.Run(tc.move, func(t *testing.T) {
			assert.Equal(t, tc.legal, IsLegal(b, tc.side, mv(t, tc.move)))
		})
	}
}

func TestRejectsMalformedInput(t *testing.T) {
	b := board.NewBoard()

	tests := []struct {
		name string
		move board.Move
	}{
		{"source off board", board.NewMove(board.Sq(-1, 0), board.Sq(5, 0))},
		{"destination off board", board.NewMove(board.Sq(6, 0), board.Sq(6, 8))},
		{"both off board", board.NewMove(board.Sq(9, 9), board.Sq(10, 10))},
		{"null move", board.NewMove(board.Sq(6, 4), board.Sq(6, 4))},
		{"empty source", board.NewMove(board.Sq(4, 4), board.Sq(3, 4))},
		{"no squares", board.NewMove(board.NoSquare, board.NoSquare)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, IsLegal(b, board.White, tc.move))
				assert.False(t, IsLegal(b, board.Black, tc.move))
			})
		})
	}

	assert.False(t, IsLegal(nil, board.White, mv(t, "e2e4")))
	assert.Empty(t, Destinations(nil, board.White, board.Sq(6, 4)))
}

func TestDoesNotMutateBoard(t *testing.T) {
	b := board.NewBoard()
	before := *b

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			from := board.Sq(row, col)
			Destinations(b, board.White, from)
			Destinations(b, board.Black, from)
		}
	}

	assert.Equal(t, before, *b)
}

func TestPawnDirectionPerColor(t *testing.T) {
	t.Run("white", func(t *testing.T) {
		b := boardFrom(t, "8/8/8/8/8/4P3/8/8")
		assert.True(t, IsLegal(b, board.White, mv(t, "e3e4")))
		assert.False(t, IsLegal(b, board.White, mv(t, "e3e2")), "white pawns never retreat")
		assert.False(t, IsLegal(b, board.White, mv(t, "e3e5")), "two-step only from home row")
	})

	t.Run("black", func(t *testing.T) {
		b := boardFrom(t, "8/8/4p3/8/8/8/8/8")
		assert.True(t, IsLegal(b, board.Black, mv(t, "e6e5")))
		assert.False(t, IsLegal(b, board.Black, mv(t, "e6e7")), "black pawns never retreat")
		assert.False(t, IsLegal(b, board.Black, mv(t, "e6e4")), "two-step only from home row")
	})
}

func TestPawnTwoStep(t *testing.T) {
	t.Run("white clear", func(t *testing.T) {
		b := board.NewBoard()
		assert.True(t, IsLegal(b, board.White, mv(t, "d2d4")))
	})

	t.Run("white blocked on intermediate square", func(t *testing.T) {
		b := board.NewBoard()
		b.Set(board.Sq(5, 3), board.BlackKnight)
		assert.False(t, IsLegal(b, board.White, mv(t, "d2d4")))
		assert.False(t, IsLegal(b, board.White, mv(t, "d2d3")))
	})

	t.Run("white blocked on destination", func(t *testing.T) {
		b := board.NewBoard()
		b.Set(board.Sq(4, 3), board.BlackKnight)
		assert.False(t, IsLegal(b, board.White, mv(t, "d2d4")))
		assert.True(t, IsLegal(b, board.White, mv(t, "d2d3")))
	})

	t.Run("black clear", func(t *testing.T) {
		b := board.NewBoard()
		assert.True(t, IsLegal(b, board.Black, mv(t, "d7d5")))
	})

	t.Run("black blocked on intermediate square", func(t *testing.T) {
		b := board.NewBoard()
		b.Set(board.Sq(2, 3), board.WhiteKnight)
		assert.False(t, IsLegal(b, board.Black, mv(t, "d7d5")))
	})

	t.Run("black blocked on destination", func(t *testing.T) {
		b := board.NewBoard()
		b.Set(board.Sq(3, 3), board.WhiteKnight)
		assert.False(t, IsLegal(b, board.Black, mv(t, "d7d5")))
	})
}

func TestPawnCaptures(t *testing.T) {
	// White pawn e4, black pawns d5 and e5, black knight f5.
	b := boardFrom(t, "8/8/8/3ppn2/4P3/8/8/8")

	assert.True(t, IsLegal(b, board.White, mv(t, "e4d5")))
	assert.True(t, IsLegal(b, board.White, mv(t, "e4f5")))
	assert.False(t, IsLegal(b, board.White, mv(t, "e4e5")), "pawns do not capture straight ahead")

	assert.True(t, IsLegal(b, board.Black, mv(t, "d5e4")))
	assert.False(t, IsLegal(b, board.Black, mv(t, "e5e4")))

	// Diagonal onto an empty square is never legal (no en passant).
	empty := boardFrom(t, "8/8/8/3pP3/8/8/8/8")
	assert.False(t, IsLegal(empty, board.White, mv(t, "e5d6")))
	assert.False(t, IsLegal(empty, board.White, mv(t, "e5f6")))
	assert.False(t, IsLegal(empty, board.Black, mv(t, "d5c4")))

	// Diagonal backwards onto an enemy is not legal either.
	back := boardFrom(t, "8/8/8/4P3/3p4/8/8/8")
	assert.False(t, IsLegal(back, board.White, mv(t, "e5d4")))
}

func TestPawnOnLastRankStays(t *testing.T) {
	b := boardFrom(t, "4P3/8/8/8/8/8/8/8")
	for _, to := range Destinations(b, board.White, board.Sq(0, 4)) {
		t.Errorf("unexpected destination %s for a pawn on the last rank", to)
	}
}

func TestRookBackRankScan(t *testing.T) {
	empty := boardFrom(t, "8/8/8/8/8/8/8/R7")
	assert.True(t, IsLegal(empty, board.White, mv(t, "a1h1")))

	for col := 1; col <= 6; col++ {
		b := empty.Copy()
		b.Set(board.Sq(7, col), board.BlackPawn)
		assert.False(t, IsLegal(b, board.White, mv(t, "a1h1")), "blocker on column %d", col)
	}

	assert.False(t, IsLegal(empty, board.White, mv(t, "a1b2")))
	assert.True(t, IsLegal(empty, board.White, mv(t, "a1a8")))
}

func TestBishopBlockedAtStart(t *testing.T) {
	b := board.NewBoard()
	from := board.Sq(7, 2)
	to := board.Sq(5, 0)

	assert.False(t, IsLegal(b, board.White, board.NewMove(from, to)))

	b.Set(board.Sq(6, 1), board.NoPiece)
	assert.True(t, IsLegal(b, board.White, board.NewMove(from, to)))
	assert.False(t, IsLegal(b, board.White, board.NewMove(from, board.Sq(5, 1))), "not a diagonal")
}

func TestKnightJumpsFromOpening(t *testing.T) {
	b := board.NewBoard()
	from := board.Sq(7, 1)

	assert.True(t, IsLegal(b, board.White, board.NewMove(from, board.Sq(5, 0))))
	assert.True(t, IsLegal(b, board.White, board.NewMove(from, board.Sq(5, 2))))
	assert.ElementsMatch(t, []board.Square{board.Sq(5, 0), board.Sq(5, 2)}, Destinations(b, board.White, from))
}

func TestQueenLines(t *testing.T) {
	b := boardFrom(t, "8/8/8/8/3Q4/8/8/8")

	assert.True(t, IsLegal(b, board.White, mv(t, "d4d8")))
	assert.True(t, IsLegal(b, board.White, mv(t, "d4a4")))
	assert.True(t, IsLegal(b, board.White, mv(t, "d4h8")))
	assert.True(t, IsLegal(b, board.White, mv(t, "d4a1")))
	assert.False(t, IsLegal(b, board.White, mv(t, "d4e6")))
	assert.Len(t, Destinations(b, board.White, board.Sq(4, 3)), 27)
}

func TestKingOneStep(t *testing.T) {
	b := boardFrom(t, "8/8/8/8/4K3/8/8/8")

	assert.Len(t, Destinations(b, board.White, board.Sq(4, 4)), 8)
	assert.False(t, IsLegal(b, board.White, mv(t, "e4e6")))
	assert.False(t, IsLegal(b, board.White, mv(t, "e4g4")))
}

func TestKingMayWalkIntoCheck(t *testing.T) {
	// Black rook on d8 covers the d-file; the reduced rule set still allows Kd4.
	b := boardFrom(t, "3r4/8/8/8/4K3/8/8/8")
	assert.True(t, IsLegal(b, board.White, mv(t, "e4d4")))
}

func TestNoCastling(t *testing.T) {
	b := boardFrom(t, "8/8/8/8/8/8/8/4K2R")
	assert.False(t, IsLegal(b, board.White, mv(t, "e1g1")))
}

func TestSelfCaptureAlwaysIllegal(t *testing.T) {
	// Each white piece has a white pawn on a square it could otherwise reach.
	tests := []struct {
		name      string
		placement string
		move      string
	}{
		{"pawn", "8/8/8/8/8/3P4/4P3/8", "e2d3"},
		{"rook", "8/8/8/8/8/8/8/R2P4", "a1d1"},
		{"knight", "8/8/8/8/8/2P5/8/1N6", "b1c3"},
		{"bishop", "8/8/8/8/8/1P6/8/3B4", "d1b3"},
		{"queen", "8/8/8/8/3P4/8/8/3Q4", "d1d4"},
		{"king", "8/8/8/8/8/8/4P3/4K3", "e1e2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(t, tc.placement)
			m := mv(t, tc.move)
			assert.False(t, IsLegal(b, board.White, m))

			// The same geometry onto an enemy piece is legal, except the
			// pawn which needs a diagonal.
			b.Set(m.To, board.BlackPawn)
			assert.True(t, IsLegal(b, board.White, m))
		})
	}
}

func TestNonPawnMovesAreReversible(t *testing.T) {
	kinds := []board.Kind{board.Rook, board.Knight, board.Bishop, board.Queen, board.King}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			for row := 0; row < board.Size; row++ {
				for col := 0; col < board.Size; col++ {
					from := board.Sq(row, col)
					b := board.NewEmptyBoard()
					b.Set(from, board.NewPiece(kind, board.White))

					for _, to := range Destinations(b, board.White, from) {
						back := board.NewEmptyBoard()
						back.Set(to, board.NewPiece(kind, board.White))
						assert.True(t, IsLegal(back, board.White, board.NewMove(to, from)),
							"%s %s->%s not reversible", kind, from, to)
					}
				}
			}
		})
	}
}

func TestLegalityDependsOnlyOnCurrentBoard(t *testing.T) {
	played := board.NewBoard()
	for _, s := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6"} {
		m := mv(t, s)
		side := played.At(m.From).Color()
		require.True(t, IsLegal(played, side, m), s)
		played.Apply(m)
	}

	fresh, err := board.ParsePlacement(played.Placement())
	require.NoError(t, err)

	for _, side := range []board.Color{board.White, board.Black} {
		for row := 0; row < board.Size; row++ {
			for col := 0; col < board.Size; col++ {
				from := board.Sq(row, col)
				assert.Equal(t, Destinations(fresh, side, from), Destinations(played, side, from))
			}
		}
	}
}

func TestHasAnyMove(t *testing.T) {
	assert.True(t, HasAnyMove(board.NewBoard(), board.White))
	assert.True(t, HasAnyMove(board.NewBoard(), board.Black))

	// A lone white pawn on the last rank cannot move.
	stuck := boardFrom(t, "P7/8/8/8/8/8/8/k7")
	assert.False(t, HasAnyMove(stuck, board.White))
	assert.True(t, HasAnyMove(stuck, board.Black))
}

package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakethpatnayakuni/offline-chess/internal/board"
	"github.com/sakethpatnayakuni/offline-chess/internal/game"
)

func background(t *testing.T, term *Terminal, row, col int) tcell.Color {
	t.Helper()
	cell := term.table.GetCell(row, col)
	require.NotNil(t, cell)
	_, bg, _ := cell.Style.Decompose()
	return bg
}

func TestCellSquare(t *testing.T) {
	tests := []struct {
		row, col int
		want     board.Square
		ok       bool
	}{
		{0, 1, board.Sq(0, 0), true},
		{6, 5, board.Sq(6, 4), true},
		{7, 8, board.Sq(7, 7), true},
		{3, labelCol, board.NoSquare, false},
		{labelRow, 4, board.NoSquare, false},
		{9, 4, board.NoSquare, false},
	}
	for _, tc := range tests {
		sq, ok := cellSquare(tc.row, tc.col)
		assert.Equal(t, tc.ok, ok, "cell %d,%d", tc.row, tc.col)
		if tc.ok {
			assert.Equal(t, tc.want, sq)
		}
	}
}

func TestInitialRender(t *testing.T) {
	term := New(game.NewSession())

	assert.Equal(t, " ♜ ", term.table.GetCell(0, 1).Text)
	assert.Equal(t, " ♔ ", term.table.GetCell(7, 5).Text)
	assert.Equal(t, "   ", term.table.GetCell(4, 4).Text)
	assert.Equal(t, " 8", term.table.GetCell(0, labelCol).Text)
	assert.Equal(t, "a", term.table.GetCell(labelRow, 1).Text)

	assert.Equal(t, lightSquare, background(t, term, 0, 1))
	assert.Equal(t, darkSquare, background(t, term, 0, 2))
	assert.Contains(t, term.status.GetText(true), "White to move")
}

func TestClickSelectAndMove(t *testing.T) {
	term := New(game.NewSession())

	assert.Equal(t, game.ClickIgnored, term.click(labelRow, 3))
	assert.Equal(t, game.ClickSelected, term.click(6, 5))
	assert.Equal(t, selectedSquare, background(t, term, 6, 5))
	assert.Equal(t, hintSquare, background(t, term, 5, 5))
	assert.Equal(t, hintSquare, background(t, term, 4, 5))

	assert.Equal(t, game.ClickMoved, term.click(4, 5))
	assert.Equal(t, " ♙ ", term.table.GetCell(4, 5).Text)
	assert.Equal(t, "   ", term.table.GetCell(6, 5).Text)
	assert.NotEqual(t, hintSquare, background(t, term, 5, 5))
	assert.Contains(t, term.status.GetText(true), "Black to move")
	assert.Contains(t, term.moves.GetText(true), "1. e2e4")
}

func TestStatusListsCapturedPieces(t *testing.T) {
	term := New(game.NewSession())

	clicks := [][2]int{
		{6, 5}, {4, 5}, // e2e4
		{1, 4}, {3, 4}, // d7d5
		{4, 5}, {3, 4}, // e4xd5
	}
	for _, c := range clicks {
		term.click(c[0], c[1])
	}

	status := term.status.GetText(true)
	assert.Contains(t, status, "Black lost: ♟")
	assert.Contains(t, status, "White lost: \n")
	assert.Equal(t, " ♙ ", term.table.GetCell(3, 4).Text)
}

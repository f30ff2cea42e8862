package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakethpatnayakuni/offline-chess/internal/board"
)

func TestPrintBoard(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	require.NoError(t, PrintBoard(&buf, board.NewBoard()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "8  ♜  ♞  ♝  ♛  ♚  ♝  ♞  ♜ ", lines[0])
	assert.Equal(t, "7  ♟  ♟  ♟  ♟  ♟  ♟  ♟  ♟ ", lines[1])
	assert.Equal(t, "4 "+strings.Repeat("   ", 8), lines[4])
	assert.Equal(t, "1  ♖  ♘  ♗  ♕  ♔  ♗  ♘  ♖ ", lines[7])
	assert.Equal(t, "   a  b  c  d  e  f  g  h", lines[8])
}

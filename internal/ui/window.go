package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Options configures a desktop board.
type Options struct {
	TileSize  int
	GlyphFont string
	AssetsDir string
	Sound     bool
}

// boardGame is an ebiten.Game whose window size is known up front.
type boardGame interface {
	ebiten.Game
	WindowSize() (int, int)
}

// run opens the window and blocks until it is closed. Window close requests
// are delivered to the game, which saves state and returns ebiten.Termination.
func run(g boardGame, title string) error {
	w, h := g.WindowSize()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(g)
}

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/sakethpatnayakuni/offline-chess/internal/board"
	"github.com/sakethpatnayakuni/offline-chess/internal/game"
	"github.com/sakethpatnayakuni/offline-chess/internal/rules"
	"github.com/sakethpatnayakuni/offline-chess/internal/storage"
)

// OfflineGame is the two-player board. It implements ebiten.Game.
type OfflineGame struct {
	session  *game.Session
	store    *storage.Storage
	renderer *Renderer
	input    *InputHandler
	feedback *FeedbackManager
	panel    *Panel
}

// NewOfflineGame wires a session to a window. store may be nil.
func NewOfflineGame(session *game.Session, store *storage.Storage, opts Options) *OfflineGame {
	glyphs := LoadGlyphFace(opts.GlyphFont, float64(opts.TileSize)*0.6)
	g := &OfflineGame{
		session:  session,
		store:    store,
		renderer: NewRenderer(OfflineTheme(), opts.TileSize, glyphs),
		input:    NewInputHandler(),
	}
	boardPx := g.renderer.BoardPixels()
	g.feedback = NewFeedbackManager(boardPx, opts.Sound)
	g.panel = NewPanel(g, boardPx, boardPx,
		&Button{Label: "New Game", Primary: true, OnClick: g.NewGameAction},
		&Button{Label: "Undo", OnClick: g.UndoAction},
	)
	return g
}

// Run opens the window and blocks until it is closed.
func (g *OfflineGame) Run() error {
	return run(g, "Two Player Chess")
}

// WindowSize returns the window size in pixels.
func (g *OfflineGame) WindowSize() (int, int) {
	return g.renderer.BoardPixels() + g.panel.Width(), g.renderer.BoardPixels()
}

// Update handles game logic updates.
func (g *OfflineGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}

	g.input.Update()
	switch {
	case IsKeyJustPressed(ebiten.KeyU):
		g.UndoAction()
	case IsKeyJustPressed(ebiten.KeyN):
		g.NewGameAction()
	case IsKeyJustPressed(ebiten.KeyM):
		g.feedback.ToggleSound()
	}

	g.step()
	g.updateCursor()
	return nil
}

// step applies this frame's mouse input.
func (g *OfflineGame) step() {
	g.feedback.Update()
	if g.panel.HandleInput(g.input) {
		return
	}
	if sq, ok := g.input.ClickedSquare(g.renderer.SquareSize()); ok {
		g.handleClick(sq)
	}
}

func (g *OfflineGame) handleClick(sq board.Square) {
	if g.session.Click(sq) != game.ClickMoved {
		return
	}

	history := g.session.History()
	last := history[len(history)-1]
	g.feedback.OnMoveMade(!last.Captured.IsEmpty())

	side := g.session.SideToMove()
	if !rules.HasAnyMove(g.session.Board(), side) {
		g.feedback.OnInfo(side.String() + " has no moves")
	}
}

func (g *OfflineGame) updateCursor() {
	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *OfflineGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	if m, ok := g.session.LastMove(); ok {
		g.renderer.DrawLastMove(screen, m.From.Row, m.From.Col, m.To.Row, m.To.Col)
	}
	if sel, ok := g.session.Selected(); ok {
		g.renderer.DrawSelection(screen, sel.Row, sel.Col)
	}

	g.session.Board().ForEach(func(sq board.Square, p board.Piece) {
		g.renderer.DrawGlyph(screen, p, sq.Row, sq.Col)
	})

	for _, sq := range g.session.Hints() {
		g.renderer.DrawHint(screen, sq.Row, sq.Col)
	}

	g.panel.Draw(screen)
	g.feedback.Draw(screen)
}

// Layout returns the game's screen dimensions.
func (g *OfflineGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// Status implements PanelSource.
func (g *OfflineGame) Status() (string, color.RGBA) {
	return g.session.SideToMove().String() + " to move", textPrimary
}

// MoveLabels implements PanelSource.
func (g *OfflineGame) MoveLabels() []string {
	history := g.session.History()
	out := make([]string, len(history))
	for i, rec := range history {
		out[i] = moveLabel(rec)
	}
	return out
}

// moveLabel renders a record as e.g. "Ng1-f3" or "e4xd5".
func moveLabel(rec game.Record) string {
	label := ""
	if rec.Piece.Kind() != board.Pawn {
		label = string(rec.Piece.Kind().Letter())
	}
	sep := "-"
	if !rec.Captured.IsEmpty() {
		sep = "x"
	}
	return label + rec.Move.From.String() + sep + rec.Move.To.String()
}

// NewGameAction resets the board to the initial position.
func (g *OfflineGame) NewGameAction() {
	g.session.Reset()
	log.Info().Msg("new game")
}

// UndoAction takes back the last move.
func (g *OfflineGame) UndoAction() {
	if !g.session.Undo() {
		g.feedback.OnInfo("Nothing to undo")
	}
}

// Close saves the game so the next start can resume it.
func (g *OfflineGame) Close() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveOfflineGame(g.session.Snapshot()); err != nil {
		log.Warn().Err(err).Msg("failed to save game")
		return
	}
	log.Info().Int("moves", len(g.session.History())).Msg("game saved")
}

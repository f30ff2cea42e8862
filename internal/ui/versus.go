package ui

import (
	"context"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"

	"github.com/sakethpatnayakuni/offline-chess/internal/engine"
	"github.com/sakethpatnayakuni/offline-chess/internal/storage"
)

// resetDelay is how long the final result stays on screen before a new game.
const resetDelay = 3 * time.Second

// VersusGame is the human-versus-engine board. It implements ebiten.Game.
type VersusGame struct {
	match    *engine.Match
	opponent engine.Opponent
	store    *storage.Storage

	renderer *Renderer
	sprites  *SpriteManager
	input    *InputHandler
	feedback *FeedbackManager
	panel    *Panel

	ctx        context.Context
	cancel     context.CancelFunc
	replyDelay time.Duration
	searchTime time.Duration
	aiMove     <-chan engine.MoveResult

	started  time.Time
	result   string
	resetAt  time.Time
	engineOK bool
}

// NewVersusGame wires a match and an engine to a window. store may be nil.
// It fails when the piece images cannot be loaded.
func NewVersusGame(match *engine.Match, opp engine.Opponent, store *storage.Storage, opts Options, moveTime, replyDelay time.Duration) (*VersusGame, error) {
	sprites, err := NewSpriteManager(opts.AssetsDir, opts.TileSize)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	g := &VersusGame{
		match:      match,
		opponent:   opp,
		store:      store,
		renderer:   NewRenderer(EngineTheme(), opts.TileSize, nil),
		sprites:    sprites,
		input:      NewInputHandler(),
		ctx:        ctx,
		cancel:     cancel,
		replyDelay: replyDelay,
		searchTime: moveTime + 5*time.Second,
		started:    time.Now(),
		engineOK:   true,
	}
	boardPx := g.renderer.BoardPixels()
	g.feedback = NewFeedbackManager(boardPx, opts.Sound)
	g.panel = NewPanel(g, boardPx, boardPx,
		&Button{Label: "New Game", Primary: true, OnClick: g.NewGameAction},
	)

	if !match.HumanToMove() {
		g.startAIThinking()
	}
	return g, nil
}

// Run opens the window and blocks until it is closed.
func (g *VersusGame) Run() error {
	return run(g, "AI vs Player Chess")
}

// WindowSize returns the window size in pixels.
func (g *VersusGame) WindowSize() (int, int) {
	return g.renderer.BoardPixels() + g.panel.Width(), g.renderer.BoardPixels()
}

// Update handles game logic updates.
func (g *VersusGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}

	g.input.Update()
	switch {
	case IsKeyJustPressed(ebiten.KeyN):
		g.NewGameAction()
	case IsKeyJustPressed(ebiten.KeyM):
		g.feedback.ToggleSound()
	}

	g.step(time.Now())
	g.updateCursor()
	return nil
}

// step advances the game by one frame using the input already collected.
// The engine's reply is picked up whatever the pointer is doing.
func (g *VersusGame) step(now time.Time) {
	g.feedback.Update()

	if !g.resetAt.IsZero() && now.After(g.resetAt) {
		g.NewGameAction()
	}

	g.checkAIMove()
	if g.panel.HandleInput(g.input) {
		return
	}
	g.handleBoardInput()
}

func (g *VersusGame) handleBoardInput() {
	if g.aiMove != nil || !g.resetAt.IsZero() {
		return
	}
	sq, ok := g.input.ClickedSquare(g.renderer.SquareSize())
	if !ok {
		return
	}
	if mv := g.match.Click(sq.Row, sq.Col); mv != nil {
		log.Debug().Str("move", mv.String()).Msg("human move")
		g.afterMove()
	}
}

func (g *VersusGame) updateCursor() {
	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// afterMove reports the new status and hands the turn to the engine.
func (g *VersusGame) afterMove() {
	last := g.match.LastMove()
	g.feedback.OnMoveMade(last != nil && last.HasTag(chess.Capture))

	status := g.match.Status()
	switch {
	case status.Over():
		g.endGame(status)
		return
	case status == engine.StatusCheck:
		g.feedback.OnCheck()
	}

	if !g.match.HumanToMove() {
		g.startAIThinking()
	}
}

func (g *VersusGame) endGame(status engine.Status) {
	switch status {
	case engine.StatusCheckmate:
		g.result = g.match.Winner().Name() + " wins by checkmate!"
	case engine.StatusStalemate:
		g.result = "It's a draw by stalemate."
	case engine.StatusInsufficientMaterial:
		g.result = "Draw due to insufficient material."
	default:
		g.result = "Draw."
	}
	g.feedback.OnGameEnd(g.result, resetDelay)
	g.resetAt = time.Now().Add(resetDelay)

	log.Info().Str("outcome", g.match.Outcome()).Stringer("status", status).Msg("game over")
	g.recordGame(status)
}

func (g *VersusGame) recordGame(status engine.Status) {
	if g.store == nil {
		return
	}

	result := storage.ResultLoss
	switch g.match.Winner() {
	case g.match.Human():
		result = storage.ResultWin
	case chess.NoColor:
		result = storage.ResultDraw
	}

	rec := &storage.GameRecord{
		Result:   result,
		Outcome:  g.match.Outcome(),
		Method:   status.String(),
		PGN:      g.match.PGN(),
		Started:  g.started,
		Duration: time.Since(g.started),
	}
	if err := g.store.RecordGame(rec); err != nil {
		log.Warn().Err(err).Msg("failed to record game")
	}
}

// startAIThinking asks the engine for a move after the reply delay.
func (g *VersusGame) startAIThinking() {
	if !g.engineOK {
		return
	}
	log.Debug().Str("fen", g.match.FEN()).Msg("engine thinking")
	g.aiMove = engine.RequestMove(g.ctx, g.opponent, g.match.Position(), g.replyDelay, g.searchTime)
}

// checkAIMove applies the engine's move once it arrives.
func (g *VersusGame) checkAIMove() {
	if g.aiMove == nil {
		return
	}

	select {
	case res := <-g.aiMove:
		g.aiMove = nil
		if res.Err == nil {
			res.Err = g.match.ApplyEngineMove(res.Move)
		}
		if res.Err != nil {
			log.Error().Err(res.Err).Msg("engine move failed")
			g.engineOK = false
			g.feedback.OnInfo("Engine stopped responding")
			return
		}
		log.Debug().Str("move", res.Move.String()).Msg("engine move")
		g.afterMove()
	default:
		// Still thinking
	}
}

// Draw renders the game.
func (g *VersusGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	if last := g.match.LastMove(); last != nil {
		fr, fc := engine.ScreenCell(last.S1())
		tr, tc := engine.ScreenCell(last.S2())
		g.renderer.DrawLastMove(screen, fr, fc, tr, tc)
	}
	if sel, ok := g.match.Selected(); ok {
		row, col := engine.ScreenCell(sel)
		g.renderer.DrawSelection(screen, row, col)
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := g.match.PieceAt(row, col)
			if p == chess.NoPiece {
				continue
			}
			x, y := g.renderer.CellOrigin(row, col)
			g.sprites.DrawPieceAt(screen, p, x, y)
		}
	}

	for _, sq := range g.match.Targets() {
		row, col := engine.ScreenCell(sq)
		g.renderer.DrawHint(screen, row, col)
	}

	g.panel.Draw(screen)
	g.feedback.Draw(screen)
}

// Layout returns the game's screen dimensions.
func (g *VersusGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// Status implements PanelSource.
func (g *VersusGame) Status() (string, color.RGBA) {
	switch {
	case !g.resetAt.IsZero():
		return g.result, statusGameOver
	case !g.engineOK:
		return "Engine unavailable", statusGameOver
	case g.aiMove != nil:
		return "Engine thinking...", statusThinking
	default:
		return "Your move", textPrimary
	}
}

// MoveLabels implements PanelSource.
func (g *VersusGame) MoveLabels() []string {
	return g.match.SAN()
}

// NewGameAction abandons the current game and starts over.
func (g *VersusGame) NewGameAction() {
	g.match.Reset()
	g.aiMove = nil
	g.resetAt = time.Time{}
	g.result = ""
	g.started = time.Now()
	g.engineOK = true

	if !g.match.HumanToMove() {
		g.startAIThinking()
	}
}

// Close stops any pending search and the engine process.
func (g *VersusGame) Close() {
	g.cancel()
	if err := g.opponent.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to stop engine")
	}
}

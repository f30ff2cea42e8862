// Package engine runs a game between a human and an external UCI engine.
// Chess rules come from github.com/notnil/chess; this package only tracks
// selection, applies moves and reports the game status.
package engine

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

var (
	// ErrGameOver is returned when a move is attempted after the game ended.
	ErrGameOver = errors.New("game is over")
	// ErrNotYourTurn is returned when the human tries to move on the engine's turn.
	ErrNotYourTurn = errors.New("not the human's turn")
	// ErrIllegalMove is returned for moves not in the legal move list.
	ErrIllegalMove = errors.New("illegal move")
)

// Status is the state of the game after the last move.
type Status int

const (
	StatusOngoing Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
	StatusInsufficientMaterial
	StatusDraw
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusInsufficientMaterial:
		return "insufficient material"
	case StatusDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Over reports whether the status ends the game.
func (s Status) Over() bool {
	return s >= StatusCheckmate
}

// Match is one human-versus-engine game.
type Match struct {
	game      *chess.Game
	human     chess.Color
	selected  chess.Square
	selecting bool
}

// NewMatch starts a game from the initial position with the human on the given color.
func NewMatch(human chess.Color) *Match {
	return &Match{
		game:  chess.NewGame(chess.UseNotation(chess.UCINotation{})),
		human: human,
	}
}

// NewMatchFromFEN starts a game from fen.
func NewMatchFromFEN(fen string, human chess.Color) (*Match, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("invalid FEN: %w", err)
	}
	return &Match{
		game:  chess.NewGame(opt, chess.UseNotation(chess.UCINotation{})),
		human: human,
	}, nil
}

// Position returns the current position.
func (m *Match) Position() *chess.Position {
	return m.game.Position()
}

// Human returns the color the human plays.
func (m *Match) Human() chess.Color {
	return m.human
}

// HumanToMove reports whether it is the human's turn in an unfinished game.
func (m *Match) HumanToMove() bool {
	return m.game.Outcome() == chess.NoOutcome && m.game.Position().Turn() == m.human
}

// Moves returns the moves played so far.
func (m *Match) Moves() []*chess.Move {
	return m.game.Moves()
}

// SAN returns the moves played so far in algebraic notation.
func (m *Match) SAN() []string {
	positions := m.game.Positions()
	moves := m.game.Moves()
	out := make([]string, len(moves))
	var an chess.AlgebraicNotation
	for i, mv := range moves {
		out[i] = an.Encode(positions[i], mv)
	}
	return out
}

// LastMove returns the most recent move, or nil.
func (m *Match) LastMove() *chess.Move {
	moves := m.game.Moves()
	if len(moves) == 0 {
		return nil
	}
	return moves[len(moves)-1]
}

// PieceAt returns the piece on the screen cell (row, col), row 0 being rank 8.
func (m *Match) PieceAt(row, col int) chess.Piece {
	sq, ok := ScreenSquare(row, col)
	if !ok {
		return chess.NoPiece
	}
	return m.game.Position().Board().Piece(sq)
}

// Selected returns the selected square, if any.
func (m *Match) Selected() (chess.Square, bool) {
	return m.selected, m.selecting
}

// Targets returns the destinations of legal moves from the selected square.
func (m *Match) Targets() []chess.Square {
	if !m.selecting {
		return nil
	}
	var out []chess.Square
	seen := make(map[chess.Square]bool)
	for _, mv := range m.game.ValidMoves() {
		if mv.S1() == m.selected && !seen[mv.S2()] {
			seen[mv.S2()] = true
			out = append(out, mv.S2())
		}
	}
	return out
}

// Click handles a click on the screen cell (row, col). The first click
// selects one of the human's pieces; the second plays the move if it is
// legal and otherwise clears the selection. It returns the move played, if any.
func (m *Match) Click(row, col int) *chess.Move {
	sq, ok := ScreenSquare(row, col)
	if !ok || !m.HumanToMove() {
		m.selecting = false
		return nil
	}

	if !m.selecting {
		p := m.game.Position().Board().Piece(sq)
		if p != chess.NoPiece && p.Color() == m.human {
			m.selected = sq
			m.selecting = true
		}
		return nil
	}

	m.selecting = false
	mv, err := m.Play(m.selected, sq)
	if err != nil {
		return nil
	}
	return mv
}

// Play makes the human's move from s1 to s2. Pawns reaching the last rank
// become queens.
func (m *Match) Play(s1, s2 chess.Square) (*chess.Move, error) {
	if m.game.Outcome() != chess.NoOutcome {
		return nil, ErrGameOver
	}
	if m.game.Position().Turn() != m.human {
		return nil, ErrNotYourTurn
	}

	mv := m.findMove(s1, s2)
	if mv == nil {
		return nil, fmt.Errorf("%s%s: %w", s1, s2, ErrIllegalMove)
	}
	if err := m.game.Move(mv); err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}
	return mv, nil
}

// ApplyEngineMove plays a move chosen by the engine.
func (m *Match) ApplyEngineMove(mv *chess.Move) error {
	if mv == nil {
		return ErrNoMove
	}
	if m.game.Outcome() != chess.NoOutcome {
		return ErrGameOver
	}
	legal := m.findMove(mv.S1(), mv.S2(), mv.Promo())
	if legal == nil {
		return fmt.Errorf("%s: %w", mv, ErrIllegalMove)
	}
	if err := m.game.Move(legal); err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}
	return nil
}

// findMove looks s1->s2 up in the legal move list. When promo is given it
// must match; otherwise a queen promotion is preferred.
func (m *Match) findMove(s1, s2 chess.Square, promo ...chess.PieceType) *chess.Move {
	want := chess.Queen
	if len(promo) > 0 && promo[0] != chess.NoPieceType {
		want = promo[0]
	}

	var found *chess.Move
	for _, mv := range m.game.ValidMoves() {
		if mv.S1() != s1 || mv.S2() != s2 {
			continue
		}
		if mv.Promo() == chess.NoPieceType || mv.Promo() == want {
			return mv
		}
		found = mv
	}
	return found
}

// Status reports checkmate, stalemate, insufficient material, other draws
// or a check against the side to move.
func (m *Match) Status() Status {
	switch m.game.Method() {
	case chess.Checkmate:
		return StatusCheckmate
	case chess.Stalemate:
		return StatusStalemate
	case chess.InsufficientMaterial:
		return StatusInsufficientMaterial
	}
	if m.game.Outcome() == chess.Draw {
		return StatusDraw
	}
	if last := m.LastMove(); last != nil && last.HasTag(chess.Check) {
		return StatusCheck
	}
	return StatusOngoing
}

// Winner returns the winning color after checkmate, or chess.NoColor.
func (m *Match) Winner() chess.Color {
	switch m.game.Outcome() {
	case chess.WhiteWon:
		return chess.White
	case chess.BlackWon:
		return chess.Black
	default:
		return chess.NoColor
	}
}

// Outcome returns the result string ("1-0", "0-1", "1/2-1/2" or "*").
func (m *Match) Outcome() string {
	return m.game.Outcome().String()
}

// PGN returns the game in PGN form.
func (m *Match) PGN() string {
	return m.game.String()
}

// FEN returns the current position in FEN form.
func (m *Match) FEN() string {
	return m.game.Position().String()
}

// Reset starts over from the initial position.
func (m *Match) Reset() {
	m.game = chess.NewGame(chess.UseNotation(chess.UCINotation{}))
	m.selecting = false
}

// ScreenSquare converts a screen cell (row 0 at the top, white at the
// bottom) to a chess square.
func ScreenSquare(row, col int) (chess.Square, bool) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return chess.NoSquare, false
	}
	return chess.Square((7-row)*8 + col), true
}

// ScreenCell converts a chess square to its screen cell.
func ScreenCell(sq chess.Square) (row, col int) {
	return 7 - int(sq.Rank()), int(sq.File())
}

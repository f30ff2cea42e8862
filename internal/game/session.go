// Package game holds the state of an offline two-player game: the board,
// whose turn it is, the current selection and the move history.
package game

import (
	"github.com/rs/zerolog/log"

	"github.com/sakethpatnayakuni/offline-chess/internal/board"
	"github.com/sakethpatnayakuni/offline-chess/internal/rules"
)

// ClickResult describes what a click did to the session.
type ClickResult int

const (
	ClickIgnored ClickResult = iota
	ClickSelected
	ClickDeselected
	ClickMoved
)

// String returns a short name for the result.
func (r ClickResult) String() string {
	switch r {
	case ClickSelected:
		return "selected"
	case ClickDeselected:
		return "deselected"
	case ClickMoved:
		return "moved"
	default:
		return "ignored"
	}
}

// Record is one applied move.
type Record struct {
	Move     board.Move
	Piece    board.Piece
	Captured board.Piece
}

// Session is the state of one offline game. It is not safe for concurrent
// use; the UI event loop owns it.
type Session struct {
	start    *board.Position
	position *board.Position
	selected board.Square
	history  []Record
}

// NewSession starts a game from the standard layout with white to move.
func NewSession() *Session {
	return NewSessionFrom(board.NewPosition())
}

// NewSessionFrom starts a game from an arbitrary position.
func NewSessionFrom(pos *board.Position) *Session {
	return &Session{
		start:    pos.Copy(),
		position: pos.Copy(),
		selected: board.NoSquare,
	}
}

// Board returns the current board. Callers must treat it as read-only.
func (s *Session) Board() *board.Board {
	return s.position.Board
}

// SideToMove returns the color whose turn it is.
func (s *Session) SideToMove() board.Color {
	return s.position.SideToMove
}

// Position returns a copy of the current position.
func (s *Session) Position() *board.Position {
	return s.position.Copy()
}

// Selected returns the selected square, if any.
func (s *Session) Selected() (board.Square, bool) {
	return s.selected, s.selected != board.NoSquare
}

// Hints returns the legal destinations of the selected piece.
func (s *Session) Hints() []board.Square {
	if s.selected == board.NoSquare {
		return nil
	}
	return rules.Destinations(s.position.Board, s.position.SideToMove, s.selected)
}

// Click handles one click on sq. With nothing selected, a piece of the side
// to move becomes selected. With a selection, a legal destination plays the
// move; anything else, the selected square included, just drops the selection.
func (s *Session) Click(sq board.Square) ClickResult {
	if s.selected != board.NoSquare {
		from := s.selected
		s.selected = board.NoSquare
		if sq != from && s.Play(board.NewMove(from, sq)) {
			return ClickMoved
		}
		return ClickDeselected
	}

	piece := s.position.Board.At(sq)
	if piece == board.NoPiece || piece.Color() != s.position.SideToMove {
		return ClickIgnored
	}
	s.selected = sq
	return ClickSelected
}

// Play applies m for the side to move if it is legal and reports whether it was.
func (s *Session) Play(m board.Move) bool {
	if !rules.IsLegal(s.position.Board, s.position.SideToMove, m) {
		log.Debug().Str("move", m.String()).Str("side", s.position.SideToMove.String()).Msg("illegal move rejected")
		return false
	}

	piece := s.position.Board.At(m.From)
	captured := s.position.Board.Apply(m)
	s.history = append(s.history, Record{Move: m, Piece: piece, Captured: captured})
	s.position.SideToMove = s.position.SideToMove.Other()
	s.selected = board.NoSquare

	log.Debug().
		Str("move", m.String()).
		Str("piece", piece.String()).
		Str("captured", captured.String()).
		Msg("move applied")
	return true
}

// Undo takes back the last move. It returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.position.Board.Set(last.Move.From, last.Piece)
	s.position.Board.Set(last.Move.To, last.Captured)
	s.position.SideToMove = s.position.SideToMove.Other()
	s.selected = board.NoSquare
	return true
}

// History returns a copy of the applied moves, oldest first.
func (s *Session) History() []Record {
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

// LastMove returns the most recent move.
func (s *Session) LastMove() (board.Move, bool) {
	if len(s.history) == 0 {
		return board.Move{}, false
	}
	return s.history[len(s.history)-1].Move, true
}

// Captured returns the pieces of color c that have been taken, in order.
func (s *Session) Captured(c board.Color) []board.Piece {
	var out []board.Piece
	for _, r := range s.history {
		if r.Captured != board.NoPiece && r.Captured.Color() == c {
			out = append(out, r.Captured)
		}
	}
	return out
}

// Reset returns to the standard starting position.
func (s *Session) Reset() {
	*s = *NewSession()
}

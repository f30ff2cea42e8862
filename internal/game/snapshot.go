package game

import (
	"errors"
	"fmt"

	"github.com/sakethpatnayakuni/offline-chess/internal/board"
)

// ErrIllegalReplay is returned when a snapshot's moves cannot be replayed.
var ErrIllegalReplay = errors.New("snapshot move is not legal")

// Snapshot is the persisted form of a session: where it started and every
// move played since.
type Snapshot struct {
	Start string   `json:"start"`
	Moves []string `json:"moves"`
}

// Snapshot captures the session so it can be stored and resumed later.
func (s *Session) Snapshot() Snapshot {
	moves := make([]string, 0, len(s.history))
	for _, r := range s.history {
		moves = append(moves, r.Move.String())
	}
	return Snapshot{Start: s.start.ToFEN(), Moves: moves}
}

// Restore rebuilds a session by replaying the snapshot's moves under the
// offline rules, so undo history survives a restart.
func Restore(snap Snapshot) (*Session, error) {
	start := snap.Start
	if start == "" {
		start = board.StartFEN
	}
	pos, err := board.ParseFEN(start)
	if err != nil {
		return nil, fmt.Errorf("restore start position: %w", err)
	}
	if err := pos.Validate(); err != nil {
		return nil, fmt.Errorf("restore start position: %w", err)
	}

	s := NewSessionFrom(pos)
	for i, text := range snap.Moves {
		m, err := board.ParseMove(text)
		if err != nil {
			return nil, fmt.Errorf("restore move %d: %w", i+1, err)
		}
		if !s.Play(m) {
			return nil, fmt.Errorf("restore move %d (%s): %w", i+1, text, ErrIllegalReplay)
		}
	}
	return s, nil
}

package board

import "fmt"

// Move is a source and destination pair. It carries no promotion or
// capture metadata.
type Move struct {
	From Square
	To   Square
}

// NewMove creates a move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the move in coordinate notation (e.g., "e2e4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses coordinate notation such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("invalid move: %s", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %s: %w", s, err)
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %s: %w", s, err)
	}
	return NewMove(from, to), nil
}

// Delta returns the row and column offsets from source to destination.
func (m Move) Delta() (dRow, dCol int) {
	return m.To.Row - m.From.Row, m.To.Col - m.From.Col
}

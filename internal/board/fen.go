package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
// Castling and en passant fields are always "-": the offline rules model neither.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ParseFEN parses a FEN string and returns a Position. Only the piece
// placement and side-to-move fields are read; the rest are accepted and ignored.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid FEN: need at least 2 fields, got %d", len(parts))
	}

	b, err := ParsePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	pos := &Position{Board: b}
	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	return pos, nil
}

// ParsePlacement parses the piece placement section of a FEN string.
// The first rank listed is row 0.
func ParsePlacement(placement string) (*Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != Size {
		return nil, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	b := NewEmptyBoard()
	for row, rankStr := range ranks {
		col := 0

		for _, c := range rankStr {
			if col > 7 {
				return nil, fmt.Errorf("too many squares in rank %d", Size-row)
			}

			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			piece := PieceFromFEN(byte(c))
			if piece == NoPiece {
				return nil, fmt.Errorf("invalid piece character: %c", c)
			}
			b[row][col] = piece
			col++
		}

		if col != Size {
			return nil, fmt.Errorf("invalid number of squares in rank %d: got %d", Size-row, col)
		}
	}

	return b, nil
}

// Placement returns the FEN piece placement field for the board.
func (b *Board) Placement() string {
	var sb strings.Builder

	for row := 0; row < Size; row++ {
		empty := 0
		for col := 0; col < Size; col++ {
			piece := b[row][col]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.FEN())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < Size-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	side := "w"
	if p.SideToMove == Black {
		side = "b"
	}
	return p.Board.Placement() + " " + side + " - - 0 1"
}

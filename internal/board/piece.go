package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Code returns the one-letter color prefix used in piece codes ("w" or "b").
func (c Color) Code() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return ""
	}
}

// Forward returns the row delta a pawn of this color advances by.
// White moves toward row 0, black toward row 7.
func (c Color) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the row this color's pawns start on.
func (c Color) HomeRow() int {
	if c == White {
		return 6
	}
	return 1
}

// Kind represents the type of a chess piece.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoKind Kind = 6
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Letter returns the uppercase letter for the kind.
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K', ' '}
	if k > NoKind {
		return ' '
	}
	return letters[k]
}

// Piece combines Kind and Color into a single value.
// Encoded as: 1 + kind + color*6. The zero value is NoPiece, so a zero Board
// is empty.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1 + Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = 1 + Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = 1 + Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = 1 + Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = 1 + Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = 1 + Piece(King) + Piece(White)*6
	BlackPawn   Piece = 1 + Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = 1 + Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = 1 + Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = 1 + Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = 1 + Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = 1 + Piece(King) + Piece(Black)*6
)

// NewPiece creates a Piece from Kind and Color.
func NewPiece(k Kind, c Color) Piece {
	if k >= NoKind || c >= NoColor {
		return NoPiece
	}
	return 1 + Piece(k) + Piece(c)*6
}

// IsEmpty reports whether p is the empty variant. Values past BlackKing
// are treated as empty too.
func (p Piece) IsEmpty() bool {
	return p == NoPiece || p > BlackKing
}

// Kind returns the Kind of the piece.
func (p Piece) Kind() Kind {
	if p.IsEmpty() {
		return NoKind
	}
	return Kind((p - 1) % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p.IsEmpty() {
		return NoColor
	}
	return Color((p - 1) / 6)
}

// String returns the two-letter piece code ("wP", "bK"), or "" for NoPiece.
func (p Piece) String() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Color().Code() + string(p.Kind().Letter())
}

// FEN returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) FEN() byte {
	if p.IsEmpty() {
		return ' '
	}
	return "PNBRQKpnbrqk"[p-1]
}

var glyphs = [12]string{"♙", "♘", "♗", "♖", "♕", "♔", "♟", "♞", "♝", "♜", "♛", "♚"}

// Glyph returns the unicode chess symbol for the piece.
func (p Piece) Glyph() string {
	if p.IsEmpty() {
		return ""
	}
	return glyphs[p-1]
}

// ParsePiece parses a two-letter piece code such as "wP" or "bN".
// The empty string parses to NoPiece.
func ParsePiece(code string) (Piece, bool) {
	if code == "" {
		return NoPiece, true
	}
	if len(code) != 2 {
		return NoPiece, false
	}
	var c Color
	switch code[0] {
	case 'w':
		c = White
	case 'b':
		c = Black
	default:
		return NoPiece, false
	}
	for k := Pawn; k < NoKind; k++ {
		if k.Letter() == code[1] {
			return NewPiece(k, c), true
		}
	}
	return NoPiece, false
}

// PieceFromFEN converts a FEN character to a Piece.
func PieceFromFEN(ch byte) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

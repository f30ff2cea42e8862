package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sakethpatnayakuni/offline-chess/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedBorder color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
	GlyphColor     color.RGBA
}

// OfflineTheme is the tan and brown board of the two-player program.
func OfflineTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{0xf0, 0xd9, 0xb5, 255},
		DarkSquare:     color.RGBA{0xb5, 0x88, 0x63, 255},
		SelectedBorder: color.RGBA{255, 0, 0, 255},
		LegalMoveColor: color.RGBA{60, 60, 60, 90},
		LastMoveColor:  color.RGBA{205, 210, 106, 110},
		Background:     color.RGBA{40, 44, 52, 255},
		GlyphColor:     color.RGBA{0, 0, 0, 255},
	}
}

// EngineTheme is the cream and green board of the engine program.
func EngineTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{0xee, 0xee, 0xd2, 255},
		DarkSquare:     color.RGBA{0x76, 0x96, 0x56, 255},
		SelectedBorder: color.RGBA{255, 0, 0, 255},
		LegalMoveColor: color.RGBA{20, 40, 20, 80},
		LastMoveColor:  color.RGBA{246, 246, 105, 120},
		Background:     color.RGBA{40, 44, 52, 255},
		GlyphColor:     color.RGBA{0, 0, 0, 255},
	}
}

// Renderer draws an 8x8 board with row 0 at the top.
type Renderer struct {
	theme      *Theme
	squareSize int
	glyphs     *text.GoTextFace
	letters    *text.GoTextFace
}

// NewRenderer creates a renderer for squares of the given size. glyphs may
// be nil, in which case pieces are drawn as discs with a letter.
func NewRenderer(theme *Theme, squareSize int, glyphs *text.GoTextFace) *Renderer {
	return &Renderer{
		theme:      theme,
		squareSize: squareSize,
		glyphs:     glyphs,
		letters:    GetFaceWithSize(float64(squareSize) * 0.4),
	}
}

// cellOrigin returns the top-left pixel of a cell.
func (r *Renderer) cellOrigin(row, col int) (float32, float32) {
	return float32(col * r.squareSize), float32(row * r.squareSize)
}

// DrawBoard draws the chess board squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.squareSize)
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c := r.theme.DarkSquare
			if board.Sq(row, col).IsLight() {
				c = r.theme.LightSquare
			}
			x, y := r.cellOrigin(row, col)
			vector.DrawFilledRect(screen, x, y, size, size, c, false)
		}
	}
}

// DrawLastMove tints the two cells of the previous move.
func (r *Renderer) DrawLastMove(screen *ebiten.Image, fromRow, fromCol, toRow, toCol int) {
	r.highlightCell(screen, fromRow, fromCol, r.theme.LastMoveColor)
	r.highlightCell(screen, toRow, toCol, r.theme.LastMoveColor)
}

// DrawSelection outlines the selected cell.
func (r *Renderer) DrawSelection(screen *ebiten.Image, row, col int) {
	x, y := r.cellOrigin(row, col)
	const width = 3
	size := float32(r.squareSize)
	vector.StrokeRect(screen, x+width/2, y+width/2, size-width, size-width, width, r.theme.SelectedBorder, false)
}

// DrawHint draws a dot on a legal destination.
func (r *Renderer) DrawHint(screen *ebiten.Image, row, col int) {
	x, y := r.cellOrigin(row, col)
	half := float32(r.squareSize) / 2
	vector.DrawFilledCircle(screen, x+half, y+half, float32(r.squareSize)*0.15, r.theme.LegalMoveColor, true)
}

func (r *Renderer) highlightCell(screen *ebiten.Image, row, col int, c color.RGBA) {
	x, y := r.cellOrigin(row, col)
	size := float32(r.squareSize)
	vector.DrawFilledRect(screen, x, y, size, size, c, false)
}

// DrawGlyph draws p as a unicode chess symbol centered in its cell.
func (r *Renderer) DrawGlyph(screen *ebiten.Image, p board.Piece, row, col int) {
	if p.IsEmpty() {
		return
	}
	x, y := r.cellOrigin(row, col)
	half := float64(r.squareSize) / 2
	cx, cy := float64(x)+half, float64(y)+half

	if r.glyphs != nil {
		drawTextCentered(screen, p.Glyph(), r.glyphs, cx, cy, r.theme.GlyphColor)
		return
	}

	// Fallback: a disc in the piece color with its letter.
	fill, ink := color.RGBA{250, 250, 250, 255}, color.RGBA{20, 20, 20, 255}
	if p.Color() == board.Black {
		fill, ink = ink, fill
	}
	radius := float32(r.squareSize) * 0.36
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, fill, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), radius, 1.5, color.RGBA{20, 20, 20, 255}, true)
	drawTextCentered(screen, string(p.Kind().Letter()), r.letters, cx, cy, ink)
}

// CellOrigin returns the top-left pixel of a cell.
func (r *Renderer) CellOrigin(row, col int) (int, int) {
	return col * r.squareSize, row * r.squareSize
}

// BoardPixels returns the board edge length in pixels.
func (r *Renderer) BoardPixels() int {
	return r.squareSize * board.Size
}

// SquareSize returns the size of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

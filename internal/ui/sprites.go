package ui

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/notnil/chess"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SpriteManager holds the piece images of the engine board.
type SpriteManager struct {
	pieces      map[chess.Piece]*ebiten.Image
	size        int     // Display size (e.g., 64)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// PieceAssetName returns the SVG file name for p, e.g. "wq.svg".
func PieceAssetName(p chess.Piece) string {
	c := "w"
	if p.Color() == chess.Black {
		c = "b"
	}
	return c + p.Type().String() + ".svg"
}

// NewSpriteManager rasterizes the twelve piece SVGs found in dir. Every file
// must exist and parse.
func NewSpriteManager(dir string, size int) (*SpriteManager, error) {
	sm := &SpriteManager{
		pieces:      make(map[chess.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}

	for _, p := range allPieces {
		path := filepath.Join(dir, PieceAssetName(p))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read piece asset: %w", err)
		}
		img, err := sm.rasterize(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		sm.pieces[p] = ebiten.NewImageFromImage(img)
	}
	return sm, nil
}

var allPieces = []chess.Piece{
	chess.WhitePawn, chess.WhiteKnight, chess.WhiteBishop, chess.WhiteRook, chess.WhiteQueen, chess.WhiteKing,
	chess.BlackPawn, chess.BlackKnight, chess.BlackBishop, chess.BlackRook, chess.BlackQueen, chess.BlackKing,
}

// rasterize renders an SVG at renderScale times the display size.
func (sm *SpriteManager) rasterize(data []byte) (*image.RGBA, error) {
	renderSize := int(float64(sm.size) * sm.renderScale)

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p chess.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// DrawPieceAt draws a piece with its top-left corner at (x, y).
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p chess.Piece, x, y int) {
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}

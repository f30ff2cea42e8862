// Package ui implements both desktop boards using Ebitengine.
package ui

import (
	"bytes"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// Font faces for text rendering
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 16.0
)

// glyphFontPaths are fonts known to carry the chess symbols U+2654..U+265F.
// The Go fonts do not.
var glyphFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSerif.ttf",
	"/System/Library/Fonts/Apple Symbols.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"C:/Windows/Fonts/seguisym.ttf",
}

func init() {
	initFonts()
}

func initFonts() {
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Error().Err(err).Msg("failed to load regular font")
		return
	}
	regularFace = &text.GoTextFace{
		Source: regularSource,
		Size:   defaultFontSize,
	}

	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Error().Err(err).Msg("failed to load bold font")
		return
	}
	boldFace = &text.GoTextFace{
		Source: boldSource,
		Size:   titleFontSize,
	}
}

// LoadGlyphFace returns a face able to draw the chess symbols. path is tried
// first, then the well-known platform fonts. It returns nil when none loads.
func LoadGlyphFace(path string, size float64) *text.GoTextFace {
	candidates := glyphFontPaths
	if path != "" {
		candidates = append([]string{path}, glyphFontPaths...)
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("unreadable glyph font")
			continue
		}
		log.Debug().Str("path", p).Msg("glyph font loaded")
		return &text.GoTextFace{Source: src, Size: size}
	}

	log.Warn().Msg("no font with chess symbols found, drawing letters instead")
	return nil
}

// GetRegularFace returns the regular font face.
func GetRegularFace() *text.GoTextFace {
	return regularFace
}

// GetBoldFace returns the bold font face.
func GetBoldFace() *text.GoTextFace {
	return boldFace
}

// GetFaceWithSize returns a font face with a custom size.
func GetFaceWithSize(size float64) *text.GoTextFace {
	if boldFace == nil {
		return nil
	}
	return &text.GoTextFace{
		Source: boldFace.Source,
		Size:   size,
	}
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}

func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y int, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func drawTextCentered(screen *ebiten.Image, s string, face *text.GoTextFace, centerX, centerY float64, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

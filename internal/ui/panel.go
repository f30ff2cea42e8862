package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel dimensions
const (
	PanelWidth      = 220
	PanelPadding    = 16
	SectionSpacing  = 24
	ButtonHeight    = 34
	SectionLabelH   = 20
	StatusBarHeight = 64
	moveRowHeight   = 22
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}
	buttonBg        = color.RGBA{50, 54, 60, 255}
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}
	buttonPressedBg = color.RGBA{40, 44, 50, 255}
	buttonBorder    = color.RGBA{70, 75, 82, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	accentHover     = color.RGBA{96, 195, 140, 255}
	accentPressed   = color.RGBA{56, 155, 100, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{160, 165, 175, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	dividerColor    = color.RGBA{60, 65, 72, 255}
	moveRowAlt      = color.RGBA{44, 48, 54, 255}
	statusThinking  = color.RGBA{100, 180, 255, 255}
	statusGameOver  = color.RGBA{255, 200, 80, 255}
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

func (b *Button) contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

// PanelSource supplies what the side panel shows.
type PanelSource interface {
	// Status returns the status line and its color.
	Status() (string, color.RGBA)
	// MoveLabels returns the moves played, one label per ply.
	MoveLabels() []string
}

// Panel is the side panel with buttons, move history and status.
type Panel struct {
	source  PanelSource
	x       int
	height  int
	buttons []*Button

	scrollY    int
	maxScrollY int
}

// NewPanel creates a panel starting at pixel column x. Buttons are stacked
// at the top in the order given.
func NewPanel(source PanelSource, x, height int, buttons ...*Button) *Panel {
	p := &Panel{source: source, x: x, height: height, buttons: buttons}

	contentX := x + PanelPadding
	contentW := PanelWidth - PanelPadding*2
	y := PanelPadding
	for _, btn := range buttons {
		btn.X, btn.Y, btn.W, btn.H = contentX, y, contentW, ButtonHeight
		y += ButtonHeight + 8
	}
	return p
}

// Width returns the panel width in pixels.
func (p *Panel) Width() int {
	return PanelWidth
}

func (p *Panel) historyStartY() int {
	y := PanelPadding
	if n := len(p.buttons); n > 0 {
		last := p.buttons[n-1]
		y = last.Y + last.H
	}
	return y + SectionSpacing - 4
}

// HandleInput processes input for the panel. It returns true only when a
// button click was consumed; hovering or scrolling leaves the frame to the
// caller.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	listY := p.historyStartY()
	if wheel := input.WheelY(); wheel != 0 && input.IsInBounds(p.x, listY, PanelWidth, p.height-StatusBarHeight-listY) {
		p.scrollY -= int(wheel * 30)
		p.scrollY = max(0, min(p.scrollY, p.maxScrollY))
	}

	for _, btn := range p.buttons {
		btn.hovered = btn.contains(mx, my)
		btn.pressed = input.IsLeftPressed() && btn.hovered
	}

	if input.IsLeftJustPressed() {
		for _, btn := range p.buttons {
			if btn.hovered && btn.OnClick != nil {
				btn.OnClick()
				return true
			}
		}
	}
	return false
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	for _, btn := range p.buttons {
		if btn.hovered {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(p.x), 0, float32(PanelWidth), float32(p.height), panelBg, false)

	for _, btn := range p.buttons {
		p.drawButton(screen, btn)
	}

	historyY := p.historyStartY()
	drawText(screen, "Moves", GetRegularFace(), p.x+PanelPadding, historyY, textMuted)
	p.drawMoveHistory(screen, historyY+SectionLabelH+4)

	p.drawStatusBar(screen)
}

func (p *Panel) drawButton(screen *ebiten.Image, btn *Button) {
	bg, border, label := buttonBg, buttonBorder, textSecondary
	if btn.Primary {
		bg, border, label = accentColor, accentPressed, textPrimary
	}
	switch {
	case btn.pressed && btn.Primary:
		bg = accentPressed
	case btn.pressed:
		bg = buttonPressedBg
	case btn.hovered && btn.Primary:
		bg = accentHover
	case btn.hovered:
		bg, border = buttonHoverBg, accentColor
	}

	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bg, false)
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 1, border, false)
	drawTextCentered(screen, btn.Label, GetRegularFace(), float64(btn.X)+float64(btn.W)/2, float64(btn.Y)+float64(btn.H)/2, label)
}

func (p *Panel) drawMoveHistory(screen *ebiten.Image, startY int) {
	face := GetRegularFace()
	x := p.x + PanelPadding

	moves := p.source.MoveLabels()
	if len(moves) == 0 {
		drawText(screen, "No moves yet", face, x, startY+5, textMuted)
		return
	}

	maxY := p.height - StatusBarHeight - 6
	visibleHeight := maxY - startY

	totalRows := (len(moves) + 1) / 2
	contentHeight := totalRows * moveRowHeight
	p.maxScrollY = max(0, contentHeight-visibleHeight)
	p.scrollY = min(p.scrollY, p.maxScrollY)

	startRow := p.scrollY / moveRowHeight
	y := startY - (p.scrollY % moveRowHeight)

	for i := startRow * 2; i < len(moves); i += 2 {
		if y > maxY-moveRowHeight {
			break
		}
		if y >= startY {
			if (i/2)%2 == 1 {
				vector.DrawFilledRect(screen, float32(x-4), float32(y-2),
					float32(PanelWidth-PanelPadding*2+8), float32(moveRowHeight), moveRowAlt, false)
			}
			drawText(screen, fmt.Sprintf("%d.", i/2+1), face, x, y, textMuted)
			drawText(screen, moves[i], face, x+34, y, textPrimary)
			if i+1 < len(moves) {
				drawText(screen, moves[i+1], face, x+104, y, textPrimary)
			}
		}
		y += moveRowHeight
	}

	if p.maxScrollY > 0 {
		scrollPct := float32(p.scrollY) / float32(p.maxScrollY)
		indicatorH := max(20, float32(visibleHeight)*float32(visibleHeight)/float32(contentHeight))
		indicatorY := float32(startY) + scrollPct*(float32(visibleHeight)-indicatorH)
		vector.DrawFilledRect(screen, float32(p.x+PanelWidth-8), indicatorY, 4, indicatorH, textMuted, false)
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := p.height - StatusBarHeight + 10
	x := p.x + PanelPadding

	vector.DrawFilledRect(screen, float32(x), float32(statusY-10),
		float32(PanelWidth-PanelPadding*2), 1, dividerColor, false)

	status, c := p.source.Status()
	drawText(screen, status, GetBoldFace(), x, statusY+8, c)
}

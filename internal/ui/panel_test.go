package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticSource struct{}

func (staticSource) Status() (string, color.RGBA) { return "White to move", textPrimary }
func (staticSource) MoveLabels() []string        { return nil }

func TestPanelHandleInput(t *testing.T) {
	clicks := 0
	btn := &Button{Label: "New Game", OnClick: func() { clicks++ }}
	p := NewPanel(staticSource{}, 512, 512, btn)

	// Hovering a button is not a consumed frame.
	in := &InputHandler{mouseX: btn.X + 5, mouseY: btn.Y + 5}
	assert.False(t, p.HandleInput(in))
	assert.True(t, p.AnyButtonHovered())
	assert.Zero(t, clicks)

	// Neither is a click on empty panel space.
	in = &InputHandler{mouseX: 600, mouseY: 400, leftJustPressed: true, leftPressed: true}
	assert.False(t, p.HandleInput(in))
	assert.False(t, p.AnyButtonHovered())
	assert.Zero(t, clicks)

	in = &InputHandler{mouseX: btn.X + 5, mouseY: btn.Y + 5, leftJustPressed: true, leftPressed: true}
	assert.True(t, p.HandleInput(in))
	assert.Equal(t, 1, clicks)
}

func TestPanelWheelScrollsMoveList(t *testing.T) {
	p := NewPanel(staticSource{}, 512, 512)
	p.maxScrollY = 100

	in := &InputHandler{mouseX: 600, mouseY: 200, wheelY: -1}
	assert.False(t, p.HandleInput(in))
	assert.Equal(t, 30, p.scrollY)

	// Over the board the wheel does nothing.
	in = &InputHandler{mouseX: 100, mouseY: 200, wheelY: -1}
	p.HandleInput(in)
	assert.Equal(t, 30, p.scrollY)

	in = &InputHandler{mouseX: 600, mouseY: 200, wheelY: 5}
	p.HandleInput(in)
	assert.Equal(t, 0, p.scrollY)
}

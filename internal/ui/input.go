package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sakethpatnayakuni/offline-chess/internal/board"
)

// InputHandler manages mouse and keyboard input.
type InputHandler struct {
	mouseX, mouseY  int
	wheelY          float64
	leftPressed     bool
	leftJustPressed bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	ih.mouseX, ih.mouseY = ebiten.CursorPosition()
	_, ih.wheelY = ebiten.Wheel()
	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// MousePosition returns the current mouse position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// WheelY returns this frame's vertical wheel movement.
func (ih *InputHandler) WheelY() float64 {
	return ih.wheelY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftPressed returns true if the left mouse button is currently pressed.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

// IsInBounds returns true if the mouse is within the given rectangle.
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return ih.mouseX >= x && ih.mouseX < x+w && ih.mouseY >= y && ih.mouseY < y+h
}

// ClickedSquare returns the board square under a fresh left click.
func (ih *InputHandler) ClickedSquare(tile int) (board.Square, bool) {
	if !ih.leftJustPressed {
		return board.NoSquare, false
	}
	return board.SquareFromPixel(ih.mouseX, ih.mouseY, tile)
}

// IsKeyJustPressed returns true if the specified key was just pressed.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

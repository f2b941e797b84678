package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

//go:generate go tool mockgen -destination=./mocks/input_mock.go -package=mocks . InputSource

// Input is one tick's worth of sampled controls
type Input struct {
	Left, Right, Up, Down bool

	// Fire is set only on the tick the fire button went from released to pressed
	Fire bool

	// Cursor position in the same coordinates as entity positions
	Cursor mgl64.Vec2

	// ToggleDebug flips the per-player debug text (F1)
	ToggleDebug bool
}

// Move returns the movement vector, clamped to unit length so diagonals are not faster.
// Screen coordinates: +x right, +y down.
func (in Input) Move() mgl64.Vec2 {
	var v mgl64.Vec2
	if in.Left {
		v[0] -= 1
	}
	if in.Right {
		v[0] += 1
	}
	if in.Up {
		v[1] -= 1
	}
	if in.Down {
		v[1] += 1
	}
	return clampLength(v, 1)
}

// clampLength scales v down to max length if it is longer
func clampLength(v mgl64.Vec2, maxLen float64) mgl64.Vec2 {
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	return v.Mul(maxLen / l)
}

// Trigger detects the rising edge of a held button
type Trigger struct {
	prev bool
}

// Update records the current state and reports whether it just became active
func (t *Trigger) Update(held bool) bool {
	edge := held && !t.prev
	t.prev = held
	return edge
}

// InputSource samples controls once per tick
type InputSource interface {
	Poll() Input
}

// KeyboardInput reads arrows/WASD, the left mouse button and the cursor from ebiten
type KeyboardInput struct {
	fire Trigger
}

// NewKeyboardInput creates a new keyboard/mouse input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll implements InputSource
func (k *KeyboardInput) Poll() Input {
	cx, cy := ebiten.CursorPosition()
	return Input{
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:     ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:   ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Fire:   k.fire.Update(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)),
		Cursor: mgl64.Vec2{float64(cx), float64(cy)},

		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}
}

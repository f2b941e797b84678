package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// hpRadiusScale converts hit points into the rendered radius
const hpRadiusScale = 0.2

var (
	colorPlayer    = color.Black
	colorDebugText = color.RGBA{40, 40, 160, 255}
)

// Player is a controllable circle that fires bullets toward the cursor.
// All fields are values, so copying a Player never shares state.
type Player struct {
	// ID labels the player in debug output
	ID string

	// Position in screen coordinates
	Position mgl64.Vec2

	// Speed in pixels per second
	Speed float64

	// HP drives the rendered radius
	HP uint32

	// BulletSpeed is given to every bullet this player fires
	BulletSpeed float64
}

// NewPlayer creates a player with a fresh ID
func NewPlayer(pos mgl64.Vec2, speed float64, hp uint32, bulletSpeed float64) Player {
	return Player{
		ID:          uuid.NewString(),
		Position:    pos,
		Speed:       speed,
		HP:          hp,
		BulletSpeed: bulletSpeed,
	}
}

// Clone returns an independent copy with its own ID
func (p Player) Clone() Player {
	c := p
	c.ID = uuid.NewString()
	return c
}

// Update moves the player and returns a bullet if the fire edge is set this tick
func (p *Player) Update(in Input, dt float64) (Bullet, bool) {
	p.Position = p.Position.Add(in.Move().Mul(p.Speed * dt))

	if !in.Fire {
		return Bullet{}, false
	}
	toCursor := in.Cursor.Sub(p.Position)
	return Bullet{
		Position: p.Position,
		Heading:  math.Atan2(toCursor.Y(), toCursor.X()),
		Speed:    p.BulletSpeed,
	}, true
}

// Radius is the rendered radius
func (p *Player) Radius() float64 {
	return float64(p.HP) * hpRadiusScale
}

// Draw renders the player as a filled circle
func (p *Player) Draw(s Surface) {
	s.DrawCircle(p.Position.X(), p.Position.Y(), p.Radius(), colorPlayer)
}

// DrawDebug prints the player's label, hp and position next to it
func (p *Player) DrawDebug(s Surface) {
	label := fmt.Sprintf("%s hp:%d (%.0f, %.0f)", shortID(p.ID), p.HP, p.Position.X(), p.Position.Y())
	r := p.Radius()
	s.DrawText(label, p.Position.X()+r+4, p.Position.Y()-r, debugTextSize, colorDebugText)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

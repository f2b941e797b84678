package game

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const bulletRadius = 3.0

var colorBullet = color.RGBA{200, 30, 30, 255}

// Bullet is a projectile travelling in a straight line
type Bullet struct {
	// Position in screen coordinates
	Position mgl64.Vec2

	// Heading in radians, 0 points right (east)
	Heading float64

	// Speed in pixels per second
	Speed float64
}

// Direction returns the unit vector for a heading
func Direction(heading float64) mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(heading), math.Sin(heading)}
}

// Advance moves the bullet along its heading for dt seconds
func (b *Bullet) Advance(dt float64) {
	b.Position = b.Position.Add(Direction(b.Heading).Mul(b.Speed * dt))
}

// Draw renders the bullet as a small filled circle
func (b *Bullet) Draw(s Surface) {
	s.DrawCircle(b.Position.X(), b.Position.Y(), bulletRadius, colorBullet)
}

// BulletSet owns the active bullets.
// OnRemove is called once for every bullet dropped by Prune.
type BulletSet struct {
	bullets  []Bullet
	OnRemove func(Bullet)
}

// NewBulletSet creates an empty set with the given removal hook (may be nil)
func NewBulletSet(onRemove func(Bullet)) *BulletSet {
	return &BulletSet{
		bullets:  make([]Bullet, 0, 64),
		OnRemove: onRemove,
	}
}

// Add appends a bullet
func (s *BulletSet) Add(b Bullet) {
	s.bullets = append(s.bullets, b)
}

// Len returns the number of active bullets
func (s *BulletSet) Len() int {
	return len(s.bullets)
}

// All returns the active bullets. The slice is only valid until the next Add or Prune.
func (s *BulletSet) All() []Bullet {
	return s.bullets
}

// Advance moves every bullet by dt
func (s *BulletSet) Advance(dt float64) {
	for i := range s.bullets {
		s.bullets[i].Advance(dt)
	}
}

// Prune drops the bullets the policy rejects, keeping the order of the rest.
// Returns the number of bullets dropped.
func (s *BulletSet) Prune(policy RetentionPolicy, view View) int {
	kept := s.bullets[:0]
	dropped := 0
	for i := range s.bullets {
		b := s.bullets[i]
		if policy.Keep(b, view) {
			kept = append(kept, b)
			continue
		}
		dropped++
		if s.OnRemove != nil {
			s.OnRemove(b)
		}
	}
	// Clear the tail so the backing array doesn't hold stale values
	clear(s.bullets[len(kept):])
	s.bullets = kept
	return dropped
}

package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// View is the per-tick context a retention policy can look at
type View struct {
	Width, Height float64

	// Reference is the position of the first player
	Reference mgl64.Vec2
}

// RetentionPolicy decides whether a bullet stays in the active set
type RetentionPolicy interface {
	Keep(b Bullet, v View) bool
}

// RetentionFunc adapts a plain function to RetentionPolicy
type RetentionFunc func(b Bullet, v View) bool

// Keep calls f(b, v)
func (f RetentionFunc) Keep(b Bullet, v View) bool {
	return f(b, v)
}

// ScreenBound keeps bullets left of the screen's right edge minus Margin
type ScreenBound struct {
	Margin float64
}

// Keep implements RetentionPolicy
func (s ScreenBound) Keep(b Bullet, v View) bool {
	return b.Position.X() < v.Width-s.Margin
}

// DistanceBound keeps bullets closer than Radius to the view's reference point
type DistanceBound struct {
	Radius float64
}

// Keep implements RetentionPolicy
func (d DistanceBound) Keep(b Bullet, v View) bool {
	return b.Position.Sub(v.Reference).Len() < d.Radius
}

// NewRetentionPolicy builds the policy selected in the config
func NewRetentionPolicy(cfg RetentionConfig) (RetentionPolicy, error) {
	switch cfg.Kind {
	case RetentionScreen:
		return ScreenBound{Margin: cfg.Margin}, nil
	case RetentionDistance:
		return DistanceBound{Radius: cfg.Radius}, nil
	default:
		return nil, fmt.Errorf("%w: unknown retention kind %q", ErrInvalidConfig, cfg.Kind)
	}
}

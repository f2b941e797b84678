package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

const (
	debugTextSize = 13.0
	hudTextSize   = 13.0
)

// Surface is the set of drawing primitives the game renders with
type Surface interface {
	Clear(clr color.Color)
	DrawCircle(x, y, radius float64, clr color.Color)
	DrawText(s string, x, y, size float64, clr color.Color)
}

// basicFace is the bitmap font used for all text; its native height is 13px
var basicFace = text.NewGoXFace(basicfont.Face7x13)

// ScreenSurface draws onto an ebiten image
type ScreenSurface struct {
	screen *ebiten.Image
}

// NewScreenSurface wraps the frame's screen image
func NewScreenSurface(screen *ebiten.Image) *ScreenSurface {
	return &ScreenSurface{screen: screen}
}

// Clear fills the whole frame
func (s *ScreenSurface) Clear(clr color.Color) {
	s.screen.Fill(clr)
}

// DrawCircle draws a filled, anti-aliased circle
func (s *ScreenSurface) DrawCircle(x, y, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.screen, float32(x), float32(y), float32(radius), clr, true)
}

// DrawText draws s with its top-left corner at (x, y), scaled to size pixels tall
func (s *ScreenSurface) DrawText(str string, x, y, size float64, clr color.Color) {
	scale := size / float64(basicfont.Face7x13.Height)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.screen, str, basicFace, op)
}

package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// overlaySurface paints particles onto an offscreen image that is later
// composited over the page.
type overlaySurface struct {
	img *ebiten.Image
}

func (s overlaySurface) ClearRect(x, y, w, h float64) {
	if s.img == nil {
		return
	}
	s.img.Clear()
}

func (s overlaySurface) FillCircle(x, y, r float64, c color.NRGBA) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

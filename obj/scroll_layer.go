package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax/common"
	"github.com/milk9111/parallax/render"
)

// ScrollLayer tiles one image across the screen and scrolls it forever. Two
// placements of the image leapfrog each other: a holds the scroll offset and
// b sits exactly one screen away on the side new content enters from.
type ScrollLayer struct {
	canvas render.Canvas
	img    *ebiten.Image
	a, b   common.Rect
	width  float64
	height float64
}

// NewScrollLayer creates a full-screen layer with b primed one screen to the
// right of a.
func NewScrollLayer(canvas render.Canvas, img *ebiten.Image, width, height float64) *ScrollLayer {
	return &ScrollLayer{
		canvas: canvas,
		img:    img,
		a:      common.Rect{Width: width, Height: height},
		b:      common.Rect{X: width, Width: width, Height: height},
		width:  width,
		height: height,
	}
}

func (l *ScrollLayer) RectA() common.Rect { return l.a }
func (l *ScrollLayer) RectB() common.Rect { return l.b }

// OffsetX scrolls horizontally. Negative moves left, positive moves right,
// zero does nothing.
func (l *ScrollLayer) OffsetX(delta float64) {
	if delta == 0 {
		return
	}
	l.a.X, l.b.X = leapfrog(l.a.X, delta, l.width)
	l.b.Y = l.a.Y
}

// OffsetY scrolls vertically. Negative moves up, positive moves down, zero
// does nothing.
func (l *ScrollLayer) OffsetY(delta float64) {
	if delta == 0 {
		return
	}
	l.a.Y, l.b.Y = leapfrog(l.a.Y, delta, l.height)
	l.b.X = l.a.X
}

// leapfrog moves pos by delta and returns both placements. Scrolling toward
// negative keeps a in (-dim, 0] with b trailing at a+dim; scrolling toward
// positive keeps a in [0, dim) with b at a-dim. Either way the pair covers
// [0, dim] exactly.
func leapfrog(pos, delta, dim float64) (a, b float64) {
	if dim <= 0 {
		return pos + delta, pos + delta
	}
	a = math.Mod(pos+delta, dim)
	if delta < 0 {
		if a > 0 {
			a -= dim
		}
		return a, a + dim
	}
	if a < 0 {
		a += dim
	}
	if a >= dim {
		a = 0
	}
	return a, a - dim
}

// Render draws both placements every call. The one that is off screen is
// clipped by the backend.
func (l *ScrollLayer) Render() {
	if l == nil || l.canvas == nil {
		return
	}
	l.canvas.Draw(l.img, l.a, 0, common.Vector2{})
	l.canvas.Draw(l.img, l.b, 0, common.Vector2{})
}

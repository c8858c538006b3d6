package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax/common"
)

// Texture is an image bound to a destination rectangle with a rotation.
type Texture struct {
	canvas Canvas
	img    *ebiten.Image
	rect   common.Rect
	center common.Vector2
	angle  float64
}

// NewTexture binds img to rect and rotates it about the rect's middle.
func NewTexture(canvas Canvas, img *ebiten.Image, rect common.Rect) *Texture {
	return NewTextureWithCenter(canvas, img, rect, rect.Center())
}

// NewTextureWithCenter binds img to rect with a custom rotation center,
// relative to the rect's top-left corner.
func NewTextureWithCenter(canvas Canvas, img *ebiten.Image, rect common.Rect, center common.Vector2) *Texture {
	return &Texture{canvas: canvas, img: img, rect: rect, center: center}
}

func (t *Texture) SetAngleDegrees(deg float64) {
	t.angle = deg
}

func (t *Texture) SetAngleRadians(rad float64) {
	t.angle = common.RadToDeg(rad)
}

func (t *Texture) AngleDegrees() float64 {
	return t.angle
}

// SetLocation centers the texture on (x, y).
func (t *Texture) SetLocation(x, y float64) {
	t.rect.X = x - t.rect.Width/2
	t.rect.Y = y - t.rect.Height/2
}

func (t *Texture) Rect() common.Rect {
	return t.rect
}

func (t *Texture) Render() {
	if t == nil || t.canvas == nil {
		return
	}
	t.canvas.Draw(t.img, t.rect, t.angle, t.center)
}

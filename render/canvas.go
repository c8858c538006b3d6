package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax/common"
)

// Canvas accepts draw calls. Rotation is in degrees, clockwise on screen,
// about center, which is relative to dst's top-left corner.
type Canvas interface {
	Draw(img *ebiten.Image, dst common.Rect, angleDeg float64, center common.Vector2)
}

// DrawCommand is one recorded draw call.
type DrawCommand struct {
	Image    *ebiten.Image
	Dst      common.Rect
	AngleDeg float64
	Center   common.Vector2
}

// Frame records draw calls issued during Update and replays them onto the
// screen in Draw, in the order they were issued.
type Frame struct {
	cmds []DrawCommand
}

func NewFrame() *Frame {
	return &Frame{cmds: make([]DrawCommand, 0, 16)}
}

func (f *Frame) Draw(img *ebiten.Image, dst common.Rect, angleDeg float64, center common.Vector2) {
	f.cmds = append(f.cmds, DrawCommand{Image: img, Dst: dst, AngleDeg: angleDeg, Center: center})
}

// Reset clears recorded commands, keeping the backing storage.
func (f *Frame) Reset() {
	f.cmds = f.cmds[:0]
}

func (f *Frame) Commands() []DrawCommand {
	return f.cmds
}

// Flush draws every recorded command onto screen. Commands with a nil image
// or an empty destination are skipped; placements that fall outside the
// screen are left for ebiten to clip.
func (f *Frame) Flush(screen *ebiten.Image) {
	if f == nil || screen == nil {
		return
	}
	for _, c := range f.cmds {
		if c.Image == nil || c.Dst.Width <= 0 || c.Dst.Height <= 0 {
			continue
		}
		screen.DrawImage(c.Image, c.Options())
	}
}

// Options builds the GeoM for a command: scale the source to the destination
// size, rotate about Center, then move to the destination.
func (c DrawCommand) Options() *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	b := c.Image.Bounds()
	if b.Dx() > 0 && b.Dy() > 0 {
		op.GeoM.Scale(c.Dst.Width/float64(b.Dx()), c.Dst.Height/float64(b.Dy()))
	}
	if c.AngleDeg != 0 {
		op.GeoM.Translate(-c.Center.X, -c.Center.Y)
		op.GeoM.Rotate(common.DegToRad(c.AngleDeg))
		op.GeoM.Translate(c.Center.X, c.Center.Y)
	}
	op.GeoM.Translate(c.Dst.X, c.Dst.Y)
	op.Filter = ebiten.FilterLinear
	return op
}

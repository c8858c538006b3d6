package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax/render"
)

// LayerStack paints ScrollLayers back to front in the order they were
// appended. Layers can't be removed or reordered.
type LayerStack struct {
	canvas render.Canvas
	width  float64
	height float64
	layers []*ScrollLayer
}

func NewLayerStack(canvas render.Canvas, width, height float64) *LayerStack {
	return &LayerStack{canvas: canvas, width: width, height: height}
}

// NewLayerStackFromFiles builds a stack with one layer per path, first path
// at the back.
func NewLayerStackFromFiles(canvas render.Canvas, width, height float64, paths ...string) (*LayerStack, error) {
	s := NewLayerStack(canvas, width, height)
	for _, p := range paths {
		if err := s.AppendFile(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Append adds a layer on top of the existing ones and returns its index.
func (s *LayerStack) Append(img *ebiten.Image) int {
	s.layers = append(s.layers, NewScrollLayer(s.canvas, img, s.width, s.height))
	return len(s.layers) - 1
}

// AppendFile loads path and appends it. Load failures come back as
// *render.LoadError.
func (s *LayerStack) AppendFile(path string) error {
	img, err := render.LoadImage(path)
	if err != nil {
		return err
	}
	s.Append(img)
	return nil
}

func (s *LayerStack) Len() int { return len(s.layers) }

// Layer returns the layer at the 0-based index, or nil.
func (s *LayerStack) Layer(i int) *ScrollLayer {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	return s.layers[i]
}

// Offset scrolls the layer at the 0-based index, x first. An index outside
// the stack is ignored. A layer only tiles along one axis: when dx and dy are
// both non-zero, b ends up one screen away from a vertically and lined up
// with it horizontally.
func (s *LayerStack) Offset(i int, dx, dy float64) {
	l := s.Layer(i)
	if l == nil {
		return
	}
	l.OffsetX(dx)
	l.OffsetY(dy)
}

func (s *LayerStack) Render() {
	for _, l := range s.layers {
		l.Render()
	}
}

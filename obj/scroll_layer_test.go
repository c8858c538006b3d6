package obj

import (
	"math"
	"testing"

	"github.com/milk9111/parallax/render"
)

// covers reports whether the two placements tile [0, dim] with no gap.
func covers(a, b, dim float64) bool {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return hi-lo == dim && lo <= 0 && hi+dim >= dim
}

func TestScrollLayerZeroIsNoop(t *testing.T) {
	l := NewScrollLayer(nil, nil, 100, 50)
	l.OffsetX(-30)
	a, b := l.RectA(), l.RectB()

	l.OffsetX(0)
	l.OffsetY(0)
	if l.RectA() != a || l.RectB() != b {
		t.Fatalf("zero offset changed state: %v %v -> %v %v", a, b, l.RectA(), l.RectB())
	}
}

func TestScrollLayerOffsetX(t *testing.T) {
	cases := []struct {
		name         string
		deltas       []float64
		wantA, wantB float64
	}{
		{"left_small", []float64{-3}, -3, 97},
		{"left_wraps", []float64{-60, -60}, -20, 80},
		{"right_small", []float64{5}, 5, -95},
		{"right_wraps", []float64{60, 60}, 20, -80},
		{"large_left", []float64{-1050}, -50, 50},
		{"large_right", []float64{1030}, 30, -70},
		{"reverse_after_right", []float64{8, -1}, -93, 7},
		{"reverse_after_left", []float64{-8, 1}, 93, -7},
		{"exact_screen_left", []float64{-100}, 0, 100},
		{"exact_screen_right", []float64{100}, 0, -100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewScrollLayer(nil, nil, 100, 50)
			for _, d := range c.deltas {
				l.OffsetX(d)
			}
			a, b := l.RectA(), l.RectB()
			if a.X != c.wantA || b.X != c.wantB {
				t.Fatalf("expected a=%v b=%v, got a=%v b=%v", c.wantA, c.wantB, a.X, b.X)
			}
			if a.Y != b.Y {
				t.Fatalf("expected placements aligned on y, got %v and %v", a.Y, b.Y)
			}
			if !covers(a.X, b.X, 100) {
				t.Fatalf("gap in coverage: a=%v b=%v", a.X, b.X)
			}
		})
	}
}

func TestScrollLayerOffsetY(t *testing.T) {
	l := NewScrollLayer(nil, nil, 100, 50)

	l.OffsetY(1)
	if a, b := l.RectA(), l.RectB(); a.Y != 1 || b.Y != -49 || b.X != a.X {
		t.Fatalf("expected a.y=1 b.y=-49 aligned on x, got a=%v b=%v", a, b)
	}

	for i := 0; i < 60; i++ {
		l.OffsetY(1)
	}
	a, b := l.RectA(), l.RectB()
	if a.Y != 11 || b.Y != -39 {
		t.Fatalf("expected a.y=11 b.y=-39, got a=%v b=%v", a.Y, b.Y)
	}

	l.OffsetY(-20)
	a, b = l.RectA(), l.RectB()
	if !covers(a.Y, b.Y, 50) {
		t.Fatalf("gap after reversing: a=%v b=%v", a.Y, b.Y)
	}
}

func TestScrollLayerRoundTrip(t *testing.T) {
	for _, dim := range []float64{1, 7, 100, 1280} {
		for _, d := range []float64{1, 3, 6, 99, 100, 101, 2500, -1, -3, -99, -100, -101, -2500} {
			l := NewScrollLayer(nil, nil, dim, dim)
			start := l.RectA()

			l.OffsetX(d)
			l.OffsetX(-d)
			afterFirst := l.RectA()
			afterFirstB := l.RectB()
			if afterFirst.X != start.X {
				t.Fatalf("dim=%v d=%v: expected a to return to %v, got %v", dim, d, start.X, afterFirst.X)
			}

			for n := 0; n < 25; n++ {
				l.OffsetX(d)
				l.OffsetX(-d)
				if l.RectA() != afterFirst || l.RectB() != afterFirstB {
					t.Fatalf("dim=%v d=%v cycle %d: state drifted to a=%v b=%v", dim, d, n, l.RectA(), l.RectB())
				}
			}
			// b sits on the side the last delta came from. Each cycle ends
			// with -d, so only d > 0 finishes moving left like a fresh layer;
			// for d < 0 b trails one screen to the left instead.
			if d > 0 && l.RectB() != NewScrollLayer(nil, nil, dim, dim).RectB() {
				t.Fatalf("dim=%v d=%v: expected b back at start, got %v", dim, d, l.RectB())
			}
		}
	}
}

func TestScrollLayerRenderDrawsBoth(t *testing.T) {
	f := render.NewFrame()
	l := NewScrollLayer(f, nil, 100, 50)
	l.OffsetX(-10)

	l.Render()
	l.Render()

	cmds := f.Commands()
	if len(cmds) != 4 {
		t.Fatalf("expected 4 draws for two renders, got %d", len(cmds))
	}
	if cmds[0].Dst != l.RectA() || cmds[1].Dst != l.RectB() {
		t.Fatalf("expected a then b, got %v then %v", cmds[0].Dst, cmds[1].Dst)
	}
}

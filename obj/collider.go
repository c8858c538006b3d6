package obj

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Mover is anything the EdgeCollider can push around.
type Mover interface {
	Position() (float64, float64)
	SetPosition(x, y float64)
	Velocity() (float64, float64)
	SetVelocity(vx, vy float64)
}

// EdgePolicy selects how a body reacts to the screen edge.
type EdgePolicy int

const (
	EdgeNone EdgePolicy = iota
	EdgeWrap
	EdgeBounce
	EdgeRecycle
)

func (p EdgePolicy) String() string {
	switch p {
	case EdgeWrap:
		return "wrap"
	case EdgeBounce:
		return "bounce"
	case EdgeRecycle:
		return "recycle"
	default:
		return "none"
	}
}

// ParseEdgePolicy accepts the names produced by EdgePolicy.String. An empty
// name is EdgeNone.
func ParseEdgePolicy(name string) (EdgePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return EdgeNone, nil
	case "wrap":
		return EdgeWrap, nil
	case "bounce":
		return EdgeBounce, nil
	case "recycle":
		return EdgeRecycle, nil
	}
	return EdgeNone, fmt.Errorf("unknown edge policy %q", name)
}

// EdgeCollider resolves collisions against the screen edges. It holds only
// the screen size and is safe to share.
type EdgeCollider struct {
	width, height float64
}

func NewEdgeCollider(width, height float64) EdgeCollider {
	return EdgeCollider{width: width, height: height}
}

// bounds returns the screen grown by pad on every side. cp.BB is y-up but we
// only use it as an axis-aligned box, so B is the top edge in screen space.
func (c EdgeCollider) bounds(pad float64) cp.BB {
	return cp.BB{L: -pad, B: -pad, R: c.width + pad, T: c.height + pad}
}

// Apply runs the collision policy p. originX/originY are only used by
// EdgeRecycle.
func (c EdgeCollider) Apply(p EdgePolicy, m Mover, half, originX, originY float64) {
	switch p {
	case EdgeWrap:
		c.Wrap(m, half)
	case EdgeBounce:
		c.Bounce(m, half)
	case EdgeRecycle:
		c.Recycle(m, half, originX, originY)
	}
}

// Wrap teleports a body that has fully left the screen to the opposite edge.
// Both axes are checked on every call.
func (c EdgeCollider) Wrap(m Mover, half float64) {
	x, y := m.Position()
	bb := c.bounds(half)
	if bb.ContainsVect(cp.Vector{X: x, Y: y}) {
		return
	}

	if x < bb.L {
		x = bb.R
	} else if x > bb.R {
		x = bb.L
	}
	if y < bb.B {
		y = bb.T
	} else if y > bb.T {
		y = bb.B
	}
	m.SetPosition(x, y)
}

// Bounce clamps the body's extent inside the screen and reflects the
// velocity on each axis that touched an edge.
func (c EdgeCollider) Bounce(m Mover, half float64) {
	x, y := m.Position()
	vx, vy := m.Velocity()
	inner := c.bounds(-half)

	if x > inner.R {
		x = inner.R
		vx = -vx
	} else if x < inner.L {
		x = inner.L
		vx = -vx
	}
	if y > inner.T {
		y = inner.T
		vy = -vy
	} else if y < inner.B {
		y = inner.B
		vy = -vy
	}

	m.SetPosition(x, y)
	m.SetVelocity(vx, vy)
}

// Recycle moves a body that has fully left the screen back to the origin,
// offset by half so the sprite's corner lands there.
func (c EdgeCollider) Recycle(m Mover, half, originX, originY float64) {
	x, y := m.Position()
	if c.bounds(half).ContainsVect(cp.Vector{X: x, Y: y}) {
		return
	}
	m.SetPosition(originX-half, originY-half)
}

// IsOffScreen reports whether the body's position is outside the screen
// with no tolerance. Removing the body is up to the caller.
func (c EdgeCollider) IsOffScreen(m Mover) bool {
	x, y := m.Position()
	return !c.bounds(0).ContainsVect(cp.Vector{X: x, Y: y})
}

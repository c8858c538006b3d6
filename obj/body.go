package obj

import (
	"github.com/milk9111/parallax/common"
)

// Sprite is the visual a MotionBody drives each tick.
type Sprite interface {
	SetLocation(x, y float64)
	SetAngleDegrees(deg float64)
	Render()
}

// BodyOptions configures a new MotionBody. Heading is in radians; 0 points
// right and pi/2 points down.
type BodyOptions struct {
	X, Y     float64
	Speed    float64
	Heading  float64
	Friction float64
	Gravity  float64
	Sprite   Sprite
}

// MotionBody is a point mass with friction, gravity and optional thrust.
// Velocity is stored as cartesian components; heading is derived from it.
type MotionBody struct {
	pos      common.Vector2
	vel      common.Vector2
	thrust   common.Vector2
	friction float64
	gravity  float64
	sprite   Sprite
}

func NewMotionBody(opts BodyOptions) *MotionBody {
	return &MotionBody{
		pos:      common.Vector2{X: opts.X, Y: opts.Y},
		vel:      common.FromPolar(opts.Heading, opts.Speed),
		friction: opts.Friction,
		gravity:  opts.Gravity,
		sprite:   opts.Sprite,
	}
}

func (b *MotionBody) Position() (float64, float64) { return b.pos.X, b.pos.Y }
func (b *MotionBody) SetPosition(x, y float64)     { b.pos = common.Vector2{X: x, Y: y} }
func (b *MotionBody) Velocity() (float64, float64) { return b.vel.X, b.vel.Y }
func (b *MotionBody) SetVelocity(vx, vy float64)   { b.vel = common.Vector2{X: vx, Y: vy} }

// Heading is atan2(vy, vx). A stopped body reports 0.
func (b *MotionBody) Heading() float64 { return b.vel.Angle() }
func (b *MotionBody) Speed() float64   { return b.vel.Length() }

func (b *MotionBody) Friction() float64 { return b.friction }
func (b *MotionBody) Gravity() float64  { return b.gravity }

// SetTuning replaces friction and gravity without touching motion state.
func (b *MotionBody) SetTuning(friction, gravity float64) {
	b.friction = friction
	b.gravity = gravity
}

func (b *MotionBody) SetThrust(x, y float64) {
	b.thrust = common.Vector2{X: x, Y: y}
}

// Accelerate adds speed along the current heading. A stopped body has heading
// 0, so it always starts moving along +x.
func (b *MotionBody) Accelerate(speed float64) {
	b.vel.AddTo(common.FromPolar(b.vel.Angle(), speed))
}

func (b *MotionBody) AccelerateByThrust() {
	b.vel.AddTo(b.thrust)
}

// Decelerate scales velocity by 1-force. force 1 stops the body; anything
// above 1 reverses it.
func (b *MotionBody) Decelerate(force float64) {
	b.vel.ScaleBy(1 - force)
}

// SetHeading points the velocity at angle (radians) keeping its speed, and
// turns the sprite to match.
func (b *MotionBody) SetHeading(angle float64) {
	if b.sprite != nil {
		b.sprite.SetAngleDegrees(common.RadToDeg(angle))
	}
	b.vel.SetAngle(angle)
}

// Update advances one tick and draws the sprite at the new position.
func (b *MotionBody) Update() {
	b.vel.ScaleBy(b.friction)
	b.vel.Y += b.gravity
	b.pos.AddTo(b.vel)

	if b.sprite != nil {
		b.sprite.SetLocation(b.pos.X, b.pos.Y)
		b.sprite.Render()
	}
}

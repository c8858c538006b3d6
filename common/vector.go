package common

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"
)

// ErrDivideByZero is returned when a vector is divided by a zero scalar.
var ErrDivideByZero = errors.New("vector: divide by zero")

// Vector2 is a 2D float vector. Methods with a pointer receiver mutate the
// vector in place; value receiver methods return a new vector.
type Vector2 struct {
	X, Y float64
}

// FromPolar builds a vector from an angle in radians and a length.
func FromPolar(angle, length float64) Vector2 {
	return FromCP(cp.ForAngle(angle).Mult(length))
}

func FromCP(v cp.Vector) Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

func (v Vector2) CP() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func (v *Vector2) SetX(x float64) { v.X = x }
func (v *Vector2) SetY(y float64) { v.Y = y }

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns atan2(y, x). The zero vector reports 0 whatever the signs of
// its zeros.
func (v Vector2) Angle() float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// SetLength changes the magnitude and keeps the current angle.
func (v *Vector2) SetLength(length float64) {
	angle := v.Angle()
	v.X = math.Cos(angle) * length
	v.Y = math.Sin(angle) * length
}

// SetAngle changes the direction and keeps the current length.
func (v *Vector2) SetAngle(angle float64) {
	length := v.Length()
	v.X = math.Cos(angle) * length
	v.Y = math.Sin(angle) * length
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v *Vector2) AddTo(o Vector2) {
	v.X += o.X
	v.Y += o.Y
}

func (v Vector2) Subtract(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v *Vector2) SubtractFrom(o Vector2) {
	v.X -= o.X
	v.Y -= o.Y
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v *Vector2) ScaleBy(s float64) {
	v.X *= s
	v.Y *= s
}

// Divide returns v/s, or ErrDivideByZero when s is 0.
func (v Vector2) Divide(s float64) (Vector2, error) {
	if s == 0 {
		return v, ErrDivideByZero
	}
	return Vector2{X: v.X / s, Y: v.Y / s}, nil
}

// DivideBy divides v by s in place. v is left untouched when s is 0.
func (v *Vector2) DivideBy(s float64) error {
	if s == 0 {
		return ErrDivideByZero
	}
	v.X /= s
	v.Y /= s
	return nil
}

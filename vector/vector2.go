// Package vector implements a mutable two-dimensional vector.
//
// Methods on *Vector2 modify the receiver in place and return it, so calls
// can be chained:
//
//	v := vector.New(3, 4).Normalize().MultiplyScalar(10)
//
// Package-level functions never modify their arguments and return new
// instances, with one documented exception in MoveTowards.
//
// Values are not validated. NaN and infinite components propagate through
// arithmetic; the only recovered case is normalizing a zero-length vector.
// A Vector2 is not safe for concurrent mutation.
package vector

import (
	"fmt"
	"math"
)

// Vector2 is a point or direction in the plane. The zero value is (0, 0).
type Vector2 struct {
	X, Y float64
}

// New returns a pointer to (x, y). The zero value Vector2{} is already
// usable, so New is only needed where a *Vector2 is wanted.
func New(x, y float64) *Vector2 {
	return &Vector2{X: x, Y: y}
}

// Each of the direction helpers returns a new instance on every call.

// Up returns (0, 1).
func Up() *Vector2 { return New(0, 1) }

// Down returns (0, -1).
func Down() *Vector2 { return New(0, -1) }

// Right returns (1, 0).
func Right() *Vector2 { return New(1, 0) }

// Left returns (-1, 0).
func Left() *Vector2 { return New(-1, 0) }

// One returns (1, 1).
func One() *Vector2 { return New(1, 1) }

// Zero returns (0, 0).
func Zero() *Vector2 { return New(0, 0) }

// MagnitudeSquared is cheaper than Magnitude and orders vectors the same way.
func (v *Vector2) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude returns the Euclidean length of v.
func (v *Vector2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Normalized returns a unit-length copy of v. A zero vector yields (0, 0).
func (v *Vector2) Normalized() *Vector2 {
	m := normalDivisor(v.Magnitude())
	return New(v.X/m, v.Y/m)
}

// normalDivisor substitutes 1 for a zero or NaN magnitude.
func normalDivisor(m float64) float64 {
	if m == 0 || math.IsNaN(m) {
		return 1
	}
	return m
}

// Set overwrites both components.
func (v *Vector2) Set(x, y float64) *Vector2 {
	v.X = x
	v.Y = y
	return v
}

// SetScalar sets both components to s.
func (v *Vector2) SetScalar(s float64) *Vector2 {
	v.X = s
	v.Y = s
	return v
}

// Clone returns an independent copy of v.
func (v *Vector2) Clone() *Vector2 {
	return New(v.X, v.Y)
}

// Equals reports exact component equality, without tolerance.
func (v *Vector2) Equals(o *Vector2) bool {
	return v.X == o.X && v.Y == o.Y
}

// String formats v as "(x, y)".
func (v *Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Add adds o to v in place.
func (v *Vector2) Add(o *Vector2) *Vector2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// AddScalar adds s to both components.
func (v *Vector2) AddScalar(s float64) *Vector2 {
	v.X += s
	v.Y += s
	return v
}

// Subtract subtracts o from v in place.
func (v *Vector2) Subtract(o *Vector2) *Vector2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

func (v *Vector2) SubtractScalar(s float64) *Vector2 {
	v.X -= s
	v.Y -= s
	return v
}

// Multiply multiplies component-wise.
func (v *Vector2) Multiply(o *Vector2) *Vector2 {
	v.X *= o.X
	v.Y *= o.Y
	return v
}

// MultiplyScalar scales v by s.
func (v *Vector2) MultiplyScalar(s float64) *Vector2 {
	v.X *= s
	v.Y *= s
	return v
}

// Divide divides component-wise. Zero components in o produce Inf or NaN.
func (v *Vector2) Divide(o *Vector2) *Vector2 {
	v.X /= o.X
	v.Y /= o.Y
	return v
}

// DivideScalar divides both components by s. Dividing by zero gives Inf or NaN.
func (v *Vector2) DivideScalar(s float64) *Vector2 {
	v.X /= s
	v.Y /= s
	return v
}

// Normalize scales v to unit length in place. A zero vector stays (0, 0).
func (v *Vector2) Normalize() *Vector2 {
	return v.DivideScalar(normalDivisor(v.Magnitude()))
}

// SetLength rescales v to the given length. A zero vector stays (0, 0)
// whatever the length.
func (v *Vector2) SetLength(length float64) *Vector2 {
	return v.Normalize().MultiplyScalar(length)
}

// Floor rounds each component down.
func (v *Vector2) Floor() *Vector2 {
	v.X = math.Floor(v.X)
	v.Y = math.Floor(v.Y)
	return v
}

func (v *Vector2) Ceil() *Vector2 {
	v.X = math.Ceil(v.X)
	v.Y = math.Ceil(v.Y)
	return v
}

// Round rounds each component to the nearest integer, with halves going
// toward positive infinity: 2.5 becomes 3 and -2.5 becomes -2.
func (v *Vector2) Round() *Vector2 {
	v.X = roundHalfUp(v.X)
	v.Y = roundHalfUp(v.Y)
	return v
}

func roundHalfUp(f float64) float64 {
	r := math.Floor(f)
	if f-r >= 0.5 {
		r++
	}
	if r == 0 {
		return math.Copysign(0, f)
	}
	return r
}

// Negate flips the sign of both components.
func (v *Vector2) Negate() *Vector2 {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

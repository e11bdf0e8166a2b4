package vector

import (
	"math"

	"Vector2/internal/mathx"
)

func AddVectors(a, b *Vector2) *Vector2 {
	return New(a.X+b.X, a.Y+b.Y)
}

func SubtractVectors(a, b *Vector2) *Vector2 {
	return New(a.X-b.X, a.Y-b.Y)
}

// Min returns the component-wise minimum of a and b.
func Min(a, b *Vector2) *Vector2 {
	return New(math.Min(a.X, b.X), math.Min(a.Y, b.Y))
}

// Max returns the component-wise maximum of a and b.
func Max(a, b *Vector2) *Vector2 {
	return New(math.Max(a.X, b.X), math.Max(a.Y, b.Y))
}

// Scale returns the component-wise product of a and b. Use Dot for the
// scalar product.
func Scale(a, b *Vector2) *Vector2 {
	return New(a.X*b.X, a.Y*b.Y)
}

func Dot(a, b *Vector2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Reflect mirrors inDirection off the surface with normal inNormal.
// inNormal is expected to be unit length; it is not normalized here.
func Reflect(inDirection, inNormal *Vector2) *Vector2 {
	factor := -2 * Dot(inDirection, inNormal)
	return New(factor*inNormal.X+inDirection.X, factor*inNormal.Y+inDirection.Y)
}

// Perpendicular rotates inDirection 90 degrees counter-clockwise (with +Y up),
// preserving its length.
func Perpendicular(inDirection *Vector2) *Vector2 {
	return New(-inDirection.Y, inDirection.X)
}

// Angle returns the direction of the segment from -> to, in radians in
// [-Pi, Pi], measured counter-clockwise from +X.
//
// Older callers documented this as degrees. The result has always been
// radians; convert with 180/math.Pi if degrees are needed.
func Angle(from, to *Vector2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

func DistanceSquared(a, b *Vector2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func Distance(a, b *Vector2) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// Lerp interpolates between a and b with alpha clamped to [0, 1], so the
// result always lies on the segment ab.
func Lerp(a, b *Vector2, alpha float64) *Vector2 {
	return LerpUnclamped(a, b, mathx.Clamp(alpha, 0, 1))
}

// LerpUnclamped interpolates between a and b; alpha outside [0, 1]
// extrapolates past the endpoints.
func LerpUnclamped(a, b *Vector2, alpha float64) *Vector2 {
	return New(a.X+(b.X-a.X)*alpha, a.Y+(b.Y-a.Y)*alpha)
}

// MoveTowards steps current toward target by at most maxDistanceDelta.
// A negative maxDistanceDelta moves away from target.
//
// When current already equals target, or target is within reach of a
// non-negative step, the target pointer itself is returned rather than a
// copy. Mutating the result then mutates target; callers that keep the
// result should compare it with target or Clone it.
func MoveTowards(current, target *Vector2, maxDistanceDelta float64) *Vector2 {
	dx := target.X - current.X
	dy := target.Y - current.Y
	distSq := dx*dx + dy*dy
	if distSq == 0 || (maxDistanceDelta >= 0 && distSq <= maxDistanceDelta*maxDistanceDelta) {
		return target
	}
	dist := math.Sqrt(distSq)
	return New(current.X+dx/dist*maxDistanceDelta, current.Y+dy/dist*maxDistanceDelta)
}

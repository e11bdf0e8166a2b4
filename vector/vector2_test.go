package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"Vector2/vector"
)

var vec = vector.New

func TestVector2Init(t *testing.T) {
	require.Equal(t, &vector.Vector2{X: 1, Y: 2}, vec(1, 2))
	require.True(t, new(vector.Vector2).Equals(vector.Zero()))

	var v vector.Vector2
	require.Equal(t, 0.0, v.X)
	require.Equal(t, 0.0, v.Y)
}

func TestFactories(t *testing.T) {
	require.Equal(t, vec(0, 1), vector.Up())
	require.Equal(t, vec(0, -1), vector.Down())
	require.Equal(t, vec(1, 0), vector.Right())
	require.Equal(t, vec(-1, 0), vector.Left())
	require.Equal(t, vec(1, 1), vector.One())
	require.Equal(t, vec(0, 0), vector.Zero())
}

func TestFactoriesReturnFreshInstances(t *testing.T) {
	up := vector.Up()
	require.NotSame(t, up, vector.Up())

	up.Set(5, 5)
	require.Equal(t, vec(0, 1), vector.Up(), "mutating one Up() must not leak into the next")

	zero := vector.Zero()
	zero.AddScalar(3)
	require.True(t, vector.Zero().Equals(vec(0, 0)))
}

func TestCloneIsIndependent(t *testing.T) {
	v := vec(3.5, -2)
	c := v.Clone()
	require.NotSame(t, v, c)
	require.True(t, c.Equals(v))

	c.Negate().AddScalar(10)
	require.Equal(t, vec(3.5, -2), v)
}

func TestEqualsIsExact(t *testing.T) {
	require.True(t, vec(1, 2).Equals(vec(1, 2)))
	require.False(t, vec(1, 2).Equals(vec(1, 2.0000000001)))
	a, b := 0.1, 0.2
	require.False(t, vec(a+b, 0).Equals(vec(0.3, 0)))
	require.False(t, vec(math.NaN(), 0).Equals(vec(math.NaN(), 0)))
}

func TestString(t *testing.T) {
	require.Equal(t, "(1, 2)", vec(1, 2).String())
	require.Equal(t, "(0, 0)", vector.Zero().String())
	require.Equal(t, "(0.5, -3.25)", vec(0.5, -3.25).String())
	require.Equal(t, "(1e+21, 0.1)", vec(1e21, 0.1).String())
	require.Equal(t, "(NaN, +Inf)", vec(math.NaN(), math.Inf(1)).String())
}

func TestMagnitude(t *testing.T) {
	v := vec(3, 4)
	require.Equal(t, 25.0, v.MagnitudeSquared())
	require.Equal(t, 5.0, v.Magnitude())
	require.Equal(t, 0.0, vector.Zero().Magnitude())
}

func TestNormalizeZeroVector(t *testing.T) {
	zero := vector.Zero()
	n := zero.Normalized()
	require.NotSame(t, zero, n)
	require.True(t, n.Equals(vector.Zero()))

	require.True(t, vector.Zero().Normalize().Equals(vector.Zero()))
	require.False(t, math.IsNaN(vector.Zero().Normalize().X))
}

func TestNormalizeNonZero(t *testing.T) {
	for _, v := range []*vector.Vector2{vec(3, 4), vec(-1, 0), vec(0.001, -7), vec(1e6, 1e6)} {
		n := v.Normalized()
		require.InDelta(t, 1.0, n.Magnitude(), 1e-12, "normalized %v", v)
	}

	v := vec(3, 4)
	n := v.Normalized()
	require.Equal(t, vec(3, 4), v, "Normalized must not mutate the receiver")
	require.Equal(t, vec(0.6, 0.8), n)

	require.Same(t, v, v.Normalize())
	require.Equal(t, vec(0.6, 0.8), v)
}

func TestNormalizeNaNMagnitudeDividesByOne(t *testing.T) {
	n := vec(math.NaN(), 3).Normalized()
	require.True(t, math.IsNaN(n.X))
	require.Equal(t, 3.0, n.Y)
}

func TestSetLength(t *testing.T) {
	v := vec(3, 4)
	require.Same(t, v, v.SetLength(10))
	require.InDelta(t, 6.0, v.X, 1e-12)
	require.InDelta(t, 8.0, v.Y, 1e-12)

	require.True(t, vector.Zero().SetLength(42).Equals(vector.Zero()))
	require.Equal(t, vec(-0.6, -0.8), vec(3, 4).SetLength(-1))
}

func TestMutatorsReturnReceiver(t *testing.T) {
	v := vec(1, 2)
	require.Same(t, v, v.Set(1, 2))
	require.Same(t, v, v.SetScalar(1))
	require.Same(t, v, v.Add(vector.One()))
	require.Same(t, v, v.AddScalar(1))
	require.Same(t, v, v.Subtract(vector.One()))
	require.Same(t, v, v.SubtractScalar(1))
	require.Same(t, v, v.Multiply(vector.One()))
	require.Same(t, v, v.MultiplyScalar(1))
	require.Same(t, v, v.Divide(vector.One()))
	require.Same(t, v, v.DivideScalar(1))
	require.Same(t, v, v.Floor())
	require.Same(t, v, v.Ceil())
	require.Same(t, v, v.Round())
	require.Same(t, v, v.Negate())
}

func TestArithmetic(t *testing.T) {
	require.Equal(t, vec(7, 9), vec(1, 2).Set(7, 9))
	require.Equal(t, vec(-4, -4), vec(1, 2).SetScalar(-4))
	require.Equal(t, vec(4, 6), vec(1, 2).Add(vec(3, 4)))
	require.Equal(t, vec(1.5, 2.5), vec(1, 2).AddScalar(0.5))
	require.Equal(t, vec(-2, -2), vec(1, 2).Subtract(vec(3, 4)))
	require.Equal(t, vec(0, 1), vec(1, 2).SubtractScalar(1))
	require.Equal(t, vec(3, 8), vec(1, 2).Multiply(vec(3, 4)))
	require.Equal(t, vec(3, 6), vec(1, 2).MultiplyScalar(3))
	require.Equal(t, vec(0.5, 0.5), vec(1, 2).Divide(vec(2, 4)))
	require.Equal(t, vec(0.25, 0.5), vec(1, 2).DivideScalar(4))
	require.Equal(t, vec(-1, 2), vec(1, -2).Negate())

	chained := vec(1, 1).Add(vec(2, 3)).MultiplyScalar(2).Subtract(vector.One())
	require.Equal(t, vec(5, 7), chained)
}

func TestDivisionByZeroIsUnchecked(t *testing.T) {
	v := vec(1, 0).DivideScalar(0)
	require.True(t, math.IsInf(v.X, 1))
	require.True(t, math.IsNaN(v.Y))

	w := vec(-1, 2).Divide(vector.Zero())
	require.True(t, math.IsInf(w.X, -1))
	require.True(t, math.IsInf(w.Y, 1))
}

func TestNaNPropagates(t *testing.T) {
	v := vec(math.NaN(), 1).Add(vector.One()).MultiplyScalar(2)
	require.True(t, math.IsNaN(v.X))
	require.Equal(t, 4.0, v.Y)
	require.True(t, math.IsNaN(vector.Dot(v, vector.One())))
}

func TestFloorCeil(t *testing.T) {
	require.Equal(t, vec(1, -2), vec(1.7, -1.2).Floor())
	require.Equal(t, vec(2, -1), vec(1.2, -1.7).Ceil())
}

func TestRoundHalvesGoUp(t *testing.T) {
	require.Equal(t, vec(2, -1), vec(1.5, -1.5).Round())
	require.Equal(t, vec(3, -2), vec(2.5, -2.5).Round())
	require.Equal(t, vec(1, -2), vec(1.4, -1.6).Round())
	require.Equal(t, vec(0, 0), vec(0.49999999999999994, 0.2).Round())

	negZero := vec(-0.4, -0.5).Round()
	require.True(t, math.Signbit(negZero.X))
	require.True(t, math.Signbit(negZero.Y))

	inf := vec(math.Inf(-1), math.NaN()).Round()
	require.True(t, math.IsInf(inf.X, -1))
	require.True(t, math.IsNaN(inf.Y))
}

func TestCombinatorsDoNotMutate(t *testing.T) {
	a := vec(1, 5)
	b := vec(3, 2)

	require.Equal(t, vec(4, 7), vector.AddVectors(a, b))
	require.Equal(t, vec(-2, 3), vector.SubtractVectors(a, b))
	require.Equal(t, vec(1, 2), vector.Min(a, b))
	require.Equal(t, vec(3, 5), vector.Max(a, b))
	require.Equal(t, vec(3, 10), vector.Scale(a, b))

	require.Equal(t, vec(1, 5), a)
	require.Equal(t, vec(3, 2), b)
	require.NotSame(t, a, vector.AddVectors(a, vector.Zero()))
}

func TestEndToEnd(t *testing.T) {
	require.Equal(t, 5.0, vector.Distance(vec(0, 0), vec(3, 4)))
	require.Equal(t, 25.0, vector.DistanceSquared(vec(0, 0), vec(3, 4)))
	require.True(t, vector.Scale(vec(2, 3), vec(4, 5)).Equals(vec(8, 15)))
	require.True(t, vector.AddVectors(vec(1, 2), vec(3, 4)).Equals(vec(4, 6)))
}

func TestDotIsCommutative(t *testing.T) {
	pairs := [][2]*vector.Vector2{
		{vec(1, 2), vec(3, 4)},
		{vec(-1.5, 0.25), vec(8, -3)},
		{vector.Zero(), vec(9, 9)},
	}
	for _, p := range pairs {
		require.Equal(t, vector.Dot(p[0], p[1]), vector.Dot(p[1], p[0]))
	}
	require.Equal(t, 11.0, vector.Dot(vec(1, 2), vec(3, 4)))
	require.Equal(t, 0.0, vector.Dot(vector.Right(), vector.Up()))
}

func TestReflect(t *testing.T) {
	require.True(t, vector.Reflect(vec(1, -1), vector.Up()).Equals(vec(1, 1)))
	require.True(t, vector.Reflect(vec(2, 3), vector.Left()).Equals(vec(-2, 3)))

	// Grazing direction is unchanged.
	require.True(t, vector.Reflect(vec(5, 0), vector.Up()).Equals(vec(5, 0)))
}

func TestPerpendicular(t *testing.T) {
	require.True(t, vector.Perpendicular(vec(1, 0)).Equals(vec(0, 1)))
	require.True(t, vector.Perpendicular(vec(0, 1)).Equals(vec(-1, 0)))

	v := vec(3, 4)
	p := vector.Perpendicular(v)
	require.Equal(t, v.Magnitude(), p.Magnitude())
	require.Equal(t, 0.0, vector.Dot(v, p))
}

// Angle reports radians even though older callers expected degrees.
func TestAngleIsRadians(t *testing.T) {
	require.Equal(t, math.Pi/2, vector.Angle(vector.Zero(), vector.Up()))
	require.Equal(t, 0.0, vector.Angle(vector.Zero(), vector.Right()))
	require.Equal(t, math.Pi, vector.Angle(vector.Zero(), vector.Left()))
	require.InDelta(t, math.Pi/4, vector.Angle(vec(1, 1), vec(2, 2)), 1e-15)
	require.NotEqual(t, 90.0, vector.Angle(vector.Zero(), vector.Up()))
}

func TestLerp(t *testing.T) {
	a := vec(0, 10)
	b := vec(10, 20)

	require.True(t, vector.Lerp(a, b, 0).Equals(a))
	require.True(t, vector.Lerp(a, b, 1).Equals(b))
	require.Equal(t, vec(5, 15), vector.Lerp(a, b, 0.5))
	require.True(t, vector.Lerp(a, b, 2).Equals(vector.Lerp(a, b, 1)))
	require.True(t, vector.Lerp(a, b, -3).Equals(a))
	require.NotSame(t, b, vector.Lerp(a, b, 1))
}

func TestLerpUnclampedExtrapolates(t *testing.T) {
	a := vec(0, 10)
	b := vec(10, 20)

	require.Equal(t, vec(20, 30), vector.LerpUnclamped(a, b, 2))
	require.Equal(t, vec(-10, 0), vector.LerpUnclamped(a, b, -1))
	require.Equal(t, vec(5, 15), vector.LerpUnclamped(a, b, 0.5))
	require.False(t, vector.LerpUnclamped(a, b, 2).Equals(vector.Lerp(a, b, 2)))
}

func TestMoveTowardsZeroDistance(t *testing.T) {
	p := vec(4, -2)
	for _, delta := range []float64{0, 1, -1, 1e9, -1e9} {
		got := vector.MoveTowards(p, p, delta)
		require.True(t, got.Equals(p), "delta %v", delta)
	}

	target := vec(4, -2)
	require.Same(t, target, vector.MoveTowards(vec(4, -2), target, -5))
}

func TestMoveTowardsReachesTarget(t *testing.T) {
	current := vec(0, 0)
	target := vec(3, 4)

	got := vector.MoveTowards(current, target, 5)
	require.Same(t, target, got, "exact reach returns the target handle")

	got = vector.MoveTowards(current, target, 1e6)
	require.Same(t, target, got)
	require.Equal(t, vec(3, 4), got)
	require.Equal(t, vec(0, 0), current)
}

func TestMoveTowardsResultAliasesTarget(t *testing.T) {
	target := vec(1, 1)
	got := vector.MoveTowards(vec(0, 1), target, 2)
	got.AddScalar(10)
	require.Equal(t, vec(11, 11), target)
}

func TestMoveTowardsPartialStep(t *testing.T) {
	current := vec(0, 0)
	target := vec(10, 0)

	got := vector.MoveTowards(current, target, 3)
	require.NotSame(t, target, got)
	require.Equal(t, vec(3, 0), got)

	diag := vector.MoveTowards(vec(0, 0), vec(30, 40), 5)
	require.InDelta(t, 3.0, diag.X, 1e-12)
	require.InDelta(t, 4.0, diag.Y, 1e-12)
}

func TestMoveTowardsNegativeDeltaMovesAway(t *testing.T) {
	got := vector.MoveTowards(vec(0, 0), vec(10, 0), -2)
	require.Equal(t, vec(-2, 0), got)

	// Negative steps never snap onto the target, however close it is.
	target := vec(1, 0)
	got = vector.MoveTowards(vec(0, 0), target, -5)
	require.NotSame(t, target, got)
	require.Equal(t, vec(-5, 0), got)
}

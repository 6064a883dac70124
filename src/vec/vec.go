/*
A simple math vector library for sketches. PVector lives in pvector.go,
scalar helpers live here.
*/

package vec

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultTolerance is what IsZero uses when no tolerance is given.
const DefaultTolerance = 1e-9

func Sq[T constraints.Float](a T) T {
	return a * a
}

// Lerp1 blends a towards b by t, a + (b-a)*t.
func Lerp1[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// IsZeroTol reports whether |a| <= tol. A non-positive tol uses DefaultTolerance.
func IsZeroTol[T constraints.Float](a, tol T) bool {
	if tol <= 0 {
		tol = T(DefaultTolerance)
	}
	return T(math.Abs(float64(a))) <= tol
}

func Clamp[T constraints.Ordered](v, min, max T) T {
	if v > max {
		return max
	}

	if v < min {
		return min
	}

	return v
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min3[T constraints.Ordered](a, b, c T) T {
	return Min(a, Min(b, c))
}

func Max3[T constraints.Ordered](a, b, c T) T {
	return Max(a, Max(b, c))
}

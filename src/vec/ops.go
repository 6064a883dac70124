package vec

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/xernobyl/pvector/src/units"
)

func Add(a, b PVector) PVector {
	return PVector{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a, b PVector) PVector {
	return PVector{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// SubInv is b - a.
func SubInv(a, b PVector) PVector {
	return Sub(b, a)
}

func Mult(v PVector, n float64) PVector {
	return PVector{v.X * n, v.Y * n, v.Z * n}
}

func MultV(a, b PVector) PVector {
	return PVector{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

func Div(v PVector, n float64) PVector {
	return PVector{v.X / n, v.Y / n, v.Z / n}
}

func DivV(a, b PVector) PVector {
	return PVector{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

// Mod is the truncated remainder of every coordinate, like math.Mod.
func Mod(v PVector, n float64) PVector {
	return PVector{math.Mod(v.X, n), math.Mod(v.Y, n), math.Mod(v.Z, n)}
}

func ModV(a, b PVector) PVector {
	return PVector{math.Mod(a.X, b.X), math.Mod(a.Y, b.Y), math.Mod(a.Z, b.Z)}
}

func Negate(v PVector) PVector {
	return PVector{-v.X, -v.Y, -v.Z}
}

func Dot(a, b PVector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func Cross(a, b PVector) PVector {
	return PVector{
		a.Y*b.Z - b.Y*a.Z,
		a.Z*b.X - b.Z*a.X,
		a.X*b.Y - b.X*a.Y,
	}
}

func DistSq(a, b PVector) float64 {
	return Sq(a.X-b.X) + Sq(a.Y-b.Y) + Sq(a.Z-b.Z)
}

func Dist(a, b PVector) float64 {
	return math.Sqrt(DistSq(a, b))
}

// AngleBetween returns the unsigned angle between a and b. If either one is
// the zero vector the angle is 0, whatever the other one is.
func AngleBetween(a, b PVector) units.Rad {
	if a.IsZero() || b.IsZero() {
		return 0
	}

	// rounding can push the ratio just past ±1, where Acos is NaN
	amt := Clamp(Dot(a, b)/math.Sqrt(a.MagSq()*b.MagSq()), -1, 1)
	switch amt {
	case -1:
		return math.Pi
	case 1:
		return 0
	}
	return units.Rad(math.Acos(amt))
}

// Normalize scales v to unit length. Vectors of length 0 or 1 come back as is.
func Normalize(v PVector) PVector {
	m := v.Mag()
	if m == 0 || m == 1 {
		return v
	}
	return Div(v, m)
}

// Limit clamps the length of v to max.
func Limit(v PVector, max float64) PVector {
	magSq := v.MagSq()
	if magSq <= max*max {
		return v
	}
	return Mult(Div(v, math.Sqrt(magSq)), max)
}

func SetMag(v PVector, length float64) PVector {
	return Mult(Normalize(v), length)
}

// Lerp blends a towards b per axis, a + (b-a)*t.
func Lerp(a, b PVector, t float64) PVector {
	return PVector{Lerp1(a.X, b.X, t), Lerp1(a.Y, b.Y, t), Lerp1(a.Z, b.Z, t)}
}

// FromAngle is the unit vector (cos θ, sin θ, 0).
func FromAngle(angle units.Rad) PVector {
	s, c := math.Sincos(float64(angle))
	return PVector{c, s, 0}
}

// Rotate turns v about the Z axis. Same as RotateZ.
func Rotate(v PVector, angle units.Rad) PVector {
	s, c := math.Sincos(float64(angle))
	return PVector{c*v.X - s*v.Y, s*v.X + c*v.Y, v.Z}
}

func RotateZ(v PVector, angle units.Rad) PVector {
	return Rotate(v, angle)
}

func RotateX(v PVector, angle units.Rad) PVector {
	s, c := math.Sincos(float64(angle))
	return PVector{v.X, c*v.Y - s*v.Z, s*v.Y + c*v.Z}
}

func RotateY(v PVector, angle units.Rad) PVector {
	s, c := math.Sincos(float64(angle))
	return PVector{s*v.Z + c*v.X, v.Y, c*v.Z - s*v.X}
}

// Compare orders vectors by x, then y, then z. It returns -1, 0 or +1.
func Compare(a, b PVector) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.Z < b.Z:
		return -1
	case a.Z > b.Z:
		return 1
	}
	return 0
}

// Sort orders vs in place by Compare, keeping equal vectors in input order.
func Sort(vs []PVector) {
	slices.SortStableFunc(vs, Compare)
}

// Centroid is the mean of vs, the origin for an empty slice.
func Centroid(vs []PVector) PVector {
	var sum PVector
	if len(vs) == 0 {
		return sum
	}
	for _, v := range vs {
		sum.Add(v)
	}
	return Div(sum, float64(len(vs)))
}

// Bounds returns the per axis minimum and maximum corners of vs.
func Bounds(vs []PVector) (lo, hi PVector) {
	if len(vs) == 0 {
		return lo, hi
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = PVector{Min(lo.X, v.X), Min(lo.Y, v.Y), Min(lo.Z, v.Z)}
		hi = PVector{Max(hi.X, v.X), Max(hi.Y, v.Y), Max(hi.Z, v.Z)}
	}
	return lo, hi
}

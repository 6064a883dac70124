package vec

import (
	"fmt"
	"math"

	"github.com/xernobyl/pvector/src/units"
)

// PVector is a point or displacement in 3-space. The zero value is the
// origin. Free functions in this package return new vectors and leave their
// arguments alone; pointer methods mutate the receiver and return it.
type PVector struct {
	X, Y, Z float64
}

// New builds a vector from up to three coordinates, missing ones are 0.
// Extra values are ignored.
func New(coords ...float64) PVector {
	var v PVector
	v.SetArray(coords)
	return v
}

func FromArray(a []float64) PVector {
	return New(a...)
}

func FromTuple(t units.XYZ) PVector {
	return PVector{float64(t[0]), float64(t[1]), float64(t[2])}
}

func (v PVector) Copy() PVector { return v }

func (v PVector) Array() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

func (v PVector) Tuple() units.XYZ {
	return units.XYZ{units.Coord(v.X), units.Coord(v.Y), units.Coord(v.Z)}
}

// CopyTo writes up to three coordinates into dst and returns it.
func (v PVector) CopyTo(dst []float64) []float64 {
	a := v.Array()
	copy(dst, a[:])
	return dst
}

// Into stores v in dst and returns dst.
func (v PVector) Into(dst *PVector) *PVector {
	*dst = v
	return dst
}

func (v PVector) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v PVector) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Heading is the angle of the XY projection, atan2(y, x).
func (v PVector) Heading() units.Rad {
	return units.Rad(math.Atan2(v.Y, v.X))
}

// Deprecated: use Heading.
func (v PVector) Heading2D() units.Rad { return v.Heading() }

func (v PVector) Dot(o PVector) float64 { return Dot(v, o) }

func (v PVector) Cross(o PVector) PVector { return Cross(v, o) }

func (v PVector) Dist(o PVector) float64 { return Dist(v, o) }

func (v PVector) DistSq(o PVector) float64 { return DistSq(v, o) }

func (v PVector) AngleBetween(o PVector) units.Rad { return AngleBetween(v, o) }

// IsZero reports whether every coordinate is within DefaultTolerance of 0.
func (v PVector) IsZero() bool {
	return v.IsZeroTol(DefaultTolerance)
}

func (v PVector) IsZeroTol(tol float64) bool {
	return IsZeroTol(v.X, tol) && IsZeroTol(v.Y, tol) && IsZeroTol(v.Z, tol)
}

func (v PVector) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

func (v PVector) Equals(o PVector) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// Hash is a base 31 polynomial over the coordinate bits. Vectors that are
// Equals hash the same, -0 is folded into 0 for that reason.
func (v PVector) Hash() uint64 {
	h := uint64(1)
	h = 31*h + floatBits(v.X)
	h = 31*h + floatBits(v.Y)
	return 31*h + floatBits(v.Z)
}

func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

func (v PVector) String() string {
	return fmt.Sprintf("[ %v, %v, %v ]", v.X, v.Y, v.Z)
}

func (v PVector) CompareTo(o PVector) int { return Compare(v, o) }

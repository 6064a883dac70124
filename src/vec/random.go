package vec

import (
	"math"
	"math/rand/v2"

	"github.com/xernobyl/pvector/src/units"
)

// Source yields uniform values in [0, 1). *rand.Rand from math/rand and
// math/rand/v2 both satisfy it, so does a sketch context.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

func sourceOrDefault(src Source) Source {
	if src == nil {
		return globalSource{}
	}
	return src
}

// Random2D is a uniformly distributed point on the unit circle in the XY
// plane. A nil src uses the package generator.
func Random2D(src Source) PVector {
	src = sourceOrDefault(src)
	return FromAngle(units.Rad(units.Tau * src.Float64()))
}

// Random3D is a uniformly distributed point on the unit sphere: azimuth is
// uniform in [0, Tau), z is uniform in [-1, 1] and the ring radius at that
// height is sqrt(1 - z*z).
func Random3D(src Source) PVector {
	src = sourceOrDefault(src)
	ang := units.Tau * src.Float64()
	z := 2*src.Float64() - 1
	r := math.Sqrt(1 - z*z)
	s, c := math.Sincos(ang)
	return PVector{r * c, r * s, z}
}

func (p *PVector) Random2D(src Source) *PVector {
	*p = Random2D(src)
	return p
}

func (p *PVector) Random3D(src Source) *PVector {
	*p = Random3D(src)
	return p
}

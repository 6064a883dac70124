package vec

import "github.com/chewxy/math32"

// Vec3 is the packed float32 form of a PVector, laid out like a GPU vertex
// attribute or a Float32Array slot.
type Vec3 [3]float32

// IsFinite is false when any component is NaN or overflowed to ±Inf.
func (a Vec3) IsFinite() bool {
	for _, c := range a {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Float32 narrows v to single precision. Values past ±math.MaxFloat32
// become ±Inf.
func (v PVector) Float32() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func FromVec3(a Vec3) PVector {
	return PVector{float64(a[0]), float64(a[1]), float64(a[2])}
}

// CopyToFloat32 writes up to three coordinates into dst and returns it.
func (v PVector) CopyToFloat32(dst []float32) []float32 {
	a := v.Float32()
	copy(dst, a[:])
	return dst
}

// PackFloat32 flattens vs into x0,y0,z0,x1,... single precision values.
// nonFinite counts the vectors that did not survive the narrowing.
func PackFloat32(vs []PVector) (packed []float32, nonFinite int) {
	packed = make([]float32, 3*len(vs))
	for i, v := range vs {
		a := v.Float32()
		if !a.IsFinite() {
			nonFinite++
		}
		copy(packed[3*i:], a[:])
	}
	return packed, nonFinite
}

package main

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/xernobyl/pvector/src/vec"
)

// WriteFloat32 writes vs as packed little endian float32 triples, ready to
// upload as a vertex buffer. It reports how many vertices came out NaN or
// infinite after narrowing.
func WriteFloat32(w io.Writer, vs []vec.PVector) (int, error) {
	packed, nonFinite := vec.PackFloat32(vs)
	return nonFinite, binary.Write(w, binary.LittleEndian, packed)
}

// ReadFloat32 is the inverse of WriteFloat32.
func ReadFloat32(r io.Reader, count int) ([]vec.PVector, error) {
	packed := make([]float32, 3*count)
	if err := binary.Read(r, binary.LittleEndian, packed); err != nil {
		return nil, err
	}

	vs := make([]vec.PVector, count)
	for i := range vs {
		vs[i] = vec.FromVec3(vec.Vec3(packed[3*i : 3*i+3]))
	}
	return vs, nil
}

type Summary struct {
	Vertices     int        `json:"vertices"`
	Triangles    int        `json:"triangles"`
	BoundsMin    [3]float64 `json:"bounding_box_min"`
	BoundsMax    [3]float64 `json:"bounding_box_max"`
	Centroid     [3]float64 `json:"centroid"`
	LongestSide  float64    `json:"longest_side"`
	ShortestSide float64    `json:"shortest_side"`
	MaxMagnitude float64    `json:"max_magnitude"`
	NaNVertices  int        `json:"nan_vertices"`
	Steps        []string   `json:"steps,omitempty"`
}

// Summarize describes m. NaN vertices are counted and left out of the
// bounds, centroid and magnitude so the summary stays encodable.
func Summarize(m *Mesh, steps []Step) Summary {
	s := Summary{
		Vertices:  len(m.Vertices),
		Triangles: len(m.Triangles),
	}

	finite := make([]vec.PVector, 0, len(m.Vertices))
	for _, v := range m.Vertices {
		if v.IsNaN() {
			s.NaNVertices++
			continue
		}
		finite = append(finite, v)
		s.MaxMagnitude = math.Max(s.MaxMagnitude, v.Mag())
	}

	lo, hi := vec.Bounds(finite)
	s.BoundsMin = lo.Array()
	s.BoundsMax = hi.Array()
	s.Centroid = vec.Centroid(finite).Array()

	size := vec.Sub(hi, lo)
	s.LongestSide = vec.Max3(size.X, size.Y, size.Z)
	s.ShortestSide = vec.Min3(size.X, size.Y, size.Z)

	for _, step := range steps {
		s.Steps = append(s.Steps, step.String())
	}
	return s
}

func writeJSON(path string, v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0644)
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/xernobyl/pvector/src/vec"
)

type Triangle [3]uint32

type Mesh struct {
	Vertices  []vec.PVector
	Triangles []Triangle
	Min       vec.PVector // Bounding box bottom corner
	Max       vec.PVector // Bounding box top corner
}

// UpdateBounds recomputes Min and Max from the vertices.
func (m *Mesh) UpdateBounds() {
	m.Min, m.Max = vec.Bounds(m.Vertices)
}

// SortVertices orders the vertices by vec.Compare and remaps the triangles
// so they still point at the same positions.
func (m *Mesh) SortVertices() {
	order := make([]int, len(m.Vertices))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return vec.Compare(m.Vertices[a], m.Vertices[b])
	})

	remap := make([]uint32, len(order))
	sorted := make([]vec.PVector, len(order))
	for newIdx, oldIdx := range order {
		remap[oldIdx] = uint32(newIdx)
		sorted[newIdx] = m.Vertices[oldIdx]
	}

	m.Vertices = sorted
	for i, t := range m.Triangles {
		m.Triangles[i] = Triangle{remap[t[0]], remap[t[1]], remap[t[2]]}
	}
}

// LoadOBJ loads a mesh from an OBJ file.
func LoadOBJ(filepath string, log *zap.Logger) (*Mesh, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mesh, err := ReadOBJ(file, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return mesh, nil
}

// ReadOBJ parses vertices and faces. Faces with more than three corners are
// split into a triangle fan. Normals, texture coordinates and groups are
// skipped.
func ReadOBJ(r io.Reader, log *zap.Logger) (*Mesh, error) {
	model := &Mesh{}
	seen := make(map[vec.PVector]int)
	duplicates := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := strings.Fields(line)

		switch tokens[0] {
		case "v":
			// a fourth value is the optional w weight
			if len(tokens) != 4 && len(tokens) != 5 {
				return nil, fmt.Errorf("line %d: unexpected number of coordinates: %s", lineNo, line)
			}

			var xyz [3]float64
			for i := range 3 {
				f, err := strconv.ParseFloat(tokens[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				xyz[i] = f
			}

			vertex := vec.FromArray(xyz[:])
			seen[vertex]++
			if seen[vertex] > 1 {
				duplicates++
			}
			model.Vertices = append(model.Vertices, vertex)

		case "f":
			if len(tokens) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least three corners: %s", lineNo, line)
			}

			corners := make([]uint32, 0, len(tokens)-1)
			for _, tok := range tokens[1:] {
				idx, err := faceIndex(tok, len(model.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners = append(corners, idx)
			}

			for i := 1; i+1 < len(corners); i++ {
				model.Triangles = append(model.Triangles, Triangle{corners[0], corners[i], corners[i+1]})
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if duplicates > 0 {
		log.Warn("mesh has duplicated vertices", zap.Int("duplicates", duplicates))
	}

	model.UpdateBounds()
	log.Debug("mesh loaded",
		zap.Int("vertices", len(model.Vertices)),
		zap.Int("triangles", len(model.Triangles)))

	return model, nil
}

// faceIndex resolves a "v", "v/vt", "v//vn" or "v/vt/vn" face token to a
// zero based vertex index. Negative indices count back from the last vertex.
func faceIndex(tok string, vertexCount int) (uint32, error) {
	i, err := strconv.Atoi(strings.Split(tok, "/")[0])
	if err != nil {
		return 0, fmt.Errorf("bad face index %q: %w", tok, err)
	}

	switch {
	case i > 0:
		i--
	case i < 0:
		i += vertexCount
	default:
		return 0, fmt.Errorf("face index 0 is not valid")
	}

	if i < 0 || i >= vertexCount {
		return 0, fmt.Errorf("face index %q out of range (%d vertices)", tok, vertexCount)
	}
	return uint32(i), nil
}

// WriteOBJ writes the mesh back out with one based face indices.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", formatCoord(v.X), formatCoord(v.Y), formatCoord(v.Z))
	}
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
	return bw.Flush()
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

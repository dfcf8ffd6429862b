package asset

import (
	"math"

	"github.com/lixenwraith/buildings/core"
	"github.com/lixenwraith/buildings/parameter/visual"
)

// Mesh is unit-sized 2D geometry in the XY plane, centered on the origin
type Mesh struct {
	Name     string
	Vertices [][3]float32
	Indices  []uint32 // Triangle list
	Glyph    rune     // Terminal stand-in for the geometry
}

// Triangles returns the number of triangles in the index list
func (m Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// TriangleMesh is an upward isosceles triangle
func TriangleMesh() Mesh {
	return Mesh{
		Name: "triangle",
		Vertices: [][3]float32{
			{-0.5, -0.5, 0},
			{0, 0.5, 0},
			{0.5, -0.5, 0},
		},
		Indices: []uint32{0, 1, 2},
		Glyph:   visual.GlyphTriangle,
	}
}

// CircleMesh is a triangle fan of radius 0.5
func CircleMesh(segments int) Mesh {
	if segments < 3 {
		segments = 3
	}
	vertices := make([][3]float32, 0, segments+1)
	vertices = append(vertices, [3]float32{0, 0, 0})
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		vertices = append(vertices, [3]float32{
			float32(0.5 * math.Cos(a)),
			float32(0.5 * math.Sin(a)),
			0,
		})
	}

	indices := make([]uint32, 0, segments*3)
	for i := 0; i < segments; i++ {
		next := (i+1)%segments + 1
		indices = append(indices, 0, uint32(i+1), uint32(next))
	}

	return Mesh{
		Name:     "circle",
		Vertices: vertices,
		Indices:  indices,
		Glyph:    visual.GlyphCircle,
	}
}

// QuadMesh is a unit square split into two triangles
func QuadMesh() Mesh {
	return Mesh{
		Name: "quad",
		Vertices: [][3]float32{
			{-0.5, -0.5, 0},
			{-0.5, 0.5, 0},
			{0.5, 0.5, 0},
			{0.5, -0.5, 0},
		},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
		Glyph:   visual.GlyphQuad,
	}
}

// Material is a flat color fill
type Material struct {
	Name  string
	Color core.RGB
}

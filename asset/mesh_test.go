package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeshes_IndicesInRange(t *testing.T) {
	for _, m := range []Mesh{TriangleMesh(), CircleMesh(16), QuadMesh()} {
		for _, idx := range m.Indices {
			assert.Less(t, int(idx), len(m.Vertices), "mesh %s", m.Name)
		}
		assert.Zero(t, len(m.Indices)%3, "mesh %s must be a triangle list", m.Name)
		assert.NotZero(t, m.Glyph, "mesh %s needs a glyph", m.Name)
	}
}

func TestMeshes_TriangleCounts(t *testing.T) {
	assert.Equal(t, 1, TriangleMesh().Triangles())
	assert.Equal(t, 2, QuadMesh().Triangles())
	assert.Equal(t, 16, CircleMesh(16).Triangles())
	assert.Equal(t, 3, CircleMesh(1).Triangles(), "segments clamp to 3")
}

func TestLibrary_Handles(t *testing.T) {
	lib := NewLibrary()

	_, ok := lib.Mesh(0)
	assert.False(t, ok, "null handle must not resolve")

	h := lib.AddMesh(QuadMesh())
	assert.Equal(t, 1, int(h))
	m, ok := lib.Mesh(h)
	assert.True(t, ok)
	assert.Equal(t, "quad", m.Name)

	_, ok = lib.Mesh(h + 1)
	assert.False(t, ok)

	mh := lib.AddMaterial(Material{Name: "x"})
	mat, ok := lib.Material(mh)
	assert.True(t, ok)
	assert.Equal(t, "x", mat.Name)
}

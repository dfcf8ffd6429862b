package asset

import (
	"sync"

	"github.com/lixenwraith/buildings/component"
)

// Library owns mesh and material assets and hands out handles to them
// Handles are 1-based; the zero handle never resolves
// Guarded like the engine stores: startup writes once, but a renderer may
// resolve handles from its own goroutine
type Library struct {
	mu        sync.RWMutex
	meshes    []Mesh
	materials []Material
}

// NewLibrary creates an empty asset library
func NewLibrary() *Library {
	return &Library{}
}

// AddMesh stores a mesh and returns its handle
func (l *Library) AddMesh(m Mesh) component.MeshHandle {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.meshes = append(l.meshes, m)
	return component.MeshHandle(len(l.meshes))
}

// AddMaterial stores a material and returns its handle
func (l *Library) AddMaterial(m Material) component.MaterialHandle {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.materials = append(l.materials, m)
	return component.MaterialHandle(len(l.materials))
}

// Mesh resolves a mesh handle
func (l *Library) Mesh(h component.MeshHandle) (Mesh, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if h == 0 || int(h) > len(l.meshes) {
		return Mesh{}, false
	}
	return l.meshes[h-1], true
}

// Material resolves a material handle
func (l *Library) Material(h component.MaterialHandle) (Material, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if h == 0 || int(h) > len(l.materials) {
		return Material{}, false
	}
	return l.materials[h-1], true
}

// MeshCount returns the number of stored meshes
func (l *Library) MeshCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.meshes)
}

// MaterialCount returns the number of stored materials
func (l *Library) MaterialCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.materials)
}

package asset

import (
	"errors"
	"fmt"
	"maps"
	"math"

	"github.com/lixenwraith/buildings/component"
)

var (
	// ErrIncompleteRegistry is returned when a trait value has no usable entry
	ErrIncompleteRegistry = errors.New("visual asset registry is incomplete")

	// ErrUnknownTrait is returned for an entry keyed outside its enumeration
	ErrUnknownTrait = errors.New("visual asset registry has unknown trait value")
)

// Registry maps every trait value to its renderable resource
// Read-only after construction; safe to share
type Registry struct {
	meshes    map[component.Shape]component.MeshHandle
	scales    map[component.Size]float64
	materials map[component.Color]component.MaterialHandle
}

// NewRegistry builds a registry and checks it is total over every axis
// The input maps are copied
func NewRegistry(
	meshes map[component.Shape]component.MeshHandle,
	scales map[component.Size]float64,
	materials map[component.Color]component.MaterialHandle,
) (*Registry, error) {
	for s, h := range meshes {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTrait, s)
		}
		if h == 0 {
			return nil, fmt.Errorf("%w: null mesh for shape %s", ErrIncompleteRegistry, s)
		}
	}
	for s, f := range scales {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTrait, s)
		}
		if !(f > 0) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: scale %v for size %s", ErrIncompleteRegistry, f, s)
		}
	}
	for c, h := range materials {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTrait, c)
		}
		if h == 0 {
			return nil, fmt.Errorf("%w: null material for color %s", ErrIncompleteRegistry, c)
		}
	}

	// Totality: walk declared values rather than the supplied keys
	for _, s := range component.AllShapes() {
		if _, ok := meshes[s]; !ok {
			return nil, fmt.Errorf("%w: no mesh for shape %s", ErrIncompleteRegistry, s)
		}
	}
	for _, s := range component.AllSizes() {
		if _, ok := scales[s]; !ok {
			return nil, fmt.Errorf("%w: no scale for size %s", ErrIncompleteRegistry, s)
		}
	}
	for _, c := range component.AllColors() {
		if _, ok := materials[c]; !ok {
			return nil, fmt.Errorf("%w: no material for color %s", ErrIncompleteRegistry, c)
		}
	}

	return &Registry{
		meshes:    maps.Clone(meshes),
		scales:    maps.Clone(scales),
		materials: maps.Clone(materials),
	}, nil
}

// MeshFor returns the mesh of a shape, panics on a completeness defect
func (r *Registry) MeshFor(s component.Shape) component.MeshHandle {
	h, ok := r.meshes[s]
	if !ok {
		panic(fmt.Sprintf("asset registry: no mesh for shape %s", s))
	}
	return h
}

// ScaleFor returns the scale multiplier of a size, panics on a completeness defect
func (r *Registry) ScaleFor(s component.Size) float64 {
	f, ok := r.scales[s]
	if !ok {
		panic(fmt.Sprintf("asset registry: no scale for size %s", s))
	}
	return f
}

// MaterialFor returns the material of a color, panics on a completeness defect
func (r *Registry) MaterialFor(c component.Color) component.MaterialHandle {
	h, ok := r.materials[c]
	if !ok {
		panic(fmt.Sprintf("asset registry: no material for color %s", c))
	}
	return h
}

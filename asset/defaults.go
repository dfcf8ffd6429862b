package asset

import (
	"github.com/lixenwraith/buildings/component"
	"github.com/lixenwraith/buildings/parameter"
	"github.com/lixenwraith/buildings/parameter/visual"
)

// NewDefaultRegistry populates lib with the building meshes and materials
// and returns the registry over them
func NewDefaultRegistry(lib *Library) (*Registry, error) {
	meshes := map[component.Shape]component.MeshHandle{
		component.ShapeTriangle: lib.AddMesh(TriangleMesh()),
		component.ShapeCircle:   lib.AddMesh(CircleMesh(parameter.CircleMeshSegments)),
		component.ShapeQuad:     lib.AddMesh(QuadMesh()),
	}

	scales := map[component.Size]float64{
		component.SizeBig:    parameter.BuildingScaleBig,
		component.SizeMedium: parameter.BuildingScaleMedium,
		component.SizeSmall:  parameter.BuildingScaleSmall,
	}

	materials := map[component.Color]component.MaterialHandle{
		component.ColorBlack: lib.AddMaterial(Material{Name: "black", Color: visual.RgbBuildingBlack}),
		component.ColorWhite: lib.AddMaterial(Material{Name: "white", Color: visual.RgbBuildingWhite}),
		component.ColorPink:  lib.AddMaterial(Material{Name: "pink", Color: visual.RgbBuildingPink}),
		component.ColorBlue:  lib.AddMaterial(Material{Name: "blue", Color: visual.RgbBuildingBlue}),
	}

	return NewRegistry(meshes, scales, materials)
}

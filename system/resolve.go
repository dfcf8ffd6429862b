package system

import (
	"github.com/lixenwraith/buildings/asset"
	"github.com/lixenwraith/buildings/component"
	"github.com/lixenwraith/buildings/config"
	"github.com/lixenwraith/buildings/core"
	"github.com/lixenwraith/buildings/engine"
)

// Resolve turns a building into its renderable form
// Pure; panics only if reg is missing an entry
func Resolve(b component.BuildingComponent, reg *asset.Registry, baseSize float64) component.VisualComponent {
	return component.VisualComponent{
		Mesh:     reg.MeshFor(b.Shape()),
		Scale:    baseSize * reg.ScaleFor(b.Size()),
		Material: reg.MaterialFor(b.Color()),
	}
}

// BuildingSprite is the inventory sprite builder for buildings
type BuildingSprite struct {
	Building component.BuildingComponent
}

// BuildSprite defers resolution until the registry is guaranteed to exist
func (s BuildingSprite) BuildSprite() engine.EntityCommand {
	return BuildingSpriteCommand{Building: s.Building}
}

// BuildingSpriteCommand attaches the resolved visual to its target entity
type BuildingSpriteCommand struct {
	Building component.BuildingComponent
}

// Apply panics when the registry resource is absent: registry construction
// must be scheduled before any inventory generation
func (c BuildingSpriteCommand) Apply(w *engine.World, e core.Entity) {
	reg := engine.MustGetResource[*asset.Registry](w.Resources)
	cfg := engine.MustGetResource[*config.Config](w.Resources)
	w.Visuals.Set(e, Resolve(c.Building, reg, cfg.Layout.BaseVisualSize))
}

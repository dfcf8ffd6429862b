package system

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/buildings/component"
	"github.com/lixenwraith/buildings/config"
	"github.com/lixenwraith/buildings/core"
	"github.com/lixenwraith/buildings/engine"
	"github.com/lixenwraith/buildings/inventory"
	"github.com/lixenwraith/buildings/trait"
	"github.com/lixenwraith/buildings/vmath"
)

// GenerateInventory is the startup step that draws the configured number of
// buildings, spawns them and lays them out in an inventory
//
// Optional resources: *trait.Sampler replaces the default tables,
// *inventory.Configuration replaces the default slot positions
func GenerateInventory(w *engine.World) error {
	cfg := engine.MustGetResource[*config.Config](w.Resources)

	sampler, ok := engine.GetResource[*trait.Sampler](w.Resources)
	if !ok {
		sampler = trait.NewDefaultSampler()
	}

	positions := inventory.DefaultPositions(
		cfg.Inventory.Count,
		cfg.Layout.ColumnX,
		cfg.Layout.BaseVisualSize,
		cfg.Layout.SlotGap,
	)
	if layout, ok := engine.GetResource[*inventory.Configuration](w.Resources); ok {
		positions = layout.Positions
	}
	if len(positions) != cfg.Inventory.Count {
		return fmt.Errorf("%w: %d items, %d positions", inventory.ErrLayoutMismatch, cfg.Inventory.Count, len(positions))
	}

	// One generator per pass, never shared
	rng := vmath.NewFastRand(cfg.Inventory.Seed)
	buildings, err := sampler.SampleN(rng, cfg.Inventory.Count)
	if err != nil {
		return fmt.Errorf("failed to draw inventory: %w", err)
	}

	items := make([]inventory.Item, len(buildings))
	for i, b := range buildings {
		e := w.CreateEntity()
		w.Buildings.Set(e, b)
		items[i] = inventory.Item{Entity: e, Sprite: BuildingSprite{Building: b}}
	}

	passID := uuid.NewString()
	container, err := inventory.Spawn(w, items, inventory.Configuration{
		Positions: positions,
		Seed:      cfg.Inventory.Seed,
		PassID:    passID,
	})
	if err != nil {
		return err
	}

	log.Printf("pass %s: seed %d drew %d building(s) in %d draw(s) into inventory %d",
		passID, cfg.Inventory.Seed, len(buildings), rng.Draws(), container)
	return nil
}

// Descriptors returns the buildings of an inventory in slot order
func Descriptors(w *engine.World, container core.Entity) []component.BuildingComponent {
	entities, ok := inventory.Items(w, container)
	if !ok {
		return nil
	}
	out := make([]component.BuildingComponent, 0, len(entities))
	for _, e := range entities {
		if b, ok := w.Buildings.Get(e); ok {
			out = append(out, b)
		}
	}
	return out
}

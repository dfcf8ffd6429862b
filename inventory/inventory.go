// Package inventory lays generated items out in slots and queues their
// sprites. It knows nothing about what an item looks like
package inventory

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/buildings/component"
	"github.com/lixenwraith/buildings/core"
	"github.com/lixenwraith/buildings/engine"
	"github.com/lixenwraith/buildings/vmath"
)

// ErrLayoutMismatch is returned when items and positions differ in length
var ErrLayoutMismatch = errors.New("inventory items and positions differ in length")

// SpriteBuilder produces the deferred command that gives an item its visual
type SpriteBuilder interface {
	BuildSprite() engine.EntityCommand
}

// Item is one entity to place, with the builder for its sprite
type Item struct {
	Entity core.Entity
	Sprite SpriteBuilder
}

// Configuration holds one screen position per slot, index i for item i
type Configuration struct {
	Positions []vmath.Vec3F
	Seed      uint64
	PassID    string
}

// DefaultPositions stacks count slots upward from (columnX, 0)
func DefaultPositions(count int, columnX, itemSize, gap float64) []vmath.Vec3F {
	if count <= 0 {
		return nil
	}
	step := vmath.V3F(0, itemSize+gap, 0)
	origin := vmath.V3F(columnX, 0, 0)

	out := make([]vmath.Vec3F, count)
	for i := range out {
		out[i] = vmath.V3FAdd(origin, vmath.V3FScale(step, float64(i)))
	}
	return out
}

// Spawn creates the inventory container, assigns each item its slot and
// queues its sprite command. Nothing is written on a length mismatch
func Spawn(w *engine.World, items []Item, cfg Configuration) (core.Entity, error) {
	if len(items) != len(cfg.Positions) {
		return 0, fmt.Errorf("%w: %d items, %d positions", ErrLayoutMismatch, len(items), len(cfg.Positions))
	}

	container := w.CreateEntity()
	entities := make([]core.Entity, len(items))
	for i, item := range items {
		entities[i] = item.Entity
		w.Slots.Set(item.Entity, component.SlotComponent{
			Inventory: container,
			Index:     i,
			Position:  cfg.Positions[i],
		})
		if item.Sprite != nil {
			w.Commands.Push(item.Entity, item.Sprite.BuildSprite())
		}
	}

	w.Inventories.Set(container, component.InventoryComponent{
		Items:  entities,
		Seed:   cfg.Seed,
		PassID: cfg.PassID,
	})
	log.Printf("inventory %d spawned with %d slot(s), pass %s", container, len(items), cfg.PassID)

	return container, nil
}

// Items returns the entities of an inventory in slot order
func Items(w *engine.World, container core.Entity) ([]core.Entity, bool) {
	inv, ok := w.Inventories.Get(container)
	if !ok {
		return nil, false
	}
	out := make([]core.Entity, len(inv.Items))
	copy(out, inv.Items)
	return out, true
}

package component

import (
	"github.com/lixenwraith/buildings/core"
	"github.com/lixenwraith/buildings/vmath"
)

// InventoryComponent marks the container entity of one generation pass
type InventoryComponent struct {
	Items  []core.Entity // Slot order
	Seed   uint64        // Seed the items were drawn with
	PassID string
}

// SlotComponent places an item inside an inventory
type SlotComponent struct {
	Inventory core.Entity
	Index     int
	Position  vmath.Vec3F
}

package parameter

// Inventory generation defaults, overridable through config
const (
	// InventorySeed seeds the deterministic item draw
	InventorySeed uint64 = 0

	// InventorySlotCount is the number of buildings drawn per pass
	InventorySlotCount = 6

	// ItemVisualSize is the base edge length of an item in screen units
	ItemVisualSize = 64.0

	// InventoryColumnX is the horizontal position of the inventory column
	InventoryColumnX = -350.0

	// InventorySlotGap is the vertical spacing between consecutive slots
	InventorySlotGap = 10.0
)

// Building scale factors relative to ItemVisualSize
const (
	BuildingScaleBig    = 1.0
	BuildingScaleMedium = 0.75
	BuildingScaleSmall  = 0.5
)

// CircleMeshSegments is the fan resolution of the circle mesh
const CircleMeshSegments = 32

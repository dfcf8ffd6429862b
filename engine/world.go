package engine

import (
	"sync"

	"github.com/lixenwraith/buildings/component"
	"github.com/lixenwraith/buildings/core"
)

// World contains all entities, their components, resources and pending commands
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources *ResourceStore
	Commands  *CommandQueue

	// Component stores (public for direct system access)
	Buildings   *Store[component.BuildingComponent]
	Visuals     *Store[component.VisualComponent]
	Slots       *Store[component.SlotComponent]
	Inventories *Store[component.InventoryComponent]

	// Lifecycle registry, all stores implement AnyStore for uniform cleanup
	allStores []AnyStore
}

// NewWorld creates a new world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		Commands:     NewCommandQueue(),
		Buildings:    NewStore[component.BuildingComponent](),
		Visuals:      NewStore[component.VisualComponent](),
		Slots:        NewStore[component.SlotComponent](),
		Inventories:  NewStore[component.InventoryComponent](),
	}

	w.allStores = []AnyStore{
		w.Buildings,
		w.Visuals,
		w.Slots,
		w.Inventories,
	}

	return w
}

// CreateEntity reserves a new entity ID without adding any components
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Components are owned by the entity, nothing outlives it
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// EntityCount returns the number of IDs issued since creation or the last Clear
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return int(w.nextEntityID - 1)
}

// HasAnyComponent checks if an entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities, components and pending commands
// Resources survive; they belong to the session, not to the entities
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
	w.Commands.Drain()
}

// ApplyCommands runs queued entity commands in FIFO order
// Commands queued while applying run in the same call
// Returns the number of commands applied
func (w *World) ApplyCommands() int {
	applied := 0
	for {
		batch := w.Commands.Drain()
		if len(batch) == 0 {
			return applied
		}
		for _, p := range batch {
			p.Command.Apply(w, p.Entity)
			applied++
		}
	}
}

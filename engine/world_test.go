package engine

import (
	"testing"

	"github.com/lixenwraith/buildings/component"
	"github.com/lixenwraith/buildings/core"
)

func TestCreateEntityUnique(t *testing.T) {
	w := NewWorld()
	seen := make(map[core.Entity]bool)
	for i := 0; i < 100; i++ {
		e := w.CreateEntity()
		if e == 0 {
			t.Fatal("Entity 0 must never be issued")
		}
		if seen[e] {
			t.Fatalf("Duplicate entity %d", e)
		}
		seen[e] = true
	}
	if w.EntityCount() != 100 {
		t.Errorf("Expected 100 entities, got %d", w.EntityCount())
	}
}

func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Buildings.Set(e, component.NewBuilding(component.ShapeQuad, component.SizeBig, component.ColorBlue))
	w.Visuals.Set(e, component.VisualComponent{Mesh: 1, Scale: 64, Material: 1})

	if !w.HasAnyComponent(e) {
		t.Fatal("Expected entity to have components")
	}

	w.DestroyEntity(e)
	if w.HasAnyComponent(e) {
		t.Error("Expected all components removed on destroy")
	}
}

func TestClearResetsEntitiesAndCommands(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Buildings.Set(e, component.BuildingComponent{})
	w.Commands.Push(e, EntityCommandFunc(func(*World, core.Entity) {}))
	AddResource(w.Resources, &testRegistry{name: "kept"})

	w.Clear()

	if w.EntityCount() != 0 || w.Buildings.Count() != 0 {
		t.Error("Expected no entities after Clear")
	}
	if w.Commands.Len() != 0 {
		t.Error("Expected command queue drained by Clear")
	}
	if _, ok := GetResource[*testRegistry](w.Resources); !ok {
		t.Error("Expected resources to survive Clear")
	}
	if next := w.CreateEntity(); next != 1 {
		t.Errorf("Expected IDs to restart at 1, got %d", next)
	}
}

func TestApplyCommandsFIFOAndNested(t *testing.T) {
	w := NewWorld()
	var order []core.Entity

	record := EntityCommandFunc(func(_ *World, e core.Entity) {
		order = append(order, e)
	})
	spawner := EntityCommandFunc(func(w *World, e core.Entity) {
		order = append(order, e)
		w.Commands.Push(e+10, record)
	})

	w.Commands.Push(1, record)
	w.Commands.Push(2, spawner)
	w.Commands.Push(3, record)

	if n := w.ApplyCommands(); n != 4 {
		t.Errorf("Expected 4 applied commands, got %d", n)
	}

	expected := []core.Entity{1, 2, 3, 12}
	if len(order) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Position %d: expected %d, got %d", i, expected[i], order[i])
		}
	}
	if w.Commands.Len() != 0 {
		t.Error("Expected empty queue after ApplyCommands")
	}
}

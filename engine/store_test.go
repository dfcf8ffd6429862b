package engine

import (
	"testing"

	"github.com/lixenwraith/buildings/core"
)

// MockComponent for testing
type MockComponent struct {
	Value int
}

func TestStoreSetGet(t *testing.T) {
	s := NewStore[MockComponent]()
	s.Set(1, MockComponent{Value: 10})
	s.Set(2, MockComponent{Value: 20})
	s.Set(1, MockComponent{Value: 11}) // update keeps a single slot

	if s.Count() != 2 {
		t.Errorf("Expected 2 entities, got %d", s.Count())
	}
	if v, ok := s.Get(1); !ok || v.Value != 11 {
		t.Errorf("Expected updated value 11, got %v (ok=%v)", v, ok)
	}
	if _, ok := s.Get(3); ok {
		t.Error("Expected missing entity lookup to fail")
	}
}

func TestStoreRemovePreservesOrder(t *testing.T) {
	s := NewStore[MockComponent]()
	for e := core.Entity(1); e <= 4; e++ {
		s.Set(e, MockComponent{Value: int(e)})
	}

	s.Remove(2)
	s.Remove(99) // absent, no-op

	all := s.All()
	expected := []core.Entity{1, 3, 4}
	if len(all) != len(expected) {
		t.Fatalf("Expected %d entities, got %d", len(expected), len(all))
	}
	for i := range expected {
		if all[i] != expected[i] {
			t.Errorf("Position %d: expected entity %d, got %d", i, expected[i], all[i])
		}
	}
	if s.Has(2) {
		t.Error("Expected entity 2 removed")
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore[MockComponent]()
	s.Set(1, MockComponent{})

	all := s.All()
	all[0] = 42
	if s.All()[0] != 1 {
		t.Error("Mutating All() result leaked into store")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[MockComponent]()
	s.Set(1, MockComponent{})
	s.Set(2, MockComponent{})
	s.Clear()

	if s.Count() != 0 || s.Has(1) {
		t.Errorf("Expected empty store after Clear, got %d entities", s.Count())
	}
}

package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/buildings/core"
)

func stepNames(steps []*Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}

func TestScheduleRespectsAfter(t *testing.T) {
	s := NewSchedule()
	var ran []string
	mark := func(name string) StepFunc {
		return func(*World) error {
			ran = append(ran, name)
			return nil
		}
	}

	// Declared in reverse of the required order
	s.Add("generate", mark("generate")).After("registry")
	s.Add("registry", mark("registry"))
	s.Add("audit", mark("audit")).After("generate", "registry")

	if err := s.Run(NewWorld()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	expected := []string{"registry", "generate", "audit"}
	for i := range expected {
		if i >= len(ran) || ran[i] != expected[i] {
			t.Fatalf("Expected order %v, got %v", expected, ran)
		}
	}
}

func TestScheduleDeclarationOrderBreaksTies(t *testing.T) {
	s := NewSchedule()
	noop := func(*World) error { return nil }
	s.Add("a", noop)
	s.Add("b", noop)
	s.Add("c", noop)

	order, err := s.Order()
	if err != nil {
		t.Fatal(err)
	}
	got := stepNames(order)
	if got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Expected declaration order, got %v", got)
	}
}

func TestScheduleGraphErrors(t *testing.T) {
	noop := func(*World) error { return nil }

	cycle := NewSchedule()
	cycle.Add("a", noop).After("b")
	cycle.Add("b", noop).After("a")
	if _, err := cycle.Order(); !errors.Is(err, ErrStepCycle) {
		t.Errorf("Expected ErrStepCycle, got %v", err)
	}

	unknown := NewSchedule()
	unknown.Add("a", noop).After("missing")
	if _, err := unknown.Order(); !errors.Is(err, ErrUnknownStep) {
		t.Errorf("Expected ErrUnknownStep, got %v", err)
	}

	dup := NewSchedule()
	dup.Add("a", noop)
	dup.Add("a", noop)
	if _, err := dup.Order(); !errors.Is(err, ErrDuplicateStep) {
		t.Errorf("Expected ErrDuplicateStep, got %v", err)
	}
}

func TestScheduleAbortsOnStepError(t *testing.T) {
	boom := errors.New("boom")
	laterRan := false

	s := NewSchedule()
	s.Add("first", func(*World) error { return boom })
	s.Add("second", func(*World) error {
		laterRan = true
		return nil
	}).After("first")

	err := s.Run(NewWorld())
	if !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped step error, got %v", err)
	}
	if laterRan {
		t.Error("Expected dependent step skipped after failure")
	}
}

func TestScheduleFlushesCommandsBetweenSteps(t *testing.T) {
	s := NewSchedule()
	applied := false

	s.Add("queue", func(w *World) error {
		w.Commands.Push(w.CreateEntity(), EntityCommandFunc(func(*World, core.Entity) {
			applied = true
		}))
		return nil
	})
	s.Add("check", func(w *World) error {
		if !applied {
			return errors.New("command not applied before next step")
		}
		return nil
	}).After("queue")

	if err := s.Run(NewWorld()); err != nil {
		t.Fatal(err)
	}
}

package component

import "testing"

func TestEnumeratorsCoverDeclaredValues(t *testing.T) {
	if got := len(AllShapes()); got != int(ShapeCount) {
		t.Errorf("Expected %d shapes, got %d", ShapeCount, got)
	}
	if got := len(AllSizes()); got != int(SizeCount) {
		t.Errorf("Expected %d sizes, got %d", SizeCount, got)
	}
	if got := len(AllColors()); got != int(ColorCount) {
		t.Errorf("Expected %d colors, got %d", ColorCount, got)
	}
}

func TestBuildingComparable(t *testing.T) {
	a := NewBuilding(ShapeTriangle, SizeBig, ColorBlack)
	b := NewBuilding(ShapeTriangle, SizeBig, ColorBlack)
	c := NewBuilding(ShapeQuad, SizeBig, ColorBlack)

	if a != b {
		t.Error("Expected equal descriptors to compare equal")
	}
	if a == c {
		t.Error("Expected different descriptors to compare unequal")
	}

	seen := map[BuildingComponent]int{a: 1}
	seen[b]++
	if seen[a] != 2 || len(seen) != 1 {
		t.Errorf("Expected descriptor to hash consistently, got %v", seen)
	}
}

func TestBuildingValidity(t *testing.T) {
	if !NewBuilding(ShapeQuad, SizeSmall, ColorBlue).Valid() {
		t.Error("Expected declared values to be valid")
	}
	if NewBuilding(ShapeCount, SizeSmall, ColorBlue).Valid() {
		t.Error("Expected sentinel shape to be invalid")
	}
	if NewBuilding(ShapeQuad, SizeSmall, Color(200)).Valid() {
		t.Error("Expected out-of-range color to be invalid")
	}
}

func TestBuildingString(t *testing.T) {
	b := NewBuilding(ShapeCircle, SizeMedium, ColorPink)
	if got := b.String(); got != "circle/medium/pink" {
		t.Errorf("Expected circle/medium/pink, got %q", got)
	}
	if got := Shape(9).String(); got != "shape(9)" {
		t.Errorf("Expected shape(9), got %q", got)
	}
}

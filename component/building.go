package component

import "fmt"

// Shape identifies the mesh family of a building
type Shape uint8

const (
	ShapeTriangle Shape = iota
	ShapeCircle
	ShapeQuad
	ShapeCount // Sentinel for array sizing and totality checks
)

// Size identifies the scale class of a building
type Size uint8

const (
	SizeSmall Size = iota
	SizeMedium
	SizeBig
	SizeCount
)

// Color identifies the material of a building
type Color uint8

const (
	ColorBlack Color = iota
	ColorWhite
	ColorPink
	ColorBlue
	ColorCount
)

var (
	shapeNames = [ShapeCount]string{"triangle", "circle", "quad"}
	sizeNames  = [SizeCount]string{"small", "medium", "big"}
	colorNames = [ColorCount]string{"black", "white", "pink", "blue"}
)

func (s Shape) Valid() bool { return s < ShapeCount }
func (s Size) Valid() bool  { return s < SizeCount }
func (c Color) Valid() bool { return c < ColorCount }

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
	return shapeNames[s]
}

func (s Size) String() string {
	if !s.Valid() {
		return fmt.Sprintf("size(%d)", uint8(s))
	}
	return sizeNames[s]
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// AllShapes returns every declared shape in declaration order
func AllShapes() []Shape {
	out := make([]Shape, 0, ShapeCount)
	for s := Shape(0); s < ShapeCount; s++ {
		out = append(out, s)
	}
	return out
}

// AllSizes returns every declared size in declaration order
func AllSizes() []Size {
	out := make([]Size, 0, SizeCount)
	for s := Size(0); s < SizeCount; s++ {
		out = append(out, s)
	}
	return out
}

// AllColors returns every declared color in declaration order
func AllColors() []Color {
	out := make([]Color, 0, ColorCount)
	for c := Color(0); c < ColorCount; c++ {
		out = append(out, c)
	}
	return out
}

// BuildingComponent is the generated visual identity of an inventory item
// Value type: comparable, usable as a map key, never mutated after spawn
type BuildingComponent struct {
	shape Shape
	size  Size
	color Color
}

// NewBuilding composes one value per trait axis
func NewBuilding(shape Shape, size Size, color Color) BuildingComponent {
	return BuildingComponent{shape: shape, size: size, color: color}
}

func (b BuildingComponent) Shape() Shape { return b.shape }
func (b BuildingComponent) Size() Size   { return b.size }
func (b BuildingComponent) Color() Color { return b.color }

// Valid reports whether every field is a member of its enumeration
func (b BuildingComponent) Valid() bool {
	return b.shape.Valid() && b.size.Valid() && b.color.Valid()
}

func (b BuildingComponent) String() string {
	return fmt.Sprintf("%s/%s/%s", b.shape, b.size, b.color)
}

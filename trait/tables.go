package trait

import "github.com/lixenwraith/buildings/component"

// Default weight tables, entry order is part of the seeded output
var (
	ShapeWeights = Table[component.Shape]{
		{component.ShapeTriangle, 2},
		{component.ShapeCircle, 2},
		{component.ShapeQuad, 2},
	}

	SizeWeights = Table[component.Size]{
		{component.SizeBig, 1},
		{component.SizeMedium, 2},
		{component.SizeSmall, 1},
	}

	ColorWeights = Table[component.Color]{
		{component.ColorBlack, 5},
		{component.ColorWhite, 5},
		{component.ColorPink, 1},
		{component.ColorBlue, 1},
	}
)

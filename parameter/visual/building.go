package visual

import "github.com/lixenwraith/buildings/core"

// Building palette
var (
	RgbBuildingBlack = core.RGB{R: 0, G: 0, B: 0}
	RgbBuildingWhite = core.RGB{R: 255, G: 255, B: 255}
	RgbBuildingPink  = core.RGB{R: 255, G: 192, B: 203}
	RgbBuildingBlue  = core.RGB{R: 0, G: 0, B: 255}
)

// Terminal glyphs per mesh family
const (
	GlyphTriangle = '▲'
	GlyphCircle   = '●'
	GlyphQuad     = '■'
)

// RgbSlotBackground fills empty inventory slot cells
var RgbSlotBackground = core.RGB{R: 40, G: 40, B: 48}

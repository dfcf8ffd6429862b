package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/buildings/core"
)

// ToTcell converts an explicit RGB to a true-color tcell color
func ToTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Contrast picks black or white text for readability over bg
func Contrast(bg core.RGB) core.RGB {
	if bg.Luma() > 127 {
		return core.RGBBlack
	}
	return core.RGBWhite
}

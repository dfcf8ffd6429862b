package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/buildings/asset"
	"github.com/lixenwraith/buildings/core"
	"github.com/lixenwraith/buildings/engine"
	"github.com/lixenwraith/buildings/inventory"
	"github.com/lixenwraith/buildings/parameter/visual"
)

// CellUnits is how many screen units one terminal row covers
const CellUnits = 16.0

// Preview draws one inventory column onto a terminal screen
// Slot 0 sits at the bottom, matching world space where y grows upward
type Preview struct {
	screen tcell.Screen
	world  *engine.World
	lib    *asset.Library

	maxCells int // Edge of the largest item, in rows
}

// NewPreview binds a screen to a world whose registry has been built
func NewPreview(screen tcell.Screen, w *engine.World) *Preview {
	return &Preview{
		screen:   screen,
		world:    w,
		lib:      engine.MustGetResource[*asset.Library](w.Resources),
		maxCells: 1,
	}
}

// cells converts a scale in screen units to a square edge in rows
func cells(scale float64) int {
	return max(1, int(math.Round(scale/CellUnits)))
}

// SlotBox returns the top-left corner and size of slot index in a column of count slots
func (p *Preview) SlotBox(index, count int) (x, y, width, height int) {
	height = p.maxCells + 2
	width = p.maxCells*2 + 2 // terminal cells are roughly twice as tall as wide
	y = (count - 1 - index) * height
	return 0, y, width, height
}

// Draw clears the screen and renders every slot of container
// Returns the number of items drawn; items without a visual are skipped
func (p *Preview) Draw(container core.Entity) int {
	p.screen.Clear()

	items, ok := inventory.Items(p.world, container)
	if !ok {
		return 0
	}

	p.maxCells = 1
	for _, e := range items {
		if v, ok := p.world.Visuals.Get(e); ok {
			p.maxCells = max(p.maxCells, cells(v.Scale))
		}
	}

	drawn := 0
	slotStyle := tcell.StyleDefault.Background(ToTcell(visual.RgbSlotBackground))
	// Unresolved slots are dimmed so a missing sprite command is visible
	emptyStyle := tcell.StyleDefault.Background(ToTcell(visual.RgbSlotBackground.Blend(core.RGBBlack, 0.5)))
	indexStyle := slotStyle.Foreground(ToTcell(Contrast(visual.RgbSlotBackground)))
	for i, e := range items {
		bx, by, bw, bh := p.SlotBox(i, len(items))

		v, ok := p.world.Visuals.Get(e)
		if !ok {
			p.fill(bx, by, bw, bh, ' ', emptyStyle)
			continue
		}
		mesh, okMesh := p.lib.Mesh(v.Mesh)
		mat, okMat := p.lib.Material(v.Material)
		if !okMesh || !okMat {
			p.fill(bx, by, bw, bh, ' ', emptyStyle)
			continue
		}

		p.fill(bx, by, bw, bh, ' ', slotStyle)
		p.text(bx, by, fmt.Sprintf("%d", i), indexStyle)

		n := cells(v.Scale)
		ix := bx + (bw-n*2)/2
		iy := by + (bh-n)/2
		p.fill(ix, iy, n*2, n, mesh.Glyph, slotStyle.Foreground(ToTcell(mat.Color)))

		if b, ok := p.world.Buildings.Get(e); ok {
			label := fmt.Sprintf("%s x%.0f", b, v.Scale)
			p.text(bx+bw+1, by+bh/2, label, tcell.StyleDefault)
		}
		drawn++
	}

	p.screen.Show()
	return drawn
}

func (p *Preview) fill(x, y, w, h int, r rune, style tcell.Style) {
	sw, sh := p.screen.Size()
	for row := y; row < y+h; row++ {
		if row < 0 || row >= sh {
			continue
		}
		for col := x; col < x+w; col++ {
			if col < 0 || col >= sw {
				continue
			}
			p.screen.SetContent(col, row, r, nil, style)
		}
	}
}

func (p *Preview) text(x, y int, s string, style tcell.Style) {
	sw, sh := p.screen.Size()
	if y < 0 || y >= sh {
		return
	}
	for i, ch := range []rune(s) {
		if x+i >= sw {
			return
		}
		p.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Run draws container and blocks until a key press or screen close
func (p *Preview) Run(container core.Entity) {
	p.Draw(container)
	for {
		switch p.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			p.screen.Sync()
			p.Draw(container)
		}
	}
}

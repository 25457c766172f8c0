package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kidtui/internal/browser"
	"github.com/verte-zerg/kidtui/internal/canvas"
	"github.com/verte-zerg/kidtui/internal/content"
	"github.com/verte-zerg/kidtui/internal/geometry"
)

// Drawing area bounds in cells.
const (
	minShapeCols = 20
	maxShapeCols = 60
	minShapeRows = 8
	maxShapeRows = 20
	// shapeChrome is the height taken by the labels and buttons.
	shapeChrome = 12
)

type shapesView struct {
	keys  keyMap
	pager *browser.Browser[content.Shape]
	shape content.Shape
	nav   nav
}

func newShapesView(p content.Provider, keys keyMap) *shapesView {
	v := &shapesView{keys: keys}
	v.pager = browser.New(p.Shapes(), v.render)
	v.render(v.pager.State())
	return v
}

func (v *shapesView) render(s browser.State[content.Shape]) {
	v.shape = s.Entry
	v.nav = navFrom(s)
}

func (v *shapesView) Title() string { return "Learn Shapes" }

func (v *shapesView) Update(msg tea.Msg) tea.Cmd {
	return browse(v.pager, v.keys, msg)
}

// drawing rasterizes the current shape for a terminal of the given size. The
// vertices are recomputed on every call.
func (v *shapesView) drawing(width, height int) *canvas.Canvas {
	c := canvas.New(clamp(width-4, minShapeCols, maxShapeCols), clamp(height-shapeChrome, minShapeRows, maxShapeRows))
	w, h := c.PixelSize()
	if fig, ok := geometry.ShapeFigure(v.shape.Index, w, h); ok {
		c.Fill(fig)
	}
	return c
}

func (v *shapesView) View(width, height int) string {
	name := titleStyle.Render(v.shape.Name)
	desc := paragraph(v.shape.Description, contentWidth(width), mutedStyle)
	drawing := drawingStyle.Render(v.drawing(width, height).String())
	return lipgloss.JoinVertical(lipgloss.Center, drawing, "", name, desc, "", v.nav.View())
}

func (v *shapesView) Close() {}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

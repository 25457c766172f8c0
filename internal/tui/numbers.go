package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kidtui/internal/browser"
	"github.com/verte-zerg/kidtui/internal/canvas"
	"github.com/verte-zerg/kidtui/internal/content"
	"github.com/verte-zerg/kidtui/internal/geometry"
)

// dotCols is the canvas width of the counting dots, wide enough for a row of
// five.
const dotCols = 30

type numbersView struct {
	keys  keyMap
	pager *browser.Browser[content.Number]
	value int
	word  string
	dots  *canvas.Canvas
	count int
	nav   nav
}

func newNumbersView(p content.Provider, keys keyMap) *numbersView {
	v := &numbersView{keys: keys}
	v.pager = browser.New(p.Numbers(), v.render)
	v.render(v.pager.State())
	return v
}

func (v *numbersView) render(s browser.State[content.Number]) {
	v.value = s.Entry.Value
	v.word = s.Entry.Word
	v.nav = navFrom(s)

	h := geometry.DotsHeight(v.value)
	rows := (h + canvas.CellH - 1) / canvas.CellH
	v.dots = canvas.New(dotCols, rows)
	w, _ := v.dots.PixelSize()
	rects := geometry.Dots(v.value, w)
	for _, r := range rects {
		v.dots.FillEllipse(r)
	}
	v.count = len(rects)
}

func (v *numbersView) Title() string { return "Learn Numbers" }

func (v *numbersView) Update(msg tea.Msg) tea.Cmd {
	return browse(v.pager, v.keys, msg)
}

func (v *numbersView) View(width, _ int) string {
	number := bigStyle.Render(strconv.Itoa(v.value))
	word := paragraph(v.word, contentWidth(width), textStyle)
	dots := drawingStyle.Render(v.dots.String())
	return lipgloss.JoinVertical(lipgloss.Center, number, word, dots, "", v.nav.View())
}

func (v *numbersView) Close() {}

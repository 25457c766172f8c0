package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kidtui/internal/browser"
	"github.com/verte-zerg/kidtui/internal/content"
)

type colorsView struct {
	keys   keyMap
	pager  *browser.Browser[content.Color]
	color  content.Color
	swatch lipgloss.Style
	nav    nav
}

func newColorsView(p content.Provider, keys keyMap) *colorsView {
	v := &colorsView{keys: keys}
	v.pager = browser.New(p.Colors(), v.render)
	v.render(v.pager.State())
	return v
}

func (v *colorsView) render(s browser.State[content.Color]) {
	v.color = s.Entry
	v.swatch = lipgloss.NewStyle().
		Background(lipgloss.Color(s.Entry.Hex)).
		Width(24).
		Height(6)
	v.nav = navFrom(s)
}

func (v *colorsView) Title() string { return "Learn Colors" }

func (v *colorsView) Update(msg tea.Msg) tea.Cmd {
	return browse(v.pager, v.keys, msg)
}

func (v *colorsView) View(width, _ int) string {
	name := titleStyle.Render(v.color.Name)
	example := paragraph(v.color.Example, contentWidth(width), mutedStyle)
	return lipgloss.JoinVertical(lipgloss.Center, v.swatch.Render(""), "", name, example, "", v.nav.View())
}

func (v *colorsView) Close() {}

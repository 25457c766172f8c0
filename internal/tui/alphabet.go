package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kidtui/internal/browser"
	"github.com/verte-zerg/kidtui/internal/content"
)

type alphabetView struct {
	keys   keyMap
	pager  *browser.Browser[content.Letter]
	letter string
	word   string
	nav    nav
}

func newAlphabetView(p content.Provider, keys keyMap) *alphabetView {
	v := &alphabetView{keys: keys}
	v.pager = browser.New(p.Letters(), v.render)
	v.render(v.pager.State())
	return v
}

func (v *alphabetView) render(s browser.State[content.Letter]) {
	v.letter = string(s.Entry.Char)
	v.word = s.Entry.Word
	v.nav = navFrom(s)
}

func (v *alphabetView) Title() string { return "Learn the Alphabet" }

func (v *alphabetView) Update(msg tea.Msg) tea.Cmd {
	return browse(v.pager, v.keys, msg)
}

func (v *alphabetView) View(width, _ int) string {
	letter := bigStyle.Render(v.letter + " " + strings.ToLower(v.letter))
	word := paragraph(v.letter+" is for "+v.word, contentWidth(width), textStyle)
	return lipgloss.JoinVertical(lipgloss.Center, letter, "", word, "", v.nav.View())
}

func (v *alphabetView) Close() {}

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kidtui/internal/browser"
)

// view is one screen reachable from the home menu.
type view interface {
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	Title() string
	// Close stops anything the view scheduled. Closing twice is a no-op.
	Close()
}

// homeMsg asks the shell to return to the home menu.
type homeMsg struct{}

func goHome() tea.Msg { return homeMsg{} }

// nav is the last browser state seen by a view's render callback.
type nav struct {
	position int
	length   int
	prev     bool
	next     bool
}

func navFrom[T any](s browser.State[T]) nav {
	return nav{position: s.Position, length: s.Len, prev: s.PrevEnabled, next: s.NextEnabled}
}

func (n nav) View() string {
	pos := mutedStyle.Render(fmt.Sprintf("  %d / %d  ", n.position+1, n.length))
	return lipgloss.JoinHorizontal(lipgloss.Center,
		button("◀ Previous", false, n.prev),
		pos,
		button("Next ▶", false, n.next),
	)
}

// navigate applies a paging key to b and reports whether msg was one.
func navigate[T any](b *browser.Browser[T], keys keyMap, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.Prev):
		b.Previous()
	case key.Matches(msg, keys.Next):
		b.Next()
	case key.Matches(msg, keys.First):
		b.First()
	case key.Matches(msg, keys.Last):
		b.Last()
	default:
		return false
	}
	return true
}

// browse is the Update shared by the paged modules.
func browse[T any](b *browser.Browser[T], keys keyMap, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(km, keys.Home) {
		return goHome
	}
	navigate(b, keys, km)
	return nil
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r     rune
	width int
}

// contentWidth is the share of the terminal used for text blocks. Zero means
// the size is not known yet and text is left unwrapped.
func contentWidth(width int) int {
	if width <= 0 {
		return 0
	}
	w := int(float64(width) * 0.70)
	if w < 1 {
		return 1
	}
	return w
}

// wrapText breaks s into lines no wider than width columns, preferring breaks
// at spaces. Words longer than width are split.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return strings.Split(s, "\n")
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(para, width)...)
	}
	return lines
}

func wrapLine(s string, width int) []string {
	var out []string
	runes := []rune(s)
	line := make([]cell, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1
	for i := 0; i < len(runes); {
		item := cell{r: runes[i], width: runewidth.RuneWidth(runes[i])}
		if lineWidth+item.width > width && len(line) > 0 {
			switch {
			case item.r == ' ':
				out = append(out, renderCells(line))
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
				i++
			case lastSpaceIdx >= 0:
				out = append(out, renderCells(line[:lastSpaceIdx]))
				line = append([]cell{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			default:
				out = append(out, renderCells(line))
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.r == ' ' {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	return append(out, renderCells(line))
}

func renderCells(line []cell) string {
	var b strings.Builder
	for _, item := range line {
		b.WriteRune(item.r)
	}
	return strings.TrimRight(b.String(), " ")
}

func lineWidthOf(line []cell) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []cell) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].r == ' ' {
			return i
		}
	}
	return -1
}

// paragraph wraps s to width and centers every line.
func paragraph(s string, width int, style lipgloss.Style) string {
	lines := wrapText(s, width)
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

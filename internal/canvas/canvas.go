// Package canvas rasterizes pixel-space figures onto terminal cells.
package canvas

import (
	"strings"

	"github.com/verte-zerg/kidtui/internal/geometry"
)

// Pixel size of one terminal cell. Each cell holds two vertical samples,
// drawn with half-block runes.
const (
	CellW = 10
	CellH = 20
)

const (
	blockFull   = '█'
	blockTop    = '▀'
	blockBottom = '▄'
	blockEmpty  = ' '
)

// Canvas is a cols x rows cell grid backed by two samples per cell.
type Canvas struct {
	cols int
	rows int
	// dots[row*2+half][col]
	dots [][]bool
}

// New returns an empty canvas. Non-positive sizes yield an empty canvas.
func New(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	dots := make([][]bool, rows*2)
	for i := range dots {
		dots[i] = make([]bool, cols)
	}
	return &Canvas{cols: cols, rows: rows, dots: dots}
}

// PixelSize returns the drawing surface size in pixels.
func (c *Canvas) PixelSize() (width, height int) {
	return c.cols * CellW, c.rows * CellH
}

// Cols returns the width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Fill draws a figure.
func (c *Canvas) Fill(fig geometry.Figure) {
	switch fig.Kind {
	case geometry.KindEllipse:
		c.FillEllipse(fig.Bounds)
	case geometry.KindRect:
		c.FillRect(fig.Bounds)
	case geometry.KindPolygon:
		c.FillPolygon(fig.Points)
	}
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(r geometry.Rect) {
	x0, x1 := float64(r.X), float64(r.X+r.W)
	y0, y1 := float64(r.Y), float64(r.Y+r.H)
	c.fillFunc(func(x, y float64) bool {
		return x >= x0 && x < x1 && y >= y0 && y < y1
	})
}

// FillEllipse fills the ellipse inscribed in r.
func (c *Canvas) FillEllipse(r geometry.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	rx := float64(r.W) / 2
	ry := float64(r.H) / 2
	cx := float64(r.X) + rx
	cy := float64(r.Y) + ry
	c.fillFunc(func(x, y float64) bool {
		dx := (x - cx) / rx
		dy := (y - cy) / ry
		return dx*dx+dy*dy <= 1
	})
}

// FillPolygon fills a polygon using the even-odd rule.
func (c *Canvas) FillPolygon(pts []geometry.Point) {
	if len(pts) < 3 {
		return
	}
	c.fillFunc(func(x, y float64) bool {
		return insidePolygon(pts, x, y)
	})
}

// Filled reports whether the sample at the given cell half is set.
// half is 0 for the top sample and 1 for the bottom one.
func (c *Canvas) Filled(col, row, half int) bool {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows || half < 0 || half > 1 {
		return false
	}
	return c.dots[row*2+half][col]
}

// Count returns the number of set samples.
func (c *Canvas) Count() int {
	n := 0
	for _, line := range c.dots {
		for _, d := range line {
			if d {
				n++
			}
		}
	}
	return n
}

// Lines renders each cell row as a string of half-block runes.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		b.Reset()
		top := c.dots[row*2]
		bottom := c.dots[row*2+1]
		for col := 0; col < c.cols; col++ {
			switch {
			case top[col] && bottom[col]:
				b.WriteRune(blockFull)
			case top[col]:
				b.WriteRune(blockTop)
			case bottom[col]:
				b.WriteRune(blockBottom)
			default:
				b.WriteRune(blockEmpty)
			}
		}
		out[row] = b.String()
	}
	return out
}

// String renders the canvas as newline-separated rows.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

func (c *Canvas) fillFunc(inside func(x, y float64) bool) {
	for i, line := range c.dots {
		y := float64(i)*CellH/2 + CellH/4
		for col := range line {
			x := float64(col)*CellW + CellW/2
			if inside(x, y) {
				line[col] = true
			}
		}
	}
}

func insidePolygon(pts []geometry.Point, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		xi, yi := float64(pts[i].X), float64(pts[i].Y)
		xj, yj := float64(pts[j].X), float64(pts[j].Y)
		if (yi > y) != (yj > y) {
			cross := (xj-xi)*(y-yi)/(yj-yi) + xi
			if x < cross {
				in = !in
			}
		}
		j = i
	}
	return in
}

package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/kidtui/internal/geometry"
)

func TestPixelSize(t *testing.T) {
	c := New(40, 15)
	w, h := c.PixelSize()
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
}

func TestFillRectCoversCells(t *testing.T) {
	c := New(4, 2)
	c.FillRect(geometry.Rect{X: 0, Y: 0, W: 20, H: 20})

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "██  ", lines[0])
	assert.Equal(t, "    ", lines[1])
	assert.Equal(t, 4, c.Count())
}

func TestHalfBlocks(t *testing.T) {
	c := New(2, 1)
	c.FillRect(geometry.Rect{X: 0, Y: 0, W: 10, H: 10})
	c.FillRect(geometry.Rect{X: 10, Y: 10, W: 10, H: 10})
	assert.Equal(t, "▀▄", c.String())
	assert.True(t, c.Filled(0, 0, 0))
	assert.False(t, c.Filled(0, 0, 1))
	assert.True(t, c.Filled(1, 0, 1))
	assert.False(t, c.Filled(5, 0, 0))
}

func TestPolygonMatchesRect(t *testing.T) {
	rect := geometry.Rect{X: 20, Y: 20, W: 60, H: 40}
	a := New(10, 5)
	a.FillRect(rect)
	b := New(10, 5)
	b.FillPolygon([]geometry.Point{{X: 20, Y: 20}, {X: 80, Y: 20}, {X: 80, Y: 60}, {X: 20, Y: 60}})
	assert.Equal(t, a.String(), b.String())
	assert.Positive(t, a.Count())
}

func TestEllipseIsInsideBounds(t *testing.T) {
	c := New(40, 15)
	bounds := geometry.Rect{X: 70, Y: 20, W: 260, H: 260}
	c.FillEllipse(bounds)

	full := New(40, 15)
	full.FillRect(bounds)
	assert.Less(t, c.Count(), full.Count())
	assert.Positive(t, c.Count())
	// Center is always filled.
	assert.True(t, c.Filled(20, 7, 1))
	// Corners of the bounding square are not.
	assert.False(t, c.Filled(7, 1, 1))
}

func TestFillEveryShape(t *testing.T) {
	c := New(40, 15)
	w, h := c.PixelSize()
	for i := 0; i < geometry.ShapeCount; i++ {
		fig, ok := geometry.ShapeFigure(i, w, h)
		require.True(t, ok, "shape %d", i)
		shape := New(40, 15)
		shape.Fill(fig)
		assert.Positive(t, shape.Count(), "shape %d", i)
	}
}

func TestDegenerateInputs(t *testing.T) {
	c := New(-1, -1)
	assert.Empty(t, c.Lines())
	c = New(3, 1)
	c.FillPolygon([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}})
	c.FillEllipse(geometry.Rect{W: 0, H: 10})
	assert.Zero(t, c.Count())
}

package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dist(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

func TestStarVertexDistances(t *testing.T) {
	center := Point{X: 200, Y: 150}
	for _, r := range []int{10, 57, 130, 201} {
		pts := Star(center, r)
		require.Len(t, pts, StarPoints)
		for i, p := range pts {
			want := float64(r)
			if i%2 == 1 {
				want = float64(r / 2)
			}
			assert.InDelta(t, want, dist(center, p), 1.5, "radius %d vertex %d", r, i)
		}
		assert.Equal(t, Point{X: 200, Y: 150 - r}, pts[0], "first vertex points up")
	}
}

func TestHeartVertices(t *testing.T) {
	center := Point{X: 100, Y: 100}
	pts := Heart(center, 40)
	require.Len(t, pts, HeartPoints)
	// t=0: x=0, y=13-5-2-1=5, scaled by 2 and flipped.
	assert.Equal(t, Point{X: 100, Y: 90}, pts[0])
	// t=pi: x=0, y=-13-5+2-1=-17.
	assert.Equal(t, 100, pts[10].X)
	assert.InDelta(t, 134, pts[10].Y, 1)
	for i := 1; i < HeartPoints/2; i++ {
		assert.Greater(t, pts[i].X, center.X-1, "right lobe vertex %d", i)
	}
}

func TestShapeBounds(t *testing.T) {
	b, ok := ShapeBounds(400, 300)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 70, Y: 20, W: 260, H: 260}, b)
	assert.Equal(t, Point{X: 200, Y: 150}, b.Center())
	assert.Equal(t, Point{X: 2, Y: 3}, Rect{W: 5, H: 7}.Center())

	_, ok = ShapeBounds(40, 100)
	assert.False(t, ok)
}

func TestShapeFigures(t *testing.T) {
	circle, ok := ShapeFigure(0, 400, 300)
	require.True(t, ok)
	assert.Equal(t, KindEllipse, circle.Kind)
	assert.Equal(t, Rect{X: 70, Y: 20, W: 260, H: 260}, circle.Bounds)

	rect, _ := ShapeFigure(3, 400, 300)
	assert.Equal(t, KindRect, rect.Kind)
	assert.Equal(t, Rect{X: 70, Y: 85, W: 260, H: 130}, rect.Bounds)

	oval, _ := ShapeFigure(4, 400, 300)
	assert.Equal(t, KindEllipse, oval.Kind)
	assert.Equal(t, rect.Bounds, oval.Bounds)

	tri, _ := ShapeFigure(2, 400, 300)
	assert.Equal(t, []Point{{200, 20}, {70, 280}, {330, 280}}, tri.Points)

	star, _ := ShapeFigure(5, 400, 300)
	assert.Len(t, star.Points, StarPoints)
	assert.Equal(t, Point{200, 20}, star.Points[0], "star apex sits on the bounds center line")

	heart, _ := ShapeFigure(6, 400, 300)
	assert.Len(t, heart.Points, HeartPoints)

	diamond, _ := ShapeFigure(7, 400, 300)
	assert.Equal(t, []Point{{200, 20}, {330, 150}, {200, 280}, {70, 150}}, diamond.Points)

	_, ok = ShapeFigure(8, 400, 300)
	assert.False(t, ok)
}

func TestDotsLayout(t *testing.T) {
	for n := 1; n <= 20; n++ {
		assert.Len(t, Dots(n, 400), n)
	}
	dots := Dots(7, 400)
	assert.Equal(t, Rect{X: 100, Y: 50, W: 30, H: 30}, dots[0])
	assert.Equal(t, Rect{X: 260, Y: 50, W: 30, H: 30}, dots[4])
	assert.Equal(t, Rect{X: 100, Y: 90, W: 30, H: 30}, dots[5])

	single := Dots(1, 400)
	assert.Equal(t, 180, single[0].X)

	assert.Nil(t, Dots(0, 400))
	assert.Equal(t, 210, DotsHeight(20))
}

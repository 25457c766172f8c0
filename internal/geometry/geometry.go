// Package geometry computes the figures drawn by the numbers and shapes
// modules. Coordinates are integer pixels with y growing downward.
package geometry

import "math"

// Point is a pixel coordinate.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Center returns the rectangle center, rounded down.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Kind selects how a Figure is filled.
type Kind int

const (
	KindEllipse Kind = iota
	KindRect
	KindPolygon
)

// Figure is a filled primitive: an ellipse or rectangle inscribed in Bounds,
// or a polygon through Points.
type Figure struct {
	Kind   Kind
	Bounds Rect
	Points []Point
}

const (
	StarPoints  = 10
	HeartPoints = 20
	ShapeCount  = 8
	ShapeMargin = 40
)

// Star returns the 10 vertices of a five-pointed star, alternating between
// radius and radius/2, starting at the top.
func Star(center Point, radius int) []Point {
	pts := make([]Point, StarPoints)
	for i := 0; i < StarPoints; i++ {
		angle := float64(i)*math.Pi/5 - math.Pi/2
		r := radius
		if i%2 == 1 {
			r = radius / 2
		}
		pts[i] = Point{
			X: center.X + int(float64(r)*math.Cos(angle)),
			Y: center.Y + int(float64(r)*math.Sin(angle)),
		}
	}
	return pts
}

// Heart samples the parametric heart curve at 20 evenly spaced angles,
// scaled by size/20 with y flipped for screen coordinates.
func Heart(center Point, size int) []Point {
	pts := make([]Point, HeartPoints)
	scale := float64(size) / 20
	for i := 0; i < HeartPoints; i++ {
		t := float64(i) * 2 * math.Pi / HeartPoints
		sin := math.Sin(t)
		x := 16 * sin * sin * sin
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		pts[i] = Point{
			X: center.X + int(x*scale),
			Y: center.Y - int(y*scale),
		}
	}
	return pts
}

// ShapeBounds returns the square a shape is inscribed in for a drawing area
// of the given size. ok is false when the area is too small to draw.
func ShapeBounds(width, height int) (Rect, bool) {
	size := width
	if height < size {
		size = height
	}
	size -= ShapeMargin
	if size <= 0 {
		return Rect{}, false
	}
	return Rect{X: (width - size) / 2, Y: (height - size) / 2, W: size, H: size}, true
}

// ShapeFigure returns the figure for shape index 0..7 centered in a drawing
// area of width x height.
func ShapeFigure(index, width, height int) (Figure, bool) {
	b, ok := ShapeBounds(width, height)
	if !ok || index < 0 || index >= ShapeCount {
		return Figure{}, false
	}
	x, y, size := b.X, b.Y, b.W
	center := b.Center()
	band := Rect{X: x, Y: y + size/4, W: size, H: size / 2}

	switch index {
	case 0:
		return Figure{Kind: KindEllipse, Bounds: b}, true
	case 1:
		return Figure{Kind: KindRect, Bounds: b}, true
	case 2:
		return polygon(b, Point{x + size/2, y}, Point{x, y + size}, Point{x + size, y + size}), true
	case 3:
		return Figure{Kind: KindRect, Bounds: band}, true
	case 4:
		return Figure{Kind: KindEllipse, Bounds: band}, true
	case 5:
		return polygon(b, Star(center, size/2)...), true
	case 6:
		return polygon(b, Heart(center, size/2)...), true
	default:
		return polygon(b,
			Point{x + size/2, y},
			Point{x + size, y + size/2},
			Point{x + size/2, y + size},
			Point{x, y + size/2},
		), true
	}
}

func polygon(bounds Rect, pts ...Point) Figure {
	return Figure{Kind: KindPolygon, Bounds: bounds, Points: pts}
}

const (
	DotSize    = 30
	DotGap     = 10
	DotsPerRow = 5
	DotsTop    = 50
)

// Dots lays out n circles in rows of five, centered horizontally in an area
// of the given width. Each returned rect bounds one circle.
func Dots(n, width int) []Rect {
	if n <= 0 {
		return nil
	}
	step := DotSize + DotGap
	perRow := n
	if perRow > DotsPerRow {
		perRow = DotsPerRow
	}
	startX := (width - perRow*step) / 2
	out := make([]Rect, n)
	for i := 0; i < n; i++ {
		row := i / DotsPerRow
		col := i % DotsPerRow
		out[i] = Rect{
			X: startX + col*step,
			Y: DotsTop + row*step,
			W: DotSize,
			H: DotSize,
		}
	}
	return out
}

// DotsHeight returns the pixel height needed to show n dots.
func DotsHeight(n int) int {
	if n <= 0 {
		return 0
	}
	rows := (n + DotsPerRow - 1) / DotsPerRow
	return DotsTop + rows*(DotSize+DotGap)
}

package canvas

import (
	"image"
	"image/color"
)

// Shape identifies the geometry a Stroke draws.
type Shape int

const (
	ShapeLine Shape = iota
	ShapeRectangle
	ShapeEllipse
)

func (s Shape) String() string {
	switch s {
	case ShapeLine:
		return "line"
	case ShapeRectangle:
		return "rectangle"
	case ShapeEllipse:
		return "ellipse"
	}
	return "unknown"
}

// Stroke is a single line segment or shape outline together with its style.
// Rectangles and ellipses are described by two opposite corners in any order.
type Stroke struct {
	Shape Shape
	From  image.Point
	To    image.Point
	Color color.RGBA
	Width int
}

// Draw rasterizes the stroke onto dst.
func (s Stroke) Draw(dst *image.RGBA, r Rasterizer) {
	switch s.Shape {
	case ShapeLine:
		r.Line(dst, s.From, s.To, s.Color, s.Width)
	case ShapeRectangle:
		r.Rectangle(dst, NormalizeRect(s.From, s.To), s.Color, s.Width)
	case ShapeEllipse:
		r.Ellipse(dst, NormalizeRect(s.From, s.To), s.Color, s.Width)
	}
}

// NormalizeRect returns the smallest axis-aligned rectangle spanning p1 and
// p2. The result does not depend on the order of the points: the origin is
// (min(x1,x2), min(y1,y2)) and the size is (|x1-x2|, |y1-y2|).
func NormalizeRect(p1, p2 image.Point) image.Rectangle {
	minX, maxX := p1.X, p2.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := p1.Y, p2.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return image.Rectangle{Min: image.Pt(minX, minY), Max: image.Pt(maxX, maxY)}
}

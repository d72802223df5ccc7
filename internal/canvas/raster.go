package canvas

import (
	"image"
	"image/color"
	"math"
)

// Rasterizer turns stroke geometry into pixels. Rectangles passed to
// Rectangle and Ellipse are normalized; their Max corner lies on the outline.
type Rasterizer interface {
	Line(dst *image.RGBA, p0, p1 image.Point, col color.RGBA, width int)
	Rectangle(dst *image.RGBA, r image.Rectangle, col color.RGBA, width int)
	Ellipse(dst *image.RGBA, r image.Rectangle, col color.RGBA, width int)
}

// PixelRasterizer draws aliased strokes by stepping along each segment and
// stamping a round brush of the stroke width. Pixels are replaced, never
// blended, so repeating a stroke yields the same result.
type PixelRasterizer struct{}

var _ Rasterizer = PixelRasterizer{}

func (PixelRasterizer) Line(dst *image.RGBA, p0, p1 image.Point, col color.RGBA, width int) {
	drawLine(dst, p0.X, p0.Y, p1.X, p1.Y, col, width)
}

func (PixelRasterizer) Rectangle(dst *image.RGBA, r image.Rectangle, col color.RGBA, width int) {
	drawLine(dst, r.Min.X, r.Min.Y, r.Max.X, r.Min.Y, col, width)
	drawLine(dst, r.Max.X, r.Min.Y, r.Max.X, r.Max.Y, col, width)
	drawLine(dst, r.Max.X, r.Max.Y, r.Min.X, r.Max.Y, col, width)
	drawLine(dst, r.Min.X, r.Max.Y, r.Min.X, r.Min.Y, col, width)
}

func (PixelRasterizer) Ellipse(dst *image.RGBA, r image.Rectangle, col color.RGBA, width int) {
	clip := strokeClip(dst, width)
	outer := image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Max.Y+1).Inset(-(width/2 + 1))
	if !outer.Overlaps(clip) {
		return
	}
	if r.Dx() == 0 || r.Dy() == 0 {
		drawLine(dst, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, col, width)
		return
	}
	cx := (float64(r.Min.X) + float64(r.Max.X)) / 2
	cy := (float64(r.Min.Y) + float64(r.Max.Y)) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	steps := math.Ceil(2 * math.Pi * math.Max(rx, ry))
	if steps > float64(8*(clip.Dx()+clip.Dy())) {
		scanEllipse(dst, clip, cx, cy, rx, ry, col, width)
		return
	}
	n := int(steps)
	if n < 8 {
		n = 8
	}
	point := func(i int) (int, int) {
		angle := 2 * math.Pi * float64(i) / float64(n)
		return int(math.Round(cx + math.Cos(angle)*rx)), int(math.Round(cy + math.Sin(angle)*ry))
	}
	prevX, prevY := point(0)
	stampRound(dst, prevX, prevY, width, col)
	for i := 1; i <= n; i++ {
		x, y := point(i)
		drawLine(dst, prevX, prevY, x, y, col, width)
		prevX, prevY = x, y
	}
}

// scanEllipse draws the outline of an ellipse much larger than clip by
// solving for its crossings on every visible row and column.
func scanEllipse(dst *image.RGBA, clip image.Rectangle, cx, cy, rx, ry float64, col color.RGBA, width int) {
	stamp := func(x, y float64) {
		p := image.Pt(int(math.Round(x)), int(math.Round(y)))
		if p.In(clip) {
			stampRound(dst, p.X, p.Y, width, col)
		}
	}
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		t := (float64(y) - cy) / ry
		if t < -1 || t > 1 {
			continue
		}
		d := rx * math.Sqrt(1-t*t)
		stamp(cx-d, float64(y))
		stamp(cx+d, float64(y))
	}
	for x := clip.Min.X; x < clip.Max.X; x++ {
		t := (float64(x) - cx) / rx
		if t < -1 || t > 1 {
			continue
		}
		d := ry * math.Sqrt(1-t*t)
		stamp(float64(x), cy-d)
		stamp(float64(x), cy+d)
	}
}

// strokeClip is the region in which a brush centre can still touch dst.
func strokeClip(dst *image.RGBA, width int) image.Rectangle {
	return dst.Bounds().Inset(-(width/2 + 1))
}

// clipSegment trims the segment to clip using Liang-Barsky. Endpoints that
// already lie inside are returned unchanged.
func clipSegment(clip image.Rectangle, x0, y0, x1, y1 int) (int, int, int, int, bool) {
	fx0, fy0 := float64(x0), float64(y0)
	dx := float64(x1) - fx0
	dy := float64(y1) - fy0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0 - float64(clip.Min.X)},
		{dx, float64(clip.Max.X-1) - fx0},
		{-dy, fy0 - float64(clip.Min.Y)},
		{dy, float64(clip.Max.Y-1) - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	cx0, cy0, cx1, cy1 := x0, y0, x1, y1
	if t0 > 0 {
		cx0 = int(math.Round(fx0 + t0*dx))
		cy0 = int(math.Round(fy0 + t0*dy))
	}
	if t1 < 1 {
		cx1 = int(math.Round(fx0 + t1*dx))
		cy1 = int(math.Round(fy0 + t1*dy))
	}
	return cx0, cy0, cx1, cy1, true
}

// stampRound fills a disc of diameter width centred on (cx, cy).
func stampRound(img *image.RGBA, cx, cy, width int, col color.RGBA) {
	if width < 1 {
		width = 1
	}
	r := width / 2
	limit := width * width
	b := img.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if 4*(dx*dx+dy*dy) > limit {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(b) {
				img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA, width int) {
	x0, y0, x1, y1, ok := clipSegment(strokeClip(img, width), x0, y0, x1, y1)
	if !ok {
		return
	}
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		stampRound(img, x0, y0, width, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

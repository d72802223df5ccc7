package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/gogpu/gg"
)

// SmoothRasterizer draws anti-aliased strokes with round caps and joins. Each
// stroke is rendered into a scratch context covering only its bounds and
// then composited over the destination.
type SmoothRasterizer struct{}

var _ Rasterizer = SmoothRasterizer{}

func (SmoothRasterizer) Line(dst *image.RGBA, p0, p1 image.Point, col color.RGBA, width int) {
	bounds := NormalizeRect(p0, p1)
	if p0 == p1 {
		// A zero-length path has no direction to cap, so draw the dot directly.
		strokeInto(dst, bounds, col, width, func(dc *gg.Context, off image.Point) error {
			x, y := center(p0, off)
			dc.DrawCircle(x, y, float64(max(width, 1))/2)
			return dc.Fill()
		})
		return
	}
	strokeInto(dst, bounds, col, width, func(dc *gg.Context, off image.Point) error {
		x0, y0 := center(p0, off)
		x1, y1 := center(p1, off)
		dc.DrawLine(x0, y0, x1, y1)
		return dc.Stroke()
	})
}

func (SmoothRasterizer) Rectangle(dst *image.RGBA, r image.Rectangle, col color.RGBA, width int) {
	strokeInto(dst, r, col, width, func(dc *gg.Context, off image.Point) error {
		x, y := center(r.Min, off)
		dc.DrawRectangle(x, y, float64(r.Dx()), float64(r.Dy()))
		return dc.Stroke()
	})
}

func (SmoothRasterizer) Ellipse(dst *image.RGBA, r image.Rectangle, col color.RGBA, width int) {
	strokeInto(dst, r, col, width, func(dc *gg.Context, off image.Point) error {
		x, y := center(r.Min, off)
		rx := float64(r.Dx()) / 2
		ry := float64(r.Dy()) / 2
		dc.DrawEllipse(x+rx, y+ry, rx, ry)
		return dc.Stroke()
	})
}

// center maps a pixel to its centre in the scratch context whose origin is off.
func center(p, off image.Point) (float64, float64) {
	return float64(p.X-off.X) + 0.5, float64(p.Y-off.Y) + 0.5
}

func strokeInto(dst *image.RGBA, bounds image.Rectangle, col color.RGBA, width int, build func(dc *gg.Context, off image.Point) error) {
	if width < 1 {
		width = 1
	}
	area := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X+1, bounds.Max.Y+1).Inset(-(width/2 + 2))
	area = area.Intersect(dst.Bounds())
	if area.Empty() {
		return
	}
	dc := gg.NewContext(area.Dx(), area.Dy())
	defer func() {
		if err := dc.Close(); err != nil {
			log.Printf("smooth stroke: close context: %v", err)
		}
	}()
	dc.SetColor(col)
	dc.SetLineWidth(float64(width))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	if err := build(dc, area.Min); err != nil {
		log.Printf("smooth stroke: %v", err)
		return
	}
	draw.Draw(dst, area, dc.Image(), image.Point{}, draw.Over)
}

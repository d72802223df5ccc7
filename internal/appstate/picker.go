package appstate

import (
	"image"
	"image/color"
	"math"
)

// Lightness at the top and bottom edge of the color strip.
const (
	stripLightTop    = 0.9
	stripLightBottom = 0.1
)

// ColorStrip picks arbitrary colors. Hue runs left to right around the
// whole color wheel and lightness falls from top to bottom at full
// saturation.
type ColorStrip struct {
	Rect image.Rectangle
}

// ColorAt returns the color under p. Points outside the strip are clamped
// to its nearest edge so a drag can leave the rectangle.
func (cs ColorStrip) ColorAt(p image.Point) color.RGBA {
	r := cs.Rect
	x := min(max(p.X, r.Min.X), r.Max.X-1) - r.Min.X
	y := min(max(p.Y, r.Min.Y), r.Max.Y-1) - r.Min.Y
	hue := 360 * float64(x) / float64(max(r.Dx()-1, 1))
	light := stripLightTop - (stripLightTop-stripLightBottom)*float64(y)/float64(max(r.Dy()-1, 1))
	return hslToRGBA(hue, 1, light)
}

// Draw paints the strip and its border. The border is highlighted while the
// pointer is over the strip.
func (cs ColorStrip) Draw(dst *image.RGBA, border, highlight color.RGBA, hover bool) {
	area := cs.Rect.Intersect(dst.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			dst.SetRGBA(x, y, cs.ColorAt(image.Pt(x, y)))
		}
	}
	if hover {
		border = highlight
	}
	strokeRect(dst, cs.Rect, border)
}

// hslToRGBA converts hue in degrees, saturation and lightness in [0, 1] to
// an opaque color.
func hslToRGBA(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g = c, x
	case hp < 2:
		r, g = x, c
	case hp < 3:
		g, b = c, x
	case hp < 4:
		g, b = x, c
	case hp < 5:
		r, b = x, c
	default:
		r, b = c, x
	}
	m := l - c/2
	ch := func(v float64) uint8 { return uint8(math.Round((v + m) * 255)) }
	return color.RGBA{R: ch(r), G: ch(g), B: ch(b), A: 255}
}

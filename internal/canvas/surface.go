// Package canvas holds the committed drawing: a fixed-size raster buffer that
// strokes are written into and that can be exported as an image file.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"io"
)

// DefaultSize is the drawing area used when no size is configured.
var DefaultSize = image.Pt(950, 520)

// Surface owns the drawing buffer. It is not safe for concurrent use; the UI
// event loop is its only caller.
type Surface struct {
	img        *image.RGBA
	background color.RGBA
	raster     Rasterizer
}

// Option modifies a Surface during creation.
type Option func(*Surface)

// WithRasterizer selects how strokes are turned into pixels.
func WithRasterizer(r Rasterizer) Option {
	return func(s *Surface) {
		if r != nil {
			s.raster = r
		}
	}
}

// WithSmoothing switches between anti-aliased and exact pixel strokes.
func WithSmoothing(on bool) Option {
	return func(s *Surface) {
		if on {
			s.raster = SmoothRasterizer{}
		} else {
			s.raster = PixelRasterizer{}
		}
	}
}

// NewSurface allocates a buffer of the given size filled with background.
// Non-positive dimensions fall back to DefaultSize.
func NewSurface(size image.Point, background color.RGBA, opts ...Option) *Surface {
	if size.X <= 0 || size.Y <= 0 {
		size = DefaultSize
	}
	s := &Surface{
		img:        image.NewRGBA(image.Rectangle{Max: size}),
		background: background,
		raster:     PixelRasterizer{},
	}
	for _, o := range opts {
		o(s)
	}
	s.Clear()
	return s
}

// Image returns the buffer. Callers must not retain it across mutations if
// they need a stable snapshot.
func (s *Surface) Image() *image.RGBA { return s.img }

// Bounds returns the buffer bounds, always anchored at the origin.
func (s *Surface) Bounds() image.Rectangle { return s.img.Bounds() }

// Background returns the color used by Clear.
func (s *Surface) Background() color.RGBA { return s.background }

// Rasterizer returns the rasterizer strokes are drawn with.
func (s *Surface) Rasterizer() Rasterizer { return s.raster }

// At returns the committed pixel at (x, y).
func (s *Surface) At(x, y int) color.RGBA { return s.img.RGBAAt(x, y) }

// Clear fills the whole buffer with the background color.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

// DrawLine commits a round-capped segment from p1 to p2.
func (s *Surface) DrawLine(p1, p2 image.Point, col color.RGBA, width int) {
	s.Commit(Stroke{Shape: ShapeLine, From: p1, To: p2, Color: col, Width: width})
}

// DrawRectangleOutline commits the outline of the rectangle spanned by p1 and p2.
func (s *Surface) DrawRectangleOutline(p1, p2 image.Point, col color.RGBA, width int) {
	s.Commit(Stroke{Shape: ShapeRectangle, From: p1, To: p2, Color: col, Width: width})
}

// DrawEllipseOutline commits the outline of the ellipse inscribed in the
// rectangle spanned by p1 and p2.
func (s *Surface) DrawEllipseOutline(p1, p2 image.Point, col color.RGBA, width int) {
	s.Commit(Stroke{Shape: ShapeEllipse, From: p1, To: p2, Color: col, Width: width})
}

// Commit writes st permanently into the buffer.
func (s *Surface) Commit(st Stroke) {
	st.Draw(s.img, s.raster)
}

// Encode writes the buffer to w in format f.
func (s *Surface) Encode(w io.Writer, f Format) error {
	return Encode(w, s.img, f)
}

// Export writes the buffer to path. An empty format is inferred from the
// file extension. The file is either written completely or not at all.
func (s *Surface) Export(path string, f Format) error {
	if f == "" {
		var err error
		f, err = FormatFromPath(path)
		if err != nil {
			return err
		}
	}
	return WriteFile(path, s.img, f)
}

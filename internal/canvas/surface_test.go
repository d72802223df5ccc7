package canvas

import (
	"image"
	"image/color"
	"testing"
	"time"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func newTestSurface() *Surface {
	return NewSurface(image.Pt(100, 80), white)
}

func TestNormalizeRectDirectionIndependent(t *testing.T) {
	pts := []image.Point{{0, 0}, {10, 10}, {-5, 7}, {50, 40}, {3, -9}, {10, 0}, {0, 10}}
	for _, a := range pts {
		for _, b := range pts {
			if got, rev := NormalizeRect(a, b), NormalizeRect(b, a); got != rev {
				t.Fatalf("NormalizeRect(%v, %v) = %v, reversed %v", a, b, got, rev)
			}
		}
	}
}

func TestNormalizeRect(t *testing.T) {
	got := NormalizeRect(image.Pt(50, 10), image.Pt(10, 40))
	want := image.Rect(10, 10, 50, 40)
	if got != want {
		t.Fatalf("NormalizeRect = %v, want %v", got, want)
	}
	if got.Dx() != 40 || got.Dy() != 30 {
		t.Fatalf("size = %dx%d, want 40x30", got.Dx(), got.Dy())
	}
}

func TestNewSurfaceDefaultsSize(t *testing.T) {
	s := NewSurface(image.Point{}, white)
	if s.Bounds() != (image.Rectangle{Max: DefaultSize}) {
		t.Fatalf("bounds = %v, want %v", s.Bounds(), DefaultSize)
	}
}

func TestClearRestoresBackground(t *testing.T) {
	s := newTestSurface()
	s.DrawLine(image.Pt(0, 0), image.Pt(99, 79), red, 9)
	s.DrawRectangleOutline(image.Pt(5, 5), image.Pt(60, 60), blue, 4)
	s.Clear()
	b := s.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if got := s.At(x, y); got != white {
				t.Fatalf("pixel (%d,%d) = %v after clear, want %v", x, y, got, white)
			}
		}
	}
}

func countColored(s *Surface, col color.RGBA) int {
	n := 0
	b := s.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.At(x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestZeroLengthLineIsDot(t *testing.T) {
	prev := 0
	for _, w := range []int{1, 3, 5, 9, 15} {
		s := newTestSurface()
		c := image.Pt(40, 40)
		s.DrawLine(c, c, red, w)
		n := countColored(s, red)
		if n <= prev {
			t.Fatalf("width %d painted %d pixels, not more than the %d of a thinner dot", w, n, prev)
		}
		prev = n
		// The dot spans exactly the stroke width through its centre.
		row := 0
		for x := 0; x < 100; x++ {
			if s.At(x, c.Y) == red {
				row++
			}
		}
		if row != w {
			t.Fatalf("width %d: dot is %d pixels wide", w, row)
		}
		if s.At(c.X, c.Y) != red {
			t.Fatalf("width %d: centre not painted", w)
		}
	}
}

func TestEraseOverLineRestoresBackground(t *testing.T) {
	s := newTestSurface()
	from, to := image.Pt(10, 20), image.Pt(80, 50)
	s.DrawLine(from, to, red, 5)
	if countColored(s, red) == 0 {
		t.Fatal("line painted nothing")
	}
	s.DrawLine(from, to, s.Background(), 5)
	if n := countColored(s, red); n != 0 {
		t.Fatalf("%d red pixels remain after erasing", n)
	}
}

func TestRectangleOutline(t *testing.T) {
	s := newTestSurface()
	s.DrawRectangleOutline(image.Pt(50, 40), image.Pt(10, 10), red, 3)
	for _, p := range []image.Point{{10, 10}, {50, 10}, {50, 40}, {10, 40}, {30, 10}, {30, 40}, {10, 25}, {50, 25}} {
		if got := s.At(p.X, p.Y); got != red {
			t.Errorf("outline pixel %v = %v, want red", p, got)
		}
	}
	for _, p := range []image.Point{{30, 25}, {15, 15}, {5, 25}, {55, 25}, {30, 5}, {30, 45}} {
		if got := s.At(p.X, p.Y); got != white {
			t.Errorf("pixel %v = %v, want background", p, got)
		}
	}
}

func TestRectangleOutlineDirectionIndependent(t *testing.T) {
	a := newTestSurface()
	b := newTestSurface()
	a.DrawRectangleOutline(image.Pt(10, 10), image.Pt(50, 40), red, 2)
	b.DrawRectangleOutline(image.Pt(50, 40), image.Pt(10, 10), red, 2)
	for i := range a.Image().Pix {
		if a.Image().Pix[i] != b.Image().Pix[i] {
			t.Fatalf("buffers differ at byte %d", i)
		}
	}
}

func TestEllipseOutline(t *testing.T) {
	s := newTestSurface()
	s.DrawEllipseOutline(image.Pt(10, 10), image.Pt(50, 40), blue, 1)
	for _, p := range []image.Point{{10, 25}, {50, 25}, {30, 10}, {30, 40}} {
		if got := s.At(p.X, p.Y); got != blue {
			t.Errorf("extreme point %v = %v, want blue", p, got)
		}
	}
	for _, p := range []image.Point{{30, 25}, {11, 11}, {49, 39}} {
		if got := s.At(p.X, p.Y); got != white {
			t.Errorf("pixel %v = %v, want background", p, got)
		}
	}
}

func TestStrokesClipToBuffer(t *testing.T) {
	s := newTestSurface()
	s.DrawLine(image.Pt(-50, -50), image.Pt(150, 150), red, 7)
	s.DrawEllipseOutline(image.Pt(-20, -20), image.Pt(120, 90), red, 3)
	if countColored(s, red) == 0 {
		t.Fatal("expected visible pixels")
	}
}

func TestHugeShapesFinishQuickly(t *testing.T) {
	s := newTestSurface()
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.DrawRectangleOutline(image.Pt(0, 0), image.Pt(2000000000, 2000000000), red, 5)
		s.DrawLine(image.Pt(-2000000000, 40), image.Pt(2000000000, 40), red, 1)
		s.DrawEllipseOutline(image.Pt(0, -1000000000), image.Pt(2000000000, 1000000000), blue, 1)
		s.DrawEllipseOutline(image.Pt(5000, 5000), image.Pt(9000000, 9000000), blue, 3)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("drawing huge shapes did not finish")
	}
	if got := s.At(1, 20); got != red {
		t.Fatalf("rectangle left edge at (1,20) = %v, want red", got)
	}
	if got := s.At(50, 40); got != red {
		t.Fatalf("clipped line at (50,40) = %v, want red", got)
	}
	if got := s.At(0, 60); got != blue {
		t.Fatalf("ellipse edge at (0,60) = %v, want blue", got)
	}
	if got := s.At(50, 60); got != white {
		t.Fatalf("interior pixel (50,60) = %v, want white", got)
	}
}

func TestClipSegmentKeepsInsideEndpoints(t *testing.T) {
	clip := image.Rect(0, 0, 10, 10)
	x0, y0, x1, y1, ok := clipSegment(clip, 2, 3, 7, 8)
	if !ok || x0 != 2 || y0 != 3 || x1 != 7 || y1 != 8 {
		t.Fatalf("inside segment changed: (%d,%d)-(%d,%d) ok=%v", x0, y0, x1, y1, ok)
	}
	x0, y0, x1, y1, ok = clipSegment(clip, -100, 5, 100, 5)
	if !ok || x0 != 0 || x1 != 9 || y0 != 5 || y1 != 5 {
		t.Fatalf("crossing segment clipped to (%d,%d)-(%d,%d) ok=%v", x0, y0, x1, y1, ok)
	}
	if _, _, _, _, ok := clipSegment(clip, -5, -5, -1, 20); ok {
		t.Fatal("segment left of the clip should be rejected")
	}
}

func TestSmoothRasterizerPaintsStroke(t *testing.T) {
	s := NewSurface(image.Pt(60, 60), white, WithSmoothing(true))
	if _, ok := s.Rasterizer().(SmoothRasterizer); !ok {
		t.Fatalf("rasterizer = %T, want SmoothRasterizer", s.Rasterizer())
	}
	s.DrawLine(image.Pt(10, 30), image.Pt(50, 30), red, 6)
	got := s.At(30, 30)
	if got.R < 200 || got.G > 60 || got.B > 60 {
		t.Fatalf("centre of smooth line = %v, want close to red", got)
	}
	if s.At(30, 5) != white {
		t.Fatalf("pixel far from the line was modified: %v", s.At(30, 5))
	}
}

type recordingRasterizer struct {
	calls []string
}

func (r *recordingRasterizer) Line(*image.RGBA, image.Point, image.Point, color.RGBA, int) {
	r.calls = append(r.calls, "line")
}

func (r *recordingRasterizer) Rectangle(*image.RGBA, image.Rectangle, color.RGBA, int) {
	r.calls = append(r.calls, "rectangle")
}

func (r *recordingRasterizer) Ellipse(*image.RGBA, image.Rectangle, color.RGBA, int) {
	r.calls = append(r.calls, "ellipse")
}

func TestCommitDispatchesByShape(t *testing.T) {
	rec := &recordingRasterizer{}
	s := NewSurface(image.Pt(10, 10), white, WithRasterizer(rec))
	s.Commit(Stroke{Shape: ShapeLine})
	s.Commit(Stroke{Shape: ShapeRectangle})
	s.Commit(Stroke{Shape: ShapeEllipse})
	want := []string{"line", "rectangle", "ellipse"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", rec.calls, want)
		}
	}
}

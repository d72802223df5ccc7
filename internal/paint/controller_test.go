package paint

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/simplepaint/internal/canvas"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func newController(t *testing.T, opts ...ControllerOption) (*Controller, *int) {
	t.Helper()
	redraws := 0
	surface := canvas.NewSurface(image.Pt(100, 80), white)
	opts = append(opts, WithInvalidate(func() { redraws++ }))
	return NewController(surface, opts...), &redraws
}

func snapshot(s *canvas.Surface) []byte {
	return bytes.Clone(s.Image().Pix)
}

func TestDefaults(t *testing.T) {
	c, _ := newController(t)
	s := c.Session()
	if s.Tool != ToolPen || s.Color != DefaultColor || s.Width != DefaultWidth {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if s.Background != white {
		t.Fatalf("background = %v, want surface background", s.Background)
	}
}

func TestStrokeColorRule(t *testing.T) {
	s := NewSession()
	s.Color = red
	for _, tool := range Tools() {
		s.Tool = tool
		want := red
		if tool == ToolEraser {
			want = s.Background
		}
		if got := s.StrokeColor(); got != want {
			t.Errorf("%v: StrokeColor = %v, want %v", tool, got, want)
		}
	}
}

func TestSetWidthClamps(t *testing.T) {
	c, _ := newController(t)
	tests := []struct{ in, want int }{{0, 1}, {-3, 1}, {1, 1}, {12, 12}, {30, 30}, {31, 30}, {500, 30}}
	for _, tt := range tests {
		if got := c.SetWidth(tt.in); got != tt.want {
			t.Errorf("SetWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
		if c.Session().Width != tt.want {
			t.Errorf("session width = %d, want %d", c.Session().Width, tt.want)
		}
	}
}

func TestRectangleDragCommitsOnlyOnRelease(t *testing.T) {
	c, redraws := newController(t)
	c.SetTool(ToolRectangle)
	c.SetColor(red)
	c.SetWidth(3)
	before := snapshot(c.Surface())
	*redraws = 0

	c.PointerDown(image.Pt(10, 10))
	for _, p := range []image.Point{{20, 15}, {70, 60}, {35, 30}, {50, 40}} {
		c.PointerMove(p)
		if !bytes.Equal(before, c.Surface().Image().Pix) {
			t.Fatalf("buffer mutated during drag at %v", p)
		}
	}
	if *redraws != 4 {
		t.Fatalf("redraw requests = %d, want 4", *redraws)
	}
	c.PointerUp(image.Pt(50, 40))

	s := c.Surface()
	for _, p := range []image.Point{{10, 10}, {50, 10}, {10, 40}, {50, 40}, {30, 10}, {30, 40}, {10, 25}, {50, 25}} {
		if got := s.At(p.X, p.Y); got != red {
			t.Errorf("outline pixel %v = %v, want red", p, got)
		}
	}
	// Nothing from the intermediate preview positions was committed.
	for _, p := range []image.Point{{70, 60}, {20, 15}, {35, 30}} {
		if got := s.At(p.X, p.Y); got != white {
			t.Errorf("pixel %v = %v, want background", p, got)
		}
	}
	if c.Drag().Active {
		t.Fatal("drag still active after release")
	}
}

type countingRasterizer struct {
	canvas.PixelRasterizer
	rects int
}

func (r *countingRasterizer) Rectangle(dst *image.RGBA, rect image.Rectangle, col color.RGBA, width int) {
	r.rects++
	r.PixelRasterizer.Rectangle(dst, rect, col, width)
}

func TestShapeCommittedExactlyOnce(t *testing.T) {
	rec := &countingRasterizer{}
	surface := canvas.NewSurface(image.Pt(100, 80), white, canvas.WithRasterizer(rec))
	c := NewController(surface)
	c.SetTool(ToolRectangle)
	c.PointerDown(image.Pt(10, 10))
	c.PointerMove(image.Pt(30, 30))
	c.PointerMove(image.Pt(40, 35))
	if rec.rects != 0 {
		t.Fatalf("rectangle drawn %d times before release", rec.rects)
	}
	c.PointerUp(image.Pt(40, 35))
	c.PointerUp(image.Pt(40, 35))
	if rec.rects != 1 {
		t.Fatalf("rectangle drawn %d times, want 1", rec.rects)
	}
}

func TestPenCommitsIncrementally(t *testing.T) {
	c, _ := newController(t)
	c.SetWidth(1)
	s := c.Surface()

	c.PointerDown(image.Pt(0, 0))
	c.PointerMove(image.Pt(5, 0))
	for x := 0; x <= 5; x++ {
		if got := s.At(x, 0); got != DefaultColor {
			t.Fatalf("first segment pixel (%d,0) = %v before second move", x, got)
		}
	}
	if got := s.At(5, 3); got != white {
		t.Fatalf("second segment present before its move: %v", got)
	}
	if c.Drag().Anchor != image.Pt(5, 0) {
		t.Fatalf("anchor = %v, want (5,0)", c.Drag().Anchor)
	}
	c.PointerMove(image.Pt(5, 5))
	c.PointerUp(image.Pt(5, 5))
	for y := 0; y <= 5; y++ {
		if got := s.At(5, y); got != DefaultColor {
			t.Fatalf("second segment pixel (5,%d) = %v", y, got)
		}
	}
	if got := s.At(2, 3); got != white {
		t.Fatalf("pixel off both segments = %v", got)
	}
}

func TestEraserRestoresBackground(t *testing.T) {
	c, _ := newController(t)
	c.SetColor(red)
	c.SetWidth(4)
	drag := func() {
		c.PointerDown(image.Pt(10, 40))
		c.PointerMove(image.Pt(40, 40))
		c.PointerMove(image.Pt(80, 20))
		c.PointerUp(image.Pt(80, 20))
	}
	drag()
	if c.Surface().At(20, 40) != red {
		t.Fatal("pen stroke missing")
	}
	c.SetTool(ToolEraser)
	drag()
	b := c.Surface().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if got := c.Surface().At(x, y); got != white {
				t.Fatalf("pixel (%d,%d) = %v after erasing", x, y, got)
			}
		}
	}
}

func TestMalformedPointerInputIgnored(t *testing.T) {
	c, redraws := newController(t)
	before := snapshot(c.Surface())
	c.PointerMove(image.Pt(10, 10))
	c.PointerUp(image.Pt(20, 20))
	if !bytes.Equal(before, c.Surface().Image().Pix) {
		t.Fatal("buffer changed without a pointer down")
	}
	if *redraws != 0 {
		t.Fatalf("redraws = %d, want 0", *redraws)
	}
}

func TestRenderOverlaysPreviewWithoutCommitting(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolLine)
	c.SetColor(red)
	c.SetWidth(1)
	c.PointerDown(image.Pt(10, 10))
	c.PointerMove(image.Pt(60, 10))

	offset := image.Pt(0, 20)
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	c.Render(dst, offset)
	if got := dst.RGBAAt(30, 30); got != red {
		t.Fatalf("preview pixel = %v, want red", got)
	}
	if got := c.Surface().At(30, 10); got != white {
		t.Fatalf("preview leaked into buffer: %v", got)
	}

	// The preview is recomputed from the drag state on every render.
	c.PointerMove(image.Pt(10, 60))
	dst = image.NewRGBA(image.Rect(0, 0, 100, 100))
	c.Render(dst, offset)
	if got := dst.RGBAAt(30, 30); got != white {
		t.Fatalf("stale preview pixel = %v", got)
	}
	if got := dst.RGBAAt(10, 60); got != red {
		t.Fatalf("moved preview pixel = %v, want red", got)
	}
}

func TestRenderWithoutDragShowsBuffer(t *testing.T) {
	c, _ := newController(t)
	c.Surface().DrawLine(image.Pt(0, 0), image.Pt(99, 0), red, 1)
	dst := image.NewRGBA(image.Rect(0, 0, 100, 80))
	c.Render(dst, image.Point{})
	if !bytes.Equal(dst.Pix, c.Surface().Image().Pix) {
		t.Fatal("render differs from buffer")
	}
	if _, ok := c.Preview(); ok {
		t.Fatal("unexpected preview")
	}
}

func TestSetToolCancelsDrag(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolEllipse)
	c.PointerDown(image.Pt(10, 10))
	c.PointerMove(image.Pt(40, 40))
	before := snapshot(c.Surface())
	c.SetTool(ToolRectangle)
	c.PointerUp(image.Pt(40, 40))
	if !bytes.Equal(before, c.Surface().Image().Pix) {
		t.Fatal("shape committed after the tool changed mid-drag")
	}
}

func TestClearCanvas(t *testing.T) {
	c, _ := newController(t)
	c.Surface().DrawLine(image.Pt(0, 0), image.Pt(50, 50), red, 5)
	c.ClearCanvas()
	if got := c.Surface().At(25, 25); got != white {
		t.Fatalf("pixel after clear = %v", got)
	}
}

func TestExportCanvasExcludesPreview(t *testing.T) {
	c, _ := newController(t)
	c.SetTool(ToolRectangle)
	c.PointerDown(image.Pt(10, 10))
	c.PointerMove(image.Pt(40, 40))
	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.ExportCanvas(path, canvas.FormatPNG); err != nil {
		t.Fatalf("ExportCanvas: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
	if err := c.ExportCanvas(filepath.Join(t.TempDir(), "nope", "out.png"), canvas.FormatPNG); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestParseTool(t *testing.T) {
	for _, tool := range Tools() {
		got, err := ParseTool(tool.String())
		if err != nil || got != tool {
			t.Errorf("ParseTool(%q) = %v, %v", tool.String(), got, err)
		}
	}
	if _, err := ParseTool("brush"); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

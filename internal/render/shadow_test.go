package render

import (
	"image"
	"testing"
)

func TestShadowExpandsBounds(t *testing.T) {
	opts := ShadowOptions{Radius: 4, Offset: image.Pt(8, 6), Opacity: 0.5}
	out, at := Shadow(image.Pt(10, 10), opts)
	if out == nil {
		t.Fatal("expected output image")
	}
	expected := image.Rect(0, 0, 22, 20)
	if !out.Bounds().Eq(expected) {
		t.Fatalf("unexpected bounds %v, want %v", out.Bounds(), expected)
	}
	if at != (image.Point{}) {
		t.Fatalf("subject origin %v, want (0,0)", at)
	}
	// Far corner of the cast shadow, well inside the blurred area.
	if out.RGBAAt(16, 14).A == 0 {
		t.Fatalf("expected shadow alpha inside the cast area")
	}
	if out.RGBAAt(21, 0).A != 0 {
		t.Fatalf("expected no shadow above the cast area")
	}
}

func TestShadowNegativeOffsetShiftsSubject(t *testing.T) {
	_, at := Shadow(image.Pt(10, 10), ShadowOptions{Radius: 2, Offset: image.Pt(-5, 0), Opacity: 1})
	if at != image.Pt(7, 2) {
		t.Fatalf("subject origin %v, want (7,2)", at)
	}
}

func TestShadowNoneWhenTransparent(t *testing.T) {
	if out, _ := Shadow(image.Pt(4, 4), ShadowOptions{Radius: 12, Opacity: 0}); out != nil {
		t.Fatalf("expected no shadow for zero opacity")
	}
	if out, _ := Shadow(image.Point{}, DefaultShadowOptions()); out != nil {
		t.Fatalf("expected no shadow for empty size")
	}
}

func TestShadowBlurSoftensEdge(t *testing.T) {
	out, _ := Shadow(image.Pt(20, 20), ShadowOptions{Radius: 3, Offset: image.Pt(0, 0), Opacity: 1})
	inner := out.RGBAAt(13, 13).A
	edge := out.RGBAAt(13, 3).A
	if inner != 255 {
		t.Fatalf("expected full alpha inside, got %d", inner)
	}
	if edge == 0 || edge >= inner {
		t.Fatalf("expected partial alpha at the edge, got %d", edge)
	}
}

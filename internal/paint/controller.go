package paint

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/simplepaint/internal/canvas"
)

// DragState records the pointer positions of a drag in progress. Anchor and
// Current are only meaningful while Active is true.
type DragState struct {
	Active  bool
	Anchor  image.Point
	Current image.Point
}

// Controller applies pointer events to a canvas surface according to the
// session settings. All methods must be called from the UI event loop.
type Controller struct {
	surface *canvas.Surface
	session Session
	drag    DragState

	invalidate func()
}

// ControllerOption modifies a Controller during creation.
type ControllerOption func(*Controller)

// WithSession sets the initial drawing settings.
func WithSession(s Session) ControllerOption {
	return func(c *Controller) { c.session = s }
}

// WithInvalidate registers the callback used to request a repaint.
func WithInvalidate(fn func()) ControllerOption {
	return func(c *Controller) { c.invalidate = fn }
}

// NewController creates a controller drawing onto surface. The session
// background always follows the surface background.
func NewController(surface *canvas.Surface, opts ...ControllerOption) *Controller {
	c := &Controller{surface: surface, session: NewSession()}
	for _, o := range opts {
		o(c)
	}
	c.session.Background = surface.Background()
	c.session.Width = c.session.ClampWidth(c.session.Width)
	return c
}

// Surface returns the canvas the controller commits to.
func (c *Controller) Surface() *canvas.Surface { return c.surface }

// Session returns a copy of the current settings.
func (c *Controller) Session() Session { return c.session }

// Drag returns a copy of the drag state.
func (c *Controller) Drag() DragState { return c.drag }

// SetTool selects the active tool. A drag in progress is abandoned so a
// shape is never committed with a tool other than the one it started with.
func (c *Controller) SetTool(t Tool) {
	if c.session.Tool == t {
		return
	}
	c.session.Tool = t
	if c.drag.Active {
		c.drag = DragState{}
	}
	c.requestRedraw()
}

// SetColor sets the color used by every tool except the eraser.
func (c *Controller) SetColor(col color.RGBA) {
	c.session.Color = col
	c.requestRedraw()
}

// SetWidth sets the stroke width, clamped to the session range. It returns
// the width actually applied.
func (c *Controller) SetWidth(w int) int {
	c.session.Width = c.session.ClampWidth(w)
	c.requestRedraw()
	return c.session.Width
}

// ClearCanvas wipes the committed drawing.
func (c *Controller) ClearCanvas() {
	c.surface.Clear()
	c.requestRedraw()
}

// ExportCanvas writes the committed drawing to path. The preview of a shape
// being dragged is not part of the output.
func (c *Controller) ExportCanvas(path string, f canvas.Format) error {
	return c.surface.Export(path, f)
}

// PointerDown starts a drag at p.
func (c *Controller) PointerDown(p image.Point) {
	c.drag = DragState{Active: true, Anchor: p, Current: p}
}

// PointerMove continues a drag. Freehand tools commit the segment from the
// anchor to p and advance the anchor; shape tools only update the preview.
// Moves without a preceding PointerDown are ignored.
func (c *Controller) PointerMove(p image.Point) {
	if !c.drag.Active {
		return
	}
	if c.session.Tool.Freehand() {
		c.surface.DrawLine(c.drag.Anchor, p, c.session.StrokeColor(), c.session.Width)
		c.drag.Anchor = p
		c.drag.Current = p
		c.requestRedraw()
		return
	}
	c.drag.Current = p
	c.requestRedraw()
}

// PointerUp ends a drag. Shape tools commit their shape from the anchor to p
// exactly once.
func (c *Controller) PointerUp(p image.Point) {
	if !c.drag.Active {
		return
	}
	c.drag.Current = p
	if st, ok := c.Preview(); ok {
		c.surface.Commit(st)
	}
	c.drag = DragState{}
	c.requestRedraw()
}

// Preview returns the shape being dragged, if a shape tool is active.
func (c *Controller) Preview() (canvas.Stroke, bool) {
	if !c.drag.Active {
		return canvas.Stroke{}, false
	}
	shape, ok := c.session.Tool.Shape()
	if !ok {
		return canvas.Stroke{}, false
	}
	return canvas.Stroke{
		Shape: shape,
		From:  c.drag.Anchor,
		To:    c.drag.Current,
		Color: c.session.StrokeColor(),
		Width: c.session.Width,
	}, true
}

// Render draws the committed buffer into dst at offset and overlays the
// in-progress shape. Only dst is modified.
func (c *Controller) Render(dst *image.RGBA, offset image.Point) {
	img := c.surface.Image()
	target := img.Bounds().Add(offset)
	draw.Draw(dst, target, img, img.Bounds().Min, draw.Src)
	st, ok := c.Preview()
	if !ok {
		return
	}
	st.From = st.From.Add(offset)
	st.To = st.To.Add(offset)
	// Keep the preview inside the canvas area of dst.
	area, ok := dst.SubImage(target.Intersect(dst.Bounds())).(*image.RGBA)
	if !ok || area.Bounds().Empty() {
		return
	}
	st.Draw(area, c.surface.Rasterizer())
}

func (c *Controller) requestRedraw() {
	if c.invalidate != nil {
		c.invalidate()
	}
}

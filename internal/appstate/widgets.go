package appstate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/simplepaint/internal/canvas"
	drawing "github.com/example/simplepaint/internal/paint"
	"github.com/example/simplepaint/internal/theme"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// labelButton is the shared look of every text button in the toolbar.
type labelButton struct {
	label string
	rect  image.Rectangle
	theme *theme.Theme
}

func (lb *labelButton) Draw(dst *image.RGBA, state ButtonState) {
	bg, fg := lb.theme.ButtonBackground, lb.theme.ButtonText
	switch state {
	case StateHover:
		bg = lb.theme.ButtonBackgroundHover
	case StatePressed:
		bg, fg = lb.theme.ButtonBackgroundActive, lb.theme.ButtonTextActive
	}
	fillRect(dst, lb.rect, bg)
	strokeRect(dst, lb.rect, lb.theme.ButtonBorder)
	w := labelWidth(lb.label)
	x := lb.rect.Min.X + (lb.rect.Dx()-w)/2
	y := lb.rect.Min.Y + (lb.rect.Dy()+basicfont.Face7x13.Ascent-basicfont.Face7x13.Descent)/2
	drawLabel(dst, x, y, lb.label, fg)
}

func (lb *labelButton) Rect() image.Rectangle { return lb.rect }

func (lb *labelButton) SetRect(r image.Rectangle) { lb.rect = r }

// ToolButton selects a drawing tool. The tool travels with the button, so
// the label is free text.
type ToolButton struct {
	labelButton
	tool     drawing.Tool
	onSelect func(drawing.Tool)
}

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect(tb.tool)
	}
}

// ActionButton runs a command such as save or clear.
type ActionButton struct {
	labelButton
	name       string
	onActivate func()
}

func (ab *ActionButton) Activate() {
	if ab.onActivate != nil {
		ab.onActivate()
	}
}

// Slider maps horizontal positions onto an integer range.
type Slider struct {
	Rect     image.Rectangle
	Min, Max int
}

const knobWidth = 8

func (s Slider) track() (int, int) {
	return s.Rect.Min.X + knobWidth/2, s.Rect.Max.X - knobWidth/2
}

// ValueAt returns the value under x, clamped to [Min, Max].
func (s Slider) ValueAt(x int) int {
	x0, x1 := s.track()
	if s.Max <= s.Min || x1 <= x0 {
		return s.Min
	}
	if x <= x0 {
		return s.Min
	}
	if x >= x1 {
		return s.Max
	}
	span := s.Max - s.Min
	return s.Min + ((x-x0)*span+(x1-x0)/2)/(x1-x0)
}

// KnobX returns the horizontal centre of the knob for v.
func (s Slider) KnobX(v int) int {
	x0, x1 := s.track()
	if s.Max <= s.Min {
		return x0
	}
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	return x0 + (v-s.Min)*(x1-x0)/(s.Max-s.Min)
}

func (s Slider) Draw(dst *image.RGBA, v int, col color.RGBA, th *theme.Theme, hover bool) {
	cy := (s.Rect.Min.Y + s.Rect.Max.Y) / 2
	x0, x1 := s.track()
	fillRect(dst, image.Rect(x0, cy-2, x1+1, cy+2), th.SliderTrack)
	kx := s.KnobX(v)
	knob := image.Rect(kx-knobWidth/2, s.Rect.Min.Y, kx+knobWidth/2, s.Rect.Max.Y)
	knobCol := th.SliderKnob
	if hover {
		knobCol = th.ButtonBackgroundActive
	}
	fillRect(dst, knob, knobCol)

	// Width label followed by a sample dot of the current stroke.
	label := fmt.Sprintf("Width %d", v)
	lx := s.Rect.Max.X + 8
	drawLabel(dst, lx, cy+basicfont.Face7x13.Ascent/2, label, th.Foreground)
	sample := lx + labelWidth("Width 00") + 8 + drawing.DefaultMaxWidth/2
	canvas.PixelRasterizer{}.Line(dst, image.Pt(sample, cy), image.Pt(sample, cy), col, v)
}

func fillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	op := draw.Src
	if c.A != 255 {
		op = draw.Over
	}
	draw.Draw(dst, r, &image.Uniform{c}, image.Point{}, op)
}

func strokeRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

func labelWidth(s string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(s).Ceil()
}

func drawLabel(dst *image.RGBA, x, y int, s string, c color.RGBA) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: basicfont.Face7x13, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

package appstate

import (
	"image"
	"image/color"

	drawing "github.com/example/simplepaint/internal/paint"
	"github.com/example/simplepaint/internal/theme"
)

const (
	toolbarHeight = 80
	buttonHeight  = 28
	rowOneY       = 8
	rowTwoY       = 46
	swatchSize    = 20
	swatchStep    = 24
	margin        = 8
	sliderWidth   = 180
	stripWidth    = 120
)

var toolLabels = map[drawing.Tool]string{
	drawing.ToolPen:       "Pen",
	drawing.ToolEraser:    "Eraser",
	drawing.ToolLine:      "Line",
	drawing.ToolRectangle: "Rect",
	drawing.ToolEllipse:   "Ellipse",
}

type targetKind int

const (
	targetNone targetKind = iota
	targetButton
	targetSwatch
	targetSlider
	targetStrip
)

// target is the toolbar element under a point.
type target struct {
	kind   targetKind
	button Button
	index  int
}

// toolbar lays out the controls strip above the canvas.
type toolbar struct {
	width    int
	theme    *theme.Theme
	tools    []*CacheButton
	actions  []*CacheButton
	swatches []image.Rectangle
	strip    ColorStrip
	slider   Slider
}

func newToolbar(width int, th *theme.Theme, minWidth, maxWidth int, onTool func(drawing.Tool), actions []*ActionButton) *toolbar {
	tb := &toolbar{width: width, theme: th}

	x := margin
	for _, t := range drawing.Tools() {
		label := toolLabels[t]
		btn := &ToolButton{labelButton: labelButton{label: label, theme: th}, tool: t, onSelect: onTool}
		w := labelWidth(label) + 20
		btn.SetRect(image.Rect(x, rowOneY, x+w, rowOneY+buttonHeight))
		tb.tools = append(tb.tools, &CacheButton{Button: btn})
		x += w + 4
	}

	// Commands are right aligned on the first row.
	right := width - margin
	for i := len(actions) - 1; i >= 0; i-- {
		a := actions[i]
		a.theme = th
		w := labelWidth(a.label) + 20
		a.SetRect(image.Rect(right-w, rowOneY, right, rowOneY+buttonHeight))
		tb.actions = append([]*CacheButton{{Button: a}}, tb.actions...)
		right -= w + 4
	}

	sliderX := width - margin - sliderWidth - 140
	if sliderX < margin {
		sliderX = margin
	}
	stripX := sliderX - 2*margin - stripWidth
	if stripX < margin {
		stripX = margin
	}
	x = margin
	for i := 0; i < paletteLen(); i++ {
		if x+swatchSize > stripX-margin {
			break
		}
		tb.swatches = append(tb.swatches, image.Rect(x, rowTwoY, x+swatchSize, rowTwoY+swatchSize))
		x += swatchStep
	}
	tb.strip = ColorStrip{Rect: image.Rect(stripX, rowTwoY, stripX+stripWidth, rowTwoY+swatchSize)}
	tb.slider = Slider{
		Rect: image.Rect(sliderX, rowTwoY, sliderX+sliderWidth, rowTwoY+swatchSize),
		Min:  minWidth,
		Max:  maxWidth,
	}
	return tb
}

func (tb *toolbar) hit(p image.Point) target {
	if p.Y < 0 || p.Y >= toolbarHeight {
		return target{kind: targetNone, index: -1}
	}
	for i, b := range tb.tools {
		if p.In(b.Rect()) {
			return target{kind: targetButton, button: b, index: i}
		}
	}
	for i, b := range tb.actions {
		if p.In(b.Rect()) {
			return target{kind: targetButton, button: b, index: len(tb.tools) + i}
		}
	}
	for i, r := range tb.swatches {
		if p.In(r) {
			return target{kind: targetSwatch, index: i}
		}
	}
	if p.In(tb.strip.Rect) {
		return target{kind: targetStrip, index: 0}
	}
	if p.In(tb.slider.Rect) {
		return target{kind: targetSlider, index: 0}
	}
	return target{kind: targetNone, index: -1}
}

// draw renders the toolbar for the current session. hover is the target
// under the pointer.
func (tb *toolbar) draw(dst *image.RGBA, s drawing.Session, hover target) {
	th := tb.theme
	fillRect(dst, image.Rect(0, 0, dst.Bounds().Dx(), toolbarHeight), th.ToolbarBackground)
	fillRect(dst, image.Rect(0, toolbarHeight-1, dst.Bounds().Dx(), toolbarHeight), th.ToolbarSeparator)

	for _, b := range tb.tools {
		state := StateDefault
		if b.Button.(*ToolButton).tool == s.Tool {
			state = StatePressed
		} else if hover.kind == targetButton && hover.button == Button(b) {
			state = StateHover
		}
		b.Draw(dst, state)
	}
	for _, b := range tb.actions {
		state := StateDefault
		if hover.kind == targetButton && hover.button == Button(b) {
			state = StateHover
		}
		b.Draw(dst, state)
	}

	for i, r := range tb.swatches {
		c := paletteColorAt(i)
		fillRect(dst, r, c)
		border := th.SwatchBorder
		if c == s.Color {
			border = th.SwatchSelected
			strokeRect(dst, r.Inset(-2), border)
		} else if hover.kind == targetSwatch && hover.index == i {
			fillRect(dst, r, color.RGBA{80, 80, 80, 80})
		}
		strokeRect(dst, r, border)
	}

	tb.strip.Draw(dst, th.SwatchBorder, th.SwatchSelected, hover.kind == targetStrip)
	tb.slider.Draw(dst, s.Width, s.StrokeColor(), th, hover.kind == targetSlider)
}

package paint

import "image/color"

const (
	DefaultWidth    = 5
	DefaultMinWidth = 1
	DefaultMaxWidth = 30
)

var (
	DefaultColor      = color.RGBA{0, 0, 0, 255}
	DefaultBackground = color.RGBA{255, 255, 255, 255}
)

// Session is the user's current drawing settings.
type Session struct {
	Tool       Tool
	Color      color.RGBA
	Width      int
	MinWidth   int
	MaxWidth   int
	Background color.RGBA
}

// NewSession returns the settings a fresh window starts with.
func NewSession() Session {
	return Session{
		Tool:       ToolPen,
		Color:      DefaultColor,
		Width:      DefaultWidth,
		MinWidth:   DefaultMinWidth,
		MaxWidth:   DefaultMaxWidth,
		Background: DefaultBackground,
	}
}

// StrokeColor is the color the active tool paints with. The eraser paints
// with the background color.
func (s Session) StrokeColor() color.RGBA {
	if s.Tool == ToolEraser {
		return s.Background
	}
	return s.Color
}

// ClampWidth limits w to the configured width range.
func (s Session) ClampWidth(w int) int {
	lo, hi := s.MinWidth, s.MaxWidth
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	if w < lo {
		return lo
	}
	if w > hi {
		return hi
	}
	return w
}

// Package paint translates pointer input into canvas strokes. It owns the
// interaction session (tool, color, width) and the state of the current drag.
package paint

import (
	"fmt"
	"strings"

	"github.com/example/simplepaint/internal/canvas"
)

// Tool selects how pointer drags are turned into strokes.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
	ToolLine
	ToolRectangle
	ToolEllipse
)

// Tools lists every tool in toolbar order.
func Tools() []Tool {
	return []Tool{ToolPen, ToolEraser, ToolLine, ToolRectangle, ToolEllipse}
}

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	case ToolLine:
		return "line"
	case ToolRectangle:
		return "rect"
	case ToolEllipse:
		return "ellipse"
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// ParseTool maps a tool name to a Tool.
func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pen", "pencil":
		return ToolPen, nil
	case "eraser":
		return ToolEraser, nil
	case "line":
		return ToolLine, nil
	case "rect", "rectangle":
		return ToolRectangle, nil
	case "ellipse", "circle":
		return ToolEllipse, nil
	}
	return ToolPen, fmt.Errorf("unknown tool %q", s)
}

// Freehand reports whether the tool commits segments while the pointer moves.
func (t Tool) Freehand() bool {
	return t == ToolPen || t == ToolEraser
}

// Shape returns the canvas shape a shape tool commits on release.
func (t Tool) Shape() (canvas.Shape, bool) {
	switch t {
	case ToolLine:
		return canvas.ShapeLine, true
	case ToolRectangle:
		return canvas.ShapeRectangle, true
	case ToolEllipse:
		return canvas.ShapeEllipse, true
	}
	return 0, false
}

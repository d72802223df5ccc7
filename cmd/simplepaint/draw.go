package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/example/simplepaint/internal/appstate"
	"github.com/example/simplepaint/internal/canvas"
	"github.com/example/simplepaint/internal/clipboard"
	"github.com/example/simplepaint/internal/colorspec"
	drawing "github.com/example/simplepaint/internal/paint"
)

// drawCmd draws one stroke on a blank canvas without opening a window. The
// stroke is replayed through the same controller the window uses.
type drawCmd struct {
	*root
	fs          *flag.FlagSet
	output      string
	format      string
	colorSpec   string
	background  string
	canvasSpec  string
	width       int
	smooth      bool
	toClipboard bool
	tool        drawing.Tool
	points      []image.Point
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

var (
	drawFlagNames = map[string]struct{}{
		"output": {}, "format": {}, "color": {}, "background": {}, "canvas": {},
		"width": {}, "smooth": {}, "to-clipboard": {}, "to-clip": {},
	}
	drawBoolFlags = map[string]struct{}{
		"smooth": {}, "to-clipboard": {}, "to-clip": {},
	}
)

// parseColor accepts everything colorspec does plus palette names. Any alpha
// in a hex value is dropped.
func parseColor(s string) (color.RGBA, error) {
	c, err := colorspec.ParseOpaque(s)
	if err == nil {
		return c, nil
	}
	if pc, ok := appstate.LookupPaletteColor(strings.TrimSpace(s)); ok {
		return pc, nil
	}
	return color.RGBA{}, err
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	s := r.session()
	w, h := r.canvasSize()
	output, format, smooth := "drawing.png", "", false
	if r != nil && r.config != nil {
		output, format, smooth = r.config.Output, r.config.Format, r.config.Antialias
	}
	fs.StringVar(&d.output, "output", output, "output file path")
	fs.StringVar(&d.format, "format", format, "export format (png, jpeg, bmp, tiff, pdf); inferred from -output when empty")
	fs.StringVar(&d.colorSpec, "color", colorspec.Hex(s.Color), "stroke color name or hex value")
	fs.StringVar(&d.background, "background", colorspec.Hex(s.Background), "canvas background color")
	fs.StringVar(&d.canvasSpec, "canvas", fmt.Sprintf("%dx%d", w, h), "canvas size as WIDTHxHEIGHT")
	fs.IntVar(&d.width, "width", s.Width, "stroke width in pixels")
	fs.BoolVar(&d.smooth, "smooth", smooth, "anti-alias strokes")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")

	flagArgs, positionals, err := splitDrawArgs(args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.tool, err = drawing.ParseTool(positionals[0])
	if err != nil {
		return nil, err
	}
	coords := positionals[1:]
	if d.tool.Freehand() {
		if len(coords) < 2 || len(coords)%2 != 0 {
			return nil, fmt.Errorf("%s requires pairs of x y coordinates", d.tool)
		}
	} else if len(coords) != 4 {
		return nil, fmt.Errorf("%s requires 4 integer arguments", d.tool)
	}
	vals, err := expectInts(coords, len(coords), d.tool.String())
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(vals); i += 2 {
		d.points = append(d.points, image.Pt(vals[i], vals[i+1]))
	}
	if d.output == "" && !d.toClipboard {
		return nil, fmt.Errorf("an output file or -to-clipboard is required")
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	size, err := parseCanvasSize(d.canvasSpec)
	if err != nil {
		return err
	}
	bg, err := parseColor(d.background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	col, err := parseColor(d.colorSpec)
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}

	surface := canvas.NewSurface(size, bg, canvas.WithSmoothing(d.smooth))
	s := d.root.session()
	s.Tool = d.tool
	s.Color = col
	ctrl := drawing.NewController(surface, drawing.WithSession(s))
	ctrl.SetWidth(d.width)
	replay(ctrl, d.points)

	if d.output != "" {
		var format canvas.Format
		if d.format != "" {
			if format, err = canvas.ParseFormat(d.format); err != nil {
				return err
			}
		}
		out := d.root.resolveOutput(d.output)
		if err := ctrl.ExportCanvas(out, format); err != nil {
			return fmt.Errorf("failed to save drawing: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", out)
		if d.root != nil {
			d.root.notifier.Save(out)
		}
	}
	if d.toClipboard {
		if err := clipboard.WriteImage(surface.Image()); err != nil {
			return fmt.Errorf("failed to copy drawing: %w", err)
		}
		fmt.Fprintln(os.Stderr, "copied drawing to clipboard")
		if d.root != nil {
			d.root.notifier.Copy("drawing")
		}
	}
	return nil
}

// replay feeds points to the controller as a single press, drag and
// release.
func replay(ctrl *drawing.Controller, points []image.Point) {
	if len(points) == 0 {
		return
	}
	ctrl.PointerDown(points[0])
	for _, p := range points[1:] {
		ctrl.PointerMove(p)
	}
	ctrl.PointerUp(points[len(points)-1])
}

func expectInts(args []string, n int, shape string) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", shape, n)
	}
	vals := make([]int, n)
	for i, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

// splitDrawArgs separates known flags from positionals so flags may follow
// the tool name and negative coordinates are not mistaken for flags.
func splitDrawArgs(args []string) ([]string, []string, error) {
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		base, value, hasValue := strings.Cut(name, "=")
		base = strings.ToLower(base)
		if _, ok := drawFlagNames[base]; !ok {
			positionals = append(positionals, arg)
			continue
		}
		norm := "-" + base
		if hasValue {
			flags = append(flags, norm+"="+value)
			continue
		}
		if _, ok := drawBoolFlags[base]; ok {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}

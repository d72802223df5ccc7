package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/example/simplepaint/internal/appstate"
	"github.com/example/simplepaint/internal/canvas"
	"github.com/example/simplepaint/internal/colorspec"
	drawing "github.com/example/simplepaint/internal/paint"
)

// openCmd shows the drawing window.
type openCmd struct {
	*root
	fs         *flag.FlagSet
	output     string
	format     string
	canvasSpec string
	background string
	colorSpec  string
	width      int
	tool       string
	smooth     bool
}

func (o *openCmd) FlagSet() *flag.FlagSet {
	return o.fs
}

func parseOpenCmd(args []string, r *root) (*openCmd, error) {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	o := &openCmd{root: r, fs: fs}
	fs.Usage = usageFunc(o)
	s := r.session()
	w, h := r.canvasSize()
	output, format, smooth := "drawing.png", "", false
	if r != nil && r.config != nil {
		output, format, smooth = r.config.Output, r.config.Format, r.config.Antialias
	}
	fs.StringVar(&o.output, "output", output, "file written by the save command")
	fs.StringVar(&o.format, "format", format, "export format (png, jpeg, bmp, tiff, pdf); inferred from -output when empty")
	fs.StringVar(&o.canvasSpec, "canvas", fmt.Sprintf("%dx%d", w, h), "canvas size as WIDTHxHEIGHT")
	fs.StringVar(&o.background, "background", colorspec.Hex(s.Background), "canvas background color")
	fs.StringVar(&o.colorSpec, "color", colorspec.Hex(s.Color), "initial stroke color name or hex value")
	fs.IntVar(&o.width, "width", s.Width, "initial stroke width in pixels")
	fs.StringVar(&o.tool, "tool", s.Tool.String(), "initial tool (pen, eraser, line, rect, ellipse)")
	fs.BoolVar(&o.smooth, "smooth", smooth, "anti-alias strokes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: o}
	}
	return o, nil
}

func (o *openCmd) Run() error {
	opts, err := o.options()
	if err != nil {
		return err
	}
	appstate.New(opts...).Run()
	return nil
}

func (o *openCmd) options() ([]appstate.Option, error) {
	size, err := parseCanvasSize(o.canvasSpec)
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(o.background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	col, err := parseColor(o.colorSpec)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	tool, err := drawing.ParseTool(o.tool)
	if err != nil {
		return nil, err
	}
	var format canvas.Format
	if o.format != "" {
		if format, err = canvas.ParseFormat(o.format); err != nil {
			return nil, err
		}
	}

	s := o.root.session()
	s.Tool = tool
	s.Color = col
	s.Width = s.ClampWidth(o.width)
	s.Background = bg

	output := o.root.resolveOutput(o.output)
	opts := []appstate.Option{
		appstate.WithSurface(canvas.NewSurface(size, bg, canvas.WithSmoothing(o.smooth))),
		appstate.WithSession(s),
		appstate.WithOutput(output),
		appstate.WithFormat(format),
		appstate.WithTitle(fmt.Sprintf("SimplePaint - %s", filepath.Base(output))),
		appstate.WithOnClose(func() { fmt.Fprintln(os.Stderr, "window closed") }),
	}
	if o.root != nil {
		opts = append(opts, appstate.WithNotifier(o.root.notifier))
		if o.root.activeTheme != nil {
			opts = append(opts, appstate.WithTheme(o.root.activeTheme))
		}
	}
	return opts, nil
}

// parseCanvasSize reads WIDTHxHEIGHT.
func parseCanvasSize(s string) (image.Point, error) {
	var w, h int
	if n, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil || n != 2 {
		return image.Point{}, fmt.Errorf("invalid canvas size %q, want WIDTHxHEIGHT", s)
	}
	if w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("canvas size %q must be positive", s)
	}
	return image.Pt(w, h), nil
}

// Package colorspec parses and formats the color values accepted on the
// command line, in configuration files and in theme files.
package colorspec

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse accepts an SVG color name (see golang.org/x/image/colornames) or a
// hex value in the form #RRGGBB or #RRGGBBAA. Hex channels are straight
// alpha; the returned color is alpha-premultiplied.
func Parse(s string) (color.RGBA, error) {
	n, err := parseNRGBA(s)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}

// ParseOpaque is Parse with the alpha channel dropped. Stroke and canvas
// colors are plain RGB because the rasterizer replaces pixels.
func ParseOpaque(s string) (color.RGBA, error) {
	n, err := parseNRGBA(s)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}, nil
}

func parseNRGBA(s string) (color.NRGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.NRGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return color.NRGBAModel.Convert(c).(color.NRGBA), nil
	}
	if !strings.HasPrefix(spec, "#") {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	hex := spec[1:]
	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		return color.NRGBA{
			R: uint8(val >> 16),
			G: uint8((val >> 8) & 0xFF),
			B: uint8(val & 0xFF),
			A: 255,
		}, nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		return color.NRGBA{
			R: uint8(val >> 24),
			G: uint8((val >> 16) & 0xFF),
			B: uint8((val >> 8) & 0xFF),
			A: uint8(val & 0xFF),
		}, nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid color %q: hex value must have 6 or 8 digits", s)
}

// Hex formats c as #RRGGBB, or as straight-alpha #RRGGBBAA when it is not
// opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

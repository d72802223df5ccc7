// Package config loads user preferences from an RC style file.
package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/simplepaint/internal/colorspec"
	"github.com/example/simplepaint/internal/theme"
)

// Canvas holds the drawing buffer settings.
type Canvas struct {
	Width      int
	Height     int
	Background color.RGBA
}

// Stroke holds the initial stroke style and its allowed range.
type Stroke struct {
	Color    color.RGBA
	Width    int
	MinWidth int
	MaxWidth int
}

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme     string
	SaveDir   string
	Output    string
	Format    string
	Antialias bool
	Canvas    Canvas
	Stroke    Stroke
	Notify    Notify
	Themes    map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:  "", // empty lets SIMPLEPAINT_THEME or the default apply
		Output: "drawing.png",
		Canvas: Canvas{
			Width:      950,
			Height:     520,
			Background: color.RGBA{255, 255, 255, 255},
		},
		Stroke: Stroke{
			Color:    color.RGBA{0, 0, 0, 255},
			Width:    5,
			MinWidth: 1,
			MaxWidth: 30,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Validate reports settings that cannot be used together.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Stroke.MinWidth < 1 {
		return fmt.Errorf("stroke min_width %d must be at least 1", c.Stroke.MinWidth)
	}
	if c.Stroke.MaxWidth < c.Stroke.MinWidth {
		return fmt.Errorf("stroke max_width %d is below min_width %d", c.Stroke.MaxWidth, c.Stroke.MinWidth)
	}
	return nil
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.Output != "" {
		fmt.Fprintf(&sb, "output = %s\n", c.Output)
	}
	if c.Format != "" {
		fmt.Fprintf(&sb, "format = %s\n", c.Format)
	}
	fmt.Fprintf(&sb, "antialias = %v\n", c.Antialias)
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	fmt.Fprintf(&sb, "background = %s\n", colorspec.Hex(c.Canvas.Background))
	sb.WriteString("\n")

	sb.WriteString("[stroke]\n")
	fmt.Fprintf(&sb, "color = %s\n", colorspec.Hex(c.Stroke.Color))
	fmt.Fprintf(&sb, "width = %d\n", c.Stroke.Width)
	fmt.Fprintf(&sb, "min_width = %d\n", c.Stroke.MinWidth)
	fmt.Fprintf(&sb, "max_width = %d\n", c.Stroke.MaxWidth)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name = %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s = %s\n", f.Name, colorspec.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

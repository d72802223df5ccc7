package appstate

import (
	"image/color"
	"strings"
	"sync"

	"github.com/example/simplepaint/internal/colorspec"
)

// PaletteColor is a swatch offered in the toolbar.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

// palette holds the swatches in toolbar order. Colors added at runtime are
// appended and named after their hex value.
var (
	paletteMu sync.RWMutex
	palette   = []PaletteColor{
		{"Black", color.RGBA{0, 0, 0, 255}},
		{"White", color.RGBA{255, 255, 255, 255}},
		{"Red", color.RGBA{255, 0, 0, 255}},
		{"Lime", color.RGBA{0, 255, 0, 255}},
		{"Blue", color.RGBA{0, 0, 255, 255}},
		{"Yellow", color.RGBA{255, 255, 0, 255}},
		{"Cyan", color.RGBA{0, 255, 255, 255}},
		{"Magenta", color.RGBA{255, 0, 255, 255}},
		{"Maroon", color.RGBA{128, 0, 0, 255}},
		{"Green", color.RGBA{0, 128, 0, 255}},
		{"Navy", color.RGBA{0, 0, 128, 255}},
		{"Olive", color.RGBA{128, 128, 0, 255}},
		{"Teal", color.RGBA{0, 128, 128, 255}},
		{"Purple", color.RGBA{128, 0, 128, 255}},
		{"Silver", color.RGBA{192, 192, 192, 255}},
		{"Gray", color.RGBA{128, 128, 128, 255}},
	}
)

// PaletteColors returns a copy of the palette.
func PaletteColors() []PaletteColor {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return append([]PaletteColor(nil), palette...)
}

// EnsurePaletteColor adds col to the palette unless it is already there and
// returns its index. An empty name defaults to the hex value.
func EnsurePaletteColor(col color.RGBA, name string) int {
	paletteMu.Lock()
	defer paletteMu.Unlock()
	if idx := indexOfLocked(col); idx >= 0 {
		return idx
	}
	if name == "" {
		name = colorspec.Hex(col)
	}
	palette = append(palette, PaletteColor{Name: name, Color: col})
	return len(palette) - 1
}

// LookupPaletteColor finds a palette entry by name, ignoring case.
func LookupPaletteColor(name string) (color.RGBA, bool) {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	for _, pc := range palette {
		if strings.EqualFold(pc.Name, name) {
			return pc.Color, true
		}
	}
	return color.RGBA{}, false
}

func indexOfLocked(col color.RGBA) int {
	for i, pc := range palette {
		if pc.Color == col {
			return i
		}
	}
	return -1
}

func paletteIndexOf(col color.RGBA) int {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return indexOfLocked(col)
}

func paletteLen() int {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return len(palette)
}

// paletteColorAt clamps idx into range.
func paletteColorAt(idx int) color.RGBA {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	if len(palette) == 0 {
		return color.RGBA{}
	}
	idx = max(0, min(idx, len(palette)-1))
	return palette[idx].Color
}

// Package theme describes the colors of the window chrome around the canvas.
package theme

import (
	"image/color"
)

// Theme defines the color palette for the toolbar and overlays.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window area not covered by the canvas
	Foreground color.RGBA // Label text

	// Toolbar
	ToolbarBackground color.RGBA
	ToolbarSeparator  color.RGBA

	// Buttons
	ButtonBackground       color.RGBA
	ButtonBackgroundHover  color.RGBA
	ButtonBackgroundActive color.RGBA // Selected tool
	ButtonText             color.RGBA
	ButtonTextActive       color.RGBA
	ButtonBorder           color.RGBA

	// Palette and width slider
	SwatchBorder   color.RGBA
	SwatchSelected color.RGBA
	SliderTrack    color.RGBA
	SliderKnob     color.RGBA

	// Message overlay
	MessageBackground color.RGBA
	MessageText       color.RGBA
}

// Default returns the built in light theme.
func Default() *Theme {
	return &Theme{
		Name:                   "Default",
		Background:             color.RGBA{200, 200, 200, 255},
		Foreground:             color.RGBA{0, 0, 0, 255},
		ToolbarBackground:      color.RGBA{220, 220, 220, 255},
		ToolbarSeparator:       color.RGBA{160, 160, 160, 255},
		ButtonBackground:       color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover:  color.RGBA{180, 180, 180, 255},
		ButtonBackgroundActive: color.RGBA{150, 150, 150, 255},
		ButtonText:             color.RGBA{0, 0, 0, 255},
		ButtonTextActive:       color.RGBA{255, 255, 255, 255},
		ButtonBorder:           color.RGBA{0, 0, 0, 255},
		SwatchBorder:           color.RGBA{90, 90, 90, 255},
		SwatchSelected:         color.RGBA{0, 120, 215, 255},
		SliderTrack:            color.RGBA{170, 170, 170, 255},
		SliderKnob:             color.RGBA{60, 60, 60, 255},
		MessageBackground:      color.RGBA{0, 0, 0, 200},
		MessageText:            color.RGBA{255, 255, 255, 255},
	}
}

package gui

import (
	"image/color"

	"github.com/vovakirdan/geowars/internal/core"
)

var (
	background = color.RGBA{0x05, 0x05, 0x12, 0xff}
	gridColor  = color.RGBA{0x14, 0x1c, 0x3c, 0xff}
	frameColor = color.RGBA{0x30, 0x50, 0xc8, 0xff}
	hudColor   = color.RGBA{0x0c, 0x0c, 0x20, 0xff}
	shadeColor = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xdd, 0xdd, 0xdd, 0xff},
	core.ColorRed:          {0xd0, 0x30, 0x30, 0xff},
	core.ColorGreen:        {0x30, 0xd0, 0x60, 0xff},
	core.ColorYellow:       {0xe0, 0xd0, 0x30, 0xff},
	core.ColorBlue:         {0x30, 0x60, 0xe0, 0xff},
	core.ColorMagenta:      {0xe0, 0x40, 0xe0, 0xff},
	core.ColorCyan:         {0x30, 0xd0, 0xd0, 0xff},
	core.ColorWhite:        {0xf0, 0xf0, 0xf0, 0xff},
	core.ColorBrightRed:    {0xff, 0x50, 0x50, 0xff},
	core.ColorBrightYellow: {0xff, 0xff, 0x60, 0xff},
	core.ColorBrightBlue:   {0x70, 0x90, 0xff, 0xff},
	core.ColorBrightCyan:   {0x60, 0xff, 0xff, 0xff},
	core.ColorOrange:       {0xff, 0x90, 0x20, 0xff},
	core.ColorGray:         {0x90, 0x90, 0x90, 0xff},
	core.ColorDarkGray:     {0x50, 0x50, 0x50, 0xff},
}

// rgba maps a cell color to a window color.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// faded scales the alpha channel by f in [0, 1].
func faded(c color.RGBA, f float64) color.RGBA {
	f = core.ClampF(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f), //#nosec G115 -- f is in [0, 1]
		G: uint8(float64(c.G) * f), //#nosec G115
		B: uint8(float64(c.B) * f), //#nosec G115
		A: uint8(float64(c.A) * f), //#nosec G115
	}
}

package window

import (
	"image/color"

	gcolor "github.com/gookit/color"

	"github.com/vovakirdan/ballsort/internal/core"
)

// palette maps core colors to window RGB. Ball outlines are the fill
// darkened by 50 per channel.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {50, 50, 50, 255},
	core.ColorRed:           {200, 0, 0, 255},
	core.ColorGreen:         {0, 200, 0, 255},
	core.ColorYellow:        {200, 200, 0, 255},
	core.ColorBlue:          {0, 0, 200, 255},
	core.ColorMagenta:       {200, 0, 200, 255},
	core.ColorCyan:          {0, 200, 200, 255},
	core.ColorWhite:         {220, 220, 220, 255},
	core.ColorBrightRed:     {255, 0, 0, 255},
	core.ColorBrightGreen:   {0, 255, 0, 255},
	core.ColorBrightYellow:  {255, 255, 0, 255},
	core.ColorBrightBlue:    {0, 0, 255, 255},
	core.ColorBrightMagenta: {255, 0, 255, 255},
	core.ColorBrightCyan:    {0, 255, 255, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 140, 0, 255},
	core.ColorGray:          {180, 180, 180, 255},
	core.ColorDarkRed:       {205, 0, 0, 255},
	core.ColorDarkGreen:     {0, 205, 0, 255},
	core.ColorDarkBlue:      {0, 0, 205, 255},
	core.ColorDarkYellow:    {205, 205, 0, 255},
}

// dimColor is painted over the board behind the completion message.
var dimColor = color.RGBA{0, 0, 0, 180}

var defaultBackground = color.RGBA{240, 240, 240, 255}

// rgba returns the window color of c.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// parseBackground reads a "#rrggbb" color. Anything unparsable yields the
// default light gray.
func parseBackground(hex string) color.RGBA {
	rgb := gcolor.HexToRgb(hex)
	if len(rgb) != 3 {
		return defaultBackground
	}
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), 255}
}

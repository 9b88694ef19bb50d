package core

import (
	"fmt"
	"strings"
)

// Color is a named terminal foreground color for a screen cell.
type Color uint8

// Colors available to palettes and the frontend.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// colorSpec pairs a config name with its ANSI 256-color code.
type colorSpec struct {
	name string
	ansi string
}

var colorSpecs = [...]colorSpec{
	ColorDefault:       {"default", ""},
	ColorRed:           {"red", "1"},
	ColorGreen:         {"green", "2"},
	ColorYellow:        {"yellow", "3"},
	ColorBlue:          {"blue", "4"},
	ColorMagenta:       {"magenta", "5"},
	ColorCyan:          {"cyan", "6"},
	ColorWhite:         {"white", "7"},
	ColorBrightRed:     {"bright-red", "9"},
	ColorBrightGreen:   {"bright-green", "10"},
	ColorBrightYellow:  {"bright-yellow", "11"},
	ColorBrightBlue:    {"bright-blue", "12"},
	ColorBrightMagenta: {"bright-magenta", "13"},
	ColorBrightCyan:    {"bright-cyan", "14"},
	ColorBrightWhite:   {"bright-white", "15"},
	ColorOrange:        {"orange", "208"},
	ColorGray:          {"gray", "245"},
}

// String returns the color's config name.
func (c Color) String() string {
	if int(c) < len(colorSpecs) {
		return colorSpecs[c].name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ANSI returns the 256-color code, "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) < len(colorSpecs) {
		return colorSpecs[c].ansi
	}
	return ""
}

// ParseColor looks up a color by its config name, ignoring case.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, spec := range colorSpecs {
		if spec.name == name {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}

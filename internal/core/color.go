package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a "#rrggbb" hex colour as produced by the brick palettes.
// The presentation layer decides how to display it.
type Color string

// Fallback colours used when a palette entry is missing or malformed.
const (
	ColorNeutral Color = "#cccccc" // Brick without a colour
	ColorDark    Color = "#999999" // Darken fallback
	ColorLight   Color = "#cccccc" // Lighten fallback
	ColorBall    Color = "#ffffff"
	ColorPaddle  Color = "#2ecc71"
)

// RGB returns the colour components. ok is false for malformed input.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(n >> 16), uint8(n >> 8 & 0xff), uint8(n & 0xff), true //#nosec G115 -- masked to 8 bits
}

// Darken returns the colour darkened by percent (0-100).
// Empty or malformed colours resolve to ColorDark.
func (c Color) Darken(percent float64) Color {
	if c == "" {
		return ColorDark
	}
	r, g, b, ok := c.RGB()
	if !ok {
		return ColorDark
	}
	amt := int(2.55*percent + 0.5)
	return fromRGB(int(r)-amt, int(g)-amt, int(b)-amt)
}

// Lighten returns the colour lightened by percent (0-100).
// Empty or malformed colours resolve to ColorLight.
func (c Color) Lighten(percent float64) Color {
	if c == "" {
		return ColorLight
	}
	r, g, b, ok := c.RGB()
	if !ok {
		return ColorLight
	}
	amt := int(2.55*percent + 0.5)
	return fromRGB(int(r)+amt, int(g)+amt, int(b)+amt)
}

// OrDefault returns c, or ColorNeutral when c is empty.
func (c Color) OrDefault() Color {
	if c == "" {
		return ColorNeutral
	}
	return c
}

func fromRGB(r, g, b int) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", Clamp(r, 0, 255), Clamp(g, 0, 255), Clamp(b, 0, 255)))
}

// Brick palettes.
var (
	// FixedPalette colours fixed layouts, one entry per row (cycling).
	FixedPalette = []Color{
		"#e74c3c", // red
		"#e67e22", // orange
		"#f1c40f", // yellow
		"#2ecc71", // green
		"#3498db", // blue
	}

	// ExtendedPalette is sampled per brick by random layouts.
	ExtendedPalette = []Color{
		"#e74c3c",
		"#e67e22",
		"#f1c40f",
		"#2ecc71",
		"#3498db",
		"#9b59b6", // purple
		"#34495e", // dark blue
	}
)

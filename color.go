package gild

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSystem is the color fidelity ceiling of a terminal. It is supplied by
// the caller; gild performs no terminal capability detection.
type ColorSystem uint8

const (
	// ColorSystemStandard supports the 16 standard colors
	ColorSystemStandard ColorSystem = iota
	// ColorSystemEightBit supports the 256 color palette
	ColorSystemEightBit
	// ColorSystemTrueColor supports 24-bit RGB color
	ColorSystemTrueColor
)

func (cs ColorSystem) String() string {
	switch cs {
	case ColorSystemStandard:
		return "standard"
	case ColorSystemEightBit:
		return "256-color"
	case ColorSystemTrueColor:
		return "truecolor"
	}
	return "unknown"
}

// Color is a terminal color. The zero value represents the default foreground
// or background color. The payload lives in the low 24 bits, the kind in the
// flag bits above
type Color uint32

const (
	standard Color = 1 << 24
	indexed  Color = 1 << 25
	rgb      Color = 1 << 26
)

// The 16 standard colors
const (
	Black Color = standard | Color(iota)
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// RGBColor creates a 24-bit true color
func RGBColor(r uint8, g uint8, b uint8) Color {
	color := Color(int(r)<<16 | int(g)<<8 | int(b))
	return color | rgb
}

// EightBitColor creates a color from an index into the 256 color palette
func EightBitColor(index uint8) Color {
	return Color(index) | indexed
}

// StandardColor creates one of the 16 standard colors from its index (0-15)
func StandardColor(index uint8) Color {
	return Color(index&0x0F) | standard
}

// HexColor creates a true color from a 3 or 6 digit hex string, with an
// optional leading '#'
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	var parts [3]string
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			parts[i] = strings.Repeat(hex[i:i+1], 2)
		}
	case 6:
		for i := 0; i < 3; i++ {
			parts[i] = hex[2*i : 2*i+2]
		}
	default:
		return 0, fmt.Errorf("%w: hex color must be 3 or 6 digits, got %q", ErrColor, hex)
	}
	var vals [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid hex digit in %q", ErrColor, hex)
		}
		vals[i] = uint8(v)
	}
	return RGBColor(vals[0], vals[1], vals[2]), nil
}

// IsDefault reports whether c is the terminal's default color
func (c Color) IsDefault() bool {
	return c == 0
}

// index returns the low-byte payload for standard and indexed colors
func (c Color) index() uint8 {
	return uint8(c)
}

// RGB returns an RGB approximation of the color. The default color
// approximates to a mid gray
func (c Color) RGB() (r uint8, g uint8, b uint8) {
	switch {
	case c&rgb != 0:
		return uint8(c >> 16), uint8(c >> 8), uint8(c)
	case c&standard != 0:
		v := standardRGB[c.index()&0x0F]
		return v[0], v[1], v[2]
	case c&indexed != 0:
		return eightBitToRGB(c.index())
	}
	return 128, 128, 128
}

// Downgrade converts the color to one representable by the given color
// system. Colors are only ever converted down in fidelity, never up
func (c Color) Downgrade(cs ColorSystem) Color {
	switch cs {
	case ColorSystemStandard:
		switch {
		case c&rgb != 0:
			r, g, b := c.RGB()
			return closestStandard(r, g, b)
		case c&indexed != 0:
			if c.index() < 16 {
				return StandardColor(c.index())
			}
			r, g, b := eightBitToRGB(c.index())
			return closestStandard(r, g, b)
		}
		return c
	case ColorSystemEightBit:
		if c&rgb != 0 {
			r, g, b := c.RGB()
			return EightBitColor(rgbToEightBit(r, g, b))
		}
		return c
	}
	return c
}

func (c Color) String() string {
	switch {
	case c&standard != 0:
		return standardNames[c.index()&0x0F]
	case c&indexed != 0:
		return fmt.Sprintf("color(%d)", c.index())
	case c&rgb != 0:
		r, g, b := c.RGB()
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return "default"
}

// standardRGB is the historical RGB rendition of the 16 standard colors
var standardRGB = [16][3]uint8{
	{0, 0, 0},       // black
	{128, 0, 0},     // red
	{0, 128, 0},     // green
	{128, 128, 0},   // yellow
	{0, 0, 128},     // blue
	{128, 0, 128},   // magenta
	{0, 128, 128},   // cyan
	{192, 192, 192}, // white
	{128, 128, 128}, // bright black
	{255, 0, 0},     // bright red
	{0, 255, 0},     // bright green
	{255, 255, 0},   // bright yellow
	{0, 0, 255},     // bright blue
	{255, 0, 255},   // bright magenta
	{0, 255, 255},   // bright cyan
	{255, 255, 255}, // bright white
}

var standardNames = [16]string{
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
	"bright_black",
	"bright_red",
	"bright_green",
	"bright_yellow",
	"bright_blue",
	"bright_magenta",
	"bright_cyan",
	"bright_white",
}

// eightBitToRGB expands a 256 palette index: 0-15 are the standard colors,
// 16-231 the 6x6x6 cube, 232-255 the grayscale ramp
func eightBitToRGB(index uint8) (uint8, uint8, uint8) {
	switch {
	case index < 16:
		v := standardRGB[index]
		return v[0], v[1], v[2]
	case index < 232:
		index -= 16
		cube := func(v uint8) uint8 {
			if v == 0 {
				return 0
			}
			return 55 + v*40
		}
		return cube(index / 36), cube((index % 36) / 6), cube(index % 6)
	default:
		gray := 8 + (index-232)*10
		return gray, gray, gray
	}
}

// rgbToEightBit buckets an RGB triple into the closest 256 palette index
func rgbToEightBit(r uint8, g uint8, b uint8) uint8 {
	// Dark standard colors (0-7)
	if r < 8 && g < 8 && b < 8 {
		return b2u(r != 0) + b2u(g != 0)*2 + b2u(b != 0)*4
	}

	// Bright standard colors (8-15)
	if r >= 128 || g >= 128 || b >= 128 {
		std := b2u(r >= 128) + b2u(g >= 128)*2 + b2u(b >= 128)*4
		if std < 8 {
			return std + 8
		}
	}

	// Grayscale ramp (232-255), clamped to the ramp extremes
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 238 {
			return 231
		}
		return 232 + (r-8)/10
	}

	// 6x6x6 color cube (16-231)
	bucket := func(v uint8) uint8 {
		if v < 48 {
			return 0
		}
		return (v - 35) / 40
	}
	return 16 + 36*bucket(r) + 6*bucket(g) + bucket(b)
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// closestStandard finds the nearest of the 16 standard colors by Euclidean
// distance in RGB space. The first minimal distance wins
func closestStandard(r uint8, g uint8, b uint8) Color {
	target := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
	best := White
	bestDist := -1.0
	for i, v := range standardRGB {
		candidate := colorful.Color{
			R: float64(v[0]) / 255,
			G: float64(v[1]) / 255,
			B: float64(v[2]) / 255,
		}
		dist := target.DistanceRgb(candidate)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = StandardColor(uint8(i))
		}
	}
	return best
}

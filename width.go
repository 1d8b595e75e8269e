package gild

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthMethod selects how display width is measured
type WidthMethod int

const (
	// WidthUnicode measures grapheme clusters per Unicode TR11. Zero-width
	// joiner sequences and combining marks contribute no width
	WidthUnicode WidthMethod = iota
	// WidthWcwidth measures rune by rune, the way legacy wcwidth
	// implementations do. Variation selectors are skipped
	WidthWcwidth
)

// widthMethod is the package-wide measurement mode. Modern terminals render
// grapheme clusters; callers targeting legacy terminals can switch with
// SetWidthMethod
var widthMethod = WidthUnicode

// SetWidthMethod selects the measurement mode used by TextWidth,
// Segment.CellLength, and Text.Width
func SetWidthMethod(method WidthMethod) {
	widthMethod = method
}

func stringWidth(s string) int {
	switch widthMethod {
	case WidthWcwidth:
		total := 0
		for _, r := range s {
			if r >= 0xFE00 && r <= 0xFE0F {
				// Variation Selectors 1 - 16
				continue
			}
			if r >= 0xE0100 && r <= 0xE01EF {
				// Variation Selectors 17-256
				continue
			}
			total += runewidth.RuneWidth(r)
		}
		return total
	default:
		return uniseg.StringWidth(s)
	}
}

package gild

import (
	"fmt"
	"strings"
)

// ResetSGR clears all graphic rendition attributes
const ResetSGR = "\x1b[0m"

// sgrOn maps each attribute to its SGR "on" parameter
var sgrOn = map[AttributeMask]string{
	AttrBold:          "1",
	AttrDim:           "2",
	AttrItalic:        "3",
	AttrUnderline:     "4",
	AttrBlink:         "5",
	AttrReverse:       "7",
	AttrHidden:        "8",
	AttrStrikethrough: "9",
}

// sgrOff maps each attribute to its SGR "off" parameter. Bold and dim share
// the normal-intensity code
var sgrOff = map[AttributeMask]string{
	AttrBold:          "22",
	AttrDim:           "22",
	AttrItalic:        "23",
	AttrUnderline:     "24",
	AttrBlink:         "25",
	AttrReverse:       "27",
	AttrHidden:        "28",
	AttrStrikethrough: "29",
}

// StyleSGR builds the SGR escape sequence for a style, downgrading colors
// to the given color system. Returns the empty string for a style that sets
// nothing, so callers never emit stray escape bytes
func StyleSGR(style Style, cs ColorSystem) string {
	var params []string
	if fg, ok := style.ForegroundColor(); ok {
		params = append(params, colorParam(fg, false, cs))
	}
	if bg, ok := style.BackgroundColor(); ok {
		params = append(params, colorParam(bg, true, cs))
	}
	for _, a := range attrOrder {
		if on, set := style.Attr(a); set && on {
			params = append(params, sgrOn[a])
		}
	}
	for _, a := range attrOrder {
		if on, set := style.Attr(a); set && !on {
			params = append(params, sgrOff[a])
		}
	}
	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// colorParam returns the SGR parameter string for a color after downgrading
// it to the target system
func colorParam(c Color, background bool, cs ColorSystem) string {
	c = c.Downgrade(cs)
	switch {
	case c&standard != 0:
		index := c.index() & 0x0F
		base := 30
		if index >= 8 {
			base = 90
			index -= 8
		}
		if background {
			base += 10
		}
		return fmt.Sprintf("%d", base+int(index))
	case c&indexed != 0:
		if background {
			return fmt.Sprintf("48;5;%d", c.index())
		}
		return fmt.Sprintf("38;5;%d", c.index())
	case c&rgb != 0:
		r, g, b := c.RGB()
		if background {
			return fmt.Sprintf("48;2;%d;%d;%d", r, g, b)
		}
		return fmt.Sprintf("38;2;%d;%d;%d", r, g, b)
	}
	if background {
		return "49"
	}
	return "39"
}

// StripANSI removes CSI escape sequences from a string. Malformed or
// truncated sequences are dropped without error: a second ESC inside an
// unterminated sequence starts over, and an ESC not followed by '[' passes
// through as literal text. Stripping is idempotent
func StripANSI(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	i := 0
	for i < len(text) {
		c := text[i]
		if c != 0x1b {
			out.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(text) || text[i+1] != '[' {
			out.WriteByte(c)
			i++
			continue
		}
		// Consume through the first ASCII alphabetic terminator. A bare ESC
		// before the terminator truncates this sequence and is re-examined
		j := i + 2
		for j < len(text) {
			cj := text[j]
			if cj == 0x1b {
				break
			}
			j++
			if cj >= 'A' && cj <= 'Z' || cj >= 'a' && cj <= 'z' {
				break
			}
		}
		i = j
	}
	return out.String()
}

// TextWidth returns the display width of text in terminal columns, ignoring
// any ANSI escape sequences it contains
func TextWidth(text string) int {
	return stringWidth(StripANSI(text))
}

package gild

import (
	"fmt"
	"strings"
)

// AttributeMask is a bitmask of boolean text attributes
type AttributeMask uint8

const (
	AttrBold AttributeMask = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
)

// attrOrder fixes the order attributes appear in SGR sequences and in the
// textual rendition of a Style
var attrOrder = []AttributeMask{
	AttrBold,
	AttrDim,
	AttrItalic,
	AttrUnderline,
	AttrBlink,
	AttrReverse,
	AttrHidden,
	AttrStrikethrough,
}

var attrNames = map[AttributeMask]string{
	AttrBold:          "bold",
	AttrDim:           "dim",
	AttrItalic:        "italic",
	AttrUnderline:     "underline",
	AttrBlink:         "blink",
	AttrReverse:       "reverse",
	AttrHidden:        "hidden",
	AttrStrikethrough: "strikethrough",
}

// Style describes the appearance of a run of text. Every attribute is
// tri-state: unset (inherit), explicitly on, or explicitly off. The zero
// value is the empty style, the identity under Combine.
//
// Styles are immutable values. The builder methods return a modified copy
type Style struct {
	fg       Color
	bg       Color
	fgSet    bool
	bgSet    bool
	attrs    AttributeMask // attribute values, valid where attrsSet is 1
	attrsSet AttributeMask // which attributes carry an explicit value
}

// NewStyle returns the empty style
func NewStyle() Style {
	return Style{}
}

// IsZero reports whether no attribute or color is set
func (s Style) IsZero() bool {
	return s == Style{}
}

// Foreground returns a copy of s with the foreground color set
func (s Style) Foreground(c Color) Style {
	s.fg = c
	s.fgSet = true
	return s
}

// Background returns a copy of s with the background color set
func (s Style) Background(c Color) Style {
	s.bg = c
	s.bgSet = true
	return s
}

// ForegroundColor returns the foreground color and whether it is set
func (s Style) ForegroundColor() (Color, bool) {
	return s.fg, s.fgSet
}

// BackgroundColor returns the background color and whether it is set
func (s Style) BackgroundColor() (Color, bool) {
	return s.bg, s.bgSet
}

// Attr returns the value of a single attribute and whether it is explicitly
// set
func (s Style) Attr(a AttributeMask) (value bool, set bool) {
	return s.attrs&a != 0, s.attrsSet&a != 0
}

// With returns a copy of s with the given attributes explicitly on
func (s Style) With(a AttributeMask) Style {
	s.attrs |= a
	s.attrsSet |= a
	return s
}

// Without returns a copy of s with the given attributes explicitly off.
// This is distinct from the attribute being unset: a combined style keeps
// the explicit off
func (s Style) Without(a AttributeMask) Style {
	s.attrs &^= a
	s.attrsSet |= a
	return s
}

func (s Style) Bold() Style    { return s.With(AttrBold) }
func (s Style) BoldOff() Style { return s.Without(AttrBold) }

func (s Style) Dim() Style    { return s.With(AttrDim) }
func (s Style) DimOff() Style { return s.Without(AttrDim) }

func (s Style) Italic() Style    { return s.With(AttrItalic) }
func (s Style) ItalicOff() Style { return s.Without(AttrItalic) }

func (s Style) Underline() Style    { return s.With(AttrUnderline) }
func (s Style) UnderlineOff() Style { return s.Without(AttrUnderline) }

func (s Style) Blink() Style    { return s.With(AttrBlink) }
func (s Style) BlinkOff() Style { return s.Without(AttrBlink) }

func (s Style) Reverse() Style    { return s.With(AttrReverse) }
func (s Style) ReverseOff() Style { return s.Without(AttrReverse) }

func (s Style) Hidden() Style    { return s.With(AttrHidden) }
func (s Style) HiddenOff() Style { return s.Without(AttrHidden) }

func (s Style) Strikethrough() Style    { return s.With(AttrStrikethrough) }
func (s Style) StrikethroughOff() Style { return s.Without(AttrStrikethrough) }

// Combine overlays other on top of s: every field of other that is
// explicitly set wins, everything else is inherited from s. Combine is
// associative but not commutative, and the zero Style is its identity
func (s Style) Combine(other Style) Style {
	out := s
	if other.fgSet {
		out.fg = other.fg
		out.fgSet = true
	}
	if other.bgSet {
		out.bg = other.bg
		out.bgSet = true
	}
	out.attrs = (s.attrs &^ other.attrsSet) | (other.attrs & other.attrsSet)
	out.attrsSet = s.attrsSet | other.attrsSet
	return out
}

// String renders the style in the same mini-language accepted by ParseStyle,
// e.g. "bold italic red on blue"
func (s Style) String() string {
	var parts []string
	for _, a := range attrOrder {
		if on, set := s.Attr(a); set && on {
			parts = append(parts, attrNames[a])
		}
	}
	if s.fgSet {
		parts = append(parts, s.fg.String())
	}
	if s.bgSet {
		parts = append(parts, "on", s.bg.String())
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

var styleKeywords = map[string]AttributeMask{
	"bold":          AttrBold,
	"dim":           AttrDim,
	"italic":        AttrItalic,
	"underline":     AttrUnderline,
	"blink":         AttrBlink,
	"reverse":       AttrReverse,
	"hidden":        AttrHidden,
	"strikethrough": AttrStrikethrough,
}

// ParseStyle parses a style description such as "bold red on blue" or
// "italic #FF8040". Attribute keywords switch the attribute on, "on"
// consumes the next token as the background color, and the first color
// token becomes the foreground. Later color tokens are ignored.
func ParseStyle(styleStr string) (Style, error) {
	var style Style
	tokens := strings.Fields(styleStr)
	for i := 0; i < len(tokens); i++ {
		token := strings.ToLower(tokens[i])
		if attr, ok := styleKeywords[token]; ok {
			style = style.With(attr)
			continue
		}
		if token == "on" {
			if i+1 >= len(tokens) {
				return Style{}, fmt.Errorf("%w: expected color after %q", ErrStyle, "on")
			}
			i++
			bg, err := parseColorToken(tokens[i])
			if err != nil {
				return Style{}, err
			}
			style = style.Background(bg)
			continue
		}
		color, err := parseColorToken(token)
		if err != nil {
			return Style{}, fmt.Errorf("%w: unknown style token %q", ErrStyle, token)
		}
		if !style.fgSet {
			style = style.Foreground(color)
		}
	}
	return style, nil
}

// parseColorToken parses a single color token: a standard color name or a
// hex literal
func parseColorToken(token string) (Color, error) {
	lower := strings.ToLower(token)
	switch lower {
	case "gray", "grey":
		return BrightBlack, nil
	}
	for i, name := range standardNames {
		if lower == name {
			return StandardColor(uint8(i)), nil
		}
	}
	if strings.HasPrefix(token, "#") || len(token) == 3 || len(token) == 6 {
		return HexColor(token)
	}
	return 0, fmt.Errorf("%w: unknown color %q", ErrColor, token)
}

package gild

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

type controlKind uint8

const (
	ctrlBell controlKind = iota
	ctrlCarriageReturn
	ctrlHome
	ctrlClear
	ctrlShowCursor
	ctrlHideCursor
	ctrlEnableAltScreen
	ctrlDisableAltScreen
	ctrlCursorUp
	ctrlCursorDown
	ctrlCursorForward
	ctrlCursorBackward
	ctrlCursorColumn
	ctrlCursorMoveTo
)

// ControlCode is a terminal control operation carried by a control segment.
// It is pure data; writing the sequence to a terminal is the caller's
// business
type ControlCode struct {
	kind controlKind
	row  int
	col  int
}

var (
	Bell             = ControlCode{kind: ctrlBell}
	CarriageReturn   = ControlCode{kind: ctrlCarriageReturn}
	Home             = ControlCode{kind: ctrlHome}
	Clear            = ControlCode{kind: ctrlClear}
	ShowCursor       = ControlCode{kind: ctrlShowCursor}
	HideCursor       = ControlCode{kind: ctrlHideCursor}
	EnableAltScreen  = ControlCode{kind: ctrlEnableAltScreen}
	DisableAltScreen = ControlCode{kind: ctrlDisableAltScreen}
)

// CursorUp moves the cursor up n lines
func CursorUp(n int) ControlCode {
	return ControlCode{kind: ctrlCursorUp, row: n}
}

// CursorDown moves the cursor down n lines
func CursorDown(n int) ControlCode {
	return ControlCode{kind: ctrlCursorDown, row: n}
}

// CursorForward moves the cursor right n columns
func CursorForward(n int) ControlCode {
	return ControlCode{kind: ctrlCursorForward, col: n}
}

// CursorBackward moves the cursor left n columns
func CursorBackward(n int) ControlCode {
	return ControlCode{kind: ctrlCursorBackward, col: n}
}

// CursorColumn moves the cursor to a column. 1-indexed
func CursorColumn(col int) ControlCode {
	return ControlCode{kind: ctrlCursorColumn, col: col}
}

// CursorMoveTo moves the cursor to a row and column. Both 1-indexed
func CursorMoveTo(row int, col int) ControlCode {
	return ControlCode{kind: ctrlCursorMoveTo, row: row, col: col}
}

// ANSI returns the escape sequence for the control code
func (c ControlCode) ANSI() string {
	switch c.kind {
	case ctrlBell:
		return "\x07"
	case ctrlCarriageReturn:
		return "\r"
	case ctrlHome:
		return "\x1b[H"
	case ctrlClear:
		return "\x1b[2J"
	case ctrlShowCursor:
		return "\x1b[?25h"
	case ctrlHideCursor:
		return "\x1b[?25l"
	case ctrlEnableAltScreen:
		return "\x1b[?1049h"
	case ctrlDisableAltScreen:
		return "\x1b[?1049l"
	case ctrlCursorUp:
		return fmt.Sprintf("\x1b[%dA", c.row)
	case ctrlCursorDown:
		return fmt.Sprintf("\x1b[%dB", c.row)
	case ctrlCursorForward:
		return fmt.Sprintf("\x1b[%dC", c.col)
	case ctrlCursorBackward:
		return fmt.Sprintf("\x1b[%dD", c.col)
	case ctrlCursorColumn:
		return fmt.Sprintf("\x1b[%dG", c.col)
	case ctrlCursorMoveTo:
		return fmt.Sprintf("\x1b[%d;%dH", c.row, c.col)
	}
	return ""
}

// Segment is the atomic renderable unit: a run of text with one fully
// resolved style, or a terminal control code. Segments are produced by
// Text.ToSegments and consumed by a renderer
type Segment struct {
	text       string
	style      Style
	control    ControlCode
	hasControl bool
}

// NewSegment creates a text segment
func NewSegment(text string, style Style) Segment {
	return Segment{text: text, style: style}
}

// ControlSegment creates a segment carrying only a control code
func ControlSegment(code ControlCode) Segment {
	return Segment{control: code, hasControl: true}
}

// Text returns the text content of the segment
func (s Segment) Text() string {
	return s.text
}

// Style returns the segment's resolved style
func (s Segment) Style() Style {
	return s.style
}

// Control returns the control code and whether one is present
func (s Segment) Control() (ControlCode, bool) {
	return s.control, s.hasControl
}

// IsControl reports whether the segment is a pure control segment
func (s Segment) IsControl() bool {
	return s.hasControl && s.text == ""
}

// IsText reports whether the segment is a pure text segment
func (s Segment) IsText() bool {
	return !s.hasControl && s.text != ""
}

// CellLength returns the number of terminal columns the segment occupies.
// Control segments occupy none
func (s Segment) CellLength() int {
	if s.IsControl() {
		return 0
	}
	return stringWidth(s.text)
}

// ApplyStyle overlays a style on the segment's current style
func (s *Segment) ApplyStyle(style Style) {
	s.style = s.style.Combine(style)
}

// SplitAtChar splits the segment at a rune position. The control code, if
// any, stays with the left half
func (s Segment) SplitAtChar(pos int) (Segment, Segment) {
	runes := []rune(s.text)
	if pos >= len(runes) {
		return s, Segment{}
	}
	if pos < 0 {
		pos = 0
	}
	left := s
	left.text = string(runes[:pos])
	right := Segment{text: string(runes[pos:]), style: s.style}
	return left, right
}

// SplitAtWidth splits the segment so the left half occupies at most
// maxWidth terminal columns. Splits happen on grapheme cluster boundaries
func (s Segment) SplitAtWidth(maxWidth int) (Segment, Segment) {
	if s.IsControl() {
		return s, Segment{}
	}
	width := 0
	splitAt := 0
	gr := uniseg.NewGraphemes(s.text)
	for gr.Next() {
		w := stringWidth(gr.Str())
		if width+w > maxWidth {
			break
		}
		width += w
		_, to := gr.Positions()
		splitAt = to
	}
	switch {
	case splitAt == 0:
		// Nothing fits
		return Segment{style: s.style}, s
	case splitAt >= len(s.text):
		return s, Segment{}
	default:
		left := s
		left.text = s.text[:splitAt]
		right := Segment{text: s.text[splitAt:], style: s.style}
		return left, right
	}
}

// Render returns the segment as a string with ANSI escapes appropriate for
// the given color system. Styled text is wrapped in its SGR sequence and a
// reset
func (s Segment) Render(cs ColorSystem) string {
	var out strings.Builder
	if s.hasControl {
		out.WriteString(s.control.ANSI())
	}
	if s.text != "" {
		sgr := StyleSGR(s.style, cs)
		if sgr != "" {
			out.WriteString(sgr)
			out.WriteString(s.text)
			out.WriteString(ResetSGR)
		} else {
			out.WriteString(s.text)
		}
	}
	return out.String()
}

// RenderSegments renders a sequence of segments into one string
func RenderSegments(segments []Segment, cs ColorSystem) string {
	var out strings.Builder
	for _, s := range segments {
		out.WriteString(s.Render(cs))
	}
	return out.String()
}

// SegmentsPlainText concatenates the text of every segment
func SegmentsPlainText(segments []Segment) string {
	var out strings.Builder
	for _, s := range segments {
		out.WriteString(s.text)
	}
	return out.String()
}

// SegmentsCellLength sums the display width of every segment
func SegmentsCellLength(segments []Segment) int {
	total := 0
	for _, s := range segments {
		total += s.CellLength()
	}
	return total
}

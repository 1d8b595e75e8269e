package gild

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Span applies a style over a half-open range of the text it belongs to.
// Offsets are rune positions, not bytes
type Span struct {
	Start int
	End   int
	Style Style
}

// IsEmpty reports whether the span covers no runes
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Len returns the number of runes the span covers
func (s Span) Len() int {
	if s.IsEmpty() {
		return 0
	}
	return s.End - s.Start
}

// Split divides the span at offset. The second return is false when the
// offset falls outside the span and no split happened
func (s Span) Split(offset int) (Span, Span, bool) {
	if offset <= s.Start || offset >= s.End {
		return s, Span{}, false
	}
	left := Span{Start: s.Start, End: offset, Style: s.Style}
	right := Span{Start: offset, End: s.End, Style: s.Style}
	return left, right, true
}

// shift moves the span by delta rune positions
func (s Span) shift(delta int) Span {
	return Span{Start: s.Start + delta, End: s.End + delta, Style: s.Style}
}

// Text is a plain string plus a collection of style spans and a base style.
// Spans may overlap; ToSegments resolves them into disjoint segments
type Text struct {
	content   string
	baseStyle Style
	spans     []Span
}

// NewText creates a Text from plain content
func NewText(content string) *Text {
	return &Text{content: content}
}

// WithStyle sets the base style and returns the text for chaining
func (t *Text) WithStyle(style Style) *Text {
	t.baseStyle = style
	return t
}

// SetStyle sets the base style applied under every span
func (t *Text) SetStyle(style Style) {
	t.baseStyle = style
}

// Plain returns the content without any styling
func (t *Text) Plain() string {
	return t.content
}

// BaseStyle returns the style applied to the entire text
func (t *Text) BaseStyle() Style {
	return t.baseStyle
}

// Spans returns the style spans. The slice is owned by the Text
func (t *Text) Spans() []Span {
	return t.spans
}

// Len returns the length of the text in runes
func (t *Text) Len() int {
	return utf8.RuneCountInString(t.content)
}

// IsEmpty reports whether the text has no content
func (t *Text) IsEmpty() bool {
	return t.content == ""
}

// Width returns the display width of the text in terminal columns
func (t *Text) Width() int {
	return stringWidth(t.content)
}

// StylizeRange applies a style over the half-open rune range [start, end).
// The text is unchanged when the range is invalid
func (t *Text) StylizeRange(start int, end int, style Style) error {
	if start > end {
		return fmt.Errorf("%w: start %d is greater than end %d", ErrInvalidRange, start, end)
	}
	if length := t.Len(); end > length {
		return fmt.Errorf("%w: end %d is out of bounds for text of length %d", ErrInvalidRange, end, length)
	}
	t.spans = append(t.spans, Span{Start: start, End: end, Style: style})
	t.sortSpans()
	return nil
}

// StylizeAll applies a style over the whole text
func (t *Text) StylizeAll(style Style) error {
	return t.StylizeRange(0, t.Len(), style)
}

// Append adds plain text to the end. Existing spans are unaffected
func (t *Text) Append(content string) {
	t.content += content
}

// AppendText appends another Text, shifting its spans past the current
// content
func (t *Text) AppendText(other *Text) {
	offset := t.Len()
	t.content += other.content
	for _, span := range other.spans {
		t.spans = append(t.spans, span.shift(offset))
	}
	t.sortSpans()
}

// sortSpans orders spans by start position. The sort is stable so spans
// opening at the same position keep their insertion order, which makes
// style composition deterministic
func (t *Text) sortSpans() {
	sort.SliceStable(t.spans, func(i, j int) bool {
		return t.spans[i].Start < t.spans[j].Start
	})
}

// StyleAt resolves the effective style at a rune position: the base style
// combined with every span containing the position, in span order
func (t *Text) StyleAt(position int) Style {
	style := t.baseStyle
	for _, span := range t.spans {
		if position >= span.Start && position < span.End {
			style = style.Combine(span.Style)
		}
	}
	return style
}

// spanEvent marks a span opening or closing at a rune position
type spanEvent struct {
	position int
	isStart  bool
	span     int // index into t.spans
}

// ToSegments flattens the overlapping spans into an ordered sequence of
// disjoint segments. Concatenating the segment texts reproduces the content
// exactly.
//
// The sweep keeps a list of active spans ordered by activation; each
// segment's style is the base style combined with the active styles in that
// order, so the most recently opened span wins conflicting attributes. End
// events sort before start events at the same position so a span closing
// exactly where another opens does not merge with it
func (t *Text) ToSegments() []Segment {
	if t.content == "" {
		return []Segment{NewSegment("", t.baseStyle)}
	}
	if len(t.spans) == 0 {
		return []Segment{NewSegment(t.content, t.baseStyle)}
	}

	events := make([]spanEvent, 0, 2*len(t.spans))
	for i, span := range t.spans {
		if span.IsEmpty() {
			continue
		}
		events = append(events, spanEvent{position: span.Start, isStart: true, span: i})
		events = append(events, spanEvent{position: span.End, isStart: false, span: i})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].position != events[j].position {
			return events[i].position < events[j].position
		}
		return !events[i].isStart && events[j].isStart
	})

	runes := []rune(t.content)
	var segments []Segment
	var active []int
	current := 0

	emit := func(from, to int) {
		if to <= from {
			return
		}
		style := t.baseStyle
		for _, idx := range active {
			style = style.Combine(t.spans[idx].Style)
		}
		segments = append(segments, NewSegment(string(runes[from:to]), style))
	}

	for _, ev := range events {
		if ev.position > current {
			emit(current, ev.position)
			current = ev.position
		}
		if ev.isStart {
			active = append(active, ev.span)
		} else {
			for i, idx := range active {
				if idx == ev.span {
					active = append(active[:i], active[i+1:]...)
					break
				}
			}
		}
	}
	emit(current, len(runes))

	return segments
}

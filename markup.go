package gild

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Tag is a single bracketed markup tag, e.g. "bold" in "[bold]" or
// "color"/"red" in "[color=red]"
type Tag struct {
	// Name is the tag name, including the leading '/' on closing tags
	Name string
	// Params is the content after '=' inside the bracket
	Params string
	// HasParams distinguishes "[x=]" from "[x]"
	HasParams bool
}

// IsClosing reports whether the tag closes an earlier tag
func (t Tag) IsClosing() bool {
	return strings.HasPrefix(t.Name, "/")
}

// ClosingName returns the tag name a closing tag refers to
func (t Tag) ClosingName() string {
	return strings.TrimPrefix(t.Name, "/")
}

// Markup returns the bracketed form of the tag
func (t Tag) Markup() string {
	if t.HasParams {
		return fmt.Sprintf("[%s=%s]", t.Name, t.Params)
	}
	return fmt.Sprintf("[%s]", t.Name)
}

func (t Tag) String() string {
	if t.HasParams {
		return t.Name + " " + t.Params
	}
	return t.Name
}

// markupToken is either plain text or a tag
type markupToken struct {
	text  string
	tag   Tag
	isTag bool
}

// parseTag splits bracket content at the first '=' into name and parameters
func parseTag(content string) Tag {
	if name, params, ok := strings.Cut(content, "="); ok {
		return Tag{
			Name:      strings.TrimSpace(name),
			Params:    strings.TrimSpace(params),
			HasParams: true,
		}
	}
	return Tag{Name: strings.TrimSpace(content)}
}

// tokenize scans markup into text and tag tokens. "[[" is an escaped
// literal '[', and a '[' with no closing ']' degrades to literal text
func tokenize(markup string) []markupToken {
	var tokens []markupToken
	textStart := 0
	i := 0

	flush := func(end int) {
		if end > textStart {
			tokens = append(tokens, markupToken{text: markup[textStart:end]})
		}
	}

	for i < len(markup) {
		if markup[i] != '[' {
			i++
			continue
		}
		if i+1 < len(markup) && markup[i+1] == '[' {
			flush(i)
			tokens = append(tokens, markupToken{text: "["})
			i += 2
			textStart = i
			continue
		}
		end := strings.IndexByte(markup[i+1:], ']')
		if end < 0 {
			// Unterminated bracket: the rest is literal text
			break
		}
		flush(i)
		if content := markup[i+1 : i+1+end]; content != "" {
			tokens = append(tokens, markupToken{tag: parseTag(content), isTag: true})
		}
		i += end + 2
		textStart = i
	}
	flush(len(markup))

	return tokens
}

// EscapeMarkup escapes text so ParseMarkup treats it literally
func EscapeMarkup(text string) string {
	return strings.ReplaceAll(text, "[", "[[")
}

// openTag records a tag on the resolution stack together with the rune
// position where its span begins
type openTag struct {
	position int
	tag      Tag
	style    Style
}

// ParseMarkup parses BBCode-style markup into a Text with style spans.
//
// Opening tags have their name parsed as a style ("[bold red]"). "[/]"
// closes the most recently opened tag. "[/name]" closes the nearest open
// tag of that name, and every tag opened after it closes at the same
// position. Tags still open at the end of input are closed there
func ParseMarkup(markup string) (*Text, error) {
	return ParseMarkupWithStyle(markup, Style{})
}

// ParseMarkupWithStyle parses markup with a base style for the resulting
// Text
func ParseMarkupWithStyle(markup string, base Style) (*Text, error) {
	if !strings.Contains(markup, "[") {
		return NewText(markup).WithStyle(base), nil
	}

	var content strings.Builder
	var spans []Span
	var stack []openTag
	length := 0 // content length in runes

	for _, token := range tokenize(markup) {
		if !token.isTag {
			content.WriteString(token.text)
			length += utf8.RuneCountInString(token.text)
			continue
		}
		tag := token.tag
		if !tag.IsClosing() {
			style, err := ParseStyle(tag.Name)
			if err != nil {
				return nil, err
			}
			stack = append(stack, openTag{position: length, tag: tag, style: style})
			continue
		}

		name := tag.ClosingName()
		if name == "" {
			// Implicit close pops the most recent tag
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				spans = append(spans, Span{Start: top.position, End: length, Style: top.style})
			}
			continue
		}

		// Named close: find the nearest matching tag. Everything opened
		// after it closes here too
		found := -1
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].tag.Name == name {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("%w: closing tag %q has no matching opening tag", ErrMarkup, tag.Name)
		}
		for _, open := range stack[found:] {
			spans = append(spans, Span{Start: open.position, End: length, Style: open.style})
		}
		stack = stack[:found]
	}

	// Close anything left open at the end of input
	if len(stack) > 0 {
		log.Debug("markup: closing dangling tags", "count", len(stack))
	}
	for i := len(stack) - 1; i >= 0; i-- {
		spans = append(spans, Span{Start: stack[i].position, End: length, Style: stack[i].style})
	}

	text := NewText(content.String()).WithStyle(base)
	for _, span := range spans {
		if span.IsEmpty() {
			continue
		}
		if err := text.StylizeRange(span.Start, span.End, span.Style); err != nil {
			return nil, err
		}
	}
	return text, nil
}

package gild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tag := parseTag("bold")
	assert.Equal(t, "bold", tag.Name)
	assert.False(t, tag.HasParams)
	assert.False(t, tag.IsClosing())
	assert.Equal(t, "[bold]", tag.Markup())

	tag = parseTag("color=red")
	assert.Equal(t, "color", tag.Name)
	assert.Equal(t, "red", tag.Params)
	assert.True(t, tag.HasParams)
	assert.Equal(t, "[color=red]", tag.Markup())

	tag = parseTag("/bold")
	assert.True(t, tag.IsClosing())
	assert.Equal(t, "bold", tag.ClosingName())
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []markupToken
	}{
		{
			name:  "plain text",
			input: "Hello world",
			want:  []markupToken{{text: "Hello world"}},
		},
		{
			name:  "text and tags",
			input: "Hello [bold]world[/bold]",
			want: []markupToken{
				{text: "Hello "},
				{tag: Tag{Name: "bold"}, isTag: true},
				{text: "world"},
				{tag: Tag{Name: "/bold"}, isTag: true},
			},
		},
		{
			name:  "escaped bracket",
			input: "a [[literal] b",
			want: []markupToken{
				{text: "a "},
				{text: "["},
				{text: "literal] b"},
			},
		},
		{
			name:  "unterminated bracket degrades to text",
			input: "ab[cd",
			want:  []markupToken{{text: "ab[cd"}},
		},
		{
			name:  "empty tag is dropped",
			input: "a[]b",
			want:  []markupToken{{text: "a"}, {text: "b"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, tokenize(test.input))
		})
	}
}

func TestParseMarkupPlain(t *testing.T) {
	text, err := ParseMarkup("Hello world")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text.Plain())
	assert.Empty(t, text.Spans())
}

func TestParseMarkupNested(t *testing.T) {
	text, err := ParseMarkup("[bold]Hello [red]world[/red][/bold]")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text.Plain())
	require.Len(t, text.Spans(), 2)

	bold := text.Spans()[0]
	assert.Equal(t, 0, bold.Start)
	assert.Equal(t, 11, bold.End)
	assert.Equal(t, NewStyle().Bold(), bold.Style)

	red := text.Spans()[1]
	assert.Equal(t, 6, red.Start)
	assert.Equal(t, 11, red.End)
	assert.Equal(t, NewStyle().Foreground(Red), red.Style)
}

func TestParseMarkupImplicitClose(t *testing.T) {
	text, err := ParseMarkup("[bold]Hello world[/]")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text.Plain())
	require.Len(t, text.Spans(), 1)
	assert.Equal(t, Span{Start: 0, End: 11, Style: NewStyle().Bold()}, text.Spans()[0])
}

func TestParseMarkupCollateralClose(t *testing.T) {
	// Closing a tag by name closes every tag opened after it at the same
	// position
	text, err := ParseMarkup("[red]a[bold]b[/red]c")
	require.NoError(t, err)
	assert.Equal(t, "abc", text.Plain())
	require.Len(t, text.Spans(), 2)

	red := text.Spans()[0]
	assert.Equal(t, Span{Start: 0, End: 2, Style: NewStyle().Foreground(Red)}, red)

	bold := text.Spans()[1]
	assert.Equal(t, Span{Start: 1, End: 2, Style: NewStyle().Bold()}, bold,
		"bold is closed collaterally by [/red]")
}

func TestParseMarkupAutoCloseAtEnd(t *testing.T) {
	text, err := ParseMarkup("[bold]Hello [red]world")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text.Plain())
	require.Len(t, text.Spans(), 2)
	assert.Equal(t, Span{Start: 0, End: 11, Style: NewStyle().Bold()}, text.Spans()[0])
	assert.Equal(t, Span{Start: 6, End: 11, Style: NewStyle().Foreground(Red)}, text.Spans()[1])
}

func TestParseMarkupUnmatchedClose(t *testing.T) {
	_, err := ParseMarkup("[bold]text[/red]")
	assert.ErrorIs(t, err, ErrMarkup)

	_, err = ParseMarkup("no tags [/bold]")
	assert.ErrorIs(t, err, ErrMarkup)
}

func TestParseMarkupImplicitCloseOnEmptyStack(t *testing.T) {
	// A bare [/] with nothing open is ignored rather than an error
	text, err := ParseMarkup("Hello[/] world")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text.Plain())
	assert.Empty(t, text.Spans())
}

func TestParseMarkupBadStyle(t *testing.T) {
	_, err := ParseMarkup("[notastyle]text[/]")
	assert.ErrorIs(t, err, ErrStyle)
}

func TestParseMarkupCompoundTag(t *testing.T) {
	text, err := ParseMarkup("[bold red on blue]x[/]")
	require.NoError(t, err)
	require.Len(t, text.Spans(), 1)
	assert.Equal(t, NewStyle().Bold().Foreground(Red).Background(Blue), text.Spans()[0].Style)
}

func TestParseMarkupEmptySpanDropped(t *testing.T) {
	text, err := ParseMarkup("[bold][/]hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", text.Plain())
	assert.Empty(t, text.Spans())
}

func TestParseMarkupUnicodePositions(t *testing.T) {
	text, err := ParseMarkup("日本[bold]語[/bold]")
	require.NoError(t, err)
	assert.Equal(t, "日本語", text.Plain())
	require.Len(t, text.Spans(), 1)
	assert.Equal(t, 2, text.Spans()[0].Start, "positions are rune offsets")
	assert.Equal(t, 3, text.Spans()[0].End)
}

func TestParseMarkupWithStyle(t *testing.T) {
	base := NewStyle().Foreground(Blue)
	text, err := ParseMarkupWithStyle("[bold]hi[/]", base)
	require.NoError(t, err)
	assert.Equal(t, base, text.BaseStyle())

	segments := text.ToSegments()
	require.Len(t, segments, 1)
	fg, ok := segments[0].Style().ForegroundColor()
	require.True(t, ok)
	assert.Equal(t, Blue, fg, "base style shows through the bold span")
}

func TestEscapeMarkup(t *testing.T) {
	escaped := EscapeMarkup("Hello [world]")
	text, err := ParseMarkup(escaped)
	require.NoError(t, err)
	assert.Equal(t, "Hello [world]", text.Plain())
	assert.Empty(t, text.Spans())

	assert.Equal(t, "No markup here", EscapeMarkup("No markup here"))
}

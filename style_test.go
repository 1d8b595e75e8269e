package gild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleBuilder(t *testing.T) {
	style := NewStyle().
		Foreground(RGBColor(255, 0, 0)).
		Background(RGBColor(0, 255, 0)).
		Bold().
		Italic()

	fg, ok := style.ForegroundColor()
	require.True(t, ok)
	assert.Equal(t, RGBColor(255, 0, 0), fg)

	bg, ok := style.BackgroundColor()
	require.True(t, ok)
	assert.Equal(t, RGBColor(0, 255, 0), bg)

	bold, set := style.Attr(AttrBold)
	assert.True(t, bold)
	assert.True(t, set)

	italic, set := style.Attr(AttrItalic)
	assert.True(t, italic)
	assert.True(t, set)

	_, set = style.Attr(AttrUnderline)
	assert.False(t, set)

	assert.False(t, style.IsZero())
	assert.True(t, NewStyle().IsZero())
}

func TestStyleTriState(t *testing.T) {
	// Explicit off is distinct from unset: it survives combination
	off := NewStyle().BoldOff()
	on := NewStyle().Bold()

	combined := on.Combine(off)
	bold, set := combined.Attr(AttrBold)
	assert.True(t, set)
	assert.False(t, bold)

	// Unset does not override
	combined = on.Combine(NewStyle())
	bold, set = combined.Attr(AttrBold)
	assert.True(t, set)
	assert.True(t, bold)
}

func TestStyleCombine(t *testing.T) {
	base := NewStyle().Foreground(RGBColor(255, 0, 0)).Bold()
	overlay := NewStyle().Foreground(RGBColor(0, 255, 0)).Italic()

	combined := base.Combine(overlay)

	fg, ok := combined.ForegroundColor()
	require.True(t, ok)
	assert.Equal(t, RGBColor(0, 255, 0), fg, "overlay color wins")

	bold, set := combined.Attr(AttrBold)
	assert.True(t, set && bold, "base bold kept")

	italic, set := combined.Attr(AttrItalic)
	assert.True(t, set && italic, "overlay italic kept")
}

func TestStyleCombineLaws(t *testing.T) {
	samples := []Style{
		{},
		NewStyle().Bold(),
		NewStyle().BoldOff().Dim(),
		NewStyle().Foreground(Red),
		NewStyle().Foreground(RGBColor(1, 2, 3)).Background(Blue).Italic(),
		NewStyle().Underline().ReverseOff().Background(EightBitColor(100)),
		NewStyle().Hidden().Strikethrough().Blink(),
	}

	t.Run("identity", func(t *testing.T) {
		for _, s := range samples {
			assert.Equal(t, s, s.Combine(Style{}), "right identity: %v", s)
			assert.Equal(t, s, Style{}.Combine(s), "left identity: %v", s)
		}
	})

	t.Run("associativity", func(t *testing.T) {
		for _, a := range samples {
			for _, b := range samples {
				for _, c := range samples {
					left := a.Combine(b).Combine(c)
					right := a.Combine(b.Combine(c))
					assert.Equal(t, left, right, "(%v + %v) + %v", a, b, c)
				}
			}
		}
	})
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Style
		wantErr error
	}{
		{
			name:  "single attribute",
			input: "bold",
			want:  NewStyle().Bold(),
		},
		{
			name:  "named color",
			input: "red",
			want:  NewStyle().Foreground(Red),
		},
		{
			name:  "attributes and colors",
			input: "bold italic red on blue",
			want:  NewStyle().Bold().Italic().Foreground(Red).Background(Blue),
		},
		{
			name:  "hex colors",
			input: "bold #FF0000 on #0000FF",
			want:  NewStyle().Bold().Foreground(RGBColor(255, 0, 0)).Background(RGBColor(0, 0, 255)),
		},
		{
			name:  "case insensitive",
			input: "BOLD Bright_Red",
			want:  NewStyle().Bold().Foreground(BrightRed),
		},
		{
			name:  "gray aliases bright black",
			input: "gray",
			want:  NewStyle().Foreground(BrightBlack),
		},
		{
			name:  "second color token is ignored",
			input: "red blue",
			want:  NewStyle().Foreground(Red),
		},
		{
			name:  "empty input is the empty style",
			input: "",
			want:  Style{},
		},
		{
			name:    "unknown token",
			input:   "invalid_color",
			wantErr: ErrStyle,
		},
		{
			name:    "on with no color",
			input:   "bold on",
			wantErr: ErrStyle,
		},
		{
			name:    "on with bad color",
			input:   "on notacolor",
			wantErr: ErrColor,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseStyle(test.input)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "none", NewStyle().String())
	assert.Equal(t, "bold", NewStyle().Bold().String())
	assert.Equal(
		t,
		"bold italic red on blue",
		NewStyle().Italic().Bold().Foreground(Red).Background(Blue).String(),
	)

	// The textual form round-trips through ParseStyle
	style := NewStyle().Dim().Underline().Foreground(BrightCyan).Background(RGBColor(0, 0, 255))
	parsed, err := ParseStyle(style.String())
	require.NoError(t, err)
	assert.Equal(t, style, parsed)
}

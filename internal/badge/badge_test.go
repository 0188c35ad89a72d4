package badge

import (
	"bytes"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sizerating/internal/sizerating"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  sizerating.SizeClass
	}{
		{"xs", 999, sizerating.XS},
		{"s", 1000, sizerating.S},
		{"m", 99999, sizerating.M},
		{"l", 250000, sizerating.L},
		{"xl", 500000, sizerating.XL},
		{"negative", -5, sizerating.None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.value, Options{}, testTheme())
			assert.Equal(t, tt.want, b.Label)
			assert.Equal(t, tt.want.String(), b.Text())
		})
	}
}

func TestNew_FlagsDoNotAffectClassification(t *testing.T) {
	for _, opts := range []Options{{}, {Muted: true}, {Small: true}, {Muted: true, Small: true}} {
		assert.Equal(t, sizerating.M, New(12345, opts, testTheme()).Label)
	}
}

func TestBadge_Classes(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"plain", Options{}, "size-rating"},
		{"small", Options{Small: true}, "size-rating size-rating-small"},
		{"muted", Options{Muted: true}, "size-rating size-rating-muted"},
		{"passthrough", Options{ClassName: "spacer-right"}, "size-rating spacer-right"},
		{"passthrough trims", Options{ClassName: "  a b  ", Small: true}, "size-rating size-rating-small a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(10, tt.opts, testTheme()).Classes())
		})
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	b := New(4200, Options{ClassName: "spacer-left"}, testTheme())
	require.NoError(t, RenderHTML(&buf, b))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<div class="size-rating spacer-left" style="display: inline-block;`))
	assert.True(t, strings.HasSuffix(out, `">S</div>`))
	assert.Contains(t, out, "background-color: #4b9fd5;")
}

func TestRenderHTML_EscapesClassName(t *testing.T) {
	var buf bytes.Buffer
	b := New(1, Options{ClassName: `"><script>`}, testTheme())
	require.NoError(t, RenderHTML(&buf, b))
	assert.NotContains(t, buf.String(), "<script>")
}

func TestRenderHTML_EmptyLabel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, New(-5, Options{}, testTheme())))
	assert.True(t, strings.HasSuffix(buf.String(), `"></div>`))
}

func TestRender_Idempotent(t *testing.T) {
	b := New(777777, Options{Muted: true, Small: true, ClassName: "x"}, testTheme())

	var first, second bytes.Buffer
	require.NoError(t, RenderHTML(&first, b))
	require.NoError(t, RenderHTML(&second, b))
	assert.Equal(t, first.String(), second.String())

	first.Reset()
	second.Reset()
	require.NoError(t, RenderSVG(&first, b))
	require.NoError(t, RenderSVG(&second, b))
	assert.Equal(t, first.String(), second.String())

	assert.Equal(t, RenderTerminal(b), RenderTerminal(b))
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	b := New(150000, Options{ClassName: "chart"}, testTheme())
	require.NoError(t, RenderSVG(&buf, b))

	out := buf.String()
	assert.Contains(t, out, `width="24"`)
	assert.Contains(t, out, `height="24"`)
	assert.Contains(t, out, `<circle cx="12" cy="12" r="12"`)
	assert.Contains(t, out, "fill:#4b9fd5")
	assert.Contains(t, out, `class="size-rating chart"`)
	assert.Contains(t, out, ">L</text>")
	assert.Contains(t, out, "font-size:12px")
	assert.Contains(t, out, "</svg>")
}

func TestRenderSVG_MutedSmall(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, New(10, Options{Muted: true, Small: true}, testTheme())))

	out := buf.String()
	assert.Contains(t, out, `<circle cx="10" cy="10" r="10"`)
	assert.Contains(t, out, "fill:"+MutedBackground)
	assert.Contains(t, out, "font-size:10px")
}

func TestRenderSVG_EmptyLabelHasNoText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, New(-1, Options{}, testTheme())))
	assert.Contains(t, buf.String(), "<circle")
	assert.NotContains(t, buf.String(), "<text")
}

func TestRenderSVG_OddDiameter(t *testing.T) {
	var buf bytes.Buffer
	theme := testTheme()
	theme.ControlHeight = 25
	require.NoError(t, RenderSVG(&buf, New(1, Options{}, theme)))

	out := buf.String()
	assert.Contains(t, out, `width="25"`)
	assert.Contains(t, out, `<circle cx="12" cy="12" r="12"`)
}

func TestRenderSVG_ZeroDiameter(t *testing.T) {
	var buf bytes.Buffer
	theme := testTheme()
	theme.ControlHeight = 0
	assert.Error(t, RenderSVG(&buf, New(1, Options{}, theme)))
}

func TestRenderTerminal(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		opts      Options
		wantWidth int
		wantText  string
	}{
		{"default", 12, Options{}, TerminalWidth, "XS"},
		{"small", 600000, Options{Small: true}, TerminalSmallWidth, "XL"},
		{"muted", 2000, Options{Muted: true}, TerminalWidth, "S"},
		{"empty label", -5, Options{}, TerminalWidth, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderTerminal(New(tt.value, tt.opts, testTheme()))
			assert.Equal(t, tt.wantWidth, lipgloss.Width(out))
			if tt.wantText != "" {
				assert.Contains(t, out, tt.wantText)
			}
		})
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorScheme selects how composed art is colored.
type ColorScheme string

const (
	ColorNone     ColorScheme = "none"
	ColorSolid    ColorScheme = "solid"
	ColorRainbow  ColorScheme = "rainbow"
	ColorGradient ColorScheme = "gradient"
)

// AnimationTag names the animation the presentation layer should apply. The
// core only carries the tag; all timing lives in the UI.
type AnimationTag string

const (
	AnimNone  AnimationTag = "none"
	AnimBlink AnimationTag = "blink"
	AnimPulse AnimationTag = "pulse"
	AnimWave  AnimationTag = "wave"
)

// rainbowPalette is the fixed cycle used by the rainbow scheme. Lowercase hex
// so palette constants compare equal to go-colorful round trips.
var rainbowPalette = []string{
	"#ff5555", // red
	"#ffb86c", // orange
	"#f1fa8c", // yellow
	"#50fa7b", // green
	"#8be9fd", // cyan
	"#6272a4", // blue
	"#bd93f9", // purple
	"#ff79c6", // pink
}

// Solid and gradient defaults. Theme-independent so cached art stays valid
// when the UI theme changes.
const (
	solidColor    = "#39d353"
	gradientStart = "#8be9fd"
	gradientEnd   = "#ff79c6"
)

// StyledArt is composed art plus color metadata. Geometry is identical to the
// ComposedArt it was built from. CharColors holds one hex color per span
// (empty string = uncolored); it is nil for the "none" scheme.
type StyledArt struct {
	Rows       []string
	Spans      []CharSpan
	Scheme     ColorScheme
	Animation  AnimationTag
	CharColors []string
}

// StyleApplicator decorates composed art with a color scheme and animation
// tag. It holds no state beyond its configuration.
type StyleApplicator struct {
	palette []string
}

// NewStyleApplicator returns an applicator whose rainbow cycle uses the first
// cfg.RainbowPaletteSize palette colors.
func NewStyleApplicator(cfg Config) *StyleApplicator {
	return &StyleApplicator{palette: rainbowPalette[:cfg.RainbowPaletteSize]}
}

// Apply attaches color metadata and the animation tag to art. Unknown scheme
// or tag values fail with ErrInvalidStyle; nothing defaults silently.
func (s *StyleApplicator) Apply(art ComposedArt, scheme ColorScheme, anim AnimationTag) (StyledArt, error) {
	switch anim {
	case AnimNone, AnimBlink, AnimPulse, AnimWave:
	default:
		return StyledArt{}, fmt.Errorf("%w: animation %q", ErrInvalidStyle, anim)
	}

	styled := StyledArt{
		Rows:      art.Rows,
		Spans:     art.Spans,
		Scheme:    scheme,
		Animation: anim,
	}

	switch scheme {
	case ColorNone:
		// no color metadata
	case ColorSolid:
		colors := make([]string, len(art.Spans))
		for i := range colors {
			colors[i] = solidColor
		}
		styled.CharColors = colors
	case ColorRainbow:
		styled.CharColors = s.rainbowColors(art.Spans)
	case ColorGradient:
		colors, err := gradientColors(gradientStart, gradientEnd, len(art.Spans))
		if err != nil {
			return StyledArt{}, err
		}
		styled.CharColors = colors
	default:
		return StyledArt{}, fmt.Errorf("%w: color scheme %q", ErrInvalidStyle, scheme)
	}

	return styled, nil
}

// rainbowColors assigns one palette color per non-space character, cycling
// through the palette. Spaces are left uncolored and do not consume a slot,
// so visible characters step through the cycle evenly.
func (s *StyleApplicator) rainbowColors(spans []CharSpan) []string {
	colors := make([]string, len(spans))
	next := 0
	for i, span := range spans {
		if span.Char == ' ' {
			continue
		}
		colors[i] = s.palette[next%len(s.palette)]
		next++
	}
	return colors
}

// gradientColors blends linearly from start to end across character index,
// interpolating in Luv space for perceptually even steps.
func gradientColors(start, end string, n int) ([]string, error) {
	from, err := colorful.Hex(start)
	if err != nil {
		return nil, fmt.Errorf("%w: gradient start %q", ErrInvalidStyle, start)
	}
	to, err := colorful.Hex(end)
	if err != nil {
		return nil, fmt.Errorf("%w: gradient end %q", ErrInvalidStyle, end)
	}

	colors := make([]string, n)
	for i := range colors {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		switch t {
		case 0.0:
			colors[i] = start
		case 1.0:
			colors[i] = end
		default:
			colors[i] = from.BlendLuv(to, t).Clamped().Hex()
		}
	}
	return colors, nil
}

// Lines returns the art's rows with colors applied via lipgloss, one styled
// string per row. For the "none" scheme the raw rows are returned unchanged.
func (a StyledArt) Lines() []string {
	return colorizeRows(a.Rows, a.Spans, a.CharColors)
}

// colorizeRows paints each character's column span with its color, leaving
// gap columns unstyled. Row geometry (visible width) is preserved.
func colorizeRows(rows []string, spans []CharSpan, colors []string) []string {
	if len(colors) == 0 {
		out := make([]string, len(rows))
		copy(out, rows)
		return out
	}

	styles := make([]lipgloss.Style, len(colors))
	for i, hex := range colors {
		if hex != "" {
			styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		}
	}

	out := make([]string, len(rows))
	for r, row := range rows {
		runes := []rune(row)
		var b strings.Builder
		pos := 0
		for i, span := range spans {
			if span.Start > pos {
				b.WriteString(string(runes[pos:span.Start]))
			}
			segment := string(runes[span.Start : span.Start+span.Width])
			if colors[i] != "" {
				segment = styles[i].Render(segment)
			}
			b.WriteString(segment)
			pos = span.Start + span.Width
		}
		if pos < len(runes) {
			b.WriteString(string(runes[pos:]))
		}
		out[r] = b.String()
	}
	return out
}

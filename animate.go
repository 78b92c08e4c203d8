package main

import (
	"strings"
	"unicode/utf8"
)

// Animation timing lives entirely here in the presentation layer: the core
// only tags art with an AnimationTag. animateFrame turns a tagged art plus a
// frame counter into the lines to display for that frame. Geometry (row count
// and visible width) is identical for every frame.

// pulseLevels is the brightness cycle applied by the pulse animation.
var pulseLevels = []float64{1.0, 0.85, 0.7, 0.55, 0.7, 0.85}

// animateFrame renders art for one animation frame.
func animateFrame(art StyledArt, frame int) []string {
	switch art.Animation {
	case AnimBlink:
		if frame%2 == 1 {
			return blankRows(art.Rows)
		}
		return art.Lines()
	case AnimPulse:
		return pulseFrame(art, frame)
	case AnimWave:
		return waveFrame(art, frame)
	default:
		return art.Lines()
	}
}

// blankRows keeps the art's footprint while hiding its content.
func blankRows(rows []string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = strings.Repeat(" ", utf8.RuneCountInString(row))
	}
	return out
}

// pulseFrame dims every character color by the frame's brightness level.
// Uncolored art has nothing to modulate and renders as-is.
func pulseFrame(art StyledArt, frame int) []string {
	colors := pulseColors(art.CharColors, frame)
	if colors == nil {
		return art.Lines()
	}
	return colorizeRows(art.Rows, art.Spans, colors)
}

// pulseColors shades each color by the frame's brightness level, or returns
// nil when there is nothing to modulate.
func pulseColors(charColors []string, frame int) []string {
	if len(charColors) == 0 {
		return nil
	}
	level := pulseLevels[frame%len(pulseLevels)]
	shaded := make([]string, len(charColors))
	for i, hex := range charColors {
		if hex != "" {
			shaded[i] = generateShade(hex, level)
		}
	}
	return shaded
}

// waveFrame rotates the color assignment across the colored characters, so
// rainbow and gradient colors appear to travel through the text.
func waveFrame(art StyledArt, frame int) []string {
	colors := waveColors(art.CharColors, frame)
	if colors == nil {
		return art.Lines()
	}
	return colorizeRows(art.Rows, art.Spans, colors)
}

// waveColors shifts colors forward through the colored positions by frame
// steps, skipping uncolored (space) positions. Nil when nothing is colored.
func waveColors(charColors []string, frame int) []string {
	var colored []int
	for i, hex := range charColors {
		if hex != "" {
			colored = append(colored, i)
		}
	}
	if len(colored) == 0 {
		return nil
	}

	rotated := make([]string, len(charColors))
	for i, idx := range colored {
		src := colored[(i+frame)%len(colored)]
		rotated[idx] = charColors[src]
	}
	return rotated
}

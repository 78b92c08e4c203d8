package main

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// glyphGap separates adjacent characters in composed output.
const glyphGap = " "

// CharSpan records which output columns belong to one input character, so
// styling can color per character without touching the grid itself.
type CharSpan struct {
	Char  rune
	Start int // first column of the glyph, in runes
	Width int // glyph width in runes
}

// ComposedArt is the raw character grid: one row string per glyph row, all
// rows the same rune width.
type ComposedArt struct {
	Rows  []string
	Spans []CharSpan
}

// GlyphComposer turns (text, font) pairs into composed art.
type GlyphComposer struct {
	dict *FontDictionary
	cfg  Config
}

// NewGlyphComposer returns a composer over the given dictionary.
func NewGlyphComposer(dict *FontDictionary, cfg Config) *GlyphComposer {
	return &GlyphComposer{dict: dict, cfg: cfg}
}

// Compose renders text in the named font. Characters the font does not
// define are drawn with the dictionary's blank fallback glyph. Whitespace-only
// input is valid and renders as blank columns.
func (c *GlyphComposer) Compose(text, fontName string) (ComposedArt, error) {
	font, err := c.dict.Get(fontName)
	if err != nil {
		return ComposedArt{}, err
	}

	if utf8.RuneCountInString(text) > c.cfg.MaxTextLength {
		return ComposedArt{}, fmt.Errorf("%w: %d runes (max %d)",
			ErrTextTooLong, utf8.RuneCountInString(text), c.cfg.MaxTextLength)
	}

	chars := c.normalize(text)
	if len(chars) == 0 {
		return ComposedArt{}, ErrEmptyInput
	}

	glyphs := make([]Glyph, len(chars))
	spans := make([]CharSpan, len(chars))
	col := 0
	for i, ch := range chars {
		g := c.dict.GlyphOrFallback(font, ch)
		glyphs[i] = g
		spans[i] = CharSpan{Char: ch, Start: col, Width: g.Width()}
		col += g.Width() + len(glyphGap)
	}

	rows := make([]string, font.Height)
	for r := 0; r < font.Height; r++ {
		var b strings.Builder
		for i, g := range glyphs {
			if i > 0 {
				b.WriteString(glyphGap)
			}
			b.WriteString(g[r])
		}
		rows[r] = b.String()
	}

	return ComposedArt{Rows: rows, Spans: spans}, nil
}

// normalize applies the configured case folding and strips control
// characters. Spaces and tabs count as renderable; tabs become spaces.
func (c *GlyphComposer) normalize(text string) []rune {
	if c.cfg.CaseFolding == FoldUpper {
		text = strings.ToUpper(text)
	}

	var chars []rune
	for _, ch := range text {
		switch {
		case ch == '\t':
			chars = append(chars, ' ')
		case unicode.IsControl(ch):
			// dropped: newlines and other control characters have no glyphs
		default:
			chars = append(chars, ch)
		}
	}
	return chars
}

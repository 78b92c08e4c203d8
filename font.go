package main

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Glyph is the fixed-height, multi-row representation of one character in one
// font. All rows of a glyph have the same rune width.
type Glyph []string

// Width returns the glyph's column count.
func (g Glyph) Width() int {
	if len(g) == 0 {
		return 0
	}
	return utf8.RuneCountInString(g[0])
}

// Font is a named collection of glyphs sharing one height. Fonts are built
// once at startup and never mutated afterwards.
type Font struct {
	Name   string
	Height int
	glyphs map[rune]Glyph
}

// Glyph returns the glyph for ch, or false if the font does not define one.
func (f *Font) Glyph(ch rune) (Glyph, bool) {
	g, ok := f.glyphs[ch]
	return g, ok
}

// Supports reports whether the font defines a glyph for ch.
func (f *Font) Supports(ch rune) bool {
	_, ok := f.glyphs[ch]
	return ok
}

// FontDictionary holds every registered font plus the fallback policy for
// characters a font does not define. Lookups are purely functional.
type FontDictionary struct {
	fonts         map[string]*Font
	fallbackWidth int
}

// NewFontDictionary registers the built-in fonts, validating each one.
func NewFontDictionary(cfg Config) (*FontDictionary, error) {
	dict := &FontDictionary{
		fonts:         make(map[string]*Font, len(builtinFonts)),
		fallbackWidth: cfg.FallbackGlyphWidth,
	}
	for _, font := range builtinFonts {
		if err := validateFont(font); err != nil {
			return nil, err
		}
		dict.fonts[font.Name] = font
	}
	return dict, nil
}

// Get returns the named font or ErrUnknownFont.
func (d *FontDictionary) Get(name string) (*Font, error) {
	font, ok := d.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	return font, nil
}

// GlyphOrFallback returns the font's glyph for ch, or a blank glyph of the
// font's height when the character is undefined. Rendering never fails over
// a single unsupported character.
func (d *FontDictionary) GlyphOrFallback(font *Font, ch rune) Glyph {
	if g, ok := font.Glyph(ch); ok {
		return g
	}
	blank := strings.Repeat(" ", d.fallbackWidth)
	rows := make(Glyph, font.Height)
	for i := range rows {
		rows[i] = blank
	}
	return rows
}

// ListNames returns all registered font names in alphabetical order.
func (d *FontDictionary) ListNames() []string {
	names := make([]string, 0, len(d.fonts))
	for name := range d.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validateFont checks the invariants every font must hold: a positive height,
// every glyph exactly that tall, and rectangular glyphs.
func validateFont(font *Font) error {
	if font.Height < 1 {
		return fmt.Errorf("font %q: height %d", font.Name, font.Height)
	}
	if len(font.glyphs) == 0 {
		return fmt.Errorf("font %q: no glyphs", font.Name)
	}
	for ch, glyph := range font.glyphs {
		if len(glyph) != font.Height {
			return fmt.Errorf("font %q: glyph %q has %d rows, want %d",
				font.Name, ch, len(glyph), font.Height)
		}
		width := glyph.Width()
		for i, row := range glyph {
			if utf8.RuneCountInString(row) != width {
				return fmt.Errorf("font %q: glyph %q row %d is %d wide, want %d",
					font.Name, ch, i, utf8.RuneCountInString(row), width)
			}
		}
	}
	return nil
}

package main

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func testDictionary(t *testing.T, cfg Config) *FontDictionary {
	t.Helper()
	dict, err := NewFontDictionary(cfg)
	if err != nil {
		t.Fatalf("NewFontDictionary() error: %v", err)
	}
	return dict
}

func TestFontDictionaryGet(t *testing.T) {
	dict := testDictionary(t, DefaultConfig())

	tests := []struct {
		name     string
		fontName string
		wantErr  bool
	}{
		{"standard font", "standard", false},
		{"block font", "block", false},
		{"mini font", "mini", false},
		{"unregistered font", "doesnotexist", true},
		{"empty name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			font, err := dict.Get(tt.fontName)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFont) {
					t.Errorf("Get(%q) error = %v, want ErrUnknownFont", tt.fontName, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.fontName, err)
			}
			if font.Name != tt.fontName {
				t.Errorf("Get(%q) returned font %q", tt.fontName, font.Name)
			}
		})
	}
}

func TestFontDictionaryListNames(t *testing.T) {
	dict := testDictionary(t, DefaultConfig())

	names := dict.ListNames()
	want := []string{"block", "mini", "standard"}
	if len(names) != len(want) {
		t.Fatalf("ListNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ListNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestGlyphOrFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FallbackGlyphWidth = 2
	dict := testDictionary(t, cfg)

	tests := []struct {
		name     string
		fontName string
		char     rune
		fallback bool
	}{
		{"defined letter", "standard", 'A', false},
		{"defined digit", "block", '7', false},
		{"unsupported punctuation", "block", '!', true},
		{"unsupported symbol", "standard", '#', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			font, err := dict.Get(tt.fontName)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.fontName, err)
			}

			glyph := dict.GlyphOrFallback(font, tt.char)
			if len(glyph) != font.Height {
				t.Errorf("glyph height = %d, want font height %d", len(glyph), font.Height)
			}
			if tt.fallback {
				if glyph.Width() != cfg.FallbackGlyphWidth {
					t.Errorf("fallback width = %d, want %d", glyph.Width(), cfg.FallbackGlyphWidth)
				}
				for i, row := range glyph {
					if row != "  " {
						t.Errorf("fallback row %d = %q, want blanks", i, row)
					}
				}
			}
		})
	}
}

// Every built-in font must hold the geometry invariants the composer relies
// on: exact height and rectangular glyphs.
func TestBuiltinFontsValid(t *testing.T) {
	for _, font := range builtinFonts {
		t.Run(font.Name, func(t *testing.T) {
			if err := validateFont(font); err != nil {
				t.Errorf("validateFont(%q) error: %v", font.Name, err)
			}
			for ch, glyph := range font.glyphs {
				width := glyph.Width()
				for i, row := range glyph {
					if utf8.RuneCountInString(row) != width {
						t.Errorf("font %q glyph %q row %d width %d, want %d",
							font.Name, ch, i, utf8.RuneCountInString(row), width)
					}
				}
			}
		})
	}
}

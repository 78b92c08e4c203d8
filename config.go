package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case folding rules for input text before glyph lookup
const (
	FoldUpper    = "upper"    // fold input to uppercase (default, fonts define uppercase glyphs)
	FoldPreserve = "preserve" // leave input as typed; undefined characters use the fallback glyph
)

// Config holds every tunable the rendering core reads. It is built once at
// startup and passed by value; nothing in the core reads mutable globals.
type Config struct {
	// MaxTextLength is the maximum number of runes accepted in one request.
	MaxTextLength int `yaml:"max_text_length"`

	// CacheCapacity is the maximum number of entries held by the render cache.
	CacheCapacity int `yaml:"cache_capacity"`

	// FallbackGlyphWidth is the column width of the blank glyph substituted
	// for characters a font does not define.
	FallbackGlyphWidth int `yaml:"fallback_glyph_width"`

	// RainbowPaletteSize is how many palette colors the rainbow scheme cycles
	// through, clamped to the built-in palette length.
	RainbowPaletteSize int `yaml:"rainbow_palette_size"`

	// CaseFolding is FoldUpper or FoldPreserve.
	CaseFolding string `yaml:"case_folding"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxTextLength:      5000,
		CacheCapacity:      50,
		FallbackGlyphWidth: 1,
		RainbowPaletteSize: 8,
		CaseFolding:        FoldUpper,
	}
}

// LoadConfig returns the defaults, overridden by the YAML file named in
// ASCIIGEN_CONFIG when that variable is set. A missing or malformed file is
// an error; an unset variable is not.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path := os.Getenv("ASCIIGEN_CONFIG")
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg.sanitized(), nil
}

// sanitized clamps out-of-range values back to usable ones rather than
// failing startup over a bad override.
func (c Config) sanitized() Config {
	if c.MaxTextLength < 1 {
		c.MaxTextLength = DefaultConfig().MaxTextLength
	}
	if c.CacheCapacity < 1 {
		c.CacheCapacity = DefaultConfig().CacheCapacity
	}
	if c.FallbackGlyphWidth < 1 {
		c.FallbackGlyphWidth = 1
	}
	if c.RainbowPaletteSize < 1 || c.RainbowPaletteSize > len(rainbowPalette) {
		c.RainbowPaletteSize = len(rainbowPalette)
	}
	if c.CaseFolding != FoldUpper && c.CaseFolding != FoldPreserve {
		c.CaseFolding = FoldUpper
	}
	return c
}

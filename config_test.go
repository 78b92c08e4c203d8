package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxTextLength != 5000 {
		t.Errorf("MaxTextLength = %d, want 5000", cfg.MaxTextLength)
	}
	if cfg.CacheCapacity != 50 {
		t.Errorf("CacheCapacity = %d, want 50", cfg.CacheCapacity)
	}
	if cfg.FallbackGlyphWidth != 1 {
		t.Errorf("FallbackGlyphWidth = %d, want 1", cfg.FallbackGlyphWidth)
	}
	if cfg.RainbowPaletteSize != len(rainbowPalette) {
		t.Errorf("RainbowPaletteSize = %d, want %d", cfg.RainbowPaletteSize, len(rainbowPalette))
	}
	if cfg.CaseFolding != FoldUpper {
		t.Errorf("CaseFolding = %q, want %q", cfg.CaseFolding, FoldUpper)
	}
}

func TestConfigSanitized(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "zero values fall back to defaults",
			in:   Config{},
			want: DefaultConfig(),
		},
		{
			name: "palette size clamped to palette length",
			in: Config{
				MaxTextLength: 10, CacheCapacity: 5, FallbackGlyphWidth: 2,
				RainbowPaletteSize: 99, CaseFolding: FoldPreserve,
			},
			want: Config{
				MaxTextLength: 10, CacheCapacity: 5, FallbackGlyphWidth: 2,
				RainbowPaletteSize: len(rainbowPalette), CaseFolding: FoldPreserve,
			},
		},
		{
			name: "bad folding rule falls back to upper",
			in: Config{
				MaxTextLength: 10, CacheCapacity: 5, FallbackGlyphWidth: 1,
				RainbowPaletteSize: 4, CaseFolding: "camel",
			},
			want: Config{
				MaxTextLength: 10, CacheCapacity: 5, FallbackGlyphWidth: 1,
				RainbowPaletteSize: 4, CaseFolding: FoldUpper,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.sanitized(); got != tt.want {
				t.Errorf("sanitized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "max_text_length: 100\ncache_capacity: 7\nrainbow_palette_size: 4\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("ASCIIGEN_CONFIG", path)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.MaxTextLength != 100 {
		t.Errorf("MaxTextLength = %d, want 100", cfg.MaxTextLength)
	}
	if cfg.CacheCapacity != 7 {
		t.Errorf("CacheCapacity = %d, want 7", cfg.CacheCapacity)
	}
	if cfg.RainbowPaletteSize != 4 {
		t.Errorf("RainbowPaletteSize = %d, want 4", cfg.RainbowPaletteSize)
	}
	// Unset fields keep their defaults.
	if cfg.CaseFolding != FoldUpper {
		t.Errorf("CaseFolding = %q, want default %q", cfg.CaseFolding, FoldUpper)
	}
}

func TestLoadConfigUnsetEnv(t *testing.T) {
	t.Setenv("ASCIIGEN_CONFIG", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("ASCIIGEN_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() with missing file succeeded, want error")
	}
}

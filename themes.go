package main

import (
	"os"
	"sort"

	goghthemes "github.com/willyv3/gogh-themes"
)

// Theme provides the UI chrome colors. Art colors come from the style
// schemes in style.go and are theme-independent, so cached art never goes
// stale when the theme changes.
type Theme struct {
	Background string
	Foreground string
	Subtle     string

	Red     string
	Green   string
	Yellow  string
	Blue    string
	Magenta string
	Cyan    string

	// Semantic aliases
	Gray string
}

// themes registry - all themes from gogh-themes package
var themes = make(map[string]Theme)

// CurrentTheme is the active theme
var CurrentTheme Theme

// currentThemeName tracks the current theme name for cycling
var currentThemeName string

// themeOrder defines the order for cycling through themes
var themeOrder []string

// InitTheme loads the gogh-themes registry and picks the startup theme from
// ASCIIGEN_THEME, falling back to Dracula.
func InitTheme() {
	loadAllThemes()
	buildThemeOrder()

	themeName := os.Getenv("ASCIIGEN_THEME")
	if themeName == "" {
		themeName = "Dracula"
	}

	theme, exists := themes[themeName]
	if !exists {
		if len(themeOrder) > 0 {
			themeName = themeOrder[0]
			theme = themes[themeName]
		}
	}

	CurrentTheme = theme
	currentThemeName = themeName
}

// loadAllThemes converts every gogh theme into our Theme struct.
func loadAllThemes() {
	for name, goghTheme := range goghthemes.All() {
		themes[name] = Theme{
			Background: goghTheme.Background,
			Foreground: goghTheme.Foreground,
			Subtle:     generateShade(goghTheme.Background, 1.3),

			Red:     goghTheme.BrightRed,
			Green:   goghTheme.BrightGreen,
			Yellow:  goghTheme.BrightYellow,
			Blue:    goghTheme.BrightBlue,
			Magenta: goghTheme.BrightMagenta,
			Cyan:    goghTheme.BrightCyan,

			Gray: goghTheme.White,
		}
	}
}

// buildThemeOrder creates alphabetically sorted theme cycling order
func buildThemeOrder() {
	themeOrder = make([]string, 0, len(themes))
	for name := range themes {
		themeOrder = append(themeOrder, name)
	}
	sort.Strings(themeOrder)
}

// NextTheme cycles to the next theme in the rotation
func NextTheme() string {
	currentIndex := 0
	for i, name := range themeOrder {
		if name == currentThemeName {
			currentIndex = i
			break
		}
	}

	nextIndex := (currentIndex + 1) % len(themeOrder)
	nextThemeName := themeOrder[nextIndex]

	CurrentTheme = themes[nextThemeName]
	currentThemeName = nextThemeName

	return nextThemeName
}

// GetCurrentThemeName returns the name of the active theme
func GetCurrentThemeName() string {
	return currentThemeName
}

// generateShade generates a lighter or darker shade of a hex color
// factor < 1.0 = darker, factor > 1.0 = brighter
func generateShade(hexColor string, factor float64) string {
	if len(hexColor) > 0 && hexColor[0] == '#' {
		hexColor = hexColor[1:]
	}

	var r, g, b int64
	if len(hexColor) == 6 {
		r = parseHex(hexColor[0:2])
		g = parseHex(hexColor[2:4])
		b = parseHex(hexColor[4:6])
	} else {
		return "#000000"
	}

	r = int64(float64(r) * factor)
	g = int64(float64(g) * factor)
	b = int64(float64(b) * factor)

	if r > 255 {
		r = 255
	}
	if g > 255 {
		g = 255
	}
	if b > 255 {
		b = 255
	}

	return formatHex(r, g, b)
}

// parseHex parses a 2-character hex string to int64
func parseHex(s string) int64 {
	var result int64
	for i := 0; i < len(s); i++ {
		result *= 16
		c := s[i]
		if c >= '0' && c <= '9' {
			result += int64(c - '0')
		} else if c >= 'a' && c <= 'f' {
			result += int64(c - 'a' + 10)
		} else if c >= 'A' && c <= 'F' {
			result += int64(c - 'A' + 10)
		}
	}
	return result
}

// formatHex formats RGB values to hex string
func formatHex(r, g, b int64) string {
	return "#" + toHex(r) + toHex(g) + toHex(b)
}

// toHex converts a number to 2-digit hex
func toHex(n int64) string {
	const hexDigits = "0123456789ABCDEF"
	return string([]byte{hexDigits[n/16], hexDigits[n%16]})
}

package main

// Built-in font tables. Glyph shapes are data only; composition logic lives
// in compose.go. Every glyph must be rectangular and match its font's height
// (enforced by validateFont at startup).

var builtinFonts = []*Font{standardFont, blockFont, miniFont}

// standardFont is the default 3-row half-block font: A-Z, 0-9, space and a
// little punctuation.
var standardFont = &Font{
	Name:   "standard",
	Height: 3,
	glyphs: map[rune]Glyph{
		'A': {"▄▀▀▄", "█▄▄█", "█  █"},
		'B': {"█▀▀▄", "█▀▀▄", "█▄▄▀"},
		'C': {"▄▀▀▀", "█   ", "▀▄▄▄"},
		'D': {"█▀▀▄", "█  █", "█▄▄▀"},
		'E': {"█▀▀▀", "█▀▀ ", "█▄▄▄"},
		'F': {"█▀▀▀", "█▀▀ ", "█   "},
		'G': {"▄▀▀▀", "█ ▀█", "▀▄▄▀"},
		'H': {"█  █", "█▀▀█", "█  █"},
		'I': {"▀█▀", " █ ", "▄█▄"},
		'J': {"▀▀▀█", "   █", "▀▄▄▀"},
		'K': {"█ ▄▀", "██  ", "█ ▀▄"},
		'L': {"█  ", "█  ", "█▄▄"},
		'M': {"█▄ ▄█", "█ ▀ █", "█   █"},
		'N': {"█▄  █", "█ ▀▄█", "█   █"},
		'O': {"▄▀▀▄", "█  █", "▀▄▄▀"},
		'P': {"█▀▀▄", "█▄▄▀", "█   "},
		'Q': {"▄▀▀▄ ", "█  █ ", "▀▄▄▀▄"},
		'R': {"█▀▀▄", "█▄▄▀", "█  █"},
		'S': {"▄▀▀▀", "▀▀▀▄", "▄▄▄▀"},
		'T': {"▀▀█▀▀", "  █  ", "  █  "},
		'U': {"█  █", "█  █", "▀▄▄▀"},
		'V': {"█   █", "▀▄ ▄▀", "  ▀  "},
		'W': {"█   █", "█ ▄ █", "▀▄▀▄▀"},
		'X': {"▀▄ ▄▀", "  █  ", "▄▀ ▀▄"},
		'Y': {"█   █", " ▀▄▀ ", "  █  "},
		'Z': {"▀▀▀█", " ▄▀ ", "█▄▄▄"},
		'0': {"▄▀▀▄", "█ ▄█", "▀▄▄▀"},
		'1': {"▄█ ", " █ ", "▄█▄"},
		'2': {"▀▀▀▄", " ▄▀ ", "█▄▄▄"},
		'3': {"▀▀▀▄", " ▀▀▄", "▄▄▄▀"},
		'4': {"█  █", "▀▀▀█", "   █"},
		'5': {"█▀▀▀", "▀▀▀▄", "▄▄▄▀"},
		'6': {"▄▀▀▀", "█▀▀▄", "▀▄▄▀"},
		'7': {"▀▀▀█", "  █ ", " █  "},
		'8': {"▄▀▀▄", "█▀▀█", "▀▄▄▀"},
		'9': {"▄▀▀▄", "▀▀▀█", "▄▄▄▀"},
		' ': {"  ", "  ", "  "},
		'!': {"█", "█", "▄"},
		'?': {"▀▀▄", " ▄▀", " ▄ "},
		'.': {" ", " ", "▄"},
		',': {"  ", "  ", "▄▀"},
		'-': {"   ", "▀▀▀", "   "},
		'@': {"▄▀▀▄", "█ ▀█", "▀▄▄ "},
	},
}

// blockFont is a 5-row full-block font. It defines letters, digits and space
// only; punctuation falls through to the dictionary's fallback glyph.
var blockFont = &Font{
	Name:   "block",
	Height: 5,
	glyphs: map[rune]Glyph{
		'A': {" ███ ", "█   █", "█████", "█   █", "█   █"},
		'B': {"████ ", "█   █", "████ ", "█   █", "████ "},
		'C': {" ████", "█    ", "█    ", "█    ", " ████"},
		'D': {"████ ", "█   █", "█   █", "█   █", "████ "},
		'E': {"█████", "█    ", "████ ", "█    ", "█████"},
		'F': {"█████", "█    ", "████ ", "█    ", "█    "},
		'G': {" ████", "█    ", "█  ██", "█   █", " ███ "},
		'H': {"█   █", "█   █", "█████", "█   █", "█   █"},
		'I': {"█████", "  █  ", "  █  ", "  █  ", "█████"},
		'J': {"█████", "   █ ", "   █ ", "█  █ ", " ██  "},
		'K': {"█   █", "█  █ ", "███  ", "█  █ ", "█   █"},
		'L': {"█    ", "█    ", "█    ", "█    ", "█████"},
		'M': {"█   █", "██ ██", "█ █ █", "█   █", "█   █"},
		'N': {"█   █", "██  █", "█ █ █", "█  ██", "█   █"},
		'O': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
		'P': {"████ ", "█   █", "████ ", "█    ", "█    "},
		'Q': {" ███ ", "█   █", "█   █", "█  █ ", " ██ █"},
		'R': {"████ ", "█   █", "████ ", "█  █ ", "█   █"},
		'S': {" ████", "█    ", " ███ ", "    █", "████ "},
		'T': {"█████", "  █  ", "  █  ", "  █  ", "  █  "},
		'U': {"█   █", "█   █", "█   █", "█   █", " ███ "},
		'V': {"█   █", "█   █", "█   █", " █ █ ", "  █  "},
		'W': {"█   █", "█   █", "█ █ █", "██ ██", "█   █"},
		'X': {"█   █", " █ █ ", "  █  ", " █ █ ", "█   █"},
		'Y': {"█   █", " █ █ ", "  █  ", "  █  ", "  █  "},
		'Z': {"█████", "   █ ", "  █  ", " █   ", "█████"},
		'0': {" ███ ", "█  ██", "█ █ █", "██  █", " ███ "},
		'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
		'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
		'3': {"████ ", "    █", " ███ ", "    █", "████ "},
		'4': {"█   █", "█   █", "█████", "    █", "    █"},
		'5': {"█████", "█    ", "████ ", "    █", "████ "},
		'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
		'7': {"█████", "    █", "   █ ", "  █  ", "  █  "},
		'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
		'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
		' ': {"   ", "   ", "   ", "   ", "   "},
	},
}

// miniFont renders each character as itself on a single row. Useful for long
// inputs and as the smallest sanity-check font.
var miniFont = newMiniFont()

func newMiniFont() *Font {
	glyphs := make(map[rune]Glyph)
	for _, ch := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 !?.,-@" {
		glyphs[ch] = Glyph{string(ch)}
	}
	return &Font{Name: "mini", Height: 1, glyphs: glyphs}
}

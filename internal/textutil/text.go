// Package textutil prepares untrusted file names for terminal display.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Sanitize replaces control characters and invisible formatting runes with a
// visible placeholder so file names cannot inject terminal escape sequences
// or reorder the rendered line.
func Sanitize(text string) string {
	for _, r := range text {
		if unsafeRune(r) {
			return sanitizeSlow(text)
		}
	}
	return text
}

func sanitizeSlow(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unsafeRune(r) {
			b.WriteRune('�')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// unsafeRune reports whether r must never reach the terminal raw. Besides
// C0/C1 controls this covers the bidi and zero-width formatting runes, which
// are invisible but change how the rest of the line renders.
func unsafeRune(r rune) bool {
	if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
		return true
	}
	switch r {
	case 0x00ad, 0x061c, 0x180e, 0x2028, 0x2029, 0x2060, 0xfeff:
		return true
	}
	return r >= 0x200b && r <= 0x200f ||
		r >= 0x202a && r <= 0x202e ||
		r >= 0x2066 && r <= 0x2069 ||
		r >= 0x206a && r <= 0x206f
}

// Width reports the number of terminal columns text occupies, counting wide
// runes as two columns.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most width columns, appending an ellipsis
// when anything was cut.
func Truncate(text string, width int) string {
	return runewidth.Truncate(text, width, "…")
}

// Pad extends text with spaces to exactly width columns, truncating first if
// it is too long.
func Pad(text string, width int) string {
	return runewidth.FillRight(Truncate(text, width), width)
}

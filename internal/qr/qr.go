// Package qr draws the pickup code. It is a hash pattern that looks like a
// QR code; scanners will not decode it.
package qr

import (
	"strings"
	"unicode/utf16"
)

// Size is the grid edge in cells.
const Size = 25

// Grid holds dark cells as true, indexed [y][x].
type Grid [Size][Size]bool

// Hash is a 31-multiplier rolling hash over the UTF-16 code units of s,
// wrapping at 32 bits.
func Hash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h<<5 - h + int32(c)
	}
	return h
}

// Generate returns the pattern for value. Same value, same grid.
func Generate(value string) Grid {
	h := int64(Hash(value))
	var g Grid
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			v := h + int64(x*7) + int64(y*11)
			if v < 0 {
				v = -v
			}
			g[y][x] = v%3 == 0
		}
	}
	return g
}

// Dark counts dark cells.
func (g Grid) Dark() int {
	n := 0
	for y := range g {
		for x := range g[y] {
			if g[y][x] {
				n++
			}
		}
	}
	return n
}

// Render draws g one text line per row with a one cell quiet zone. on and
// off are the glyphs for dark and light cells; use two columns each to keep
// cells roughly square in a terminal.
func Render(g Grid, on, off string) string {
	var b strings.Builder
	blank := strings.Repeat(off, Size+2)
	b.WriteString(blank)
	b.WriteByte('\n')
	for y := 0; y < Size; y++ {
		b.WriteString(off)
		for x := 0; x < Size; x++ {
			if g[y][x] {
				b.WriteString(on)
			} else {
				b.WriteString(off)
			}
		}
		b.WriteString(off)
		b.WriteByte('\n')
	}
	b.WriteString(blank)
	return b.String()
}

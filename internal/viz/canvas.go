// Package viz provides a braille-dot canvas for terminal scatter views.
package viz

import (
	"strings"

	"github.com/san-kum/qrand/internal/qrand"
)

// Braille Patterns: 2x4 dots per character cell, unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights a dot at sub-pixel coordinates; the canvas spans
// (Width*2) x (Height*4) sub-pixels.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// ScatterSequence renders discrete outcomes against their sample index, the
// most recent outcome at the right edge. Each outcome value maps to its own
// horizontal band, value 0 at the bottom.
func ScatterSequence(seq qrand.Sequence, alphabet qrand.Alphabet, width, height int) string {
	c := NewCanvas(width, height)
	if len(seq) == 0 {
		return c.String()
	}

	subW := width * 2
	subH := height * 4
	bands := alphabet.Size()

	for i, v := range seq {
		x := i * (subW - 1) / maxInt(len(seq)-1, 1)
		// Center of the band for this value, flipped so 0 sits at the bottom.
		y := subH - 1 - (v*subH/bands + subH/(2*bands))
		c.Set(x, y)
	}

	return c.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

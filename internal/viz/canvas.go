package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// layer says what occupies a cell when the canvas is styled.
type layer uint8

const (
	layerDots layer = iota
	layerLabel
	layerBox
)

// Canvas is a Braille dot grid with a text overlay. Overlay runes replace
// the dots of their cell.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	overlay       [][]rune
	layers        [][]layer
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:   w,
		Height:  h,
		Grid:    make([][]rune, h),
		overlay: make([][]rune, h),
		layers:  make([][]layer, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.overlay[i] = make([]rune, w)
		c.layers[i] = make([]layer, w)
	}
	c.Clear()
	return c
}

// Set sets a dot at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
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

// Unset clears a dot.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// Clear resets dots and overlay.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.overlay[i][j] = 0
			c.layers[i][j] = layerDots
		}
	}
}

// FillEllipse sets every sub-pixel whose center lies inside the ellipse
// centered at (cx, cy) with radii rx, ry, all in sub-pixels.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	x0 := int(math.Floor(cx - rx))
	x1 := int(math.Ceil(cx + rx))
	y0 := int(math.Floor(cy - ry))
	y1 := int(math.Ceil(cy + ry))
	for y := y0; y <= y1; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				c.Set(x, y)
			}
		}
	}
}

// Text writes s into the overlay starting at cell (col, row). Cells outside
// the canvas are skipped.
func (c *Canvas) Text(col, row int, s string, l layer) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.Width {
			c.overlay[row][col] = r
			c.layers[row][col] = l
		}
		col++
	}
}

// Cell returns the visible rune of a cell and the layer it belongs to.
func (c *Canvas) Cell(col, row int) (rune, layer) {
	if r := c.overlay[row][col]; r != 0 {
		return r, c.layers[row][col]
	}
	return c.Grid[row][col], layerDots
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r, _ := c.Cell(col, row)
			b.WriteRune(r)
		}
		b.WriteString("\n")
	}
	return b.String()
}

package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/samsweb/internal/config"
	"github.com/san-kum/samsweb/internal/motion"
)

// footerRows are reserved below the field for the key hints.
const footerRows = 1

// screen is the terminal side of the simulation: it maps cells to pixels,
// lays out the title box that balls bounce off, and remembers where each
// ball was last placed.
type screen struct {
	cell       config.CellConfig
	cols, rows int
	box        []string
	boxW, boxH int
	placed     []motion.Vec
	canvas     *Canvas
}

func newScreen(cell config.CellConfig, title, subtitle string) *screen {
	box := titleBox(title, subtitle)
	w := 0
	for _, line := range box {
		w = max(w, lipgloss.Width(line))
	}
	return &screen{cell: cell, box: box, boxW: w, boxH: len(box)}
}

// resize adopts a new terminal size. Positions are kept in pixels, so balls
// stay put and bounce back in if the field shrank past them.
func (s *screen) resize(cols, rows int) {
	s.cols, s.rows = cols, max(rows-footerRows, 0)
	s.canvas = NewCanvas(s.cols, s.rows)
}

func (s *screen) fieldRows() int { return s.rows }

func (s *screen) boxOrigin() (col, row int) {
	return (s.cols - s.boxW) / 2, (s.rows - s.boxH) / 2
}

// ObstacleBounds is derived from the current layout on every call.
func (s *screen) ObstacleBounds() motion.Rect {
	col, row := s.boxOrigin()
	return motion.RectFrom(
		float64(col)*s.cell.Width,
		float64(row)*s.cell.Height,
		float64(s.boxW)*s.cell.Width,
		float64(s.boxH)*s.cell.Height,
	)
}

func (s *screen) Viewport() motion.Size {
	return motion.Size{W: float64(s.cols) * s.cell.Width, H: float64(s.rows) * s.cell.Height}
}

func (s *screen) Place(i int, pos motion.Vec) {
	for len(s.placed) <= i {
		s.placed = append(s.placed, motion.Vec{})
	}
	s.placed[i] = pos
}

// pointer maps a terminal cell to the pixel at its center.
func (s *screen) pointer(col, row int) motion.Vec {
	return motion.Vec{
		X: (float64(col) + 0.5) * s.cell.Width,
		Y: (float64(row) + 0.5) * s.cell.Height,
	}
}

// origins lays n balls of diameter d out around the title box.
func (s *screen) origins(n int, d float64) []motion.Vec {
	return motion.Ring(s.Viewport(), n, d)
}

// draw paints the placed balls, their labels and the title box.
func (s *screen) draw(balls []motion.Ball) {
	c := s.canvas
	c.Clear()
	subW, subH := s.cell.Width/2, s.cell.Height/4
	for i, b := range balls {
		pos := b.Pos
		if i < len(s.placed) {
			pos = s.placed[i]
		}
		r := b.Radius()
		cx, cy := pos.X+r, pos.Y+r
		c.FillEllipse(cx/subW, cy/subH, r/subW, r/subH)

		label := []rune(b.Label)
		col := int(math.Floor(cx/s.cell.Width)) - len(label)/2
		row := int(math.Floor(cy / s.cell.Height))
		c.Text(col, row, string(label), layerLabel)
	}

	col, row := s.boxOrigin()
	for i, line := range s.box {
		c.Text(col, row+i, line, layerBox)
	}
}

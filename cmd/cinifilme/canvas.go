package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal cell of a canvas. cont marks the trailing cells of a
// wide rune.
type cell struct {
	r     rune
	style int
	cont  bool
}

// canvas is a fixed-size grid used to render partially scrolled cards. Text
// written outside the grid is clipped.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([][]cell, c.h)
	for y := range c.cells {
		row := make([]cell, c.w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

// put writes s at column x of line y. A wide rune cut by an edge is replaced
// by spaces.
func (c *canvas) put(x, y int, s string, style int) {
	if y < 0 || y >= c.h {
		return
	}
	row := c.cells[y]
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= c.w {
			row[x] = cell{r: r, style: style}
			for i := 1; i < rw; i++ {
				row[x+i] = cell{style: style, cont: true}
			}
		} else {
			for i := range rw {
				if xi := x + i; xi >= 0 && xi < c.w {
					row[xi] = cell{r: ' ', style: style}
				}
			}
		}
		x += rw
		if x >= c.w {
			return
		}
	}
}

// lines renders the grid, one string per line. Style 0 is unstyled.
func (c *canvas) lines(styles []lipgloss.Style) []string {
	out := make([]string, c.h)
	for y, row := range c.cells {
		var b strings.Builder
		var run []rune
		style := -1
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			if style <= 0 || style >= len(styles) {
				b.WriteString(s)
			} else {
				b.WriteString(styles[style].Render(s))
			}
			run = run[:0]
		}
		for _, cl := range row {
			if cl.cont {
				continue
			}
			if cl.style != style {
				flush()
				style = cl.style
			}
			run = append(run, cl.r)
		}
		flush()
		out[y] = b.String()
	}
	return out
}

// drawCard draws a card box at column x.
func drawCard(cv *canvas, x int, c *cardView, focused bool) {
	border, text, meta := cardStyleBorder, cardStylePlain, cardStyleMeta
	if focused {
		border = cardStyleFocused
	}
	if c.pressed {
		border, text, meta = cardStylePressed, cardStylePressed, cardStylePressed
	}

	inner := cardCols - 2
	rule := strings.Repeat("─", inner)
	cv.put(x, 0, "╭"+rule+"╮", border)
	cv.put(x, 3, "╰"+rule+"╯", border)

	info := c.media.Year
	if c.media.Rating != "" {
		if info != "" {
			info += "  "
		}
		info += "★ " + c.media.Rating
	}
	for y, line := range []struct {
		s     string
		style int
	}{{c.media.Title, text}, {info, meta}} {
		cv.put(x, y+1, "│", border)
		cv.put(x+1, y+1, " "+fit(line.s, inner-2)+" ", line.style)
		cv.put(x+cardCols-1, y+1, "│", border)
	}
}

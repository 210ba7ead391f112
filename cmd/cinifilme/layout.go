package main

import "math"

// Body layout, in lines. The hero comes first, then one block per carousel
// row, then the promo strip.
const (
	headerLines = 1

	heroLines        = 8
	heroTitleLine    = 0
	heroOverviewLine = 1
	overviewLines    = 4
	heroImageLine    = 5
	heroDotsLine     = 6
	heroFillLine     = 7

	rowLines        = 7
	rowCardsLine    = 1
	rowProgressLine = rowCardsLine + cardLines
	rowNavLine      = 1 // Within the card lines.
	heroNavLine     = 3

	promoLines = 2
)

// part is what a cell belongs to.
type part int

const (
	partNone part = iota
	partArea
	partPrev
	partNext
	partDot
	partCard
)

// hit is the result of hit-testing a cell. row is -1 for nothing, 0 for the
// hero and k for carousel row k-1.
type hit struct {
	row   int
	part  part
	index int
}

var noHit = hit{row: -1}

// rowTop returns the first body line of row (0 is the hero).
func rowTop(row int) int {
	if row == 0 {
		return 0
	}
	return heroLines + 1 + (row-1)*rowLines
}

// rowHeight returns the number of body lines of row, spacing excluded.
func rowHeight(row int) int {
	if row == 0 {
		return heroLines
	}
	return rowLines - 1
}

func bodyLines(rows int) int {
	return heroLines + 1 + rows*rowLines + promoLines
}

// dotsCol is the first column of the hero dots.
const dotsCol = navCols + 1

// hitTest resolves column x of body line y. itemWidth returns the measured
// item width of a row.
func (p *page) hitTest(x, y int, itemWidth func(id string) float64) hit {
	if y < 0 || x < 0 || x >= p.width {
		return noHit
	}

	if y < heroLines {
		h := hit{row: 0, part: partArea}
		switch {
		case x < navCols:
			h.part = partPrev
		case x >= p.width-navCols:
			h.part = partNext
		case y == heroDotsLine:
			if d := x - dotsCol; d >= 0 && d%2 == 0 && d/2 < len(p.hero.dots.dots) {
				h.part, h.index = partDot, d/2
			}
		}
		return h
	}

	rel := y - (heroLines + 1)
	if rel < 0 {
		return noHit
	}
	k := rel / rowLines
	if k >= len(p.rows) {
		return noHit
	}
	line := rel % rowLines
	if line < rowCardsLine || line > rowProgressLine {
		return noHit
	}

	r := p.rows[k]
	h := hit{row: k + 1, part: partArea}
	if line == rowProgressLine {
		return h
	}
	switch {
	case x < navCols:
		h.part = partPrev
	case x >= p.width-navCols:
		h.part = partNext
	default:
		w := itemWidth(r.id)
		if w <= 0 {
			return h
		}
		px := float64(x-navCols)*pxPerCol + r.track.displayed()
		i := int(math.Floor(px / w))
		if i >= 0 && i < len(r.track.cards) && px-float64(i)*w < cardCols*pxPerCol {
			h.part, h.index = partCard, i
		}
	}
	return h
}

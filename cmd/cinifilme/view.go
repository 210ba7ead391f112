package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.page == nil {
		return "Carregando catálogo…"
	}

	body := m.renderBody()
	h := m.bodyHeight()
	window := make([]string, 0, h)
	for i := m.scrollY; i < m.scrollY+h; i++ {
		if i < len(body) {
			window = append(window, body[i])
		} else {
			window = append(window, "")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		strings.Join(window, "\n"),
		m.renderFooter(),
	)
}

func (m appModel) renderHeader() string {
	return brandStyle.Render("CINIFILME") + "  " + sourceStyle.Render("fonte: "+string(m.cat.Source))
}

func (m appModel) renderBody() []string {
	lines := make([]string, 0, bodyLines(len(m.page.rows)))
	lines = append(lines, m.renderHero()...)
	lines = append(lines, "")
	for _, r := range m.page.rows {
		lines = append(lines, m.renderRow(r)...)
		lines = append(lines, "")
	}
	lines = append(lines, "", m.renderPromo())
	return lines
}

// navColumn renders one line of a nav control column. The glyph is only drawn
// when show is set.
func navColumn(glyph string, show, disabled, hovered bool) string {
	if !show {
		return strings.Repeat(" ", navCols)
	}
	style := navStyle
	switch {
	case disabled:
		style = navDisabledStyle
	case hovered:
		style = navHoverStyle
	}
	return " " + style.Render(glyph) + " "
}

func (m appModel) renderHero() []string {
	hv := m.page.hero
	cw := trackCols(m.width)
	mid := make([]string, heroLines)
	for i := range mid {
		mid[i] = strings.Repeat(" ", cw)
	}

	idx := m.slider.Current()
	slide := hv.active()
	if slide == nil {
		mid[heroTitleLine] = dimStyle.Render(fit("Sem destaques", cw))
	} else {
		mid[heroTitleLine] = heroTitleStyle.Render(fit(slide.media.Title, cw))

		text, ok := m.overview[idx]
		if !ok {
			text = renderMarkdown(slide.media.Overview)
			m.overview[idx] = text
		}
		block := lipgloss.NewStyle().
			Width(cw).MaxWidth(cw).
			Height(overviewLines).MaxHeight(overviewLines).
			Render(text)
		for i, l := range strings.Split(block, "\n") {
			if i < overviewLines {
				mid[heroOverviewLine+i] = l
			}
		}

		mid[heroImageLine] = heroImageStyle.Render(fit(imageName(slide.media.HeroImage()), cw))
	}

	var dots strings.Builder
	dots.WriteString(" ")
	for i, d := range hv.dots.dots {
		if i > 0 {
			dots.WriteString(" ")
		}
		if d.active {
			dots.WriteString(dotActiveStyle.Render("●"))
		} else {
			dots.WriteString(dotStyle.Render("○"))
		}
	}
	if pad := cw - (dotsCol - navCols) - max(2*len(hv.dots.dots)-1, 0); pad > 0 {
		dots.WriteString(strings.Repeat(" ", pad))
	}
	mid[heroDotsLine] = dots.String()
	mid[heroFillLine] = m.heroBar.ViewAs(hv.fill.fraction())

	lines := make([]string, heroLines)
	for i, l := range mid {
		lines[i] = navColumn("‹", i == heroNavLine, false, hv.hovered) + l + navColumn("›", i == heroNavLine, false, hv.hovered)
	}
	return lines
}

func (m appModel) renderRow(r *rowView) []string {
	lines := make([]string, 0, rowLines-1)

	title := sectionTitleStyle
	if r.focused {
		title = sectionTitleFocusedStyle
	}
	lines = append(lines, strings.Repeat(" ", navCols)+title.Render(fit(r.title, trackCols(m.width))))

	st, _ := m.mgr.State(r.id)
	cv := newCanvas(r.track.cols, cardLines)
	off := r.track.displayed()
	for i, c := range r.track.cards {
		x := int(math.Round((float64(i)*st.ItemWidth - off) / pxPerCol))
		if x >= cv.w || x+cardCols <= 0 {
			continue
		}
		drawCard(cv, x, c, r.focused && i == st.PageIndex)
	}
	if len(r.track.cards) == 0 {
		cv.put(0, 1, " Nothing here yet", cardStyleBorder)
	}
	for i, l := range cv.lines(cardStyles) {
		lines = append(lines,
			navColumn("‹", i == rowNavLine, r.prev.disabled, r.hovered)+l+navColumn("›", i == rowNavLine, r.next.disabled, r.hovered))
	}

	pad := strings.Repeat(" ", navCols)
	lines = append(lines, pad+m.rowBar.ViewAs(r.progress.fraction)+pad)
	return lines
}

func (m appModel) renderPromo() string {
	const label = "Em cartaz ▸ "
	if m.promoLoop == "" {
		return ""
	}
	w := m.width - len([]rune(label))
	return promoStyle.Render(label + marquee(m.promoLoop, m.frame, w))
}

func (m appModel) renderFooter() string {
	status := ""
	if text, ok := m.region.Latest(); ok {
		status = statusStyle.Render(truncate(text, m.width))
	} else if m.focus > 0 {
		status = dimStyle.Render(truncate("foco: "+m.page.rows[m.focus-1].title, m.width))
	} else if m.focus == 0 {
		status = dimStyle.Render("foco: destaques")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		attributionStyle.Render(truncate(m.cat.Attribution, m.width)),
		status,
		m.help.View(m.keys),
	)
}

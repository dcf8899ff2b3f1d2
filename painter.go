package termcanvas

// linkAccent is the fixed underline color for hovered hyperlinks and
// regex-matched links.
var linkAccent = Color{0x4A, 0x90, 0xE2}

// renderRow paints one display row in two passes: all backgrounds first,
// then text and decorations. Diacritics in complex scripts may extend into
// the previous cell's visual area; painting every background before any
// text prevents later cells from erasing such overflow.
//
// srcRow is the buffer-relative row when fromBuffer is true; scrollback
// rows carry no grapheme storage and pass fromBuffer false.
func (r *Renderer) renderRow(line []Cell, row, srcRow int, fromBuffer bool) {
	cw := float64(r.metrics.Width)
	ch := float64(r.metrics.Height)
	rowY := float64(row) * ch
	s := r.surface

	// Pass 1: backgrounds. The row is cleared to the theme background so
	// cells with a default background show through without their own fill.
	s.SetFillColor(r.theme.Background)
	s.FillRect(0, rowY, float64(len(line))*cw, ch)

	for col, cell := range line {
		if cell.Width == 0 {
			continue
		}
		cellX := float64(col) * cw
		cellW := float64(cell.Width) * cw
		if r.cellSelected(col, row) {
			s.SetFillColor(r.theme.SelectionBackground)
			s.FillRect(cellX, rowY, cellW, ch)
			continue
		}
		_, bg := cellColors(cell)
		if bg != (Color{}) {
			s.SetFillColor(bg)
			s.FillRect(cellX, rowY, cellW, ch)
		}
	}

	// Pass 2: text and decorations.
	for col, cell := range line {
		if cell.Width == 0 {
			continue
		}
		cellX := float64(col) * cw
		cellW := float64(cell.Width) * cw

		fg, _ := cellColors(cell)
		if r.cellSelected(col, row) {
			fg = r.theme.SelectionForeground
		}

		prevAlpha := s.GlobalAlpha()
		if cell.Flags&FlagFaint != 0 {
			s.SetGlobalAlpha(prevAlpha * 0.5)
		}

		if cell.Rune != 0 && cell.Flags&FlagInvisible == 0 {
			r.drawCellGlyph(cell, fg, cellX, rowY, cellW, srcRow, col, fromBuffer)
		}

		if cell.Flags&FlagUnderline != 0 {
			s.SetFillColor(fg)
			s.FillRect(cellX, rowY+float64(r.metrics.Baseline)+2, cellW, 1)
		}
		if cell.Flags&FlagStrikethrough != 0 {
			s.SetFillColor(fg)
			s.FillRect(cellX, rowY+ch/2, cellW, 1)
		}

		s.SetGlobalAlpha(prevAlpha)

		hovered := cell.HyperlinkID != 0 && cell.HyperlinkID == r.hoveredHyperlinkID
		if !hovered && r.hoveredLinkRange != nil && r.hoveredLinkRange.Contains(col, row) {
			hovered = true
		}
		if hovered {
			s.SetFillColor(linkAccent)
			s.FillRect(cellX, rowY+float64(r.metrics.Baseline)+2, cellW, 1)
		}
	}
}

// drawCellGlyph draws one cell's content: procedurally for classified
// codepoints, through the host text API otherwise.
func (r *Renderer) drawCellGlyph(cell Cell, fg Color, cellX, rowY, cellW float64, srcRow, col int, fromBuffer bool) {
	s := r.surface
	ch := float64(r.metrics.Height)

	if fam := classifyRune(cell.Rune); fam != familyText {
		s.SetFillColor(fg)
		s.SetStrokeColor(fg)
		drawGlyph(s, fam, cell.Rune, cellX, rowY, cellW, ch)
		return
	}

	text := string(cell.Rune)
	if cell.GraphemeLen > 0 && fromBuffer {
		if gp, ok := r.curBuffer.(GraphemeProvider); ok {
			if full := gp.GraphemeString(srcRow, col); full != "" {
				text = full
			}
		}
	}

	s.SetFont(FontSpec{
		Family: r.fontFamily,
		Size:   r.fontSize,
		Bold:   cell.Flags&FlagBold != 0,
		Italic: cell.Flags&FlagItalic != 0,
	})
	s.SetFillColor(fg)
	s.FillText(text, cellX, rowY+float64(r.metrics.Baseline))
}

// cellColors resolves the effective foreground/background pair, applying
// the inverse flag before any other color decision.
func cellColors(cell Cell) (fg, bg Color) {
	fg, bg = cell.Foreground, cell.Background
	if cell.Flags&FlagInverse != 0 {
		fg, bg = bg, fg
	}
	return fg, bg
}

// cellSelected reports whether (col,row) lies inside the frame's cached
// selection span. The span is a stream selection: full rows between the
// endpoints, clipped by the start and end columns on the boundary rows.
func (r *Renderer) cellSelected(col, row int) bool {
	sel := r.curSelection
	if sel == nil {
		return false
	}
	if row < sel.StartRow || row > sel.EndRow {
		return false
	}
	if row == sel.StartRow && col < sel.StartCol {
		return false
	}
	if row == sel.EndRow && col > sel.EndCol {
		return false
	}
	return true
}

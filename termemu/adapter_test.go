package termemu

import (
	"testing"

	"github.com/phroun/purfecterm"

	"github.com/phroun/termcanvas"
)

func cellsFromRunes(rs ...rune) []termcanvas.Cell {
	out := make([]termcanvas.Cell, len(rs))
	for i, r := range rs {
		out[i] = termcanvas.Cell{Width: 1}
		if r != ' ' {
			out[i].Rune = r
		}
	}
	return out
}

func TestMarkWideSpacers(t *testing.T) {
	line := cellsFromRunes('a', 0x4E16, ' ', 'b')
	markWideSpacers(line)

	if line[0].Width != 1 {
		t.Error("narrow cell widened")
	}
	if line[1].Width != 2 {
		t.Error("CJK cell not marked double width")
	}
	if line[2].Width != 0 {
		t.Error("trailing cell not marked as spacer")
	}
	if line[3].Width != 1 {
		t.Error("cell after the spacer affected")
	}
}

func TestMarkWideSpacersNeedsBlankFollower(t *testing.T) {
	// A wide rune immediately followed by content keeps single width;
	// the emulator did not reserve a spacer cell for it.
	line := cellsFromRunes(0x4E16, 'x')
	markWideSpacers(line)
	if line[1].Width == 0 {
		t.Error("spacer invented over an occupied cell")
	}
	if line[0].Width != 1 {
		t.Errorf("width = %d, want 1 without a reserved spacer", line[0].Width)
	}
}

func TestMarkWideSpacersAtLineEnd(t *testing.T) {
	line := cellsFromRunes('a', 0x4E16)
	markWideSpacers(line) // must not index past the end
	if line[1].Width != 1 {
		t.Error("wide rune at line end cannot claim a spacer")
	}
}

func TestSelectionDiffRows(t *testing.T) {
	// A fresh buffer has no selection, so only the previous span is dirty.
	a := New(purfecterm.NewBuffer(10, 4, 10))
	a.prevSel = termcanvas.SelectionCoords{StartRow: 1, EndRow: 2}
	a.prevHadSel = true

	rows := map[int]bool{}
	for _, y := range a.DirtySelectionRows() {
		rows[y] = true
	}
	if !rows[1] || !rows[2] {
		t.Error("previous selection rows not tracked")
	}
}

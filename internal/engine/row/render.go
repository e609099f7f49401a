package row

import "strings"

// Render returns the row's text with tabs expanded, starting at or
// after display column from. Tab expansion widths come from the index
// table, so no tab width argument is needed here. When from falls
// inside a wide cell's two-column span or inside an expanded tab, the
// result is prefixed with a single literal space standing in for the
// visible remainder of that cell, and the cut advances to the next
// boundary. A from at or past the row's width yields the empty string.
func (r *Row) Render(from int) string {
	if from < 0 {
		from = 0
	}
	if from >= r.Width() {
		return ""
	}
	var b strings.Builder
	for i, cell := range r.cells {
		col, next := r.indices[i], r.indices[i+1]
		switch {
		case next <= from:
			// Entirely left of the window.
		case col < from:
			// The cut lands inside this cell.
			b.WriteByte(' ')
		case cell == "\t":
			b.WriteString(strings.Repeat(" ", next-col))
		default:
			b.WriteString(cell)
		}
	}
	return b.String()
}

// RenderFull returns the entire row with tabs expanded to spaces.
func (r *Row) RenderFull() string {
	return r.Render(0)
}

// RenderRaw returns the row's text exactly as stored, with no tab
// expansion. Disk I/O uses this form so saved tabs remain tabs.
func (r *Row) RenderRaw() string {
	return strings.Join(r.cells, "")
}

package row

import (
	"slices"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/kiln/internal/engine/core"
)

// Row is a single line of a document: grapheme-cluster cells plus the
// cumulative display-width table described in the package comment.
//
// Row is not safe for concurrent use; it is owned and serialized by the
// Document that holds it.
type Row struct {
	cells    []string
	indices  []int
	modified bool
}

// New creates a row from raw text, segmented into grapheme clusters.
// Tab width must be the width in effect for the owning document, since
// the index table is computed with it.
func New(raw string, tabWidth int) *Row {
	return fromCells(splitCells(raw), tabWidth)
}

func fromCells(cells []string, tabWidth int) *Row {
	return &Row{
		cells:   cells,
		indices: buildIndices(cells, tabWidth),
	}
}

// splitCells segments raw text into grapheme clusters so combining
// sequences occupy a single cell.
func splitCells(raw string) []string {
	if raw == "" {
		return nil
	}
	cells := make([]string, 0, len(raw))
	g := uniseg.NewGraphemes(raw)
	for g.Next() {
		cells = append(cells, g.Str())
	}
	return cells
}

// cellWidth returns the display width of a single cell: the tab width
// for tabs, otherwise the cluster's terminal width (0, 1 or 2).
func cellWidth(cell string, tabWidth int) int {
	if cell == "\t" {
		return tabWidth
	}
	return runewidth.StringWidth(cell)
}

// buildIndices computes the full cumulative width table for cells.
func buildIndices(cells []string, tabWidth int) []int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	indices := make([]int, len(cells)+1)
	for i, cell := range cells {
		indices[i+1] = indices[i] + cellWidth(cell, tabWidth)
	}
	return indices
}

// Len returns the number of cells in the row (character count, not
// display width).
func (r *Row) Len() int {
	return len(r.cells)
}

// IsEmpty returns true if the row has no cells.
func (r *Row) IsEmpty() bool {
	return len(r.cells) == 0
}

// Width returns the total display width of the row.
func (r *Row) Width() int {
	return r.indices[len(r.cells)]
}

// Cell returns the cell at character index i, or the empty string if i
// is out of range.
func (r *Row) Cell(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// CellWidth returns the display width of the cell at character index i.
func (r *Row) CellWidth(i int) int {
	return r.indices[i+1] - r.indices[i]
}

// DisplayCol returns the display column at which cell idx starts.
// Indices at or beyond the end of the row map to the total width.
func (r *Row) DisplayCol(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx >= len(r.indices) {
		return r.Width()
	}
	return r.indices[idx]
}

// IsBoundary returns true if display column x falls exactly on a cell
// boundary. Columns inside a wide cell or an expanded tab are not
// boundaries.
func (r *Row) IsBoundary(x int) bool {
	return slices.Contains(r.indices, x)
}

// CharPtr returns the character index of the cell starting at display
// column x. Columns at or past the row's width clamp to the cell count,
// so callers can recover a valid position after scrolling past row end.
func (r *Row) CharPtr(x int) int {
	if x >= r.Width() {
		return r.Len()
	}
	for i, col := range r.indices {
		if col == x {
			return i
		}
	}
	return 0
}

// Modified returns true if the row has been edited. Clients use this as
// a dirty flag for caching; it does not affect correctness.
func (r *Row) Modified() bool {
	return r.modified
}

// ResetModified clears the dirty flag.
func (r *Row) ResetModified() {
	r.modified = false
}

// Insert splices text into the row at character index start. Bounds are
// checked against the display width rather than the cell count, to
// match how callers address positions; the splice point itself clamps
// to the cell count. The index table is recomputed in full.
func (r *Row) Insert(start int, text string, tabWidth int) error {
	if start < 0 || start > r.Width() {
		return core.ErrOutOfRange
	}
	if start > len(r.cells) {
		start = len(r.cells)
	}
	r.cells = slices.Insert(r.cells, start, splitCells(text)...)
	r.indices = buildIndices(r.cells, tabWidth)
	r.modified = true
	return nil
}

// Remove deletes the cells in rng. The index table is updated in place:
// entries after the removed slice shift down by the removed span's
// width, so no full recompute is needed. The range end clamps to the
// cell count.
func (r *Row) Remove(rng Range) error {
	if rng.Start < 0 || rng.Start > r.Width() {
		return core.ErrOutOfRange
	}
	start, end := rng.Start, rng.End
	if start > len(r.cells) {
		start = len(r.cells)
	}
	if end > len(r.cells) {
		end = len(r.cells)
	}
	if end < start {
		end = start
	}
	span := r.indices[end] - r.indices[start]
	r.cells = append(r.cells[:start], r.cells[end:]...)
	kept := r.indices[:start+1]
	for _, col := range r.indices[end+1:] {
		kept = append(kept, col-span)
	}
	r.indices = kept
	r.modified = true
	return nil
}

// Split divides the row at character index idx. The left row keeps
// cells [0, idx) and is marked modified; the right row gets the rest
// with its index table re-based to start at zero, since rows are
// independently addressed.
func (r *Row) Split(idx, tabWidth int) (*Row, *Row, error) {
	if idx < 0 || idx > len(r.cells) {
		return nil, nil, core.ErrOutOfRange
	}
	left := fromCells(slices.Clone(r.cells[:idx]), tabWidth)
	left.modified = true
	right := fromCells(slices.Clone(r.cells[idx:]), tabWidth)
	return left, right, nil
}

// Splice concatenates r and other into a new row, shifting other's
// index table by r's total width before merging the entries. Neither
// operand is mutated; the caller is responsible for detaching the
// source rows from the document.
func (r *Row) Splice(other *Row) *Row {
	cells := make([]string, 0, len(r.cells)+len(other.cells))
	cells = append(cells, r.cells...)
	cells = append(cells, other.cells...)
	shift := r.Width()
	indices := make([]int, 0, len(cells)+1)
	indices = append(indices, r.indices...)
	for _, col := range other.indices[1:] {
		indices = append(indices, col+shift)
	}
	return &Row{cells: cells, indices: indices, modified: true}
}

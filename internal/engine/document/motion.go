package document

import (
	"github.com/dshills/kiln/internal/engine/core"
)

// Goto moves the cursor to a (character index, row index) location,
// repositioning vertically first and horizontally second.
func (d *Document) Goto(loc core.Loc) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gotoLoc(loc)
}

// GotoX moves the cursor to character index x within the current row.
func (d *Document) GotoX(x int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gotoX(x)
}

// GotoY moves the cursor to row index y.
func (d *Document) GotoY(y int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gotoY(y)
}

func (d *Document) gotoLoc(loc core.Loc) error {
	if err := d.gotoY(loc.Y); err != nil {
		return err
	}
	return d.gotoX(loc.X)
}

// gotoX jumps to character index x on the current row. The target
// display column is looked up in the row's index table; columns inside
// the left viewport-width of the row reset the scroll, columns already
// in the [offset, offset+width) window move only the cursor, and
// everything else anchors the target to the viewport's left edge.
func (d *Document) gotoX(x int) error {
	if d.charPtr == x {
		return nil
	}
	r, err := d.currentRow()
	if err != nil {
		return err
	}
	if x < 0 || x > r.Len() {
		return core.ErrOutOfRange
	}
	d.charPtr = x
	col := r.DisplayCol(x)
	switch {
	case col < d.size.W:
		d.offset.X = 0
		d.cursor.X = col
	case col >= d.offset.X && col < d.offset.X+d.size.W:
		d.cursor.X = col - d.offset.X
	default:
		d.cursor.X = 0
		d.offset.X = col
	}
	return nil
}

// gotoY is the vertical counterpart of gotoX, using row indices since
// rows have uniform height. After repositioning it re-snaps the
// horizontal position and recomputes the character pointer, because the
// destination row may be shorter or carry different wide cells at the
// same display column.
func (d *Document) gotoY(y int) error {
	if d.loc().Y == y {
		return nil
	}
	if y < 0 || y > len(d.rows) {
		return core.ErrOutOfRange
	}
	switch {
	case y < d.size.H:
		d.offset.Y = 0
		d.cursor.Y = y
	case y >= d.offset.Y && y < d.offset.Y+d.size.H:
		d.cursor.Y = y - d.offset.Y
	default:
		d.cursor.Y = 0
		d.offset.Y = y
	}
	if err := d.snap(); err != nil {
		return err
	}
	r, err := d.currentRow()
	if err != nil {
		return err
	}
	d.charPtr = r.CharPtr(d.loc().X)
	return nil
}

// MoveLeft steps the cursor one character left, scrolling when the
// cursor is pinned at the viewport's left edge. Returns StatusStartOfRow
// without moving when already at the row start.
func (d *Document) MoveLeft() (core.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.moveLeft()
}

// MoveRight steps the cursor one character right, scrolling when the
// cursor is pinned at the viewport's right edge. Returns StatusEndOfRow
// without moving when already at the row end.
func (d *Document) MoveRight() (core.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.moveRight()
}

// MoveUp steps the cursor one row up, scrolling when pinned at the
// viewport's top edge. Returns StatusStartOfDocument without moving when on
// the first row.
func (d *Document) MoveUp() (core.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.moveUp()
}

// MoveDown steps the cursor one row down, scrolling when pinned at the
// viewport's bottom edge. Returns StatusEndOfDocument without moving when on
// the last row.
func (d *Document) MoveDown() (core.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.moveDown()
}

func (d *Document) moveLeft() (core.Status, error) {
	if d.charPtr == 0 {
		return core.StatusStartOfRow, nil
	}
	r, err := d.currentRow()
	if err != nil {
		return core.StatusNone, err
	}
	// Step over the full display width of the cell to the left: one
	// column for narrow cells, two for wide, the tab width for tabs.
	for i := 0; i < r.CellWidth(d.charPtr-1); i++ {
		if d.cursor.X == 0 {
			d.offset.X--
		} else {
			d.cursor.X--
		}
	}
	d.charPtr--
	return core.StatusNone, nil
}

func (d *Document) moveRight() (core.Status, error) {
	r, err := d.currentRow()
	if err != nil {
		return core.StatusNone, err
	}
	if d.charPtr == r.Len() {
		return core.StatusEndOfRow, nil
	}
	for i := 0; i < r.CellWidth(d.charPtr); i++ {
		if d.cursor.X == d.size.W-1 {
			d.offset.X++
		} else {
			d.cursor.X++
		}
	}
	d.charPtr++
	return core.StatusNone, nil
}

func (d *Document) moveUp() (core.Status, error) {
	if d.loc().Y == 0 {
		return core.StatusStartOfDocument, nil
	}
	if d.cursor.Y == 0 {
		d.offset.Y--
	} else {
		d.cursor.Y--
	}
	return d.landOnRow()
}

func (d *Document) moveDown() (core.Status, error) {
	if d.loc().Y >= len(d.rows)-1 {
		return core.StatusEndOfDocument, nil
	}
	if d.cursor.Y == d.size.H-1 {
		d.offset.Y++
	} else {
		d.cursor.Y++
	}
	return d.landOnRow()
}

// landOnRow finishes a vertical move: snap the horizontal position to a
// cell boundary on the destination row and recompute the character
// pointer from its index table.
func (d *Document) landOnRow() (core.Status, error) {
	if err := d.snap(); err != nil {
		return core.StatusNone, err
	}
	r, err := d.currentRow()
	if err != nil {
		return core.StatusNone, err
	}
	d.charPtr = r.CharPtr(d.loc().X)
	return core.StatusNone, nil
}

// snap shifts the cursor backward one display column at a time until
// the absolute column lands on a cell boundary of the current row. A
// column past the row's end walks back to the row's final boundary,
// degenerating to column zero on an empty row.
func (d *Document) snap() error {
	r, err := d.currentRow()
	if err != nil {
		return err
	}
	for x := d.loc().X; !r.IsBoundary(x); x-- {
		if d.cursor.X == 0 {
			d.offset.X--
		} else {
			d.cursor.X--
		}
	}
	return nil
}

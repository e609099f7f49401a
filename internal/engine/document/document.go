package document

import (
	"sync"

	"github.com/dshills/kiln/internal/engine/core"
	"github.com/dshills/kiln/internal/engine/row"
)

// DefaultTabWidth is the tab width used when none is configured.
const DefaultTabWidth = 4

// FileInfo describes the file a document is associated with.
type FileInfo struct {
	// Path is the associated file path; empty for unsaved buffers.
	Path string

	// DOS is true when the file uses CRLF line endings.
	DOS bool

	// TabWidth is the display width of a tab, in columns. It binds at
	// row-creation time, so it must be configured before rows are
	// populated.
	TabWidth int
}

// Document owns an ordered collection of rows plus cursor and viewport
// state, and executes atomic edit events against them.
type Document struct {
	mu       sync.RWMutex
	info     FileInfo
	rows     []*row.Row
	size     core.Size
	cursor   core.Loc
	offset   core.Loc
	charPtr  int
	modified bool
}

// New creates an empty document. The size is the viewport the document
// has to render into; clients carving out status lines or tab bars
// should subtract them from the height first.
func New(size core.Size, opts ...Option) *Document {
	d := &Document{
		info: FileInfo{TabWidth: DefaultTabWidth},
		size: size,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewFromString creates a document with initial content, detecting the
// line-ending style from the text. The document has no associated path.
func NewFromString(raw string, size core.Size, opts ...Option) *Document {
	d := New(size, opts...)
	d.setText(raw)
	return d
}

// Info returns a copy of the document's file information.
func (d *Document) Info() FileInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.info
}

// SetTabWidth sets the tab width for rows created from now on. Set it
// immediately after construction, before any row exists; index tables
// are computed with the width in effect when the row is created.
func (d *Document) SetTabWidth(w int) {
	if w < 1 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.info.TabWidth = w
}

// Size returns the viewport size.
func (d *Document) Size() core.Size {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.size
}

// Resize updates the viewport size to match the client's terminal.
func (d *Document) Resize(size core.Size) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if size.W < 1 {
		size.W = 1
	}
	if size.H < 1 {
		size.H = 1
	}
	d.size = size
}

// Cursor returns the cursor position within the viewport.
func (d *Document) Cursor() core.Loc {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cursor
}

// Offset returns the viewport's scroll offset.
func (d *Document) Offset() core.Loc {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.offset
}

// Loc returns the absolute display position: cursor plus offset.
func (d *Document) Loc() core.Loc {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loc()
}

func (d *Document) loc() core.Loc {
	return d.cursor.Add(d.offset)
}

// CharPtr returns the character index of the cursor within the current
// row; this is the authoritative horizontal position.
func (d *Document) CharPtr() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.charPtr
}

// Modified returns true if the document has been edited since it was
// opened or last saved.
func (d *Document) Modified() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.modified
}

// RowCount returns the number of rows in the document.
func (d *Document) RowCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rows)
}

// Row returns the row at index i.
func (d *Document) Row(i int) (*row.Row, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.row(i)
}

// CurrentRow returns the row at the absolute cursor position.
func (d *Document) CurrentRow() (*row.Row, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.currentRow()
}

func (d *Document) row(i int) (*row.Row, error) {
	if i < 0 || i >= len(d.rows) {
		return nil, core.ErrOutOfRange
	}
	return d.rows[i], nil
}

func (d *Document) currentRow() (*row.Row, error) {
	return d.row(d.loc().Y)
}

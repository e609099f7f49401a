package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/kiln/internal/engine/core"
	"github.com/dshills/kiln/internal/engine/row"
)

// Open reads the file at path into the document, replacing its content.
// The line-ending style is detected from the text, rows are split on
// line-ending boundaries with the trailing empty row from a final
// newline dropped, and cursor, offset, character pointer and modified
// flag are reset. The configured tab width is preserved across opens.
func (d *Document) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setText(string(data))
	d.info.Path = path
	return nil
}

// setText replaces the document content, resetting cursor state and
// dropping any associated path. Callers hold the lock or own the
// document exclusively (construction).
func (d *Document) setText(raw string) {
	d.info = FileInfo{
		DOS:      strings.Contains(raw, "\r\n"),
		TabWidth: d.info.TabWidth,
	}
	d.cursor = core.Loc{}
	d.offset = core.Loc{}
	d.charPtr = 0
	d.modified = false
	d.rows = d.rawToRows(raw)
}

// rawToRows splits raw text into rows on CRLF or LF boundaries. A
// trailing empty row produced by a final line ending is dropped; Render
// re-appends the trailing ending on the way out.
func (d *Document) rawToRows(raw string) []*row.Row {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([]*row.Row, len(lines))
	for i, line := range lines {
		rows[i] = row.New(line, d.info.TabWidth)
	}
	return rows
}

// Save writes the document back to its associated path and clears the
// modified flag. Returns core.ErrNoFileName when the document has no
// path; the client decides recovery, typically by prompting for one.
func (d *Document) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.info.Path == "" {
		return core.ErrNoFileName
	}
	if err := os.WriteFile(d.info.Path, []byte(d.render()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", d.info.Path, err)
	}
	d.modified = false
	return nil
}

// SaveAs writes the document to an arbitrary path without changing the
// document's associated path or its modified flag.
func (d *Document) SaveAs(path string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if err := os.WriteFile(path, []byte(d.render()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Render serializes the document using its line-ending convention:
// each row in raw form (tabs preserved), joined by the line ending,
// with a trailing line ending appended.
func (d *Document) Render() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.render()
}

func (d *Document) render() string {
	if len(d.rows) == 0 {
		return ""
	}
	ending := "\n"
	if d.info.DOS {
		ending = "\r\n"
	}
	var b strings.Builder
	for _, r := range d.rows {
		b.WriteString(r.RenderRaw())
		b.WriteString(ending)
	}
	return b.String()
}

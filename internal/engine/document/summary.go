package document

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// summarySampleRows bounds how much content the file-type classifier
// sees; enough for shebangs and headers without serializing the file.
const summarySampleRows = 16

// Summary is the status-line view of a document, consumed by rendering
// clients.
type Summary struct {
	// Row is the current row, 1-based.
	Row int
	// Col is the current display column, 0-based.
	Col int
	// Rows is the total row count.
	Rows int
	// File is the bare file name; empty for unsaved buffers.
	File string
	// Path is the full associated path; empty for unsaved buffers.
	Path string
	// FileType is the detected language label, from the file name and
	// a sample of the content.
	FileType string
	// Extension is the raw file extension without the leading dot.
	Extension string
	// Modified is true when there are unsaved edits.
	Modified bool
}

// Summary returns the current status-line summary.
func (d *Document) Summary() Summary {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s := Summary{
		Row:      d.loc().Y + 1,
		Col:      d.loc().X,
		Rows:     len(d.rows),
		Modified: d.modified,
	}
	if d.info.Path == "" {
		return s
	}
	s.Path = d.info.Path
	s.File = filepath.Base(d.info.Path)
	s.Extension = strings.TrimPrefix(filepath.Ext(s.File), ".")
	s.FileType = enry.GetLanguage(s.File, []byte(d.sample()))
	return s
}

// sample returns the first few rows of content for language detection.
func (d *Document) sample() string {
	n := len(d.rows)
	if n > summarySampleRows {
		n = summarySampleRows
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = d.rows[i].RenderRaw()
	}
	return strings.Join(parts, "\n")
}

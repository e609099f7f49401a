package document

// Option configures a Document at construction time, before any rows
// are created.
type Option func(*Document)

// WithTabWidth sets the tab width used when building row index tables.
// Widths below one are ignored.
func WithTabWidth(w int) Option {
	return func(d *Document) {
		if w >= 1 {
			d.info.TabWidth = w
		}
	}
}

// WithDOSLineEndings selects CRLF output for documents built up from
// events rather than from existing content. Opening a file or loading
// content re-detects the style from the text.
func WithDOSLineEndings() Option {
	return func(d *Document) {
		d.info.DOS = true
	}
}

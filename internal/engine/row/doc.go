// Package row provides the Row type: one line of a document, stored as
// grapheme-cluster cells alongside a cumulative display-width table.
//
// The width table (the "indices") is the heart of the engine's
// coordinate handling. It holds len+1 entries where entry i is the
// display column at which cell i starts, so entry 0 is always zero and
// the final entry is the row's total display width. Tabs contribute the
// configured tab width, East-Asian wide characters contribute two
// columns, and combining sequences collapse into the width of their
// cluster. The table makes both directions of the character-index <->
// display-column conversion a direct lookup.
//
// Rows are plain values: they hold no reference to a document or its
// configuration. Every operation whose result depends on tab width
// takes the width as an explicit argument, which keeps rows freely
// constructible and independently testable.
package row

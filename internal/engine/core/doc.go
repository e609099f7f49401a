// Package core provides the shared value types of the kiln engine:
// locations and sizes, the advisory Status signals returned by movement
// and edit operations, the atomic edit Event model, and the sentinel
// errors surfaced to clients.
//
// Position Types:
//
// The engine works in three coordinate systems that core keeps distinct:
//
//   - Character index: ordinal position of a cell within a row,
//     independent of its rendered width.
//   - Display column: horizontal position in terminal cells, after tab
//     expansion and wide-character accounting.
//   - Screen coordinate: cursor position within the viewport plus the
//     scroll offset; their sum is the absolute display position.
//
// A Loc is interpreted in whichever space the consuming operation
// documents; events address (character index, row index) pairs.
package core

// Package document provides the Document type: an ordered collection of
// rows plus the cursor and viewport state that keeps the engine's three
// coordinate spaces in lockstep.
//
// The invariants maintained after every cursor-moving operation:
//
//   - absolute display column = cursor.X + offset.X
//   - absolute row = cursor.Y + offset.Y
//   - the character pointer always equals the current row's CharPtr of
//     the absolute display column
//
// Execute is the single mutating entry point. It applies an atomic edit
// event, delegates to the affected rows, keeps the cursor consistent,
// and reports an advisory Status when a navigational boundary was hit.
//
// All Document methods are thread-safe, though the expected discipline
// is one client per document; exported methods lock, lowercase helpers
// assume the lock is held.
package document

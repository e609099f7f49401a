// Package engine composes a document and its undo/redo journal behind
// one type. Clients feed atomic edit events to Execute; the engine
// fills in the payloads their inverses need, applies them to the
// document, records them into the edit stack, and delimits undo units
// according to a configurable commit policy.
//
// The engine serializes access per document; separate engines are
// fully independent.
package engine

// Package history provides the EditStack, an undo/redo journal over the
// engine's atomic edit events.
//
// Events accumulate in an open patch until the client commits, so the
// client controls undo granularity: committing after whitespace groups
// a typed word into one undo step, committing after structural events
// keeps row splits separate. Undo pops a committed patch and hands its
// events back in reverse order; the caller replays each one through its
// inverse. Redo hands the patch back in forward order for replay as-is.
//
// A fresh edit invalidates the redo side: redo is only coherent
// immediately after an undo whose state the document still reflects.
package history

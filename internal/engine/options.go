package engine

import (
	"github.com/dshills/kiln/internal/engine/core"
	"github.com/dshills/kiln/internal/engine/document"
	"github.com/dshills/kiln/internal/engine/history"
)

// CommitPolicy decides, after each recorded event, whether the open
// patch should be committed as one undo unit. Committing after
// whitespace groups a typed word into a single undo step; committing
// after structural events keeps row edits separate.
type CommitPolicy func(ev core.Event) bool

// CommitWords is the default policy: commit after whitespace inserts
// and after any structural row event.
func CommitWords(ev core.Event) bool {
	switch e := ev.(type) {
	case core.Insert:
		return e.Cell == " " || e.Cell == "\t"
	case core.InsertRow, core.RemoveRow, core.SplitDown, core.SpliceUp:
		return true
	default:
		return false
	}
}

// CommitEachEvent commits after every event, making each keystroke its
// own undo step.
func CommitEachEvent(core.Event) bool {
	return true
}

// CommitManually never auto-commits; the client delimits patches with
// explicit Commit calls.
func CommitManually(core.Event) bool {
	return false
}

type settings struct {
	tabWidth int
	dos      bool
	maxUndo  int
	policy   CommitPolicy
}

func defaultSettings() settings {
	return settings{
		tabWidth: document.DefaultTabWidth,
		maxUndo:  history.DefaultMaxPatches,
		policy:   CommitWords,
	}
}

func (s settings) docOptions() []document.Option {
	opts := []document.Option{document.WithTabWidth(s.tabWidth)}
	if s.dos {
		opts = append(opts, document.WithDOSLineEndings())
	}
	return opts
}

// Option configures an Engine.
type Option func(*settings)

// WithTabWidth sets the tab width, which binds before any row is
// created. Widths below one are ignored.
func WithTabWidth(w int) Option {
	return func(s *settings) {
		if w >= 1 {
			s.tabWidth = w
		}
	}
}

// WithDOSLineEndings selects CRLF output for documents built up from
// events rather than opened from a file.
func WithDOSLineEndings() Option {
	return func(s *settings) {
		s.dos = true
	}
}

// WithMaxUndo bounds the number of committed undo patches kept.
func WithMaxUndo(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxUndo = n
		}
	}
}

// WithCommitPolicy sets the patch-delimiting policy.
func WithCommitPolicy(p CommitPolicy) Option {
	return func(s *settings) {
		s.policy = p
	}
}

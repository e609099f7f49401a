// Package config provides kiln's configuration: the engine settings a
// client applies when constructing documents, loaded from a TOML file,
// with a watcher for live change notification. Because tab width binds
// at row-creation time, changed settings apply to documents opened
// after the change, never retroactively.
package config

import (
	"fmt"
)

// DefaultTabWidth is the tab width used when none is configured.
const DefaultTabWidth = 4

// Config holds the client-facing engine settings.
type Config struct {
	// TabWidth is the display width of a tab in columns; at least 1.
	TabWidth int `toml:"tab_width"`

	// LineEnding selects the output style for new documents: "lf" or
	// "crlf". Opened files keep their detected style.
	LineEnding string `toml:"line_ending"`

	// MaxUndo bounds the number of undo patches kept per document;
	// zero means the engine default.
	MaxUndo int `toml:"max_undo"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		TabWidth:   DefaultTabWidth,
		LineEnding: "lf",
	}
}

// Validate checks the configuration for values the engine cannot use.
func (c Config) Validate() error {
	if c.TabWidth < 1 {
		return fmt.Errorf("tab_width must be at least 1, got %d", c.TabWidth)
	}
	switch c.LineEnding {
	case "", "lf", "crlf":
	default:
		return fmt.Errorf("line_ending must be %q or %q, got %q", "lf", "crlf", c.LineEnding)
	}
	if c.MaxUndo < 0 {
		return fmt.Errorf("max_undo must not be negative, got %d", c.MaxUndo)
	}
	return nil
}

// DOS returns true when the configured line ending is CRLF.
func (c Config) DOS() bool {
	return c.LineEnding == "crlf"
}

package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ParseError describes a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying parse error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads a TOML configuration file. A missing file is not an
// error: defaults are returned so clients can run unconfigured.
// Settings absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kiln.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TabWidth != DefaultTabWidth {
		t.Errorf("TabWidth = %d, want %d", cfg.TabWidth, DefaultTabWidth)
	}
	if cfg.LineEnding != "lf" {
		t.Errorf("LineEnding = %q, want %q", cfg.LineEnding, "lf")
	}
	if cfg.DOS() {
		t.Error("DOS() = true for default config")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "tab_width = 8\nline_ending = \"crlf\"\nmax_undo = 50\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.TabWidth)
	}
	if !cfg.DOS() {
		t.Error("DOS() = false for crlf config")
	}
	if cfg.MaxUndo != 50 {
		t.Errorf("MaxUndo = %d, want 50", cfg.MaxUndo)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "max_undo = 10\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TabWidth != DefaultTabWidth {
		t.Errorf("TabWidth = %d, want default %d", cfg.TabWidth, DefaultTabWidth)
	}
	if cfg.MaxUndo != 10 {
		t.Errorf("MaxUndo = %d, want 10", cfg.MaxUndo)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() of missing file = %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "tab_width = \"not a number\"\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() of malformed file succeeded")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %T, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero tab width", "tab_width = 0\n"},
		{"bad line ending", "line_ending = \"cr\"\n"},
		{"negative max undo", "max_undo = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded, want validation error")
			}
		})
	}
}

func TestWatcherDeliversReload(t *testing.T) {
	path := writeConfig(t, "tab_width = 4\n")
	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("tab_width = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs():
		if cfg.TabWidth != 2 {
			t.Errorf("TabWidth = %d, want 2", cfg.TabWidth)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no config delivered after write")
	}
}

func TestWatcherCloseClosesChannel(t *testing.T) {
	path := writeConfig(t, "")
	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	select {
	case _, ok := <-w.Configs():
		if ok {
			t.Error("Configs() delivered after Close")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Configs() not closed after Close")
	}
	// Close is idempotent.
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

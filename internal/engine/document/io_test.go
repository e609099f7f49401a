package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/kiln/internal/engine/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen(t *testing.T) {
	path := writeFile(t, "a.txt", "one\ntwo\n")
	d := New(core.Size{W: 80, H: 24})
	if err := d.Open(path); err != nil {
		t.Fatal(err)
	}
	if got := d.RowCount(); got != 2 {
		t.Errorf("RowCount() = %d, want 2", got)
	}
	if got := d.Info().Path; got != path {
		t.Errorf("Path = %q, want %q", got, path)
	}
	if d.Info().DOS {
		t.Error("DOS = true for LF file")
	}
	if d.Modified() {
		t.Error("Modified() = true after open")
	}
}

func TestOpenMissingFile(t *testing.T) {
	d := New(core.Size{W: 80, H: 24})
	err := d.Open(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Open() of missing file succeeded")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
}

func TestOpenDetectsDOS(t *testing.T) {
	path := writeFile(t, "dos.txt", "one\r\ntwo\r\n")
	d := New(core.Size{W: 80, H: 24})
	if err := d.Open(path); err != nil {
		t.Fatal(err)
	}
	if !d.Info().DOS {
		t.Error("DOS = false for CRLF file")
	}
	if got := d.RowCount(); got != 2 {
		t.Errorf("RowCount() = %d, want 2", got)
	}
	if got := rowText(t, d, 0); got != "one" {
		t.Errorf("row 0 = %q, want %q", got, "one")
	}
}

func TestOpenNoTrailingNewline(t *testing.T) {
	path := writeFile(t, "b.txt", "one\ntwo")
	d := New(core.Size{W: 80, H: 24})
	if err := d.Open(path); err != nil {
		t.Fatal(err)
	}
	if got := d.RowCount(); got != 2 {
		t.Errorf("RowCount() = %d, want 2", got)
	}
}

func TestOpenPreservesTabWidth(t *testing.T) {
	path := writeFile(t, "c.txt", "\tx\n")
	d := New(core.Size{W: 80, H: 24}, WithTabWidth(8))
	if err := d.Open(path); err != nil {
		t.Fatal(err)
	}
	r, err := d.Row(0)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Width(); got != 9 {
		t.Errorf("Width() = %d, want 9", got)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		opts []Option
		want string
	}{
		{"lf", "one\ntwo\n", nil, "one\ntwo\n"},
		{"adds trailing ending", "one\ntwo", nil, "one\ntwo\n"},
		{"crlf detected", "one\r\ntwo\r\n", nil, "one\r\ntwo\r\n"},
		{"crlf forced", "one\ntwo", []Option{WithDOSLineEndings()}, "one\r\ntwo\r\n"},
		{"tabs survive", "\tx\n", nil, "\tx\n"},
		{"empty", "", nil, "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewFromString(tt.raw, core.Size{W: 80, H: 24}, tt.opts...)
			if got := d.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	d := New(core.Size{W: 80, H: 24})
	if got := d.Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestSave(t *testing.T) {
	path := writeFile(t, "d.txt", "before\n")
	d := New(core.Size{W: 80, H: 24})
	if err := d.Open(path); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Execute(core.Insert{At: core.Loc{X: 0}, Cell: "x"}); err != nil {
		t.Fatal(err)
	}
	if !d.Modified() {
		t.Fatal("Modified() = false after edit")
	}
	if err := d.Save(); err != nil {
		t.Fatal(err)
	}
	if d.Modified() {
		t.Error("Modified() = true after save")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "xbefore\n" {
		t.Errorf("saved = %q, want %q", got, "xbefore\n")
	}
}

func TestSaveNoFileName(t *testing.T) {
	d := NewFromString("x\n", core.Size{W: 80, H: 24})
	if err := d.Save(); !errors.Is(err, core.ErrNoFileName) {
		t.Errorf("Save() error = %v, want %v", err, core.ErrNoFileName)
	}
}

func TestSaveAs(t *testing.T) {
	d := NewFromString("content\n", core.Size{W: 80, H: 24})
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := d.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "content\n" {
		t.Errorf("saved = %q, want %q", got, "content\n")
	}
	// SaveAs leaves the document's identity alone.
	if got := d.Info().Path; got != "" {
		t.Errorf("Path = %q after SaveAs, want empty", got)
	}
}

func TestSummary(t *testing.T) {
	path := writeFile(t, "main.go", "package main\n\nfunc main() {}\n")
	d := New(core.Size{W: 80, H: 24})
	if err := d.Open(path); err != nil {
		t.Fatal(err)
	}
	if err := d.Goto(core.Loc{X: 5, Y: 2}); err != nil {
		t.Fatal(err)
	}

	s := d.Summary()
	if s.Row != 3 {
		t.Errorf("Row = %d, want 3", s.Row)
	}
	if s.Col != 5 {
		t.Errorf("Col = %d, want 5", s.Col)
	}
	if s.Rows != 3 {
		t.Errorf("Rows = %d, want 3", s.Rows)
	}
	if s.File != "main.go" {
		t.Errorf("File = %q, want %q", s.File, "main.go")
	}
	if s.Extension != "go" {
		t.Errorf("Extension = %q, want %q", s.Extension, "go")
	}
	if s.FileType != "Go" {
		t.Errorf("FileType = %q, want %q", s.FileType, "Go")
	}
	if s.Modified {
		t.Error("Modified = true for untouched document")
	}
}

func TestSummaryUnsavedBuffer(t *testing.T) {
	d := NewFromString("x\n", core.Size{W: 80, H: 24})
	s := d.Summary()
	if s.File != "" || s.Path != "" || s.FileType != "" {
		t.Errorf("unsaved buffer summary carries identity: %+v", s)
	}
	if s.Row != 1 || s.Rows != 1 {
		t.Errorf("Row/Rows = %d/%d, want 1/1", s.Row, s.Rows)
	}
}

// Package main is a minimal terminal editor built on the kiln engine.
// It is deliberately thin: keypresses become engine events, the engine
// owns every coordinate decision, and this client only draws.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/kiln/internal/config"
	"github.com/dshills/kiln/internal/engine"
	"github.com/dshills/kiln/internal/engine/core"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var showVersion bool
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("kiln %s\n", version)
		return 0
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	ed, err := newEditor(cfg, flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var watcher *config.Watcher
	if configPath != "" {
		if w, err := config.Watch(configPath); err == nil {
			watcher = w
			go func() {
				for c := range w.Configs() {
					ed.setConfig(c)
				}
			}()
		}
	}

	err = ed.loop()
	ed.close()
	if watcher != nil {
		watcher.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// editor glues a tcell screen to one engine.
type editor struct {
	screen tcell.Screen
	eng    *engine.Engine

	// mu guards cfg and message; the config watcher writes from its
	// own goroutine.
	mu      sync.Mutex
	cfg     config.Config
	message string
}

func newEditor(cfg config.Config, path string) (*editor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)

	w, h := screen.Size()
	opts := []engine.Option{
		engine.WithTabWidth(cfg.TabWidth),
	}
	if cfg.DOS() {
		opts = append(opts, engine.WithDOSLineEndings())
	}
	if cfg.MaxUndo > 0 {
		opts = append(opts, engine.WithMaxUndo(cfg.MaxUndo))
	}
	// The bottom line belongs to the status bar.
	eng := engine.New(core.Size{W: w, H: h - 1}, opts...)

	ed := &editor{screen: screen, eng: eng, cfg: cfg}
	if path != "" {
		if err := eng.Open(path); err != nil {
			screen.Fini()
			return nil, err
		}
	} else {
		// Seed a row to type into. Applied to the document directly so
		// the scratch row is not undoable.
		if _, err := eng.Document().Execute(core.InsertRow{Row: 0, Text: ""}); err != nil {
			screen.Fini()
			return nil, err
		}
	}
	return ed, nil
}

func (ed *editor) close() {
	ed.screen.Fini()
}

// setConfig stores a reloaded configuration. Tab width binds at
// row-creation time, so it applies to files opened from now on.
func (ed *editor) setConfig(cfg config.Config) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.cfg = cfg
	ed.message = "configuration reloaded"
}

func (ed *editor) setMessage(msg string) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.message = msg
}

func (ed *editor) statusMessage() string {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.message
}

func (ed *editor) loop() error {
	for {
		ed.draw()
		switch ev := ed.screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			ed.eng.Document().Resize(core.Size{W: w, H: h - 1})
			ed.screen.Sync()
		case *tcell.EventKey:
			quit, err := ed.handleKey(ev)
			if err != nil {
				ed.setMessage(err.Error())
			}
			if quit {
				return nil
			}
		}
	}
}

// charLoc is the cursor position in event coordinates: character index
// within the row, not display column.
func (ed *editor) charLoc() core.Loc {
	doc := ed.eng.Document()
	return core.Loc{X: doc.CharPtr(), Y: doc.Loc().Y}
}

func (ed *editor) handleKey(ev *tcell.EventKey) (bool, error) {
	doc := ed.eng.Document()
	ed.setMessage("")
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return true, nil
	case tcell.KeyCtrlS:
		return false, ed.eng.Save()
	case tcell.KeyCtrlZ:
		return false, ed.eng.Undo()
	case tcell.KeyCtrlR:
		return false, ed.eng.Redo()
	case tcell.KeyLeft:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return false, ed.wordJumpBack()
		}
		_, err := doc.MoveLeft()
		return false, err
	case tcell.KeyRight:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return false, ed.wordJumpForth()
		}
		_, err := doc.MoveRight()
		return false, err
	case tcell.KeyUp:
		_, err := doc.MoveUp()
		return false, err
	case tcell.KeyDown:
		_, err := doc.MoveDown()
		return false, err
	case tcell.KeyEnter:
		_, err := ed.eng.Execute(core.SplitDown{At: ed.charLoc()})
		return false, err
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		at := ed.charLoc()
		if at.X == 0 {
			_, err := ed.eng.Execute(core.SpliceUp{At: at})
			return false, err
		}
		_, err := ed.eng.Execute(core.Remove{At: at})
		return false, err
	case tcell.KeyTab:
		_, err := ed.eng.Execute(core.Insert{At: ed.charLoc(), Cell: "\t"})
		return false, err
	case tcell.KeyRune:
		_, err := ed.eng.Execute(core.Insert{At: ed.charLoc(), Cell: string(ev.Rune())})
		return false, err
	}
	return false, nil
}

func (ed *editor) wordJumpBack() error {
	doc := ed.eng.Document()
	r, err := doc.CurrentRow()
	if err != nil {
		return err
	}
	return doc.GotoX(r.NextWordBack(doc.CharPtr()))
}

func (ed *editor) wordJumpForth() error {
	doc := ed.eng.Document()
	r, err := doc.CurrentRow()
	if err != nil {
		return err
	}
	return doc.GotoX(r.NextWordForth(doc.CharPtr()))
}

func (ed *editor) draw() {
	doc := ed.eng.Document()
	size := doc.Size()
	offset := doc.Offset()
	ed.screen.Clear()

	for y := 0; y < size.H; y++ {
		r, err := doc.Row(offset.Y + y)
		if err != nil {
			break
		}
		drawText(ed.screen, 0, y, size.W, tcell.StyleDefault, r.Render(offset.X))
	}

	ed.drawStatus(size.H)
	cursor := doc.Cursor()
	ed.screen.ShowCursor(cursor.X, cursor.Y)
	ed.screen.Show()
}

func (ed *editor) drawStatus(y int) {
	doc := ed.eng.Document()
	s := doc.Summary()
	name := s.File
	if name == "" {
		name = "[No Name]"
	}
	mark := ""
	if s.Modified {
		mark = " [+]"
	}
	left := fmt.Sprintf(" %s%s  %d/%d:%d", name, mark, s.Row, s.Rows, s.Col)
	if s.FileType != "" {
		left += "  " + s.FileType
	}
	if msg := ed.statusMessage(); msg != "" {
		left += "  " + msg
	}
	w := doc.Size().W
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, style)
	}
	drawText(ed.screen, 0, y, w, style, left)
}

// drawText draws s at (x, y), clipped to maxWidth columns, advancing
// by each rune's display width.
func drawText(s tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		if col-x >= maxWidth {
			break
		}
		s.SetContent(col, y, r, nil, style)
		col += runeWidth(r)
	}
}

func runeWidth(r rune) int {
	if r == '\t' {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a configuration file and delivers freshly loaded
// configurations when it changes. Malformed intermediate states (a
// half-written file mid-save) are dropped rather than delivered.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	configs chan Config

	closeOnce sync.Once
	done      chan struct{}
}

// Watch starts watching the configuration file at path. The file's
// directory is watched rather than the file itself, so editors that
// replace the file on save (rename-over) keep being tracked.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		configs: make(chan Config, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Configs returns the channel of reloaded configurations. The channel
// is closed when the watcher is closed.
func (w *Watcher) Configs() <-chan Config {
	return w.configs
}

// Close stops watching and closes the Configs channel.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.configs)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				continue
			}
			// Keep only the newest config if the client is slow.
			select {
			case w.configs <- cfg:
			default:
				select {
				case <-w.configs:
				default:
				}
				select {
				case w.configs <- cfg:
				default:
				}
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

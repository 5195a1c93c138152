package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the burst of events editors emit for one save.
const watchDebounce = 100 * time.Millisecond

// Reload is delivered by Watcher after the watched file changed.
// Err is set when the new file cannot be read, parsed or validated;
// Config is only meaningful when Err is nil.
type Reload struct {
	Path   string
	Config DashConfig
	Err    error
}

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan Reload
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. The parent directory is watched rather
// than the file itself, so editors that save by rename are still seen.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", path, err)
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Events:  make(chan Reload, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	// Reload on the trailing edge of a burst so the final contents win.
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(watchDebounce)
		case <-timer.C:
			w.deliver(w.reload())
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() Reload {
	cfg, err := LoadFile(w.path)
	if err == nil {
		err = cfg.Validate()
	}
	return Reload{Path: w.path, Config: cfg, Err: err}
}

// deliver drops the oldest pending reload when the consumer lags behind;
// only the newest file contents matter.
func (w *Watcher) deliver(r Reload) {
	for {
		select {
		case w.Events <- r:
			return
		case <-w.closeCh:
			return
		default:
		}
		select {
		case <-w.Events:
		default:
		}
	}
}

package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before its change is reported.
const DefaultDebounce = 100 * time.Millisecond

// Change reports an override file that was written, created or removed.
type Change struct {
	Catalog string
	Path    string
	Removed bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatchLogger sets a structured logger for watch errors.
func WithWatchLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithDebounce sets the quiet period before a change is reported.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher monitors the catalog directory of a project for override file changes.
type Watcher struct {
	Dir     string
	Changes <-chan Change

	changes  chan Change
	stop     chan struct{}
	done     chan struct{}
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration
	started  bool
	stopOnce sync.Once
}

// NewWatcher creates a watcher for the override files of projectDir.
func NewWatcher(projectDir string, opts ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Dir:      filepath.Join(projectDir, CatalogDir),
		Changes:  ch,
		changes:  ch,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		watcher:  fw,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.New(slog.DiscardHandler)
	}
	return w, nil
}

// Start begins watching. The catalog directory must exist.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel. It is safe to call
// without Start and more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
		w.watcher.Close()
		if w.started {
			<-w.done
		}
		close(w.changes)
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if _, ok := CatalogOf(event.Name); !ok {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case now := <-ticker.C:
			for path, t := range pending {
				if now.Sub(t) >= w.debounce {
					delete(pending, path)
					if !w.emit(path) {
						return
					}
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "dir", w.Dir, "error", err)
		}
	}
}

// emit reports a change to path. It returns false once the watcher is stopping.
func (w *Watcher) emit(path string) bool {
	catalog, _ := CatalogOf(path)
	_, err := os.Stat(path)
	change := Change{Catalog: catalog, Path: path, Removed: err != nil}
	select {
	case w.changes <- change:
		return true
	case <-w.stop:
		return false
	}
}

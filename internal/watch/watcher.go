// Package watch notifies about changes to individual files.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long a burst of events on a file is coalesced
// into a single change notification.
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher watches a set of files for writes
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	dirs     map[string]bool
	debounce time.Duration
	onChange func(path string, op fsnotify.Op)
	logger   zerolog.Logger

	closeOnce sync.Once
	closeErr  error
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(onChange func(path string, op fsnotify.Op), logger zerolog.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		debounce: DefaultDebounce,
		onChange: onChange,
		logger:   logger,
	}, nil
}

// SetDebounce changes the coalescing window; zero disables coalescing
func (fw *FileWatcher) SetDebounce(d time.Duration) {
	fw.debounce = d
}

// AddFile starts watching path. The parent directory is watched so that
// editors that replace files on save are still observed.
func (fw *FileWatcher) AddFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	if !fw.dirs[dir] {
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		fw.dirs[dir] = true
	}

	fw.files[abs] = true
	return nil
}

// Start begins watching for file changes and blocks until ctx is done
func (fw *FileWatcher) Start(ctx context.Context) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
		last  fsnotify.Event
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if !fw.shouldWatch(event) {
				continue
			}

			fw.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("file changed")

			if fw.debounce <= 0 {
				fw.onChange(event.Name, event.Op)
				continue
			}

			last = event
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			fw.onChange(last.Name, last.Op)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if err != nil {
				// Log error but continue watching
				fw.logger.Warn().Err(err).Msg("watcher error")
			}
		}
	}
}

// shouldWatch checks if an event is a write to one of the watched files
func (fw *FileWatcher) shouldWatch(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return fw.files[abs]
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.closeOnce.Do(func() {
		fw.closeErr = fw.watcher.Close()
	})
	return fw.closeErr
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/dcw/beanmaker/internal/schema"
	"github.com/dcw/beanmaker/internal/watch"
)

// ErrWatchStdin is returned when watch mode is asked to follow standard input
var ErrWatchStdin = errors.New("cannot watch standard input")

// Watch generates the class once and again every time the fields file
// changes, until ctx is cancelled.
func (c *Controller) Watch(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	path := c.fieldsFile(cfg)
	switch path {
	case "":
		return schema.ErrFieldsFileRequired
	case schema.StdinPath:
		return ErrWatchStdin
	}
	opts := c.Options(cfg)

	if err := c.generate(path, opts); err != nil {
		return err
	}

	onChange := func(changed string, op fsnotify.Op) {
		c.Logger.Info().Str("path", changed).Msg("fields file changed, regenerating")
		if err := c.generate(path, opts); err != nil {
			// Keep watching; the next save may fix it
			c.Logger.Error().Err(err).Msg("regeneration failed")
		}
	}

	watcher, err := watch.NewFileWatcher(onChange, c.Logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.AddFile(path); err != nil {
		return fmt.Errorf("failed to watch fields file: %w", err)
	}

	c.Logger.Info().Str("path", path).Msg("watching for changes")

	err = watcher.Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

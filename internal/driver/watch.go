package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"tscfg/internal/source"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions tunes Watch.
type WatchOptions struct {
	Debounce time.Duration // 0 means DefaultDebounce
}

// CheckFunc receives the outcome of every check run by Watch.
type CheckFunc func(fs *source.FileSet, results []FileResult)

// Watch checks req once, then again whenever one of its files is written,
// created, renamed or removed, until ctx is done. Directories are watched
// rather than files so that atomic replace-on-save keeps working. Inputs with
// inline Content cannot be watched.
func Watch(ctx context.Context, req Request, opts WatchOptions, onCheck CheckFunc) error {
	logger := zerolog.Ctx(ctx)
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]bool, len(req.Inputs))
	dirs := make(map[string]bool)
	for _, in := range req.Inputs {
		if in.Content != nil {
			return fmt.Errorf("cannot watch %s: content was given inline", in.Path)
		}
		abs, err := filepath.Abs(in.Path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", in.Path, err)
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	run := func() error {
		fs, results, err := Check(ctx, req)
		if err != nil {
			return err
		}
		onCheck(fs, results)
		return nil
	}
	if err := run(); err != nil {
		return err
	}
	logger.Debug().Int("files", len(watched)).Int("dirs", len(dirs)).Msg("watching config files")

	var timer *time.Timer
	var fire <-chan time.Time
	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&relevant == 0 || !watched[filepath.Clean(event.Name)] {
				continue
			}
			logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("config changed")
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := run(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/pandocwatch/internal/ops"
)

type Emitter interface {
	Emit(ctx context.Context, op *ops.FileOp) error
}

// Watcher subscribes to filesystem notifications for a directory tree. fsnotify watches are not recursive so
// every subdirectory is added on its own, including the ones created while watching.
type Watcher struct {
	logger  *logrus.Logger
	watcher *fsnotify.Watcher
	emitter Emitter

	mu   sync.Mutex
	dirs map[string]struct{}
}

func New(logger *logrus.Logger, emitter Emitter) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &Watcher{
		logger:  logger,
		watcher: watcher,
		emitter: emitter,
		dirs:    make(map[string]struct{}),
	}, nil
}

func (w *Watcher) Add(dirPath string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.dirs[dirPath]; ok {
		return nil
	}

	err := w.watcher.Add(dirPath)
	if err != nil {
		return fmt.Errorf("add dir to watcher: %w", err)
	}
	w.dirs[dirPath] = struct{}{}

	w.logger.WithField("dir", dirPath).Debug("Watching directory...")
	return nil
}

// AddRecursive watches root and every directory below it, hidden ones included.
func (w *Watcher) AddRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// vanished or unreadable subdirectory; the rest of the tree is still watched.
			w.logger.WithField("path", path).WithError(err).Warn("Failed to walk directory, skipping")
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		return w.Add(path)
	})
}

// Dirs returns the watched directories in lexical order.
func (w *Watcher) Dirs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	dirs := make([]string, 0, len(w.dirs))
	for dir := range w.dirs {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	return dirs
}

// Start delivers notifications to the emitter until the context is canceled, the watcher is closed or the
// emitter stops accepting them.
func (w *Watcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				w.watchNewDir(ctx, event.Name)
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				// fsnotify drops the watch of a removed directory by itself.
				w.forget(event.Name)
			}

			err := w.emitter.Emit(ctx, toFileOp(event))
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return fmt.Errorf("emit notification: %w", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// fsnotify reports queue overflows here; the next event triggers a fresh scan anyway.
			w.logger.WithError(err).Error("Received error from watcher")
		}
	}
}

func (w *Watcher) forget(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	prefix := path + string(filepath.Separator)
	for dir := range w.dirs {
		if dir == path || strings.HasPrefix(dir, prefix) {
			delete(w.dirs, dir)
		}
	}
}

func (w *Watcher) Close() {
	_ = w.watcher.Close()
}

func (w *Watcher) watchNewDir(ctx context.Context, path string) {
	logger := w.logger.WithField("dir", path)
	err := backoff.Retry(func() error {
		err := w.AddRecursive(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return backoff.Permanent(err)
			}
			logger.WithError(err).Debug("Failed to watch new directory, retrying")
			return err
		}
		return nil
	}, backoff.WithContext(newExponentialBackoffConfig(), ctx))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.WithError(err).Warn("Failed to add newly created directory to watcher, ignoring")
	}
}

// toFileOp turns a raw event into a single notification. event.Op is a bitmask and some systems may send
// multiple operations at once; the first one in the order below names the notification.
func toFileOp(event fsnotify.Event) *ops.FileOp {
	op := ops.OpModified
	switch {
	case event.Has(fsnotify.Create):
		op = ops.OpCreated
	case event.Has(fsnotify.Remove):
		op = ops.OpRemoved
	case event.Has(fsnotify.Rename):
		op = ops.OpRenamed
	case event.Has(fsnotify.Write):
		op = ops.OpModified
	case event.Has(fsnotify.Chmod):
		// touch(1) on an existing file only changes attributes on some platforms.
		op = ops.OpChmod
	}

	return &ops.FileOp{
		Path:      event.Name,
		Op:        op,
		Timestamp: time.Now().UTC(),
	}
}

func newExponentialBackoffConfig() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(time.Second*3),
		backoff.WithMaxInterval(time.Second),
		backoff.WithInitialInterval(time.Millisecond*100),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}

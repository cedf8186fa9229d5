package store

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/quill/pkg/core"
)

// Watch emits an Event for every external change under the store root
// matching pattern (doublestar syntax; empty matches everything). The
// channel closes when ctx is cancelled. Our own atomic saves are
// suppressed by checksum so editors don't reload what they just wrote.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if s.config.Root == "" {
		return nil, errors.New("watching requires a store root")
	}

	events := make(chan core.Event, 64)
	w := newWatchWorker(s, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

// recursiveAdd registers the root and every directory below it.
func (s *Store) recursiveAdd(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(s.config.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// shouldIgnore filters out our own temp files, VCS noise, the codec
// salt, and anything the caller's pattern does not select.
func (s *Store) shouldIgnore(event fsnotify.Event, pattern string) bool {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}
	if base == ".quill.salt" || base == ConfigFileName {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(event.Name), "/") {
		if part == ".git" {
			return true
		}
	}

	if pattern == "" {
		return false
	}
	rel, err := filepath.Rel(s.config.Root, event.Name)
	if err != nil {
		return true
	}
	match, err := doublestar.Match(pattern, filepath.ToSlash(rel))
	if err != nil {
		return true
	}
	return !match
}

// mapEventType translates fsnotify operations to domain events.
// Returns "" for operations we do not surface (chmod).
func (s *Store) mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

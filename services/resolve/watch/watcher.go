// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package watch re-runs route analysis when project source files change.
//
// The watcher observes the project tree recursively, filters events down to
// source files the analyzer cares about, and batches them behind a debounce
// window so a burst of editor writes triggers one re-analysis, not dozens.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is one debounced file system change.
type Change struct {
	// Path is the absolute path of the changed file.
	Path string

	// Op describes what happened to it.
	Op Op

	// Time is when the change was observed.
	Time time.Time
}

// Op is the kind of change.
type Op int

const (
	// OpCreate indicates the file was created.
	OpCreate Op = iota

	// OpWrite indicates the file was modified.
	OpWrite

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed.
	OpRename
)

// String returns the lowercase name of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Handler receives a deduplicated batch of changes after each debounce
// window. It is called from a single goroutine.
type Handler func(changes []Change)

// Options configures a Watcher.
type Options struct {
	// Debounce is how long to wait for further changes before flushing a
	// batch. Default: 250ms.
	Debounce time.Duration

	// SkipDirs are directory names never descended into, on top of
	// dot-prefixed directories. Default: node_modules, .next.
	SkipDirs []string

	// Extensions limits events to files with these suffixes.
	// Default: .ts, .tsx, .js, .jsx.
	Extensions []string

	// BufferSize is the event buffer capacity. Default: 1000.
	BufferSize int
}

// DefaultOptions returns defaults tuned for an app-router project.
func DefaultOptions() Options {
	return Options{
		Debounce:   250 * time.Millisecond,
		SkipDirs:   []string{"node_modules", ".next"},
		Extensions: []string{".ts", ".tsx", ".js", ".jsx"},
		BufferSize: 1000,
	}
}

// Watcher observes a project tree and reports debounced source changes.
//
// # Thread Safety
//
// Safe for concurrent use. The handler runs on a single goroutine.
type Watcher struct {
	root       string
	fsw        *fsnotify.Watcher
	handler    Handler
	debounce   time.Duration
	skipDirs   []string
	extensions []string

	changes  chan Change
	done     chan struct{}
	stopOnce sync.Once

	mu       sync.RWMutex
	watching bool
}

// New creates a watcher over the project root. Call Start to begin
// observing and Stop to tear down.
func New(root string, handler Handler, opts *Options) (*Watcher, error) {
	if opts == nil {
		defaults := DefaultOptions()
		opts = &defaults
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		root:       root,
		fsw:        fsw,
		handler:    handler,
		debounce:   opts.Debounce,
		skipDirs:   opts.SkipDirs,
		extensions: opts.Extensions,
		changes:    make(chan Change, opts.BufferSize),
		done:       make(chan struct{}),
	}, nil
}

// Start begins watching the root recursively. Both internal goroutines
// exit when Stop is called or the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.watching {
		w.mu.Unlock()
		return nil
	}
	w.watching = true
	w.mu.Unlock()

	if err := w.addRecursive(w.root); err != nil {
		return err
	}

	go w.processEvents(ctx)
	go w.debounceLoop(ctx)
	return nil
}

// Stop halts the watcher. Safe to call multiple times.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsw.Close()

		w.mu.Lock()
		w.watching = false
		w.mu.Unlock()
	})
}

// IsWatching reports whether the watcher is active.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.watching
}

// addRecursive registers every watchable directory under root.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep walking
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.skipDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, skip := range w.skipDirs {
		if name == skip {
			return true
		}
	}
	return false
}

// relevant reports whether an event path names a source file the analyzer
// reads. Skipped directories never get a watch, so only the file name needs
// checking here.
func (w *Watcher) relevant(path string) bool {
	base := filepath.Base(path)
	for _, ext := range w.extensions {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	return false
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			// Newly created directories need their own watch.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !w.skipDir(filepath.Base(event.Name)) {
						_ = w.fsw.Add(event.Name)
					}
					continue
				}
			}

			if !w.relevant(event.Name) {
				continue
			}

			change := Change{
				Path: event.Name,
				Op:   convertOp(event.Op),
				Time: time.Now(),
			}
			select {
			case w.changes <- change:
			default:
				// Buffer full; the debouncer will still fire on what
				// it has.
			}

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func convertOp(op fsnotify.Op) Op {
	switch {
	case op.Has(fsnotify.Create):
		return OpCreate
	case op.Has(fsnotify.Write):
		return OpWrite
	case op.Has(fsnotify.Remove):
		return OpRemove
	case op.Has(fsnotify.Rename):
		return OpRename
	default:
		return OpWrite
	}
}

// debounceLoop batches changes and invokes the handler once the window
// closes.
func (w *Watcher) debounceLoop(ctx context.Context) {
	var batch []Change
	var timer *time.Timer
	var timerC <-chan time.Time

	flush := func() {
		if len(batch) > 0 && w.handler != nil {
			w.handler(dedupe(batch))
			batch = batch[:0]
		}
		if timer != nil {
			timer.Stop()
			timer = nil
			timerC = nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case <-w.done:
			flush()
			return
		case change := <-w.changes:
			batch = append(batch, change)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case <-timerC:
			flush()
		}
	}
}

// dedupe keeps the most recent change per path, preserving first-seen
// order.
func dedupe(changes []Change) []Change {
	seen := make(map[string]int)
	result := make([]Change, 0, len(changes))

	for _, change := range changes {
		if idx, ok := seen[change.Path]; ok {
			result[idx] = change
			continue
		}
		seen[change.Path] = len(result)
		result = append(result, change)
	}
	return result
}

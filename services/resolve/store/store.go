// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package store persists route dependency reports in an embedded BadgerDB.
//
// The store is the review trail behind the analyzer: every saved report
// records what a route depended on at the moment it was analyzed, so an
// operator can compare against the current tree before marking the route
// draft. Keys are namespaced by route; values are JSON envelopes carrying a
// report ID and save timestamp.
//
// BadgerDB gives local embedded storage with no external service to run,
// which matches the CLI-first shape of the tool. In-memory mode exists for
// tests.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/civicgraph/routelens/services/resolve"
)

// reportKeyPrefix namespaces report keys inside the database.
const reportKeyPrefix = "report:"

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no report is stored for a route.
	ErrNotFound = errors.New("no stored report for route")

	// ErrNilReport is returned when Put is called with a nil report.
	ErrNilReport = errors.New("report must not be nil")
)

// Config holds configuration for the report store.
type Config struct {
	// Path is the directory for database files. Required unless InMemory
	// is true; created with 0750 permissions if absent.
	Path string

	// InMemory enables in-memory mode (no disk persistence). For tests.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool

	// Logger receives BadgerDB's internal logging. Nil disables it.
	Logger *slog.Logger
}

// DefaultConfig returns production defaults for a store at path.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		SyncWrites: true,
	}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// StoredReport is the persisted envelope around one report.
type StoredReport struct {
	// ID uniquely identifies this saved snapshot.
	ID string `json:"id"`

	// SavedAt is when the snapshot was stored, UTC.
	SavedAt time.Time `json:"saved_at"`

	// Report is the analysis result itself.
	Report *resolve.Report `json:"report"`
}

// Store is a BadgerDB-backed report store.
//
// # Thread Safety
//
// Safe for concurrent use; BadgerDB transactions provide isolation.
type Store struct {
	db *badger.DB
}

// Open creates and opens a report store with the given configuration.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open report store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a throwaway in-memory store for testing.
func OpenInMemory() (*Store, error) {
	return Open(Config{InMemory: true})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a report snapshot, replacing any previous snapshot for the
// same route.
func (s *Store) Put(ctx context.Context, report *resolve.Report) (*StoredReport, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNilReport
	}

	stored := &StoredReport{
		ID:      uuid.NewString(),
		SavedAt: time.Now().UTC(),
		Report:  report,
	}
	value, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode report for %s: %w", report.Route, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(reportKey(report.Route), value)
	})
	if err != nil {
		return nil, fmt.Errorf("store report for %s: %w", report.Route, err)
	}
	return stored, nil
}

// Get retrieves the stored snapshot for a route.
func (s *Store) Get(ctx context.Context, route string) (*StoredReport, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	var stored StoredReport
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(reportKey(route))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &stored)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("route %q: %w", route, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load report for %s: %w", route, err)
	}
	return &stored, nil
}

// List returns every stored snapshot, sorted by route.
func (s *Store) List(ctx context.Context) ([]*StoredReport, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	var reports []*StoredReport
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(reportKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var stored StoredReport
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &stored)
			})
			if err != nil {
				return err
			}
			reports = append(reports, &stored)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Report.Route < reports[j].Report.Route
	})
	return reports, nil
}

// Delete removes the stored snapshot for a route. Deleting an absent route
// is not an error.
func (s *Store) Delete(ctx context.Context, route string) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(reportKey(route))
	})
	if err != nil {
		return fmt.Errorf("delete report for %s: %w", route, err)
	}
	return nil
}

func reportKey(route string) []byte {
	return []byte(reportKeyPrefix + route)
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return resolve.ErrNilContext
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("store operation cancelled: %w", err)
	}
	return nil
}

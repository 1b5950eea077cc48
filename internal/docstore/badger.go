// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/logging"
)

// Key prefixes for BadgerDB storage
const (
	docKeyPrefix   = "doc:"
	groupKeyPrefix = "grp:"
)

// BadgerStore implements Store on top of BadgerDB.
//
// Each document is stored once under doc:<path>. Nested documents also get
// an empty index key grp:<sub>:<path> so that collection-group queries can
// scan every parent without touching unrelated documents.
type BadgerStore struct {
	db     *badger.DB
	closed atomic.Bool
}

// NewBadgerStore wraps an already open BadgerDB.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// OpenBadger opens (or creates) a BadgerDB at path. When inMemory is set the
// path is ignored and nothing touches disk.
func OpenBadger(path string, inMemory bool) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("path", path).
		Bool("in_memory", inMemory).
		Msg("Document store opened")
	return NewBadgerStore(db), nil
}

// Put stores data as JSON at path, replacing any previous document.
func (s *BadgerStore) Put(ctx context.Context, path string, data map[string]interface{}) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := ParsePath(path)
	if err != nil {
		return err
	}

	val, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", p, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(docKey(p), val); err != nil {
			return fmt.Errorf("set document: %w", err)
		}
		if p.Nested() {
			if err := txn.Set(groupKey(p), nil); err != nil {
				return fmt.Errorf("set group index: %w", err)
			}
		}
		return nil
	})
}

// Get retrieves a document by path.
func (s *BadgerStore) Get(ctx context.Context, path string) (Document, error) {
	if s.closed.Load() {
		return Document{}, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	p, err := ParsePath(path)
	if err != nil {
		return Document{}, err
	}

	doc := Document{Path: p}
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(docKey(p))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get document: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &doc.Data)
		})
	})
	if err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Query scans a flat collection or a collection group in key order and
// stops once limit matching documents have been read.
func (s *BadgerStore) Query(ctx context.Context, ref CollectionRef, filter *FieldFilter, limit int) ([]Document, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	if !validCollection(ref.Collection) || (ref.Parent != "" && !validCollection(ref.Parent)) {
		return nil, fmt.Errorf("%w: collection %q", ErrInvalidPath, ref.String())
	}
	if limit <= 0 {
		limit = DefaultQueryLimit
	}

	if ref.Group {
		return s.queryGroup(ctx, ref, filter, limit)
	}
	return s.queryFlat(ctx, ref.Collection, filter, limit)
}

func (s *BadgerStore) queryFlat(ctx context.Context, collection string, filter *FieldFilter, limit int) ([]Document, error) {
	prefix := []byte(docKeyPrefix + collection + "/")
	var docs []Document

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()
			p, err := ParsePath(strings.TrimPrefix(string(item.Key()), docKeyPrefix))
			if err != nil || p.Nested() {
				// doc:<collection>/<id>/<sub>/<id> shares the prefix
				continue
			}

			doc := Document{Path: p}
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &doc.Data)
			}); err != nil {
				return fmt.Errorf("decode document %s: %w", p, err)
			}
			if !filter.Matches(doc.Data) {
				continue
			}

			docs = append(docs, doc)
			if len(docs) >= limit {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *BadgerStore) queryGroup(ctx context.Context, ref CollectionRef, filter *FieldFilter, limit int) ([]Document, error) {
	scan := groupKeyPrefix + ref.Collection + ":"
	if ref.Parent != "" {
		scan += ref.Parent + "/"
	}
	prefix := []byte(scan)
	var docs []Document

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			raw := strings.TrimPrefix(string(it.Item().Key()), groupKeyPrefix+ref.Collection+":")
			p, err := ParsePath(raw)
			if err != nil {
				continue
			}

			item, err := txn.Get(docKey(p))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("get document %s: %w", p, err)
			}

			doc := Document{Path: p}
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &doc.Data)
			}); err != nil {
				return fmt.Errorf("decode document %s: %w", p, err)
			}
			if !filter.Matches(doc.Data) {
				continue
			}

			docs = append(docs, doc)
			if len(docs) >= limit {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Ping checks that the database is open and readable.
func (s *BadgerStore) Ping(ctx context.Context) error {
	if s.closed.Load() || s.db.IsClosed() {
		return ErrClosed
	}
	return ctx.Err()
}

// RunGC reclaims value log space until badger reports nothing left to
// rewrite. It is a no-op for in-memory databases.
func (s *BadgerStore) RunGC(discardRatio float64) (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	rewrites := 0
	for {
		err := s.db.RunValueLogGC(discardRatio)
		switch {
		case err == nil:
			rewrites++
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return rewrites, nil
		default:
			return rewrites, fmt.Errorf("value log GC: %w", err)
		}
	}
}

// Close closes the underlying database. Calling it twice is a no-op.
func (s *BadgerStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	return nil
}

func docKey(p Path) []byte {
	return []byte(docKeyPrefix + p.String())
}

func groupKey(p Path) []byte {
	return []byte(groupKeyPrefix + p.Collection + ":" + p.String())
}

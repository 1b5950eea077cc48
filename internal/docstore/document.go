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
)

var (
	// ErrNotFound is returned by Get when no document exists at the path.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidPath is returned for malformed document or collection paths.
	ErrInvalidPath = errors.New("invalid document path")

	// ErrClosed is returned after the store has been closed.
	ErrClosed = errors.New("document store closed")
)

// DefaultQueryLimit caps a Query whose limit is zero or negative.
const DefaultQueryLimit = 500

// Store is a collection-oriented document store.
//
// Documents live at paths of the form <collection>/<id> (top level) or
// <parent>/<parentId>/<sub>/<id> (nested under a parent document). Every
// query is capped; documents beyond the limit are never read.
type Store interface {
	// Query scans a collection. When ref.Group is set it scans every
	// sub-collection named ref.Collection, optionally restricted to parents in
	// ref.Parent. A non-nil filter keeps only documents whose field equals the value.
	Query(ctx context.Context, ref CollectionRef, filter *FieldFilter, limit int) ([]Document, error)

	// Get fetches a single document by path.
	Get(ctx context.Context, path string) (Document, error)

	// Put writes a document. Discovery never calls it; seeding and tests do.
	Put(ctx context.Context, path string, data map[string]interface{}) error

	// Ping reports whether the store is usable.
	Ping(ctx context.Context) error

	Close() error
}

// CollectionRef names what a Query scans.
type CollectionRef struct {
	Collection string
	Parent     string // only with Group; "" means any parent collection
	Group      bool
}

// String renders the reference for logs.
func (r CollectionRef) String() string {
	if !r.Group {
		return r.Collection
	}
	if r.Parent == "" {
		return "*/*/" + r.Collection
	}
	return r.Parent + "/*/" + r.Collection
}

// FieldFilter is an equality filter on a top-level document field.
// Values are compared by their string form, so "1" matches 1.
type FieldFilter struct {
	Field string
	Value interface{}
}

// Matches reports whether data carries Field equal to Value.
func (f *FieldFilter) Matches(data map[string]interface{}) bool {
	if f == nil {
		return true
	}
	v, ok := data[f.Field]
	if !ok || v == nil {
		return false
	}
	return fmt.Sprint(v) == fmt.Sprint(f.Value)
}

// Document is a stored document with its location.
type Document struct {
	Path Path
	Data map[string]interface{}
}

// ID returns the document's native id (last path segment).
func (d Document) ID() string { return d.Path.ID }

// Path is a parsed document path.
type Path struct {
	ParentCollection string // "" for top-level documents
	ParentID         string
	Collection       string
	ID               string
}

// Nested reports whether the document lives under a parent document.
func (p Path) Nested() bool { return p.ParentCollection != "" }

// String renders the canonical slash-separated form.
func (p Path) String() string {
	if p.Nested() {
		return p.ParentCollection + "/" + p.ParentID + "/" + p.Collection + "/" + p.ID
	}
	return p.Collection + "/" + p.ID
}

// ParsePath validates and splits a document path. Only one level of nesting
// is supported. Segments must be non-empty and must not contain ':'.
func ParsePath(raw string) (Path, error) {
	segs := strings.Split(strings.Trim(raw, "/"), "/")
	for _, s := range segs {
		if s == "" || strings.ContainsRune(s, ':') {
			return Path{}, fmt.Errorf("%w: %q", ErrInvalidPath, raw)
		}
	}

	switch len(segs) {
	case 2:
		return Path{Collection: segs[0], ID: segs[1]}, nil
	case 4:
		return Path{ParentCollection: segs[0], ParentID: segs[1], Collection: segs[2], ID: segs[3]}, nil
	default:
		return Path{}, fmt.Errorf("%w: %q has %d segments, want 2 or 4", ErrInvalidPath, raw, len(segs))
	}
}

// validCollection reports whether name can be used as a collection segment.
func validCollection(name string) bool {
	return name != "" && !strings.ContainsAny(name, "/:")
}

// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package cache

import (
	"sort"
	"strings"
	"sync"
)

// trieNode is a node in the Trie.
type trieNode[T any] struct {
	children map[rune]*trieNode[T]
	isEnd    bool
	term     string // term stored at this node, as inserted
	value    T
	weight   int // accumulated insert weight, used for ranking
}

func newTrieNode[T any]() *trieNode[T] {
	return &trieNode[T]{children: make(map[rune]*trieNode[T])}
}

// Trie is a thread-safe, case-insensitive prefix tree mapping terms to
// values. Lookups are O(m) in the prefix length plus the size of the
// matching subtree.
type Trie[T any] struct {
	mu       sync.RWMutex
	root     *trieNode[T]
	size     int
	maxLimit int
}

// TrieResult is one completion.
type TrieResult[T any] struct {
	Term   string
	Value  T
	Weight int
}

// NewTrie creates an empty trie returning at most maxLimit completions per
// lookup (10 when maxLimit <= 0).
func NewTrie[T any](maxLimit int) *Trie[T] {
	if maxLimit <= 0 {
		maxLimit = 10
	}
	return &Trie[T]{root: newTrieNode[T](), maxLimit: maxLimit}
}

// Insert stores term with value. Re-inserting a term adds weight and
// replaces its value. Returns true for a new term.
func (t *Trie[T]) Insert(term string, value T, weight int) bool {
	key := strings.ToLower(strings.TrimSpace(term))
	if key == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range key {
		next := node.children[ch]
		if next == nil {
			next = newTrieNode[T]()
			node.children[ch] = next
		}
		node = next
	}

	isNew := !node.isEnd
	node.isEnd = true
	node.term = strings.TrimSpace(term)
	node.value = value
	node.weight += weight
	if isNew {
		t.size++
	}
	return isNew
}

// Lookup returns the value stored for an exact term.
func (t *Trie[T]) Lookup(term string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(strings.ToLower(strings.TrimSpace(term)))
	if node == nil || !node.isEnd {
		var zero T
		return zero, false
	}
	return node.value, true
}

// Complete returns terms starting with prefix, heaviest first and then
// alphabetically. An empty prefix matches nothing.
func (t *Trie[T]) Complete(prefix string, limit int) []TrieResult[T] {
	key := strings.ToLower(strings.TrimSpace(prefix))
	if key == "" {
		return nil
	}
	if limit <= 0 || limit > t.maxLimit {
		limit = t.maxLimit
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(key)
	if node == nil {
		return nil
	}

	var results []TrieResult[T]
	collect(node, &results)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Weight != results[j].Weight {
			return results[i].Weight > results[j].Weight
		}
		return results[i].Term < results[j].Term
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Len returns the number of distinct terms.
func (t *Trie[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

func (t *Trie[T]) find(key string) *trieNode[T] {
	node := t.root
	for _, ch := range key {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

func collect[T any](node *trieNode[T], results *[]TrieResult[T]) {
	if node.isEnd {
		*results = append(*results, TrieResult[T]{Term: node.term, Value: node.value, Weight: node.weight})
	}
	for _, child := range node.children {
		collect(child, results)
	}
}

// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package cache

import (
	"sync"
	"testing"
)

func TestTrie_InsertLookup(t *testing.T) {
	t.Parallel()

	trie := NewTrie[string](0)

	if !trie.Insert("Mumbai", "mumbai", 3) {
		t.Error("Insert should return true for a new term")
	}
	if trie.Insert("MUMBAI", "mumbai", 1) {
		t.Error("Insert should be case-insensitive")
	}
	if trie.Insert("   ", "blank", 1) {
		t.Error("blank term should be rejected")
	}
	if trie.Len() != 1 {
		t.Errorf("Len() = %d, want 1", trie.Len())
	}

	if v, ok := trie.Lookup("mumbai"); !ok || v != "mumbai" {
		t.Errorf("Lookup(mumbai) = %q, %v", v, ok)
	}
	if _, ok := trie.Lookup("mum"); ok {
		t.Error("Lookup should not match a bare prefix")
	}
}

func TestTrie_Complete(t *testing.T) {
	t.Parallel()

	trie := NewTrie[string](5)
	trie.Insert("Pune", "pune", 3)
	trie.Insert("Puducherry", "puducherry", 1)
	trie.Insert("Punjab", "punjab", 1)
	trie.Insert("Patna", "patna", 2)

	tests := []struct {
		prefix string
		limit  int
		want   []string
	}{
		{"pu", 0, []string{"Pune", "Puducherry", "Punjab"}},
		{"pun", 0, []string{"Pune", "Punjab"}},
		{"P", 2, []string{"Pune", "Patna"}},
		{"x", 0, nil},
		{"", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got := trie.Complete(tt.prefix, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("Complete(%q) = %+v, want %v", tt.prefix, got, tt.want)
			}
			for i, r := range got {
				if r.Term != tt.want[i] {
					t.Errorf("Complete(%q)[%d] = %s, want %s", tt.prefix, i, r.Term, tt.want[i])
				}
			}
		})
	}
}

func TestTrie_LimitCappedByMax(t *testing.T) {
	t.Parallel()

	trie := NewTrie[int](2)
	for i, term := range []string{"aa", "ab", "ac", "ad"} {
		trie.Insert(term, i, 1)
	}
	if got := trie.Complete("a", 50); len(got) != 2 {
		t.Errorf("Complete() returned %d, want max 2", len(got))
	}
}

func TestTrie_ConcurrentReads(t *testing.T) {
	trie := NewTrie[string](10)
	for _, term := range []string{"delhi", "dehradun", "durgapur"} {
		trie.Insert(term, term, 1)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := trie.Complete("de", 0); len(got) != 2 {
				t.Errorf("Complete(de) = %d results", len(got))
			}
		}()
	}
	wg.Wait()
}

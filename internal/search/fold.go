// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package search

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
)

// Fold normalizes text for matching: transliterates to ASCII, lower-cases,
// and collapses punctuation and whitespace runs into single spaces.
//
//	Fold("  Bandra–Kurla Complex ") == "bandra kurla complex"
//	Fold("Bengalūru")               == "bengaluru"
func Fold(s string) string {
	if s == "" {
		return ""
	}
	ascii := unidecode.Unidecode(s)

	var b strings.Builder
	b.Grow(len(ascii))
	space := false
	for _, r := range ascii {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		space = true
	}
	return b.String()
}

// contains reports whether needle occurs in haystack; empty strings never match.
func contains(haystack, needle string) bool {
	return needle != "" && haystack != "" && strings.Contains(haystack, needle)
}

// eitherContains reports substring containment in either direction.
func eitherContains(a, b string) bool {
	return contains(a, b) || contains(b, a)
}

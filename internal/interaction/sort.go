// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interaction

import (
	"slices"
	"strings"
)

// filterBypass holds filter values that select everything.
var filterBypass = map[string]struct{}{
	"":     {},
	"Alle": {},
	"All":  {},
	"all":  {},
}

// MatchesFilter reports whether value passes filter. Matching is exact.
func MatchesFilter(value, filter string) bool {
	if _, ok := filterBypass[strings.TrimSpace(filter)]; ok {
		return true
	}
	return value == filter
}

// MatchesAny reports whether any of values passes filter.
func MatchesAny(values []string, filter string) bool {
	if _, ok := filterBypass[strings.TrimSpace(filter)]; ok {
		return true
	}
	return slices.Contains(values, filter)
}

// Filter returns the records for which keep returns true, preserving order.
func Filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders records in place: records new to userID come first, ties are
// broken by secondary. The sort is stable, so equal records keep their order.
func Sort[T Record](records []T, userID string, secondary func(a, b T) int) {
	slices.SortStableFunc(records, func(a, b T) int {
		aNew, bNew := IsNew(a.Header(), userID), IsNew(b.Header(), userID)
		switch {
		case aNew && !bNew:
			return -1
		case !aNew && bNew:
			return 1
		}
		if secondary == nil {
			return 0
		}
		return secondary(a, b)
	})
}

// NewestFirst orders records by creation time, newest first.
func NewestFirst[T Record](a, b T) int {
	return b.Header().CreatedAt.Compare(a.Header().CreatedAt)
}

// MostVotesFirst orders records by upvotes, highest first.
func MostVotesFirst[T Voted](a, b T) int {
	return b.Counts().Upvotes - a.Counts().Upvotes
}

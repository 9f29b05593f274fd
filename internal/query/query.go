// Package query provides the read-view primitives every list operation in
// the data-access layer composes: filter by a predicate, stable sort by a
// timestamp descending, and truncate to a prefix.
package query

import (
	"sort"
	"time"
)

// Filter returns the elements of items for which keep returns true,
// preserving their original order. It always returns a non-nil slice.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// SortByTimeDesc stably sorts items most-recent-first by the timestamp
// extracted with ts. Elements with a zero timestamp sort as if their
// timestamp were the minimum possible value, i.e. last. The input slice is
// sorted in place and returned for composition.
func SortByTimeDesc[T any](items []T, ts func(T) time.Time) []T {
	sort.SliceStable(items, func(i, j int) bool {
		return ts(items[i]).After(ts(items[j]))
	})
	return items
}

// Limit truncates items to at most n elements, keeping the prefix. A
// non-positive n yields an empty slice.
func Limit[T any](items []T, n int) []T {
	if n <= 0 {
		return items[:0]
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}

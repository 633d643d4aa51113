package gigpack

import "sort"

// sortKey returns the effective ordering key of a row.  A missing
// sort_order counts as 0.
func sortKey(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// stableBySortOrder orders rows by ascending sort_order and keeps the
// fetch order for ties.  Both the read and write paths rely on this
// exact ordering.
func stableBySortOrder[T any](rows []T, key func(T) *int) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(key(out[i])) < sortKey(key(out[j]))
	})
	return out
}

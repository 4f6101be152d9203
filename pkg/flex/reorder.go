package flex

import "sort"

// reorderedIndices builds the permutation of [0, len(items)) that all later
// stages iterate over: items grouped by ascending Order, original index
// breaking ties. The sort is stable so equal-order items keep their
// insertion order.
func reorderedIndices(items []*Item) []int {
	indices := make([]int, len(items))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return items[indices[a]].Order < items[indices[b]].Order
	})
	return indices
}

// ordersChanged compares the items' current Order values against the cache
// from the previous pass.
func ordersChanged(items []*Item, cache []int) bool {
	if len(items) != len(cache) {
		return true
	}
	for i, it := range items {
		if it.Order != cache[i] {
			return true
		}
	}
	return false
}

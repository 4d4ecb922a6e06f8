package seq

// InsertBy returns a copy of sorted with x inserted after every leading
// element y for which less(y, x) holds, so x lands before elements equal to
// it.
func InsertBy[T any](sorted []T, x T, less func(a, b T) bool) []T {
	idx := 0
	for idx < len(sorted) && less(sorted[idx], x) {
		idx++
	}
	out := make([]T, 0, len(sorted)+1)
	out = append(out, sorted[:idx]...)
	out = append(out, x)
	return append(out, sorted[idx:]...)
}

// SortBy returns a sorted copy of in. Elements are inserted from last to
// first, which keeps equal elements in their original order.
func SortBy[T any](in []T, less func(a, b T) bool) []T {
	sorted := make([]T, 0, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		sorted = InsertBy(sorted, in[i], less)
	}
	return sorted
}

// GroupAdjacent splits in into runs of neighbouring elements. An element
// joins the current run when eq(head, element) holds for the run's first
// element.
func GroupAdjacent[T any](in []T, eq func(a, b T) bool) [][]T {
	groups := [][]T{}
	for start := 0; start < len(in); {
		end := start + 1
		for end < len(in) && eq(in[start], in[end]) {
			end++
		}
		group := make([]T, end-start)
		copy(group, in[start:end])
		groups = append(groups, group)
		start = end
	}
	return groups
}

// NubBy removes duplicates according to eq, keeping the first occurrence.
// Unlike DistinctBy it only needs an equality predicate, at quadratic cost.
func NubBy[T any](in []T, eq func(a, b T) bool) []T {
	result := make([]T, 0, len(in))
	for _, v := range in {
		seen := false
		for _, kept := range result {
			if eq(kept, v) {
				seen = true
				break
			}
		}
		if !seen {
			result = append(result, v)
		}
	}
	return result
}

// DistinctBy removes duplicates determined by keySelector, preserving order.
func DistinctBy[T any, K comparable](in []T, keySelector func(T) K) []T {
	seen := make(map[K]struct{}, len(in))
	result := make([]T, 0, len(in))
	for _, v := range in {
		key := keySelector(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, v)
	}
	return result
}

// MinBy returns the first minimal element. It returns false for an empty
// slice.
func MinBy[T any](in []T, less func(a, b T) bool) (T, bool) {
	return Reduce(in, func(acc, v T) T {
		if less(v, acc) {
			return v
		}
		return acc
	})
}

// MaxBy returns the last maximal element. It returns false for an empty
// slice.
func MaxBy[T any](in []T, less func(a, b T) bool) (T, bool) {
	return Reduce(in, func(acc, v T) T {
		if less(v, acc) {
			return acc
		}
		return v
	})
}

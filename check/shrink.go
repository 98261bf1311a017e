package check

// ShrinkNone treats every value as minimal.
func ShrinkNone[T any]() Shrink[T] {
	return func(T) []T {
		return nil
	}
}

// ShrinkInt shrinks an int toward zero: first the jump to zero itself,
// then candidates halving the distance. Usable directly as a Shrink[int].
func ShrinkInt(n int) []int {
	if n == 0 {
		return nil
	}
	smaller := []int{0}
	for d := n / 2; d != 0; d /= 2 {
		smaller = append(smaller, n-d)
	}
	return smaller
}

// ShrinkSlice shrinks a slice by dropping contiguous chunks — largest
// first, so the empty slice is the very first candidate — then by
// shrinking individual elements through elems. A nil elems shrinks only
// structurally.
func ShrinkSlice[T any](elems Shrink[T]) Shrink[[]T] {
	return func(items []T) [][]T {
		n := len(items)
		if n == 0 {
			return nil
		}
		var smaller [][]T
		for k := n; k > 0; k /= 2 {
			for i := 0; i+k <= n; i += k {
				smaller = append(smaller, dropChunk(items, i, k))
			}
		}
		if elems == nil {
			return smaller
		}
		for i := 0; i < n; i++ {
			for _, e := range elems(items[i]) {
				patched := make([]T, n)
				copy(patched, items)
				patched[i] = e
				smaller = append(smaller, patched)
			}
		}
		return smaller
	}
}

func dropChunk[T any](items []T, i, k int) []T {
	smaller := make([]T, 0, len(items)-k)
	smaller = append(smaller, items[:i]...)
	return append(smaller, items[i+k:]...)
}

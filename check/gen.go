package check

import (
	"math/rand"
)

// Int generates non-negative ints bounded by the size hint.
func Int() Gen[int] {
	return func(rng *rand.Rand, size int) int {
		if size < 1 {
			size = 1
		}
		return rng.Intn(size)
	}
}

// IntRange generates ints uniformly from [lo, hi], independent of the
// size hint.
func IntRange(lo, hi int) Gen[int] {
	if hi < lo {
		lo, hi = hi, lo
	}
	return func(rng *rand.Rand, _ int) int {
		return lo + rng.Intn(hi-lo+1)
	}
}

// OneOf picks among the given generators with even probability.
func OneOf[T any](gens ...Gen[T]) Gen[T] {
	return func(rng *rand.Rand, size int) T {
		return gens[rng.Intn(len(gens))](rng, size)
	}
}

// Const always generates x.
func Const[T any](x T) Gen[T] {
	return func(*rand.Rand, int) T {
		return x
	}
}

// SliceOf generates slices with a length up to the size hint, elements
// drawn from elems.
func SliceOf[T any](elems Gen[T]) Gen[[]T] {
	return func(rng *rand.Rand, size int) []T {
		items := make([]T, rng.Intn(size+1))
		for i := range items {
			items[i] = elems(rng, size)
		}
		return items
	}
}

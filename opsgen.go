package queues

import (
	"math/rand"

	"github.com/npillmayer/queues/check"
)

// GenOp derives a generator for single operations from a generator for
// enqueued values, choosing Dequeue or Enqueue with even probability.
func GenOp[T any](values check.Gen[T]) check.Gen[Op[T]] {
	return func(rng *rand.Rand, size int) Op[T] {
		if rng.Intn(2) == 0 {
			return DeqOp[T]()
		}
		return EnqOp(values(rng, size))
	}
}

// GenOps generates operation sequences for the differential harness.
func GenOps[T any](values check.Gen[T]) check.Gen[[]Op[T]] {
	return check.SliceOf(GenOp(values))
}

// ShrinkOp shrinks a single operation: an Enqueue shrinks through its
// value, a Dequeue is minimal already.
func ShrinkOp[T any](values check.Shrink[T]) check.Shrink[Op[T]] {
	return func(op Op[T]) []Op[T] {
		if op.kind != opEnqueue {
			return nil
		}
		var smaller []Op[T]
		for _, v := range values(op.value) {
			smaller = append(smaller, EnqOp(v))
		}
		return smaller
	}
}

// ShrinkOps shrinks operation sequences: dropping operations takes
// precedence over shrinking the values of individual enqueues, driving
// counterexamples toward the shortest refuting workload.
func ShrinkOps[T any](values check.Shrink[T]) check.Shrink[[]Op[T]] {
	return check.ShrinkSlice(ShrinkOp(values))
}

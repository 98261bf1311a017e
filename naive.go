package queues

import (
	"github.com/npillmayer/queues/maybe"
)

// Naive creates an empty queue backed by a single slice, slice order being
// logical FIFO order. Enqueueing copies the whole slice (O(n)), dequeueing
// takes the head (O(1)). It trades performance for obviousness and serves
// as the oracle the other implementations are checked against.
func Naive[T any]() Queue[T] {
	return naive[T]{}
}

type naive[T any] struct {
	items []T
}

func (q naive[T]) Enqueue(item T) Queue[T] {
	items := make([]T, len(q.items)+1)
	copy(items, q.items)
	items[len(items)-1] = item
	return naive[T]{items: items}
}

func (q naive[T]) Dequeue() (maybe.Maybe[T], Queue[T]) {
	if len(q.items) == 0 {
		return maybe.Nothing[T](), q
	}
	return maybe.Just(q.items[0]), naive[T]{items: q.items[1:]}
}

package queues

import (
	"github.com/npillmayer/queues/maybe"
)

// EveryOther wraps a queue such that alternate enqueue attempts are
// silently dropped. The accept flag toggles on every enqueue attempt,
// whether the item is forwarded or not, and toggles unconditionally on
// every dequeue. The wrapper needs no knowledge of the inner
// representation — it composes purely through the Queue operations.
func EveryOther[T any](q Queue[T]) Queue[T] {
	return everyOther[T]{accept: true, inner: q}
}

type everyOther[T any] struct {
	accept bool
	inner  Queue[T]
}

func (q everyOther[T]) Enqueue(item T) Queue[T] {
	if q.accept {
		return everyOther[T]{accept: false, inner: q.inner.Enqueue(item)}
	}
	return everyOther[T]{accept: true, inner: q.inner}
}

func (q everyOther[T]) Dequeue() (maybe.Maybe[T], Queue[T]) {
	head, rest := q.inner.Dequeue()
	return head, everyOther[T]{accept: !q.accept, inner: rest}
}

// DoubleEnqueue wraps a queue so that each enqueue forwards twice with
// the same item; dequeueing passes through unchanged. Composed in front
// of EveryOther the two wrappers cancel out: of each doubled pair exactly
// one member is accepted, and both carry the same value.
func DoubleEnqueue[T any](q Queue[T]) Queue[T] {
	return double[T]{inner: q}
}

type double[T any] struct {
	inner Queue[T]
}

func (q double[T]) Enqueue(item T) Queue[T] {
	return double[T]{inner: q.inner.Enqueue(item).Enqueue(item)}
}

func (q double[T]) Dequeue() (maybe.Maybe[T], Queue[T]) {
	head, rest := q.inner.Dequeue()
	return head, double[T]{inner: rest}
}

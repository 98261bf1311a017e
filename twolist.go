package queues

import (
	"github.com/npillmayer/queues/maybe"
)

// TwoList creates an empty queue holding its items in a pair of lists,
// with logical order = front ++ reverse(back). Enqueue pushes onto back;
// a dequeue hitting an empty front reverses back in full. Amortized O(1)
// per operation over a single never-rewound call sequence — but a client
// who retains an old version and replays it can trigger the same full
// reversal over and over, degrading to O(n) per call. Use RealTime when
// versions are kept around.
func TwoList[T any]() Queue[T] {
	return twolist[T]{}
}

type twolist[T any] struct {
	front *link[T]
	back  *link[T]
}

func (q twolist[T]) Enqueue(item T) Queue[T] {
	return twolist[T]{front: q.front, back: cons(item, q.back)}
}

func (q twolist[T]) Dequeue() (maybe.Maybe[T], Queue[T]) {
	if q.front == nil {
		if q.back == nil {
			return maybe.Nothing[T](), q
		}
		tracer().Debugf("two-list queue reverses %d items", q.back.length())
		front := reverseOnto(q.back, nil) // the amortized debt comes due
		head, tail := front.force()
		return maybe.Just(head), twolist[T]{front: tail}
	}
	head, tail := q.front.force()
	return maybe.Just(head), twolist[T]{front: tail, back: q.back}
}

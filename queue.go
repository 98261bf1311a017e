package queues

import (
	"fmt"
	"strings"

	"github.com/npillmayer/queues/maybe"
)

// Queue is an immutable FIFO queue over items of type T. The internal
// representation is opaque: clients interact with a queue exclusively
// through Enqueue and Dequeue, and every implementation of this interface
// guarantees first-in-first-out order of its logical content.
type Queue[T any] interface {
	// Enqueue appends item at the logical tail and returns the resulting
	// queue. The receiver remains valid and unchanged.
	Enqueue(item T) Queue[T]
	// Dequeue removes the logical head. It returns Nothing if and only if
	// the queue is empty; otherwise the head together with a queue holding
	// the remaining items.
	Dequeue() (maybe.Maybe[T], Queue[T])
}

// EnqueueAll folds Enqueue over items, left to right.
func EnqueueAll[T any](q Queue[T], items ...T) Queue[T] {
	for _, item := range items {
		q = q.Enqueue(item)
	}
	return q
}

// ToSlice drains a queue by repeated dequeueing and returns its logical
// content, head first.
func ToSlice[T any](q Queue[T]) []T {
	var items []T
	for {
		head, rest := q.Dequeue()
		if head.IsNothing() {
			return items
		}
		var none T
		items = append(items, head.WithDefault(none))
		q = rest
	}
}

// Sprint renders the logical content of a queue, head first, as a
// delimited string, e.g. “⟨1 2 3⟩”. Intended for debugging and demos.
func Sprint[T any](q Queue[T]) string {
	b := strings.Builder{}
	b.WriteString("⟨")
	for i, item := range ToSlice(q) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", item)
	}
	b.WriteString("⟩")
	return b.String()
}

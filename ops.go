package queues

import (
	"fmt"

	"github.com/npillmayer/queues/maybe"
)

// Op is one step of a recorded queue workload: either an Enqueue carrying
// a value, or a Dequeue. Op values are immutable and serve purely as test
// input for the differential harness.
type Op[T any] struct {
	kind  opKind
	value T
}

type opKind uint8

const (
	opEnqueue opKind = iota
	opDequeue
)

// EnqOp is an operation enqueueing value.
func EnqOp[T any](value T) Op[T] {
	return Op[T]{kind: opEnqueue, value: value}
}

// DeqOp is a dequeue operation.
func DeqOp[T any]() Op[T] {
	return Op[T]{kind: opDequeue}
}

func (op Op[T]) String() string {
	if op.kind == opEnqueue {
		return fmt.Sprintf("Enq(%v)", op.value)
	}
	return "Deq"
}

// RunOps replays ops against a queue, left to right. Enqueues contribute
// nothing to the result stream; every dequeue contributes exactly one
// entry, Just(head) or Nothing for the empty-queue case.
func RunOps[T any](q Queue[T], ops []Op[T]) (Queue[T], []maybe.Maybe[T]) {
	var results []maybe.Maybe[T]
	for _, op := range ops {
		switch op.kind {
		case opEnqueue:
			q = q.Enqueue(op.value)
		case opDequeue:
			var head maybe.Maybe[T]
			head, q = q.Dequeue()
			results = append(results, head)
		}
	}
	return q, results
}

// SameResults replays ops against two queues in lockstep and reports
// whether their result streams agree. The comparison is meaningful when
// q1 and q2 start out with equal logical content; callers construct both
// queues from the same item sequence.
func SameResults[T comparable](q1, q2 Queue[T], ops []Op[T]) bool {
	_, r1 := RunOps(q1, ops)
	_, r2 := RunOps(q2, ops)
	if len(r1) != len(r2) {
		return false
	}
	for i := range r1 {
		if r1[i] != r2[i] {
			tracer().Debugf("result streams diverge at %d: %v vs %v", i, r1[i], r2[i])
			return false
		}
	}
	return true
}

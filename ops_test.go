package queues

import (
	"errors"
	"testing"

	"github.com/npillmayer/queues/check"
	"github.com/npillmayer/queues/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/smartystreets/goconvey/convey"
)

func TestRunOpsResultStream(t *testing.T) {
	ops := []Op[int]{DeqOp[int](), EnqOp(1), EnqOp(2), DeqOp[int](), DeqOp[int](), DeqOp[int]()}
	_, results := RunOps(Naive[int](), ops)
	want := []maybe.Maybe[int]{
		maybe.Nothing[int](), // dequeue on empty is a result, not an error
		maybe.Just(1),
		maybe.Just(2),
		maybe.Nothing[int](),
	}
	if len(results) != len(want) {
		t.Fatalf("expected %d result entries, got %d", len(want), len(results))
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("result %d: expected %v, got %v", i, want[i], results[i])
		}
	}
}

func TestObservationalEquivalence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "queues")
	defer teardown()
	gen := GenOps(check.IntRange(0, 9))
	shrink := ShrinkOps[int](check.ShrinkInt)
	convey.Convey("any generated workload behaves identically on all implementations", t, func() {
		suite := check.Suite{}
		suite.Add(
			check.ForAll("two-list matches naive", gen, shrink, func(ops []Op[int]) bool {
				return SameResults(Naive[int](), TwoList[int](), ops)
			}),
			check.ForAll("real-time matches naive", gen, shrink, func(ops []Op[int]) bool {
				return SameResults(Naive[int](), RealTime[int](), ops)
			}),
		)
		convey.So(suite.Run(check.Trials(400), check.Seed(42)), convey.ShouldBeNil)
	})
}

func TestEquivalenceWithEqualStartingContent(t *testing.T) {
	// the equivalence oracle is conditional on equal logical content, so
	// both queues get built from the same literal sequence
	gen := GenOps(check.IntRange(0, 9))
	shrink := ShrinkOps[int](check.ShrinkInt)
	convey.Convey("pre-filled queues stay in lockstep", t, func() {
		prop := check.ForAll("pre-filled real-time matches pre-filled naive", gen, shrink,
			func(ops []Op[int]) bool {
				q1 := EnqueueAll(Naive[int](), 7, 8, 9)
				q2 := EnqueueAll(RealTime[int](), 7, 8, 9)
				return SameResults(q1, q2, ops)
			})
		convey.So(prop.Check(check.Trials(300), check.Seed(17)), convey.ShouldBeNil)
	})
}

// prepending is a deliberately broken caricature of the naive queue:
// enqueue prepends instead of appending. The harness must refute it.
type prepending[T any] struct {
	items []T
}

func (q prepending[T]) Enqueue(item T) Queue[T] {
	items := make([]T, len(q.items)+1)
	copy(items[1:], q.items)
	items[0] = item
	return prepending[T]{items: items}
}

func (q prepending[T]) Dequeue() (maybe.Maybe[T], Queue[T]) {
	if len(q.items) == 0 {
		return maybe.Nothing[T](), q
	}
	return maybe.Just(q.items[0]), prepending[T]{items: q.items[1:]}
}

func TestNegativeControl(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "queues")
	defer teardown()
	prop := check.ForAll("prepending queue matches naive",
		GenOps(check.IntRange(0, 9)), ShrinkOps[int](check.ShrinkInt),
		func(ops []Op[int]) bool {
			return SameResults[int](Naive[int](), prepending[int]{}, ops)
		})
	err := prop.Check(check.Trials(2000), check.Seed(7))
	if err == nil {
		t.Fatal("expected the harness to refute the prepending queue, it didn't")
	}
	var failed *check.Failed[[]Op[int]]
	if !errors.As(err, &failed) {
		t.Fatalf("expected a check.Failed error, got %v", err)
	}
	ops := failed.Input
	t.Logf("minimal counterexample: %v", ops)
	if len(ops) != 3 {
		t.Fatalf("expected a minimal counterexample of 3 operations, got %v", ops)
	}
	if ops[0].kind != opEnqueue || ops[1].kind != opEnqueue || ops[2].kind != opDequeue {
		t.Errorf("expected shape [Enq a, Enq b, Deq], got %v", ops)
	}
	if ops[0].value == ops[1].value {
		t.Errorf("expected two distinct enqueued values, both are %v", ops[0].value)
	}
}

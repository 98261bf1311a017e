package queues

import (
	"github.com/npillmayer/queues/maybe"
)

// RealTime creates an empty persistent queue with worst-case O(1)
// operations, following Okasaki's real-time queue. The representation is
// a triple (front, back, schedule): front and schedule are possibly
// suspended streams, back a strict list, with
//
//	len(front) − len(back) == len(schedule)
//
// after every operation. The schedule is a suffix of front in its pending
// rotated form; its length counts how many incremental reversal steps
// remain before back must be flushed into front. Each operation advances
// the pending rotation by exactly one cell, so the cost of a full
// rotation is paid off before it can be demanded — even when arbitrary
// old versions of the queue are replayed.
func RealTime[T any]() Queue[T] {
	return realtime[T]{}
}

type realtime[T any] struct {
	front *link[T]
	back  *link[T]
	sched *link[T]
}

func (q realtime[T]) Enqueue(item T) Queue[T] {
	return exec(realtime[T]{front: q.front, back: cons(item, q.back), sched: q.sched})
}

func (q realtime[T]) Dequeue() (maybe.Maybe[T], Queue[T]) {
	if q.front == nil {
		assertThat(q.back == nil, "real-time queue with empty front has non-empty back")
		assertThat(q.sched == nil, "real-time queue with empty front has non-empty schedule")
		return maybe.Nothing[T](), q
	}
	head, tail := q.front.force()
	return maybe.Just(head), exec(realtime[T]{front: tail, back: q.back, sched: q.sched})
}

// exec re-establishes len(front) − len(back) == len(schedule) after an
// operation has grown back or shrunk front: either by acknowledging one
// step of the pending rotation, or — when the schedule is used up — by
// installing a fresh rotation as both the new front and the new schedule.
// The freshly rotated stream then has one cell forced per operation over
// the next len(front) calls.
func exec[T any](q realtime[T]) realtime[T] {
	if q.sched != nil {
		_, tail := q.sched.force() // one incremental rotation step
		return realtime[T]{front: q.front, back: q.back, sched: tail}
	}
	tracer().Debugf("schedule exhausted, rotating back into front")
	front := rotate(q.front, q.back, nil)
	return realtime[T]{front: front, sched: front}
}

// rotate produces xs ++ reverse(ys) as a suspended stream, consuming one
// cell of xs and one of ys per forced cell and collecting reversed ys in
// acc. Once xs is exhausted the remaining ys are folded onto acc
// strictly; in queue use len(ys) == len(xs)+1, so that final fold moves a
// single element. No cell performs more than constant work when forced.
func rotate[T any](xs, ys, acc *link[T]) *link[T] {
	if xs == nil {
		return reverseOnto(ys, acc)
	}
	return &link[T]{susp: func() (T, *link[T]) {
		head, xt := xs.force()
		yt, onto := ys, acc
		if ys != nil {
			var yh T
			yh, yt = ys.force()
			onto = cons(yh, acc)
		}
		return head, rotate(xt, yt, onto)
	}}
}

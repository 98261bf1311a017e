package queues

// link is one cell of an immutable list that may be lazily suspended.
// A nil *link is the empty list. A suspended cell computes its head and
// tail on first access and memoizes them in place, so forcing through a
// shared suffix performs the underlying work at most once — old and new
// incarnations of a queue share rotation progress transparently.
type link[T any] struct {
	head T
	tail *link[T]
	susp func() (T, *link[T])
}

// forceHook, when set, fires once per executed suspension. Serves as an
// instrumentation point for tracing lazy evaluation and for bounding the
// rotation work a single queue operation is allowed to do.
var forceHook func()

func (l *link[T]) force() (T, *link[T]) {
	if l.susp != nil {
		if forceHook != nil {
			forceHook()
		}
		l.head, l.tail = l.susp()
		l.susp = nil
		tracer().Debugf("forced stream cell ⟨%v⟩", l.head)
	}
	return l.head, l.tail
}

func cons[T any](head T, tail *link[T]) *link[T] {
	return &link[T]{head: head, tail: tail}
}

// fromSlice builds a strict list holding items in order.
func fromSlice[T any](items []T) *link[T] {
	var l *link[T]
	for i := len(items) - 1; i >= 0; i-- {
		l = cons(items[i], l)
	}
	return l
}

// slice materializes a list head-to-tail, forcing every cell.
func (l *link[T]) slice() []T {
	var items []T
	for l != nil {
		var head T
		head, l = l.force()
		items = append(items, head)
	}
	return items
}

func (l *link[T]) length() int {
	n := 0
	for l != nil {
		_, l = l.force()
		n++
	}
	return n
}

// reverseOnto prepends the elements of l, in reverse order, onto a list.
func reverseOnto[T any](l, onto *link[T]) *link[T] {
	for l != nil {
		var head T
		head, l = l.force()
		onto = cons(head, onto)
	}
	return onto
}

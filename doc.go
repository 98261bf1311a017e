/*
Package queues implements immutable persistent FIFO queues.

Three interchangeable implementations share a single abstraction: a naive
slice-backed queue serving as a correctness oracle, the classic two-list
queue with amortized O(1) operations, and a real-time queue after Okasaki
(“Purely Functional Data Structures”, Cambridge University Press, 1998),
which spreads the cost of reversing its back list over subsequent
operations by scheduling one incremental reversal step per call, giving
worst-case O(1) operations even under arbitrary replay of old versions.

Every queue value is immutable: Enqueue and Dequeue return a new queue and
leave the receiver fully usable. Any number of derived versions coexist
safely, which also makes queue values inherently concurrency-safe.

Besides the queues themselves the package carries an operation model
(Op, RunOps) and a differential replay harness (SameResults) used to
check the implementations against each other, driven by the
property-testing package check of this module.

Status

Requires Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queues

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'queues'.
func tracer() tracing.Trace {
	return tracing.Select("queues")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queues: "+msg, msgargs...)
		panic(msg)
	}
}

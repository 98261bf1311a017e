/*
Package check implements a small property-based testing harness: random
generation of inputs, a ForAll quantifier, and greedy shrinking of
failing inputs toward a minimal counterexample.

A property quantifies a predicate over generated values:

	prop := check.ForAll("addition commutes", gen, shrink, pred)
	err := prop.Check(check.Trials(500), check.Seed(1))

A refuted property is reported as a typed error carrying the minimized
counterexample; see Failed. Properties may be collected in a Suite and
run together.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package check

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'queues.check'.
func tracer() tracing.Trace {
	return tracing.Select("queues.check")
}

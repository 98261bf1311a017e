package check

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Gen produces one random value per call. The size hint loosely bounds
// the magnitude or length of generated values; the runner grows it over
// the course of the trials, so early counterexamples are small to begin
// with.
type Gen[T any] func(rng *rand.Rand, size int) T

// Shrink returns a finite list of strictly smaller candidates for x,
// ordered by preference. An empty result marks x as minimal. Candidates
// must form a well-founded descent — every chain of shrink steps
// terminates.
type Shrink[T any] func(x T) []T

// Property is a named, runnable property.
type Property interface {
	Name() string
	Check(opts ...Option) error
}

// ForAll quantifies pred over values drawn from gen. A nil shrink leaves
// counterexamples unminimized.
func ForAll[T any](name string, gen Gen[T], shrink Shrink[T], pred func(T) bool) Property {
	return property[T]{name: name, gen: gen, shrink: shrink, pred: pred}
}

type property[T any] struct {
	name   string
	gen    Gen[T]
	shrink Shrink[T]
	pred   func(T) bool
}

func (p property[T]) Name() string {
	return p.name
}

// Check runs the property for the configured number of trials. It
// returns nil if every trial passed, a configuration error for a
// malformed configuration, and a *Failed[T] wrapping the minimized
// counterexample otherwise.
func (p property[T]) Check(opts ...Option) error {
	cfg, err := makeConfig(opts)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(cfg.seed))
	for trial := 0; trial < cfg.trials; trial++ {
		size := cfg.maxSize * (trial + 1) / cfg.trials
		input := p.gen(rng, size)
		if p.pred(input) {
			continue
		}
		tracer().Infof("property %q refuted at trial %d, shrinking", p.name, trial)
		minimal, shrinks := p.minimize(input)
		return &Failed[T]{
			Prop:    p.name,
			Seed:    cfg.seed,
			Trial:   trial,
			Shrinks: shrinks,
			Input:   minimal,
		}
	}
	tracer().Debugf("property %q holds over %d trials", p.name, cfg.trials)
	return nil
}

// minimize greedily walks the shrink tree, always stepping to the first
// smaller candidate that still refutes the predicate, until it reaches a
// local minimum.
func (p property[T]) minimize(input T) (T, int) {
	if p.shrink == nil {
		return input, 0
	}
	shrinks := 0
	for {
		stepped := false
		for _, candidate := range p.shrink(input) {
			if !p.pred(candidate) {
				input = candidate
				shrinks++
				stepped = true
				break
			}
		}
		if !stepped {
			return input, shrinks
		}
	}
}

// Failed reports a refuted property together with the minimal failing
// input the shrinker arrived at. Retrieve it with errors.As.
type Failed[T any] struct {
	Prop    string
	Seed    int64
	Trial   int
	Shrinks int
	Input   T
}

func (f *Failed[T]) Error() string {
	return fmt.Sprintf("property %q refuted (seed %d, trial %d, %d shrinks), counterexample: %v",
		f.Prop, f.Seed, f.Trial, f.Shrinks, f.Input)
}

// --- Suite -----------------------------------------------------------------

// Suite collects properties to be checked together.
type Suite struct {
	props []Property
}

// Add registers properties with the suite.
func (s *Suite) Add(props ...Property) {
	s.props = append(s.props, props...)
}

// Run checks every registered property. The configuration is validated up
// front; a malformed configuration aborts the run before any property
// executes. A refuted property does not abort the run — remaining
// properties are still checked and failures aggregated into the returned
// error.
func (s *Suite) Run(opts ...Option) error {
	if _, err := makeConfig(opts); err != nil {
		return err
	}
	var failures multiFailure
	for _, p := range s.props {
		if err := p.Check(opts...); err != nil {
			tracer().Errorf("%v", err)
			failures = append(failures, err)
		} else {
			tracer().Infof("property %q holds", p.Name())
		}
	}
	switch len(failures) {
	case 0:
		return nil
	case 1:
		return failures[0]
	}
	return failures
}

type multiFailure []error

func (m multiFailure) Error() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "%d properties refuted:", len(m))
	for _, err := range m {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}
	return b.String()
}

// --- Configuration ---------------------------------------------------------

type config struct {
	trials  int
	maxSize int
	seed    int64
	seeded  bool
}

// Option configures a property run or a suite.
type Option func(config) config

// Trials sets the number of generated inputs per property; must be
// positive. Default is 100.
func Trials(n int) Option {
	return func(cfg config) config {
		cfg.trials = n
		return cfg
	}
}

// MaxSize bounds the size hint handed to generators; must be positive.
// Default is 50.
func MaxSize(n int) Option {
	return func(cfg config) config {
		cfg.maxSize = n
		return cfg
	}
}

// Seed pins the random source, making a run reproducible. Without it
// every run draws a fresh seed from the wall clock.
func Seed(seed int64) Option {
	return func(cfg config) config {
		cfg.seed = seed
		cfg.seeded = true
		return cfg
	}
}

func makeConfig(opts []Option) (config, error) {
	cfg := config{trials: 100, maxSize: 50}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	if cfg.trials < 1 {
		return cfg, fmt.Errorf("check: trial count must be positive, is %d", cfg.trials)
	}
	if cfg.maxSize < 1 {
		return cfg, fmt.Errorf("check: max size must be positive, is %d", cfg.maxSize)
	}
	if !cfg.seeded {
		cfg.seed = time.Now().UnixNano()
	}
	return cfg, nil
}

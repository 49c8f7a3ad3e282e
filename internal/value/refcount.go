package value

import "sync/atomic"

// Debug-build reference-count audit.
//
// The evaluator's ownership discipline treats every operation as
// consuming one strong reference per operand and producing a fresh one
// for its result. Go's garbage collector already reclaims memory, so
// this package does not free anything — it only counts constructions
// (Track) against the evaluator's explicit consumption of an operand
// (Release) so allocation/free balance can be asserted in tests.
// Counting is a no-op unless Debug is set, so it costs nothing in a
// normal build.

// Kind identifies which non-singleton variant a counter tracks.
// Singletons (K, S, I, V, D, C, E, At, Pipe, Term) are refcount-immune
// and have no Kind.
type Kind int

const (
	KindK1 Kind = iota
	KindS1
	KindS2
	KindD1
	KindContFn
	KindExprApp
	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindK1:
		return "K1"
	case KindS1:
		return "S1"
	case KindS2:
		return "S2"
	case KindD1:
		return "D1"
	case KindContFn:
		return "Cont"
	case KindExprApp:
		return "ExprApp"
	default:
		return "unknown"
	}
}

// Debug enables the audit counters. Off by default; tests that assert
// Testable Property 2 turn it on for the duration of the test.
var Debug bool

var (
	allocs [numKinds]atomic.Int64
	frees  [numKinds]atomic.Int64
)

// Track records the construction of one value of kind k.
func Track(k Kind) {
	if Debug {
		allocs[k].Add(1)
	}
}

// Release records the evaluator's consumption of one strong reference of
// kind k (one per operand the evaluator consumes).
func Release(k Kind) {
	if Debug {
		frees[k].Add(1)
	}
}

// Counters is a point-in-time snapshot of the allocation/release tally.
type Counters struct {
	Allocs [numKinds]int64
	Frees  [numKinds]int64
}

// Snapshot returns the current counts.
func Snapshot() Counters {
	var c Counters
	for k := Kind(0); k < numKinds; k++ {
		c.Allocs[k] = allocs[k].Load()
		c.Frees[k] = frees[k].Load()
	}
	return c
}

// ResetCounters zeroes every counter. Call between independent test runs
// so one test's leftovers don't pollute the next.
func ResetCounters() {
	for k := Kind(0); k < numKinds; k++ {
		allocs[k].Store(0)
		frees[k].Store(0)
	}
}

// Balanced reports whether every kind's allocations equal its releases.
func (c Counters) Balanced() bool {
	for k := Kind(0); k < numKinds; k++ {
		if c.Allocs[k] != c.Frees[k] {
			return false
		}
	}
	return true
}

// ReleaseFunc records consumption of one strong reference to f, a no-op
// for singletons and the payload-free-but-not-shared Dot/Question
// values, which transfer "for free" under the ownership discipline.
func ReleaseFunc(f Function) {
	switch f.(type) {
	case *K1:
		Release(KindK1)
	case *S1:
		Release(KindS1)
	case *S2:
		Release(KindS2)
	case *D1:
		Release(KindD1)
	case *Cont:
		Release(KindContFn)
	}
}

// Tracked constructors. Every non-singleton Function/Expr variant that
// carries a strong reference to its payload is built through one of
// these, so construction is always counted.

func NewK1(x Function) *K1 {
	Track(KindK1)
	return &K1{X: x}
}

func NewS1(x Function) *S1 {
	Track(KindS1)
	return &S1{X: x}
}

func NewS2(x, y Function) *S2 {
	Track(KindS2)
	return &S2{X: x, Y: y}
}

func NewD1(body Expr) *D1 {
	Track(KindD1)
	return &D1{Body: body}
}

func NewCont(k Continuation) *Cont {
	Track(KindContFn)
	return &Cont{K: k}
}

func NewExprApp(fn, arg Expr) *ExprApp {
	Track(KindExprApp)
	return &ExprApp{Fn: fn, Arg: arg}
}

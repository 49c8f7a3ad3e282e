package value

// Function is a head-normal combinator value: the only kind of thing
// Unlambda evaluation ever produces. The nine payload-free variants are
// package-level singletons; the rest carry strong references to the
// values that saturate them.
type Function interface {
	functionNode()
}

// singleton is embedded in the payload-free variants so each gets a
// distinct, comparable, zero-size type without per-occurrence allocation.
type singleton struct{}

func (singleton) functionNode() {}

type (
	kFunc    struct{ singleton }
	sFunc    struct{ singleton }
	iFunc    struct{ singleton }
	vFunc    struct{ singleton }
	dFunc    struct{ singleton }
	cFunc    struct{ singleton }
	eFunc    struct{ singleton }
	atFunc   struct{ singleton }
	pipeFunc struct{ singleton }
)

// The nine singletons. Comparable by identity (==) since they are
// zero-size struct values of distinct types; no refcount bookkeeping
// applies to them.
var (
	K    Function = kFunc{}
	S    Function = sFunc{}
	I    Function = iFunc{}
	V    Function = vFunc{}
	D    Function = dFunc{}
	C    Function = cFunc{}
	E    Function = eFunc{}
	At   Function = atFunc{}
	Pipe Function = pipeFunc{}
)

// K1 is k applied to one argument: a constant function that discards
// whatever it is next applied to and returns X.
type K1 struct {
	X Function
}

func (*K1) functionNode() {}

// S1 is s with one argument bound.
type S1 struct {
	X Function
}

func (*S1) functionNode() {}

// S2 is s with two arguments bound; applying it to z reduces to
// `` ``xz`yz ``.
type S2 struct {
	X, Y Function
}

func (*S2) functionNode() {}

// D1 is a promise: a delayed, unevaluated expression. Forcing it (by
// applying it to anything) evaluates Body and applies the result to the
// argument. Promises are not memoized — each force re-evaluates Body.
type D1 struct {
	Body Expr
}

func (*D1) functionNode() {}

// Dot writes Ch to stdout when applied, then returns its argument
// unchanged.
type Dot struct {
	Ch byte
}

func (Dot) functionNode() {}

// Question, when applied to an argument, applies that argument to i if
// the current latch byte equals Ch, else to v.
type Question struct {
	Ch byte
}

func (Question) functionNode() {}

// Cont is a reified continuation value produced by applying C. Applying
// a Cont discards the ambient continuation and resumes from K instead.
type Cont struct {
	K Continuation
}

func (*Cont) functionNode() {}

// NewlineByte is the byte `r` denotes.
const NewlineByte = '\n'

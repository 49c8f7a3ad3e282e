package value

// Continuation is a reified control-stack frame: the rest of the
// computation, linked to the frame above it via Next. The chain is
// finite and acyclic; it may be shared once captured by c and invoked
// more than once.
type Continuation interface {
	contNode()
}

// EvalApply is pushed while evaluating the function side of an
// application; it still holds the unevaluated argument expression. When
// a value v is tossed to it: if v is the unsaturated D, the promise
// D1(Arg) is produced without evaluating Arg (the delay rule); otherwise
// Arg is evaluated and v is applied to the result.
type EvalApply struct {
	Arg  Expr
	Next Continuation
}

func (*EvalApply) contNode() {}

// Apply is pushed once the function side of an application has reduced
// to a value; it holds that function, waiting for the argument to
// reduce so it can be applied.
type Apply struct {
	Fn   Function
	Next Continuation
}

func (*Apply) contNode() {}

// ApplyDee is pushed when forcing a promise: it holds the original
// argument, waiting for the promise body to reduce to a function so that
// function can be applied to it.
type ApplyDee struct {
	Arg  Function
	Next Continuation
}

func (*ApplyDee) contNode() {}

// Term is the terminal continuation: tossing a value to it ends the
// program with that value as the result. Singleton.
type termCont struct{}

func (termCont) contNode() {}

var TermCont Continuation = termCont{}

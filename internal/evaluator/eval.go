package evaluator

import "github.com/hybscloud/unlambda/internal/value"

// Eval reduces an expression one dispatch step: a bare function value
// tosses immediately, an application pushes its argument onto cont and
// descends into the function position.
func Eval(expr value.Expr, cont value.Continuation) Action {
	switch e := expr.(type) {
	case value.ExprFunction:
		return TossAction{Cont: cont, Val: e.Fun}
	case *value.ExprApp:
		next := &value.EvalApply{Arg: e.Arg, Next: cont}
		return EvalAction{Expr: e.Fn, Cont: next}
	default:
		// No well-formed Expr reaches here: parser.Parse only ever
		// constructs the two variants above. Best-effort continue: toss
		// v, the closest thing to "do nothing useful but keep the
		// trampoline moving."
		return TossAction{Cont: cont, Val: value.V}
	}
}

package evaluator

import "github.com/hybscloud/unlambda/internal/value"

// Toss unwinds one continuation frame against a produced function value v.
func Toss(cont value.Continuation, v value.Function) Action {
	switch c := cont.(type) {
	case *value.EvalApply:
		if v == value.D {
			// The promise rule: `dX does not evaluate X.
			promise := value.NewD1(c.Arg)
			return TossAction{Cont: c.Next, Val: promise}
		}
		next := &value.Apply{Fn: v, Next: c.Next}
		return EvalAction{Expr: c.Arg, Cont: next}
	case *value.Apply:
		return ApplyAction{Fn: c.Fn, Arg: v, Cont: c.Next}
	case *value.ApplyDee:
		return ApplyAction{Fn: v, Arg: c.Arg, Cont: c.Next}
	default:
		// Term is a singleton matched here by default rather than by
		// name: it carries no fields, and an unrecognized continuation
		// tag degrades to the same best-effort behavior — end the
		// program with the value in hand.
		return EndAction{Result: v}
	}
}

package evaluator

import (
	"github.com/hybscloud/unlambda/internal/ioruntime"
	"github.com/hybscloud/unlambda/internal/value"
)

// Apply is the per-combinator reduction table: given a function already
// in weak-head normal form and an argument, it produces the next action.
// host supplies the I/O side effects Dot, At, Question, and Pipe need.
func Apply(fn, arg value.Function, cont value.Continuation, host *ioruntime.Host) Action {
	switch fn {
	case value.K:
		return TossAction{Cont: cont, Val: value.NewK1(arg)}
	case value.S:
		return TossAction{Cont: cont, Val: value.NewS1(arg)}
	case value.I:
		return TossAction{Cont: cont, Val: arg}
	case value.V:
		value.ReleaseFunc(arg)
		return TossAction{Cont: cont, Val: value.V}
	case value.D:
		// Wrap: D arrived as an already-evaluated function being
		// applied directly, rather than via an EvalApply frame
		// observing D as a toss result. Both arrival routes must delay
		// without evaluating arg.
		return TossAction{Cont: cont, Val: value.NewD1(value.ExprFunction{Fun: arg})}
	case value.C:
		captured := value.NewCont(cont)
		return ApplyAction{Fn: arg, Arg: captured, Cont: cont}
	case value.E:
		return EndAction{Result: arg}
	case value.At:
		if host.ReadLatch() {
			return ApplyAction{Fn: arg, Arg: value.I, Cont: cont}
		}
		return ApplyAction{Fn: arg, Arg: value.V, Cont: cont}
	case value.Pipe:
		if ch, ok := host.Latch.Current(); ok {
			return ApplyAction{Fn: arg, Arg: value.Dot{Ch: ch}, Cont: cont}
		}
		return ApplyAction{Fn: arg, Arg: value.V, Cont: cont}
	}

	switch f := fn.(type) {
	case *value.K1:
		value.ReleaseFunc(arg)
		return TossAction{Cont: cont, Val: f.X}
	case *value.S1:
		return TossAction{Cont: cont, Val: value.NewS2(f.X, arg)}
	case *value.S2:
		// ``sxyz reduces to ``xz`yz: build the expression tree and
		// re-enter through Eval so the EvalApply frame it pushes can
		// observe a D result and delay correctly.
		xArg := value.NewExprApp(value.ExprFunction{Fun: f.X}, value.ExprFunction{Fun: arg})
		yArg := value.NewExprApp(value.ExprFunction{Fun: f.Y}, value.ExprFunction{Fun: arg})
		expr := value.NewExprApp(xArg, yArg)
		return EvalAction{Expr: expr, Cont: cont}
	case *value.D1:
		// Force: evaluate the promise body, then apply its result to
		// arg.
		next := &value.ApplyDee{Arg: arg, Next: cont}
		return EvalAction{Expr: f.Body, Cont: next}
	case *value.Cont:
		// Invoking a reified continuation discards the ambient one.
		return TossAction{Cont: f.K, Val: arg}
	case value.Dot:
		host.WriteByte(f.Ch)
		return TossAction{Cont: cont, Val: arg}
	case value.Question:
		if host.Latch.Matches(f.Ch) {
			return ApplyAction{Fn: arg, Arg: value.I, Cont: cont}
		}
		return ApplyAction{Fn: arg, Arg: value.V, Cont: cont}
	default:
		// Unrecognized function tag: best-effort continue as identity.
		return TossAction{Cont: cont, Val: arg}
	}
}

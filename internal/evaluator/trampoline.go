package evaluator

import (
	"errors"

	"github.com/hybscloud/unlambda/internal/ioruntime"
	"github.com/hybscloud/unlambda/internal/value"
	"github.com/rs/zerolog/log"
)

// Observer is called once per dispatch step, before the step's Action is
// executed. The default (nil) observer costs nothing; internal/diag
// supplies one to record an execution trace without coupling the
// evaluator to tracing concerns.
type Observer func(step int, a Action)

// ErrStepLimitExceeded is returned by DriveBounded/RunBounded when the
// dispatch loop reaches maxSteps before the program ends.
var ErrStepLimitExceeded = errors.New("evaluator: step limit exceeded")

// Drive runs the trampoline to completion and returns the final
// function value. Host-stack usage is O(1) regardless of program depth:
// the loop body never calls Eval/Toss/Apply from within each other,
// only from the loop.
func Drive(start Action, host *ioruntime.Host) value.Function {
	return DriveObserved(start, host, nil)
}

// DriveObserved is Drive with a per-step Observer hook.
func DriveObserved(start Action, host *ioruntime.Host, obs Observer) value.Function {
	result, _ := DriveBounded(start, host, obs, 0)
	return result
}

// DriveBounded is DriveObserved with an optional cap on dispatch steps.
// maxSteps <= 0 means unbounded; a runaway program (e.g. an unbounded
// Church-numeral loop) otherwise never returns.
func DriveBounded(start Action, host *ioruntime.Host, obs Observer, maxSteps int) (value.Function, error) {
	action := start
	for step := 0; ; step++ {
		if maxSteps > 0 && step >= maxSteps {
			return nil, ErrStepLimitExceeded
		}
		if obs != nil {
			obs(step, action)
		}
		switch a := action.(type) {
		case EvalAction:
			log.Trace().Int("step", step).Msg("eval")
			action = Eval(a.Expr, a.Cont)
		case TossAction:
			log.Trace().Int("step", step).Msg("toss")
			action = Toss(a.Cont, a.Val)
		case ApplyAction:
			log.Trace().Int("step", step).Msg("apply")
			action = Apply(a.Fn, a.Arg, a.Cont, host)
		case EndAction:
			log.Trace().Int("step", step).Msg("end")
			return a.Result, nil
		default:
			// Corrupted action tag: best-effort stop where we are.
			return value.V, nil
		}
	}
}

// Run is the top-level entry point: evaluate
// program under the terminal continuation and drive to completion.
func Run(program value.Expr, host *ioruntime.Host) value.Function {
	return Drive(EvalAction{Expr: program, Cont: value.TermCont}, host)
}

// RunObserved is Run with a per-step Observer hook and no step cap.
func RunObserved(program value.Expr, host *ioruntime.Host, obs Observer) value.Function {
	return DriveObserved(EvalAction{Expr: program, Cont: value.TermCont}, host, obs)
}

// RunBounded is RunObserved with a dispatch-step cap. The CLI runs every
// program through it, passing the config file's max_steps (0 = unbounded)
// and, with --trace-file, the trace recorder's Observer.
func RunBounded(program value.Expr, host *ioruntime.Host, obs Observer, maxSteps int) (value.Function, error) {
	return DriveBounded(EvalAction{Expr: program, Cont: value.TermCont}, host, obs, maxSteps)
}

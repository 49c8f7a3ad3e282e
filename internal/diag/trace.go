package diag

import (
	"io"

	"github.com/google/uuid"
	"github.com/shamaton/msgpack/v2"

	"github.com/hybscloud/unlambda/internal/evaluator"
	"github.com/hybscloud/unlambda/internal/printer"
	"github.com/hybscloud/unlambda/internal/value"
)

const previewLimit = 64

func exprPreview(e value.Expr) string {
	return truncate(printer.Expr(e))
}

func functionPreview(f value.Function) string {
	return truncate(printer.Function(f))
}

func truncate(s string) string {
	if len(s) <= previewLimit {
		return s
	}
	return s[:previewLimit] + "..."
}

// Record is one dispatch step of the trampoline, in a form plain enough
// for msgpack to round-trip without needing to know about value.Expr's
// sealed interfaces.
type Record struct {
	Step   int
	Kind   string // "eval", "toss", "apply", "end"
	Detail string // canonical-syntax snippet of the value in play
	Hash   uint64
}

// Trace is a complete recorded run: the Recorder's run id and the ordered
// step records. The run id is the fresh UUID NewRecorder assigns; it is
// not the run_id field the CLI attaches to its log lines.
type Trace struct {
	RunID string
	Steps []Record
}

// Recorder implements evaluator.Observer, accumulating one Record per
// step. Construct with NewRecorder; pass Recorder.Observe to
// evaluator.RunObserved / DriveObserved.
type Recorder struct {
	runID string
	steps []Record
}

// NewRecorder creates a Recorder tagged with a fresh run id.
func NewRecorder() *Recorder {
	return &Recorder{runID: uuid.NewString()}
}

// RunID returns the correlation id assigned at construction.
func (r *Recorder) RunID() string {
	return r.runID
}

// Observe matches evaluator.Observer's signature.
func (r *Recorder) Observe(step int, a evaluator.Action) {
	kind, hash, detail := describe(a)
	r.steps = append(r.steps, Record{Step: step, Kind: kind, Detail: detail, Hash: uint64(hash)})
}

// Trace returns everything recorded so far.
func (r *Recorder) Trace() Trace {
	return Trace{RunID: r.runID, Steps: r.steps}
}

func describe(a evaluator.Action) (kind string, hash Hash, detail string) {
	switch n := a.(type) {
	case evaluator.EvalAction:
		return "eval", HashExpr(n.Expr), exprPreview(n.Expr)
	case evaluator.TossAction:
		return "toss", HashFunction(n.Val), functionPreview(n.Val)
	case evaluator.ApplyAction:
		return "apply", HashFunction(n.Fn), functionPreview(n.Fn)
	case evaluator.EndAction:
		return "end", HashFunction(n.Result), functionPreview(n.Result)
	default:
		return "unknown", 0, ""
	}
}

// WriteTrace msgpack-encodes t to w, the --trace-file sink.
func WriteTrace(w io.Writer, t Trace) error {
	return msgpack.MarshalWrite(w, t)
}

// ReadTrace decodes a msgpack-encoded Trace from r (used by tests to
// round-trip Testable Property 8).
func ReadTrace(r io.Reader) (Trace, error) {
	var t Trace
	err := msgpack.UnmarshalRead(r, &t)
	return t, err
}

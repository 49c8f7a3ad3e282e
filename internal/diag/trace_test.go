package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hybscloud/unlambda/internal/evaluator"
	"github.com/hybscloud/unlambda/internal/value"
)

func TestHashFunctionStableAcrossRepeatedCalls(t *testing.T) {
	f := value.NewK1(value.I)
	assert.Equal(t, HashFunction(f), HashFunction(f))
}

func TestHashFunctionDistinguishesDistinctPrintedForms(t *testing.T) {
	assert.NotEqual(t, HashFunction(value.K), HashFunction(value.S))
}

func TestHashExprStableAcrossRepeatedCalls(t *testing.T) {
	e := &value.ExprApp{
		Fn:  value.ExprFunction{Fun: value.S},
		Arg: value.ExprFunction{Fun: value.I},
	}
	assert.Equal(t, HashExpr(e), HashExpr(e))
}

func TestRecorderObserveAccumulatesSteps(t *testing.T) {
	r := NewRecorder()
	assert.NotEmpty(t, r.RunID())

	r.Observe(0, evaluator.EvalAction{Expr: value.ExprFunction{Fun: value.I}})
	r.Observe(1, evaluator.TossAction{Val: value.K})
	r.Observe(2, evaluator.ApplyAction{Fn: value.K, Arg: value.I})
	r.Observe(3, evaluator.EndAction{Result: value.I})

	trace := r.Trace()
	require.Len(t, trace.Steps, 4)
	assert.Equal(t, "eval", trace.Steps[0].Kind)
	assert.Equal(t, "toss", trace.Steps[1].Kind)
	assert.Equal(t, "apply", trace.Steps[2].Kind)
	assert.Equal(t, "end", trace.Steps[3].Kind)
	assert.Equal(t, "i", trace.Steps[3].Detail)
}

func TestTraceMsgpackRoundTrip(t *testing.T) {
	want := Trace{
		RunID: "test-run-id",
		Steps: []Record{
			{Step: 0, Kind: "eval", Detail: "i", Hash: 42},
			{Step: 1, Kind: "end", Detail: "k", Hash: 7},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTrace(&buf, want))

	got, err := ReadTrace(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDescribeTruncatesLongPreviews(t *testing.T) {
	body := value.ExprFunction{Fun: value.I}
	for i := 0; i < previewLimit; i++ {
		body = value.ExprFunction{Fun: value.NewK1(body.Fun)}
	}
	kind, _, detail := describe(evaluator.EndAction{Result: body.Fun})
	assert.Equal(t, "end", kind)
	assert.LessOrEqual(t, len(detail), previewLimit+len("..."))
}

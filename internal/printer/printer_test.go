package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hybscloud/unlambda/internal/value"
)

func TestFunctionSingletons(t *testing.T) {
	cases := map[value.Function]string{
		value.S: "s", value.K: "k", value.I: "i", value.V: "v",
		value.D: "d", value.C: "c", value.E: "e", value.At: "@",
		value.Pipe: "|",
	}
	for f, want := range cases {
		assert.Equal(t, want, Function(f))
	}
}

func TestFunctionDotAndQuestion(t *testing.T) {
	assert.Equal(t, ".X", Function(value.Dot{Ch: 'X'}))
	assert.Equal(t, "r", Function(value.Dot{Ch: value.NewlineByte}))
	assert.Equal(t, "?a", Function(value.Question{Ch: 'a'}))
}

func TestFunctionDotEscapesNonPrintable(t *testing.T) {
	assert.Equal(t, ".\\x01", Function(value.Dot{Ch: 0x01}))
}

func TestFunctionPartialApplications(t *testing.T) {
	assert.Equal(t, "`ki", Function(value.NewK1(value.I)))
	assert.Equal(t, "`si", Function(value.NewS1(value.I)))
	assert.Equal(t, "``siv", Function(value.NewS2(value.I, value.V)))
}

func TestFunctionDelayedPromise(t *testing.T) {
	body := value.ExprFunction{Fun: value.I}
	assert.Equal(t, "`di", Function(value.NewD1(body)))
}

func TestFunctionCont(t *testing.T) {
	assert.Equal(t, "<cont>", Function(value.NewCont(value.TermCont)))
}

func TestExprApplicationAndAtom(t *testing.T) {
	assert.Equal(t, "i", Expr(value.ExprFunction{Fun: value.I}))

	app := &value.ExprApp{
		Fn:  value.ExprFunction{Fun: value.K},
		Arg: value.ExprFunction{Fun: value.I},
	}
	assert.Equal(t, "`ki", Expr(app))
}

func TestExprNestedApplication(t *testing.T) {
	inner := &value.ExprApp{
		Fn:  value.ExprFunction{Fun: value.S},
		Arg: value.ExprFunction{Fun: value.I},
	}
	outer := &value.ExprApp{Fn: inner, Arg: value.ExprFunction{Fun: value.I}}
	assert.Equal(t, "``sii", Expr(outer))
}

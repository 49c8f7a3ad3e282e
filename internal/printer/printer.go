// Package printer renders a value.Function or value.Expr back to
// canonical Unlambda source text.
package printer

import (
	"fmt"
	"strings"

	"github.com/hybscloud/unlambda/internal/value"
)

// Function renders a function value in canonical syntax.
func Function(f value.Function) string {
	var b strings.Builder
	writeFunction(&b, f)
	return b.String()
}

// Expr renders an expression tree in canonical syntax.
func Expr(e value.Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e value.Expr) {
	switch n := e.(type) {
	case value.ExprFunction:
		writeFunction(b, n.Fun)
	case *value.ExprApp:
		b.WriteByte('`')
		writeExpr(b, n.Fn)
		writeExpr(b, n.Arg)
	default:
		b.WriteString("<bad-expr>")
	}
}

func writeFunction(b *strings.Builder, f value.Function) string {
	switch v := f.(type) {
	case value.Dot:
		writeDot(b, v.Ch)
	case value.Question:
		b.WriteByte('?')
		writeByteLiteral(b, v.Ch)
	case *value.K1:
		b.WriteByte('`')
		b.WriteByte('k')
		writeFunction(b, v.X)
	case *value.S1:
		b.WriteByte('`')
		b.WriteByte('s')
		writeFunction(b, v.X)
	case *value.S2:
		b.WriteString("``")
		b.WriteByte('s')
		writeFunction(b, v.X)
		writeFunction(b, v.Y)
	case *value.D1:
		b.WriteByte('`')
		b.WriteByte('d')
		writeExpr(b, v.Body)
	case *value.Cont:
		b.WriteString("<cont>")
	default:
		b.WriteByte(letterFor(f))
	}
	return ""
}

func writeDot(b *strings.Builder, ch byte) {
	if ch == value.NewlineByte {
		b.WriteByte('r')
		return
	}
	b.WriteByte('.')
	writeByteLiteral(b, ch)
}

func writeByteLiteral(b *strings.Builder, ch byte) {
	if ch >= 0x20 && ch < 0x7f {
		b.WriteByte(ch)
		return
	}
	fmt.Fprintf(b, "\\x%02x", ch)
}

func letterFor(f value.Function) byte {
	switch f {
	case value.S:
		return 's'
	case value.K:
		return 'k'
	case value.I:
		return 'i'
	case value.V:
		return 'v'
	case value.D:
		return 'd'
	case value.C:
		return 'c'
	case value.E:
		return 'e'
	case value.At:
		return '@'
	case value.Pipe:
		return '|'
	default:
		return '?'
	}
}

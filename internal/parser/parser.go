// Package parser turns an Unlambda source byte stream into a value.Expr
// tree. It is a single hand-written recursive-descent pass over a byte
// cursor, in the style of a bytecode compiler front end rather than a
// parser-combinator library — the grammar is four shapes and doesn't
// need one.
package parser

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hybscloud/unlambda/internal/value"
)

// SyntaxError is returned for every parse failure: unexpected EOF or an
// unexpected byte where a token was expected.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unlambda: parse error at byte %d: %s", e.Offset, e.Msg)
}

// Profile restricts which tokens the parser accepts. Full is the
// reference dialect; Minimal implements only "s k i v d r .x", the
// restricted build some hosts permit.
type Profile int

const (
	Full Profile = iota
	Minimal
)

type parser struct {
	r       *bufio.Reader
	offset  int
	profile Profile
}

// Parse reads one complete Unlambda expression from r under the Full
// profile.
func Parse(r io.Reader) (value.Expr, error) {
	return ParseProfile(r, Full)
}

// ParseProfile reads one complete Unlambda expression from r, rejecting
// tokens outside profile.
func ParseProfile(r io.Reader, profile Profile) (value.Expr, error) {
	// Reuse an existing *bufio.Reader rather than wrapping it again: a
	// second bufio layer would prefetch bytes past the end of the
	// program into a buffer the caller can no longer see, stranding
	// them away from whatever reads stdin next (the @ combinator reads
	// from the same stream the program came from).
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	p := &parser{r: br, profile: profile}
	p.skipSpaceAndComments()
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) readByte() (byte, error) {
	b, err := p.r.ReadByte()
	if err == nil {
		p.offset++
	}
	return b, err
}

func (p *parser) peekByte() (byte, error) {
	b, err := p.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// skipSpaceAndComments consumes whitespace and "# ... \n" line comments
// between tokens.
func (p *parser) skipSpaceAndComments() {
	for {
		b, err := p.peekByte()
		if err != nil {
			return
		}
		switch {
		case isSpace(b):
			p.readByte()
		case b == '#':
			for {
				b, err := p.readByte()
				if err != nil || b == '\n' {
					break
				}
			}
		default:
			return
		}
	}
}

func (p *parser) require(kind Profile, name string) error {
	if p.profile == Minimal && kind == Full {
		return &SyntaxError{Offset: p.offset, Msg: fmt.Sprintf("combinator %q is not in the minimal profile", name)}
	}
	return nil
}

// parseExpr parses one expression: either a backtick application or a
// single atom.
func (p *parser) parseExpr() (value.Expr, error) {
	p.skipSpaceAndComments()
	b, err := p.readByte()
	if err != nil {
		return nil, &SyntaxError{Offset: p.offset, Msg: "unexpected end of input, expected an expression"}
	}

	switch {
	case b == '`':
		fn, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return value.NewExprApp(fn, arg), nil
	case b == 's' || b == 'S':
		return value.ExprFunction{Fun: value.S}, nil
	case b == 'k' || b == 'K':
		return value.ExprFunction{Fun: value.K}, nil
	case b == 'i' || b == 'I':
		return value.ExprFunction{Fun: value.I}, nil
	case b == 'v' || b == 'V':
		return value.ExprFunction{Fun: value.V}, nil
	case b == 'd' || b == 'D':
		return value.ExprFunction{Fun: value.D}, nil
	case b == 'r' || b == 'R':
		return value.ExprFunction{Fun: value.Dot{Ch: value.NewlineByte}}, nil
	case b == 'c' || b == 'C':
		if err := p.require(Full, "c"); err != nil {
			return nil, err
		}
		return value.ExprFunction{Fun: value.C}, nil
	case b == 'e' || b == 'E':
		if err := p.require(Full, "e"); err != nil {
			return nil, err
		}
		return value.ExprFunction{Fun: value.E}, nil
	case b == '@':
		if err := p.require(Full, "@"); err != nil {
			return nil, err
		}
		return value.ExprFunction{Fun: value.At}, nil
	case b == '|':
		if err := p.require(Full, "|"); err != nil {
			return nil, err
		}
		return value.ExprFunction{Fun: value.Pipe}, nil
	case b == '.':
		ch, err := p.readByte()
		if err != nil {
			return nil, &SyntaxError{Offset: p.offset, Msg: "unexpected end of input after '.'"}
		}
		return value.ExprFunction{Fun: value.Dot{Ch: ch}}, nil
	case b == '?':
		if err := p.require(Full, "?"); err != nil {
			return nil, err
		}
		ch, err := p.readByte()
		if err != nil {
			return nil, &SyntaxError{Offset: p.offset, Msg: "unexpected end of input after '?'"}
		}
		return value.ExprFunction{Fun: value.Question{Ch: ch}}, nil
	default:
		return nil, &SyntaxError{Offset: p.offset, Msg: fmt.Sprintf("unexpected %c (0x%02x)", printableOr(b), b)}
	}
}

func printableOr(b byte) rune {
	if b >= 0x20 && b < 0x7f {
		return rune(b)
	}
	return '?'
}

// Package diag provides optional debugging collaborators that sit
// outside the evaluator proper: structural hashing of the value recorded
// with each trace step, and an msgpack-encoded execution trace sink for
// --trace-file.
//
// Hash uint64 is computed with dgryski/go-farm, and records are
// serialized with shamaton/msgpack/v2's MarshalWrite/UnmarshalRead,
// adapted from content-addressed state snapshots to combinator-
// reduction step traces.
package diag

import (
	"github.com/dgryski/go-farm"
	"github.com/hybscloud/unlambda/internal/printer"
	"github.com/hybscloud/unlambda/internal/value"
)

// Hash is a structural content hash, stable across runs of the same
// program.
type Hash uint64

// HashFunction hashes a function value's canonical printed form. Two
// functions that print identically hash identically: the hash tells
// visibly distinct states apart, not pointer identities.
func HashFunction(f value.Function) Hash {
	return Hash(farm.Hash64([]byte(printer.Function(f))))
}

// HashExpr hashes an expression tree's canonical printed form.
func HashExpr(e value.Expr) Hash {
	return Hash(farm.Hash64([]byte(printer.Expr(e))))
}

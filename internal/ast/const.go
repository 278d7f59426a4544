package ast

import (
	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/token"
)

// Const is the shared implementation behind NumericConst, StringConst,
// and BoolConst (original statement.h's ValueStatement<T> template,
// generalized over object.Value's tagged union instead of three C++
// template instantiations - Go has no equivalent template mechanism, and
// the Kind is already carried by the Value itself).
type Const struct {
	Position token.Position
	Value    object.Value
}

// NewNumericConst, NewStringConst, and NewBoolConst are thin
// kind-specific constructors kept distinct to mirror // naming, even though they build the same node type.
func NewNumericConst(pos token.Position, n int32) *Const {
	return &Const{Position: pos, Value: object.Number(n)}
}

func NewStringConst(pos token.Position, s string) *Const {
	return &Const{Position: pos, Value: object.String(s)}
}

func NewBoolConst(pos token.Position, b bool) *Const {
	return &Const{Position: pos, Value: object.Bool(b)}
}

func (c *Const) Pos() token.Position { return c.Position }

func (c *Const) Evaluate(*object.Closure, *eval.Context) (object.Value, eval.Signal, error) {
	return c.Value, eval.SignalNone, nil
}

func (c *Const) String() string {
	s, _ := object.Render(c.Value, nil)
	return s
}

package ast

import (
	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/token"
)

// Comparator is one of object's six comparison functions, matching the
// original statement.h Comparison's std::function<bool(...)> field.
type Comparator func(lhs, rhs object.Value, ctx *eval.Context) (bool, error)

// Comparison is parameterized by Cmp: evaluates LHS then
// RHS unconditionally (no short-circuit) and yields a Bool.
type Comparison struct {
	binaryOperation
	Name string
	Cmp  Comparator
}

func NewComparison(pos token.Position, name string, cmp Comparator, lhs, rhs Node) *Comparison {
	return &Comparison{binaryOperation{pos, lhs, rhs}, name, cmp}
}

func (c *Comparison) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	lhs, rhs, sig, err := c.evalBoth(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	result, err := c.Cmp(lhs, rhs, ctx)
	if err != nil {
		return object.None, eval.SignalNone, err
	}
	return object.Bool(result), eval.SignalNone, nil
}

func (c *Comparison) String() string {
	return "(" + c.LHS.String() + " " + c.Name + " " + c.RHS.String() + ")"
}

// NewEqual, NewNotEqual, NewLess, NewGreater, NewLessOrEqual, and
// NewGreaterOrEqual are the six Comparison constructors the parser uses.
func NewEqual(pos token.Position, lhs, rhs Node) *Comparison {
	return NewComparison(pos, "==", object.Equal, lhs, rhs)
}

func NewNotEqual(pos token.Position, lhs, rhs Node) *Comparison {
	return NewComparison(pos, "!=", object.NotEqual, lhs, rhs)
}

func NewLess(pos token.Position, lhs, rhs Node) *Comparison {
	return NewComparison(pos, "<", object.Less, lhs, rhs)
}

func NewGreater(pos token.Position, lhs, rhs Node) *Comparison {
	return NewComparison(pos, ">", object.Greater, lhs, rhs)
}

func NewLessOrEqual(pos token.Position, lhs, rhs Node) *Comparison {
	return NewComparison(pos, "<=", object.LessOrEqual, lhs, rhs)
}

func NewGreaterOrEqual(pos token.Position, lhs, rhs Node) *Comparison {
	return NewComparison(pos, ">=", object.GreaterOrEqual, lhs, rhs)
}

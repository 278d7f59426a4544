package ast

import (
	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/token"
)

// And is short-circuit: RHS is evaluated only if LHS is truthy. Yields a Bool.
type And struct{ binaryOperation }

func NewAnd(pos token.Position, lhs, rhs Node) *And {
	return &And{binaryOperation{pos, lhs, rhs}}
}

func (a *And) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	lhs, sig, err := a.LHS.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	if !object.IsTrue(lhs) {
		return object.Bool(false), eval.SignalNone, nil
	}
	rhs, sig, err := a.RHS.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	return object.Bool(object.IsTrue(rhs)), eval.SignalNone, nil
}

func (a *And) String() string { return "(" + a.LHS.String() + " and " + a.RHS.String() + ")" }

// Or is short-circuit: RHS is evaluated only if LHS is falsy.
type Or struct{ binaryOperation }

func NewOr(pos token.Position, lhs, rhs Node) *Or {
	return &Or{binaryOperation{pos, lhs, rhs}}
}

func (o *Or) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	lhs, sig, err := o.LHS.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	if object.IsTrue(lhs) {
		return object.Bool(true), eval.SignalNone, nil
	}
	rhs, sig, err := o.RHS.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	return object.Bool(object.IsTrue(rhs)), eval.SignalNone, nil
}

func (o *Or) String() string { return "(" + o.LHS.String() + " or " + o.RHS.String() + ")" }

// Not yields the logical negation of Arg's truthiness.
type Not struct {
	Position token.Position
	Arg      Node
}

func (n *Not) Pos() token.Position { return n.Position }

func (n *Not) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	v, sig, err := n.Arg.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	return object.Bool(!object.IsTrue(v)), eval.SignalNone, nil
}

func (n *Not) String() string { return "not " + n.Arg.String() }

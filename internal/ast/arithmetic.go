package ast

import (
	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/token"
)

// binaryOperation is the shared LHS/RHS storage behind Add/Sub/Mult/Div/
// And/Or/Comparison (original statement.h's BinaryOperation base class).
type binaryOperation struct {
	Position token.Position
	LHS, RHS Node
}

func (b *binaryOperation) Pos() token.Position { return b.Position }

// evalBoth evaluates LHS then RHS left-to-right,
// short-circuiting on error or an in-flight Return signal from either.
func (b *binaryOperation) evalBoth(closure *object.Closure, ctx *eval.Context) (lhs, rhs object.Value, sig eval.Signal, err error) {
	lhs, sig, err = b.LHS.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return
	}
	rhs, sig, err = b.RHS.Evaluate(closure, ctx)
	return
}

// Add supports Number+Number, String+String, and ClassInstance+x via
// __add__.
type Add struct{ binaryOperation }

func NewAdd(pos token.Position, lhs, rhs Node) *Add {
	return &Add{binaryOperation{pos, lhs, rhs}}
}

func (a *Add) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	lhs, rhs, sig, err := a.evalBoth(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	v, err := object.Add(lhs, rhs, ctx)
	return v, eval.SignalNone, err
}

func (a *Add) String() string { return "(" + a.LHS.String() + " + " + a.RHS.String() + ")" }

// Sub supports Number-Number only.
type Sub struct{ binaryOperation }

func NewSub(pos token.Position, lhs, rhs Node) *Sub {
	return &Sub{binaryOperation{pos, lhs, rhs}}
}

func (s *Sub) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	lhs, rhs, sig, err := s.evalBoth(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	v, err := object.Sub(lhs, rhs)
	return v, eval.SignalNone, err
}

func (s *Sub) String() string { return "(" + s.LHS.String() + " - " + s.RHS.String() + ")" }

// Mult supports Number*Number only.
type Mult struct{ binaryOperation }

func NewMult(pos token.Position, lhs, rhs Node) *Mult {
	return &Mult{binaryOperation{pos, lhs, rhs}}
}

func (m *Mult) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	lhs, rhs, sig, err := m.evalBoth(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	v, err := object.Mult(lhs, rhs)
	return v, eval.SignalNone, err
}

func (m *Mult) String() string { return "(" + m.LHS.String() + " * " + m.RHS.String() + ")" }

// Div supports Number/Number with a nonzero divisor, truncating toward
// zero; zero divisor is a runtime error.
type Div struct{ binaryOperation }

func NewDiv(pos token.Position, lhs, rhs Node) *Div {
	return &Div{binaryOperation{pos, lhs, rhs}}
}

func (d *Div) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	lhs, rhs, sig, err := d.evalBoth(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	v, err := object.Div(lhs, rhs)
	return v, eval.SignalNone, err
}

func (d *Div) String() string { return "(" + d.LHS.String() + " / " + d.RHS.String() + ")" }

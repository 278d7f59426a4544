package ast

import (
	"strings"

	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/token"
)

// IfElse evaluates Cond, checks truthiness, and evaluates exactly one
// branch. Else may be nil; the result is then None.
type IfElse struct {
	Position token.Position
	Cond     Node
	Then     Node
	Else     Node
}

func (i *IfElse) Pos() token.Position { return i.Position }

func (i *IfElse) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	cond, sig, err := i.Cond.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	if object.IsTrue(cond) {
		return i.Then.Evaluate(closure, ctx)
	}
	if i.Else == nil {
		return object.None, eval.SignalNone, nil
	}
	return i.Else.Evaluate(closure, ctx)
}

func (i *IfElse) String() string {
	if i.Else == nil {
		return "if " + i.Cond.String() + ": " + i.Then.String()
	}
	return "if " + i.Cond.String() + ": " + i.Then.String() + " else: " + i.Else.String()
}

// Compound evaluates each statement in order, discarding results, and
// returns None - unless a Return signal fires, in which case it stops
// immediately and propagates the signal and value unchanged.
type Compound struct {
	Position token.Position
	Stmts    []Node
}

func NewCompound(pos token.Position, stmts ...Node) *Compound {
	return &Compound{Position: pos, Stmts: stmts}
}

func (c *Compound) Pos() token.Position { return c.Position }

func (c *Compound) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	for _, stmt := range c.Stmts {
		ctx.Tracef("%d:%d: %s", stmt.Pos().Line, stmt.Pos().Column, stmt.String())
		v, sig, err := stmt.Evaluate(closure, ctx)
		if err != nil || sig == eval.SignalReturn {
			return v, sig, err
		}
	}
	return object.None, eval.SignalNone, nil
}

func (c *Compound) String() string {
	parts := make([]string, len(c.Stmts))
	for i, s := range c.Stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n")
}

// Return evaluates Expr and raises SignalReturn, which every enclosing
// Compound/IfElse propagates unchanged until the nearest MethodBody
// absorbs it.
type Return struct {
	Position token.Position
	Expr     Node
}

func (r *Return) Pos() token.Position { return r.Position }

func (r *Return) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	v, sig, err := r.Expr.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return v, sig, err
	}
	return v, eval.SignalReturn, nil
}

func (r *Return) String() string { return "return " + r.Expr.String() }

// MethodBody wraps a method's statement list, catching a Return signal
// from anywhere within and yielding its value, or None if control reaches
// the end without one.
type MethodBody struct {
	Position token.Position
	Body     Node
}

func (m *MethodBody) Pos() token.Position { return m.Position }

func (m *MethodBody) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	ctx.Tracef("entering method body")
	v, sig, err := m.Body.Evaluate(closure, ctx)
	if err != nil {
		return object.None, eval.SignalNone, err
	}
	if sig == eval.SignalReturn {
		ctx.Tracef("method returned a %s", v.Kind)
		return v, eval.SignalNone, nil
	}
	return object.None, eval.SignalNone, nil
}

func (m *MethodBody) String() string { return m.Body.String() }

// ClassDefinition binds a class's name to its Value in the current
// Closure; the class Value itself is built by the parser
// once all of the class's methods and its parent are resolvable.
type ClassDefinition struct {
	Position token.Position
	Name     string
	Class    object.Value
}

func (c *ClassDefinition) Pos() token.Position { return c.Position }

func (c *ClassDefinition) Evaluate(closure *object.Closure, _ *eval.Context) (object.Value, eval.Signal, error) {
	closure.Set(c.Name, c.Class)
	return c.Class, eval.SignalNone, nil
}

func (c *ClassDefinition) String() string { return "class " + c.Name }

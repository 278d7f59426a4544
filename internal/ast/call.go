package ast

import (
	"fmt"
	"strings"

	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/token"
)

// MethodCall evaluates Object (must be a ClassInstance), checks
// HasMethod, evaluates each argument left-to-right, and performs the
// call.
type MethodCall struct {
	Position token.Position
	Object   Node
	Method   string
	Args     []Node
}

func (m *MethodCall) Pos() token.Position { return m.Position }

func (m *MethodCall) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	recv, sig, err := m.Object.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	if recv.Kind != object.KindInstance {
		return object.None, eval.SignalNone, &eval.RuntimeError{
			Kind:    eval.KindType,
			Message: fmt.Sprintf("%s is not a class instance, cannot call %q", recv.Kind, m.Method),
		}
	}

	args := make([]object.Value, 0, len(m.Args))
	for _, a := range m.Args {
		v, sig, err := a.Evaluate(closure, ctx)
		if err != nil || sig == eval.SignalReturn {
			return object.None, sig, err
		}
		args = append(args, v)
	}

	ctx.Tracef("calling %s.%s with %d arg(s)", recv.Instance.Class.Name, m.Method, len(args))
	result, err := recv.Instance.Call(m.Method, args, ctx)
	return result, eval.SignalNone, err
}

func (m *MethodCall) String() string {
	parts := make([]string, len(m.Args))
	for i, a := range m.Args {
		parts[i] = a.String()
	}
	return m.Object.String() + "." + m.Method + "(" + strings.Join(parts, ", ") + ")"
}

// NewInstance allocates a fresh ClassInstance bound to Class, invoking
// __init__ with the evaluated Args if one exists at matching arity and
// discarding its return value. Class is resolved by the
// parser at AST-construction time, matching the original's
// `const runtime::Class&` binding rather than re-resolving a class
// reference on every evaluation.
type NewInstance struct {
	Position  token.Position
	Class     *object.ClassDef
	ClassName string
	Args      []Node
}

func (n *NewInstance) Pos() token.Position { return n.Position }

func (n *NewInstance) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	inst := object.NewInstance(n.Class)

	args := make([]object.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, sig, err := a.Evaluate(closure, ctx)
		if err != nil || sig == eval.SignalReturn {
			return object.None, sig, err
		}
		args = append(args, v)
	}

	ctx.Tracef("instantiating %s with %d arg(s)", n.ClassName, len(args))
	if inst.HasMethod("__init__", len(args)) {
		if _, err := inst.Call("__init__", args, ctx); err != nil {
			return object.None, eval.SignalNone, err
		}
	}

	return object.FromInstance(inst), eval.SignalNone, nil
}

func (n *NewInstance) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.ClassName + "(" + strings.Join(parts, ", ") + ")"
}

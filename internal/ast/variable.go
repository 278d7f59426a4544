package ast

import (
	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/token"
)

// VariableValue resolves a dotted identifier path: the
// first segment in the current Closure, each further segment as a field
// of the previously resolved ClassInstance.
type VariableValue struct {
	Position token.Position
	Ids      []string
}

func NewVariableValue(pos token.Position, ids ...string) *VariableValue {
	return &VariableValue{Position: pos, Ids: ids}
}

func (v *VariableValue) Pos() token.Position { return v.Position }

func (v *VariableValue) Evaluate(closure *object.Closure, _ *eval.Context) (object.Value, eval.Signal, error) {
	val, err := resolveDotted(closure, v.Ids, v.Position)
	return val, eval.SignalNone, err
}

func (v *VariableValue) String() string { return joinDotted(v.Ids) }

// Assignment evaluates rvalue and binds the result to name in the current
// Closure, returning that same value.
type Assignment struct {
	Position token.Position
	Name     string
	RValue   Node
}

func (a *Assignment) Pos() token.Position { return a.Position }

func (a *Assignment) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	v, sig, err := a.RValue.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return v, sig, err
	}
	closure.Set(a.Name, v)
	return v, eval.SignalNone, nil
}

func (a *Assignment) String() string { return a.Name + " = " + a.RValue.String() }

// FieldAssignment resolves ObjectPath to a ClassInstance, evaluates
// RValue, and binds Field directly on that instance's Fields closure
//. ObjectPath itself uses VariableValue resolution, so a
// path like `a.b.c = expr` assigns field `c` on the instance reached by
// resolving `a.b`.
type FieldAssignment struct {
	Position   token.Position
	ObjectPath *VariableValue
	Field      string
	RValue     Node
}

func (f *FieldAssignment) Pos() token.Position { return f.Position }

func (f *FieldAssignment) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	target, sig, err := f.ObjectPath.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return target, sig, err
	}
	if target.Kind != object.KindInstance {
		return object.None, eval.SignalNone, &eval.RuntimeError{
			Kind:    eval.KindType,
			Message: "field assignment target is not a class instance",
		}
	}
	v, sig, err := f.RValue.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return v, sig, err
	}
	target.Instance.Fields.Set(f.Field, v)
	return v, eval.SignalNone, nil
}

func (f *FieldAssignment) String() string {
	return f.ObjectPath.String() + "." + f.Field + " = " + f.RValue.String()
}

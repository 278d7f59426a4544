// Package ast defines Mython's AST node set and its single operation,
// evaluate(closure, context) -> Value. Node types
// implement object.Executable so a *ClassDef's Method.Body can hold one
// without internal/object importing this package.
package ast

import (
	"fmt"
	"strings"

	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/suggest"
	"github.com/opal-lang/mython/internal/token"
)

// Node is satisfied by every AST node: evaluate plus enough metadata for
// diagnostics (a Pos()/String() pair, trimmed to what Mython's flat
// tree needs).
type Node interface {
	object.Executable
	Pos() token.Position
	String() string
}

// resolveDotted implements VariableValue's resolution algorithm: resolve the first id in closure, then for each subsequent id the
// previously resolved value must be a ClassInstance whose Fields closure
// is descended into.
func resolveDotted(closure *object.Closure, ids []string, pos token.Position) (object.Value, error) {
	v, ok := closure.Get(ids[0])
	if !ok {
		return object.None, nameError(ids[0], closure.Names(), pos)
	}
	for _, name := range ids[1:] {
		if v.Kind != object.KindInstance {
			return object.None, &eval.RuntimeError{
				Kind:    eval.KindNameResolution,
				Message: fmt.Sprintf("%s is not a class instance, cannot resolve field %q", v.Kind, name),
			}
		}
		next, ok := v.Instance.Fields.Get(name)
		if !ok {
			return object.None, nameError(name, v.Instance.Fields.Names(), pos)
		}
		v = next
	}
	return v, nil
}

func nameError(name string, candidates []string, pos token.Position) error {
	return &eval.RuntimeError{
		Kind:    eval.KindNameResolution,
		Message: fmt.Sprintf("name %q is not defined", name),
		Suggest: suggest.Closest(name, candidates),
	}
}

func joinDotted(ids []string) string {
	return strings.Join(ids, ".")
}

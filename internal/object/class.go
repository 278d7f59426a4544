package object

import (
	"fmt"

	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/identity"
	"github.com/opal-lang/mython/internal/invariant"
	"github.com/opal-lang/mython/internal/suggest"
)

// Method is a named, fixed-arity callable belonging to a ClassDef. Body
// is whatever internal/ast node the parser built for the method's
// statement list, wrapped in a MethodBody node so Call's Return handling
// works uniformly.
type Method struct {
	Name   string
	Params []string
	Body   Executable
}

// ClassDef is a single-inheritance class: its own methods plus an
// optional Parent to search when a method isn't found locally (original
// runtime.cpp's Class::GetMethod parent-chain walk).
type ClassDef struct {
	Name    string
	Parent  *ClassDef
	Methods map[string]*Method
}

// NewClassDef builds a ClassDef from its own method set; parent may be
// nil for a root class. HasMethod/Call only agree on arity because
// Params never holds "self" - the parser rejects it as a declared
// formal, and this is the backstop for any other caller building a
// Method by hand.
func NewClassDef(name string, parent *ClassDef, methods []*Method) *ClassDef {
	c := &ClassDef{Name: name, Parent: parent, Methods: make(map[string]*Method, len(methods))}
	for _, m := range methods {
		for _, param := range m.Params {
			invariant.Precondition(param != "self", "method %q.%q must not declare \"self\" as a formal parameter", name, m.Name)
		}
		c.Methods[m.Name] = m
	}
	return c
}

// GetMethod walks the class, then its parent chain, returning nil if
// nothing named name exists anywhere in the chain.
func (c *ClassDef) GetMethod(name string) *Method {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil
}

// MethodNames collects every method name reachable from c, own plus
// inherited, for internal/suggest candidates on a missing-method error.
func (c *ClassDef) MethodNames() []string {
	seen := make(map[string]struct{})
	for cls := c; cls != nil; cls = cls.Parent {
		for name := range cls.Methods {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	return names
}

// ClassInstance is a live object: a class pointer plus a Fields closure
// holding its attributes. Identity is a BLAKE2b-derived token (see
// internal/identity), never the Go pointer, so printing a bare instance
// never leaks host memory layout.
type ClassInstance struct {
	Class    *ClassDef
	Fields   *Closure
	identity string
}

// NewInstance allocates an empty instance bound to class. __init__ is not
// invoked here; the NewInstance AST node is responsible for that, since it needs evaluated argument Values and a Context.
func NewInstance(class *ClassDef) *ClassInstance {
	return &ClassInstance{Class: class, Fields: NewClosure(), identity: identity.Next()}
}

// Identity returns the instance's stable, non-pointer display token.
func (ci *ClassInstance) Identity() string {
	return ci.identity
}

// HasMethod reports whether class defines (or inherits) method with
// exactly argumentCount formal parameters (original
// ClassInstance::HasMethod).
func (ci *ClassInstance) HasMethod(method string, argumentCount int) bool {
	m := ci.Class.GetMethod(method)
	return m != nil && len(m.Params) == argumentCount
}

// Call invokes method with actualArgs bound to its formal parameters plus
// an implicit "self" (original ClassInstance::Call). Returns a
// *eval.RuntimeError if the method doesn't exist at that arity.
func (ci *ClassInstance) Call(method string, actualArgs []Value, ctx *eval.Context) (Value, error) {
	if !ci.HasMethod(method, len(actualArgs)) {
		return None, ci.noMethodError(method, len(actualArgs))
	}
	m := ci.Class.GetMethod(method)

	if err := ctx.EnterCall(); err != nil {
		return None, err
	}
	defer ctx.ExitCall()

	args := NewClosure()
	args.Set("self", FromInstance(ci))
	for i, name := range m.Params {
		args.Set(name, actualArgs[i])
	}

	result, _, err := m.Body.Evaluate(args, ctx)
	return result, err
}

func (ci *ClassInstance) noMethodError(method string, argc int) error {
	hint := suggest.Closest(method, ci.Class.MethodNames())
	return &eval.RuntimeError{
		Kind:    eval.KindArity,
		Message: fmt.Sprintf("%s has no method %q with %d argument(s)", ci.Class.Name, method, argc),
		Suggest: hint,
	}
}

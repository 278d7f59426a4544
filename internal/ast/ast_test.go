package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/token"
)

func newTestContext() (*eval.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	return eval.NewContext(&buf, 1000, false), &buf
}

var zeroPos token.Position

// TestArithmeticAndPrint covers `x = 1 + 2; print x` -> `3\n`.
func TestArithmeticAndPrint(t *testing.T) {
	ctx, buf := newTestContext()
	closure := object.NewClosure()

	prog := NewCompound(zeroPos,
		&Assignment{Position: zeroPos, Name: "x", RValue: NewAdd(zeroPos, NewNumericConst(zeroPos, 1), NewNumericConst(zeroPos, 2))},
		NewPrint(zeroPos, NewVariableValue(zeroPos, "x")),
	)

	_, sig, err := prog.Evaluate(closure, ctx)
	require.NoError(t, err)
	assert.Equal(t, eval.SignalNone, sig)
	assert.Equal(t, "3\n", buf.String())
}

// TestStringConcatenationAndPrint covers scenario 2.
func TestStringConcatenationAndPrint(t *testing.T) {
	ctx, buf := newTestContext()
	closure := object.NewClosure()

	prog := NewCompound(zeroPos,
		&Assignment{Position: zeroPos, Name: "s", RValue: NewAdd(zeroPos, NewStringConst(zeroPos, "a"), NewStringConst(zeroPos, "b"))},
		NewPrint(zeroPos, NewVariableValue(zeroPos, "s")),
	)

	_, _, err := prog.Evaluate(closure, ctx)
	require.NoError(t, err)
	assert.Equal(t, "ab\n", buf.String())
}

// buildClassP builds scenario 3's class P with __init__ and __str__.
func buildClassP() *object.ClassDef {
	initBody := &MethodBody{Body: &FieldAssignment{
		ObjectPath: NewVariableValue(zeroPos, "self"),
		Field:      "a",
		RValue:     NewVariableValue(zeroPos, "a"),
	}}
	strBody := &MethodBody{Body: &Return{Expr: NewVariableValue(zeroPos, "self", "a")}}

	return object.NewClassDef("P", nil, []*object.Method{
		{Name: "__init__", Params: []string{"a"}, Body: initBody},
		{Name: "__str__", Params: nil, Body: strBody},
	})
}

// TestClassWithStrMethod covers scenario 3.
func TestClassWithStrMethod(t *testing.T) {
	ctx, buf := newTestContext()
	closure := object.NewClosure()
	classP := buildClassP()

	prog := NewCompound(zeroPos,
		&ClassDefinition{Name: "P", Class: object.FromClass(classP)},
		&Assignment{Name: "p", RValue: &NewInstance{Class: classP, ClassName: "P", Args: []Node{NewStringConst(zeroPos, "hi")}}},
		NewPrint(zeroPos, NewVariableValue(zeroPos, "p")),
	)

	_, _, err := prog.Evaluate(closure, ctx)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", buf.String())
}

// TestInheritanceOverride covers scenario 4: B(A) overrides f(); b.f() ==
// 2, not A's 1.
func TestInheritanceOverride(t *testing.T) {
	ctx, buf := newTestContext()
	closure := object.NewClosure()

	classA := object.NewClassDef("A", nil, []*object.Method{
		{Name: "f", Body: &MethodBody{Body: &Return{Expr: NewNumericConst(zeroPos, 1)}}},
	})
	classB := object.NewClassDef("B", classA, []*object.Method{
		{Name: "f", Body: &MethodBody{Body: &Return{Expr: NewNumericConst(zeroPos, 2)}}},
	})

	prog := NewCompound(zeroPos,
		&Assignment{Name: "b", RValue: &NewInstance{Class: classB, ClassName: "B"}},
		NewPrint(zeroPos, &MethodCall{Object: NewVariableValue(zeroPos, "b"), Method: "f"}),
	)

	_, _, err := prog.Evaluate(closure, ctx)
	require.NoError(t, err)
	assert.Equal(t, "2\n", buf.String())
}

// TestDivisionByZeroIsFatal covers scenario 5.
func TestDivisionByZeroIsFatal(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewClosure()

	prog := NewPrint(zeroPos, NewDiv(zeroPos, NewNumericConst(zeroPos, 1), NewNumericConst(zeroPos, 0)))

	_, _, err := prog.Evaluate(closure, ctx)
	require.Error(t, err)
	rerr, ok := err.(*eval.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, eval.KindArithmetic, rerr.Kind)
}

func TestReturnPropagatesThroughNestedIfAndCompound(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewClosure()

	body := NewCompound(zeroPos,
		&IfElse{
			Cond: NewBoolConst(zeroPos, true),
			Then: NewCompound(zeroPos, &Return{Expr: NewNumericConst(zeroPos, 42)}),
		},
		NewPrint(zeroPos, NewNumericConst(zeroPos, 999)), // must never execute
	)
	method := &MethodBody{Body: body}

	v, sig, err := method.Evaluate(closure, ctx)
	require.NoError(t, err)
	assert.Equal(t, eval.SignalNone, sig)
	assert.Equal(t, object.Number(42), v)
}

func TestShortCircuitAndDoesNotEvaluateRHS(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewClosure()
	closure.Set("hits", object.Number(0))

	sideEffect := &Assignment{Name: "hits", RValue: NewNumericConst(zeroPos, 1)}
	and := NewAnd(zeroPos, NewBoolConst(zeroPos, false), sideEffect)

	v, _, err := and.Evaluate(closure, ctx)
	require.NoError(t, err)
	assert.Equal(t, object.Bool(false), v)

	hits, _ := closure.Get("hits")
	assert.Equal(t, object.Number(0), hits, "RHS of And(False, ...) must not execute")
}

func TestShortCircuitOrDoesNotEvaluateRHS(t *testing.T) {
	ctx, _ := newTestContext()
	closure := object.NewClosure()
	closure.Set("hits", object.Number(0))

	sideEffect := &Assignment{Name: "hits", RValue: NewNumericConst(zeroPos, 1)}
	or := NewOr(zeroPos, NewBoolConst(zeroPos, true), sideEffect)

	v, _, err := or.Evaluate(closure, ctx)
	require.NoError(t, err)
	assert.Equal(t, object.Bool(true), v)

	hits, _ := closure.Get("hits")
	assert.Equal(t, object.Number(0), hits, "RHS of Or(True, ...) must not execute")
}

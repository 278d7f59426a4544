package object

import (
	"fmt"

	"github.com/opal-lang/mython/internal/eval"
)

// Equal implements the equality contract: same-kind Bool/Number/
// String compare by value, two None values compare equal, a ClassInstance
// with a one-arg __eq__ defers to it, and anything else is a type error
// (original Equal's TryAs<T> chain plus its "both null" fallback).
func Equal(lhs, rhs Value, ctx *eval.Context) (bool, error) {
	if lhs.Kind == KindBool && rhs.Kind == KindBool {
		return lhs.Bool == rhs.Bool, nil
	}
	if lhs.Kind == KindNumber && rhs.Kind == KindNumber {
		return lhs.Num == rhs.Num, nil
	}
	if lhs.Kind == KindString && rhs.Kind == KindString {
		return lhs.Str == rhs.Str, nil
	}
	if lhs.Kind == KindInstance && lhs.Instance.HasMethod("__eq__", 1) {
		result, err := lhs.Instance.Call("__eq__", []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	}
	if lhs.Kind == KindNone && rhs.Kind == KindNone {
		return true, nil
	}
	return false, typeErrorf("cannot compare %s and %s for equality", lhs.Kind, rhs.Kind)
}

// Less implements the same dispatch shape as Equal for __lt__.
func Less(lhs, rhs Value, ctx *eval.Context) (bool, error) {
	if lhs.Kind == KindBool && rhs.Kind == KindBool {
		return !lhs.Bool && rhs.Bool, nil
	}
	if lhs.Kind == KindNumber && rhs.Kind == KindNumber {
		return lhs.Num < rhs.Num, nil
	}
	if lhs.Kind == KindString && rhs.Kind == KindString {
		return lhs.Str < rhs.Str, nil
	}
	if lhs.Kind == KindInstance && lhs.Instance.HasMethod("__lt__", 1) {
		result, err := lhs.Instance.Call("__lt__", []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	}
	return false, typeErrorf("cannot compare %s and %s for order", lhs.Kind, rhs.Kind)
}

// NotEqual, Greater, LessOrEqual, and GreaterOrEqual are all derived from
// Equal/Less, exactly as the original
// runtime.cpp defines them in terms of each other.
func NotEqual(lhs, rhs Value, ctx *eval.Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	return !eq, err
}

func Greater(lhs, rhs Value, ctx *eval.Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	neq, err := NotEqual(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !less && neq, nil
}

func LessOrEqual(lhs, rhs Value, ctx *eval.Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	return !gt, err
}

func GreaterOrEqual(lhs, rhs Value, ctx *eval.Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	return !less, err
}

func typeErrorf(format string, args ...interface{}) error {
	return &eval.RuntimeError{Kind: eval.KindType, Message: fmt.Sprintf(format, args...)}
}

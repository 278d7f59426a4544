package object

import "github.com/opal-lang/mython/internal/eval"

// Add implements Add: Number+Number, String+String, or
// ClassInstance+x via a one-arg __add__. Native 32-bit wraparound on
// overflow, no mixed-type coercion.
func Add(lhs, rhs Value, ctx *eval.Context) (Value, error) {
	switch {
	case lhs.Kind == KindNumber && rhs.Kind == KindNumber:
		return Number(lhs.Num + rhs.Num), nil
	case lhs.Kind == KindString && rhs.Kind == KindString:
		return String(lhs.Str + rhs.Str), nil
	case lhs.Kind == KindInstance && lhs.Instance.HasMethod("__add__", 1):
		return lhs.Instance.Call("__add__", []Value{rhs}, ctx)
	default:
		return None, typeErrorf("unsupported operand types for +: %s and %s", lhs.Kind, rhs.Kind)
	}
}

// Sub implements Number-Number only.
func Sub(lhs, rhs Value) (Value, error) {
	if lhs.Kind == KindNumber && rhs.Kind == KindNumber {
		return Number(lhs.Num - rhs.Num), nil
	}
	return None, typeErrorf("unsupported operand types for -: %s and %s", lhs.Kind, rhs.Kind)
}

// Mult implements Number*Number only.
func Mult(lhs, rhs Value) (Value, error) {
	if lhs.Kind == KindNumber && rhs.Kind == KindNumber {
		return Number(lhs.Num * rhs.Num), nil
	}
	return None, typeErrorf("unsupported operand types for *: %s and %s", lhs.Kind, rhs.Kind)
}

// Div implements Number/Number with truncating (toward-zero) division;
// division by zero is a runtime error, not a panic.
func Div(lhs, rhs Value) (Value, error) {
	if lhs.Kind != KindNumber || rhs.Kind != KindNumber {
		return None, typeErrorf("unsupported operand types for /: %s and %s", lhs.Kind, rhs.Kind)
	}
	if rhs.Num == 0 {
		return None, &eval.RuntimeError{Kind: eval.KindArithmetic, Message: "division by zero"}
	}
	return Number(lhs.Num / rhs.Num), nil
}

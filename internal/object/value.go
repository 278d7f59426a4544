// Package object models Mython's runtime values: the tagged-union Value,
// mutable Closures (variable scopes), and the class/instance system with
// dunder-method dispatch. Value/Closure/ClassDef/Method/ClassInstance are
// mutually referential in the source design (original runtime.h keeps
// them in one header) and are kept in one Go package for the same reason.
//
// Method bodies are modeled as the Executable interface rather than a
// concrete AST type, so this package never imports internal/ast - the
// dependency points the other way, with ast implementing Executable.
package object

import "github.com/opal-lang/mython/internal/eval"

// Kind selects which field of a Value is meaningful: a sum-type Value
// model with match-based dispatch over a tagged union rather than
// TryAs<T> probing.
type Kind int

const (
	KindNone Kind = iota
	KindNumber
	KindString
	KindBool
	KindClass
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindClass:
		return "Class"
	case KindInstance:
		return "ClassInstance"
	default:
		return "Unknown"
	}
}

// Value is the single runtime value representation for Mython. Exactly
// one of Num/Str/Bool/Class/Instance is meaningful, selected by Kind.
type Value struct {
	Kind     Kind
	Num      int32
	Str      string
	Bool     bool
	Class    *ClassDef
	Instance *ClassInstance
}

// None is the shared nil-like value. Every NumericConst/
// StringConst/BoolConst AST node yields a value built with one of the
// constructors below, never a zero Value{} directly.
var None = Value{Kind: KindNone}

// Number constructs a Number value, truncating per native 32-bit
// arithmetic.
func Number(n int32) Value { return Value{Kind: KindNumber, Num: n} }

// String constructs a String value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Bool constructs a Bool value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// FromClass constructs a Class value (a first-class reference to a class,
// as bound by ClassDefinition and consumed by NewInstance).
func FromClass(c *ClassDef) Value { return Value{Kind: KindClass, Class: c} }

// FromInstance constructs a ClassInstance value.
func FromInstance(i *ClassInstance) Value { return Value{Kind: KindInstance, Instance: i} }

// IsTrue implements the truthiness table: None, Number(0),
// String(""), Bool(false) are falsy; everything else (including Class
// and ClassInstance values) is truthy.
func IsTrue(v Value) bool {
	switch v.Kind {
	case KindNone:
		return false
	case KindNumber:
		return v.Num != 0
	case KindString:
		return v.Str != ""
	case KindBool:
		return v.Bool
	default:
		return true
	}
}

// Executable is implemented by internal/ast's node types; a Method's body
// is one of these, invoked by ClassInstance.Call without this package
// needing to know anything about the AST.
type Executable interface {
	Evaluate(closure *Closure, ctx *eval.Context) (Value, eval.Signal, error)
}
